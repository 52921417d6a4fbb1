package debt

import (
	"time"

	"github.com/google/uuid"

	"budgeteer/internal/debt"
	"budgeteer/internal/money"
)

type debtResponse struct {
	ID           uuid.UUID    `json:"id"`
	Name         string       `json:"name"`
	TotalAmount  money.Amount `json:"totalAmount"`
	MinPayment   money.Amount `json:"minPayment"`
	InterestRate money.Amount `json:"interestRate"`
	Active       bool         `json:"active"`
}

func toResponse(d *debt.Debt) debtResponse {
	return debtResponse{
		ID:           d.ID,
		Name:         d.Name,
		TotalAmount:  d.TotalAmount,
		MinPayment:   d.MinPayment,
		InterestRate: d.InterestRate,
		Active:       d.Active,
	}
}

func toResponseList(debts []*debt.Debt) []debtResponse {
	resp := make([]debtResponse, len(debts))
	for i, d := range debts {
		resp[i] = toResponse(d)
	}

	return resp
}

type paymentResponse struct {
	ID      uuid.UUID    `json:"id"`
	DebtID  uuid.UUID    `json:"debtId"`
	Amount  money.Amount `json:"amount"`
	Date    time.Time    `json:"date"`
	IsExtra bool         `json:"isExtra"`
}

func toPaymentResponseList(payments []*debt.Payment) []paymentResponse {
	resp := make([]paymentResponse, len(payments))
	for i, p := range payments {
		resp[i] = paymentResponse{
			ID:      p.ID,
			DebtID:  p.DebtID,
			Amount:  p.Amount,
			Date:    p.Date,
			IsExtra: p.IsExtra,
		}
	}

	return resp
}
