package expense

import (
	"time"

	"github.com/google/uuid"

	"budgeteer/internal/expense"
	"budgeteer/internal/money"
)

type expenseResponse struct {
	ID       uuid.UUID    `json:"id"`
	Name     string       `json:"name"`
	Amount   money.Amount `json:"amount"`
	Category string       `json:"category"`
	Date     time.Time    `json:"date"`
}

func toResponse(exp *expense.Expense) expenseResponse {
	return expenseResponse{
		ID:       exp.ID,
		Name:     exp.Name,
		Amount:   exp.Amount,
		Category: exp.Category,
		Date:     exp.Date,
	}
}

func toResponseList(exps []*expense.Expense) []expenseResponse {
	resp := make([]expenseResponse, len(exps))
	for i, exp := range exps {
		resp[i] = toResponse(exp)
	}

	return resp
}
