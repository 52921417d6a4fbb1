package recurring

import (
	"github.com/google/uuid"

	"budgeteer/internal/money"
	"budgeteer/internal/recurring"
)

type recurringResponse struct {
	ID     uuid.UUID    `json:"id"`
	Name   string       `json:"name"`
	Amount money.Amount `json:"amount"`
	Active bool         `json:"active"`
}

func toResponse(exp *recurring.Expense) recurringResponse {
	return recurringResponse{
		ID:     exp.ID,
		Name:   exp.Name,
		Amount: exp.Amount,
		Active: exp.Active,
	}
}

func toResponseList(exps []*recurring.Expense) []recurringResponse {
	resp := make([]recurringResponse, len(exps))
	for i, exp := range exps {
		resp[i] = toResponse(exp)
	}

	return resp
}
