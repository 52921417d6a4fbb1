package income

import (
	"time"

	"github.com/google/uuid"

	"budgeteer/internal/income"
	"budgeteer/internal/money"
)

type incomeResponse struct {
	ID        uuid.UUID    `json:"id,omitzero"`
	Amount    money.Amount `json:"amount"`
	UpdatedAt time.Time    `json:"updatedAt,omitzero"`
}

func toResponse(inc *income.Income) incomeResponse {
	return incomeResponse{
		ID:        inc.ID,
		Amount:    inc.Amount,
		UpdatedAt: inc.UpdatedAt,
	}
}
