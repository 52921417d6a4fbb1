package recurring

import (
	"github.com/google/uuid"

	"budgeteer/internal/money"
)

// Expense is a fixed monthly obligation. Inactive rows are kept for history
// but excluded from totals by the client.
type Expense struct {
	ID     uuid.UUID
	Name   string
	Amount money.Amount
	Active bool
}
