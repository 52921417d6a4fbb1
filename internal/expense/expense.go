package expense

import (
	"time"

	"github.com/google/uuid"

	"budgeteer/internal/money"
)

// DefaultCategory is applied when a request omits the category.
const DefaultCategory = "General"

// Expense is a one-time dated transaction. Immutable after creation
// except via delete.
type Expense struct {
	ID       uuid.UUID
	Name     string
	Amount   money.Amount
	Category string
	Date     time.Time
}
