package income

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"budgeteer/internal/money"
)

var ErrNotFound = errors.New("income not found")

// Income is one self-reported monthly income figure. Rows are append-only:
// the most recently updated row is the authoritative value.
type Income struct {
	ID        uuid.UUID
	Amount    money.Amount
	UpdatedAt time.Time
}
