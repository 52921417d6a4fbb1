package debt

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"budgeteer/internal/money"
)

var ErrNotFound = errors.New("debt not found")

// Debt is a tracked liability. TotalAmount is the outstanding balance and is
// only ever mutated by recording a payment.
type Debt struct {
	ID           uuid.UUID
	Name         string
	TotalAmount  money.Amount
	MinPayment   money.Amount
	InterestRate money.Amount
	Active       bool
}

// Payment is an append-only record of money applied to a debt. Payments are
// never updated once written; deleting a debt cascades to its payments.
type Payment struct {
	ID      uuid.UUID
	DebtID  uuid.UUID
	Amount  money.Amount
	Date    time.Time
	IsExtra bool
}
