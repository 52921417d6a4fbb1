package debt

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"budgeteer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=debt
type Repository interface {
	CreateDebt(ctx context.Context, d *Debt) error
	ListDebts(ctx context.Context) ([]*Debt, error)
	DeleteDebt(ctx context.Context, id uuid.UUID) error
	ListPayments(ctx context.Context, debtID uuid.UUID) ([]*Payment, error)

	// BeginPayment opens a transaction with the debt row locked, or
	// ErrNotFound if the debt does not exist.
	BeginPayment(ctx context.Context, debtID uuid.UUID) (PaymentTx, error)
}

type PaymentTx interface {
	Debt() *Debt
	CreatePayment(ctx context.Context, p *Payment) error
	UpdateBalance(ctx context.Context, newTotal money.Amount) (*Debt, error)
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name         string
	TotalAmount  money.Amount
	MinPayment   money.Amount
	InterestRate money.Amount
	Active       bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Debt, error) {
	d := &Debt{
		Name:         params.Name,
		TotalAmount:  params.TotalAmount,
		MinPayment:   params.MinPayment,
		InterestRate: params.InterestRate,
		Active:       params.Active,
	}
	if err := s.repo.CreateDebt(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) List(ctx context.Context) ([]*Debt, error) {
	return s.repo.ListDebts(ctx)
}

// Delete removes a debt and, via cascade, its payment history.
// Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteDebt(ctx, id)
}

// Payments returns the payment history for a debt, most recent first.
func (s *Service) Payments(ctx context.Context, debtID uuid.UUID) ([]*Payment, error) {
	return s.repo.ListPayments(ctx, debtID)
}

type PayParams struct {
	Amount  money.Amount
	IsExtra bool
}

// Pay records a payment against a debt and decrements its balance, clamped
// at zero on overpayment. The payment insert and the balance update happen
// in one database transaction: either both land or neither does.
func (s *Service) Pay(ctx context.Context, debtID uuid.UUID, params PayParams) (*Debt, error) {
	ptx, err := s.repo.BeginPayment(ctx, debtID)
	if err != nil {
		return nil, err
	}
	defer ptx.Rollback()

	payment := &Payment{
		DebtID:  debtID,
		Amount:  params.Amount,
		IsExtra: params.IsExtra,
	}
	if err := ptx.CreatePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("recording payment: %w", err)
	}

	newTotal := ptx.Debt().TotalAmount.Sub(params.Amount)
	if newTotal.IsNegative() {
		newTotal = money.Zero
	}

	updated, err := ptx.UpdateBalance(ctx, newTotal)
	if err != nil {
		return nil, fmt.Errorf("updating balance: %w", err)
	}

	if err := ptx.Commit(); err != nil {
		return nil, fmt.Errorf("committing payment: %w", err)
	}

	return updated, nil
}
