package expense

import (
	"context"

	"github.com/google/uuid"

	"budgeteer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=expense
type Repository interface {
	ListExpenses(ctx context.Context) ([]*Expense, error)
	CreateExpense(ctx context.Context, exp *Expense) error
	DeleteExpense(ctx context.Context, id uuid.UUID) error
	ClearExpenses(ctx context.Context) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name     string
	Amount   money.Amount
	Category string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	category := params.Category
	if category == "" {
		category = DefaultCategory
	}

	exp := &Expense{
		Name:     params.Name,
		Amount:   params.Amount,
		Category: category,
	}
	if err := s.repo.CreateExpense(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

// List returns all expenses, most recent first.
func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListExpenses(ctx)
}

// Delete removes an expense. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteExpense(ctx, id)
}

// Clear removes every expense row, used to reset at the start of a month.
func (s *Service) Clear(ctx context.Context) error {
	return s.repo.ClearExpenses(ctx)
}
