package recurring

import (
	"context"

	"github.com/google/uuid"

	"budgeteer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=recurring
type Repository interface {
	ListRecurring(ctx context.Context) ([]*Expense, error)
	CreateRecurring(ctx context.Context, exp *Expense) error
	DeleteRecurring(ctx context.Context, id uuid.UUID) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	Name   string
	Amount money.Amount
	Active bool
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Expense, error) {
	exp := &Expense{
		Name:   params.Name,
		Amount: params.Amount,
		Active: params.Active,
	}
	if err := s.repo.CreateRecurring(ctx, exp); err != nil {
		return nil, err
	}

	return exp, nil
}

func (s *Service) List(ctx context.Context) ([]*Expense, error) {
	return s.repo.ListRecurring(ctx)
}

// Delete removes a recurring expense. Deleting an unknown id is a no-op.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.repo.DeleteRecurring(ctx, id)
}
