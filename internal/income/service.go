package income

import (
	"context"
	"errors"

	"budgeteer/internal/money"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=income
type Repository interface {
	LatestIncome(ctx context.Context) (*Income, error)
	CreateIncome(ctx context.Context, inc *Income) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Latest returns the newest income row, or ErrNotFound if none was ever set.
func (s *Service) Latest(ctx context.Context) (*Income, error) {
	return s.repo.LatestIncome(ctx)
}

// Current returns the newest income row, falling back to a zero-amount
// default so callers never have to special-case an empty store.
func (s *Service) Current(ctx context.Context) (*Income, error) {
	inc, err := s.repo.LatestIncome(ctx)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return &Income{Amount: money.Zero}, nil
		}

		return nil, err
	}

	return inc, nil
}

// Set appends a new income row; the new row becomes the current value.
func (s *Service) Set(ctx context.Context, amount money.Amount) (*Income, error) {
	inc := &Income{Amount: amount}
	if err := s.repo.CreateIncome(ctx, inc); err != nil {
		return nil, err
	}

	return inc, nil
}
