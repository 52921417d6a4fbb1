package store

import (
	"context"
	"database/sql"
	"fmt"

	"budgeteer/internal/income"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) LatestIncome(ctx context.Context) (*income.Income, error) {
	query := `
		SELECT id, amount, updated_at
		FROM incomes
		ORDER BY updated_at DESC
		LIMIT 1
	`

	var inc income.Income

	err := s.db.QueryRowContext(ctx, query).Scan(&inc.ID, &inc.Amount, &inc.UpdatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, income.ErrNotFound
		}

		return nil, fmt.Errorf("getting income: %w", err)
	}

	return &inc, nil
}

func (s *Store) CreateIncome(ctx context.Context, inc *income.Income) error {
	query := `
		INSERT INTO incomes (amount, updated_at)
		VALUES ($1, NOW())
		RETURNING id, updated_at
	`

	err := s.db.QueryRowContext(ctx, query, inc.Amount).Scan(&inc.ID, &inc.UpdatedAt)
	if err != nil {
		return fmt.Errorf("creating income: %w", err)
	}

	return nil
}
