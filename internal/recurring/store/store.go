package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"budgeteer/internal/recurring"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListRecurring(ctx context.Context) ([]*recurring.Expense, error) {
	query := `
		SELECT id, name, amount, active
		FROM recurring_expenses
		ORDER BY name ASC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing recurring expenses: %w", err)
	}
	defer rows.Close()

	var exps []*recurring.Expense

	for rows.Next() {
		var exp recurring.Expense
		if err := rows.Scan(&exp.ID, &exp.Name, &exp.Amount, &exp.Active); err != nil {
			return nil, fmt.Errorf("scanning recurring expense: %w", err)
		}

		exps = append(exps, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recurring expenses: %w", err)
	}

	return exps, nil
}

func (s *Store) CreateRecurring(ctx context.Context, exp *recurring.Expense) error {
	query := `
		INSERT INTO recurring_expenses (name, amount, active)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query, exp.Name, exp.Amount, exp.Active).Scan(&exp.ID)
	if err != nil {
		return fmt.Errorf("creating recurring expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteRecurring(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM recurring_expenses WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting recurring expense: %w", err)
	}

	return nil
}
