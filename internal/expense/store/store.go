package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"budgeteer/internal/expense"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListExpenses(ctx context.Context) ([]*expense.Expense, error) {
	query := `
		SELECT id, name, amount, category, date
		FROM expenses
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}
	defer rows.Close()

	var exps []*expense.Expense

	for rows.Next() {
		var exp expense.Expense
		if err := rows.Scan(&exp.ID, &exp.Name, &exp.Amount, &exp.Category, &exp.Date); err != nil {
			return nil, fmt.Errorf("scanning expense: %w", err)
		}

		exps = append(exps, &exp)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating expenses: %w", err)
	}

	return exps, nil
}

func (s *Store) CreateExpense(ctx context.Context, exp *expense.Expense) error {
	query := `
		INSERT INTO expenses (name, amount, category, date)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, date
	`

	err := s.db.QueryRowContext(ctx, query, exp.Name, exp.Amount, exp.Category).Scan(&exp.ID, &exp.Date)
	if err != nil {
		return fmt.Errorf("creating expense: %w", err)
	}

	return nil
}

func (s *Store) DeleteExpense(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM expenses WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return nil
}

func (s *Store) ClearExpenses(ctx context.Context) error {
	query := `DELETE FROM expenses`

	_, err := s.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("clearing expenses: %w", err)
	}

	return nil
}
