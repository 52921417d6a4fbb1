package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"budgeteer/internal/debt"
	"budgeteer/internal/money"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const selectDebtColumns = `id, name, total_amount, min_payment, interest_rate, active`

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDebt(s scanner) (*debt.Debt, error) {
	var d debt.Debt
	if err := s.Scan(&d.ID, &d.Name, &d.TotalAmount, &d.MinPayment, &d.InterestRate, &d.Active); err != nil {
		return nil, err
	}

	return &d, nil
}

func (s *Store) CreateDebt(ctx context.Context, d *debt.Debt) error {
	query := `
		INSERT INTO debts (name, total_amount, min_payment, interest_rate, active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	err := s.db.QueryRowContext(ctx, query,
		d.Name,
		d.TotalAmount,
		d.MinPayment,
		d.InterestRate,
		d.Active,
	).Scan(&d.ID)
	if err != nil {
		return fmt.Errorf("creating debt: %w", err)
	}

	return nil
}

func (s *Store) ListDebts(ctx context.Context) ([]*debt.Debt, error) {
	query := `SELECT ` + selectDebtColumns + ` FROM debts ORDER BY name ASC`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing debts: %w", err)
	}
	defer rows.Close()

	var debts []*debt.Debt

	for rows.Next() {
		d, err := scanDebt(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning debt: %w", err)
		}

		debts = append(debts, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating debts: %w", err)
	}

	return debts, nil
}

// DeleteDebt removes a debt; the payment history goes with it via the
// ON DELETE CASCADE constraint.
func (s *Store) DeleteDebt(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM debts WHERE id = $1`

	_, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting debt: %w", err)
	}

	return nil
}

func (s *Store) ListPayments(ctx context.Context, debtID uuid.UUID) ([]*debt.Payment, error) {
	query := `
		SELECT id, debt_id, amount, date, is_extra
		FROM debt_payments
		WHERE debt_id = $1
		ORDER BY date DESC
	`

	rows, err := s.db.QueryContext(ctx, query, debtID)
	if err != nil {
		return nil, fmt.Errorf("listing payments: %w", err)
	}
	defer rows.Close()

	var payments []*debt.Payment

	for rows.Next() {
		var p debt.Payment
		if err := rows.Scan(&p.ID, &p.DebtID, &p.Amount, &p.Date, &p.IsExtra); err != nil {
			return nil, fmt.Errorf("scanning payment: %w", err)
		}

		payments = append(payments, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating payment rows: %w", err)
	}

	return payments, nil
}

type paymentTx struct {
	tx *sql.Tx
	d  *debt.Debt
}

// BeginPayment opens a transaction and locks the debt row so concurrent
// payments against the same debt serialize instead of losing updates.
func (s *Store) BeginPayment(ctx context.Context, debtID uuid.UUID) (debt.PaymentTx, error) {
	dbTx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning payment tx: %w", err)
	}

	query := `SELECT ` + selectDebtColumns + ` FROM debts WHERE id = $1 FOR UPDATE`

	d, err := scanDebt(dbTx.QueryRowContext(ctx, query, debtID))
	if err != nil {
		dbTx.Rollback()

		if err == sql.ErrNoRows {
			return nil, debt.ErrNotFound
		}

		return nil, fmt.Errorf("locking debt: %w", err)
	}

	return &paymentTx{tx: dbTx, d: d}, nil
}

func (ptx *paymentTx) Debt() *debt.Debt { return ptx.d }

func (ptx *paymentTx) Commit() error   { return ptx.tx.Commit() }
func (ptx *paymentTx) Rollback() error { return ptx.tx.Rollback() }

func (ptx *paymentTx) CreatePayment(ctx context.Context, p *debt.Payment) error {
	query := `
		INSERT INTO debt_payments (debt_id, amount, date, is_extra)
		VALUES ($1, $2, NOW(), $3)
		RETURNING id, date
	`

	err := ptx.tx.QueryRowContext(ctx, query, p.DebtID, p.Amount, p.IsExtra).Scan(&p.ID, &p.Date)
	if err != nil {
		return fmt.Errorf("creating payment: %w", err)
	}

	return nil
}

func (ptx *paymentTx) UpdateBalance(ctx context.Context, newTotal money.Amount) (*debt.Debt, error) {
	query := `
		UPDATE debts
		SET total_amount = $1
		WHERE id = $2
		RETURNING ` + selectDebtColumns

	d, err := scanDebt(ptx.tx.QueryRowContext(ctx, query, newTotal, ptx.d.ID))
	if err != nil {
		return nil, fmt.Errorf("updating balance: %w", err)
	}

	return d, nil
}
