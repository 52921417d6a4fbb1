// Package seed installs a small demo dataset so a fresh install has
// something to show.
package seed

import (
	"context"
	"errors"
	"fmt"

	"budgeteer/internal/debt"
	"budgeteer/internal/expense"
	"budgeteer/internal/income"
	"budgeteer/internal/money"
	"budgeteer/internal/recurring"
)

type Services struct {
	Income    *income.Service
	Recurring *recurring.Service
	Expenses  *expense.Service
	Debts     *debt.Service
}

// Demo inserts the demo dataset, but only when no income has ever been set;
// an existing install is left untouched.
func Demo(ctx context.Context, svcs Services) error {
	_, err := svcs.Income.Latest(ctx)
	if err == nil {
		return nil
	}

	if !errors.Is(err, income.ErrNotFound) {
		return fmt.Errorf("checking for existing income: %w", err)
	}

	if _, err := svcs.Income.Set(ctx, money.MustParse("5000.00")); err != nil {
		return fmt.Errorf("seeding income: %w", err)
	}

	recurringRows := []recurring.CreateParams{
		{Name: "Rent", Amount: money.MustParse("1200.00"), Active: true},
		{Name: "Utilities", Amount: money.MustParse("150.00"), Active: true},
		{Name: "Netflix", Amount: money.MustParse("15.99"), Active: true},
	}
	for _, params := range recurringRows {
		if _, err := svcs.Recurring.Create(ctx, params); err != nil {
			return fmt.Errorf("seeding recurring expense %q: %w", params.Name, err)
		}
	}

	expenseRows := []expense.CreateParams{
		{Name: "Groceries", Amount: money.MustParse("85.50"), Category: "Food"},
		{Name: "Gas", Amount: money.MustParse("45.00"), Category: "Transport"},
		{Name: "Movie Night", Amount: money.MustParse("30.00"), Category: "Entertainment"},
	}
	for _, params := range expenseRows {
		if _, err := svcs.Expenses.Create(ctx, params); err != nil {
			return fmt.Errorf("seeding expense %q: %w", params.Name, err)
		}
	}

	_, err = svcs.Debts.Create(ctx, debt.CreateParams{
		Name:         "Credit Card",
		TotalAmount:  money.MustParse("2500.00"),
		MinPayment:   money.MustParse("100.00"),
		InterestRate: money.MustParse("19.99"),
		Active:       true,
	})
	if err != nil {
		return fmt.Errorf("seeding debt: %w", err)
	}

	return nil
}
