package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"budgeteer/internal/config"
	"budgeteer/internal/database"
	"budgeteer/internal/debt"
	debtStore "budgeteer/internal/debt/store"
	"budgeteer/internal/expense"
	expenseStore "budgeteer/internal/expense/store"
	budgeteerHttp "budgeteer/internal/http"
	debtHandler "budgeteer/internal/http/debt"
	expenseHandler "budgeteer/internal/http/expense"
	incomeHandler "budgeteer/internal/http/income"
	recurringHandler "budgeteer/internal/http/recurring"
	"budgeteer/internal/income"
	incomeStore "budgeteer/internal/income/store"
	"budgeteer/internal/recurring"
	recurringStore "budgeteer/internal/recurring/store"
	"budgeteer/internal/seed"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	var (
		incomeService    = income.NewService(incomeStore.New(db))
		recurringService = recurring.NewService(recurringStore.New(db))
		expenseService   = expense.NewService(expenseStore.New(db))
		debtService      = debt.NewService(debtStore.New(db))
	)

	if cfg.SeedDemo {
		err := seed.Demo(context.Background(), seed.Services{
			Income:    incomeService,
			Recurring: recurringService,
			Expenses:  expenseService,
			Debts:     debtService,
		})
		if err != nil {
			slog.Error("failed to seed demo data", "error", err)
			os.Exit(1)
		}
	}

	var (
		incomeH    = incomeHandler.NewHandler(incomeService)
		recurringH = recurringHandler.NewHandler(recurringService)
		expenseH   = expenseHandler.NewHandler(expenseService)
		debtH      = debtHandler.NewHandler(debtService)
	)

	router := budgeteerHttp.New(incomeH, recurringH, expenseH, debtH, db, cfg.Auth.Secret)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	slog.Info("starting server", "app", cfg.App.Name, "addr", server.Addr)

	if err := server.ListenAndServe(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
