package http

import (
	"database/sql"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"budgeteer/internal/http/auth"
	debtHandler "budgeteer/internal/http/debt"
	expenseHandler "budgeteer/internal/http/expense"
	incomeHandler "budgeteer/internal/http/income"
	recurringHandler "budgeteer/internal/http/recurring"
	"budgeteer/internal/http/respond"
)

func New(
	income *incomeHandler.Handler,
	recurring *recurringHandler.Handler,
	expenses *expenseHandler.Handler,
	debts *debtHandler.Handler,
	db *sql.DB,
	authSecret string,
) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	router.Get("/api/health", healthHandler(db))

	router.Route("/api", func(r chi.Router) {
		if authSecret != "" {
			r.Use(auth.Middleware(authSecret))
		}

		r.Route("/income", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			income.Routes(r)
		})

		r.Route("/recurring", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			recurring.Routes(r)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			expenses.Routes(r)
		})

		r.Route("/debts", func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			debts.Routes(r)
		})
	})

	return router
}

func healthHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := db.PingContext(r.Context()); err != nil {
			respond.Error(w, http.StatusServiceUnavailable, "database unreachable")
			return
		}

		respond.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
