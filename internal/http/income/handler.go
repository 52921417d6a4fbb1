package income

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"budgeteer/internal/http/respond"
	"budgeteer/internal/income"
	"budgeteer/internal/money"
)

type Handler struct {
	svc *income.Service
}

func NewHandler(svc *income.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
	r.Post("/", h.set)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	inc, err := h.svc.Current(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inc))
}

type setIncomeRequest struct {
	Amount *money.Amount `json:"amount"`
}

func (h *Handler) set(w http.ResponseWriter, r *http.Request) {
	var req setIncomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ValidationError(w, err.Error(), "")
		return
	}

	if req.Amount == nil {
		respond.ValidationError(w, "amount is required", "amount")
		return
	}

	if req.Amount.IsNegative() {
		respond.ValidationError(w, "amount must not be negative", "amount")
		return
	}

	inc, err := h.svc.Set(r.Context(), *req.Amount)
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponse(inc))
}
