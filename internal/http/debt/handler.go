package debt

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"budgeteer/internal/debt"
	"budgeteer/internal/http/respond"
	"budgeteer/internal/money"
)

type Handler struct {
	svc *debt.Service
}

func NewHandler(svc *debt.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/{id}", h.delete)
	r.Post("/{id}/pay", h.pay)
	r.Get("/{id}/payments", h.payments)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	debts, err := h.svc.List(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(debts))
}

type createDebtRequest struct {
	Name         string        `json:"name"`
	TotalAmount  *money.Amount `json:"totalAmount"`
	MinPayment   *money.Amount `json:"minPayment"`
	InterestRate *money.Amount `json:"interestRate"`
	Active       *bool         `json:"active"`
}

func (r createDebtRequest) validate() (message, field string, ok bool) {
	switch {
	case strings.TrimSpace(r.Name) == "":
		return "name is required", "name", false
	case r.TotalAmount == nil:
		return "totalAmount is required", "totalAmount", false
	case r.TotalAmount.IsNegative():
		return "totalAmount must not be negative", "totalAmount", false
	case r.MinPayment == nil:
		return "minPayment is required", "minPayment", false
	case r.MinPayment.IsNegative():
		return "minPayment must not be negative", "minPayment", false
	case r.InterestRate != nil && r.InterestRate.IsNegative():
		return "interestRate must not be negative", "interestRate", false
	}

	return "", "", true
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createDebtRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ValidationError(w, err.Error(), "")
		return
	}

	if message, field, ok := req.validate(); !ok {
		respond.ValidationError(w, message, field)
		return
	}

	params := debt.CreateParams{
		Name:        req.Name,
		TotalAmount: *req.TotalAmount,
		MinPayment:  *req.MinPayment,
		Active:      true,
	}
	if req.InterestRate != nil {
		params.InterestRate = *req.InterestRate
	}

	if req.Active != nil {
		params.Active = *req.Active
	}

	d, err := h.svc.Create(r.Context(), params)
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(d))
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respond.Internal(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type payRequest struct {
	Amount  *money.Amount `json:"amount"`
	IsExtra bool          `json:"isExtra"`
}

func (h *Handler) pay(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req payRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ValidationError(w, err.Error(), "")
		return
	}

	if req.Amount == nil {
		respond.ValidationError(w, "amount is required", "amount")
		return
	}

	if !req.Amount.IsPositive() {
		respond.ValidationError(w, "amount must be positive", "amount")
		return
	}

	d, err := h.svc.Pay(r.Context(), id, debt.PayParams{
		Amount:  *req.Amount,
		IsExtra: req.IsExtra,
	})
	if err != nil {
		if errors.Is(err, debt.ErrNotFound) {
			respond.Error(w, http.StatusNotFound, "debt not found")
			return
		}

		respond.Internal(w, err)

		return
	}

	respond.JSON(w, http.StatusOK, toResponse(d))
}

func (h *Handler) payments(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid id")
		return
	}

	payments, err := h.svc.Payments(r.Context(), id)
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toPaymentResponseList(payments))
}
