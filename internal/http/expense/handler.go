package expense

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"budgeteer/internal/expense"
	"budgeteer/internal/http/respond"
	"budgeteer/internal/money"
)

type Handler struct {
	svc *expense.Service
}

func NewHandler(svc *expense.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.list)
	r.Post("/", h.create)
	r.Delete("/", h.clear)
	r.Delete("/{id}", h.delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	exps, err := h.svc.List(r.Context())
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusOK, toResponseList(exps))
}

type createExpenseRequest struct {
	Name     string        `json:"name"`
	Amount   *money.Amount `json:"amount"`
	Category string        `json:"category"`
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.ValidationError(w, err.Error(), "")
		return
	}

	if strings.TrimSpace(req.Name) == "" {
		respond.ValidationError(w, "name is required", "name")
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

	exp, err := h.svc.Create(r.Context(), expense.CreateParams{
		Name:     req.Name,
		Amount:   *req.Amount,
		Category: req.Category,
	})
	if err != nil {
		respond.Internal(w, err)
		return
	}

	respond.JSON(w, http.StatusCreated, toResponse(exp))
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

// clear wipes every expense row, the "start of a new month" reset.
func (h *Handler) clear(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clear(r.Context()); err != nil {
		respond.Internal(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
