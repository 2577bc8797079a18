package budget

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/ucad-dsi/gestion-budget/internal"
	"github.com/ucad-dsi/gestion-budget/internal/auth"
	"github.com/ucad-dsi/gestion-budget/internal/history"
	"github.com/ucad-dsi/gestion-budget/internal/transport"
	"github.com/ucad-dsi/gestion-budget/pkg/logger"
)

type ServiceAPI interface {
	Create(actor auth.Actor, dto CreateBudgetLineDTO) (*BudgetLine, error)
	Get(actor auth.Actor, id int64) (*BudgetLine, error)
	List(actor auth.Actor, filters ListFilters) ([]*BudgetLine, error)
	Update(actor auth.Actor, id int64, dto UpdateBudgetLineDTO) (*BudgetLine, error)
	Delete(actor auth.Actor, id int64) error
	Submit(actor auth.Actor, id int64) (*BudgetLine, error)
	ListPending(actor auth.Actor, year *int) ([]*BudgetLine, error)
	Validate(actor auth.Actor, id int64, dto ValidateLineDTO) (*BudgetLine, error)
	BulkValidate(actor auth.Actor, dto BulkValidateDTO) (*BulkValidateResult, error)
	History(actor auth.Actor, id int64) ([]*history.Entry, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
}

func NewHandler(svc ServiceAPI) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     svc,
	}
}

func (h *Handler) actor(w http.ResponseWriter, r *http.Request) (auth.Actor, bool) {
	actor, ok := auth.ActorFromContext(r.Context())
	if !ok || actor == nil {
		h.WriteError(w, http.StatusUnauthorized, "authentication required")
		return auth.Actor{}, false
	}
	return *actor, true
}

func (h *Handler) lineID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid budget line id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var dto CreateBudgetLineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	line, err := h.Service.Create(actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, line)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	line, err := h.Service.Get(actor, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, line)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	filters, err := parseListFilters(r)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	lines, err := h.Service.List(actor, filters)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, lines)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	var dto UpdateBudgetLineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	line, err := h.Service.Update(actor, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, line)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	if err := h.Service.Delete(actor, id); err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, map[string]string{"message": "budget line deleted"})
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	line, err := h.Service.Submit(actor, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, line)
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	entries, err := h.Service.History(actor, id)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, entries)
}

func (h *Handler) ListPending(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			h.WriteError(w, http.StatusBadRequest, "invalid year filter")
			return
		}
		year = &parsed
	}

	lines, err := h.Service.ListPending(actor, year)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, lines)
}

func (h *Handler) Validate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}
	id, ok := h.lineID(w, r)
	if !ok {
		return
	}

	var dto ValidateLineDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	line, err := h.Service.Validate(actor, id, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, line)
}

func (h *Handler) BulkValidate(w http.ResponseWriter, r *http.Request) {
	actor, ok := h.actor(w, r)
	if !ok {
		return
	}

	var dto BulkValidateDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		h.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.Service.BulkValidate(actor, dto)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, result)
}

func badFilter(field string) error {
	return internal.NewValidationFieldError(field, "invalid "+field+" filter", internal.ErrCodeValidationFailed)
}

func parseListFilters(r *http.Request) (ListFilters, error) {
	var filters ListFilters
	q := r.URL.Query()

	if raw := q.Get("year"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return filters, badFilter("year")
		}
		filters.Year = &year
	}
	if raw := q.Get("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return filters, badFilter("user_id")
		}
		filters.UserID = &userID
	}
	if raw := q.Get("status"); raw != "" {
		status := Status(raw)
		if !status.Valid() {
			return filters, badFilter("status")
		}
		filters.Status = &status
	}

	return filters, nil
}
