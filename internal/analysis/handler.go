package analysis

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"

	"github.com/ucad-dsi/gestion-budget/internal/transport"
	"github.com/ucad-dsi/gestion-budget/pkg/logger"
)

type ServiceAPI interface {
	Summary(year int) (*Summary, error)
	Variances(year int) ([]*Variance, error)
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

func (h *Handler) year(w http.ResponseWriter, r *http.Request) (int, bool) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil || year <= 0 {
		h.WriteError(w, http.StatusBadRequest, "invalid year")
		return 0, false
	}
	return year, true
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	year, ok := h.year(w, r)
	if !ok {
		return
	}

	summary, err := h.Service.Summary(year)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, summary)
}

func (h *Handler) Variances(w http.ResponseWriter, r *http.Request) {
	year, ok := h.year(w, r)
	if !ok {
		return
	}

	variances, err := h.Service.Variances(year)
	if err != nil {
		h.HandleServiceError(w, err)
		return
	}

	if variances == nil {
		variances = []*Variance{}
	}
	h.WriteJSON(w, http.StatusOK, variances)
}
