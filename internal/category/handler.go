package category

import (
	"log/slog"
	"net/http"

	"github.com/ucad-dsi/gestion-budget/internal/transport"
	"github.com/ucad-dsi/gestion-budget/pkg/logger"
)

type ServiceAPI interface {
	GetAll() ([]*Category, error)
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

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Service.GetAll()
	if err != nil {
		h.Logger.Error("failed to list budget categories", "error", err)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, categories)
}
