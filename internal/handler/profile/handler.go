package profile

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/middleware"
	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
	"github.com/zhouzirui/health-assistant/backend/pkg/utils"
)

// Handler exposes profile maintenance outside the command language.
type Handler struct {
	sessions *session.Manager
	logger   *zap.Logger
}

func New(sessions *session.Manager, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{sessions: sessions, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/clear_profile", h.handleClear)
}

func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.Update(r.Context(), middleware.SessionID(r.Context()), func(state *chat.State) error {
		state.ClearProfile()
		return nil
	})
	if err != nil {
		h.logger.Error("clear profile failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "Ошибка: "+err.Error())
		return
	}
	utils.RespondSuccess(w, "")
}
