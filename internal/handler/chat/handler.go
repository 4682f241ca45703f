package chat

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/middleware"
	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/model/health"
	"github.com/zhouzirui/health-assistant/backend/internal/render"
	"github.com/zhouzirui/health-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
	"github.com/zhouzirui/health-assistant/backend/pkg/utils"
)

// Handler serves the chat endpoints.
type Handler struct {
	sessions  *session.Manager
	assistant *assistant.Service
	logger    *zap.Logger
}

// New creates the chat handler.
func New(sessions *session.Manager, assistantSvc *assistant.Service, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{
		sessions:  sessions,
		assistant: assistantSvc,
		logger:    logger,
	}
}

// RegisterRoutes mounts the chat routes on r.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
	r.Get("/get_history", h.handleHistory)
	r.Post("/clear_chat", h.handleClearChat)
}

type chatResponse struct {
	Response  string `json:"response"`
	Timestamp string `json:"timestamp"`
}

// handleChat runs one message through the assistant and persists the session.
func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message string `json:"message"`
	}
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "Пустое сообщение")
		return
	}

	id := middleware.SessionID(r.Context())
	var result assistant.Result
	err := h.sessions.Update(r.Context(), id, func(state *chat.State) error {
		var err error
		result, err = h.assistant.Handle(r.Context(), state, message)
		return err
	})

	switch {
	case err == nil:
		utils.RespondJSON(w, http.StatusOK, chatResponse{
			Response:  render.HTML(result.Reply),
			Timestamp: result.Timestamp,
		})
	case errors.Is(err, assistant.ErrEmptyMessage):
		utils.RespondError(w, http.StatusBadRequest, "Пустое сообщение")
	case errors.Is(err, assistant.ErrModelUnavailable):
		utils.RespondError(w, http.StatusServiceUnavailable, "Ошибка: языковая модель не настроена")
	default:
		h.logger.Error("chat failed", zap.String("session", id), zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "Ошибка: "+err.Error())
	}
}

type historyResponse struct {
	History     []chat.Turn         `json:"history"`
	Medications []health.Medication `json:"medications"`
	Reminders   []health.Reminder   `json:"reminders"`
}

// handleHistory returns the rendered history together with medications and reminders.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	var resp historyResponse
	err := h.sessions.View(r.Context(), middleware.SessionID(r.Context()), func(state *chat.State) error {
		resp.History = make([]chat.Turn, 0, len(state.ChatHistory))
		for _, turn := range state.ChatHistory {
			resp.History = append(resp.History, render.Turn(turn))
		}
		resp.Medications = state.Medications
		resp.Reminders = state.Reminders
		return nil
	})
	if err != nil {
		h.logger.Error("load history failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "Ошибка: "+err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleClearChat(w http.ResponseWriter, r *http.Request) {
	err := h.sessions.Update(r.Context(), middleware.SessionID(r.Context()), func(state *chat.State) error {
		state.ClearChat()
		return nil
	})
	if err != nil {
		h.logger.Error("clear chat failed", zap.Error(err))
		utils.RespondError(w, http.StatusInternalServerError, "Ошибка: "+err.Error())
		return
	}
	utils.RespondSuccess(w, "")
}
