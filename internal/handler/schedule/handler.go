package schedule

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/middleware"
	"github.com/zhouzirui/health-assistant/backend/internal/model/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
	"github.com/zhouzirui/health-assistant/backend/pkg/utils"
)

// Handler serves the reminder poll, the medication schedule and deletions.
type Handler struct {
	sessions *session.Manager
	now      schedule.Clock
	logger   *zap.Logger
}

func New(sessions *session.Manager, clock schedule.Clock, logger *zap.Logger) *Handler {
	if clock == nil {
		clock = schedule.SystemClock(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{sessions: sessions, now: clock, logger: logger}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/get_reminders", h.handleDue)
	r.Get("/get_medication_schedule", h.handleMedicationSchedule)
	r.Post("/delete_reminder", h.handleDelete)
}

// handleDue is polled by the client every minute. One-shot reminders are consumed.
func (h *Handler) handleDue(w http.ResponseWriter, r *http.Request) {
	var items []schedule.DueItem
	err := h.sessions.Update(r.Context(), middleware.SessionID(r.Context()), func(state *chat.State) error {
		items = schedule.Due(state, h.now())
		return nil
	})
	if err != nil {
		h.fail(w, "poll reminders failed", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]schedule.DueItem{"reminders": items})
}

func (h *Handler) handleMedicationSchedule(w http.ResponseWriter, r *http.Request) {
	var entries []schedule.Entry
	err := h.sessions.View(r.Context(), middleware.SessionID(r.Context()), func(state *chat.State) error {
		entries = schedule.MedicationSchedule(state.Medications, h.now())
		return nil
	})
	if err != nil {
		h.fail(w, "load medication schedule failed", err)
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string][]schedule.Entry{"schedule": entries})
}

type deleteRequest struct {
	Index json.RawMessage `json:"index"`
	Type  string          `json:"type"`
}

// parseIndex accepts a JSON number or a numeric string. Numbers are truncated toward zero,
// so 1.0 and 1.9 both select index 1; strings must hold a plain integer.
func parseIndex(raw json.RawMessage) (int, bool) {
	raw = bytes.TrimSpace(raw)
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		index, err := strconv.Atoi(strings.TrimSpace(text))
		return index, err == nil
	}

	var number float64
	if err := json.Unmarshal(raw, &number); err != nil {
		return 0, false
	}
	if math.IsNaN(number) || math.Abs(number) > math.MaxInt32 {
		return 0, false
	}
	return int(math.Trunc(number)), true
}

// handleDelete removes a reminder or medication by its 0-based index.
func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var payload deleteRequest
	if err := utils.DecodeJSON(r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}
	if len(payload.Index) == 0 || string(payload.Index) == "null" {
		utils.RespondError(w, http.StatusBadRequest, "Некорректный запрос")
		return
	}

	index, ok := parseIndex(payload.Index)
	if !ok {
		utils.RespondError(w, http.StatusBadRequest, "Ошибка при удалении")
		return
	}

	var (
		removed string
		found   bool
	)
	err := h.sessions.Update(r.Context(), middleware.SessionID(r.Context()), func(state *chat.State) error {
		if payload.Type == schedule.TypeMedication {
			medication, ok := state.RemoveMedication(index)
			removed, found = medication.Name, ok
			return nil
		}
		reminder, ok := state.RemoveReminder(index)
		removed, found = reminder.Text, ok
		return nil
	})
	if err != nil {
		h.fail(w, "delete failed", err)
		return
	}
	if !found {
		utils.RespondError(w, http.StatusBadRequest, "Неверный индекс")
		return
	}
	utils.RespondSuccess(w, "Удалено: "+removed)
}

func (h *Handler) fail(w http.ResponseWriter, msg string, err error) {
	h.logger.Error(msg, zap.Error(err))
	utils.RespondError(w, http.StatusInternalServerError, "Ошибка: "+err.Error())
}
