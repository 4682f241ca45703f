package knowledge

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
	"github.com/zhouzirui/health-assistant/backend/pkg/utils"
)

// Handler exposes the knowledge base read-only.
type Handler struct {
	kb knowledge.Store
}

func New(kb knowledge.Store) *Handler {
	return &Handler{kb: kb}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/knowledge", h.handleList)
	r.Get("/knowledge/{category}", h.handleCategory)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string][]knowledge.Category{"categories": h.kb.Categories()})
}

func (h *Handler) handleCategory(w http.ResponseWriter, r *http.Request) {
	category, ok := h.kb.FindCategory(chi.URLParam(r, "category"))
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "Категория не найдена")
		return
	}
	utils.RespondJSON(w, http.StatusOK, category)
}
