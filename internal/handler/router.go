package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/handler/chat"
	"github.com/zhouzirui/health-assistant/backend/internal/handler/knowledge"
	"github.com/zhouzirui/health-assistant/backend/internal/handler/profile"
	"github.com/zhouzirui/health-assistant/backend/internal/handler/schedule"
	middlewarePkg "github.com/zhouzirui/health-assistant/backend/internal/middleware"
	knowledgeModel "github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
	clock "github.com/zhouzirui/health-assistant/backend/internal/schedule"
	"github.com/zhouzirui/health-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
)

// Dependencies bundles what the routes need.
type Dependencies struct {
	Sessions  *session.Manager
	Assistant *assistant.Service
	Knowledge knowledgeModel.Store
	Clock     clock.Clock
	Logger    *zap.Logger

	CookieName   string
	CookieMaxAge time.Duration
	CookieSecure bool
}

// NewRouter wires HTTP routes to core services.
func NewRouter(deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	// Knowledge is session independent.
	knowledge.New(deps.Knowledge).RegisterRoutes(r)

	r.Group(func(sr chi.Router) {
		sr.Use(middlewarePkg.Session(middlewarePkg.SessionOptions{
			CookieName: deps.CookieName,
			MaxAge:     deps.CookieMaxAge,
			Secure:     deps.CookieSecure,
		}))

		chat.New(deps.Sessions, deps.Assistant, deps.Logger).RegisterRoutes(sr)
		schedule.New(deps.Sessions, deps.Clock, deps.Logger).RegisterRoutes(sr)
		profile.New(deps.Sessions, deps.Logger).RegisterRoutes(sr)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	return r
}
