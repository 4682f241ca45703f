// Package app wires configuration, storage and services into a runnable assistant.
package app

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/config"
	"github.com/zhouzirui/health-assistant/backend/internal/handler"
	"github.com/zhouzirui/health-assistant/backend/internal/model/knowledge"
	"github.com/zhouzirui/health-assistant/backend/internal/render"
	"github.com/zhouzirui/health-assistant/backend/internal/schedule"
	"github.com/zhouzirui/health-assistant/backend/internal/service/ai"
	"github.com/zhouzirui/health-assistant/backend/internal/service/assistant"
	"github.com/zhouzirui/health-assistant/backend/internal/service/session"
)

// App holds the long-lived components shared by the HTTP server and the CLI.
type App struct {
	Config    *config.Config
	Logger    *zap.Logger
	Clock     schedule.Clock
	Knowledge knowledge.Store
	Store     session.Store
	Sessions  *session.Manager
	Assistant *assistant.Service
}

// New builds every component from cfg. A missing or broken model configuration is logged
// and leaves the assistant in command-only mode.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	store, err := OpenStore(ctx, cfg.Store)
	if err != nil {
		return nil, err
	}
	logger.Info("session store ready", zap.String("driver", cfg.Store.Driver))

	clock := schedule.SystemClock(cfg.App.Location)
	kb := knowledge.NewMemoryStore(knowledge.Seed())

	generator, err := ai.NewGenerator(ctx, cfg.AI)
	switch {
	case err != nil:
		logger.Warn("failed to initialize AI service, continuing without model", zap.Error(err))
		generator = nil
	case generator == nil:
		logger.Warn("no model credentials configured, free-form questions are disabled")
	default:
		logger.Info("AI service initialized", zap.String("provider", cfg.AI.ResolvedProvider()))
	}

	svc := assistant.NewService(assistant.Options{
		Knowledge: kb,
		Generator: generator,
		Formatter: render.NewMarkdown(),
		Clock:     clock,
		Timeout:   cfg.AI.Timeout,
		Logger:    logger.Named("assistant"),
	})

	return &App{
		Config:    cfg,
		Logger:    logger,
		Clock:     clock,
		Knowledge: kb,
		Store:     store,
		Sessions:  session.NewManager(store),
		Assistant: svc,
	}, nil
}

// OpenStore opens the session store selected by cfg.Driver.
func OpenStore(ctx context.Context, cfg config.StoreConfig) (session.Store, error) {
	switch cfg.Driver {
	case config.StoreMemory, "":
		return session.NewMemoryStore(), nil
	case config.StoreRedis:
		store, err := session.NewRedisStore(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, cfg.TTL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.StoreSQLite:
		store, err := session.NewSQLiteStore(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported session store %q", cfg.Driver)
	}
}

// Router returns the HTTP handler for the app.
func (a *App) Router() http.Handler {
	return handler.NewRouter(handler.Dependencies{
		Sessions:     a.Sessions,
		Assistant:    a.Assistant,
		Knowledge:    a.Knowledge,
		Clock:        a.Clock,
		Logger:       a.Logger.Named("http"),
		CookieName:   a.Config.Store.CookieName,
		CookieMaxAge: a.Config.Store.TTL,
		CookieSecure: a.Config.Store.CookieSecure,
	})
}

// Close releases the session store.
func (a *App) Close() error {
	return a.Store.Close()
}
