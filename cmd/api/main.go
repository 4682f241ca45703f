package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/app"
	"github.com/zhouzirui/health-assistant/backend/internal/config"
	"github.com/zhouzirui/health-assistant/backend/internal/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.App.LogLevel, cfg.App.Env)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer zl.Sync()
	zap.ReplaceGlobals(zl)

	if envErr != nil {
		zl.Warn("failed to load .env file, continuing with system environment variables only", zap.Error(envErr))
	}

	a, err := app.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("failed to initialize application", zap.Error(err))
	}
	defer a.Close()

	if err := a.Serve(ctx); err != nil {
		zl.Fatal("server error", zap.Error(err))
	}
}
