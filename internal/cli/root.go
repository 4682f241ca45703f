// Package cli implements the healthctl commands.
package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/zhouzirui/health-assistant/backend/internal/app"
	"github.com/zhouzirui/health-assistant/backend/internal/config"
	"github.com/zhouzirui/health-assistant/backend/internal/logger"
)

var (
	envFile   string
	sessionID string
	logLevel  string
)

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:          "healthctl",
	Short:        "Health assistant from the terminal",
	Long:         "Chat with the health assistant, browse the knowledge base and poll reminders without a browser.",
	SilenceUsage: true,
}

func init() {
	RootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "dotenv file to load before reading the environment")
	RootCmd.PersistentFlags().StringVarP(&sessionID, "session", "s", "cli", "Session id the commands operate on")
	RootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override LOG_LEVEL")
}

// bootstrap loads configuration and builds the app. The CLI defaults to a quiet logger.
func bootstrap(cmd *cobra.Command) (*app.App, error) {
	envErr := godotenv.Load(envFile)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	level := logLevel
	if level == "" {
		level = "warn"
		if cmd.Name() == "serve" {
			level = cfg.App.LogLevel
		}
	}
	zl, err := logger.New(level, cfg.App.Env)
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(zl)
	if envErr != nil {
		zl.Warn("failed to load .env file, continuing with system environment variables only",
			zap.String("path", envFile), zap.Error(envErr))
	}

	return app.New(cmd.Context(), cfg, zl)
}
