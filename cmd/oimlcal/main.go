package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/masslab/oimlcal/internal/cli"
	"github.com/masslab/oimlcal/internal/config"
	"github.com/masslab/oimlcal/internal/logging"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err == nil {
		slog.Debug("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	// Tag all log entries from this invocation with a run ID
	ctx := logging.WithRunID(context.Background())

	root := cli.NewRootCmd(cfg)
	if err := root.ExecuteContext(ctx); err != nil {
		logging.FromContext(ctx).Error("command failed", "error", err)
		os.Exit(1)
	}
}
