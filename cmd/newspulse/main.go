package main

import (
	"context"
	"os"

	"github.com/joho/godotenv"

	"NewsPulse/internal/app"
	"NewsPulse/internal/config"
	"NewsPulse/internal/logging"
)

func main() {
	// .env is optional; real deployments set the keys directly.
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)

	application := app.New(cfg, logger)

	if err := application.Run(ctx); err != nil {
		logger.Error("application stopped", "error", err)
		os.Exit(1)
	}
}
