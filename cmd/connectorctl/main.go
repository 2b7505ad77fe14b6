package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/fr0stylo/contentconnector/internal/cli"
	"github.com/fr0stylo/contentconnector/internal/config"
	"github.com/fr0stylo/contentconnector/internal/observability"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("No .env file loaded", "error", err)
	}

	cfg, err := config.LoadForTool()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(observability.NewLogger(os.Stderr, cfg.Log.Level, cfg.Log.Format))

	if err := cli.NewRootCmd(cli.OpenDatabase, cfg.Database.Path).Execute(); err != nil {
		slog.Error("connectorctl failed", "error", err)
		os.Exit(1)
	}
}
