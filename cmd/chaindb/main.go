package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"chaindb/internal/configuration"
	"chaindb/internal/configuration/properties"
	"chaindb/internal/logging"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(),
		os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	config, err := configuration.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "Error", err)
		os.Exit(1)
	}

	logging.Init(config.Application.LogLevel, config.Application.LogFormat)
	slog.Info("Starting database...", "profile", config.Application.Profile)

	services, err := NewServices(properties.NewProvider(config))
	if err != nil {
		slog.Error("Failed to initialize services", "Error", err)
		os.Exit(1)
	}

	if err := services.Run(ctx); err != nil {
		slog.Error("Database stopped with error", "Error", err)
		os.Exit(1)
	}
	slog.Info("Database stopped")
}
