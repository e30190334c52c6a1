package main

import (
	"context"
	"os"

	"github.com/osse101/QuestGate_Go/internal/bootstrap"
	"github.com/osse101/QuestGate_Go/internal/config"
	"github.com/osse101/QuestGate_Go/internal/handler"
	"github.com/osse101/QuestGate_Go/internal/telemetry"
)

// initLogger initializes the logger using centralized app configuration.
// The returned file is nil unless LOG_DIR is set.
func initLogger(cfg *config.Config) (*os.File, error) {
	return bootstrap.SetupLogger(cfg)
}

// initTracing installs the OTLP exporter when OTEL_ENDPOINT is set
func initTracing(ctx context.Context, cfg *config.Config) (telemetry.ShutdownFunc, error) {
	version := handler.Version
	if version == "dev" {
		version = cfg.Version
	}
	return telemetry.Setup(ctx, telemetry.Config{
		Endpoint:    cfg.OTelEndpoint,
		ServiceName: cfg.ServiceName,
		Version:     version,
		Environment: cfg.Environment,
	})
}
