package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/server"
	"github.com/osse101/QuestGate_Go/internal/telemetry"
	"github.com/osse101/QuestGate_Go/internal/worker"
)

// ShutdownComponents holds all components that need graceful shutdown.
type ShutdownComponents struct {
	Server             *server.Server
	Scheduler          *worker.Scheduler
	ResilientPublisher *event.ResilientPublisher
	WorkerPool         *worker.Pool
	Telemetry          telemetry.ShutdownFunc
}

// GracefulShutdown stops components in dependency order:
// 1. HTTP server (stop accepting new requests, drain in-flight ones)
// 2. Scheduler (no new probe jobs)
// 3. Event publisher (flush pending retries to the dead-letter file)
// 4. Worker pool
// 5. Telemetry (flush spans)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
// The database pool is closed by the caller.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Scheduler != nil {
		components.Scheduler.Stop()
	}

	if components.ResilientPublisher != nil {
		slog.Info(LogMsgShuttingDownEventPublisher)
		if err := components.ResilientPublisher.Shutdown(ctx); err != nil {
			slog.Error(LogMsgResilientPublisherFailed, "error", err)
		}
	}

	if components.WorkerPool != nil {
		components.WorkerPool.Stop()
	}

	if components.Telemetry != nil {
		if err := components.Telemetry(ctx); err != nil {
			slog.Error(LogMsgTelemetryShutdownFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
