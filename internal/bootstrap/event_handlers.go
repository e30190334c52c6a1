package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector, which turns gate,
// claim and marketplace events into Prometheus counters.
func RegisterEventHandlers(bus event.Bus) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(bus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)
	return nil
}

// ReplayDeadLetters redelivers events a previous run could not publish.
// Failures are logged only; a stale dead-letter file never blocks startup.
func ReplayDeadLetters(ctx context.Context, publisher *event.ResilientPublisher) event.ReplayResult {
	res, err := publisher.ReplayDeadLetters(ctx)
	if err != nil {
		slog.Warn(LogMsgDeadLetterReplayFailed, "error", err)
	}
	return res
}
