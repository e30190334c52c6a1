package bootstrap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/osse101/QuestGate_Go/internal/config"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/worker"
)

// InitializeEventSystem creates the in-memory event bus and wraps it in a
// resilient publisher whose retries run on pool. The dead-letter directory is
// created when a path is configured.
func InitializeEventSystem(cfg *config.Config, pool *worker.Pool) (*event.MemoryBus, *event.ResilientPublisher, error) {
	eventBus := event.NewMemoryBus()

	resilientCfg := event.DefaultResilientConfig()
	if cfg.EventMaxRetries > 0 {
		resilientCfg.MaxRetries = cfg.EventMaxRetries
	}
	if cfg.EventRetryDelay > 0 {
		resilientCfg.InitialDelay = cfg.EventRetryDelay
	}
	resilientCfg.MaxDelay = EventRetryMaxDelay
	resilientCfg.DeadLetterPath = cfg.EventDeadLetterPath

	if resilientCfg.DeadLetterPath != "" {
		if err := os.MkdirAll(filepath.Dir(resilientCfg.DeadLetterPath), DirPermission); err != nil {
			return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateDeadLetterDir, err)
		}
	}

	resilientPublisher, err := event.NewResilientPublisher(eventBus, pool, resilientCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", LogMsgFailedCreateResilientPublisher, err)
	}

	slog.Info(LogMsgEventSystemInitialized,
		"max_retries", resilientCfg.MaxRetries,
		"retry_delay", resilientCfg.InitialDelay,
		"deadletter_path", resilientCfg.DeadLetterPath)

	return eventBus, resilientPublisher, nil
}
