package ledger

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/QuestGate_Go/internal/logger"
)

// Pinger is a ledger endpoint that can be probed
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthProbe periodically pings the mirror node and remembers the result for
// readiness checks. It implements worker.Job.
type HealthProbe struct {
	pinger  Pinger
	timeout time.Duration

	mu        sync.RWMutex
	lastErr   error
	checkedAt time.Time
}

// NewHealthProbe creates a probe. Until the first run it reports healthy.
func NewHealthProbe(pinger Pinger, timeout time.Duration) *HealthProbe {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HealthProbe{pinger: pinger, timeout: timeout}
}

// Process runs one probe
func (h *HealthProbe) Process(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	err := h.pinger.Ping(ctx)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgProbeFailed, "error", err)
	}

	h.mu.Lock()
	h.lastErr = err
	h.checkedAt = time.Now()
	h.mu.Unlock()
	return nil
}

// Status returns when the last probe ran and its error, nil when healthy
func (h *HealthProbe) Status() (time.Time, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.checkedAt, h.lastErr
}
