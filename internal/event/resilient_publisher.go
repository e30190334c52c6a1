package event

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/QuestGate_Go/internal/logger"
	"github.com/osse101/QuestGate_Go/internal/worker"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries     uint64
	InitialDelay   time.Duration
	MaxDelay       time.Duration
	DeadLetterPath string // empty disables the dead-letter file
}

// DefaultResilientConfig returns the retry defaults
func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		MaxRetries:   DefaultRetryMaxAttempts,
		InitialDelay: DefaultRetryInitialDelay,
		MaxDelay:     DefaultRetryMaxDelay,
	}
}

// ResilientPublisher wraps a Bus so that a failed publish is retried in the
// background on a worker pool and, once retries are exhausted, written to a
// dead-letter file. Publish never returns the inner bus error to the caller.
type ResilientPublisher struct {
	inner      Bus
	pool       *worker.Pool
	config     ResilientConfig
	deadLetter *DeadLetterWriter

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewResilientPublisher creates a new ResilientPublisher. Retries run on pool,
// which the caller starts and stops.
func NewResilientPublisher(inner Bus, pool *worker.Pool, config ResilientConfig) (*ResilientPublisher, error) {
	p := &ResilientPublisher{
		inner:  inner,
		pool:   pool,
		config: config,
	}
	if config.DeadLetterPath != "" {
		dlw, err := NewDeadLetterWriter(config.DeadLetterPath)
		if err != nil {
			return nil, err
		}
		p.deadLetter = dlw
	}
	p.ctx, p.cancel = context.WithCancel(context.Background())
	return p, nil
}

// Publish delivers the event to the inner bus. A failure is logged and handed
// to a background retry; the caller always gets nil.
func (p *ResilientPublisher) Publish(ctx context.Context, event Event) error {
	err := p.inner.Publish(ctx, event)
	if err == nil {
		return nil
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", event.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	job := worker.JobFunc(func(context.Context) error {
		defer p.wg.Done()
		p.retry(event, err)
		return nil
	})
	if !p.pool.TryEnqueue(job) {
		p.wg.Done()
		logger.Warn(LogMsgRetryQueueFull, "event_type", event.Type)
		p.writeDeadLetter(event, 1, err)
	}

	return nil
}

func (p *ResilientPublisher) retry(event Event, firstErr error) {
	if p.config.MaxRetries == 0 {
		p.writeDeadLetter(event, 1, firstErr)
		return
	}

	select {
	case <-time.After(p.config.InitialDelay):
	case <-p.ctx.Done():
		p.writeDeadLetter(event, 1, firstErr)
		return
	}

	expo := backoff.NewExponentialBackOff()
	expo.InitialInterval = p.config.InitialDelay
	expo.MaxInterval = p.config.MaxDelay
	expo.MaxElapsedTime = 0
	expo.RandomizationFactor = 0

	// The first retry runs after the wait above, the rest follow expo
	b := backoff.WithContext(backoff.WithMaxRetries(expo, p.config.MaxRetries-1), p.ctx)

	attempts := 1
	lastErr := firstErr
	err := backoff.Retry(func() error {
		attempts++
		if err := p.inner.Publish(p.ctx, event); err != nil {
			lastErr = err
			logger.Warn(LogMsgEventRetryFailed,
				"event_type", event.Type,
				"attempt", attempts,
				"error", err)
			return err
		}
		return nil
	}, b)

	if err == nil {
		logger.Info(LogMsgEventRetrySucceeded, "event_type", event.Type, "attempt", attempts)
		return
	}
	logger.Error(LogMsgEventRetryExhausted, "event_type", event.Type, "attempts", attempts)
	p.writeDeadLetter(event, attempts, lastErr)
}

func (p *ResilientPublisher) writeDeadLetter(event Event, attempts int, lastErr error) {
	if p.deadLetter == nil {
		return
	}
	if err := p.deadLetter.Write(event, attempts, lastErr); err != nil {
		logger.Error(LogMsgDeadLetterWriteFailed, "event_type", event.Type, "error", err)
	}
}

// ReplayDeadLetters re-publishes dead-lettered events straight to the inner
// bus. Call it after subscribers are registered.
func (p *ResilientPublisher) ReplayDeadLetters(ctx context.Context) (ReplayResult, error) {
	if p.deadLetter == nil {
		return ReplayResult{}, nil
	}
	return p.deadLetter.Replay(ctx, p.inner)
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

// Shutdown cancels pending backoffs, waits for in-flight retries to
// dead-letter their events and closes the dead-letter file.
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.cancel()

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if p.deadLetter != nil {
		return p.deadLetter.Close()
	}
	return nil
}
