package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/osse101/QuestGate_Go/internal/logger"
)

// RetryPolicy bounds how transient ledger failures are retried
type RetryPolicy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// DefaultRetryPolicy retries three times starting at 200ms
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:      3,
		InitialInterval: 200 * time.Millisecond,
		MaxInterval:     2 * time.Second,
	}
}

// NoRetry performs a single attempt
func NoRetry() RetryPolicy { return RetryPolicy{} }

func (p RetryPolicy) backOff(ctx context.Context) backoff.BackOffContext {
	var b backoff.BackOff = &backoff.ZeroBackOff{}
	if p.InitialInterval > 0 {
		expo := backoff.NewExponentialBackOff()
		expo.InitialInterval = p.InitialInterval
		if p.MaxInterval > 0 {
			expo.MaxInterval = p.MaxInterval
		}
		expo.MaxElapsedTime = 0
		b = expo
	}
	return backoff.WithContext(backoff.WithMaxRetries(b, p.MaxRetries), ctx)
}

// Retry runs op until it succeeds, fails with an error that does not match
// any of transient, or the policy is exhausted. The last error is returned
// unchanged so callers can classify it with errors.Is.
func Retry[T any](ctx context.Context, policy RetryPolicy, op func(context.Context) (T, error), transient ...error) (T, error) {
	attempt := 0
	return backoff.RetryWithData(func() (T, error) {
		attempt++
		v, err := op(ctx)
		if err == nil {
			return v, nil
		}
		if !isAny(err, transient) {
			return v, backoff.Permanent(err)
		}
		if uint64(attempt) <= policy.MaxRetries {
			logger.FromContext(ctx).Warn(LogMsgRetrying, "attempt", attempt, "error", err)
		}
		return v, err
	}, policy.backOff(ctx))
}

func isAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
