package event

import "time"

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Retry configuration defaults
const (
	// DefaultRetryMaxAttempts is the default number of retries after the first failure
	DefaultRetryMaxAttempts = 5

	// DefaultRetryInitialDelay is the first backoff interval (2s, 4s, 8s, ...)
	DefaultRetryInitialDelay = 2 * time.Second

	// DefaultRetryMaxDelay caps a single backoff interval
	DefaultRetryMaxDelay = 30 * time.Second
)

// Dead letter file configuration
const (
	// DeadLetterFilePermissions is the file permission mode for dead-letter files
	DeadLetterFilePermissions = 0644

	// MaxDeadLetterLineBytes bounds a single JSONL line when replaying
	MaxDeadLetterLineBytes = 1 << 20
)

// Log message constants
const (
	LogMsgEventPublishFailed    = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull        = "Retry queue unavailable, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed = "Failed to write to dead letter"
	LogMsgEventRetryExhausted   = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed      = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded   = "Event retry succeeded"
	LogMsgEventDeadLettered     = "event_dead_lettered"
	LogMsgDeadLettersReplayed   = "Dead-lettered events replayed"
)

// ErrMsgHandlersFailedFormat wraps the joined handler errors
const ErrMsgHandlersFailedFormat = "%d handler(s) failed for %s: %w"
