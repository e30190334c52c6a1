package bootstrap

import "time"

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new one
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingQuestGate   = "Starting QuestGate"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
)

// =============================================================================
// Event System Configuration
// =============================================================================

const (
	// EventRetryMaxDelay caps the exponential backoff between publish retries
	EventRetryMaxDelay = 30 * time.Second

	// EventQueueSize is the worker pool queue length shared by retries and probes
	EventQueueSize = 256
)

// Log messages for event system initialization
const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// =============================================================================
// Ledger Configuration
// =============================================================================

const (
	// LedgerRetryInitialInterval is the first backoff step for ledger retries
	LedgerRetryInitialInterval = 200 * time.Millisecond

	// LedgerRetryMaxInterval caps the ledger backoff
	LedgerRetryMaxInterval = 2 * time.Second

	// JobNameLedgerProbe names the scheduled health probe in logs
	JobNameLedgerProbe = "ledger_health_probe"
)

const (
	LogMsgLedgerDryRun      = "TREASURY_URL not set, rewards and transfers run in dry-run mode"
	LogMsgLedgerInitialized = "Ledger clients initialized"
)

// =============================================================================
// Catalog Messages
// =============================================================================

const (
	LogMsgLoadingCatalog      = "Loading marketplace catalog from JSON config..."
	LogMsgCatalogLoaded       = "Marketplace catalog loaded"
	ErrMsgFailedLoadCatalog   = "failed to load marketplace catalog"
	LogMsgServicesInitialized = "Services initialized"
)

// =============================================================================
// Event Handler Configuration
// =============================================================================

// Log messages for event handler registration
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgDeadLetterReplayFailed     = "Dead-letter replay failed"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
	LogMsgTelemetryShutdownFailed    = "Telemetry shutdown failed"
)
