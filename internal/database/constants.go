package database

import "time"

// Pool defaults
const (
	DefaultMinConnections    = 2
	DefaultMaxConnections    = 10
	DefaultMaxConnIdleTime   = 5 * time.Minute
	DefaultMaxConnLifetime   = time.Hour
	DefaultHealthCheckPeriod = 30 * time.Second
	DefaultApplicationName   = "questgate"
)

// Error messages
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToLoadMigrations  = "failed to load migrations"
	ErrMsgFailedToApplyMigrations = "failed to apply migrations"
)

// Log messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Connected to claim store"
	LogMsgMigrationApplied                = "Applied migration"
	LogMsgSchemaUpToDate                  = "Database schema is up to date"
)
