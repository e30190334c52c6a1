package logger

import (
	"log/slog"
	"strings"
)

// Config describes how the default slog logger is built
type Config struct {
	Level       string // anything slog.Level accepts, plus "warning"
	Format      string // "json" or "text"
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values
func NewConfig(level, format, serviceName, version, environment string, addSource bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   addSource,
	}
}

// ForEnvironment returns the defaults for env: JSON at info in production,
// text at debug with source locations everywhere else.
func ForEnvironment(env string) Config {
	cfg := Config{
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: env,
	}
	switch strings.ToLower(env) {
	case EnvironmentProduction, "production", EnvironmentStaging:
		cfg.Level, cfg.Format = LogLevelInfo, LogFormatJSON
	case EnvironmentTest:
		cfg.Level, cfg.Format = LogLevelWarn, LogFormatText
	default:
		cfg.Level, cfg.Format, cfg.AddSource = LogLevelDebug, LogFormatText, true
	}
	return cfg
}

// LogLevel parses Level, falling back to info for unknown values
func (c Config) LogLevel() slog.Level {
	raw := strings.TrimSpace(c.Level)
	if strings.EqualFold(raw, LogLevelWarning) {
		return slog.LevelWarn
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// IsJSON reports whether records are emitted as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

func (c Config) baseAttrs() []any {
	attrs := []any{slog.String(AttrKeyService, c.ServiceName)}
	if c.Version != "" {
		attrs = append(attrs, slog.String(AttrKeyVersion, c.Version))
	}
	if c.Environment != "" {
		attrs = append(attrs, slog.String(AttrKeyEnvironment, c.Environment))
	}
	return attrs
}
