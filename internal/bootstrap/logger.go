package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/QuestGate_Go/internal/config"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

// SetupLogger installs the application logger. Output always goes to stdout;
// when cfg.LogDir is set a timestamped session file is added and old session
// files beyond the retention count are removed. The returned file is nil when
// no LogDir is configured, otherwise the caller must close it.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	logCfg := logger.ForEnvironment(cfg.Environment)
	if cfg.LogLevel != "" {
		logCfg.Level = cfg.LogLevel
	}
	if cfg.LogFormat != "" {
		logCfg.Format = cfg.LogFormat
	}
	if cfg.ServiceName != "" {
		logCfg.ServiceName = cfg.ServiceName
	}
	if cfg.Version != "" {
		logCfg.Version = cfg.Version
	}

	var (
		out     io.Writer = os.Stdout
		logFile *os.File
	)

	if cfg.LogDir != "" {
		if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
		}

		// Make room for the new session file
		cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

		timestamp := time.Now().Format(LogFileTimestampFormat)
		logFileName := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, timestamp))

		f, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
		}
		logFile = f
		out = io.MultiWriter(os.Stdout, logFile)
	}

	logger.InitLoggerWithWriter(logCfg, out)

	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel().String(), "file", logFileName(logFile))
	slog.Info(LogMsgStartingQuestGate,
		"environment", cfg.Environment,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"db_host", cfg.DBHost,
		"db_port", cfg.DBPort,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"ledger_network", cfg.LedgerNetwork,
		"mirror_node_url", cfg.MirrorNodeURL)

	return logFile, nil
}

func logFileName(f *os.File) string {
	if f == nil {
		return ""
	}
	return f.Name()
}

// cleanupLogs removes the oldest session files so at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	sort.Strings(logFiles)

	for len(logFiles) > keep {
		if err := os.Remove(filepath.Join(logDir, logFiles[0])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[0], "error", err)
		}
		logFiles = logFiles[1:]
	}
}
