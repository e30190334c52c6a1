package event

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/osse101/QuestGate_Go/internal/logger"
)

// DeadLetterSchemaVersion is bumped whenever DeadLetterEntry changes shape
const DeadLetterSchemaVersion = "1.0"

// DeadLetterEntry is one undeliverable event, stored as a JSONL line
type DeadLetterEntry struct {
	SchemaVersion string    `json:"schema_version"`
	Timestamp     time.Time `json:"timestamp"`
	Event         Event     `json:"event"`
	Attempts      int       `json:"attempts"`
	LastError     string    `json:"last_error,omitempty"`
}

// ReplayResult summarises a dead-letter replay
type ReplayResult struct {
	Replayed  int
	Remaining int
	Malformed int
}

// DeadLetterWriter appends undeliverable events to a JSONL file and can
// replay them later.
type DeadLetterWriter struct {
	mu   sync.Mutex
	path string
	file *os.File
}

// NewDeadLetterWriter opens (or creates) the dead-letter file at path
func NewDeadLetterWriter(path string) (*DeadLetterWriter, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, DeadLetterFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("open dead letter file: %w", err)
	}
	return &DeadLetterWriter{path: path, file: f}, nil
}

// Write appends event with its delivery history
func (dlw *DeadLetterWriter) Write(event Event, attempts int, lastError error) error {
	entry := DeadLetterEntry{
		SchemaVersion: DeadLetterSchemaVersion,
		Timestamp:     time.Now().UTC(),
		Event:         event,
		Attempts:      attempts,
	}
	if lastError != nil {
		entry.LastError = lastError.Error()
	}

	logger.Warn(LogMsgEventDeadLettered,
		"event_type", event.Type,
		"attempts", attempts,
		"error", entry.LastError)

	line, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshal dead letter entry: %w", err)
	}

	dlw.mu.Lock()
	defer dlw.mu.Unlock()
	_, err = dlw.file.Write(append(line, '\n'))
	return err
}

// Replay publishes every stored event to bus and rewrites the file with the
// entries that failed again. Lines that do not decode are kept verbatim so
// nothing is lost to a schema change.
func (dlw *DeadLetterWriter) Replay(ctx context.Context, bus Bus) (ReplayResult, error) {
	dlw.mu.Lock()
	defer dlw.mu.Unlock()

	f, err := os.Open(dlw.path)
	if err != nil {
		return ReplayResult{}, fmt.Errorf("open dead letter file: %w", err)
	}
	entries, malformed, err := ReadDeadLetters(f)
	f.Close()
	if err != nil {
		return ReplayResult{}, err
	}

	res := ReplayResult{Malformed: len(malformed)}
	var keep bytes.Buffer
	for _, raw := range malformed {
		keep.Write(raw)
		keep.WriteByte('\n')
	}

	for _, entry := range entries {
		if ctx.Err() == nil {
			err := bus.Publish(ctx, entry.Event)
			if err == nil {
				res.Replayed++
				continue
			}
			entry.Attempts++
			entry.LastError = err.Error()
		}
		line, err := json.Marshal(entry)
		if err != nil {
			return res, fmt.Errorf("marshal dead letter entry: %w", err)
		}
		keep.Write(line)
		keep.WriteByte('\n')
		res.Remaining++
	}

	// The file is opened O_APPEND, so writes after the truncate land at offset 0.
	if err := dlw.file.Truncate(0); err != nil {
		return res, fmt.Errorf("truncate dead letter file: %w", err)
	}
	if _, err := dlw.file.Write(keep.Bytes()); err != nil {
		return res, fmt.Errorf("rewrite dead letter file: %w", err)
	}

	logger.Info(LogMsgDeadLettersReplayed,
		"replayed", res.Replayed,
		"remaining", res.Remaining,
		"malformed", res.Malformed)
	return res, nil
}

// Close closes the dead-letter file
func (dlw *DeadLetterWriter) Close() error {
	return dlw.file.Close()
}

// ReadDeadLetters decodes a JSONL dead-letter stream. Lines that are not
// valid entries are returned separately; blank lines are skipped.
func ReadDeadLetters(r io.Reader) ([]DeadLetterEntry, [][]byte, error) {
	var (
		entries   []DeadLetterEntry
		malformed [][]byte
	)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64<<10), MaxDeadLetterLineBytes)
	for scanner.Scan() {
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var entry DeadLetterEntry
		if err := json.Unmarshal(line, &entry); err != nil || entry.Event.Type == "" {
			malformed = append(malformed, bytes.Clone(line))
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read dead letter file: %w", err)
	}
	return entries, malformed, nil
}
