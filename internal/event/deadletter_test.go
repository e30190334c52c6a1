package event

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

func newTestDeadLetter(t *testing.T) (*DeadLetterWriter, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deadletter.jsonl")
	dlw, err := NewDeadLetterWriter(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = dlw.Close() })
	return dlw, path
}

func soldEvent(id int64) Event {
	return NewListingSoldEvent(domain.Purchase{ListingID: id, Price: 10, Seller: "0.0.1", Buyer: "0.0.2"})
}

func TestReadDeadLetters(t *testing.T) {
	input := strings.Join([]string{
		`{"schema_version":"1.0","event":{"version":"1.0","type":"listing.sold","payload":{"listing_id":1}},"attempts":3}`,
		``,
		`not json`,
		`{"schema_version":"1.0","event":{}}`,
	}, "\n")

	entries, malformed, err := ReadDeadLetters(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, Type("listing.sold"), entries[0].Event.Type)
	assert.Equal(t, 3, entries[0].Attempts)
	assert.Len(t, malformed, 2)
}

func TestDeadLetterWriter_ReplayDeliversAndTruncates(t *testing.T) {
	dlw, path := newTestDeadLetter(t)
	require.NoError(t, dlw.Write(soldEvent(1), 3, errors.New("down")))
	require.NoError(t, dlw.Write(soldEvent(2), 3, errors.New("down")))

	bus := &mockBus{}
	res, err := dlw.Replay(context.Background(), bus)
	require.NoError(t, err)
	assert.Equal(t, ReplayResult{Replayed: 2}, res)
	assert.Equal(t, 2, bus.CallCount())

	got, _, err := ReadDeadLetters(mustOpen(t, path))
	require.NoError(t, err)
	assert.Empty(t, got)

	payload, err := DecodePayload[domain.ListingSoldPayload](bus.calls[1].Payload)
	require.NoError(t, err)
	assert.Equal(t, int64(2), payload.ListingID)
}

func TestDeadLetterWriter_ReplayKeepsFailures(t *testing.T) {
	dlw, path := newTestDeadLetter(t)
	require.NoError(t, dlw.Write(soldEvent(1), 3, errors.New("down")))
	require.NoError(t, dlw.Write(soldEvent(2), 3, errors.New("down")))
	_, err := dlw.file.WriteString("garbage\n")
	require.NoError(t, err)

	bus := &mockBus{shouldFail: func(attempt int) bool { return attempt == 2 }}
	res, err := dlw.Replay(context.Background(), bus)
	require.NoError(t, err)
	assert.Equal(t, ReplayResult{Replayed: 1, Remaining: 1, Malformed: 1}, res)

	entries, malformed, err := ReadDeadLetters(mustOpen(t, path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 4, entries[0].Attempts)
	assert.Equal(t, "mock publish error", entries[0].LastError)
	assert.Equal(t, [][]byte{[]byte("garbage")}, malformed)

	// new writes still append after the rewrite
	require.NoError(t, dlw.Write(soldEvent(3), 1, nil))
	entries, _, err = ReadDeadLetters(mustOpen(t, path))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDeadLetterWriter_ReplayCancelledKeepsEverything(t *testing.T) {
	dlw, _ := newTestDeadLetter(t)
	require.NoError(t, dlw.Write(soldEvent(1), 1, nil))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	bus := &mockBus{}
	res, err := dlw.Replay(ctx, bus)
	require.NoError(t, err)
	assert.Equal(t, ReplayResult{Remaining: 1}, res)
	assert.Zero(t, bus.CallCount())
}

func TestResilientPublisher_ReplayWithoutDeadLetterFile(t *testing.T) {
	p, err := NewResilientPublisher(&mockBus{}, nil, ResilientConfig{})
	require.NoError(t, err)

	res, err := p.ReplayDeadLetters(context.Background())
	require.NoError(t, err)
	assert.Zero(t, res)
}

func mustOpen(t *testing.T, path string) *os.File {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = f.Close() })
	return f
}
