// Package leaktest reports goroutines a test started but did not stop. It
// diffs goroutine stacks taken before and after, so a failure names the
// leaked goroutines instead of only counting them.
package leaktest

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
	"time"
)

const (
	settleTimeout = time.Second
	pollInterval  = 10 * time.Millisecond
)

// backgroundFuncs are long-lived library goroutines that are not leaks
var backgroundFuncs = []string{
	"github.com/hashicorp/golang-lru/v2/expirable.NewLRU",
	"go.opentelemetry.io/otel/sdk/trace.NewBatchSpanProcessor",
	"github.com/jackc/pgx/v5/pgxpool.NewWithConfig",
	"net/http.(*persistConn)",
}

// GoroutineChecker records the goroutines alive at creation time
type GoroutineChecker struct {
	t      testing.TB
	before map[string]struct{}
	ignore []string
}

// NewGoroutineChecker snapshots the running goroutines. Extra ignore entries
// are matched as substrings of a goroutine's stack.
func NewGoroutineChecker(t testing.TB, ignore ...string) *GoroutineChecker {
	t.Helper()

	runtime.Gosched()
	time.Sleep(pollInterval)

	before := make(map[string]struct{})
	for _, g := range goroutines() {
		before[g.id] = struct{}{}
	}
	return &GoroutineChecker{
		t:      t,
		before: before,
		ignore: append(append([]string(nil), backgroundFuncs...), ignore...),
	}
}

// Check fails the test when more than tolerance new goroutines remain after
// settleTimeout.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()

	deadline := time.Now().Add(settleTimeout)
	leaked := g.leaked()
	for len(leaked) > tolerance && time.Now().Before(deadline) {
		time.Sleep(pollInterval)
		leaked = g.leaked()
	}

	if len(leaked) > tolerance {
		stacks := make([]string, len(leaked))
		for i, l := range leaked {
			stacks[i] = l.stack
		}
		g.t.Errorf("leaked %d goroutine(s) (tolerance=%d):\n\n%s",
			len(leaked), tolerance, strings.Join(stacks, "\n\n"))
	}
}

func (g *GoroutineChecker) leaked() []goroutine {
	var out []goroutine
	for _, gr := range goroutines() {
		if _, ok := g.before[gr.id]; ok {
			continue
		}
		if gr.matches(g.ignore) {
			continue
		}
		out = append(out, gr)
	}
	return out
}

// CheckNoGoroutineLeak runs fn and fails the test if it leaves goroutines behind
func CheckNoGoroutineLeak(t testing.TB, fn func()) {
	t.Helper()

	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

type goroutine struct {
	id    string
	stack string
}

func (g goroutine) matches(substrings []string) bool {
	for _, s := range substrings {
		if strings.Contains(g.stack, s) {
			return true
		}
	}
	return false
}

// goroutines parses runtime.Stack output, skipping the calling goroutine
func goroutines() []goroutine {
	buf := make([]byte, 64<<10)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			buf = buf[:n]
			break
		}
		buf = make([]byte, 2*len(buf))
	}

	blocks := bytes.Split(buf, []byte("\n\n"))
	out := make([]goroutine, 0, len(blocks))
	for i, block := range blocks {
		if i == 0 {
			continue // current goroutine
		}
		header, _, _ := bytes.Cut(block, []byte("\n"))
		// "goroutine 18 [chan receive]:"
		fields := strings.Fields(string(header))
		if len(fields) < 2 || fields[0] != "goroutine" {
			continue
		}
		out = append(out, goroutine{id: fields[1], stack: string(block)})
	}
	return out
}
