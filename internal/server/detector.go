package server

import (
	"log/slog"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

type ipActivity struct {
	requests   int
	failedAuth int
}

// SuspiciousActivityDetector counts requests and auth failures per client IP.
// Each IP gets its own window starting at its first request; the LRU bounds
// how many IPs are tracked at once.
type SuspiciousActivityDetector struct {
	mu   sync.Mutex
	byIP *expirable.LRU[string, *ipActivity]
}

func NewSuspiciousActivityDetector() *SuspiciousActivityDetector {
	return &SuspiciousActivityDetector{
		byIP: expirable.NewLRU[string, *ipActivity](DetectorMaxTrackedIPs, nil, DetectorWindow),
	}
}

// caller holds s.mu
func (s *SuspiciousActivityDetector) entry(ip string) *ipActivity {
	if a, ok := s.byIP.Get(ip); ok {
		return a
	}
	a := &ipActivity{}
	s.byIP.Add(ip, a)
	return a
}

// RecordFailedAuth counts a rejected API key and alerts past the threshold
func (s *SuspiciousActivityDetector) RecordFailedAuth(ip string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.entry(ip)
	a.failedAuth++
	if a.failedAuth >= DetectorFailedAuthAlert {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", a.failedAuth)
	}
}

// RecordRequest counts a request and reports whether ip is still under the limit
func (s *SuspiciousActivityDetector) RecordRequest(ip string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := s.entry(ip)
	a.requests++
	if a.requests <= DetectorMaxRequests {
		return true
	}
	if a.requests%DetectorLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, "ip", ip, "count_in_window", a.requests)
	}
	return false
}

func (s *SuspiciousActivityDetector) activity(ip string) ipActivity {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a, ok := s.byIP.Peek(ip); ok {
		return *a
	}
	return ipActivity{}
}
