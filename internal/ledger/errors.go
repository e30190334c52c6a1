package ledger

import (
	"errors"
	"fmt"
	"net"
	"net/http"
)

// StatusError is a non-2xx response from a ledger service
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
}

// Temporary reports whether the request may succeed if repeated
func (e *StatusError) Temporary() bool {
	return e.StatusCode >= http.StatusInternalServerError ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode == http.StatusRequestTimeout
}

// MayHaveExecuted reports whether the server could have applied the request
// before failing. 503, 429 and 408 are refusals before any work is done.
func (e *StatusError) MayHaveExecuted() bool {
	switch e.StatusCode {
	case http.StatusServiceUnavailable, http.StatusTooManyRequests, http.StatusRequestTimeout:
		return false
	}
	return e.StatusCode >= http.StatusInternalServerError
}

// neverSent reports whether a transport error happened before the request
// reached the server, i.e. while dialling
func neverSent(err error) bool {
	var opErr *net.OpError
	if errors.As(err, &opErr) && opErr.Op == "dial" {
		return true
	}
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}
