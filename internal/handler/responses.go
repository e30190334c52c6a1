package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Responses are small; buffers that grew past maxPooledBuffer are dropped.
const maxPooledBuffer = 64 << 10

var responseBuffers = sync.Pool{
	New: func() any { return new(bytes.Buffer) },
}

// respondJSON sends a JSON response with the given status code and payload.
// The body is encoded before any header is written so an encoding failure
// can still become a 500.
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := responseBuffers.Get().(*bytes.Buffer)
	defer func() {
		if buf.Cap() <= maxPooledBuffer {
			buf.Reset()
			responseBuffers.Put(buf)
		}
	}()

	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error("Failed to encode JSON response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"` + ErrMsgGenericServerError + `"}` + "\n"))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response buffer", "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a service failure and maps it to a user-facing response
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(opName+" failed", "error", err)
	} else {
		log.Warn(opName+" rejected", "error", err)
	}
	respondError(w, status, msg)
}

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors become a generic 500 so internals never leak.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidAddress):
		return http.StatusBadRequest, ErrMsgInvalidAddressError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, ErrMsgAccessDeniedError
	case errors.Is(err, domain.ErrListingNotFound):
		return http.StatusNotFound, ErrMsgListingNotFoundErr
	case errors.Is(err, domain.ErrClaimNotFound):
		return http.StatusNotFound, ErrMsgClaimNotFoundError
	case errors.Is(err, domain.ErrListingNotActive):
		return http.StatusConflict, ErrMsgListingNotActiveErr
	case errors.Is(err, domain.ErrSelfPurchase):
		return http.StatusBadRequest, ErrMsgSelfPurchaseError
	case errors.Is(err, domain.ErrLookupFailed):
		return http.StatusServiceUnavailable, ErrMsgLedgerUnavailable
	case errors.Is(err, domain.ErrIssuanceFailed):
		return http.StatusBadGateway, ErrMsgIssuanceFailedError
	case errors.Is(err, domain.ErrIssuanceRejected):
		return http.StatusUnprocessableEntity, ErrMsgIssuanceRejected
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
