package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	w := httptest.NewRecorder()

	HandleHealthz().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `{"status":"ok"}`+"\n", w.Body.String())
}

func TestHandleReadyz(t *testing.T) {
	tests := []struct {
		name       string
		pingErr    error
		ledgerErr  error
		noLedger   bool
		wantStatus int
		wantBody   string
	}{
		{"all healthy", nil, nil, false, http.StatusOK, `"status":"ok"`},
		{"no ledger probe", nil, nil, true, http.StatusOK, `"status":"ok"`},
		{"database down", assert.AnError, nil, false, http.StatusServiceUnavailable, HealthMsgDatabaseDown},
		{"database timeout", context.DeadlineExceeded, nil, false, http.StatusServiceUnavailable, HealthMsgDatabaseDown},
		{"ledger down", nil, errors.New("mirror 503"), false, http.StatusServiceUnavailable, HealthMsgLedgerDown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB := &MockDBPool{}
			mockDB.On("Ping", mock.Anything).Return(tt.pingErr)

			var ledger LedgerStatus
			if !tt.noLedger {
				status := &MockLedgerStatus{}
				status.On("Status").Return(time.Now(), tt.ledgerErr)
				ledger = status
			}

			req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
			w := httptest.NewRecorder()
			HandleReadyz(mockDB, ledger).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.wantBody)
			mockDB.AssertExpectations(t)
		})
	}
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	w := httptest.NewRecorder()

	HandleVersion().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"go_version":"go`)
	assert.Contains(t, w.Body.String(), `"service":"questgate"`)
}

func TestGetVersionInfo(t *testing.T) {
	original := Version
	t.Cleanup(func() { Version = original })

	Version = "dev"
	t.Setenv("VERSION", "1.2.3")
	assert.Equal(t, "1.2.3", getVersionInfo())

	Version = "2.0.0"
	assert.Equal(t, "2.0.0", getVersionInfo())
}

func TestBuildVersionInfo_LdflagsWin(t *testing.T) {
	origTime, origCommit := BuildTime, GitCommit
	t.Cleanup(func() { BuildTime, GitCommit = origTime, origCommit })

	BuildTime, GitCommit = "2026-01-02T03:04:05Z", "abc123"
	info := buildVersionInfo()
	assert.Equal(t, "2026-01-02T03:04:05Z", info.BuildTime)
	assert.Equal(t, "abc123", info.GitCommit)
	assert.Equal(t, ServiceName, info.Service)
}
