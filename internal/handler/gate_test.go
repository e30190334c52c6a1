package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

func TestHandleCheckGate(t *testing.T) {
	checkedAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	readAt := checkedAt.Add(-45 * time.Second)

	tests := []struct {
		name        string
		query       string
		setup       func(*MockGateService)
		wantStatus  int
		wantAllowed bool
		wantReason  domain.GateReason
		wantAsOf    time.Time
		wantError   string
	}{
		{
			name:  "allowed via nft",
			query: "?address=0.0.1234",
			setup: func(m *MockGateService) {
				m.On("Check", mock.Anything, "0.0.1234").Return(&domain.GateCheck{
					Address:      "0.0.1234",
					Decision:     domain.GateDecision{Allowed: true, Reason: domain.GateReasonNFTHeld},
					Holdings:     domain.HoldingsSnapshot{AccessNFTBalance: 1},
					HoldingsAsOf: checkedAt,
					CheckedAt:    checkedAt,
				}, nil)
			},
			wantStatus:  http.StatusOK,
			wantAllowed: true,
			wantReason:  domain.GateReasonNFTHeld,
			wantAsOf:    checkedAt,
		},
		{
			name:  "denied is not an error",
			query: "?address=0.0.1234",
			setup: func(m *MockGateService) {
				m.On("Check", mock.Anything, "0.0.1234").Return(&domain.GateCheck{
					Address:      "0.0.1234",
					Decision:     domain.GateDecision{Allowed: false, Reason: domain.GateReasonInsufficientHoldings},
					Holdings:     domain.HoldingsSnapshot{GameTokenBalance: 50},
					Cached:       true,
					HoldingsAsOf: readAt,
					CheckedAt:    checkedAt,
				}, nil)
			},
			wantStatus:  http.StatusOK,
			wantAllowed: false,
			wantReason:  domain.GateReasonInsufficientHoldings,
			wantAsOf:    readAt,
		},
		{
			name:       "missing address",
			query:      "",
			setup:      func(*MockGateService) {},
			wantStatus: http.StatusBadRequest,
			wantError:  fmt.Sprintf(ErrMsgMissingQueryParam, "address"),
		},
		{
			name:  "invalid address",
			query: "?address=nope",
			setup: func(m *MockGateService) {
				m.On("Check", mock.Anything, "nope").Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidAddress, "nope"))
			},
			wantStatus: http.StatusBadRequest,
			wantError:  ErrMsgInvalidAddressError,
		},
		{
			name:  "ledger down",
			query: "?address=0.0.1234",
			setup: func(m *MockGateService) {
				m.On("Check", mock.Anything, "0.0.1234").Return(nil, fmt.Errorf("%w: 503", domain.ErrLookupFailed))
			},
			wantStatus: http.StatusServiceUnavailable,
			wantError:  ErrMsgLedgerUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockGateService)
			tt.setup(svc)

			req := httptest.NewRequest(http.MethodGet, "/api/v1/check-gate"+tt.query, nil)
			w := httptest.NewRecorder()
			HandleCheckGate(svc).ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantError != "" {
				var resp ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
				assert.Equal(t, tt.wantError, resp.Error)
				return
			}

			var resp CheckGateResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantAllowed, resp.Allowed)
			assert.Equal(t, tt.wantReason, resp.Reason)
			assert.True(t, checkedAt.Equal(resp.CheckedAt))
			assert.True(t, tt.wantAsOf.Equal(resp.HoldingsAsOf))
			svc.AssertExpectations(t)
		})
	}
}
