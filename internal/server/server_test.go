package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/marketplace"
)

type stubPool struct{ err error }

func (s stubPool) Ping(context.Context) error { return s.err }
func (s stubPool) Close()                     {}

type stubLedger struct{ err error }

func (s stubLedger) Status() (time.Time, error) { return time.Now(), s.err }

type mockGate struct{ mock.Mock }

func (m *mockGate) Check(ctx context.Context, address string) (*domain.GateCheck, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GateCheck), args.Error(1)
}

func (m *mockGate) Invalidate(address string) { m.Called(address) }

type mockClaim struct{ mock.Mock }

func (m *mockClaim) Preview(score int64) (domain.RewardOutcome, error) {
	args := m.Called(score)
	return args.Get(0).(domain.RewardOutcome), args.Error(1)
}

func (m *mockClaim) Claim(ctx context.Context, address string, score int64) (*domain.ClaimRecord, error) {
	args := m.Called(ctx, address, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimRecord), args.Error(1)
}

func (m *mockClaim) History(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error) {
	args := m.Called(ctx, address, limit)
	return args.Get(0).([]domain.ClaimRecord), args.Error(1)
}

func (m *mockClaim) Get(ctx context.Context, id string) (*domain.ClaimRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimRecord), args.Error(1)
}

type mockAccount struct{ mock.Mock }

func (m *mockAccount) Balance(ctx context.Context, address string) (*domain.AccountBalance, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *mockAccount) NFTs(ctx context.Context, address string) ([]domain.OwnedNFT, error) {
	args := m.Called(ctx, address)
	return args.Get(0).([]domain.OwnedNFT), args.Error(1)
}

type mockMarketplace struct{ mock.Mock }

func (m *mockMarketplace) List(ctx context.Context) []domain.Listing {
	return m.Called(ctx).Get(0).([]domain.Listing)
}

func (m *mockMarketplace) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *mockMarketplace) ListForSale(ctx context.Context, req marketplace.ListingRequest) (*domain.Listing, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *mockMarketplace) Buy(ctx context.Context, id int64, buyer string) (*domain.Purchase, error) {
	args := m.Called(ctx, id, buyer)
	return args.Get(0).(*domain.Purchase), args.Error(1)
}

type testServices struct {
	gate        *mockGate
	claim       *mockClaim
	account     *mockAccount
	marketplace *mockMarketplace
}

func newTestRouter(t *testing.T, opts Options) (http.Handler, testServices) {
	t.Helper()
	ts := testServices{
		gate:        &mockGate{},
		claim:       &mockClaim{},
		account:     &mockAccount{},
		marketplace: &mockMarketplace{},
	}
	if opts.AllowedOrigins == nil {
		opts.AllowedOrigins = []string{"*"}
	}
	r := NewRouter(opts, Services{
		DB:          stubPool{},
		Ledger:      stubLedger{},
		Gate:        ts.gate,
		Claim:       ts.claim,
		Account:     ts.account,
		Marketplace: ts.marketplace,
	})
	return r, ts
}

func TestRouter_PublicEndpoints(t *testing.T) {
	r, _ := newTestRouter(t, Options{APIKey: "k"})

	for _, path := range []string{"/healthz", "/readyz", "/version", "/metrics"} {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
		})
	}
}

func TestRouter_Routes(t *testing.T) {
	r, ts := newTestRouter(t, Options{})

	ts.gate.On("Check", mock.Anything, "0.0.1234").Return(&domain.GateCheck{
		Address:  "0.0.1234",
		Decision: domain.GateDecision{Allowed: true, Reason: domain.GateReasonSufficientTokens},
	}, nil)
	ts.claim.On("Preview", int64(800)).Return(domain.RewardOutcome{
		BaseTokens:  80,
		Multiplier:  decimal.NewFromInt(2),
		TotalTokens: 160,
	}, nil)
	ts.claim.On("History", mock.Anything, "0.0.1234", 20).Return([]domain.ClaimRecord{}, nil)
	ts.claim.On("Get", mock.Anything, "6f1c7a52-3a55-4d3e-9a8e-0b8f2f0c9d11").Return(&domain.ClaimRecord{
		Address: "0.0.1234",
		Status:  domain.ClaimStatusCompleted,
	}, nil)
	ts.account.On("Balance", mock.Anything, "0.0.1234").Return(&domain.AccountBalance{Address: "0.0.1234"}, nil)
	ts.account.On("NFTs", mock.Anything, "0.0.1234").Return([]domain.OwnedNFT{}, nil)
	ts.marketplace.On("List", mock.Anything).Return([]domain.Listing{})

	tests := []struct {
		path     string
		wantBody string
	}{
		{"/api/v1/check-gate?address=0.0.1234", `"reason":"sufficient-tokens"`},
		{"/api/v1/rewards/preview?score=800", `"total_tokens":160`},
		{"/api/v1/rewards/history?address=0.0.1234", `"claims":[]`},
		{"/api/v1/rewards/claims/6f1c7a52-3a55-4d3e-9a8e-0b8f2f0c9d11", `"status":"completed"`},
		{"/api/v1/user/balance?address=0.0.1234", `"address":"0.0.1234"`},
		{"/api/v1/user/nfts?address=0.0.1234", `"nfts":[]`},
		{"/api/v1/marketplace/list", `"nfts":[]`},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.path, nil))

			require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}

func TestRouter_PostRequiresKey(t *testing.T) {
	r, ts := newTestRouter(t, Options{APIKey: "secret"})
	ts.claim.On("Claim", mock.Anything, "0.0.1234", int64(100)).Return(&domain.ClaimRecord{Address: "0.0.1234", Score: 100}, nil)

	body := `{"address":"0.0.1234","score":100}`

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/v1/claim", strings.NewReader(body)))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	ts.claim.AssertNotCalled(t, "Claim", mock.Anything, mock.Anything, mock.Anything)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/claim", strings.NewReader(body))
	req.Header.Set(HeaderAPIKey, "secret")
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestRouter_CORSPreflight(t *testing.T) {
	r, _ := newTestRouter(t, Options{APIKey: "secret", AllowedOrigins: []string{"https://play.example.com"}})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/claim", nil)
	req.Header.Set("Origin", "https://play.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, "https://play.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Less(t, rec.Code, 300)
}

func TestRouter_ReadyzReportsLedger(t *testing.T) {
	r := NewRouter(Options{AllowedOrigins: []string{"*"}}, Services{
		DB:     stubPool{},
		Ledger: stubLedger{err: assert.AnError},
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestRouter_UnknownRoute(t *testing.T) {
	r, _ := newTestRouter(t, Options{})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestNewServer(t *testing.T) {
	s := NewServer(Options{Port: 9090, AllowedOrigins: []string{"*"}}, Services{DB: stubPool{}})

	assert.Equal(t, ":9090", s.httpServer.Addr)
	assert.NotNil(t, s.Handler())
	assert.NoError(t, s.Stop(context.Background()))
}
