package gate

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/ledger"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

const (
	testAccount = "0.0.1234"
	testEVM     = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"
)

func newTestService(q *MockHoldingsQuerier, bus event.Bus, cacheSize int) Service {
	return NewService(q, bus, ServiceConfig{
		Policy:    DefaultConfig(),
		CacheSize: cacheSize,
		CacheTTL:  time.Minute,
		Retry:     ledger.RetryPolicy{MaxRetries: 2},
	})
}

func TestService_Check(t *testing.T) {
	tests := []struct {
		name        string
		holdings    domain.HoldingsSnapshot
		wantAllowed bool
		wantReason  domain.GateReason
	}{
		{"access nft", domain.HoldingsSnapshot{AccessNFTBalance: 1}, true, domain.GateReasonNFTHeld},
		{"enough tokens", domain.HoldingsSnapshot{GameTokenBalance: 150}, true, domain.GateReasonSufficientTokens},
		{"denied", domain.HoldingsSnapshot{GameTokenBalance: 50}, false, domain.GateReasonInsufficientHoldings},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := new(MockHoldingsQuerier)
			q.On("Holdings", mock.Anything, wallet.MustParse(testAccount)).Return(tt.holdings, nil).Once()

			svc := newTestService(q, nil, 0)
			check, err := svc.Check(context.Background(), testAccount)

			require.NoError(t, err)
			assert.Equal(t, testAccount, check.Address)
			assert.Equal(t, tt.wantAllowed, check.Decision.Allowed)
			assert.Equal(t, tt.wantReason, check.Decision.Reason)
			assert.Equal(t, tt.holdings, check.Holdings)
			assert.False(t, check.Cached)
			q.AssertExpectations(t)
		})
	}
}

func TestService_Check_InvalidAddress(t *testing.T) {
	q := new(MockHoldingsQuerier)
	svc := newTestService(q, nil, 16)

	_, err := svc.Check(context.Background(), "not-a-wallet")

	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
	q.AssertNotCalled(t, "Holdings", mock.Anything, mock.Anything)
}

func TestService_Check_CanonicalizesEVMAddress(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, wallet.MustParse(testEVM)).Return(domain.HoldingsSnapshot{AccessNFTBalance: 1}, nil).Once()

	svc := newTestService(q, nil, 16)
	check, err := svc.Check(context.Background(), testEVM)

	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", check.Address)
}

func TestService_Check_UsesCache(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{GameTokenBalance: 500}, nil).Once()

	svc := newTestService(q, nil, 16)

	first, err := svc.Check(context.Background(), testAccount)
	require.NoError(t, err)
	assert.False(t, first.Cached)

	second, err := svc.Check(context.Background(), testAccount)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Decision, second.Decision)

	q.AssertNumberOfCalls(t, "Holdings", 1)
}

func TestService_Check_ReportsHoldingsAge(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{GameTokenBalance: 500}, nil).Once()

	svc := newTestService(q, nil, 16)
	clock := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc.(*service).now = func() time.Time { return clock }

	first, err := svc.Check(context.Background(), testAccount)
	require.NoError(t, err)
	assert.Equal(t, clock, first.HoldingsAsOf)
	assert.Equal(t, clock, first.CheckedAt)

	readAt := clock
	clock = clock.Add(30 * time.Second)

	second, err := svc.Check(context.Background(), testAccount)
	require.NoError(t, err)
	assert.True(t, second.Cached)
	assert.Equal(t, readAt, second.HoldingsAsOf)
	assert.Equal(t, clock, second.CheckedAt)
}

func TestService_Invalidate(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{GameTokenBalance: 50}, nil).Once()
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{GameTokenBalance: 150}, nil).Once()

	svc := newTestService(q, nil, 16)

	first, err := svc.Check(context.Background(), testAccount)
	require.NoError(t, err)
	assert.False(t, first.Decision.Allowed)

	svc.Invalidate(testAccount)
	svc.Invalidate("garbage")

	second, err := svc.Check(context.Background(), testAccount)
	require.NoError(t, err)
	assert.True(t, second.Decision.Allowed)
	assert.False(t, second.Cached)
	q.AssertNumberOfCalls(t, "Holdings", 2)
}

func TestService_Check_RetriesTransientLookup(t *testing.T) {
	q := new(MockHoldingsQuerier)
	transient := fmt.Errorf("%w: mirror returned 503", domain.ErrLookupFailed)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{}, transient).Twice()
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{AccessNFTBalance: 1}, nil).Once()

	svc := newTestService(q, nil, 0)
	check, err := svc.Check(context.Background(), testAccount)

	require.NoError(t, err)
	assert.True(t, check.Decision.Allowed)
	q.AssertNumberOfCalls(t, "Holdings", 3)
}

func TestService_Check_LookupExhausted(t *testing.T) {
	q := new(MockHoldingsQuerier)
	transient := fmt.Errorf("%w: timeout", domain.ErrLookupFailed)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{}, transient)

	svc := newTestService(q, nil, 16)
	_, err := svc.Check(context.Background(), testAccount)

	assert.ErrorIs(t, err, domain.ErrLookupFailed)
	q.AssertNumberOfCalls(t, "Holdings", 3)
}

func TestService_Check_PermanentLookupNotRetried(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{}, errors.New("decode failed"))

	svc := newTestService(q, nil, 16)
	_, err := svc.Check(context.Background(), testAccount)

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrLookupFailed)
	q.AssertNumberOfCalls(t, "Holdings", 1)
}

func TestService_Check_NegativeHoldings(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{GameTokenBalance: -3}, nil)

	svc := newTestService(q, nil, 16)
	_, err := svc.Check(context.Background(), testAccount)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_Check_PublishesEvent(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{GameTokenBalance: 100}, nil)

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		return evt.Type == event.Type(domain.EventTypeGateChecked)
	})).Return(nil).Once()

	svc := newTestService(q, bus, 0)
	_, err := svc.Check(context.Background(), testAccount)

	require.NoError(t, err)
	bus.AssertExpectations(t)
}

func TestService_Check_PublishFailureIsNotFatal(t *testing.T) {
	q := new(MockHoldingsQuerier)
	q.On("Holdings", mock.Anything, mock.Anything).Return(domain.HoldingsSnapshot{AccessNFTBalance: 1}, nil)

	bus := new(MockBus)
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

	svc := newTestService(q, bus, 0)
	check, err := svc.Check(context.Background(), testAccount)

	require.NoError(t, err)
	assert.True(t, check.Decision.Allowed)
}

func TestHoldingsCache(t *testing.T) {
	t.Run("disabled when size is zero", func(t *testing.T) {
		c := newHoldingsCache(0, time.Minute)
		c.Set("a", domain.HoldingsSnapshot{GameTokenBalance: 1}, time.Now())
		_, _, ok := c.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("drops stale schema versions", func(t *testing.T) {
		c := newHoldingsCache(4, time.Minute)
		c.lru.Add("a", &cachedHoldingsEntry{Version: "0.9", Holdings: domain.HoldingsSnapshot{GameTokenBalance: 1}})
		_, _, ok := c.Get("a")
		assert.False(t, ok)
		assert.Equal(t, 0, c.Len())
	})

	t.Run("returns read time", func(t *testing.T) {
		c := newHoldingsCache(4, time.Minute)
		readAt := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		c.Set("a", domain.HoldingsSnapshot{GameTokenBalance: 1}, readAt)
		holdings, asOf, ok := c.Get("a")
		require.True(t, ok)
		assert.Equal(t, int64(1), holdings.GameTokenBalance)
		assert.Equal(t, readAt, asOf)
	})

	t.Run("expires entries", func(t *testing.T) {
		c := newHoldingsCache(4, 20*time.Millisecond)
		c.Set("a", domain.HoldingsSnapshot{GameTokenBalance: 1}, time.Now())
		assert.Eventually(t, func() bool {
			_, _, ok := c.Get("a")
			return !ok
		}, time.Second, 10*time.Millisecond)
	})
}
