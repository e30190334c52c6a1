package gate

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

type MockHoldingsQuerier struct {
	mock.Mock
}

func (m *MockHoldingsQuerier) Holdings(ctx context.Context, addr wallet.Address) (domain.HoldingsSnapshot, error) {
	args := m.Called(ctx, addr)
	return args.Get(0).(domain.HoldingsSnapshot), args.Error(1)
}

type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
