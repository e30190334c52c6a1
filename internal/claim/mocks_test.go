package claim

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/ledger"
)

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) SaveClaim(ctx context.Context, record *domain.ClaimRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRepository) GetClaim(ctx context.Context, id uuid.UUID) (*domain.ClaimRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimRecord), args.Error(1)
}

func (m *MockRepository) FindPartialClaim(ctx context.Context, address string, score int64) (*domain.ClaimRecord, error) {
	args := m.Called(ctx, address, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimRecord), args.Error(1)
}

func (m *MockRepository) GetClaimsByAddress(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimRecord), args.Error(1)
}

type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(ctx context.Context, req ledger.IssueRequest) (domain.IssuanceReceipt, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(domain.IssuanceReceipt), args.Error(1)
}

type MockGate struct {
	mock.Mock
}

func (m *MockGate) Check(ctx context.Context, address string) (*domain.GateCheck, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GateCheck), args.Error(1)
}

func (m *MockGate) Invalidate(address string) {
	m.Called(address)
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
