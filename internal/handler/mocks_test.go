package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/marketplace"
)

// MockDBPool mocks the database.Pool interface
type MockDBPool struct {
	mock.Mock
}

func (m *MockDBPool) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockDBPool) Close() {
	m.Called()
}

type MockLedgerStatus struct {
	mock.Mock
}

func (m *MockLedgerStatus) Status() (time.Time, error) {
	args := m.Called()
	return args.Get(0).(time.Time), args.Error(1)
}

type MockGateService struct {
	mock.Mock
}

func (m *MockGateService) Check(ctx context.Context, address string) (*domain.GateCheck, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GateCheck), args.Error(1)
}

func (m *MockGateService) Invalidate(address string) {
	m.Called(address)
}

type MockClaimService struct {
	mock.Mock
}

func (m *MockClaimService) Preview(score int64) (domain.RewardOutcome, error) {
	args := m.Called(score)
	return args.Get(0).(domain.RewardOutcome), args.Error(1)
}

func (m *MockClaimService) Claim(ctx context.Context, address string, score int64) (*domain.ClaimRecord, error) {
	args := m.Called(ctx, address, score)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimRecord), args.Error(1)
}

func (m *MockClaimService) History(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error) {
	args := m.Called(ctx, address, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ClaimRecord), args.Error(1)
}

func (m *MockClaimService) Get(ctx context.Context, id string) (*domain.ClaimRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClaimRecord), args.Error(1)
}

type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) Balance(ctx context.Context, address string) (*domain.AccountBalance, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountBalance), args.Error(1)
}

func (m *MockAccountService) NFTs(ctx context.Context, address string) ([]domain.OwnedNFT, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OwnedNFT), args.Error(1)
}

type MockMarketplaceService struct {
	mock.Mock
}

func (m *MockMarketplaceService) List(ctx context.Context) []domain.Listing {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Listing)
}

func (m *MockMarketplaceService) Get(ctx context.Context, id int64) (*domain.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketplaceService) ListForSale(ctx context.Context, req marketplace.ListingRequest) (*domain.Listing, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Listing), args.Error(1)
}

func (m *MockMarketplaceService) Buy(ctx context.Context, id int64, buyer string) (*domain.Purchase, error) {
	args := m.Called(ctx, id, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Purchase), args.Error(1)
}
