// Package account exposes read-only balance views of a wallet.
package account

import (
	"context"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/ledger"
	"github.com/osse101/QuestGate_Go/internal/logger"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// Service reads wallet balances from the ledger
type Service interface {
	Balance(ctx context.Context, address string) (*domain.AccountBalance, error)
	NFTs(ctx context.Context, address string) ([]domain.OwnedNFT, error)
}

// Config names the tokens the game cares about
type Config struct {
	AccessNFTTokenID string
	GameTokenID      string
	RewardNFTTokenID string
	Retry            ledger.RetryPolicy
}

type service struct {
	reader ledger.AccountReader
	cfg    Config
}

// NewService creates a new account service
func NewService(reader ledger.AccountReader, cfg Config) Service {
	return &service{reader: reader, cfg: cfg}
}

func (s *service) account(ctx context.Context, address string) (wallet.Address, domain.AccountState, error) {
	addr, err := wallet.Parse(address)
	if err != nil {
		return wallet.Address{}, domain.AccountState{}, err
	}
	state, err := ledger.Retry(ctx, s.cfg.Retry, func(ctx context.Context) (domain.AccountState, error) {
		return s.reader.Account(ctx, addr)
	}, domain.ErrLookupFailed)
	if err != nil {
		logger.FromContext(ctx).Warn(LogMsgAccountLookupFailed, "address", addr.String(), "error", err)
		return wallet.Address{}, domain.AccountState{}, err
	}
	return addr, state, nil
}

// Balance returns the HBAR, game token and collection counts of a wallet
func (s *service) Balance(ctx context.Context, address string) (*domain.AccountBalance, error) {
	addr, state, err := s.account(ctx, address)
	if err != nil {
		return nil, err
	}
	return &domain.AccountBalance{
		Address:    addr.String(),
		Hbar:       state.Hbar(),
		GameTokens: state.TokenBalance(s.cfg.GameTokenID),
		AccessNFTs: state.TokenBalance(s.cfg.AccessNFTTokenID),
		RewardNFTs: state.TokenBalance(s.cfg.RewardNFTTokenID),
	}, nil
}

// NFTs lists the access and reward collections the wallet holds at least one of
func (s *service) NFTs(ctx context.Context, address string) ([]domain.OwnedNFT, error) {
	_, state, err := s.account(ctx, address)
	if err != nil {
		return nil, err
	}

	collections := []domain.OwnedNFT{
		{TokenID: s.cfg.AccessNFTTokenID, Name: AccessNFTName, Description: AccessNFTDescription},
		{TokenID: s.cfg.RewardNFTTokenID, Name: RewardNFTName, Description: RewardNFTDescription},
	}

	owned := make([]domain.OwnedNFT, 0, len(collections))
	for _, nft := range collections {
		if nft.TokenID == "" {
			continue
		}
		nft.Balance = state.TokenBalance(nft.TokenID)
		if nft.Balance > 0 {
			owned = append(owned, nft)
		}
	}
	return owned, nil
}
