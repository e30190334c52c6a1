// Package gate decides whether a wallet may start a game session.
package gate

import (
	"fmt"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

// DefaultMinGameTokenBalance is the token threshold used when none is configured
const DefaultMinGameTokenBalance int64 = 100

// Config is the access policy
type Config struct {
	MinGameTokenBalance int64
}

// DefaultConfig returns the default access policy
func DefaultConfig() Config {
	return Config{MinGameTokenBalance: DefaultMinGameTokenBalance}
}

// Evaluate applies the access policy to a holdings snapshot. Holding any
// access NFT wins over tokens; otherwise the game token balance must reach
// the threshold. A denial is a decision, not an error: only negative inputs
// fail, with domain.ErrInvalidInput.
func Evaluate(snapshot domain.HoldingsSnapshot, cfg Config) (domain.GateDecision, error) {
	switch {
	case snapshot.AccessNFTBalance < 0:
		return domain.GateDecision{}, fmt.Errorf("%w: access NFT balance must not be negative, got %d", domain.ErrInvalidInput, snapshot.AccessNFTBalance)
	case snapshot.GameTokenBalance < 0:
		return domain.GateDecision{}, fmt.Errorf("%w: game token balance must not be negative, got %d", domain.ErrInvalidInput, snapshot.GameTokenBalance)
	case cfg.MinGameTokenBalance < 0:
		return domain.GateDecision{}, fmt.Errorf("%w: minimum game token balance must not be negative, got %d", domain.ErrInvalidInput, cfg.MinGameTokenBalance)
	}

	switch {
	case snapshot.AccessNFTBalance > 0:
		return domain.GateDecision{Allowed: true, Reason: domain.GateReasonNFTHeld}, nil
	case snapshot.GameTokenBalance >= cfg.MinGameTokenBalance:
		return domain.GateDecision{Allowed: true, Reason: domain.GateReasonSufficientTokens}, nil
	default:
		return domain.GateDecision{Allowed: false, Reason: domain.GateReasonInsufficientHoldings}, nil
	}
}
