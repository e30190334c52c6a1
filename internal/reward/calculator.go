// Package reward converts a finished game score into a token and NFT payout.
package reward

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

// Compute returns the payout for a finished session. It is pure and safe for
// concurrent use. A negative score is rejected with domain.ErrInvalidInput.
func Compute(result domain.GameResult) (domain.RewardOutcome, error) {
	if result.Score < 0 {
		return domain.RewardOutcome{}, fmt.Errorf("%w: score must not be negative, got %d", domain.ErrInvalidInput, result.Score)
	}

	tier := tierFor(result.Score)
	base := result.Score / PointsPerToken

	// Single floor at the end; no intermediate rounding.
	total := decimal.NewFromInt(base).Mul(tier.Multiplier).Floor().IntPart()

	return domain.RewardOutcome{
		BaseTokens:  base,
		Multiplier:  tier.Multiplier,
		TotalTokens: total,
		NFTEligible: tier.NFTEligible,
		Message:     tier.Message,
	}, nil
}
