package reward

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

func TestCompute_Scenarios(t *testing.T) {
	tests := []struct {
		name       string
		score      int64
		base       int64
		multiplier string
		total      int64
		nft        bool
		message    string
	}{
		{"zero score", 0, 0, "1", 0, false, MsgGood},
		{"just below great", 499, 49, "1", 49, false, MsgGood},
		{"great lower bound", 500, 50, "1.5", 75, false, MsgGreat},
		{"great with fractional total floored", 510, 51, "1.5", 76, false, MsgGreat},
		{"just below excellent", 799, 79, "1.5", 118, false, MsgGreat},
		{"excellent lower bound", 800, 80, "2", 160, false, MsgExcellent},
		{"just below legendary", 999, 99, "2", 198, false, MsgExcellent},
		{"legendary lower bound", 1000, 100, "2", 200, true, MsgLegendary},
		{"large score", 123457, 12345, "2", 24690, true, MsgLegendary},
		{"score below one token", 9, 0, "1", 0, false, MsgGood},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(domain.GameResult{Score: tt.score})

			require.NoError(t, err)
			assert.Equal(t, tt.base, got.BaseTokens)
			assert.True(t, decimal.RequireFromString(tt.multiplier).Equal(got.Multiplier),
				"multiplier: want %s, got %s", tt.multiplier, got.Multiplier)
			assert.Equal(t, tt.total, got.TotalTokens)
			assert.Equal(t, tt.nft, got.NFTEligible)
			assert.Equal(t, tt.message, got.Message)
		})
	}
}

func TestCompute_NegativeScore(t *testing.T) {
	for _, score := range []int64{-1, -10, -1000} {
		got, err := Compute(domain.GameResult{Score: score})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrInvalidInput))
		assert.Equal(t, domain.RewardOutcome{}, got)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	for _, score := range []int64{0, 499, 500, 777, 800, 1000, 5005} {
		first, err := Compute(domain.GameResult{Score: score})
		require.NoError(t, err)
		second, err := Compute(domain.GameResult{Score: score})
		require.NoError(t, err)

		assert.Equal(t, first.BaseTokens, second.BaseTokens)
		assert.Equal(t, first.TotalTokens, second.TotalTokens)
		assert.True(t, first.Multiplier.Equal(second.Multiplier))
		assert.Equal(t, first.NFTEligible, second.NFTEligible)
		assert.Equal(t, first.Message, second.Message)
	}
}

func TestCompute_Monotonic(t *testing.T) {
	var prev int64
	for score := int64(0); score <= 3000; score++ {
		got, err := Compute(domain.GameResult{Score: score})
		require.NoError(t, err)
		if got.TotalTokens < prev {
			t.Fatalf("total tokens decreased at score %d: %d < %d", score, got.TotalTokens, prev)
		}
		prev = got.TotalTokens
	}
}

func TestCompute_NFTOnlyAtLegendary(t *testing.T) {
	for score := int64(0); score <= 1200; score += 50 {
		got, err := Compute(domain.GameResult{Score: score})
		require.NoError(t, err)
		assert.Equal(t, score >= ScoreLegendary, got.NFTEligible, "score %d", score)
	}
}

func TestTiers(t *testing.T) {
	table := Tiers()
	require.Len(t, table, 4)

	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i-1].MinScore, table[i].MinScore, "tiers are ordered highest first")
	}
	assert.Equal(t, int64(0), table[len(table)-1].MinScore, "lowest tier covers zero")

	// Legendary and excellent share a multiplier and differ only in NFT eligibility
	assert.True(t, table[0].Multiplier.Equal(table[1].Multiplier))
	assert.True(t, table[0].NFTEligible)
	assert.False(t, table[1].NFTEligible)

	table[0].Message = "mutated"
	assert.Equal(t, MsgLegendary, Tiers()[0].Message, "Tiers returns a copy")
}
