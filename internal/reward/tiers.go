package reward

import "github.com/shopspring/decimal"

// Tier is one row of the reward table
type Tier struct {
	MinScore    int64
	Multiplier  decimal.Decimal
	NFTEligible bool
	Message     string
}

// tiers is ordered highest lower bound first. The legendary and excellent rows
// share a multiplier and differ only in NFT eligibility.
var tiers = []Tier{
	{MinScore: ScoreLegendary, Multiplier: decimal.NewFromInt(2), NFTEligible: true, Message: MsgLegendary},
	{MinScore: ScoreExcellent, Multiplier: decimal.NewFromInt(2), Message: MsgExcellent},
	{MinScore: ScoreGreat, Multiplier: decimal.RequireFromString("1.5"), Message: MsgGreat},
	{MinScore: 0, Multiplier: decimal.NewFromInt(1), Message: MsgGood},
}

// Tiers returns a copy of the reward table, highest tier first
func Tiers() []Tier {
	out := make([]Tier, len(tiers))
	copy(out, tiers)
	return out
}

// tierFor returns the first tier whose lower bound score reaches. score must be
// non-negative.
func tierFor(score int64) Tier {
	for _, t := range tiers {
		if score >= t.MinScore {
			return t
		}
	}
	return tiers[len(tiers)-1]
}
