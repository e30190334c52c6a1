package domain

import "time"

// HoldingsSnapshot is a point-in-time view of a wallet's relevant positions.
// Absent positions are zero.
type HoldingsSnapshot struct {
	AccessNFTBalance int64 `json:"access_nft_balance"`
	GameTokenBalance int64 `json:"game_token_balance"`
}

// GateReason explains a gate decision
type GateReason string

const (
	GateReasonNFTHeld              GateReason = "nft-held"
	GateReasonSufficientTokens     GateReason = "sufficient-tokens"
	GateReasonInsufficientHoldings GateReason = "insufficient-holdings"
)

// GateDecision is the outcome of evaluating a snapshot against the access policy
type GateDecision struct {
	Allowed bool       `json:"allowed"`
	Reason  GateReason `json:"reason"`
}

// GateCheck is a decision bound to the wallet and snapshot it was made for
type GateCheck struct {
	Address  string           `json:"address"`
	Decision GateDecision     `json:"decision"`
	Holdings HoldingsSnapshot `json:"holdings"`
	Cached   bool             `json:"cached"`
	// HoldingsAsOf is when Holdings was read from the ledger
	HoldingsAsOf time.Time `json:"holdings_as_of"`
	CheckedAt    time.Time `json:"checked_at"`
}
