package domain

import "github.com/shopspring/decimal"

// GameResult is a finished game session
type GameResult struct {
	Score int64 `json:"score"`
}

// RewardOutcome is what a finished session earns
type RewardOutcome struct {
	BaseTokens  int64           `json:"base_tokens"`
	Multiplier  decimal.Decimal `json:"multiplier"`
	TotalTokens int64           `json:"total_tokens"`
	NFTEligible bool            `json:"nft_eligible"`
	Message     string          `json:"message"`
}

// IssuanceReceipt holds the ledger references produced while paying out a reward
type IssuanceReceipt struct {
	TokenTxID string `json:"token_tx_id,omitempty"`
	NFTTxID   string `json:"nft_tx_id,omitempty"`
	NFTSerial int64  `json:"nft_serial,omitempty"`
}

// IsZero reports whether nothing has been issued yet
func (r IssuanceReceipt) IsZero() bool {
	return r == IssuanceReceipt{}
}

// Merge fills the parts of r that are still empty from next
func (r IssuanceReceipt) Merge(next IssuanceReceipt) IssuanceReceipt {
	if r.TokenTxID == "" {
		r.TokenTxID = next.TokenTxID
	}
	if r.NFTTxID == "" {
		r.NFTTxID = next.NFTTxID
		r.NFTSerial = next.NFTSerial
	}
	return r
}
