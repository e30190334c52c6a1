package domain

import "github.com/shopspring/decimal"

// AccountState is the raw ledger view of an account
type AccountState struct {
	Account  string
	Tinybars int64
	Tokens   map[string]int64
}

// TokenBalance returns the balance held for tokenID, zero when absent
func (a AccountState) TokenBalance(tokenID string) int64 {
	if a.Tokens == nil {
		return 0
	}
	return a.Tokens[tokenID]
}

// Hbar converts the tinybar balance to HBAR (1 HBAR = 10^8 tinybars)
func (a AccountState) Hbar() decimal.Decimal {
	return decimal.New(a.Tinybars, -8)
}

// AccountBalance is the game-relevant balance summary for a wallet
type AccountBalance struct {
	Address    string          `json:"address"`
	Hbar       decimal.Decimal `json:"hbar"`
	GameTokens int64           `json:"game_tokens"`
	AccessNFTs int64           `json:"access_nfts"`
	RewardNFTs int64           `json:"reward_nfts"`
}

// OwnedNFT is a collection position held by a wallet
type OwnedNFT struct {
	TokenID     string `json:"token_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Balance     int64  `json:"balance"`
}
