// Package ledger talks to the distributed ledger: balance reads through a
// mirror node REST API and reward/transfer submission through a treasury
// signing service. Callers own retry policy; clients classify failures as
// transient (domain.ErrLookupFailed, domain.ErrIssuanceFailed) or permanent.
package ledger

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// HoldingsQuerier returns the gate-relevant holdings of a wallet
type HoldingsQuerier interface {
	Holdings(ctx context.Context, addr wallet.Address) (domain.HoldingsSnapshot, error)
}

// AccountReader returns the raw balances of a wallet
type AccountReader interface {
	Account(ctx context.Context, addr wallet.Address) (domain.AccountState, error)
}

// IssueRequest describes a reward payout. Parts already present in Done are
// not submitted again.
type IssueRequest struct {
	ClaimID uuid.UUID
	To      wallet.Address
	Score   int64
	Outcome domain.RewardOutcome
	Done    domain.IssuanceReceipt
}

// RewardIssuer mints the tokens and NFT a reward outcome entitles a wallet to.
// Implementations must be idempotent per ClaimID so callers can retry.
type RewardIssuer interface {
	Issue(ctx context.Context, req IssueRequest) (domain.IssuanceReceipt, error)
}

// TransferRequest moves one NFT serial from seller to buyer against an HBAR payment
type TransferRequest struct {
	TokenID        string
	Serial         int64
	From           string
	To             string
	PriceHbar      int64
	IdempotencyKey string
}

// NFTTransferer settles marketplace purchases
type NFTTransferer interface {
	TransferNFT(ctx context.Context, req TransferRequest) (string, error)
}
