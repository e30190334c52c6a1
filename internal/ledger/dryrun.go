package ledger

import (
	"context"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

const dryRunTxPrefix = "dryrun-"

// DryRun stands in for the treasury when no signer is configured. It never
// touches the ledger and returns synthetic transaction ids.
type DryRun struct {
	serial atomic.Int64
}

// NewDryRun creates a dry-run issuer and transferer
func NewDryRun() *DryRun {
	return &DryRun{}
}

// Issue returns a receipt shaped like a real one
func (d *DryRun) Issue(ctx context.Context, req IssueRequest) (domain.IssuanceReceipt, error) {
	receipt := req.Done
	if req.Outcome.TotalTokens > 0 && receipt.TokenTxID == "" {
		receipt.TokenTxID = dryRunTxPrefix + uuid.NewString()
	}
	if req.Outcome.NFTEligible && receipt.NFTTxID == "" {
		receipt.NFTTxID = dryRunTxPrefix + uuid.NewString()
		receipt.NFTSerial = d.serial.Add(1)
	}
	logger.FromContext(ctx).Info(LogMsgDryRunIssue,
		"claim_id", req.ClaimID.String(),
		"address", req.To.String(),
		"tokens", req.Outcome.TotalTokens,
		"nft", req.Outcome.NFTEligible)
	return receipt, nil
}

// TransferNFT returns a synthetic transaction id
func (d *DryRun) TransferNFT(ctx context.Context, req TransferRequest) (string, error) {
	logger.FromContext(ctx).Info(LogMsgDryRunTransfer,
		"token_id", req.TokenID,
		"serial", req.Serial,
		"to", req.To)
	return dryRunTxPrefix + uuid.NewString(), nil
}
