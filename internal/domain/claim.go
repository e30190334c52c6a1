package domain

import (
	"time"

	"github.com/google/uuid"
)

// ClaimStatus tracks whether a claim's payout finished
type ClaimStatus string

const (
	// ClaimStatusCompleted means every part of the outcome was issued
	ClaimStatusCompleted ClaimStatus = "completed"
	// ClaimStatusPartial means issuance stopped part way or its result is
	// unknown. Claiming the same score again resumes it under the same id.
	ClaimStatusPartial ClaimStatus = "partial"
)

// ClaimRecord is a persisted reward claim
type ClaimRecord struct {
	ID        uuid.UUID       `json:"id"`
	Address   string          `json:"address"`
	Score     int64           `json:"score"`
	Outcome   RewardOutcome   `json:"outcome"`
	Receipt   IssuanceReceipt `json:"receipt"`
	Status    ClaimStatus     `json:"status"`
	CreatedAt time.Time       `json:"created_at"`
}
