package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

// Claim defines data access for paid-out reward claims
type Claim interface {
	SaveClaim(ctx context.Context, record *domain.ClaimRecord) error
	GetClaim(ctx context.Context, id uuid.UUID) (*domain.ClaimRecord, error)
	// FindPartialClaim returns domain.ErrClaimNotFound when nothing is pending
	FindPartialClaim(ctx context.Context, address string, score int64) (*domain.ClaimRecord, error)
	GetClaimsByAddress(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error)
}
