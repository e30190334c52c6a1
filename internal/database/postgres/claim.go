package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/osse101/QuestGate_Go/internal/database/generated"
	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/repository"
)

// ClaimRepository implements repository.Claim for PostgreSQL
type ClaimRepository struct {
	pool *pgxpool.Pool
	q    *generated.Queries
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(pool *pgxpool.Pool) repository.Claim {
	return &ClaimRepository{
		pool: pool,
		q:    generated.New(pool),
	}
}

// SaveClaim inserts a claim or advances a partial one. A completed claim is
// never rewritten.
func (r *ClaimRepository) SaveClaim(ctx context.Context, record *domain.ClaimRecord) error {
	status := record.Status
	if status == "" {
		status = domain.ClaimStatusCompleted
	}
	err := r.q.UpsertClaim(ctx, generated.UpsertClaimParams{
		ClaimID:     pgtype.UUID{Bytes: record.ID, Valid: true},
		Address:     record.Address,
		Score:       record.Score,
		BaseTokens:  record.Outcome.BaseTokens,
		Multiplier:  toNumeric(record.Outcome.Multiplier),
		TotalTokens: record.Outcome.TotalTokens,
		NftEligible: record.Outcome.NFTEligible,
		Message:     record.Outcome.Message,
		TokenTxID:   record.Receipt.TokenTxID,
		NftTxID:     record.Receipt.NFTTxID,
		NftSerial:   record.Receipt.NFTSerial,
		CreatedAt:   pgtype.Timestamptz{Time: record.CreatedAt, Valid: true},
		Status:      string(status),
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveClaim, err)
	}
	return nil
}

// GetClaim retrieves a claim by id
func (r *ClaimRepository) GetClaim(ctx context.Context, id uuid.UUID) (*domain.ClaimRecord, error) {
	row, err := r.q.GetClaim(ctx, pgtype.UUID{Bytes: id, Valid: true})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrClaimNotFound, id)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToGetClaim, err)
	}
	record := mapClaim(row)
	return &record, nil
}

// FindPartialClaim returns the newest partially issued claim for an address and score
func (r *ClaimRepository) FindPartialClaim(ctx context.Context, address string, score int64) (*domain.ClaimRecord, error) {
	row, err := r.q.FindPartialClaim(ctx, generated.FindPartialClaimParams{
		Address: address,
		Score:   score,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrClaimNotFound
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToFindPartialClaim, err)
	}
	record := mapClaim(row)
	return &record, nil
}

// GetClaimsByAddress returns the most recent claims for an address, newest first
func (r *ClaimRepository) GetClaimsByAddress(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	limit = min(limit, MaxHistoryLimit)

	rows, err := r.q.ListClaimsByAddress(ctx, generated.ListClaimsByAddressParams{
		Address: address,
		Limit:   int32(limit),
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListClaims, err)
	}

	records := make([]domain.ClaimRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, mapClaim(row))
	}
	return records, nil
}

func mapClaim(row generated.RewardClaim) domain.ClaimRecord {
	return domain.ClaimRecord{
		ID:      uuid.UUID(row.ClaimID.Bytes),
		Address: row.Address,
		Score:   row.Score,
		Outcome: domain.RewardOutcome{
			BaseTokens:  row.BaseTokens,
			Multiplier:  fromNumeric(row.Multiplier),
			TotalTokens: row.TotalTokens,
			NFTEligible: row.NftEligible,
			Message:     row.Message,
		},
		Receipt: domain.IssuanceReceipt{
			TokenTxID: row.TokenTxID,
			NFTTxID:   row.NftTxID,
			NFTSerial: row.NftSerial,
		},
		Status:    domain.ClaimStatus(row.Status),
		CreatedAt: row.CreatedAt.Time.UTC(),
	}
}

func toNumeric(d decimal.Decimal) pgtype.Numeric {
	return pgtype.Numeric{Int: d.Coefficient(), Exp: d.Exponent(), Valid: true}
}

func fromNumeric(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}
