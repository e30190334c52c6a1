// Package claim turns finished game sessions into paid-out, recorded rewards.
package claim

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/osse101/QuestGate_Go/internal/concurrency"
	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/gate"
	"github.com/osse101/QuestGate_Go/internal/ledger"
	"github.com/osse101/QuestGate_Go/internal/logger"
	"github.com/osse101/QuestGate_Go/internal/repository"
	"github.com/osse101/QuestGate_Go/internal/reward"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// Service previews, pays out and records game rewards
type Service interface {
	Preview(score int64) (domain.RewardOutcome, error)
	Claim(ctx context.Context, address string, score int64) (*domain.ClaimRecord, error)
	History(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error)
	Get(ctx context.Context, id string) (*domain.ClaimRecord, error)
}

// Config controls claim policy
type Config struct {
	// RequireAccess rejects claims from wallets the gate would not admit
	RequireAccess bool
	Retry         ledger.RetryPolicy
}

type service struct {
	repo   repository.Claim
	issuer ledger.RewardIssuer
	gate   gate.Service
	bus    event.Bus
	locks  *concurrency.LockManager
	cfg    Config
	now    func() time.Time
}

// NewService creates a new claim service. bus may be nil.
func NewService(repo repository.Claim, issuer ledger.RewardIssuer, gateSvc gate.Service, bus event.Bus, cfg Config) Service {
	return &service{
		repo:   repo,
		issuer: issuer,
		gate:   gateSvc,
		bus:    bus,
		locks:  concurrency.NewLockManager(),
		cfg:    cfg,
		now:    time.Now,
	}
}

// Preview computes what a score would earn without issuing anything
func (s *service) Preview(score int64) (domain.RewardOutcome, error) {
	return reward.Compute(domain.GameResult{Score: score})
}

// Claim computes the reward for score, issues it to address and records it.
// Claims for the same wallet are serialised.
func (s *service) Claim(ctx context.Context, address string, score int64) (_ *domain.ClaimRecord, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "claim.Claim")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	log := logger.FromContext(ctx)

	addr, err := wallet.Parse(address)
	if err != nil {
		return nil, err
	}
	outcome, err := reward.Compute(domain.GameResult{Score: score})
	if err != nil {
		return nil, err
	}
	span.SetAttributes(
		attribute.String("wallet.address", addr.String()),
		attribute.Int64("game.score", score),
		attribute.Int64("reward.total_tokens", outcome.TotalTokens),
		attribute.Bool("reward.nft_eligible", outcome.NFTEligible),
	)

	if s.cfg.RequireAccess {
		check, err := s.gate.Check(ctx, addr.String())
		if err != nil {
			return nil, err
		}
		if !check.Decision.Allowed {
			log.Info(LogMsgClaimDenied, "address", addr.String(), "reason", check.Decision.Reason)
			return nil, fmt.Errorf("%w: %s", domain.ErrAccessDenied, check.Decision.Reason)
		}
	}

	unlock, err := s.locks.LockContext(ctx, addr.String())
	if err != nil {
		return nil, err
	}
	defer unlock()

	issuing := outcome.TotalTokens > 0 || outcome.NFTEligible
	record, err := s.pendingOrNew(ctx, addr, score, outcome, issuing)
	if err != nil {
		return nil, err
	}

	if issuing {
		req := ledger.IssueRequest{ClaimID: record.ID, To: addr, Score: score, Outcome: outcome, Done: record.Receipt}
		unknown := false
		_, err = ledger.Retry(ctx, s.cfg.Retry, func(ctx context.Context) (domain.IssuanceReceipt, error) {
			r, err := s.issuer.Issue(ctx, req)
			req.Done = req.Done.Merge(r)
			if errors.Is(err, domain.ErrOutcomeUnknown) {
				unknown = true
			}
			return req.Done, err
		}, domain.ErrIssuanceFailed)
		record.Receipt = req.Done
		if err != nil {
			log.Error(LogMsgIssuanceFailed, "claim_id", record.ID, "error", err)
			if unknown || !record.Receipt.IsZero() {
				s.savePartial(ctx, record)
			}
			return nil, err
		}
	} else {
		log.Debug(LogMsgNothingToIssue, "claim_id", record.ID, "score", score)
	}

	record.Status = domain.ClaimStatusCompleted
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}
	if err := s.repo.SaveClaim(ctx, record); err != nil {
		log.Error(LogMsgClaimNotRecorded,
			"claim_id", record.ID,
			"token_tx_id", record.Receipt.TokenTxID,
			"nft_tx_id", record.Receipt.NFTTxID,
			"error", err)
		return nil, fmt.Errorf("%s: %w", domain.ErrMsgDatabaseError, err)
	}

	if s.gate != nil {
		s.gate.Invalidate(record.Address)
	}
	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewRewardClaimedEvent(*record, logger.GetRequestID(ctx))); err != nil {
			log.Warn(LogMsgPublishFailed, "claim_id", record.ID, "error", err)
		}
	}

	log.Info(LogMsgClaimCompleted,
		"claim_id", record.ID,
		"total_tokens", outcome.TotalTokens,
		"nft_tx_id", record.Receipt.NFTTxID)
	return record, nil
}

// pendingOrNew resumes the wallet's partially issued claim for the same score
// so issuance reuses its idempotency keys. Otherwise it starts a new claim.
func (s *service) pendingOrNew(ctx context.Context, addr wallet.Address, score int64, outcome domain.RewardOutcome, issuing bool) (*domain.ClaimRecord, error) {
	log := logger.FromContext(ctx)
	if issuing {
		pending, err := s.repo.FindPartialClaim(ctx, addr.String(), score)
		switch {
		case err == nil:
			pending.Outcome = outcome
			log.Info(LogMsgClaimResumed,
				"claim_id", pending.ID,
				"address", pending.Address,
				"token_tx_id", pending.Receipt.TokenTxID,
				"nft_tx_id", pending.Receipt.NFTTxID)
			return pending, nil
		case !errors.Is(err, domain.ErrClaimNotFound):
			return nil, fmt.Errorf("%s: %w", domain.ErrMsgDatabaseError, err)
		}
	}

	record := &domain.ClaimRecord{
		ID:      uuid.New(),
		Address: addr.String(),
		Score:   score,
		Outcome: outcome,
	}
	log.Info(LogMsgClaimStarted, "claim_id", record.ID, "address", record.Address, "score", score)
	return record, nil
}

// savePartial records what was issued before a failure. The caller's error
// wins over a failed save.
func (s *service) savePartial(ctx context.Context, record *domain.ClaimRecord) {
	record.Status = domain.ClaimStatusPartial
	if record.CreatedAt.IsZero() {
		record.CreatedAt = s.now().UTC()
	}
	if err := s.repo.SaveClaim(ctx, record); err != nil {
		logger.FromContext(ctx).Error(LogMsgPartialNotRecorded,
			"claim_id", record.ID,
			"token_tx_id", record.Receipt.TokenTxID,
			"nft_tx_id", record.Receipt.NFTTxID,
			"error", err)
		return
	}
	logger.FromContext(ctx).Warn(LogMsgClaimPartial,
		"claim_id", record.ID,
		"token_tx_id", record.Receipt.TokenTxID,
		"nft_tx_id", record.Receipt.NFTTxID)
}

// History returns the most recent claims for address, newest first
func (s *service) History(ctx context.Context, address string, limit int) ([]domain.ClaimRecord, error) {
	addr, err := wallet.Parse(address)
	if err != nil {
		return nil, err
	}
	return s.repo.GetClaimsByAddress(ctx, addr.String(), limit)
}

// Get returns a single claim, including one left partially issued
func (s *service) Get(ctx context.Context, id string) (*domain.ClaimRecord, error) {
	claimID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: claim id %q", domain.ErrInvalidInput, id)
	}
	return s.repo.GetClaim(ctx, claimID)
}
