package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/QuestGate_Go/internal/claim"
	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

// ClaimRequest is the body of a reward claim
type ClaimRequest struct {
	Address string `json:"address" validate:"required,wallet"`
	Score   *int64 `json:"score" validate:"required,min=0"`
}

// ClaimResponse is a recorded, paid-out claim
type ClaimResponse struct {
	Success bool               `json:"success"`
	Claim   domain.ClaimRecord `json:"claim"`
}

// RewardHistoryResponse lists recent claims for a wallet
type RewardHistoryResponse struct {
	Address string               `json:"address"`
	Claims  []domain.ClaimRecord `json:"claims"`
}

// HandleClaimReward pays out and records the reward for a finished session
// @Summary Claim game rewards
// @Description Computes the reward for a score, issues tokens (and an NFT at 1000+) and records the claim
// @Tags rewards
// @Accept json
// @Produce json
// @Param request body ClaimRequest true "Wallet and final score"
// @Success 201 {object} ClaimResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/v1/claim [post]
func HandleClaimReward(svc claim.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req ClaimRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpClaimReward); err != nil {
			return
		}

		ctx := logger.WithWallet(r.Context(), req.Address)
		record, err := svc.Claim(ctx, req.Address, *req.Score)
		if err != nil {
			respondServiceError(w, r.WithContext(ctx), OpClaimReward, err)
			return
		}

		logger.FromContext(ctx).Info("Reward claimed",
			"claim_id", record.ID,
			"total_tokens", record.Outcome.TotalTokens)
		respondJSON(w, http.StatusCreated, ClaimResponse{Success: true, Claim: *record})
	}
}

// HandlePreviewReward shows what a score would earn
// @Summary Preview rewards
// @Tags rewards
// @Produce json
// @Param score query int true "Final score"
// @Success 200 {object} domain.RewardOutcome
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rewards/preview [get]
func HandlePreviewReward(svc claim.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		score, ok := GetInt64QueryParam(r, w, "score", ErrMsgInvalidScore)
		if !ok {
			return
		}

		outcome, err := svc.Preview(score)
		if err != nil {
			respondServiceError(w, r, OpPreviewReward, err)
			return
		}
		respondJSON(w, http.StatusOK, outcome)
	}
}

// HandleRewardHistory lists the most recent claims for a wallet
// @Summary Reward history
// @Tags rewards
// @Produce json
// @Param address query string true "Wallet address"
// @Param limit query int false "Maximum claims to return (1-100)"
// @Success 200 {object} RewardHistoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/rewards/history [get]
func HandleRewardHistory(svc claim.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		limit, err := strconv.Atoi(GetOptionalQueryParam(r, "limit", strconv.Itoa(defaultHistoryLimit)))
		if err != nil || limit < 1 || limit > maxHistoryLimit {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidLimit)
			return
		}

		claims, err := svc.History(r.Context(), address, limit)
		if err != nil {
			respondServiceError(w, r, OpRewardHistory, err)
			return
		}
		if claims == nil {
			claims = []domain.ClaimRecord{}
		}
		respondJSON(w, http.StatusOK, RewardHistoryResponse{Address: address, Claims: claims})
	}
}

// HandleGetClaim returns one claim by id, including its issuance status
// @Summary Get claim
// @Tags rewards
// @Produce json
// @Param id path string true "Claim id"
// @Success 200 {object} domain.ClaimRecord
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/v1/rewards/claims/{id} [get]
func HandleGetClaim(svc claim.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		record, err := svc.Get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			respondServiceError(w, r, OpGetClaim, err)
			return
		}
		respondJSON(w, http.StatusOK, record)
	}
}
