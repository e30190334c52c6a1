package handler

import (
	"net/http"
	"time"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/gate"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

// CheckGateResponse is the admission decision for a wallet
type CheckGateResponse struct {
	Address      string                  `json:"address"`
	Allowed      bool                    `json:"allowed"`
	Reason       domain.GateReason       `json:"reason"`
	Holdings     domain.HoldingsSnapshot `json:"holdings"`
	Cached       bool                    `json:"cached"`
	HoldingsAsOf time.Time               `json:"holdings_as_of"`
	CheckedAt    time.Time               `json:"checked_at"`
}

// HandleCheckGate decides whether a wallet may start a game session.
// A denial is a 200 with allowed=false.
// @Summary Check game access
// @Description Evaluates the wallet's access NFT and game token holdings
// @Tags gate
// @Produce json
// @Param address query string true "Wallet address (0x... or shard.realm.num)"
// @Success 200 {object} CheckGateResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/check-gate [get]
func HandleCheckGate(svc gate.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		ctx := logger.WithWallet(r.Context(), address)
		check, err := svc.Check(ctx, address)
		if err != nil {
			respondServiceError(w, r.WithContext(ctx), OpCheckGate, err)
			return
		}

		respondJSON(w, http.StatusOK, CheckGateResponse{
			Address:      check.Address,
			Allowed:      check.Decision.Allowed,
			Reason:       check.Decision.Reason,
			Holdings:     check.Holdings,
			Cached:       check.Cached,
			HoldingsAsOf: check.HoldingsAsOf,
			CheckedAt:    check.CheckedAt,
		})
	}
}
