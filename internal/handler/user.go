package handler

import (
	"net/http"

	"github.com/osse101/QuestGate_Go/internal/account"
	"github.com/osse101/QuestGate_Go/internal/domain"
)

// BalanceResponse wraps a wallet balance summary
type BalanceResponse struct {
	Balance domain.AccountBalance `json:"balance"`
}

// NFTsResponse lists NFTs
type NFTsResponse struct {
	NFTs []domain.OwnedNFT `json:"nfts"`
}

// HandleGetBalance returns HBAR, game token and NFT counts for a wallet
// @Summary Wallet balance
// @Tags user
// @Produce json
// @Param address query string true "Wallet address"
// @Success 200 {object} BalanceResponse
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/user/balance [get]
func HandleGetBalance(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		balance, err := svc.Balance(r.Context(), address)
		if err != nil {
			respondServiceError(w, r, OpGetBalance, err)
			return
		}
		respondJSON(w, http.StatusOK, BalanceResponse{Balance: *balance})
	}
}

// HandleGetUserNFTs lists the game NFTs a wallet holds
// @Summary Wallet NFTs
// @Tags user
// @Produce json
// @Param address query string true "Wallet address"
// @Success 200 {object} NFTsResponse
// @Failure 400 {object} ErrorResponse
// @Router /api/v1/user/nfts [get]
func HandleGetUserNFTs(svc account.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		address, ok := GetQueryParam(r, w, "address")
		if !ok {
			return
		}

		nfts, err := svc.NFTs(r.Context(), address)
		if err != nil {
			respondServiceError(w, r, OpGetNFTs, err)
			return
		}
		respondJSON(w, http.StatusOK, NFTsResponse{NFTs: nfts})
	}
}
