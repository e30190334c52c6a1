package handler

import (
	"net/http"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/marketplace"
)

// MarketplaceListResponse lists active listings
type MarketplaceListResponse struct {
	NFTs []domain.Listing `json:"nfts"`
}

// BuyRequest is the body of a purchase
type BuyRequest struct {
	ListingID    int64  `json:"listing_id" validate:"required,gt=0"`
	BuyerAddress string `json:"buyer_address" validate:"required,wallet"`
}

// BuyResponse is a settled purchase
type BuyResponse struct {
	Success  bool            `json:"success"`
	Purchase domain.Purchase `json:"purchase"`
}

// SellRequest is the body of a new listing
type SellRequest struct {
	SellerAddress string             `json:"seller_address" validate:"required,wallet"`
	TokenID       string             `json:"token_id" validate:"required,max=64"`
	Serial        int64              `json:"serial" validate:"required,gt=0"`
	Name          string             `json:"name" validate:"required,max=100"`
	Description   string             `json:"description" validate:"max=500"`
	Price         int64              `json:"price" validate:"required,gt=0"`
	Metadata      domain.NFTMetadata `json:"metadata"`
}

// SellResponse wraps the created listing
type SellResponse struct {
	Success bool           `json:"success"`
	Listing domain.Listing `json:"listing"`
}

// HandleListMarketplace returns active listings
// @Summary Marketplace listings
// @Tags marketplace
// @Produce json
// @Success 200 {object} MarketplaceListResponse
// @Router /api/v1/marketplace/list [get]
func HandleListMarketplace(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, MarketplaceListResponse{NFTs: svc.List(r.Context())})
	}
}

// HandleBuyListing settles a purchase
// @Summary Buy a listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body BuyRequest true "Listing and buyer"
// @Success 200 {object} BuyResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /api/v1/marketplace/buy [post]
func HandleBuyListing(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BuyRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpBuyListing); err != nil {
			return
		}

		purchase, err := svc.Buy(r.Context(), req.ListingID, req.BuyerAddress)
		if err != nil {
			respondServiceError(w, r, OpBuyListing, err)
			return
		}
		respondJSON(w, http.StatusOK, BuyResponse{Success: true, Purchase: *purchase})
	}
}

// HandleSellListing lists an NFT for sale
// @Summary Create a listing
// @Tags marketplace
// @Accept json
// @Produce json
// @Param request body SellRequest true "Listing details"
// @Success 201 {object} SellResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/marketplace/sell [post]
func HandleSellListing(svc marketplace.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req SellRequest
		if err := DecodeAndValidateRequest(r, w, &req, OpSellListing); err != nil {
			return
		}

		listing, err := svc.ListForSale(r.Context(), marketplace.ListingRequest{
			Seller:      req.SellerAddress,
			TokenID:     req.TokenID,
			Serial:      req.Serial,
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Metadata:    req.Metadata,
		})
		if err != nil {
			respondServiceError(w, r, OpSellListing, err)
			return
		}
		respondJSON(w, http.StatusCreated, SellResponse{Success: true, Listing: *listing})
	}
}
