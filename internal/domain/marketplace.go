package domain

import "time"

// ListingStatus is the lifecycle state of a marketplace listing
type ListingStatus string

const (
	ListingStatusActive  ListingStatus = "active"
	ListingStatusPending ListingStatus = "pending"
	ListingStatusSold    ListingStatus = "sold"
)

// NFTAttribute is a single trait in listing metadata
type NFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// NFTMetadata is the display metadata attached to a listing
type NFTMetadata struct {
	Image      string         `json:"image,omitempty"`
	Attributes []NFTAttribute `json:"attributes,omitempty"`
}

// Listing is an NFT offered for sale, priced in HBAR
type Listing struct {
	ID          int64         `json:"id"`
	TokenID     string        `json:"token_id"`
	Serial      int64         `json:"serial"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       int64         `json:"price"`
	Seller      string        `json:"seller"`
	Metadata    NFTMetadata   `json:"metadata"`
	Status      ListingStatus `json:"status"`
	CreatedAt   time.Time     `json:"created_at"`
}

// Purchase is the settlement result of buying a listing
type Purchase struct {
	ListingID     int64     `json:"listing_id"`
	Buyer         string    `json:"buyer"`
	Seller        string    `json:"seller"`
	Price         int64     `json:"price"`
	TransactionID string    `json:"transaction_id"`
	PurchasedAt   time.Time `json:"purchased_at"`
}
