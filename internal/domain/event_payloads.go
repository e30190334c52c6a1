package domain

// GateCheckedPayload is the event payload for gate.checked events
type GateCheckedPayload struct {
	Address   string `json:"address"`
	Allowed   bool   `json:"allowed"`
	Reason    string `json:"reason"`
	Cached    bool   `json:"cached"`
	Timestamp int64  `json:"timestamp"`
}

// RewardClaimedPayload is the event payload for reward.claimed events
type RewardClaimedPayload struct {
	ClaimID     string `json:"claim_id"`
	Address     string `json:"address"`
	Score       int64  `json:"score"`
	TotalTokens int64  `json:"total_tokens"`
	NFTAwarded  bool   `json:"nft_awarded"`
	Timestamp   int64  `json:"timestamp"`
}

// ListingCreatedPayload is the event payload for listing.created events
type ListingCreatedPayload struct {
	ListingID int64  `json:"listing_id"`
	Seller    string `json:"seller"`
	Price     int64  `json:"price"`
	Timestamp int64  `json:"timestamp"`
}

// ListingSoldPayload is the event payload for listing.sold events
type ListingSoldPayload struct {
	ListingID     int64  `json:"listing_id"`
	Buyer         string `json:"buyer"`
	Seller        string `json:"seller"`
	Price         int64  `json:"price"`
	TransactionID string `json:"transaction_id"`
	Timestamp     int64  `json:"timestamp"`
}
