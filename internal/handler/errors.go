package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgRequestTooLarge       = "Request body too large"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidScore      = "Invalid score parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidListingID  = "Invalid listing id"

	// Operation names used in logs
	OpCheckGate     = "Check gate"
	OpClaimReward   = "Claim reward"
	OpPreviewReward = "Preview reward"
	OpRewardHistory = "Reward history"
	OpGetClaim      = "Get claim"
	OpGetBalance    = "Get balance"
	OpGetNFTs       = "Get NFTs"
	OpBuyListing    = "Buy listing"
	OpSellListing   = "Create listing"
)

// User-facing error messages for service errors
// These messages are derived from domain errors and provide helpful guidance to users
const (
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidInputError   = "Invalid input. Please check your values."
	ErrMsgInvalidAddressError = "Invalid wallet address"
	ErrMsgAccessDeniedError   = "Access denied. Hold an access NFT or enough game tokens to play."
	ErrMsgLedgerUnavailable   = "The ledger is temporarily unavailable. Please try again."
	ErrMsgIssuanceFailedError = "Reward payout failed. Please try again."
	ErrMsgIssuanceRejected    = "The ledger rejected the transaction"
	ErrMsgListingNotFoundErr  = "Listing not found"
	ErrMsgListingNotActiveErr = "Listing is no longer available"
	ErrMsgSelfPurchaseError   = "You cannot buy your own listing"
	ErrMsgClaimNotFoundError  = "Claim not found"
)

// Health messages
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
	HealthMsgDatabaseDown   = "database connection failed"
	HealthMsgLedgerDown     = "ledger mirror node unreachable"
)
