package postgres

// Query limits
const (
	// DefaultHistoryLimit is used when a caller asks for a non-positive number of claims
	DefaultHistoryLimit = 20
	// MaxHistoryLimit caps a single history page
	MaxHistoryLimit = 100
)

// Error Messages
const (
	ErrMsgFailedToSaveClaim  = "failed to save claim"
	ErrMsgFailedToGetClaim   = "failed to get claim"
	ErrMsgFailedToListClaims = "failed to list claims"

	ErrMsgFailedToFindPartialClaim = "failed to find partial claim"
)
