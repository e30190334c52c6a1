package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Input errors
	ErrMsgInvalidInput   = "invalid input"
	ErrMsgInvalidAddress = "invalid wallet address"

	// Ledger errors
	ErrMsgLookupFailed     = "holdings lookup failed"
	ErrMsgIssuanceFailed   = "reward issuance failed"
	ErrMsgIssuanceRejected = "ledger rejected the transaction"
	ErrMsgOutcomeUnknown   = "ledger outcome unknown"

	// Access errors
	ErrMsgAccessDenied = "access denied: insufficient holdings"

	// Marketplace errors
	ErrMsgListingNotFound  = "listing not found"
	ErrMsgListingNotActive = "listing is not active"
	ErrMsgSelfPurchase     = "cannot buy your own listing"

	// Claim errors
	ErrMsgClaimNotFound = "claim not found"

	// Database/System errors
	ErrMsgDatabaseError = "database error"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrInvalidInput is permanent and never retried
	ErrInvalidInput   = errors.New(ErrMsgInvalidInput)
	ErrInvalidAddress = errors.New(ErrMsgInvalidAddress)

	// Ledger errors are transient and retried by the calling service
	ErrLookupFailed   = errors.New(ErrMsgLookupFailed)
	ErrIssuanceFailed = errors.New(ErrMsgIssuanceFailed)

	// ErrIssuanceRejected is a permanent refusal by the treasury signer
	ErrIssuanceRejected = errors.New(ErrMsgIssuanceRejected)

	// ErrOutcomeUnknown accompanies ErrIssuanceFailed when the request may
	// have executed on the ledger (lost response, server error, timeout).
	// Only a retry with the same idempotency key may follow it.
	ErrOutcomeUnknown = errors.New(ErrMsgOutcomeUnknown)

	ErrAccessDenied = errors.New(ErrMsgAccessDenied)

	ErrListingNotFound  = errors.New(ErrMsgListingNotFound)
	ErrListingNotActive = errors.New(ErrMsgListingNotActive)
	ErrSelfPurchase     = errors.New(ErrMsgSelfPurchase)

	ErrClaimNotFound = errors.New(ErrMsgClaimNotFound)
)
