package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "reward.claimed")
const (
	// EventTypeGateChecked is published after every access decision
	EventTypeGateChecked = "gate.checked"

	// EventTypeRewardClaimed is published when a claim has been paid out and recorded
	EventTypeRewardClaimed = "reward.claimed"

	// EventTypeListingCreated is published when a wallet lists an NFT for sale
	EventTypeListingCreated = "listing.created"

	// EventTypeListingSold is published when a listing purchase settles
	EventTypeListingSold = "listing.sold"
)
