package marketplace

// Catalog collections resolve to configured token ids
const (
	CollectionAccess = "access"
	CollectionReward = "reward"
)

// CatalogSchemaVersion is the catalog file version this loader understands
const CatalogSchemaVersion = "1.0"

// CatalogSchemaPath is the JSON schema every catalog file must satisfy
const CatalogSchemaPath = "configs/schemas/marketplace.schema.json"

// Log messages
const (
	LogMsgCatalogLoaded    = "Marketplace catalog loaded"
	LogMsgListingCreated   = "Listing created"
	LogMsgPurchaseStarted  = "Purchase started"
	LogMsgPurchaseComplete = "Purchase completed"
	LogMsgTransferFailed   = "NFT transfer failed, listing reactivated"

	LogMsgTransferUnsettled = "NFT transfer outcome unknown, listing held for buyer"
	LogMsgPublishFailed     = "Failed to publish marketplace event"
)
