package gate

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

const tracerName = "github.com/osse101/QuestGate_Go/internal/gate"

// Log messages
const (
	LogMsgGateChecked        = "Gate checked"
	LogMsgHoldingsCacheHit   = "Holdings cache hit"
	LogMsgHoldingsLookupFail = "Holdings lookup failed"
	LogMsgPublishFailed      = "Failed to publish gate event"
)
