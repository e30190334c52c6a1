package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPResponseSize     = "http_response_size_bytes"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Ledger metric names
const (
	MetricNameLedgerRequestDuration = "ledger_request_duration_seconds"
	MetricNameLedgerRequestErrors   = "ledger_request_errors_total"
)

// Business metric names
const (
	MetricNameGateDecisions        = "gate_decisions_total"
	MetricNameRewardClaims         = "reward_claims_total"
	MetricNameTokensIssued         = "reward_tokens_issued_total"
	MetricNameNFTsIssued           = "reward_nfts_issued_total"
	MetricNameListingsCreated      = "marketplace_listings_created_total"
	MetricNameMarketplacePurchases = "marketplace_purchases_total"
	MetricNameMarketplaceVolume    = "marketplace_volume_hbar_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextHTTPResponseSize     = "HTTP response body size in bytes"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Ledger metric help text
const (
	HelpTextLedgerRequestDuration = "Latency of mirror node and treasury calls in seconds"
	HelpTextLedgerRequestErrors   = "Total number of failed ledger calls"
)

// Business metric help text
const (
	HelpTextGateDecisions        = "Total number of access gate decisions by reason"
	HelpTextRewardClaims         = "Total number of reward claims paid out"
	HelpTextTokensIssued         = "Total game tokens issued as rewards"
	HelpTextNFTsIssued           = "Total reward NFTs issued"
	HelpTextListingsCreated      = "Total number of marketplace listings created"
	HelpTextMarketplacePurchases = "Total number of settled marketplace purchases"
	HelpTextMarketplaceVolume    = "Total HBAR volume of settled marketplace purchases"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelReason    = "reason"
	LabelCached    = "cached"
	LabelOperation = "operation"
	LabelNFT       = "nft"
)

// PathUnmatched labels requests that matched no route
const PathUnmatched = "unmatched"

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// LedgerLatencyBuckets covers remote ledger calls, which include consensus
// round trips for mints and transfers.
var LedgerLatencyBuckets = []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10, 30}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgEventPayloadDecodeFailed = "Event payload could not be decoded"
	LogMsgMetricsRecorded          = "Metrics recorded for event"
)
