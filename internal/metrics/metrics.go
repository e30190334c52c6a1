package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPResponseSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPResponseSize,
			Help:    HelpTextHTTPResponseSize,
			Buckets: prometheus.ExponentialBuckets(64, 4, 7),
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Ledger Metrics
var (
	LedgerRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameLedgerRequestDuration,
			Help:    HelpTextLedgerRequestDuration,
			Buckets: LedgerLatencyBuckets,
		},
		[]string{LabelOperation},
	)

	LedgerRequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLedgerRequestErrors,
			Help: HelpTextLedgerRequestErrors,
		},
		[]string{LabelOperation},
	)
)

// Business Metrics
var (
	GateDecisions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGateDecisions,
			Help: HelpTextGateDecisions,
		},
		[]string{LabelReason, LabelCached},
	)

	RewardClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardClaims,
			Help: HelpTextRewardClaims,
		},
		[]string{LabelNFT},
	)

	TokensIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameTokensIssued,
			Help: HelpTextTokensIssued,
		},
	)

	NFTsIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameNFTsIssued,
			Help: HelpTextNFTsIssued,
		},
	)

	ListingsCreated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameListingsCreated,
			Help: HelpTextListingsCreated,
		},
	)

	MarketplacePurchases = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketplacePurchases,
			Help: HelpTextMarketplacePurchases,
		},
	)

	MarketplaceVolume = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameMarketplaceVolume,
			Help: HelpTextMarketplaceVolume,
		},
	)
)
