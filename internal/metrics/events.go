package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	eventTypes := []event.Type{
		domain.EventTypeGateChecked,
		domain.EventTypeRewardClaimed,
		domain.EventTypeListingCreated,
		domain.EventTypeListingSold,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case domain.EventTypeGateChecked:
		var p domain.GateCheckedPayload
		if p, err = event.DecodePayload[domain.GateCheckedPayload](evt.Payload); err == nil {
			GateDecisions.WithLabelValues(p.Reason, strconv.FormatBool(p.Cached)).Inc()
		}

	case domain.EventTypeRewardClaimed:
		var p domain.RewardClaimedPayload
		if p, err = event.DecodePayload[domain.RewardClaimedPayload](evt.Payload); err == nil {
			RewardClaims.WithLabelValues(strconv.FormatBool(p.NFTAwarded)).Inc()
			TokensIssued.Add(float64(p.TotalTokens))
			if p.NFTAwarded {
				NFTsIssued.Inc()
			}
		}

	case domain.EventTypeListingCreated:
		ListingsCreated.Inc()

	case domain.EventTypeListingSold:
		var p domain.ListingSoldPayload
		if p, err = event.DecodePayload[domain.ListingSoldPayload](evt.Payload); err == nil {
			MarketplacePurchases.Inc()
			MarketplaceVolume.Add(float64(p.Price))
		}
	}

	if err != nil {
		log.Debug(LogMsgEventPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
