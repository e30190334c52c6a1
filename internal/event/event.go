package event

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/osse101/QuestGate_Go/internal/domain"
)

// Type names an event, e.g. "reward.claimed"
type Type string

// Event is the envelope published on the bus and written to the dead-letter
// file. Payload is one of the domain *Payload structs; after a JSON round trip
// it is a generic map, so consumers go through DecodePayload.
type Event struct {
	Version  string            `json:"version"`
	Type     Type              `json:"type"`
	Payload  any               `json:"payload"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// MetadataRequestID carries the originating HTTP request id
const MetadataRequestID = "request_id"

// RequestID returns the originating request id, or "" when none was recorded
func (e Event) RequestID() string {
	return e.Metadata[MetadataRequestID]
}

func withRequestID(requestID string) map[string]string {
	if requestID == "" {
		return nil
	}
	return map[string]string{MetadataRequestID: requestID}
}

// NewGateCheckedEvent creates a gate.checked event
func NewGateCheckedEvent(check domain.GateCheck) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeGateChecked,
		Payload: domain.GateCheckedPayload{
			Address:   check.Address,
			Allowed:   check.Decision.Allowed,
			Reason:    string(check.Decision.Reason),
			Cached:    check.Cached,
			Timestamp: check.CheckedAt.Unix(),
		},
	}
}

// NewRewardClaimedEvent creates a reward.claimed event
func NewRewardClaimedEvent(record domain.ClaimRecord, requestID string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeRewardClaimed,
		Payload: domain.RewardClaimedPayload{
			ClaimID:     record.ID.String(),
			Address:     record.Address,
			Score:       record.Score,
			TotalTokens: record.Outcome.TotalTokens,
			NFTAwarded:  record.Receipt.NFTTxID != "",
			Timestamp:   record.CreatedAt.Unix(),
		},
		Metadata: withRequestID(requestID),
	}
}

// NewListingCreatedEvent creates a listing.created event
func NewListingCreatedEvent(listing domain.Listing) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeListingCreated,
		Payload: domain.ListingCreatedPayload{
			ListingID: listing.ID,
			Seller:    listing.Seller,
			Price:     listing.Price,
			Timestamp: listing.CreatedAt.Unix(),
		},
	}
}

// NewListingSoldEvent creates a listing.sold event
func NewListingSoldEvent(purchase domain.Purchase) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeListingSold,
		Payload: domain.ListingSoldPayload{
			ListingID:     purchase.ListingID,
			Buyer:         purchase.Buyer,
			Seller:        purchase.Seller,
			Price:         purchase.Price,
			TransactionID: purchase.TransactionID,
			Timestamp:     purchase.PurchasedAt.Unix(),
		},
	}
}

// Handler reacts to one event
type Handler func(ctx context.Context, event Event) error

// Bus delivers events to subscribers
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus delivers synchronously on the publishing goroutine
type MemoryBus struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewMemoryBus creates an empty MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{handlers: make(map[Type][]Handler)}
}

// Publish runs every handler for the event's type. All handlers run even
// when one fails; their errors are joined.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, h := range handlers {
		if err := h(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf(ErrMsgHandlersFailedFormat, len(errs), event.Type, errors.Join(errs...))
}

// Subscribe adds handler for eventType
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()
	// copy-on-write so Publish can iterate a snapshot without holding the lock
	next := make([]Handler, len(b.handlers[eventType]), len(b.handlers[eventType])+1)
	copy(next, b.handlers[eventType])
	b.handlers[eventType] = append(next, handler)
}
