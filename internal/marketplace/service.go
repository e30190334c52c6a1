// Package marketplace is the in-memory NFT marketplace. Listings are seeded
// from a catalog file and settle through the ledger's NFT transfer endpoint.
package marketplace

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/ledger"
	"github.com/osse101/QuestGate_Go/internal/logger"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// Service lists and sells NFTs
type Service interface {
	List(ctx context.Context) []domain.Listing
	Get(ctx context.Context, id int64) (*domain.Listing, error)
	ListForSale(ctx context.Context, req ListingRequest) (*domain.Listing, error)
	Buy(ctx context.Context, id int64, buyer string) (*domain.Purchase, error)
}

// HoldingsInvalidator drops cached holdings after ownership changes
type HoldingsInvalidator interface {
	Invalidate(address string)
}

// ListingRequest describes a new listing
type ListingRequest struct {
	Seller      string
	TokenID     string
	Serial      int64
	Name        string
	Description string
	Price       int64
	Metadata    domain.NFTMetadata
}

type service struct {
	mu       sync.RWMutex
	listings map[int64]*domain.Listing
	nextID   int64
	// unsettled maps a pending listing whose transfer outcome is unknown to
	// the only buyer allowed to retry it
	unsettled map[int64]string

	transferer  ledger.NFTTransferer
	invalidator HoldingsInvalidator
	bus         event.Bus
	retry       ledger.RetryPolicy
	now         func() time.Time
}

// NewService seeds a marketplace with listings. invalidator and bus may be nil.
func NewService(seed []domain.Listing, transferer ledger.NFTTransferer, invalidator HoldingsInvalidator, bus event.Bus, retry ledger.RetryPolicy) Service {
	s := &service{
		listings:    make(map[int64]*domain.Listing, len(seed)),
		unsettled:   make(map[int64]string),
		nextID:      1,
		transferer:  transferer,
		invalidator: invalidator,
		bus:         bus,
		retry:       retry,
		now:         time.Now,
	}
	for i := range seed {
		listing := seed[i]
		s.listings[listing.ID] = &listing
		if listing.ID >= s.nextID {
			s.nextID = listing.ID + 1
		}
	}
	logger.Info(LogMsgCatalogLoaded, "listings", len(s.listings))
	return s
}

// List returns active listings ordered by id
func (s *service) List(_ context.Context) []domain.Listing {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Listing, 0, len(s.listings))
	for _, l := range s.listings {
		if l.Status == domain.ListingStatusActive {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Get returns a listing in any status
func (s *service) Get(_ context.Context, id int64) (*domain.Listing, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	l, ok := s.listings[id]
	if !ok {
		return nil, fmt.Errorf("%w: %d", domain.ErrListingNotFound, id)
	}
	listing := *l
	return &listing, nil
}

// ListForSale creates an active listing owned by the seller
func (s *service) ListForSale(ctx context.Context, req ListingRequest) (*domain.Listing, error) {
	seller, err := wallet.Parse(req.Seller)
	if err != nil {
		return nil, err
	}
	switch {
	case req.Price <= 0:
		return nil, fmt.Errorf("%w: price must be positive, got %d", domain.ErrInvalidInput, req.Price)
	case req.Serial <= 0:
		return nil, fmt.Errorf("%w: serial must be positive, got %d", domain.ErrInvalidInput, req.Serial)
	case req.TokenID == "":
		return nil, fmt.Errorf("%w: token id is required", domain.ErrInvalidInput)
	case req.Name == "":
		return nil, fmt.Errorf("%w: name is required", domain.ErrInvalidInput)
	}

	s.mu.Lock()
	listing := &domain.Listing{
		ID:          s.nextID,
		TokenID:     req.TokenID,
		Serial:      req.Serial,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Seller:      seller.String(),
		Metadata:    req.Metadata,
		Status:      domain.ListingStatusActive,
		CreatedAt:   s.now().UTC(),
	}
	s.listings[listing.ID] = listing
	s.nextID++
	created := *listing
	s.mu.Unlock()

	logger.FromContext(ctx).Info(LogMsgListingCreated, "listing_id", created.ID, "seller", created.Seller, "price", created.Price)
	s.publish(ctx, event.NewListingCreatedEvent(created))
	return &created, nil
}

// Buy settles a purchase. The listing is held as pending while the transfer
// runs, so concurrent buyers see ErrListingNotActive. A definite failure
// reactivates it. When the transfer may have gone through, the listing stays
// pending and only the same buyer may retry, reusing the idempotency key.
func (s *service) Buy(ctx context.Context, id int64, buyer string) (*domain.Purchase, error) {
	log := logger.FromContext(ctx)

	buyerAddr, err := wallet.Parse(buyer)
	if err != nil {
		return nil, err
	}

	listing, err := s.reserve(id, buyerAddr)
	if err != nil {
		return nil, err
	}
	log.Info(LogMsgPurchaseStarted, "listing_id", id, "buyer", buyerAddr.String(), "price", listing.Price)

	req := ledger.TransferRequest{
		TokenID:        listing.TokenID,
		Serial:         listing.Serial,
		From:           listing.Seller,
		To:             buyerAddr.String(),
		PriceHbar:      listing.Price,
		IdempotencyKey: fmt.Sprintf("listing-%d-%s", listing.ID, buyerAddr.String()),
	}
	unknown := false
	txID, err := ledger.Retry(ctx, s.retry, func(ctx context.Context) (string, error) {
		txID, err := s.transferer.TransferNFT(ctx, req)
		if errors.Is(err, domain.ErrOutcomeUnknown) {
			unknown = true
		}
		return txID, err
	}, domain.ErrIssuanceFailed)
	if err != nil {
		if unknown {
			s.holdUnsettled(id, buyerAddr)
			log.Error(LogMsgTransferUnsettled, "listing_id", id, "buyer", buyerAddr.String(), "error", err)
			return nil, err
		}
		s.setStatus(id, domain.ListingStatusActive)
		log.Warn(LogMsgTransferFailed, "listing_id", id, "error", err)
		return nil, err
	}
	s.setStatus(id, domain.ListingStatusSold)

	purchase := &domain.Purchase{
		ListingID:     listing.ID,
		Buyer:         buyerAddr.String(),
		Seller:        listing.Seller,
		Price:         listing.Price,
		TransactionID: txID,
		PurchasedAt:   s.now().UTC(),
	}

	if s.invalidator != nil {
		s.invalidator.Invalidate(purchase.Buyer)
		s.invalidator.Invalidate(purchase.Seller)
	}
	log.Info(LogMsgPurchaseComplete, "listing_id", id, "transaction_id", txID)
	s.publish(ctx, event.NewListingSoldEvent(*purchase))
	return purchase, nil
}

// reserve moves an active listing to pending and returns a copy of it. An
// unsettled listing is handed back to the buyer it is held for.
func (s *service) reserve(id int64, buyer wallet.Address) (domain.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	l, ok := s.listings[id]
	if !ok {
		return domain.Listing{}, fmt.Errorf("%w: %d", domain.ErrListingNotFound, id)
	}
	if held, ok := s.unsettled[id]; ok && held == buyer.String() && l.Status == domain.ListingStatusPending {
		delete(s.unsettled, id)
		return *l, nil
	}
	if l.Status != domain.ListingStatusActive {
		return domain.Listing{}, fmt.Errorf("%w: listing %d is %s", domain.ErrListingNotActive, id, l.Status)
	}
	if l.Seller == buyer.String() {
		return domain.Listing{}, domain.ErrSelfPurchase
	}
	l.Status = domain.ListingStatusPending
	return *l, nil
}

func (s *service) holdUnsettled(id int64, buyer wallet.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.unsettled[id] = buyer.String()
}

func (s *service) setStatus(id int64, status domain.ListingStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if l, ok := s.listings[id]; ok {
		l.Status = status
	}
}

func (s *service) publish(ctx context.Context, evt event.Event) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Warn(LogMsgPublishFailed, "type", evt.Type, "error", err)
	}
}
