package gate

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/ledger"
	"github.com/osse101/QuestGate_Go/internal/logger"
	"github.com/osse101/QuestGate_Go/internal/wallet"
)

// Service checks wallets against the access policy using live holdings
type Service interface {
	Check(ctx context.Context, address string) (*domain.GateCheck, error)
	Invalidate(address string)
}

// ServiceConfig configures the gate service
type ServiceConfig struct {
	Policy    Config
	CacheSize int
	CacheTTL  time.Duration
	Retry     ledger.RetryPolicy
}

type service struct {
	holdings ledger.HoldingsQuerier
	bus      event.Bus
	policy   Config
	retry    ledger.RetryPolicy
	cache    *holdingsCache
	now      func() time.Time
}

// NewService creates a new gate service. bus may be nil.
func NewService(holdings ledger.HoldingsQuerier, bus event.Bus, cfg ServiceConfig) Service {
	return &service{
		holdings: holdings,
		bus:      bus,
		policy:   cfg.Policy,
		retry:    cfg.Retry,
		cache:    newHoldingsCache(cfg.CacheSize, cfg.CacheTTL),
		now:      time.Now,
	}
}

// Check resolves the wallet's holdings (cache first) and evaluates the policy.
// Lookup failures that outlast the retry policy wrap domain.ErrLookupFailed.
func (s *service) Check(ctx context.Context, address string) (_ *domain.GateCheck, err error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "gate.Check")
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	log := logger.FromContext(ctx)

	addr, err := wallet.Parse(address)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.String("wallet.address", addr.String()))

	holdings, asOf, cached := s.cache.Get(addr.String())
	if cached {
		log.Debug(LogMsgHoldingsCacheHit, "address", addr.String(), "as_of", asOf)
	} else {
		holdings, err = ledger.Retry(ctx, s.retry, func(ctx context.Context) (domain.HoldingsSnapshot, error) {
			return s.holdings.Holdings(ctx, addr)
		}, domain.ErrLookupFailed)
		if err != nil {
			log.Warn(LogMsgHoldingsLookupFail, "address", addr.String(), "error", err)
			return nil, err
		}
		asOf = s.now().UTC()
	}

	decision, err := Evaluate(holdings, s.policy)
	if err != nil {
		return nil, err
	}
	if !cached {
		s.cache.Set(addr.String(), holdings, asOf)
	}

	check := &domain.GateCheck{
		Address:      addr.String(),
		Decision:     decision,
		Holdings:     holdings,
		Cached:       cached,
		HoldingsAsOf: asOf,
		CheckedAt:    s.now().UTC(),
	}

	span.SetAttributes(
		attribute.Bool("gate.allowed", decision.Allowed),
		attribute.String("gate.reason", string(decision.Reason)),
	)
	log.Info(LogMsgGateChecked,
		"address", check.Address,
		"allowed", decision.Allowed,
		"reason", decision.Reason,
		"cached", cached)

	if s.bus != nil {
		if err := s.bus.Publish(ctx, event.NewGateCheckedEvent(*check)); err != nil {
			log.Warn(LogMsgPublishFailed, "error", err)
		}
	}

	return check, nil
}

// Invalidate drops any cached snapshot for address. Unparseable addresses are ignored.
func (s *service) Invalidate(address string) {
	addr, err := wallet.Parse(address)
	if err != nil {
		return
	}
	s.cache.Invalidate(addr.String())
}
