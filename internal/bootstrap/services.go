package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/QuestGate_Go/internal/account"
	"github.com/osse101/QuestGate_Go/internal/claim"
	"github.com/osse101/QuestGate_Go/internal/config"
	"github.com/osse101/QuestGate_Go/internal/domain"
	"github.com/osse101/QuestGate_Go/internal/event"
	"github.com/osse101/QuestGate_Go/internal/gate"
	"github.com/osse101/QuestGate_Go/internal/marketplace"
)

// Services holds the application services served over HTTP
type Services struct {
	Gate        gate.Service
	Claim       claim.Service
	Account     account.Service
	Marketplace marketplace.Service
}

// LoadMarketplaceCatalog reads the seed listings for the in-memory marketplace
func LoadMarketplaceCatalog(cfg *config.Config) ([]domain.Listing, error) {
	slog.Info(LogMsgLoadingCatalog, "path", cfg.MarketplaceCatalog)

	listings, err := marketplace.LoadCatalog(cfg.MarketplaceCatalog, marketplace.CollectionTokens{
		AccessNFTTokenID: cfg.AccessNFTTokenID,
		RewardNFTTokenID: cfg.RewardNFTTokenID,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCatalog, err)
	}

	slog.Info(LogMsgCatalogLoaded, "listings", len(listings))
	return listings, nil
}

// InitializeServices wires the services in dependency order: the gate first,
// since claims enforce it and purchases invalidate its cache.
func InitializeServices(cfg *config.Config, repos *Repositories, clients *LedgerClients, bus event.Bus, catalog []domain.Listing) *Services {
	retry := RetryPolicy(cfg)

	gateSvc := gate.NewService(clients.Mirror, bus, gate.ServiceConfig{
		Policy:    cfg.GateConfig(),
		CacheSize: cfg.HoldingsCacheSize,
		CacheTTL:  cfg.HoldingsCacheTTL,
		Retry:     retry,
	})

	claimSvc := claim.NewService(repos.Claim, clients.Issuer, gateSvc, bus, claim.Config{
		RequireAccess: cfg.RequireAccessToClaim,
		Retry:         retry,
	})

	accountSvc := account.NewService(clients.Mirror, account.Config{
		AccessNFTTokenID: cfg.AccessNFTTokenID,
		GameTokenID:      cfg.GameTokenID,
		RewardNFTTokenID: cfg.RewardNFTTokenID,
		Retry:            retry,
	})

	marketSvc := marketplace.NewService(catalog, clients.Transferer, gateSvc, bus, retry)

	slog.Info(LogMsgServicesInitialized,
		"require_access_to_claim", cfg.RequireAccessToClaim,
		"min_game_token_balance", cfg.MinGameTokenBalance,
		"holdings_cache_size", cfg.HoldingsCacheSize)

	return &Services{
		Gate:        gateSvc,
		Claim:       claimSvc,
		Account:     accountSvc,
		Marketplace: marketSvc,
	}
}
