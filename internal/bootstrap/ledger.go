package bootstrap

import (
	"log/slog"

	"github.com/osse101/QuestGate_Go/internal/config"
	"github.com/osse101/QuestGate_Go/internal/ledger"
)

// LedgerClients groups the ledger collaborators handed to services
type LedgerClients struct {
	Mirror     *ledger.MirrorClient
	Issuer     ledger.RewardIssuer
	Transferer ledger.NFTTransferer
	Probe      *ledger.HealthProbe
	DryRun     bool
}

// InitializeLedger builds the mirror node client and the treasury client.
// Without TREASURY_URL payouts and transfers use the dry-run implementation.
func InitializeLedger(cfg *config.Config) *LedgerClients {
	mirror := ledger.NewMirrorClient(ledger.MirrorConfig{
		BaseURL:          cfg.MirrorNodeURL,
		AccessNFTTokenID: cfg.AccessNFTTokenID,
		GameTokenID:      cfg.GameTokenID,
		Timeout:          cfg.LedgerTimeout,
	}, nil)

	clients := &LedgerClients{
		Mirror: mirror,
		Probe:  ledger.NewHealthProbe(mirror, cfg.LedgerTimeout),
	}

	if cfg.TreasuryURL == "" {
		slog.Warn(LogMsgLedgerDryRun)
		dry := ledger.NewDryRun()
		clients.Issuer = dry
		clients.Transferer = dry
		clients.DryRun = true
	} else {
		treasury := ledger.NewTreasuryClient(ledger.TreasuryConfig{
			BaseURL:          cfg.TreasuryURL,
			Token:            cfg.TreasuryToken,
			GameTokenID:      cfg.GameTokenID,
			RewardNFTTokenID: cfg.RewardNFTTokenID,
			Timeout:          cfg.LedgerTimeout,
		}, nil)
		clients.Issuer = treasury
		clients.Transferer = treasury
	}

	slog.Info(LogMsgLedgerInitialized,
		"network", cfg.LedgerNetwork,
		"mirror_node_url", cfg.MirrorNodeURL,
		"dry_run", clients.DryRun)

	return clients
}

// RetryPolicy derives the ledger retry policy from configuration
func RetryPolicy(cfg *config.Config) ledger.RetryPolicy {
	return ledger.RetryPolicy{
		MaxRetries:      cfg.LedgerMaxRetries,
		InitialInterval: LedgerRetryInitialInterval,
		MaxInterval:     LedgerRetryMaxInterval,
	}
}
