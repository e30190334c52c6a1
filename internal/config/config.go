package config

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/osse101/QuestGate_Go/internal/gate"
)

// Config holds the application configuration
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat   string `env:"LOG_FORMAT" envDefault:"text"`
	Environment string `env:"ENVIRONMENT" envDefault:"dev"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"questgate"`
	Version     string `env:"VERSION" envDefault:"dev"`

	// APIKey enables key auth on mutating routes when set
	APIKey             string   `env:"API_KEY"`
	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`
	TrustedProxies     []string `env:"TRUSTED_PROXIES" envSeparator:","`

	DBUser     string `env:"DB_USER" envDefault:"postgres"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"postgres"`
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBName     string `env:"DB_NAME" envDefault:"questgate"`
	DBMaxConns int    `env:"DB_MAX_CONNS" envDefault:"10"`

	LedgerNetwork    string `env:"LEDGER_NETWORK" envDefault:"testnet"`
	MirrorNodeURL    string `env:"MIRROR_NODE_URL" envDefault:"https://testnet.mirrornode.hedera.com"`
	TreasuryURL      string `env:"TREASURY_URL"`
	TreasuryToken    string `env:"TREASURY_TOKEN"`
	AccessNFTTokenID string `env:"ACCESS_NFT_TOKEN_ID"`
	GameTokenID      string `env:"GAME_TOKEN_ID"`
	RewardNFTTokenID string `env:"REWARD_NFT_TOKEN_ID"`

	MinGameTokenBalance  int64 `env:"MIN_GAME_TOKEN_BALANCE" envDefault:"100"`
	RequireAccessToClaim bool  `env:"REQUIRE_ACCESS_TO_CLAIM" envDefault:"true"`

	LedgerTimeout       time.Duration `env:"LEDGER_TIMEOUT" envDefault:"10s"`
	LedgerMaxRetries    uint64        `env:"LEDGER_MAX_RETRIES" envDefault:"3"`
	LedgerProbeInterval time.Duration `env:"LEDGER_PROBE_INTERVAL" envDefault:"30s"`

	HoldingsCacheSize int           `env:"HOLDINGS_CACHE_SIZE" envDefault:"1024"`
	HoldingsCacheTTL  time.Duration `env:"HOLDINGS_CACHE_TTL" envDefault:"30s"`

	MarketplaceCatalog string `env:"MARKETPLACE_CATALOG" envDefault:"configs/marketplace.json"`
	OTelEndpoint       string `env:"OTEL_ENDPOINT"`
	WorkerCount        int    `env:"WORKER_COUNT" envDefault:"4"`

	// Event publishing retries; an empty path disables the dead-letter file
	EventMaxRetries     uint64        `env:"EVENT_MAX_RETRIES" envDefault:"5"`
	EventRetryDelay     time.Duration `env:"EVENT_RETRY_DELAY" envDefault:"2s"`
	EventDeadLetterPath string        `env:"EVENT_DEAD_LETTER_PATH" envDefault:"logs/event_deadletter.jsonl"`

	// LogDir additionally writes session log files when set
	LogDir string `env:"LOG_DIR"`
}

// Load reads .env when present, then the process environment
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()
	return parse(env.Options{})
}

// parse fills a Config using opts; tests pass opts.Environment to avoid
// touching the process environment.
func parse(opts env.Options) (*Config, error) {
	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate reports every out-of-range setting at once
func (c *Config) validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Port > 0 && c.Port <= 65535, "invalid PORT value: %d", c.Port)
	check(c.MinGameTokenBalance >= 0, "MIN_GAME_TOKEN_BALANCE must not be negative, got %d", c.MinGameTokenBalance)
	check(c.LedgerTimeout > 0, "LEDGER_TIMEOUT must be positive, got %s", c.LedgerTimeout)
	check(c.HoldingsCacheSize >= 0, "HOLDINGS_CACHE_SIZE must not be negative, got %d", c.HoldingsCacheSize)
	check(c.WorkerCount > 0, "WORKER_COUNT must be positive, got %d", c.WorkerCount)
	check(c.LedgerProbeInterval > 0, "LEDGER_PROBE_INTERVAL must be positive, got %s", c.LedgerProbeInterval)
	check(c.MirrorNodeURL != "", "MIRROR_NODE_URL must be set")

	return errors.Join(errs...)
}

// GateConfig returns the access policy derived from the configuration
func (c *Config) GateConfig() gate.Config {
	return gate.Config{MinGameTokenBalance: c.MinGameTokenBalance}
}

// GetDBConnString returns the PostgreSQL DSN with credentials escaped
func (c *Config) GetDBConnString() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.DBUser, c.DBPassword),
		Host:     net.JoinHostPort(c.DBHost, c.DBPort),
		Path:     "/" + c.DBName,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}
