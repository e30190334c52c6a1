package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/osse101/QuestGate_Go/docs"
	"github.com/osse101/QuestGate_Go/internal/bootstrap"
	"github.com/osse101/QuestGate_Go/internal/config"
	"github.com/osse101/QuestGate_Go/internal/database"
	"github.com/osse101/QuestGate_Go/internal/server"
	"github.com/osse101/QuestGate_Go/internal/worker"
)

const (
	startupTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title QuestGate API
// @version 1.0
// @description Token and NFT gated play-to-earn backend: access checks, reward claims and a small NFT marketplace.
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	if err := run(); err != nil {
		slog.Error("Fatal error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logFile, err := initLogger(cfg)
	if err != nil {
		return err
	}
	if logFile != nil {
		defer logFile.Close()
	}

	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Warn("Environment validation", "error", err)
	}
	for _, w := range warnings {
		slog.Warn(w)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), startupTimeout)
	defer cancelStartup()

	shutdownTracing, err := initTracing(startupCtx, cfg)
	if err != nil {
		return err
	}

	dbPool, err := database.NewPool(startupCtx, cfg.GetDBConnString(), dbPoolOptions(cfg))
	if err != nil {
		return err
	}
	defer dbPool.Close()

	if err := database.Migrate(startupCtx, dbPool); err != nil {
		return err
	}

	catalog, err := bootstrap.LoadMarketplaceCatalog(cfg)
	if err != nil {
		return err
	}

	pool := worker.NewPool(cfg.WorkerCount, bootstrap.EventQueueSize)
	pool.Start()

	_, publisher, err := bootstrap.InitializeEventSystem(cfg, pool)
	if err != nil {
		pool.Stop()
		return err
	}
	if err := bootstrap.RegisterEventHandlers(publisher); err != nil {
		pool.Stop()
		return err
	}
	bootstrap.ReplayDeadLetters(startupCtx, publisher)

	clients := bootstrap.InitializeLedger(cfg)
	scheduler := worker.NewScheduler(pool)
	scheduler.Schedule(bootstrap.JobNameLedgerProbe, cfg.LedgerProbeInterval, clients.Probe)

	repos := bootstrap.InitializeRepositories(dbPool)
	services := bootstrap.InitializeServices(cfg, repos, clients, publisher, catalog)

	srv := server.NewServer(server.Options{
		Port:           cfg.Port,
		APIKey:         cfg.APIKey,
		TrustedProxies: cfg.TrustedProxies,
		AllowedOrigins: cfg.CORSAllowedOrigins,
	}, server.Services{
		DB:          dbPool,
		Ledger:      clients.Probe,
		Gate:        services.Gate,
		Claim:       services.Claim,
		Account:     services.Account,
		Marketplace: services.Marketplace,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-stop:
		slog.Info("Received shutdown signal", "signal", sig.String())
	case runErr = <-serverErr:
		slog.Error("Server failed", "error", runErr)
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          scheduler,
		ResilientPublisher: publisher,
		WorkerPool:         pool,
		Telemetry:          shutdownTracing,
	})

	return runErr
}

func dbPoolOptions(cfg *config.Config) database.PoolOptions {
	opts := database.DefaultPoolOptions()
	if cfg.DBMaxConns > 0 {
		opts.MaxConns = cfg.DBMaxConns
	}
	if cfg.ServiceName != "" {
		opts.AppName = cfg.ServiceName
	}
	return opts
}
