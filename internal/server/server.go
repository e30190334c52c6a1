package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/QuestGate_Go/internal/account"
	"github.com/osse101/QuestGate_Go/internal/claim"
	"github.com/osse101/QuestGate_Go/internal/database"
	"github.com/osse101/QuestGate_Go/internal/gate"
	"github.com/osse101/QuestGate_Go/internal/handler"
	"github.com/osse101/QuestGate_Go/internal/marketplace"
	"github.com/osse101/QuestGate_Go/internal/metrics"
)

// Options holds the HTTP-level settings
type Options struct {
	Port           int
	APIKey         string // empty disables key auth
	TrustedProxies []string
	AllowedOrigins []string
}

// Services are the collaborators the routes are served from
type Services struct {
	DB          database.Pool
	Ledger      handler.LedgerStatus
	Gate        gate.Service
	Claim       claim.Service
	Account     account.Service
	Marketplace marketplace.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: ReadHeaderTimeout,
		},
	}
}

// NewRouter builds the chi router with the full middleware stack
func NewRouter(opts Options, svc Services) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()
	trusted := ParseTrustedProxies(opts.TrustedProxies)

	r.Use(SecurityHeadersMiddleware())
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   opts.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Content-Type", HeaderAPIKey},
		AllowCredentials: false,
		MaxAge:           CORSMaxAgeSeconds,
	}))
	r.Use(SecurityLoggingMiddleware(trusted, detector))
	r.Use(AuthMiddleware(opts.APIKey, trusted, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(svc.DB, svc.Ledger))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/check-gate", handler.HandleCheckGate(svc.Gate))
		r.Post("/claim", handler.HandleClaimReward(svc.Claim))

		r.Route("/rewards", func(r chi.Router) {
			r.Get("/preview", handler.HandlePreviewReward(svc.Claim))
			r.Get("/history", handler.HandleRewardHistory(svc.Claim))
			r.Get("/claims/{id}", handler.HandleGetClaim(svc.Claim))
		})

		r.Route("/user", func(r chi.Router) {
			r.Get("/balance", handler.HandleGetBalance(svc.Account))
			r.Get("/nfts", handler.HandleGetUserNFTs(svc.Account))
		})

		r.Route("/marketplace", func(r chi.Router) {
			r.Get("/list", handler.HandleListMarketplace(svc.Marketplace))
			r.Post("/buy", handler.HandleBuyListing(svc.Marketplace))
			r.Post("/sell", handler.HandleSellListing(svc.Marketplace))
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

// Handler exposes the router, mainly for tests
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
