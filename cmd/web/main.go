package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sales-dashboard/internal/config"
	"sales-dashboard/internal/dataset"
	"sales-dashboard/internal/metrics"
	"sales-dashboard/internal/middleware"
	"sales-dashboard/internal/observability"
	"sales-dashboard/internal/server"
	"sales-dashboard/internal/services"
	"sales-dashboard/internal/ui/templates"
)

const (
	renderTimeout = 10 * time.Second
	loadTimeout   = 30 * time.Second
)

func newDashboardHandler(session *services.Session) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), renderTimeout)
		defer cancel()

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		if err := templates.Dashboard(session.Dashboard(), session.Pending()).Render(ctx, w); err != nil {
			http.Error(w, "render error", http.StatusInternalServerError)
		}
	}
}

// newHandler assembles routes and the middleware chain around session.
func newHandler(cfg *config.Config, logger *slog.Logger, session *services.Session, reg *metrics.Registry, limiter *middleware.RateLimiter) http.Handler {
	endpoint := server.MetricsEndpoint{Path: cfg.Metrics.Path}
	if cfg.Metrics.Enabled {
		endpoint.Registry = reg
	}

	srv := server.NewServer(session, logger, &server.TemplateHandlers{
		Dashboard: newDashboardHandler(session),
	}, endpoint)

	middlewareChain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Tracing(logger),
		middleware.SecurityHeaders(),
		middleware.CORS(cfg.Security),
		middleware.TrustedProxy(cfg.Security),
		middleware.RateLimit(limiter, logger),
	)

	return middlewareChain(srv)
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := observability.NewLogger(cfg.Logger)
	slog.SetDefault(logger)

	logger.Info("starting application",
		"version", "1.0.0",
		"config", cfg,
	)

	reg := metrics.NewRegistry()

	loadCtx, cancel := context.WithTimeout(ctx, loadTimeout)
	defer cancel()

	records, err := dataset.Load(loadCtx, cfg.Dataset, logger, reg)
	if err != nil {
		return err
	}

	session := services.NewSession(records, logger, reg)

	rateLimiter := middleware.NewRateLimiter(cfg.Security)
	rateLimiter.Start(cfg.Security.RateLimitIdle / 2)

	httpServer := &http.Server{
		Addr:         cfg.Address(),
		Handler:      newHandler(cfg, logger, session, reg, rateLimiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	gracefulServer := server.NewGracefulServer(httpServer, logger, cfg)

	gracefulServer.RegisterShutdownHook("session", func(ctx context.Context) error {
		logger.Info("shutting down dashboard session", "stats", session.Stats())
		return nil
	})

	gracefulServer.RegisterShutdownHook("rate-limiter", rateLimiter.Close)

	logger.Info("starting graceful server")
	return gracefulServer.Run(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("application failed", "error", err)
		stop()
		os.Exit(1)
	}

	slog.Info("application stopped gracefully")
}
