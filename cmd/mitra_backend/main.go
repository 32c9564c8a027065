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

	"github.com/gin-gonic/gin"
	"github.com/poultrymitra/mitra_backend/internal/core/services"
	"github.com/poultrymitra/mitra_backend/internal/handlers"
	"github.com/poultrymitra/mitra_backend/internal/metrics"
	"github.com/poultrymitra/mitra_backend/internal/middleware"
	"github.com/poultrymitra/mitra_backend/internal/platform/config"
	"github.com/poultrymitra/mitra_backend/internal/repositories/database/pgsql"
	"github.com/poultrymitra/mitra_backend/internal/translation"
	"github.com/poultrymitra/mitra_backend/internal/utils/retry"
	"github.com/poultrymitra/mitra_backend/pkg/database"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
)

// @title Poultry Mitra Backend API
// @version 1.0
// @description Dealer and farmer ledger, batch tracking and UI translations for Poultry Mitra.

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @security BearerAuth
func main() {
	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	policy := retry.DefaultPolicy()
	policy.MaxElapsedTime = cfg.RetryMaxElapsed
	policy.OnRetry = func(err error, next time.Duration) {
		logger.Warn("Retrying after transient failure", slog.String("error", err.Error()), slog.Duration("backoff", next))
	}

	ctx := context.Background()

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, policy)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer database.ClosePgxPool(dbPool)
	logger.Info("Database connection pool established.")

	logger.Info("Running database migrations...")
	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ledgerMetrics := metrics.NewLedgerMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	translator := newTranslator(ctx, cfg, policy, logger)
	defer func() {
		if cerr := translator.Close(); cerr != nil {
			logger.Error("Error closing translation cache", slog.String("error", cerr.Error()))
		}
	}()

	limiter, err := middleware.NewRateLimiter(cfg.RateLimit)
	if err != nil {
		logger.Error("Failed to create rate limiter", slog.String("error", err.Error()))
		os.Exit(1)
	}

	repos := pgsql.NewRepositoryProvider(dbPool)
	serviceContainer := services.NewServiceContainer(repos, policy, ledgerMetrics, translator)

	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware (logging, metrics, recovery)
	r.Use(middleware.StructuredLoggingMiddleware(logger), middleware.Metrics(httpMetrics), gin.Recovery())

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Error("Failed to set trusted proxies", slog.String("error", err.Error()))
		os.Exit(1)
	}

	handlers.RegisterRoutes(r, cfg, serviceContainer, handlers.RouterDeps{
		Gatherer:    registry,
		RateLimiter: limiter,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", slog.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to run", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", slog.String("error", err.Error()))
	}
	logger.Info("Server exited")
}

// newTranslator picks the shared Redis cache when REDIS_URL is set and
// reachable, and the in-process cache otherwise.
func newTranslator(ctx context.Context, cfg *config.Config, policy retry.Policy, logger *slog.Logger) *translation.Translator {
	var cache translation.Cache = translation.NewMemoryCache(cfg.TranslationCacheSize, cfg.TranslationCacheTTL)
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Error("Invalid REDIS_URL, using in-process translation cache", slog.String("error", err.Error()))
		} else {
			client := redis.NewClient(opts)
			pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := client.Ping(pingCtx).Err(); err != nil {
				logger.Warn("Redis unreachable, using in-process translation cache", slog.String("error", err.Error()))
				_ = client.Close()
			} else {
				cache = translation.NewRedisCache(client, "", cfg.TranslationCacheTTL)
				logger.Info("Using Redis translation cache")
			}
		}
	}

	options := []translation.Option{
		translation.WithCache(cache),
		translation.WithRetryPolicy(policy),
		translation.WithLanguages(cfg.TranslationLanguages...),
	}
	if cfg.TranslationAPIURL != "" {
		remote := translation.NewHTTPRemote(cfg.TranslationAPIURL, cfg.TranslationAPIKey, &http.Client{Timeout: 5 * time.Second})
		options = append(options, translation.WithRemote(remote))
	}
	return translation.NewTranslator(translation.DefaultDictionary(), options...)
}
