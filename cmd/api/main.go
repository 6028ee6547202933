package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"merchant-reporting/config"
	httpHandler "merchant-reporting/internal/adapter/http/handler"
	pgStorage "merchant-reporting/internal/adapter/storage/postgres"
	redisStorage "merchant-reporting/internal/adapter/storage/redis"
	"merchant-reporting/internal/core/ports"
	"merchant-reporting/internal/service"
	"merchant-reporting/pkg/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load(os.Getenv("MRS_CONFIG_FILE"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Log.Level, cfg.Log.Pretty)

	loc, err := cfg.Reporting.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid reporting timezone")
	}

	log.Info().
		Str("mode", cfg.Server.Mode).
		Int("port", cfg.Server.Port).
		Str("timezone", loc.String()).
		Msg("Starting Merchant Reporting Service")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgStorage.NewPool(ctx, cfg.Database, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	rdb, err := redisStorage.NewClient(ctx, cfg.Redis, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	reportingRepo := pgStorage.NewReportingRepo(pool)
	monthlyCache := redisStorage.NewMonthlyVolumeCache(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	reportingSvc := service.NewReportingService(reportingRepo, monthlyCache, service.ReportingOptions{
		MonthlyCacheKey: cfg.Reporting.MonthlyCacheKey,
		Location:        loc,
		TopLimit:        cfg.Reporting.TopTransactionsLimit,
	}, log)

	go service.RunCacheInvalidation(ctx, reportingSvc, cfg.Reporting.CacheRefreshInterval, log)
	go service.RunMonthRollover(ctx, reportingSvc, time.Now, loc, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		ReportingSvc: reportingSvc,
		RateLimiter:  rateLimitStore,
		HealthCheckers: []ports.HealthChecker{
			pgStorage.NewHealthCheck(pool),
			redisStorage.NewHealthCheck(rdb),
		},
		Location:   loc,
		SearchDays: cfg.Reporting.DefaultSearchDays,
		Mode:       cfg.Server.Mode,
		Logger:     log,
	})

	// HTTP Server with graceful shutdown
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}
