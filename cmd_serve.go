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

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"revshare-calculator/config"
	"revshare-calculator/domain"
	httpLayer "revshare-calculator/http"
	"revshare-calculator/repository"
	"revshare-calculator/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

type stores struct {
	projections repository.ProjectionRepository
	records     repository.RecordRepository
	cache       repository.CacheRepository
	closers     []func() error
}

func (s *stores) Close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		if err := s.closers[i](); err != nil {
			logger.Warn("close store", zap.Error(err))
		}
	}
}

func openStores(ctx context.Context, cfg config.Config) (*stores, error) {
	s := &stores{}

	if cfg.DBPath != "" {
		db, err := repository.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return nil, err
		}
		s.closers = append(s.closers, db.Close)
		s.projections = repository.NewSQLiteProjectionRepository(db)
		s.records = repository.NewSQLiteRecordRepository(db)
		logger.Info("using sqlite storage", zap.String("path", cfg.DBPath))
	} else {
		s.projections = repository.NewProjectionRepositoryMemory()
		s.records = repository.NewRecordRepositoryMemory()
		logger.Info("using in-memory storage")
	}

	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		s.closers = append(s.closers, redisCache.Close)
		if err := redisCache.Ping(ctx); err != nil {
			s.Close()
			return nil, fmt.Errorf("connect redis %s: %w", cfg.RedisAddr, err)
		}
		s.cache = redisCache
		logger.Info("using redis cache", zap.String("addr", cfg.RedisAddr))
	} else {
		s.cache = repository.NewMemoryCache()
	}
	return s, nil
}

// seedRecords imports the static seed file once, when the ledger is empty.
func seedRecords(ctx context.Context, records *service.RecordService, path string) error {
	if path == "" {
		return nil
	}
	existing, err := records.List(ctx, domain.RecordFilter{})
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("ledger not empty, skipping seed", zap.Int("records", len(existing)))
		return nil
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()

	_, err = records.Import(ctx, f)
	return err
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile)
	if err != nil {
		return err
	}
	catalog, err := config.LoadRBOCatalog(cfg.RBOCatalogPath)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := openStores(ctx, cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	projectionService := service.NewProjectionService(st.projections, st.cache, logger).WithCacheTTL(cfg.CacheTTL)
	feasibilityService := service.NewFeasibilityService(logger)
	recordService := service.NewRecordService(st.records, catalog, logger)

	if err := seedRecords(ctx, recordService, cfg.SeedPath); err != nil {
		return err
	}

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimit, cfg.RateWindow, logger)
	defer rateLimiter.Stop()

	handler := httpLayer.NewRouter(httpLayer.Handlers{
		Projection:  httpLayer.NewProjectionHandler(projectionService, logger),
		Feasibility: httpLayer.NewFeasibilityHandler(feasibilityService, logger),
		Records:     httpLayer.NewRecordHandler(recordService, logger),
	}, rateLimiter, logger)

	server := &http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("API listening", zap.String("addr", cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case sig := <-quit:
		logger.Info("shutting down server", zap.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", zap.Error(err))
	}

	logger.Info("server exited")
	return nil
}
