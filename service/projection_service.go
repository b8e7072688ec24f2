package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"revshare-calculator/domain"
	"revshare-calculator/repository"
)

type ProjectionService struct {
	repo     repository.ProjectionRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	logger   *zap.Logger
}

// NewProjectionService creates a ProjectionService. Cached results expire
// after DefaultCacheTTL unless WithCacheTTL is used.
func NewProjectionService(
	repo repository.ProjectionRepository,
	cache repository.CacheRepository,
	logger *zap.Logger,
) *ProjectionService {
	return &ProjectionService{
		repo:     repo,
		cache:    cache,
		cacheTTL: DefaultCacheTTL,
		logger:   logger,
	}
}

func (s *ProjectionService) WithCacheTTL(ttl time.Duration) *ProjectionService {
	s.cacheTTL = ttl
	return s
}

// Project validates the input and runs the projector.
func (s *ProjectionService) Project(
	ctx context.Context,
	input domain.ProjectionInput,
) (domain.ProjectionResult, error) {
	if err := ValidateProjectionInput(input); err != nil {
		return domain.ProjectionResult{}, err
	}

	key := projectionCacheKey(input)
	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.ProjectionResult
		if err := json.Unmarshal([]byte(cached), &result); err == nil {
			s.logger.Debug("projection cache hit", zap.String("key", key))
			return result, nil
		}
		s.logger.Warn("discarding unreadable cached projection", zap.String("key", key))
	}

	result, err := Project(input)
	if err != nil {
		if errors.Is(err, ErrInsufficientRevenueShare) {
			s.logger.Info("projection rejected",
				zap.Float64("denominator", Denominator(input)),
				zap.Error(err),
			)
		}
		return domain.ProjectionResult{}, err
	}

	// Cache and history are not critical to the answer.
	if payload, err := json.Marshal(result); err == nil {
		if err := s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache projection", zap.String("key", key), zap.Error(err))
		}
	}
	if err := s.repo.Save(ctx, input, result); err != nil {
		s.logger.Warn("failed to save projection", zap.Error(err))
	}

	return result, nil
}

// History returns the most recent projections, newest first.
func (s *ProjectionService) History(ctx context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}
	records, err := s.repo.Recent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("load projection history: %w", err)
	}
	return records, nil
}

func projectionCacheKey(in domain.ProjectionInput) string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	return projectionCachePrefix + strings.Join([]string{
		f(in.InvestmentAmount),
		f(in.MonthlyRevenue),
		f(in.ShareRatioPercent),
		f(in.AnnualRatePercent),
		fmt.Sprintf("%04d-%02d", in.StartYear, in.StartMonth),
	}, ":")
}
