package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"revshare-calculator/domain"
	"revshare-calculator/repository"
)

type MockProjectionRepository struct {
	SaveCalls  int
	ForceError bool
	saved      []domain.ProjectionRecord
}

func (m *MockProjectionRepository) Save(
	_ context.Context,
	input domain.ProjectionInput,
	result domain.ProjectionResult,
) error {
	m.SaveCalls++
	if m.ForceError {
		return errors.New("save error")
	}
	m.saved = append(m.saved, domain.ProjectionRecord{Input: input, Result: result})
	return nil
}

func (m *MockProjectionRepository) Recent(_ context.Context, limit int) ([]domain.ProjectionRecord, error) {
	if m.ForceError {
		return nil, errors.New("recent error")
	}
	if limit > len(m.saved) {
		limit = len(m.saved)
	}
	return m.saved[:limit], nil
}

func newProjectionService(repo repository.ProjectionRepository) (*ProjectionService, *repository.MemoryCache) {
	cache := repository.NewMemoryCache()
	return NewProjectionService(repo, cache, zap.NewNop()), cache
}

func TestProjectionService_Project(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service, cache := newProjectionService(mockRepo)

	result, err := service.Project(context.Background(), baseInput())
	require.NoError(t, err)

	assert.Equal(t, 1715, result.DurationDays)
	assert.Equal(t, 1, mockRepo.SaveCalls)
	assert.Equal(t, 1, cache.Len())
}

func TestProjectionService_CacheHitSkipsHistory(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service, _ := newProjectionService(mockRepo)
	ctx := context.Background()

	first, err := service.Project(ctx, baseInput())
	require.NoError(t, err)
	second, err := service.Project(ctx, baseInput())
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestProjectionService_SaveFailureIsNotFatal(t *testing.T) {
	mockRepo := &MockProjectionRepository{ForceError: true}
	service, _ := newProjectionService(mockRepo)

	_, err := service.Project(context.Background(), baseInput())
	assert.NoError(t, err)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestProjectionService_InvalidInput(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service, cache := newProjectionService(mockRepo)

	in := baseInput()
	in.InvestmentAmount = 0

	_, err := service.Project(context.Background(), in)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "investmentAmount", verr.Field)
	assert.Zero(t, mockRepo.SaveCalls)
	assert.Zero(t, cache.Len())
}

func TestProjectionService_InsufficientRevenueShareIsNotCached(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service, cache := newProjectionService(mockRepo)

	in := baseInput()
	in.MonthlyRevenue = 10
	in.AnnualRatePercent = 36

	_, err := service.Project(context.Background(), in)
	assert.ErrorIs(t, err, ErrInsufficientRevenueShare)
	assert.Zero(t, mockRepo.SaveCalls)
	assert.Zero(t, cache.Len())
}

func TestProjectionService_RejectsUnboundedDuration(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service, cache := newProjectionService(mockRepo)

	in := baseInput()
	in.AnnualRatePercent = 35.99999999999

	_, err := service.Project(context.Background(), in)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Zero(t, mockRepo.SaveCalls)
	assert.Zero(t, cache.Len())
}

func TestProjectionService_UnreadableCacheEntryIsRecomputed(t *testing.T) {
	mockRepo := &MockProjectionRepository{}
	service, cache := newProjectionService(mockRepo)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, projectionCacheKey(baseInput()), "{not json", 0))

	result, err := service.Project(ctx, baseInput())
	require.NoError(t, err)
	assert.Equal(t, 1715, result.DurationDays)
	assert.Equal(t, 1, mockRepo.SaveCalls)
}

func TestProjectionService_History(t *testing.T) {
	service, _ := newProjectionService(repository.NewProjectionRepositoryMemory())
	ctx := context.Background()

	for _, month := range []int{1, 2, 3} {
		in := baseInput()
		in.StartMonth = month
		_, err := service.Project(ctx, in)
		require.NoError(t, err)
	}

	history, err := service.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, history, 3)
	assert.Equal(t, 3, history[0].Input.StartMonth)

	history, err = service.History(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestProjectionCacheKey(t *testing.T) {
	assert.Equal(t, "projection:v1:100:30:10:15:2025-01", projectionCacheKey(baseInput()))
}
