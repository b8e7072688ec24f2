package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revshare-calculator/domain"
)

func TestProjectionRepositories_RecentNewestFirst(t *testing.T) {
	db, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "projections.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repos := map[string]ProjectionRepository{
		"memory": NewProjectionRepositoryMemory(),
		"sqlite": NewSQLiteProjectionRepository(db),
	}

	for name, repo := range repos {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			for i := 1; i <= 3; i++ {
				input := domain.ProjectionInput{
					InvestmentAmount:  float64(100 * i),
					MonthlyRevenue:    30,
					ShareRatioPercent: 10,
					AnnualRatePercent: 15,
					StartYear:         2025,
					StartMonth:        1,
				}
				result := domain.ProjectionResult{
					DurationDays:        1715,
					CappedAmount:        171.43,
					CapReachedYearMonth: domain.YearMonth{Year: 2029, Month: 9},
				}
				require.NoError(t, repo.Save(ctx, input, result))
			}

			recent, err := repo.Recent(ctx, 2)
			require.NoError(t, err)
			require.Len(t, recent, 2)
			assert.Equal(t, 300.0, recent[0].Input.InvestmentAmount)
			assert.Equal(t, 200.0, recent[1].Input.InvestmentAmount)
			assert.Equal(t, domain.YearMonth{Year: 2029, Month: 9}, recent[0].Result.CapReachedYearMonth)
			assert.NotEmpty(t, recent[0].ID)

			all, err := repo.Recent(ctx, 0)
			require.NoError(t, err)
			assert.Len(t, all, 3)
		})
	}
}
