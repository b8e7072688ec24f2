package service

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"revshare-calculator/domain"
)

func baseInput() domain.ProjectionInput {
	return domain.ProjectionInput{
		InvestmentAmount:  100,
		MonthlyRevenue:    30,
		ShareRatioPercent: 10,
		AnnualRatePercent: 15,
		StartYear:         2025,
		StartMonth:        1,
	}
}

// revenueShareTotal is what the counterparty has paid after days days.
func revenueShareTotal(in domain.ProjectionInput, days float64) float64 {
	return in.MonthlyRevenue / DaysPerMonth * days * in.ShareRatioPercent / 100
}

func TestProject_ReferenceScenario(t *testing.T) {
	in := baseInput()

	assert.InDelta(t, 0.058333333, Denominator(in), 1e-9)

	result, err := Project(in)
	require.NoError(t, err)

	assert.InDelta(t, 1714.2857142857, result.DurationDaysExact, 1e-6)
	assert.Equal(t, 1715, result.DurationDays)
	assert.InDelta(t, 171.43, result.CappedAmount, 0.005)
	assert.InDelta(t, 3.0, result.MonthlyShareAmount, 1e-12)
	assert.Equal(t, domain.YearMonth{Year: 2029, Month: 9}, result.CapReachedYearMonth)
}

func TestProject_CappedAmountEqualsRevenueShare(t *testing.T) {
	inputs := []domain.ProjectionInput{
		baseInput(),
		{InvestmentAmount: 290, MonthlyRevenue: 120, ShareRatioPercent: 30, AnnualRatePercent: 8, StartYear: 2024, StartMonth: 7},
		{InvestmentAmount: 1, MonthlyRevenue: 1_000_000, ShareRatioPercent: 100, AnnualRatePercent: 1, StartYear: 2025, StartMonth: 3},
		{InvestmentAmount: 2_650_000, MonthlyRevenue: 400_000, ShareRatioPercent: 12.5, AnnualRatePercent: 6.5, StartYear: 2025, StartMonth: 12},
		{InvestmentAmount: 50, MonthlyRevenue: 5.5, ShareRatioPercent: 35, AnnualRatePercent: 20, StartYear: 2023, StartMonth: 2},
	}

	for _, in := range inputs {
		result, err := Project(in)
		require.NoError(t, err)

		want := revenueShareTotal(in, result.DurationDaysExact)
		assert.InEpsilon(t, want, result.CappedAmount, 1e-9)
		assert.InEpsilon(t, in.InvestmentAmount/Denominator(in), result.DurationDaysExact, 1e-12)

		assert.GreaterOrEqual(t, result.DurationDays, 1)
		assert.Equal(t, int(math.Ceil(result.DurationDaysExact)), result.DurationDays)
		assert.Greater(t, result.CappedAmount, in.InvestmentAmount)

		start := domain.YearMonth{Year: in.StartYear, Month: in.StartMonth}
		assert.False(t, result.CapReachedYearMonth.Before(start))
		assert.GreaterOrEqual(t, result.CapReachedYearMonth.Month, 1)
		assert.LessOrEqual(t, result.CapReachedYearMonth.Month, 12)
	}
}

func TestProject_CappedAmountUsesExactDuration(t *testing.T) {
	in := baseInput()
	result, err := Project(in)
	require.NoError(t, err)

	roundedBasis := in.InvestmentAmount * (1 + in.AnnualRatePercent/100/DaysPerYear*float64(result.DurationDays))
	assert.NotEqual(t, roundedBasis, result.CappedAmount)
	assert.Less(t, result.CappedAmount, roundedBasis)
}

func TestProject_InsufficientRevenueShare(t *testing.T) {
	in := baseInput()
	in.MonthlyRevenue = 10
	in.AnnualRatePercent = 36

	assert.Less(t, Denominator(in), 0.0)

	result, err := Project(in)
	assert.ErrorIs(t, err, ErrInsufficientRevenueShare)
	assert.Equal(t, domain.ProjectionResult{}, result)
}

func TestProject_ZeroMarginIsInsufficient(t *testing.T) {
	// 10×10/3000 == 120×10/36000
	in := domain.ProjectionInput{
		InvestmentAmount:  120,
		MonthlyRevenue:    10,
		ShareRatioPercent: 10,
		AnnualRatePercent: 10,
		StartYear:         2025,
		StartMonth:        1,
	}
	_, err := Project(in)
	assert.ErrorIs(t, err, ErrInsufficientRevenueShare)
}

func TestProject_ShortDurationRoundsUpToOneDay(t *testing.T) {
	in := domain.ProjectionInput{
		InvestmentAmount:  1,
		MonthlyRevenue:    1_000_000,
		ShareRatioPercent: 100,
		AnnualRatePercent: 1,
		StartYear:         2025,
		StartMonth:        6,
	}
	result, err := Project(in)
	require.NoError(t, err)

	assert.Less(t, result.DurationDaysExact, 1.0)
	assert.Equal(t, 1, result.DurationDays)
	assert.Equal(t, domain.YearMonth{Year: 2025, Month: 6}, result.CapReachedYearMonth)
}

func TestProject_Idempotent(t *testing.T) {
	in := baseInput()
	first, err := Project(in)
	require.NoError(t, err)
	second, err := Project(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, math.Float64bits(first.CappedAmount), math.Float64bits(second.CappedAmount))
	assert.Equal(t, math.Float64bits(first.DurationDaysExact), math.Float64bits(second.DurationDaysExact))
}

func TestProject_MonthBasedVariantAgreesWithinRounding(t *testing.T) {
	// The month-based formula T = I / (M×R/100 − I×A/1200), days = T×30,
	// is algebraically the same projection.
	in := baseInput()
	result, err := Project(in)
	require.NoError(t, err)

	months := in.InvestmentAmount / (in.MonthlyRevenue*in.ShareRatioPercent/100 - in.InvestmentAmount*in.AnnualRatePercent/1200)
	assert.InEpsilon(t, result.DurationDaysExact, months*DaysPerMonth, 1e-12)
}

func TestCapReachedMonth(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		days      int
		wantYear  int
		wantMonth int
	}{
		{"reference 1715 days", 2025, 1, 1715, 2029, 9},
		{"december rolls into next year", 2024, 12, 31, 2025, 1},
		{"december stays within month", 2024, 12, 30, 2024, 12},
		{"leap february keeps 29th", 2024, 2, 28, 2024, 2},
		{"leap february ends after 29 days", 2024, 2, 29, 2024, 3},
		{"common february ends after 28 days", 2023, 2, 28, 2023, 3},
		{"one leap year of days", 2024, 1, 366, 2025, 1},
		{"one common year minus a day", 2025, 1, 364, 2025, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CapReachedMonth(tt.year, tt.month, tt.days)
			assert.Equal(t, domain.YearMonth{Year: tt.wantYear, Month: tt.wantMonth}, got)
		})
	}
}
