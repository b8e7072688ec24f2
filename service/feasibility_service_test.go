package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"revshare-calculator/domain"
)

func TestFeasibility_DefaultModel(t *testing.T) {
	service := NewFeasibilityService(zap.NewNop())

	result, err := service.Calculate(DefaultFeasibilityInput())
	require.NoError(t, err)

	assert.InDelta(t, 260.4, result.RevPAR, 0.001)
	assert.InDelta(t, 234.36, result.RevPARAfterOTA, 0.001)
	assert.InDelta(t, 1368662.4, result.AnnualRevenueAfterOTA, 0.01)
	assert.InDelta(t, 4166.4, result.DailyRevenue, 0.001)
	assert.InDelta(t, 124992, result.MonthlyRevenue, 0.01)
	assert.InDelta(t, 1520736, result.YearlyRevenueGross, 0.01)
	assert.InDelta(t, 410598.72, result.BrandIncome, 0.01)
	assert.InDelta(t, 958063.68, result.FranchiseeIncome, 0.01)
	assert.InDelta(t, 403598.72, result.BrandNetProfit, 0.01)
	assert.InDelta(t, 33633.23, result.MonthlyProfit, 0.01)
	assert.InDelta(t, 506700, result.TotalInvestment, 0.001)
	assert.InDelta(t, 15.07, result.PaybackMonths, 0.001)
	assert.InDelta(t, 79.65, result.ROIPercent, 0.001)
}

func TestFeasibility_NoPayback(t *testing.T) {
	service := NewFeasibilityService(zap.NewNop())

	input := DefaultFeasibilityInput()
	input.AnnualOperatingCost = 1_000_000

	_, err := service.Calculate(input)
	assert.ErrorIs(t, err, ErrNoPayback)
}

func TestFeasibility_Validation(t *testing.T) {
	service := NewFeasibilityService(zap.NewNop())

	cases := []struct {
		field  string
		mutate func(in *domain.FeasibilityInput)
	}{
		{"roomCount", func(in *domain.FeasibilityInput) { in.RoomCount = 0 }},
		{"avgPrice", func(in *domain.FeasibilityInput) { in.AvgPrice = 0 }},
		{"occupancyRate", func(in *domain.FeasibilityInput) { in.OccupancyRatePercent = 101 }},
		{"profitShareRate", func(in *domain.FeasibilityInput) { in.ProfitShareRatePercent = -1 }},
		{"equipmentCost", func(in *domain.FeasibilityInput) { in.EquipmentCost = -5 }},
	}

	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			input := DefaultFeasibilityInput()
			tc.mutate(&input)

			_, err := service.Calculate(input)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}
