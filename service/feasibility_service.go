package service

import (
	"math"

	"go.uber.org/zap"

	"revshare-calculator/domain"
)

// DefaultFeasibilityInput returns the reference 16-room model.
func DefaultFeasibilityInput() domain.FeasibilityInput {
	return domain.FeasibilityInput{
		RoomCount:              16,
		DeviceCount:            28,
		OccupancyRatePercent:   93,
		AvgPrice:               280,
		CommissionRatePercent:  10,
		ProfitShareRatePercent: 30,
		RenovationCost:         58800,
		EquipmentCost:          356400,
		FranchiseCost:          88000,
		OtherCost:              3500,
		AnnualOperatingCost:    7000,
	}
}

type FeasibilityService struct {
	logger *zap.Logger
}

func NewFeasibilityService(logger *zap.Logger) *FeasibilityService {
	return &FeasibilityService{logger: logger}
}

// Calculate computes the brand-side economics of one esports hotel: the brand
// funds the devices and receives ProfitShareRatePercent of room revenue net of
// OTA commission.
func (s *FeasibilityService) Calculate(
	input domain.FeasibilityInput,
) (domain.FeasibilityResult, error) {
	if err := validateFeasibility(input); err != nil {
		return domain.FeasibilityResult{}, err
	}

	rooms := float64(input.RoomCount)
	occupancy := input.OccupancyRatePercent / 100
	commission := input.CommissionRatePercent / 100
	share := input.ProfitShareRatePercent / 100

	revPAR := input.AvgPrice * occupancy
	revPARAfterOTA := revPAR * (1 - commission)
	annualAfterOTA := revPARAfterOTA * rooms * FeasibilityDaysPerYear

	daily := rooms * input.AvgPrice * occupancy

	brandIncome := annualAfterOTA * share
	franchiseeIncome := annualAfterOTA * (1 - share)
	netProfit := brandIncome - input.AnnualOperatingCost
	monthlyProfit := netProfit / 12

	totalInvestment := input.RenovationCost + input.EquipmentCost + input.FranchiseCost + input.OtherCost

	if monthlyProfit <= 0 {
		s.logger.Info("feasibility has no payback",
			zap.Float64("monthly_profit", monthlyProfit),
			zap.Float64("total_investment", totalInvestment),
		)
		return domain.FeasibilityResult{}, ErrNoPayback
	}

	roi := 0.0
	if totalInvestment > 0 {
		roi = netProfit / totalInvestment * 100
	}

	return domain.FeasibilityResult{
		RevPAR:                roundTo2Decimals(revPAR),
		RevPARAfterOTA:        roundTo2Decimals(revPARAfterOTA),
		AnnualRevenueAfterOTA: roundTo2Decimals(annualAfterOTA),
		DailyRevenue:          roundTo2Decimals(daily),
		MonthlyRevenue:        roundTo2Decimals(daily * FeasibilityDaysPerMonth),
		YearlyRevenueGross:    roundTo2Decimals(daily * FeasibilityDaysPerYear),
		BrandIncome:           roundTo2Decimals(brandIncome),
		FranchiseeIncome:      roundTo2Decimals(franchiseeIncome),
		BrandNetProfit:        roundTo2Decimals(netProfit),
		MonthlyProfit:         roundTo2Decimals(monthlyProfit),
		TotalInvestment:       roundTo2Decimals(totalInvestment),
		PaybackMonths:         roundTo2Decimals(totalInvestment / monthlyProfit),
		ROIPercent:            roundTo2Decimals(roi),
	}, nil
}

func validateFeasibility(in domain.FeasibilityInput) error {
	if in.RoomCount <= 0 {
		return invalid("roomCount", "必须大于 0")
	}
	if in.DeviceCount < 0 {
		return invalid("deviceCount", "不能为负数")
	}
	if in.AvgPrice <= 0 || math.IsNaN(in.AvgPrice) || math.IsInf(in.AvgPrice, 0) {
		return invalid("avgPrice", "必须大于 0")
	}
	percents := []struct {
		field string
		value float64
	}{
		{"occupancyRate", in.OccupancyRatePercent},
		{"commissionRate", in.CommissionRatePercent},
		{"profitShareRate", in.ProfitShareRatePercent},
	}
	for _, p := range percents {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 100 {
			return invalid(p.field, "必须在 0 到 100 之间")
		}
	}
	costs := []struct {
		field string
		value float64
	}{
		{"renovationCost", in.RenovationCost},
		{"equipmentCost", in.EquipmentCost},
		{"franchiseCost", in.FranchiseCost},
		{"otherCost", in.OtherCost},
		{"annualOperatingCost", in.AnnualOperatingCost},
	}
	for _, c := range costs {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < 0 {
			return invalid(c.field, "不能为负数")
		}
	}
	return nil
}

// roundTo2Decimals rounds half away from zero to cents.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}
