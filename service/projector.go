package service

import (
	"math"
	"time"

	"revshare-calculator/domain"
)

// Denominator is the daily margin between the revenue-share payment and the
// investor's required daily return:
//
//	M×R/3000 − I×A/36000
//
// The projection only exists when it is positive.
func Denominator(in domain.ProjectionInput) float64 {
	return in.MonthlyRevenue*in.ShareRatioPercent/3000 -
		in.InvestmentAmount*in.AnnualRatePercent/36000
}

// Project computes when cumulative revenue-share payments reach principal plus
// the simple annual return (360-day year). It does not validate its input; use
// ValidateProjectionInput first. It is a pure function.
func Project(in domain.ProjectionInput) (domain.ProjectionResult, error) {
	denominator := Denominator(in)
	if denominator <= 0 {
		return domain.ProjectionResult{}, ErrInsufficientRevenueShare
	}

	exact := in.InvestmentAmount / denominator
	capped := in.InvestmentAmount * (1 + (in.AnnualRatePercent/100/DaysPerYear)*exact)
	days := int(math.Ceil(exact))

	return domain.ProjectionResult{
		DurationDays:        days,
		DurationDaysExact:   exact,
		CappedAmount:        capped,
		MonthlyShareAmount:  in.MonthlyRevenue * (in.ShareRatioPercent / 100),
		CapReachedYearMonth: CapReachedMonth(in.StartYear, in.StartMonth, days),
	}, nil
}

// CapReachedMonth adds days calendar days to the first day of the start month
// and returns the resulting year and month.
func CapReachedMonth(startYear, startMonth, days int) domain.YearMonth {
	end := time.Date(startYear, time.Month(startMonth), 1+days, 0, 0, 0, 0, time.UTC)
	return domain.YearMonth{Year: end.Year(), Month: int(end.Month())}
}
