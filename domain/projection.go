package domain

import "fmt"

// ProjectionInput holds the already validated figures of one investment.
// Amounts are in the caller's unit (usually 万元),
// percentages are whole numbers: 10 means 10%.
type ProjectionInput struct {
	InvestmentAmount  float64 `json:"investmentAmount"`
	MonthlyRevenue    float64 `json:"monthlyRevenue"`
	ShareRatioPercent float64 `json:"shareRatioPercent"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	StartYear         int     `json:"startYear"`
	StartMonth        int     `json:"startMonth"`
}

type YearMonth struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (ym YearMonth) String() string {
	return fmt.Sprintf("%04d-%02d", ym.Year, ym.Month)
}

// Before reports whether ym is strictly earlier than other.
func (ym YearMonth) Before(other YearMonth) bool {
	if ym.Year != other.Year {
		return ym.Year < other.Year
	}
	return ym.Month < other.Month
}

type ProjectionResult struct {
	DurationDays        int       `json:"durationDays"`
	DurationDaysExact   float64   `json:"durationDaysExact"`
	CappedAmount        float64   `json:"cappedAmount"`
	MonthlyShareAmount  float64   `json:"monthlyShareAmount"`
	CapReachedYearMonth YearMonth `json:"capReachedYearMonth"`
}
