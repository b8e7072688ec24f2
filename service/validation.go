package service

import (
	"math"
	"strconv"
	"strings"

	"revshare-calculator/domain"
)

// ValidateProjectionInput rejects input the projector must never see.
func ValidateProjectionInput(in domain.ProjectionInput) error {
	if err := positive("investmentAmount", in.InvestmentAmount, MaxInvestmentAmount); err != nil {
		return err
	}
	if err := positive("monthlyRevenue", in.MonthlyRevenue, MaxMonthlyRevenue); err != nil {
		return err
	}
	if err := positive("shareRatioPercent", in.ShareRatioPercent, MaxShareRatioPercent); err != nil {
		return err
	}
	if err := positive("annualRatePercent", in.AnnualRatePercent, MaxAnnualRatePercent); err != nil {
		return err
	}
	if in.StartMonth < 1 || in.StartMonth > 12 {
		return invalid("startMonth", "月份必须在 1 到 12 之间")
	}
	if in.StartYear < MinStartYear || in.StartYear > MaxStartYear {
		return invalid("startYear", "年份必须在 %d 到 %d 之间", MinStartYear, MaxStartYear)
	}
	if d := Denominator(in); d > 0 && in.InvestmentAmount/d > MaxDurationDays {
		return invalid("monthlyRevenue", "月分成收入过低，达到封顶需超过 %d 天", MaxDurationDays)
	}
	return nil
}

func positive(field string, v, max float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid(field, "必须是有限数值")
	}
	if v <= 0 {
		return invalid(field, "必须大于 0")
	}
	if v > max {
		return invalid(field, "不能超过 %g", max)
	}
	return nil
}

// ParseYearMonth parses a "YYYY-MM" month input.
func ParseYearMonth(s string) (domain.YearMonth, error) {
	year, month, ok := strings.Cut(strings.TrimSpace(s), "-")
	if !ok || len(year) != 4 || len(month) < 1 || len(month) > 2 {
		return domain.YearMonth{}, invalid("startMonth", "格式必须为 YYYY-MM")
	}
	y, err := strconv.Atoi(year)
	if err != nil {
		return domain.YearMonth{}, invalid("startMonth", "年份无效")
	}
	m, err := strconv.Atoi(month)
	if err != nil || m < 1 || m > 12 {
		return domain.YearMonth{}, invalid("startMonth", "月份无效")
	}
	return domain.YearMonth{Year: y, Month: m}, nil
}
