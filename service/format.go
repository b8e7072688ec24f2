package service

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"revshare-calculator/domain"
)

var printer = message.NewPrinter(language.Chinese)

// FormatCurrency renders a yuan amount as ¥1,234,567.89.
func FormatCurrency(v float64) string {
	return printer.Sprintf("¥%.2f", v)
}

// FormatNumber renders v with thousands separators and the given decimals.
func FormatNumber(v float64, decimals int) string {
	return printer.Sprintf(fmt.Sprintf("%%.%df", decimals), v)
}

// FormatWan renders an amount already expressed in 万元.
func FormatWan(v float64) string {
	return printer.Sprintf("%.2f万元", v)
}

func YuanToWan(v float64) float64 {
	return v / 10000
}

func FormatYearMonth(ym domain.YearMonth) string {
	return fmt.Sprintf("%d年%02d月", ym.Year, ym.Month)
}

// DescribeProjection summarizes a projection in one line.
func DescribeProjection(in domain.ProjectionInput, result domain.ProjectionResult) string {
	return fmt.Sprintf(
		"投资 %s，月分成 %s，预计联营 %d 天（约 %.1f 月），封顶金额 %s，预计 %s 封顶",
		FormatWan(in.InvestmentAmount),
		FormatWan(result.MonthlyShareAmount),
		result.DurationDays,
		float64(result.DurationDays)/DaysPerMonth,
		FormatWan(result.CappedAmount),
		FormatYearMonth(result.CapReachedYearMonth),
	)
}
