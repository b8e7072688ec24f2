package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"revshare-calculator/domain"
	"revshare-calculator/service"
)

var projectFlags struct {
	investment float64
	revenue    float64
	share      float64
	rate       float64
	start      string
}

var projectCmd = &cobra.Command{
	Use:     "project",
	Short:   "Project when revenue-share payouts reach the capped amount",
	Example: `  revshare project --investment 100 --revenue 30 --share 10 --rate 15 --start 2025-01`,
	Args:    cobra.NoArgs,
	RunE:    runProject,
}

func init() {
	f := projectCmd.Flags()
	f.Float64Var(&projectFlags.investment, "investment", 0, "Investment amount (万元)")
	f.Float64Var(&projectFlags.revenue, "revenue", 0, "Counterparty monthly revenue (万元)")
	f.Float64Var(&projectFlags.share, "share", 0, "Revenue-share ratio in percent")
	f.Float64Var(&projectFlags.rate, "rate", 0, "Annual target rate in percent (360-day year)")
	f.StringVar(&projectFlags.start, "start", "", "Start month, YYYY-MM")
	for _, name := range []string{"investment", "revenue", "share", "rate", "start"} {
		_ = projectCmd.MarkFlagRequired(name)
	}
}

func runProject(cmd *cobra.Command, args []string) error {
	start, err := service.ParseYearMonth(projectFlags.start)
	if err != nil {
		return err
	}
	input := domain.ProjectionInput{
		InvestmentAmount:  projectFlags.investment,
		MonthlyRevenue:    projectFlags.revenue,
		ShareRatioPercent: projectFlags.share,
		AnnualRatePercent: projectFlags.rate,
		StartYear:         start.Year,
		StartMonth:        start.Month,
	}
	if err := service.ValidateProjectionInput(input); err != nil {
		return err
	}

	result, err := service.Project(input)
	if errors.Is(err, service.ErrInsufficientRevenueShare) {
		return fmt.Errorf("无法计算：%w (分母 %.6f)", err, service.Denominator(input))
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "预计月分成金额：%s\n", service.FormatWan(result.MonthlyShareAmount))
	fmt.Fprintf(out, "封顶金额：%s\n", service.FormatWan(result.CappedAmount))
	fmt.Fprintf(out, "预计联营期限：%d 天（约 %.1f 月）\n", result.DurationDays, result.DurationDaysExact/service.DaysPerMonth)
	fmt.Fprintf(out, "预计封顶时间：%s\n", service.FormatYearMonth(result.CapReachedYearMonth))
	return nil
}
