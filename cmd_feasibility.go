package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"revshare-calculator/service"
)

var feasibilityInput = service.DefaultFeasibilityInput()

var feasibilityCmd = &cobra.Command{
	Use:   "feasibility",
	Short: "Evaluate esports hotel economics from the brand side",
	Args:  cobra.NoArgs,
	RunE:  runFeasibility,
}

func init() {
	f := feasibilityCmd.Flags()
	in := &feasibilityInput
	f.IntVar(&in.RoomCount, "rooms", in.RoomCount, "Room count")
	f.IntVar(&in.DeviceCount, "devices", in.DeviceCount, "Device count")
	f.Float64Var(&in.OccupancyRatePercent, "occupancy", in.OccupancyRatePercent, "Occupancy rate in percent")
	f.Float64Var(&in.AvgPrice, "price", in.AvgPrice, "Average room price (yuan)")
	f.Float64Var(&in.CommissionRatePercent, "commission", in.CommissionRatePercent, "OTA commission in percent")
	f.Float64Var(&in.ProfitShareRatePercent, "profit-share", in.ProfitShareRatePercent, "Brand revenue share in percent")
	f.Float64Var(&in.RenovationCost, "renovation", in.RenovationCost, "Renovation cost (yuan)")
	f.Float64Var(&in.EquipmentCost, "equipment", in.EquipmentCost, "Equipment cost (yuan)")
	f.Float64Var(&in.FranchiseCost, "franchise", in.FranchiseCost, "Franchise cost (yuan)")
	f.Float64Var(&in.OtherCost, "other", in.OtherCost, "Other cost (yuan)")
	f.Float64Var(&in.AnnualOperatingCost, "operating", in.AnnualOperatingCost, "Annual operating cost (yuan)")
}

func runFeasibility(cmd *cobra.Command, args []string) error {
	result, err := service.NewFeasibilityService(logger).Calculate(feasibilityInput)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "日营收：%s\n", service.FormatCurrency(result.DailyRevenue))
	fmt.Fprintf(out, "月营收：%s\n", service.FormatCurrency(result.MonthlyRevenue))
	fmt.Fprintf(out, "年营收：%s\n", service.FormatWan(service.YuanToWan(result.YearlyRevenueGross)))
	fmt.Fprintf(out, "品牌方分成：%s\n", service.FormatWan(service.YuanToWan(result.BrandIncome)))
	fmt.Fprintf(out, "加盟商收入：%s\n", service.FormatWan(service.YuanToWan(result.FranchiseeIncome)))
	fmt.Fprintf(out, "年净利润：%s\n", service.FormatWan(service.YuanToWan(result.BrandNetProfit)))
	fmt.Fprintf(out, "总投资：%s\n", service.FormatWan(service.YuanToWan(result.TotalInvestment)))
	fmt.Fprintf(out, "回本周期：%s 个月\n", service.FormatNumber(result.PaybackMonths, 2))
	fmt.Fprintf(out, "投资回报率：%s%%\n", service.FormatNumber(result.ROIPercent, 2))
	return nil
}
