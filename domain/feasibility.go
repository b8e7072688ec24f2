package domain

// FeasibilityInput describes one esports hotel from the brand side:
// the brand funds the devices and takes a share of room revenue.
type FeasibilityInput struct {
	RoomCount              int     `json:"roomCount"`
	DeviceCount            int     `json:"deviceCount"`
	OccupancyRatePercent   float64 `json:"occupancyRate"`
	AvgPrice               float64 `json:"avgPrice"`
	CommissionRatePercent  float64 `json:"commissionRate"`
	ProfitShareRatePercent float64 `json:"profitShareRate"`
	RenovationCost         float64 `json:"renovationCost"`
	EquipmentCost          float64 `json:"equipmentCost"`
	FranchiseCost          float64 `json:"franchiseCost"`
	OtherCost              float64 `json:"otherCost"`
	AnnualOperatingCost    float64 `json:"annualOperatingCost"`
}

type FeasibilityResult struct {
	RevPAR                float64 `json:"revPAR"`
	RevPARAfterOTA        float64 `json:"revPARAfterOTA"`
	AnnualRevenueAfterOTA float64 `json:"annualRevenueAfterOTA"`
	DailyRevenue          float64 `json:"dailyRevenue"`
	MonthlyRevenue        float64 `json:"monthlyRevenue"`
	YearlyRevenueGross    float64 `json:"yearlyRevenueGross"`
	BrandIncome           float64 `json:"brandIncome"`
	FranchiseeIncome      float64 `json:"franchiseeIncome"`
	BrandNetProfit        float64 `json:"brandNetProfit"`
	MonthlyProfit         float64 `json:"monthlyProfit"`
	TotalInvestment       float64 `json:"totalInvestment"`
	PaybackMonths         float64 `json:"paybackMonths"`
	ROIPercent            float64 `json:"roi"`
}
