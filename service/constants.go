package service

import "time"

const (
	MaxInvestmentAmount  = 1_000_000_000.0 // same unit as the form input
	MaxMonthlyRevenue    = 1_000_000_000.0
	MaxAnnualRatePercent = 1000.0
	MaxShareRatioPercent = 100.0
	MinStartYear         = 1900
	MaxStartYear         = 9999

	// A payback longer than a century is reported as a validation failure
	// rather than projected.
	MaxDurationDays = 36_500

	// 360-day year, 30-day month convention of the revenue-share contracts.
	DaysPerYear  = 360
	DaysPerMonth = 30

	DefaultCacheTTL       = 24 * time.Hour
	DefaultHistoryLimit   = 20
	MaxHistoryLimit       = 500
	projectionCachePrefix = "projection:v1:"

	// Feasibility model calendar: annual figures use a 365-day year.
	FeasibilityDaysPerYear  = 365
	FeasibilityDaysPerMonth = 30

	MaxRecordsPerImport = 10_000
	recordDateLayout    = "2006-01-02"
	unknownRBOName      = "未知项目"
	unknownRBOOrder     = 999
)
