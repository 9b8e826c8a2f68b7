package service

const (
	MaxAmount        = 1_000_000_000_000.0 // 1 trillion
	MaxRatePercent   = 1000.0              // 1000% per year
	MinRatePercent   = -99.0
	MaxPeriods       = 9999
	MaxPaymentsPerYr = 365

	// at most 50 years of monthly payments per schedule request
	MaxSchedulePeriods   = 600
	MaxDepreciationYears = 100

	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 500

	moneyPlaces = 2
	ratePlaces  = 6
)
