package domain

// TVMRequest solves one register from the other four.
type TVMRequest struct {
	TVM
	Solve TVMUnknown `json:"solve"`
}

type TVMResult struct {
	Solved    TVMUnknown `json:"solved"`
	Value     float64    `json:"value"`
	Registers TVM        `json:"registers"`
}

// AmortizationRequest lists payments P1 through P2. A zero PMT is solved
// from the other registers first.
type AmortizationRequest struct {
	TVM
	P1 int `json:"p1"`
	P2 int `json:"p2"`
}

type AmortizationResult struct {
	Payment float64              `json:"payment"`
	Periods []AmortizationPeriod `json:"periods"`
	Total   AmortizationRange    `json:"total"`
}

// CashFlowRequest rates are percentages. ReinvestRate only affects MIRR
// and defaults to Rate.
type CashFlowRequest struct {
	CashFlowList
	Rate         float64 `json:"rate"`
	ReinvestRate float64 `json:"reinvest_rate"`
}

// CashFlowResult leaves IRR and MIRR nil when they do not exist and puts
// the reason in Notes.
type CashFlowResult struct {
	NPV               float64  `json:"npv"`
	NFV               float64  `json:"nfv"`
	IRR               *float64 `json:"irr,omitempty"`
	MIRR              *float64 `json:"mirr,omitempty"`
	Payback           float64  `json:"payback"`
	DiscountedPayback float64  `json:"discounted_payback"`
	Notes             []string `json:"notes,omitempty"`
}

// BondRequest solves the yield when Price is positive, otherwise it prices
// the bond at Yield.
type BondRequest struct {
	BondInput
	Price float64 `json:"price"`
	Yield float64 `json:"yield"`
}

type DepreciationRequest struct {
	DepreciationInput
	Method string `json:"method"`
	Years  int    `json:"years"`
}

type DepreciationScheduleResult struct {
	Method   string               `json:"method"`
	Schedule []DepreciationResult `json:"schedule"`
}

type StatisticsRequest struct {
	Points     []Point `json:"points"`
	Regression string  `json:"regression"`
}

type StatisticsResult struct {
	OneVar     OneVarStats  `json:"one_var"`
	TwoVar     *TwoVarStats `json:"two_var,omitempty"`
	Regression *Regression  `json:"regression,omitempty"`
}

// DaysRequest dates are YYYYMMDD.
type DaysRequest struct {
	Start    int      `json:"start"`
	End      int      `json:"end"`
	DayCount DayCount `json:"day_count"`
}

type DaysResult struct {
	Days         int     `json:"days"`
	YearFraction float64 `json:"year_fraction"`
	StartDay     string  `json:"start_day"`
	EndDay       string  `json:"end_day"`
}
