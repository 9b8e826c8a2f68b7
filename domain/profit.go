package domain

// Breakeven is the breakeven worksheet: fixed cost, variable cost per
// unit, unit price, profit and quantity.
type Breakeven struct {
	FixedCost    float64 `json:"fixed_cost"`
	VariableCost float64 `json:"variable_cost"`
	Price        float64 `json:"price"`
	Profit       float64 `json:"profit"`
	Quantity     float64 `json:"quantity"`
}

type BreakevenResult struct {
	Quantity          float64 `json:"quantity"`
	Revenue           float64 `json:"revenue"`
	Profit            float64 `json:"profit"`
	QuantityForProfit float64 `json:"quantity_for_profit"`
}

// ProfitMargin is the profit worksheet. Margin and Markup are percentages.
type ProfitMargin struct {
	Cost    float64 `json:"cost"`
	Selling float64 `json:"selling"`
	Margin  float64 `json:"margin"`
	Markup  float64 `json:"markup"`
}

// DateCalc is the date worksheet. Dates are MM.DDYYYY values as keyed in.
type DateCalc struct {
	DT1    float64 `json:"dt1"`
	DT2    float64 `json:"dt2"`
	DBD    float64 `json:"dbd"`
	Use360 bool    `json:"use_360"`
}

// NewDateCalc starts on the first and last day of 2024.
func NewDateCalc() DateCalc {
	return DateCalc{DT1: 1.012024, DT2: 12.312024}
}
