package engine

import (
	"math"

	"fxba/domain"
)

func contribution(b domain.Breakeven) float64 {
	return b.Price - b.VariableCost
}

// BreakevenQuantity is the quantity that earns b.Profit; with a zero
// profit target it is the breakeven point.
func BreakevenQuantity(b domain.Breakeven) (float64, error) {
	c := contribution(b)
	if c <= 0 {
		return 0, domain.ErrNoSolution
	}
	return (b.FixedCost + b.Profit) / c, nil
}

// BreakevenProfit is Q·(P-VC) - FC.
func BreakevenProfit(b domain.Breakeven) float64 {
	return b.Quantity*contribution(b) - b.FixedCost
}

// BreakevenPrice is the unit price that earns b.Profit at b.Quantity.
func BreakevenPrice(b domain.Breakeven) (float64, error) {
	if b.Quantity == 0 {
		return 0, domain.ErrInvalidInput
	}
	return (b.FixedCost+b.Profit)/b.Quantity + b.VariableCost, nil
}

// BreakevenVariableCost is the unit cost that earns b.Profit at b.Quantity.
func BreakevenVariableCost(b domain.Breakeven) (float64, error) {
	if b.Quantity == 0 {
		return 0, domain.ErrInvalidInput
	}
	return b.Price - (b.FixedCost+b.Profit)/b.Quantity, nil
}

// BreakevenFixedCost is the fixed cost that leaves b.Profit at b.Quantity.
func BreakevenFixedCost(b domain.Breakeven) float64 {
	return b.Quantity*contribution(b) - b.Profit
}

// AnalyzeBreakeven reports the breakeven point and the figures at the
// worksheet's quantity.
func AnalyzeBreakeven(b domain.Breakeven) (domain.BreakevenResult, error) {
	c := contribution(b)
	if c <= 0 {
		return domain.BreakevenResult{}, domain.ErrNoSolution
	}
	q := b.FixedCost / c
	return domain.BreakevenResult{
		Quantity:          q,
		Revenue:           q * b.Price,
		Profit:            BreakevenProfit(b),
		QuantityForProfit: (b.FixedCost + b.Profit) / c,
	}, nil
}

// Margin is (selling - cost)/selling in percent.
func Margin(p domain.ProfitMargin) (float64, error) {
	if p.Selling == 0 {
		return 0, domain.ErrInvalidInput
	}
	return (p.Selling - p.Cost) / p.Selling * 100, nil
}

// Markup is (selling - cost)/cost in percent.
func Markup(p domain.ProfitMargin) (float64, error) {
	if p.Cost == 0 {
		return 0, domain.ErrInvalidInput
	}
	return (p.Selling - p.Cost) / p.Cost * 100, nil
}

func SellingFromMargin(p domain.ProfitMargin) (float64, error) {
	if p.Margin >= 100 {
		return 0, domain.ErrInvalidInput
	}
	return p.Cost / (1 - p.Margin/100), nil
}

func SellingFromMarkup(p domain.ProfitMargin) float64 {
	return p.Cost * (1 + p.Markup/100)
}

func CostFromMargin(p domain.ProfitMargin) float64 {
	return p.Selling * (1 - p.Margin/100)
}

func CostFromMarkup(p domain.ProfitMargin) (float64, error) {
	if p.Markup <= -100 {
		return 0, domain.ErrInvalidInput
	}
	return p.Selling / (1 + p.Markup/100), nil
}

// PercentChange is the change from one value to another in percent. A
// change away from zero is infinite.
func PercentChange(from, to float64) float64 {
	if from == 0 {
		switch {
		case to == 0:
			return 0
		case to > 0:
			return math.Inf(1)
		default:
			return math.Inf(-1)
		}
	}
	return (to - from) / from * 100
}

// PercentDifference is |a-b| relative to their average, in percent.
func PercentDifference(a, b float64) float64 {
	avg := (a + b) / 2
	if avg == 0 {
		return 0
	}
	return math.Abs(a-b) / avg * 100
}

func PercentOfTotal(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}

func ValueFromPercent(total, percent float64) float64 {
	return total * percent / 100
}

func AddPercent(value, percent float64) float64 {
	return value * (1 + percent/100)
}

func SubtractPercent(value, percent float64) float64 {
	return value * (1 - percent/100)
}
