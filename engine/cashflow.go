package engine

import (
	"math"

	"fxba/domain"
)

// walkPeriods calls fn for every period after CF0, in order, until fn
// returns false. t starts at 1.
func walkPeriods(l domain.CashFlowList, fn func(t int, amount float64) bool) {
	t := 0
	for _, cf := range l.Flows {
		for k := 0; k < cf.Count; k++ {
			t++
			if !fn(t, cf.Amount) {
				return
			}
		}
	}
}

// NPV discounts every period at rate (a decimal, 0.10 for 10%).
func NPV(l domain.CashFlowList, rate float64) float64 {
	npv := l.CF0
	disc := 1.0
	onePlus := 1 + rate
	walkPeriods(l, func(_ int, amount float64) bool {
		disc /= onePlus
		npv += amount * disc
		return true
	})
	return npv
}

// npvAndSlope returns NPV and dNPV/dr = Σ -t·CF·(1+r)^-(t+1) in one pass.
func npvAndSlope(l domain.CashFlowList, rate float64) (npv, slope float64) {
	npv = l.CF0
	disc := 1.0
	onePlus := 1 + rate
	walkPeriods(l, func(t int, amount float64) bool {
		disc /= onePlus
		npv += amount * disc
		slope -= float64(t) * amount * disc / onePlus
		return true
	})
	return npv, slope
}

func hasSignChange(l domain.CashFlowList) bool {
	pos, neg := l.CF0 > 0, l.CF0 < 0
	for _, cf := range l.Flows {
		if cf.Amount > 0 {
			pos = true
		}
		if cf.Amount < 0 {
			neg = true
		}
	}
	return pos && neg
}

// IRR returns the periodic internal rate of return as a decimal.
func IRR(l domain.CashFlowList) (float64, error) {
	if len(l.Flows) == 0 {
		return 0, domain.ErrInvalidInput
	}
	if !hasSignChange(l) {
		return 0, domain.ErrNoSolution
	}

	rate := InitialGuess
	for iter := 0; iter < MaxIterations; iter++ {
		f, df := npvAndSlope(l, rate)
		if math.Abs(f) < Tolerance {
			return rate, nil
		}
		if math.Abs(df) < 1e-15 {
			break
		}
		next := clampRate(rate - f/df)
		if math.Abs(next-rate) < Tolerance {
			return next, nil
		}
		rate = next
	}
	return 0, domain.ErrMultipleIRR
}

// NFV compounds every flow to the last period.
func NFV(l domain.CashFlowList, rate float64) float64 {
	n := l.TotalPeriods()
	onePlus := 1 + rate
	nfv := l.CF0 * math.Pow(onePlus, float64(n))
	walkPeriods(l, func(t int, amount float64) bool {
		nfv += amount * math.Pow(onePlus, float64(n-t))
		return true
	})
	return nfv
}

// payback finds the fractional period where the running total of
// (optionally discounted) flows turns non-negative.
func payback(l domain.CashFlowList, discount func(t int, amount float64) float64) float64 {
	cum := l.CF0
	if cum >= 0 {
		return 0
	}
	result := -1.0
	walkPeriods(l, func(t int, amount float64) bool {
		v := discount(t, amount)
		prev := cum
		cum += v
		if cum < 0 {
			return true
		}
		if v > 0 {
			result = float64(t-1) + (-prev / v)
		} else {
			result = float64(t)
		}
		return false
	})
	return result
}

// Payback returns 0 when CF0 is already non-negative and -1 when the
// outlay is never recovered.
func Payback(l domain.CashFlowList) float64 {
	return payback(l, func(_ int, amount float64) float64 { return amount })
}

// DiscountedPayback is Payback on flows discounted at rate.
func DiscountedPayback(l domain.CashFlowList, rate float64) float64 {
	disc := 1.0
	onePlus := 1 + rate
	return payback(l, func(_ int, amount float64) float64 {
		disc /= onePlus
		return amount * disc
	})
}

// MIRR discounts outflows at financeRate and compounds inflows to the end
// at reinvestRate. Both rates are decimals.
func MIRR(l domain.CashFlowList, financeRate, reinvestRate float64) (float64, error) {
	n := l.TotalPeriods()
	if n == 0 {
		return 0, domain.ErrInvalidInput
	}

	var pvNeg, fvPos float64
	if l.CF0 < 0 {
		pvNeg -= l.CF0
	} else {
		fvPos += l.CF0 * math.Pow(1+reinvestRate, float64(n))
	}
	walkPeriods(l, func(t int, amount float64) bool {
		if amount < 0 {
			pvNeg += -amount / math.Pow(1+financeRate, float64(t))
		} else {
			fvPos += amount * math.Pow(1+reinvestRate, float64(n-t))
		}
		return true
	})

	if pvNeg == 0 {
		return 0, domain.ErrNoSolution
	}
	return math.Pow(fvPos/pvNeg, 1/float64(n)) - 1, nil
}
