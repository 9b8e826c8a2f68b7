package engine

import (
	"math"

	"fxba/domain"
)

const bondDerivativeStep = 1e-6

func validFrequency(freq int) bool {
	switch freq {
	case 1, 2, 4, 12:
		return true
	}
	return false
}

// ValidateBond checks dates, their order and the coupon frequency.
func ValidateBond(in domain.BondInput) error {
	if !ValidYYYYMMDD(in.Settlement) || !ValidYYYYMMDD(in.Maturity) {
		return domain.ErrInvalidInput
	}
	if in.Maturity <= in.Settlement {
		return domain.ErrInvalidInput
	}
	if !validFrequency(in.Frequency) {
		return domain.ErrInvalidInput
	}
	return nil
}

// CouponPeriods is the number of coupon periods left at settlement. The
// fractional part is the share of the current period still to run.
func CouponPeriods(in domain.BondInput) float64 {
	days := DaysBetween(in.Settlement, in.Maturity, in.DayCount)
	perPeriod := DaysInYear(in.DayCount) / in.Frequency
	return float64(days) / float64(perPeriod)
}

// BondPrice prices per 100 of par from an annual yield in percent.
func BondPrice(in domain.BondInput, yield float64) float64 {
	c := in.CouponRate / float64(in.Frequency)
	r := yield / 100 / float64(in.Frequency)
	n := CouponPeriods(in)
	if r == 0 {
		return c*n + in.Redemption
	}
	d := math.Pow(1+r, -n)
	return c*(1-d)/r + in.Redemption*d
}

// clampYield bounds a percentage yield so its periodic rate stays inside
// the solver range.
func clampYield(yield float64, freq int) float64 {
	f := float64(freq)
	return clampRate(yield/100/f) * 100 * f
}

// BondYield solves the annual yield in percent that reproduces price.
func BondYield(in domain.BondInput, price float64) (float64, error) {
	yield := in.CouponRate
	if yield <= 0 {
		yield = 5
	}

	for iter := 0; iter < MaxIterations; iter++ {
		diff := BondPrice(in, yield) - price
		if math.Abs(diff) < Tolerance {
			return yield, nil
		}

		h := bondDerivativeStep
		slope := (BondPrice(in, yield+h) - BondPrice(in, yield-h)) / (2 * h)
		if math.Abs(slope) < 1e-10 {
			break
		}

		next := clampYield(yield-diff/slope, in.Frequency)
		if math.Abs(next-yield) < Tolerance {
			return next, nil
		}
		yield = next
	}
	return 0, domain.ErrIterationLimit
}

// AccruedInterest is the coupon earned since the last payment date.
func AccruedInterest(in domain.BondInput) float64 {
	n := CouponPeriods(in)
	elapsed := n - math.Floor(n)
	return in.CouponRate / float64(in.Frequency) * elapsed
}

// MacaulayDuration is in years. It is 0 when the price is not positive.
func MacaulayDuration(in domain.BondInput, yield float64) float64 {
	price := BondPrice(in, yield)
	if price <= 0 {
		return 0
	}
	c := in.CouponRate / float64(in.Frequency)
	r := yield / 100 / float64(in.Frequency)
	periods := int(math.Ceil(CouponPeriods(in)))

	var weighted float64
	for t := 1; t <= periods; t++ {
		cf := c
		if t == periods {
			cf += in.Redemption
		}
		weighted += float64(t) * cf / math.Pow(1+r, float64(t))
	}
	return weighted / price / float64(in.Frequency)
}

func ModifiedDuration(in domain.BondInput, yield float64) float64 {
	return MacaulayDuration(in, yield) / (1 + yield/100/float64(in.Frequency))
}

// CalculateBond solves yield when knownPrice is positive, otherwise it
// prices the bond at knownYield, then fills the rest of the result.
func CalculateBond(in domain.BondInput, knownPrice, knownYield float64) (domain.BondResult, error) {
	if err := ValidateBond(in); err != nil {
		return domain.BondResult{}, err
	}

	var res domain.BondResult
	if knownPrice > 0 {
		y, err := BondYield(in, knownPrice)
		if err != nil {
			return domain.BondResult{}, err
		}
		res.Price, res.Yield = knownPrice, y
	} else {
		res.Price, res.Yield = BondPrice(in, knownYield), knownYield
	}

	res.AccruedInterest = AccruedInterest(in)
	res.DirtyPrice = res.Price + res.AccruedInterest
	res.Duration = MacaulayDuration(in, res.Yield)
	res.ModifiedDuration = ModifiedDuration(in, res.Yield)
	return res, nil
}
