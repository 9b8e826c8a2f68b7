package engine

import (
	"math"

	"fxba/domain"
)

// Newton-Raphson policy shared by the I/Y, IRR and bond yield solvers.
const (
	Tolerance     = 1e-10
	MaxIterations = 50
	InitialGuess  = 0.1
	MinRate       = -0.999
	MaxRate       = 10.0
)

func clampRate(r float64) float64 {
	if r < MinRate {
		return MinRate
	}
	if r > MaxRate {
		return MaxRate
	}
	return r
}

// PeriodicRate converts a nominal annual percentage into the rate per
// payment period.
func PeriodicRate(annual, py, cy float64) float64 {
	if annual == 0 {
		return 0
	}
	if py == cy {
		return annual / (100 * py)
	}
	return math.Pow(1+annual/(100*cy), cy/py) - 1
}

// NominalRate is the inverse of PeriodicRate.
func NominalRate(periodic, py, cy float64) float64 {
	if py == cy {
		return periodic * 100 * py
	}
	return (math.Pow(1+periodic, py/cy) - 1) * 100 * cy
}

func modeFactor(mode domain.PaymentMode, i float64) float64 {
	if mode == domain.ModeBegin {
		return 1 + i
	}
	return 1
}

func FutureValue(t domain.TVM) float64 {
	i := PeriodicRate(t.IY, t.PY, t.CY)
	if i == 0 {
		return -(t.PV + t.PMT*t.N)
	}
	m := modeFactor(t.Mode, i)
	g := math.Pow(1+i, t.N)
	return -(t.PV*g + t.PMT*(g-1)/i*m)
}

func PresentValue(t domain.TVM) float64 {
	i := PeriodicRate(t.IY, t.PY, t.CY)
	if i == 0 {
		return -(t.FV + t.PMT*t.N)
	}
	m := modeFactor(t.Mode, i)
	d := math.Pow(1+i, -t.N)
	return -(t.FV*d + t.PMT*(1-d)/i*m)
}

func Payment(t domain.TVM) float64 {
	i := PeriodicRate(t.IY, t.PY, t.CY)
	if i == 0 {
		if t.N == 0 {
			return 0
		}
		return -(t.PV + t.FV) / t.N
	}
	m := modeFactor(t.Mode, i)
	d := math.Pow(1+i, -t.N)
	return -(t.PV + t.FV*d) / ((1 - d) / i * m)
}

// Periods solves for N. It fails when no real number of periods balances
// the registers.
func Periods(t domain.TVM) (float64, error) {
	i := PeriodicRate(t.IY, t.PY, t.CY)
	if i == 0 {
		if t.PMT == 0 {
			return 0, domain.ErrInvalidInput
		}
		return -(t.PV + t.FV) / t.PMT, nil
	}
	m := modeFactor(t.Mode, i)
	num := t.PMT*m - t.FV*i
	den := t.PMT*m + t.PV*i
	if den == 0 || num/den <= 0 {
		return 0, domain.ErrNoSolution
	}
	return math.Log(num/den) / math.Log1p(i), nil
}

// Rate solves for the periodic interest rate.
//
// f(i) = PV + PMT·A(i) + FV·D(i) with D = (1+i)^-n and A = (1-D)/i·M.
// f'(i) = PMT·dA + FV·dD where dD = -n·D/(1+i) and
// dA = M·(n·D·i/(1+i) - 1 + D)/i². M is held constant within an iteration.
func Rate(t domain.TVM) (float64, error) {
	pv, pmt, fv, n := t.PV, t.PMT, t.FV, t.N
	if pv == 0 && pmt == 0 && fv == 0 {
		return 0, domain.ErrInvalidInput
	}

	if pmt == 0 && pv != 0 && fv != 0 && n > 0 {
		if ratio := -fv / pv; ratio > 0 {
			return math.Pow(ratio, 1/n) - 1, nil
		}
	}

	rate := InitialGuess
	if pv != 0 && fv != 0 && n > 0 {
		if ratio := -fv / pv; ratio > 0 {
			rate = math.Pow(ratio, 1/n) - 1
			if rate <= 0 || rate > 1 {
				rate = InitialGuess
			}
		}
	}

	for iter := 0; iter < MaxIterations; iter++ {
		f, df := rateFunc(rate, n, pv, pmt, fv, modeFactor(t.Mode, rate))
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
	return 0, domain.ErrIterationLimit
}

// rateFunc evaluates f and f' in one pass. At exactly zero the derivative
// is reported as 0 and the solver gives up.
func rateFunc(i, n, pv, pmt, fv, m float64) (f, df float64) {
	if i == 0 {
		return pv + pmt*n + fv, 0
	}
	d := 1 / math.Pow(1+i, n)
	a := (1 - d) / i * m
	f = pv + pmt*a + fv*d

	dd := -n * d / (1 + i)
	da := m * (n*d*i/(1+i) - 1 + d) / (i * i)
	return f, pmt*da + fv*dd
}

// SolveTVM computes the unknown register and leaves t untouched.
// I/Y is returned as a nominal annual percentage.
func SolveTVM(t domain.TVM, unknown domain.TVMUnknown) (float64, error) {
	switch unknown {
	case domain.SolveN:
		return Periods(t)
	case domain.SolveIY:
		i, err := Rate(t)
		if err != nil {
			return 0, err
		}
		return NominalRate(i, t.PY, t.CY), nil
	case domain.SolvePV:
		return PresentValue(t), nil
	case domain.SolvePMT:
		return Payment(t), nil
	case domain.SolveFV:
		return FutureValue(t), nil
	}
	return 0, domain.ErrInvalidInput
}
