package engine

import (
	"math"

	"fxba/domain"
)

// Balance is the loan balance after period p:
// B(p) = PV·(1+i)^p + PMT·[(1+i)^p - 1]/i.
func Balance(p int, i, pv, pmt float64) float64 {
	if i == 0 {
		return pv + pmt*float64(p)
	}
	g := math.Pow(1+i, float64(p))
	return pv*g + pmt*(g-1)/i
}

func amortRate(t domain.TVM) (i float64, periods int) {
	return PeriodicRate(t.IY, t.PY, t.CY), int(t.N)
}

// AmortizePeriod splits payment p into interest and principal. Interest
// carries the sign of the balance and principal is the balance reduction,
// so principals of a fully amortizing loan add up to PV.
func AmortizePeriod(t domain.TVM, p int) (domain.AmortizationPeriod, error) {
	i, periods := amortRate(t)
	if p < 1 || p > periods {
		return domain.AmortizationPeriod{}, domain.ErrInvalidInput
	}
	start := Balance(p-1, i, t.PV, t.PMT)
	end := Balance(p, i, t.PV, t.PMT)
	return domain.AmortizationPeriod{
		Period:    p,
		Interest:  start * i,
		Principal: start - end,
		Balance:   end,
	}, nil
}

// AmortizeRange totals periods p1..p2 from the closed-form balances.
func AmortizeRange(t domain.TVM, p1, p2 int) (domain.AmortizationRange, error) {
	i, periods := amortRate(t)
	if p1 < 1 || p2 < p1 || p2 > periods {
		return domain.AmortizationRange{}, domain.ErrInvalidInput
	}
	start := Balance(p1-1, i, t.PV, t.PMT)
	end := Balance(p2, i, t.PV, t.PMT)
	principal := start - end
	paid := -t.PMT * float64(p2-p1+1)
	return domain.AmortizationRange{
		Start:     p1,
		End:       p2,
		Principal: principal,
		Interest:  paid - principal,
		Balance:   end,
	}, nil
}

// AmortizationSchedule lists every period from p1 to p2.
func AmortizationSchedule(t domain.TVM, p1, p2 int) ([]domain.AmortizationPeriod, error) {
	if _, err := AmortizeRange(t, p1, p2); err != nil {
		return nil, err
	}
	schedule := make([]domain.AmortizationPeriod, 0, p2-p1+1)
	for p := p1; p <= p2; p++ {
		row, err := AmortizePeriod(t, p)
		if err != nil {
			return nil, err
		}
		schedule = append(schedule, row)
	}
	return schedule, nil
}
