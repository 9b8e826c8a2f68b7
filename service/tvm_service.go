package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"fxba/domain"
	"fxba/engine"
)

func validateTVM(t domain.TVM) error {
	if t.PY <= 0 || t.PY > MaxPaymentsPerYr {
		return fmt.Errorf("payments per year must be between 1 and %d", MaxPaymentsPerYr)
	}
	if t.CY <= 0 || t.CY > MaxPaymentsPerYr {
		return fmt.Errorf("compounding periods per year must be between 1 and %d", MaxPaymentsPerYr)
	}
	if t.Mode != domain.ModeEnd && t.Mode != domain.ModeBegin {
		return errors.New("invalid payment mode")
	}
	if t.N < 0 || t.N > MaxPeriods {
		return fmt.Errorf("number of periods must be between 0 and %d", MaxPeriods)
	}
	if t.IY < MinRatePercent || t.IY > MaxRatePercent {
		return fmt.Errorf("interest rate must be between %.0f%% and %.0f%%", MinRatePercent, MaxRatePercent)
	}
	for _, v := range []float64{t.PV, t.PMT, t.FV} {
		if math.Abs(v) > MaxAmount {
			return fmt.Errorf("amount exceeds the maximum of %.2f", MaxAmount)
		}
	}
	return nil
}

// SolveTVM computes the requested register from the other four.
func (s *WorksheetService) SolveTVM(
	ctx context.Context,
	req domain.TVMRequest,
) (domain.TVMResult, error) {

	switch req.Solve {
	case domain.SolveN, domain.SolveIY, domain.SolvePV, domain.SolvePMT, domain.SolveFV:
	default:
		return domain.TVMResult{}, fmt.Errorf("unknown register to solve: %q", req.Solve)
	}
	if err := validateTVM(req.TVM); err != nil {
		return domain.TVMResult{}, err
	}

	return serve(ctx, s, "tvm.solve", req, func() (domain.TVMResult, error) {
		value, err := engine.SolveTVM(req.TVM, req.Solve)
		if err != nil {
			return domain.TVMResult{}, fmt.Errorf("solve %s: %w", req.Solve, err)
		}

		regs := req.TVM
		switch req.Solve {
		case domain.SolveN:
			value = roundRate(value)
			regs.N = value
		case domain.SolveIY:
			value = roundRate(value)
			regs.IY = value
		case domain.SolvePV:
			value = roundMoney(value)
			regs.PV = value
		case domain.SolvePMT:
			value = roundMoney(value)
			regs.PMT = value
		case domain.SolveFV:
			value = roundMoney(value)
			regs.FV = value
		}
		return domain.TVMResult{Solved: req.Solve, Value: value, Registers: regs}, nil
	})
}

// Amortize lists payments P1 through P2. When PMT is zero it is solved
// first so a loan can be described by N, I/Y and PV alone.
func (s *WorksheetService) Amortize(
	ctx context.Context,
	req domain.AmortizationRequest,
) (domain.AmortizationResult, error) {

	if err := validateTVM(req.TVM); err != nil {
		return domain.AmortizationResult{}, err
	}
	if req.N < 1 {
		return domain.AmortizationResult{}, errors.New("number of periods must be at least 1")
	}
	if req.P1 == 0 && req.P2 == 0 {
		req.P1, req.P2 = 1, int(req.N)
	}
	if req.P1 < 1 || req.P2 < req.P1 {
		return domain.AmortizationResult{}, errors.New("invalid payment range")
	}
	if req.P2 > int(req.N) {
		return domain.AmortizationResult{}, fmt.Errorf("payment range ends after period %d", int(req.N))
	}
	if req.P2-req.P1+1 > MaxSchedulePeriods {
		return domain.AmortizationResult{}, fmt.Errorf("payment range exceeds the maximum of %d periods", MaxSchedulePeriods)
	}

	return serve(ctx, s, "tvm.amortization", req, func() (domain.AmortizationResult, error) {
		t := req.TVM
		if t.PMT == 0 {
			t.PMT = engine.Payment(t)
		}

		periods := make([]domain.AmortizationPeriod, 0, req.P2-req.P1+1)
		for p := req.P1; p <= req.P2; p++ {
			period, err := engine.AmortizePeriod(t, p)
			if err != nil {
				return domain.AmortizationResult{}, fmt.Errorf("amortize period %d: %w", p, err)
			}
			periods = append(periods, domain.AmortizationPeriod{
				Period:    period.Period,
				Principal: roundMoney(period.Principal),
				Interest:  roundMoney(period.Interest),
				Balance:   roundMoney(period.Balance),
			})
		}

		total, err := engine.AmortizeRange(t, req.P1, req.P2)
		if err != nil {
			return domain.AmortizationResult{}, fmt.Errorf("amortize range: %w", err)
		}
		total.Principal = roundMoney(total.Principal)
		total.Interest = roundMoney(total.Interest)
		total.Balance = roundMoney(total.Balance)

		return domain.AmortizationResult{
			Payment: roundMoney(t.PMT),
			Periods: periods,
			Total:   total,
		}, nil
	})
}
