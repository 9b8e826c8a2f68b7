package service

import (
	"context"
	"errors"
	"fmt"
	"math"

	"fxba/domain"
	"fxba/engine"
)

// AnalyzeCashFlows reports every cash-flow measure for one list. IRR and
// MIRR are percentages; a list without them still gets NPV and payback.
func (s *WorksheetService) AnalyzeCashFlows(
	ctx context.Context,
	req domain.CashFlowRequest,
) (domain.CashFlowResult, error) {

	if len(req.Flows) == 0 {
		return domain.CashFlowResult{}, errors.New("no cash flows provided")
	}
	if len(req.Flows) > domain.MaxCashFlows {
		return domain.CashFlowResult{}, fmt.Errorf("number of cash flows exceeds the maximum of %d", domain.MaxCashFlows)
	}
	if req.Rate <= -100 || req.Rate > MaxRatePercent {
		return domain.CashFlowResult{}, errors.New("invalid discount rate")
	}
	if req.ReinvestRate <= -100 || req.ReinvestRate > MaxRatePercent {
		return domain.CashFlowResult{}, errors.New("invalid reinvestment rate")
	}
	if math.Abs(req.CF0) > MaxAmount {
		return domain.CashFlowResult{}, fmt.Errorf("amount exceeds the maximum of %.2f", MaxAmount)
	}

	// rebuild through Add so counts are clamped the way the worksheet does
	list := domain.CashFlowList{CF0: req.CF0}
	for i, f := range req.Flows {
		if math.Abs(f.Amount) > MaxAmount {
			return domain.CashFlowResult{}, fmt.Errorf("cash flow %d exceeds the maximum of %.2f", i+1, MaxAmount)
		}
		if err := list.Add(f.Amount, f.Count); err != nil {
			return domain.CashFlowResult{}, fmt.Errorf("cash flow %d: %w", i+1, err)
		}
	}
	req.CashFlowList = list
	if req.ReinvestRate == 0 {
		req.ReinvestRate = req.Rate
	}

	return serve(ctx, s, "cashflow.analyze", req, func() (domain.CashFlowResult, error) {
		rate := req.Rate / 100
		res := domain.CashFlowResult{
			NPV:               roundMoney(engine.NPV(list, rate)),
			NFV:               roundMoney(engine.NFV(list, rate)),
			Payback:           roundRate(engine.Payback(list)),
			DiscountedPayback: roundRate(engine.DiscountedPayback(list, rate)),
		}

		if irr, err := engine.IRR(list); err != nil {
			s.log.WithError(err).Debug("irr unavailable")
			res.Notes = append(res.Notes, "irr: "+err.Error())
		} else {
			v := roundRate(irr * 100)
			res.IRR = &v
		}

		if mirr, err := engine.MIRR(list, rate, req.ReinvestRate/100); err != nil {
			res.Notes = append(res.Notes, "mirr: "+err.Error())
		} else {
			v := roundRate(mirr * 100)
			res.MIRR = &v
		}

		return res, nil
	})
}

// CalculateBond solves the yield from a positive price, or prices the
// bond at the given yield, and adds accrued interest and durations.
func (s *WorksheetService) CalculateBond(
	ctx context.Context,
	req domain.BondRequest,
) (domain.BondResult, error) {

	defaults := domain.NewBondInput()
	if req.Redemption == 0 {
		req.Redemption = defaults.Redemption
	}
	if req.Frequency == 0 {
		req.Frequency = defaults.Frequency
	}
	if !engine.ValidYYYYMMDD(req.Settlement) || !engine.ValidYYYYMMDD(req.Maturity) {
		return domain.BondResult{}, errors.New("dates must be valid YYYYMMDD values")
	}
	if req.Price < 0 {
		return domain.BondResult{}, errors.New("invalid price")
	}
	if req.Price == 0 && (req.Yield <= -100 || req.Yield > MaxRatePercent) {
		return domain.BondResult{}, errors.New("invalid yield")
	}

	return serve(ctx, s, "bond.calculate", req, func() (domain.BondResult, error) {
		res, err := engine.CalculateBond(req.BondInput, req.Price, req.Yield)
		if err != nil {
			return domain.BondResult{}, fmt.Errorf("bond: %w", err)
		}
		return domain.BondResult{
			Price:            roundRate(res.Price),
			Yield:            roundRate(res.Yield),
			AccruedInterest:  roundRate(res.AccruedInterest),
			DirtyPrice:       roundRate(res.DirtyPrice),
			Duration:         roundRate(res.Duration),
			ModifiedDuration: roundRate(res.ModifiedDuration),
		}, nil
	})
}
