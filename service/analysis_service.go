package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"fxba/domain"
	"fxba/engine"
)

// DepreciationSchedule lists every year of an asset's life, plus the
// partial final year when it was bought after January.
func (s *WorksheetService) DepreciationSchedule(
	ctx context.Context,
	req domain.DepreciationRequest,
) (domain.DepreciationScheduleResult, error) {

	if req.Method == "" {
		req.Method = domain.MethodSL.String()
	}
	method, ok := domain.ParseDepreciationMethod(strings.ToUpper(req.Method))
	if !ok {
		return domain.DepreciationScheduleResult{}, fmt.Errorf("unknown depreciation method: %q", req.Method)
	}
	req.Method = method.String()

	defaults := domain.NewDepreciationInput()
	if req.DBRate == 0 {
		req.DBRate = defaults.DBRate
	}
	if req.StartMonth == 0 {
		req.StartMonth = defaults.StartMonth
	}
	if req.Cost <= 0 || req.Cost > MaxAmount {
		return domain.DepreciationScheduleResult{}, errors.New("invalid cost")
	}
	if req.Salvage < 0 || req.Salvage > req.Cost {
		return domain.DepreciationScheduleResult{}, errors.New("salvage must be between 0 and cost")
	}
	if req.Life <= 0 || req.Life > MaxDepreciationYears {
		return domain.DepreciationScheduleResult{}, fmt.Errorf("life must be between 0 and %d years", MaxDepreciationYears)
	}
	if req.Years == 0 {
		req.Years = int(math.Ceil(req.Life))
		if req.StartMonth > 1 {
			req.Years++
		}
	}
	if req.Years < 1 || req.Years > MaxDepreciationYears+1 {
		return domain.DepreciationScheduleResult{}, errors.New("invalid number of years")
	}

	return serve(ctx, s, "depreciation.schedule", req, func() (domain.DepreciationScheduleResult, error) {
		schedule, err := engine.DepreciationSchedule(req.DepreciationInput, method, req.Years)
		if err != nil {
			return domain.DepreciationScheduleResult{}, fmt.Errorf("depreciation %s: %w", method, err)
		}
		for i := range schedule {
			r := &schedule[i]
			r.Depreciation = roundMoney(r.Depreciation)
			r.BookValueStart = roundMoney(r.BookValueStart)
			r.AccumDepr = roundMoney(r.AccumDepr)
			r.BookValueEnd = roundMoney(r.BookValueEnd)
			r.RemainingDepr = roundMoney(r.RemainingDepr)
		}
		return domain.DepreciationScheduleResult{Method: method.String(), Schedule: schedule}, nil
	})
}

// AnalyzeStatistics summarizes the points and, when asked, fits a
// regression to the paired ones.
func (s *WorksheetService) AnalyzeStatistics(
	ctx context.Context,
	req domain.StatisticsRequest,
) (domain.StatisticsResult, error) {

	if len(req.Points) == 0 {
		return domain.StatisticsResult{}, errors.New("no data points provided")
	}
	if len(req.Points) > domain.MaxStatPoints {
		return domain.StatisticsResult{}, fmt.Errorf("number of points exceeds the maximum of %d", domain.MaxStatPoints)
	}
	regType := domain.RegLinear
	if req.Regression != "" {
		var ok bool
		req.Regression = strings.ToUpper(req.Regression)
		if regType, ok = domain.ParseRegressionType(req.Regression); !ok {
			return domain.StatisticsResult{}, fmt.Errorf("unknown regression type: %q", req.Regression)
		}
	}

	var data domain.StatData
	paired := 0
	for _, p := range req.Points {
		if math.IsNaN(p.X) || math.IsNaN(p.Y) {
			return domain.StatisticsResult{}, errors.New("invalid data point")
		}
		if err := data.Insert(data.Len(), p); err != nil {
			return domain.StatisticsResult{}, fmt.Errorf("statistics: %w", err)
		}
		if p.HasY {
			paired++
		}
	}

	return serve(ctx, s, "statistics.analyze", req, func() (domain.StatisticsResult, error) {
		res := domain.StatisticsResult{OneVar: engine.OneVar(data)}
		if paired > 0 {
			two := engine.TwoVar(data)
			res.TwoVar = &two
		}
		if req.Regression != "" {
			reg, err := engine.Regress(data, regType)
			if err != nil {
				return domain.StatisticsResult{}, fmt.Errorf("regression %s: %w", regType, err)
			}
			res.Regression = &reg
		}
		return res, nil
	})
}

// Breakeven finds the breakeven quantity and the figures at the given
// quantity and target profit.
func (s *WorksheetService) Breakeven(
	ctx context.Context,
	req domain.Breakeven,
) (domain.BreakevenResult, error) {

	if req.FixedCost < 0 || req.VariableCost < 0 {
		return domain.BreakevenResult{}, errors.New("costs must not be negative")
	}
	if req.Price <= 0 {
		return domain.BreakevenResult{}, errors.New("invalid price")
	}
	for _, v := range []float64{req.FixedCost, req.VariableCost, req.Price, req.Profit} {
		if math.Abs(v) > MaxAmount {
			return domain.BreakevenResult{}, fmt.Errorf("amount exceeds the maximum of %.2f", MaxAmount)
		}
	}

	return serve(ctx, s, "profit.breakeven", req, func() (domain.BreakevenResult, error) {
		res, err := engine.AnalyzeBreakeven(req)
		if err != nil {
			return domain.BreakevenResult{}, fmt.Errorf("breakeven: %w", err)
		}
		return domain.BreakevenResult{
			Quantity:          roundRate(res.Quantity),
			Revenue:           roundMoney(res.Revenue),
			Profit:            roundMoney(res.Profit),
			QuantityForProfit: roundRate(res.QuantityForProfit),
		}, nil
	})
}

// DaysBetween counts the days between two YYYYMMDD dates.
func (s *WorksheetService) DaysBetween(
	ctx context.Context,
	req domain.DaysRequest,
) (domain.DaysResult, error) {

	if !engine.ValidYYYYMMDD(req.Start) || !engine.ValidYYYYMMDD(req.End) {
		return domain.DaysResult{}, errors.New("dates must be valid YYYYMMDD values between 1900 and 2099")
	}
	if req.DayCount < domain.DayCountACTACT || req.DayCount > domain.DayCountACT365 {
		return domain.DaysResult{}, errors.New("invalid day count convention")
	}

	return serve(ctx, s, "date.days", req, func() (domain.DaysResult, error) {
		y1, m1, d1 := engine.SplitDate(req.Start)
		y2, m2, d2 := engine.SplitDate(req.End)
		return domain.DaysResult{
			Days:         engine.DaysBetween(req.Start, req.End, req.DayCount),
			YearFraction: roundRate(engine.YearFraction(req.Start, req.End, req.DayCount)),
			StartDay:     engine.DayName(engine.DayOfWeek(y1, m1, d1)),
			EndDay:       engine.DayName(engine.DayOfWeek(y2, m2, d2)),
		}, nil
	})
}
