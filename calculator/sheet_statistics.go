package calculator

import (
	"fxba/domain"
	"fxba/engine"
)

const (
	VarX      Variable = "X"
	VarY      Variable = "Y"
	VarREG    Variable = "REG"
	VarCount  Variable = "n"
	VarMeanX  Variable = "MX"
	VarSX     Variable = "SX"
	VarSigmaX Variable = "PSX"
	VarMeanY  Variable = "MY"
	VarSY     Variable = "SY"
	VarSigmaY Variable = "PSY"
	VarA      Variable = "A"
	VarB      Variable = "B"
	VarR      Variable = "R"
	VarXP     Variable = "X'"
	VarYP     Variable = "Y'"
	VarSumX   Variable = "SUMX"
	VarSumX2  Variable = "SUMX2"
	VarMinX   Variable = "MINX"
	VarMaxX   Variable = "MAXX"
	VarSumY   Variable = "SUMY"
	VarSumY2  Variable = "SUMY2"
	VarSumXY  Variable = "SUMXY"
)

// StatisticsSheet edits data points and reports one- and two-variable
// statistics with a regression fit. Keying X past the last point appends
// a new point; Y then pairs it.
type StatisticsSheet struct {
	Data       domain.StatData
	Regression domain.RegressionType
	XP, YP     float64
	pos        int
}

func NewStatisticsSheet() *StatisticsSheet { return &StatisticsSheet{} }

func (s *StatisticsSheet) ID() SheetID { return SheetStatistics }

func (s *StatisticsSheet) Variables() []VarSpec {
	return []VarSpec{
		input(VarX), input(VarY), input(VarREG),
		output(VarCount), output(VarMeanX), output(VarSX), output(VarSigmaX),
		output(VarMeanY), output(VarSY), output(VarSigmaY),
		output(VarSumX), output(VarSumX2), output(VarMinX), output(VarMaxX),
		output(VarSumY), output(VarSumY2), output(VarSumXY),
		output(VarA), output(VarB), output(VarR),
		solvable(VarXP), solvable(VarYP),
	}
}

func (s *StatisticsSheet) current() (domain.Point, bool) {
	if s.pos < s.Data.Len() {
		return s.Data.Points[s.pos], true
	}
	return domain.Point{}, false
}

func (s *StatisticsSheet) Get(v Variable) (float64, error) {
	switch v {
	case VarX:
		p, _ := s.current()
		return p.X, nil
	case VarY:
		p, _ := s.current()
		return p.Y, nil
	case VarREG:
		return float64(s.Regression), nil
	case VarXP:
		return s.XP, nil
	case VarYP:
		return s.YP, nil
	}
	return s.Solve(v)
}

func (s *StatisticsSheet) Set(v Variable, x float64) error {
	switch v {
	case VarX:
		if p, ok := s.current(); ok {
			p.X = x
			return s.Data.Update(s.pos, p)
		}
		if err := s.Data.AddX(x); err != nil {
			return err
		}
		s.pos = s.Data.Len() - 1
	case VarY:
		p, ok := s.current()
		if !ok {
			return domain.ErrInvalidInput
		}
		p.Y, p.HasY = x, true
		return s.Data.Update(s.pos, p)
	case VarREG:
		r := domain.RegressionType(int(x))
		if r < domain.RegLinear || r > domain.RegPower {
			return domain.ErrInvalidInput
		}
		s.Regression = r
	case VarXP:
		s.XP = x
	case VarYP:
		s.YP = x
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *StatisticsSheet) Solve(v Variable) (float64, error) {
	switch v {
	case VarCount:
		return float64(s.Data.Len()), nil
	case VarMeanX, VarSX, VarSigmaX, VarSumX, VarSumX2, VarMinX, VarMaxX:
		one := engine.OneVar(s.Data)
		switch v {
		case VarMeanX:
			return one.MeanX, nil
		case VarSX:
			return one.Sx, nil
		case VarSigmaX:
			return one.SigmaX, nil
		case VarSumX:
			return one.SumX, nil
		case VarSumX2:
			return one.SumX2, nil
		case VarMinX:
			return one.MinX, nil
		default:
			return one.MaxX, nil
		}
	case VarMeanY, VarSY, VarSigmaY, VarSumY, VarSumY2, VarSumXY:
		two := engine.TwoVar(s.Data)
		switch v {
		case VarMeanY:
			return two.MeanY, nil
		case VarSY:
			return two.Sy, nil
		case VarSigmaY:
			return two.SigmaY, nil
		case VarSumY:
			return two.SumY, nil
		case VarSumY2:
			return two.SumY2, nil
		default:
			return two.SumXY, nil
		}
	case VarA, VarB, VarR, VarXP, VarYP:
		reg, err := engine.Regress(s.Data, s.Regression)
		if err != nil {
			return 0, err
		}
		switch v {
		case VarA:
			return reg.A, nil
		case VarB:
			return reg.B, nil
		case VarR:
			return reg.R, nil
		case VarXP:
			return engine.PredictX(reg, s.YP), nil
		default:
			return engine.PredictY(reg, s.XP), nil
		}
	}
	return 0, domain.ErrInvalidInput
}

// Requires gates X' and Y' prediction separately from the summary
// registers.
func (s *StatisticsSheet) Requires(v Variable) Feature {
	if v == VarXP || v == VarYP {
		return FeatureForecast
	}
	return FeatureStatistics
}

func (s *StatisticsSheet) Reset() {
	*s = StatisticsSheet{}
}

func (s *StatisticsSheet) Position() int { return s.pos }

func (s *StatisticsSheet) Move(delta int) {
	s.pos = clampPos(s.pos+delta, s.Data.Len())
}

func (s *StatisticsSheet) Insert() error {
	return s.Data.Insert(clampPos(s.pos, s.Data.Len()), domain.Point{})
}

func (s *StatisticsSheet) Delete() error {
	if err := s.Data.Remove(s.pos); err != nil {
		return err
	}
	s.pos = clampPos(s.pos, s.Data.Len())
	return nil
}
