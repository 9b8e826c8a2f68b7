package calculator

import (
	"fxba/domain"
	"fxba/engine"
)

const (
	VarDT1 Variable = "DT1"
	VarDT2 Variable = "DT2"
	VarDBD Variable = "DBD"
	VarDCM Variable = "DCM"
	VarDOW Variable = "DOW"
)

// DateSheet solves one of DT1, DT2 and DBD from the other two. DCM 0
// counts actual days, anything else counts 30/360. DOW is the weekday of
// DT2, 0 for Sunday.
type DateSheet struct {
	D domain.DateCalc
}

func NewDateSheet() *DateSheet { return &DateSheet{D: domain.NewDateCalc()} }

func (s *DateSheet) ID() SheetID { return SheetDate }

func (s *DateSheet) Variables() []VarSpec {
	return []VarSpec{
		solvable(VarDT1), solvable(VarDT2), solvable(VarDBD),
		input(VarDCM), output(VarDOW),
	}
}

func (s *DateSheet) Get(v Variable) (float64, error) {
	switch v {
	case VarDT1:
		return s.D.DT1, nil
	case VarDT2:
		return s.D.DT2, nil
	case VarDBD:
		return s.D.DBD, nil
	case VarDCM:
		if s.D.Use360 {
			return 1, nil
		}
		return 0, nil
	}
	return s.Solve(v)
}

func (s *DateSheet) Set(v Variable, x float64) error {
	switch v {
	case VarDT1, VarDT2:
		if _, _, _, err := engine.ParseKeyedDate(x); err != nil {
			return err
		}
		if v == VarDT1 {
			s.D.DT1 = x
		} else {
			s.D.DT2 = x
		}
	case VarDBD:
		s.D.DBD = x
	case VarDCM:
		s.D.Use360 = x != 0
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *DateSheet) Solve(v Variable) (float64, error) {
	switch v {
	case VarDT1:
		return engine.SolveDT1(s.D)
	case VarDT2:
		return engine.SolveDT2(s.D)
	case VarDBD:
		return engine.SolveDBD(s.D)
	case VarDOW:
		y, m, d, err := engine.ParseKeyedDate(s.D.DT2)
		if err != nil {
			return 0, err
		}
		return float64(engine.DayOfWeek(y, m, d)), nil
	}
	return 0, domain.ErrInvalidInput
}

func (s *DateSheet) Requires(Variable) Feature { return FeatureDate }

func (s *DateSheet) Reset() { s.D = domain.NewDateCalc() }
