package calculator

import (
	"math"

	"fxba/domain"
	"fxba/engine"
)

const (
	VarMETH Variable = "METH"
	VarLIF  Variable = "LIF"
	VarM01  Variable = "M01"
	VarCST  Variable = "CST"
	VarSAL  Variable = "SAL"
	VarYR   Variable = "YR"
	VarDBR  Variable = "DB%"
	VarDEP  Variable = "DEP"
	VarRBV  Variable = "RBV"
	VarRDV  Variable = "RDV"
)

// DepreciationSheet reports one year of the selected schedule.
type DepreciationSheet struct {
	Input  domain.DepreciationInput
	Method domain.DepreciationMethod
	Year   int
}

func NewDepreciationSheet() *DepreciationSheet {
	return &DepreciationSheet{Input: domain.NewDepreciationInput(), Method: domain.MethodSL, Year: 1}
}

func (s *DepreciationSheet) ID() SheetID { return SheetDepreciation }

func (s *DepreciationSheet) Variables() []VarSpec {
	return []VarSpec{
		input(VarMETH), input(VarLIF), input(VarM01), input(VarCST),
		input(VarSAL), input(VarYR), input(VarDBR),
		output(VarDEP), output(VarRBV), output(VarRDV),
	}
}

func (s *DepreciationSheet) Get(v Variable) (float64, error) {
	switch v {
	case VarMETH:
		return float64(s.Method), nil
	case VarLIF:
		return s.Input.Life, nil
	case VarM01:
		return float64(s.Input.StartMonth), nil
	case VarCST:
		return s.Input.Cost, nil
	case VarSAL:
		return s.Input.Salvage, nil
	case VarYR:
		return float64(s.Year), nil
	case VarDBR:
		return s.Input.DBRate, nil
	}
	return s.Solve(v)
}

func (s *DepreciationSheet) Set(v Variable, x float64) error {
	switch v {
	case VarMETH:
		m := domain.DepreciationMethod(int(x))
		if m < domain.MethodSL || m > domain.MethodDBF {
			return domain.ErrInvalidInput
		}
		s.Method = m
	case VarLIF:
		s.Input.Life = x
	case VarM01:
		month := int(math.Trunc(x))
		if month < 1 || month > 12 {
			return domain.ErrInvalidInput
		}
		s.Input.StartMonth = month
	case VarCST:
		s.Input.Cost = x
	case VarSAL:
		s.Input.Salvage = x
	case VarYR:
		year := int(math.Trunc(x))
		if year < 1 {
			return domain.ErrInvalidInput
		}
		s.Year = year
	case VarDBR:
		s.Input.DBRate = x
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *DepreciationSheet) Solve(v Variable) (float64, error) {
	switch v {
	case VarDEP, VarRBV, VarRDV:
	default:
		return 0, domain.ErrInvalidInput
	}
	r, err := engine.Depreciate(s.Input, s.Method, s.Year)
	if err != nil {
		return 0, err
	}
	switch v {
	case VarDEP:
		return r.Depreciation, nil
	case VarRBV:
		return r.BookValueEnd, nil
	default:
		return r.RemainingDepr, nil
	}
}

// Requires gates by the selected method rather than the register.
func (s *DepreciationSheet) Requires(Variable) Feature {
	return Feature(s.Method.String())
}

func (s *DepreciationSheet) Reset() {
	*s = *NewDepreciationSheet()
}
