package calculator

import (
	"math"

	"fxba/domain"
	"fxba/engine"
)

const (
	VarN   Variable = "N"
	VarIY  Variable = "I/Y"
	VarPV  Variable = "PV"
	VarPMT Variable = "PMT"
	VarFV  Variable = "FV"
	VarPY  Variable = "P/Y"
	VarCY  Variable = "C/Y"
	VarP1  Variable = "P1"
	VarP2  Variable = "P2"
	VarBAL Variable = "BAL"
	VarPRN Variable = "PRN"
	VarINT Variable = "INT"
)

// TVMSheet holds the five TVM registers and the amortization range.
type TVMSheet struct {
	TVM    domain.TVM
	P1, P2 int
}

func NewTVMSheet() *TVMSheet {
	return &TVMSheet{TVM: domain.NewTVM(), P1: 1, P2: 1}
}

func (s *TVMSheet) ID() SheetID { return SheetTVM }

func (s *TVMSheet) Variables() []VarSpec {
	return []VarSpec{
		solvable(VarN), solvable(VarIY), solvable(VarPV), solvable(VarPMT), solvable(VarFV),
		input(VarPY), input(VarCY), input(VarP1), input(VarP2),
		output(VarBAL), output(VarPRN), output(VarINT),
	}
}

func (s *TVMSheet) Get(v Variable) (float64, error) {
	switch v {
	case VarN:
		return s.TVM.N, nil
	case VarIY:
		return s.TVM.IY, nil
	case VarPV:
		return s.TVM.PV, nil
	case VarPMT:
		return s.TVM.PMT, nil
	case VarFV:
		return s.TVM.FV, nil
	case VarPY:
		return s.TVM.PY, nil
	case VarCY:
		return s.TVM.CY, nil
	case VarP1:
		return float64(s.P1), nil
	case VarP2:
		return float64(s.P2), nil
	}
	return s.Solve(v)
}

func (s *TVMSheet) Set(v Variable, x float64) error {
	switch v {
	case VarN:
		s.TVM.N = x
	case VarIY:
		s.TVM.IY = x
	case VarPV:
		s.TVM.PV = x
	case VarPMT:
		s.TVM.PMT = x
	case VarFV:
		s.TVM.FV = x
	case VarPY, VarCY:
		if x <= 0 {
			return domain.ErrInvalidInput
		}
		if v == VarPY {
			s.TVM.PY = x
		} else {
			s.TVM.CY = x
		}
	case VarP1, VarP2:
		p := int(math.Trunc(x))
		if p < 1 {
			return domain.ErrInvalidInput
		}
		if v == VarP1 {
			s.P1 = p
		} else {
			s.P2 = p
		}
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *TVMSheet) Solve(v Variable) (float64, error) {
	switch v {
	case VarN, VarIY, VarPV, VarPMT, VarFV:
		return engine.SolveTVM(s.TVM, domain.TVMUnknown(v))
	case VarBAL, VarPRN, VarINT:
		r, err := engine.AmortizeRange(s.TVM, s.P1, s.P2)
		if err != nil {
			return 0, err
		}
		switch v {
		case VarBAL:
			return r.Balance, nil
		case VarPRN:
			return r.Principal, nil
		default:
			return r.Interest, nil
		}
	}
	return 0, domain.ErrInvalidInput
}

func (s *TVMSheet) Requires(v Variable) Feature {
	switch v {
	case VarBAL, VarPRN, VarINT:
		return FeatureAmortization
	}
	return FeatureTVM
}

// Reset zeroes the five registers and keeps P/Y, C/Y and the mode.
func (s *TVMSheet) Reset() {
	s.TVM.Reset()
	s.P1, s.P2 = 1, 1
}
