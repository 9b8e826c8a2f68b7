package calculator

import (
	"math"

	"fxba/domain"
	"fxba/engine"
)

const (
	VarCF0  Variable = "CF0"
	VarC    Variable = "C"
	VarF    Variable = "F"
	VarI    Variable = "I"
	VarRI   Variable = "RI"
	VarNPV  Variable = "NPV"
	VarIRR  Variable = "IRR"
	VarNFV  Variable = "NFV"
	VarPB   Variable = "PB"
	VarDPB  Variable = "DPB"
	VarMIRR Variable = "MIRR"
)

// CashFlowSheet edits a grouped cash-flow list. C and F address the group
// under the cursor; a cursor past the last group appends.
type CashFlowSheet struct {
	List     domain.CashFlowList
	Rate     float64 // I, percent
	Reinvest float64 // RI, percent
	pos      int
}

func NewCashFlowSheet() *CashFlowSheet { return &CashFlowSheet{} }

func (s *CashFlowSheet) ID() SheetID { return SheetCashFlow }

func (s *CashFlowSheet) Variables() []VarSpec {
	return []VarSpec{
		input(VarCF0), input(VarC), input(VarF), input(VarI), input(VarRI),
		output(VarNPV), output(VarIRR), output(VarNFV),
		output(VarPB), output(VarDPB), output(VarMIRR),
	}
}

func (s *CashFlowSheet) Get(v Variable) (float64, error) {
	switch v {
	case VarCF0:
		return s.List.CF0, nil
	case VarC:
		if s.pos < s.List.Len() {
			return s.List.Flows[s.pos].Amount, nil
		}
		return 0, nil
	case VarF:
		if s.pos < s.List.Len() {
			return float64(s.List.Flows[s.pos].Count), nil
		}
		return domain.MinFlowCount, nil
	case VarI:
		return s.Rate, nil
	case VarRI:
		return s.Reinvest, nil
	}
	return s.Solve(v)
}

func (s *CashFlowSheet) Set(v Variable, x float64) error {
	switch v {
	case VarCF0:
		s.List.CF0 = x
	case VarC:
		if s.pos < s.List.Len() {
			return s.List.Update(s.pos, x, s.List.Flows[s.pos].Count)
		}
		if err := s.List.Add(x, 1); err != nil {
			return err
		}
		s.pos = s.List.Len() - 1
	case VarF:
		if s.pos >= s.List.Len() {
			return domain.ErrInvalidInput
		}
		return s.List.Update(s.pos, s.List.Flows[s.pos].Amount, int(math.Round(x)))
	case VarI:
		s.Rate = x
	case VarRI:
		s.Reinvest = x
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *CashFlowSheet) Solve(v Variable) (float64, error) {
	rate := s.Rate / 100
	switch v {
	case VarNPV:
		return engine.NPV(s.List, rate), nil
	case VarIRR:
		irr, err := engine.IRR(s.List)
		return irr * 100, err
	case VarNFV:
		return engine.NFV(s.List, rate), nil
	case VarPB:
		return engine.Payback(s.List), nil
	case VarDPB:
		return engine.DiscountedPayback(s.List, rate), nil
	case VarMIRR:
		mirr, err := engine.MIRR(s.List, rate, s.Reinvest/100)
		return mirr * 100, err
	}
	return 0, domain.ErrInvalidInput
}

func (s *CashFlowSheet) Requires(v Variable) Feature {
	switch v {
	case VarIRR:
		return FeatureIRR
	case VarNFV:
		return FeatureNFV
	case VarPB:
		return FeaturePB
	case VarDPB:
		return FeatureDPB
	case VarMIRR:
		return FeatureMIRR
	}
	return FeatureNPV
}

func (s *CashFlowSheet) Reset() {
	s.List.Clear()
	s.Rate, s.Reinvest, s.pos = 0, 0, 0
}

func (s *CashFlowSheet) Position() int { return s.pos }

func (s *CashFlowSheet) Move(delta int) {
	s.pos = clampPos(s.pos+delta, s.List.Len())
}

// Insert opens an empty group at the cursor.
func (s *CashFlowSheet) Insert() error {
	return s.List.Insert(clampPos(s.pos, s.List.Len()), 0, 1)
}

func (s *CashFlowSheet) Delete() error {
	if err := s.List.Delete(s.pos); err != nil {
		return err
	}
	s.pos = clampPos(s.pos, s.List.Len())
	return nil
}

func clampPos(pos, n int) int {
	if pos < 0 {
		return 0
	}
	if pos > n {
		return n
	}
	return pos
}
