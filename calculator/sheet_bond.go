package calculator

import (
	"fxba/domain"
	"fxba/engine"
)

const (
	VarSDT  Variable = "SDT"
	VarCPN  Variable = "CPN"
	VarRDT  Variable = "RDT"
	VarRV   Variable = "RV"
	VarFRQ  Variable = "FRQ"
	VarDAY  Variable = "DAY"
	VarYLD  Variable = "YLD"
	VarPRI  Variable = "PRI"
	VarAI   Variable = "AI"
	VarDUR  Variable = "DUR"
	VarMDUR Variable = "MDUR"
)

// BondSheet keys dates as MM.DDYYYY and stores them as YYYYMMDD.
type BondSheet struct {
	Input domain.BondInput
	Yield float64
	Price float64
}

func NewBondSheet() *BondSheet {
	return &BondSheet{Input: domain.NewBondInput()}
}

func (s *BondSheet) ID() SheetID { return SheetBond }

func (s *BondSheet) Variables() []VarSpec {
	return []VarSpec{
		input(VarSDT), input(VarCPN), input(VarRDT), input(VarRV),
		input(VarFRQ), input(VarDAY), solvable(VarYLD), solvable(VarPRI),
		output(VarAI), output(VarDUR), output(VarMDUR),
	}
}

func keyedFromPacked(yyyymmdd int) float64 {
	if yyyymmdd == 0 {
		return 0
	}
	return engine.KeyedDate(engine.SplitDate(yyyymmdd))
}

func packedFromKeyed(x float64) (int, error) {
	y, m, d, err := engine.ParseKeyedDate(x)
	if err != nil {
		return 0, err
	}
	return engine.JoinDate(y, m, d), nil
}

func (s *BondSheet) Get(v Variable) (float64, error) {
	switch v {
	case VarSDT:
		return keyedFromPacked(s.Input.Settlement), nil
	case VarRDT:
		return keyedFromPacked(s.Input.Maturity), nil
	case VarCPN:
		return s.Input.CouponRate, nil
	case VarRV:
		return s.Input.Redemption, nil
	case VarFRQ:
		return float64(s.Input.Frequency), nil
	case VarDAY:
		return float64(s.Input.DayCount), nil
	case VarYLD:
		return s.Yield, nil
	case VarPRI:
		return s.Price, nil
	}
	return s.Solve(v)
}

func (s *BondSheet) Set(v Variable, x float64) error {
	switch v {
	case VarSDT, VarRDT:
		date, err := packedFromKeyed(x)
		if err != nil {
			return err
		}
		if v == VarSDT {
			s.Input.Settlement = date
		} else {
			s.Input.Maturity = date
		}
	case VarCPN:
		s.Input.CouponRate = x
	case VarRV:
		if x <= 0 {
			return domain.ErrInvalidInput
		}
		s.Input.Redemption = x
	case VarFRQ:
		switch f := int(x); f {
		case 1, 2, 4, 12:
			s.Input.Frequency = f
		default:
			return domain.ErrInvalidInput
		}
	case VarDAY:
		dc := domain.DayCount(int(x))
		if dc < domain.DayCountACTACT || dc > domain.DayCountACT365 {
			return domain.ErrInvalidInput
		}
		s.Input.DayCount = dc
	case VarYLD:
		s.Yield = x
	case VarPRI:
		s.Price = x
	default:
		return domain.ErrInvalidInput
	}
	return nil
}

func (s *BondSheet) Solve(v Variable) (float64, error) {
	if err := engine.ValidateBond(s.Input); err != nil {
		return 0, err
	}
	switch v {
	case VarYLD:
		if s.Price <= 0 {
			return 0, domain.ErrInvalidInput
		}
		return engine.BondYield(s.Input, s.Price)
	case VarPRI:
		return engine.BondPrice(s.Input, s.Yield), nil
	case VarAI:
		return engine.AccruedInterest(s.Input), nil
	case VarDUR:
		return engine.MacaulayDuration(s.Input, s.Yield), nil
	case VarMDUR:
		return engine.ModifiedDuration(s.Input, s.Yield), nil
	}
	return 0, domain.ErrInvalidInput
}

func (s *BondSheet) Requires(v Variable) Feature {
	switch v {
	case VarDUR:
		return FeatureDUR
	case VarMDUR:
		return FeatureMDUR
	}
	return FeatureBond
}

func (s *BondSheet) Reset() {
	*s = BondSheet{Input: domain.NewBondInput()}
}
