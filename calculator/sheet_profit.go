package calculator

import (
	"fxba/domain"
	"fxba/engine"
)

const (
	VarFC  Variable = "FC"
	VarVC  Variable = "VC"
	VarP   Variable = "P"
	VarPFT Variable = "PFT"
	VarQ   Variable = "Q"

	VarCost    Variable = "CST"
	VarSelling Variable = "SEL"
	VarMargin  Variable = "MAR"
	VarMarkup  Variable = "MU"
)

// BreakevenSheet solves any one of its five registers from the others.
type BreakevenSheet struct {
	B domain.Breakeven
}

func NewBreakevenSheet() *BreakevenSheet { return &BreakevenSheet{} }

func (s *BreakevenSheet) ID() SheetID { return SheetBreakeven }

func (s *BreakevenSheet) Variables() []VarSpec {
	return []VarSpec{solvable(VarFC), solvable(VarVC), solvable(VarP), solvable(VarPFT), solvable(VarQ)}
}

func (s *BreakevenSheet) field(v Variable) *float64 {
	switch v {
	case VarFC:
		return &s.B.FixedCost
	case VarVC:
		return &s.B.VariableCost
	case VarP:
		return &s.B.Price
	case VarPFT:
		return &s.B.Profit
	case VarQ:
		return &s.B.Quantity
	}
	return nil
}

func (s *BreakevenSheet) Get(v Variable) (float64, error) {
	f := s.field(v)
	if f == nil {
		return 0, domain.ErrInvalidInput
	}
	return *f, nil
}

func (s *BreakevenSheet) Set(v Variable, x float64) error {
	f := s.field(v)
	if f == nil {
		return domain.ErrInvalidInput
	}
	*f = x
	return nil
}

func (s *BreakevenSheet) Solve(v Variable) (float64, error) {
	switch v {
	case VarQ:
		return engine.BreakevenQuantity(s.B)
	case VarPFT:
		return engine.BreakevenProfit(s.B), nil
	case VarP:
		return engine.BreakevenPrice(s.B)
	case VarVC:
		return engine.BreakevenVariableCost(s.B)
	case VarFC:
		return engine.BreakevenFixedCost(s.B), nil
	}
	return 0, domain.ErrInvalidInput
}

func (s *BreakevenSheet) Requires(Variable) Feature { return FeatureBreakeven }

func (s *BreakevenSheet) Reset() { s.B = domain.Breakeven{} }

// ProfitSheet relates cost and selling price through margin or markup.
type ProfitSheet struct {
	P domain.ProfitMargin
}

func NewProfitSheet() *ProfitSheet { return &ProfitSheet{} }

func (s *ProfitSheet) ID() SheetID { return SheetProfit }

func (s *ProfitSheet) Variables() []VarSpec {
	return []VarSpec{solvable(VarCost), solvable(VarSelling), solvable(VarMargin), solvable(VarMarkup)}
}

func (s *ProfitSheet) field(v Variable) *float64 {
	switch v {
	case VarCost:
		return &s.P.Cost
	case VarSelling:
		return &s.P.Selling
	case VarMargin:
		return &s.P.Margin
	case VarMarkup:
		return &s.P.Markup
	}
	return nil
}

func (s *ProfitSheet) Get(v Variable) (float64, error) {
	f := s.field(v)
	if f == nil {
		return 0, domain.ErrInvalidInput
	}
	return *f, nil
}

func (s *ProfitSheet) Set(v Variable, x float64) error {
	f := s.field(v)
	if f == nil {
		return domain.ErrInvalidInput
	}
	*f = x
	return nil
}

// Solve derives selling price and cost from the margin when one is set,
// otherwise from the markup.
func (s *ProfitSheet) Solve(v Variable) (float64, error) {
	switch v {
	case VarMargin:
		return engine.Margin(s.P)
	case VarMarkup:
		return engine.Markup(s.P)
	case VarSelling:
		if s.P.Margin != 0 {
			return engine.SellingFromMargin(s.P)
		}
		return engine.SellingFromMarkup(s.P), nil
	case VarCost:
		if s.P.Margin != 0 {
			return engine.CostFromMargin(s.P), nil
		}
		return engine.CostFromMarkup(s.P)
	}
	return 0, domain.ErrInvalidInput
}

func (s *ProfitSheet) Requires(Variable) Feature { return FeatureProfit }

func (s *ProfitSheet) Reset() { s.P = domain.ProfitMargin{} }
