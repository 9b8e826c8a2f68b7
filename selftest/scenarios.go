package selftest

import (
	"errors"
	"math"

	"fxba/calculator"
	"fxba/domain"
	"fxba/engine"
)

func tvm(n, iy, pv, pmt, fv, py float64, mode domain.PaymentMode) domain.TVM {
	return domain.TVM{N: n, IY: iy, PV: pv, PMT: pmt, FV: fv, PY: py, CY: py, Mode: mode}
}

func solve(t domain.TVM, unknown domain.TVMUnknown) func() (float64, error) {
	return func() (float64, error) { return engine.SolveTVM(t, unknown) }
}

func project() domain.CashFlowList {
	l := domain.CashFlowList{CF0: -50000}
	for _, a := range []float64{12000, 15000, 18000, 20000, 22000} {
		_ = l.Add(a, 1)
	}
	return l
}

func bond() domain.BondInput {
	in := domain.NewBondInput()
	in.Settlement, in.Maturity = 20240101, 20340101
	in.CouponRate = 6
	in.DayCount = domain.DayCount30360
	return in
}

func depreciate(method domain.DepreciationMethod, year int) func() (float64, error) {
	return func() (float64, error) {
		in := domain.NewDepreciationInput()
		in.Cost, in.Salvage, in.Life = 10000, 1000, 5
		r, err := engine.Depreciate(in, method, year)
		return r.Depreciation, err
	}
}

// keyed types s and stores it into v.
func keyed(c *calculator.Calculator, s string, v calculator.Variable) {
	for _, k := range calculator.Number(s) {
		c.HandleEvent(k, 0)
	}
	c.HandleEvent(calculator.Var(v), 0)
}

// Scenarios is the built-in battery.
func Scenarios() []Scenario {
	return []Scenario{
		{"tvm", "mortgage payment", -1403.83, 0.01,
			solve(tvm(360, 5.4, 250000, 0, 0, 12, domain.ModeEnd), domain.SolvePMT)},
		{"tvm", "retirement savings payment", -24392.92, 0.01,
			solve(tvm(20, 7, 0, 0, 1000000, 1, domain.ModeEnd), domain.SolvePMT)},
		{"tvm", "present value of a lump sum", -7472.58, 0.01,
			solve(tvm(5, 6, 0, 0, 10000, 1, domain.ModeEnd), domain.SolvePV)},
		{"tvm", "semiannual bond present value", -1077.95, 0.01,
			solve(tvm(20, 5, 0, 30, 1000, 2, domain.ModeEnd), domain.SolvePV)},
		{"tvm", "annuity due future value", 146136.40, 0.10,
			solve(tvm(180, 6, 0, -500, 0, 12, domain.ModeBegin), domain.SolveFV)},
		{"tvm", "car loan payment", -2027.64, 0.01,
			solve(tvm(60, 8, 100000, 0, 0, 12, domain.ModeEnd), domain.SolvePMT)},
		{"tvm", "bond yield", 6.71, 0.02,
			solve(tvm(10, 0, -950, 60, 1000, 1, domain.ModeEnd), domain.SolveIY)},
		{"tvm", "zero rate payment", -100, 1e-12,
			solve(tvm(10, 0, 1000, 0, 0, 1, domain.ModeEnd), domain.SolvePMT)},
		{"tvm", "amortized principal equals PV", 250000, 1e-4, func() (float64, error) {
			t := tvm(360, 5.4, 250000, 0, 0, 12, domain.ModeEnd)
			t.PMT = engine.Payment(t)
			r, err := engine.AmortizeRange(t, 1, 360)
			return r.Principal, err
		}},

		{"cf", "net present value", 14149.99, 0.01, func() (float64, error) {
			return engine.NPV(project(), 0.10), nil
		}},
		{"cf", "internal rate of return (%)", 19.35, 0.5, func() (float64, error) {
			irr, err := engine.IRR(project())
			return irr * 100, err
		}},
		{"cf", "NPV at IRR", 0, 1e-6, func() (float64, error) {
			irr, err := engine.IRR(project())
			return engine.NPV(project(), irr), err
		}},
		{"cf", "payback (periods)", 3.25, 1e-9, func() (float64, error) {
			return engine.Payback(project()), nil
		}},
		{"cf", "modified IRR (%)", 16.42, 0.01, func() (float64, error) {
			m, err := engine.MIRR(project(), 0.10, 0.12)
			return m * 100, err
		}},

		{"bond", "price at 5% yield", 107.79458, 1e-4, func() (float64, error) {
			return engine.BondPrice(bond(), 5), nil
		}},
		{"bond", "yield from price round trip", 5, 1e-6, func() (float64, error) {
			return engine.BondYield(bond(), engine.BondPrice(bond(), 5))
		}},
		{"bond", "modified duration", 7.572482, 1e-5, func() (float64, error) {
			return engine.ModifiedDuration(bond(), 5), nil
		}},

		{"depr", "straight line", 1800, 1e-9, depreciate(domain.MethodSL, 1)},
		{"depr", "sum of years digits, year 1", 3000, 1e-9, depreciate(domain.MethodSYD, 1)},
		{"depr", "declining balance, year 5", 296, 1e-9, depreciate(domain.MethodDB, 5)},

		{"stat", "sample standard deviation", math.Sqrt(250), 1e-9, func() (float64, error) {
			var s domain.StatData
			for _, x := range []float64{10, 20, 30, 40, 50} {
				_ = s.AddX(x)
			}
			return engine.OneVar(s).Sx, nil
		}},
		{"stat", "linear regression slope", 2, 1e-9, func() (float64, error) {
			var s domain.StatData
			for x := 1.0; x <= 5; x++ {
				_ = s.AddXY(x, 1+2*x)
			}
			reg, err := engine.Regress(s, domain.RegLinear)
			return reg.B, err
		}},

		{"date", "days in 2024", 365, 0, func() (float64, error) {
			return float64(engine.DaysBetween(20240101, 20241231, domain.DayCountACTACT)), nil
		}},
		{"profit", "breakeven quantity", 1000, 1e-9, func() (float64, error) {
			return engine.BreakevenQuantity(domain.Breakeven{FixedCost: 10000, VariableCost: 5, Price: 15})
		}},

		{"calc", "keyed mortgage payment", -1403.82698, 1e-9, func() (float64, error) {
			c := calculator.New(calculator.ModelStandard)
			keyed(c, "360", calculator.VarN)
			keyed(c, "5.4", calculator.VarIY)
			keyed(c, "250000", calculator.VarPV)
			c.HandleEvent(calculator.Key(calculator.KeyCompute), 0)
			c.HandleEvent(calculator.Var(calculator.VarPMT), 0)
			return calculator.ParseNumber(c.Display())
		}},
		{"calc", "failed I/Y keeps PV", 1000, 0, func() (float64, error) {
			c := calculator.New(calculator.ModelStandard)
			keyed(c, "10", calculator.VarN)
			keyed(c, "1000", calculator.VarPV)
			keyed(c, "-100", calculator.VarPMT)
			keyed(c, "1000", calculator.VarFV)
			c.HandleEvent(calculator.Key(calculator.KeyCompute), 0)
			c.HandleEvent(calculator.Var(calculator.VarIY), 0)
			if !errors.Is(c.Err(), domain.ErrIterationLimit) {
				return 0, errors.New("expected the solve to fail")
			}
			return c.TVM().PV, nil
		}},
		{"calc", "store and recall", 42, 0, func() (float64, error) {
			c := calculator.New(calculator.ModelStandard)
			keyed(c, "42", calculator.VarFV)
			c.HandleEvent(calculator.Key(calculator.KeySto), 0)
			c.HandleEvent(calculator.Digit(4), 10)
			c.HandleEvent(calculator.Key(calculator.KeyClear), 20)
			c.HandleEvent(calculator.Key(calculator.KeyRcl), 30)
			c.HandleEvent(calculator.Digit(4), 40)
			return calculator.ParseNumber(c.Display())
		}},
		{"calc", "memory wait expires", 0, 0, func() (float64, error) {
			c := calculator.New(calculator.ModelStandard)
			keyed(c, "42", calculator.VarFV)
			c.HandleEvent(calculator.Key(calculator.KeySto), 0)
			if !c.CheckTimeout(calculator.DefaultWaitTimeout) {
				return 0, errors.New("wait did not expire")
			}
			mem := c.Memory()
			return mem.SumAll(), nil
		}},
	}
}
