package calculator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"fxba/domain"
)

// press feeds keys at a fixed time.
func press(c *Calculator, now uint64, keys ...KeyEvent) {
	for _, k := range keys {
		c.HandleEvent(k, now)
	}
}

// enterValue types s and stores it into v.
func enterValue(c *Calculator, s string, v Variable) {
	press(c, 0, Number(s)...)
	press(c, 0, Var(v))
}

func TestNew_Defaults(t *testing.T) {
	c := New(ModelProfessional)

	tvm := c.TVM()
	if tvm.PY != 12 || tvm.CY != 12 || tvm.Mode != domain.ModeEnd {
		t.Errorf("TVM defaults = %+v", tvm)
	}
	bond := c.Sheet(SheetBond).(*BondSheet).Input
	if bond.Redemption != 100 || bond.Frequency != 2 || bond.DayCount != domain.DayCountACTACT {
		t.Errorf("bond defaults = %+v", bond)
	}
	depr := c.Sheet(SheetDepreciation).(*DepreciationSheet)
	if depr.Input.DBRate != 200 || depr.Input.StartMonth != 1 || depr.Method != domain.MethodSL {
		t.Errorf("depreciation defaults = %+v", depr)
	}
	if c.ActiveID() != SheetTVM || c.State() != StateInput || c.Display() != "0" {
		t.Errorf("initial sheet %s, state %s, display %q", c.ActiveID(), c.State(), c.Display())
	}
}

func TestComputePayment(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "360", VarN)
	enterValue(c, "5.4", VarIY)
	enterValue(c, "250000", VarPV)
	enterValue(c, "0", VarFV)
	press(c, 0, Key(KeyCompute), Var(VarPMT))

	if c.State() != StateResult {
		t.Fatalf("state = %s; want RESULT", c.State())
	}
	if got := c.Display(); got != "-1403.82698" {
		t.Errorf("display = %q; want -1403.82698", got)
	}
	if pmt := c.TVM().PMT; math.Abs(pmt+1403.8269796740421) > 1e-9 {
		t.Errorf("stored PMT = %v", pmt)
	}
}

func TestComputeError_PreservesRegisters(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "10", VarN)
	enterValue(c, "1000", VarPV)
	enterValue(c, "-100", VarPMT)
	enterValue(c, "1000", VarFV)
	press(c, 0, Number("42")...)
	press(c, 0, Key(KeySto), Digit(7))
	before := c.TVM()

	press(c, 0, Key(KeyCompute), Var(VarIY))

	if c.State() != StateError {
		t.Fatalf("state = %s; want ERROR", c.State())
	}
	if !errors.Is(c.Err(), domain.ErrIterationLimit) {
		t.Errorf("Err() = %v; want ErrIterationLimit", c.Err())
	}
	if c.Display() != "No Converge" {
		t.Errorf("display = %q", c.Display())
	}
	if c.TVM() != before {
		t.Errorf("registers changed: %+v -> %+v", before, c.TVM())
	}

	// The next key only leaves the error.
	press(c, 0, Digit(5))
	if c.State() != StateInput || c.Display() != "0" {
		t.Errorf("after key: state %s, display %q", c.State(), c.Display())
	}
	mem := c.Memory()
	if c.TVM() != before || mem.Recall(7) != 42 {
		t.Error("leaving the error state lost data")
	}
}

func TestNonFiniteResultIsOverflow(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "1", VarPY)
	enterValue(c, "1", VarCY)
	enterValue(c, "1000000", VarN)
	enterValue(c, "100", VarIY)
	enterValue(c, "1", VarPV)
	press(c, 0, Key(KeyCompute), Var(VarFV))

	if !errors.Is(c.Err(), domain.ErrOverflow) {
		t.Fatalf("Err() = %v; want ErrOverflow", c.Err())
	}
	if c.Display() != "Overflow" {
		t.Errorf("display = %q", c.Display())
	}
	if c.TVM().FV != 0 {
		t.Errorf("FV = %v; want untouched 0", c.TVM().FV)
	}
}

func TestStoreAndRecall(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, Number("12.5")...)
	press(c, 0, Key(KeySto))
	if c.State() != StateWaitSto {
		t.Fatalf("state = %s; want STO", c.State())
	}
	press(c, 100, Digit(3))
	mem := c.Memory()
	if c.State() != StateResult || mem.Recall(3) != 12.5 {
		t.Fatalf("after STO 3: state %s, M3 %v", c.State(), mem.Recall(3))
	}

	press(c, 200, Key(KeyClear), Key(KeyRcl), Digit(3))
	if c.Display() != "12.5" {
		t.Errorf("RCL 3 display = %q", c.Display())
	}
}

func TestMemoryIdempotence(t *testing.T) {
	c := New(ModelStandard)
	for i := 0; i < domain.MemorySlots; i++ {
		v := float64(i)*1.5 - 4
		press(c, 0, Key(KeyClear))
		press(c, 0, Number(FormatNumber(v))...)
		press(c, 0, Key(KeySto), Digit(i))
	}
	for i := 0; i < domain.MemorySlots; i++ {
		mem := c.Memory()
		if got, want := mem.Recall(i), float64(i)*1.5-4; got != want {
			t.Errorf("M%d = %v; want %v", i, got, want)
		}
	}
}

func TestWaitTimeout(t *testing.T) {
	c := New(ModelStandard)
	press(c, 1000, Number("42")...)
	press(c, 1000, Key(KeySto))

	if c.CheckTimeout(4999) {
		t.Fatal("timed out before the deadline")
	}
	if !c.CheckTimeout(5000) {
		t.Fatal("did not time out at the deadline")
	}
	if c.State() != StateInput || c.Display() != "42" {
		t.Errorf("after timeout: state %s, display %q", c.State(), c.Display())
	}

	// A late digit is ordinary input, not a slot.
	press(c, 1000, Key(KeyRcl))
	press(c, 9000, Digit(5))
	mem := c.Memory()
	if c.Display() != "425" || mem.SumAll() != 0 {
		t.Errorf("late digit: display %q, memory %v", c.Display(), c.Memory())
	}
}

func TestWaitCancelledByOtherKey(t *testing.T) {
	c := New(ModelStandard, WithTimeout(10))
	press(c, 0, Number("7")...)
	press(c, 0, Key(KeySto), Key(KeyCompute))
	if c.State() != StateInput {
		t.Errorf("state = %s; want INPUT", c.State())
	}
	mem := c.Memory()
	if mem.SumAll() != 0 {
		t.Error("cancelled STO wrote memory")
	}
}

func TestStoreIgnoredWhileComputeArmed(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "360", VarN)
	enterValue(c, "5.4", VarIY)
	enterValue(c, "250000", VarPV)
	press(c, 0, Key(KeyCompute), Key(KeySto))
	if c.State() != StateCompute {
		t.Fatalf("state = %s; want COMPUTE", c.State())
	}
	press(c, 0, Key(KeyRcl), Var(VarPMT))
	if c.State() != StateResult || c.Display() != "-1403.82698" {
		t.Errorf("state %s, display %q; want the PMT result", c.State(), c.Display())
	}
}

func TestForecastNeedsProfessional(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, SwitchTo(SheetStatistics))
	for _, p := range [][2]string{{"1", "3"}, {"2", "5"}, {"3", "7"}} {
		enterValue(c, p[0], VarX)
		enterValue(c, p[1], VarY)
		press(c, 0, Key(KeyDown))
	}
	enterValue(c, "10", VarXP)

	press(c, 0, Key(KeyCompute), Var(VarSumXY))
	if c.Display() != "34" {
		t.Fatalf("SUMXY = %q; want 34", c.Display())
	}
	press(c, 0, Key(KeyCompute), Var(VarYP))
	if !errors.Is(c.Err(), domain.ErrFeatureUnavailable) {
		t.Fatalf("Y' on Standard: Err() = %v", c.Err())
	}

	press(c, 0, Key(KeyClear), Key(KeyModel), Key(KeyCompute), Var(VarYP))
	if c.State() != StateResult || c.Display() != "21" {
		t.Errorf("Y' on Professional: state %s, display %q", c.State(), c.Display())
	}
}

func TestBufferEditing(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, Key(KeyDecimal), Digit(5), Key(KeyDecimal))
	if c.Display() != "0.5" {
		t.Fatalf("display = %q; want 0.5", c.Display())
	}
	press(c, 0, Key(KeyBackspace), Key(KeyBackspace), Key(KeyDecimal), Digit(2))
	if c.Display() != "0.2" {
		t.Errorf("after backspace: %q; want 0.2", c.Display())
	}
	press(c, 0, Key(KeySign))
	if c.Display() != "-0.2" {
		t.Errorf("after sign: %q", c.Display())
	}
	press(c, 0, Key(KeyClear))
	if c.Display() != "0" {
		t.Errorf("after CE: %q", c.Display())
	}
}

func TestBufferLimit(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, Number(strings.Repeat("9", 20))...)
	if got := len(c.Display()); got != maxInputLen {
		t.Errorf("display length = %d; want %d", got, maxInputLen)
	}
}

func TestDigitAfterResultStartsFresh(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "360", VarN)
	press(c, 0, Digit(1), Digit(2))
	if c.Display() != "12" {
		t.Errorf("display = %q; want 12", c.Display())
	}
}

func TestShowVariableWithEmptyBuffer(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "360", VarN)
	press(c, 0, Key(KeyClear), Var(VarN))
	if c.Display() != "360" || c.TVM().N != 360 {
		t.Errorf("display %q, N %v", c.Display(), c.TVM().N)
	}
}

func TestClearWorksheet_KeepsSettings(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "1", VarPY)
	enterValue(c, "10", VarN)
	press(c, 0, Key(KeyMode), Key(KeyClearWorksheet))

	tvm := c.TVM()
	if tvm.N != 0 || tvm.PY != 1 || tvm.Mode != domain.ModeBegin {
		t.Errorf("after CLR WORK: %+v", tvm)
	}
}

func TestOutputVariableRejectsInput(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, SwitchTo(SheetCashFlow))
	enterValue(c, "5", VarNPV)
	if !errors.Is(c.Err(), domain.ErrInvalidInput) || c.Display() != "Bad Input" {
		t.Errorf("Err() = %v, display %q", c.Err(), c.Display())
	}
}

func TestCashFlowSheet_ViaKeys(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, SwitchTo(SheetCashFlow))
	enterValue(c, "-100", VarCF0)
	enterValue(c, "60", VarC)
	press(c, 0, Key(KeyDown))
	enterValue(c, "60", VarC)
	enterValue(c, "10", VarI)

	press(c, 0, Key(KeyCompute), Var(VarNPV))
	if c.State() != StateResult || !strings.HasPrefix(c.Display(), "4.13223") {
		t.Fatalf("NPV: state %s, display %q", c.State(), c.Display())
	}

	press(c, 0, Key(KeyCompute), Var(VarNFV))
	if !errors.Is(c.Err(), domain.ErrFeatureUnavailable) || c.Display() != "Error" {
		t.Fatalf("NFV on Standard: Err() %v, display %q", c.Err(), c.Display())
	}

	press(c, 0, Key(KeyClear), Key(KeyModel), Key(KeyCompute), Var(VarNFV))
	if c.State() != StateResult || !strings.HasPrefix(c.Display(), "5") {
		t.Errorf("NFV on Professional: state %s, display %q", c.State(), c.Display())
	}

	list := c.Sheet(SheetCashFlow).(*CashFlowSheet).List
	if list.CF0 != -100 || list.Len() != 2 {
		t.Errorf("list = %+v", list)
	}
}

func TestDepreciationGatedByMethod(t *testing.T) {
	c := New(ModelStandard)
	press(c, 0, SwitchTo(SheetDepreciation))
	enterValue(c, "10000", VarCST)
	enterValue(c, "1000", VarSAL)
	enterValue(c, "5", VarLIF)

	press(c, 0, Key(KeyCompute), Var(VarDEP))
	if c.Display() != "1800" {
		t.Fatalf("SL DEP = %q; want 1800", c.Display())
	}

	enterValue(c, "2", VarMETH)
	press(c, 0, Key(KeyClear), Var(VarDEP))
	if !errors.Is(c.Err(), domain.ErrFeatureUnavailable) {
		t.Errorf("DB on Standard: Err() = %v", c.Err())
	}
}

func TestWorksheetSwitchKeepsRegisters(t *testing.T) {
	c := New(ModelStandard)
	enterValue(c, "250000", VarPV)
	press(c, 0, SwitchTo(SheetBond), SwitchTo(SheetStatistics), SwitchTo(SheetTVM))
	if c.TVM().PV != 250000 {
		t.Errorf("PV = %v after switching sheets", c.TVM().PV)
	}
	if c.Display() != "0" {
		t.Errorf("display = %q; want cleared", c.Display())
	}
}

func TestIndicators(t *testing.T) {
	c := New(ModelProfessional)
	press(c, 0, Key(KeyCompute))
	got := strings.Join(c.Indicators(), " ")
	if got != "PRO TVM END CPT" {
		t.Errorf("indicators = %q", got)
	}
}
