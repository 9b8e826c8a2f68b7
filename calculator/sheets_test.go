package calculator

import (
	"errors"
	"math"
	"strings"
	"testing"

	"fxba/domain"
)

func mustSet(t *testing.T, ws Worksheet, v Variable, x float64) {
	t.Helper()
	if err := ws.Set(v, x); err != nil {
		t.Fatalf("Set(%s, %v): %v", v, x, err)
	}
}

func mustSolve(t *testing.T, ws Worksheet, v Variable) float64 {
	t.Helper()
	x, err := ws.Solve(v)
	if err != nil {
		t.Fatalf("Solve(%s): %v", v, err)
	}
	return x
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestTVMSheet_Amortization(t *testing.T) {
	s := NewTVMSheet()
	mustSet(t, s, VarN, 360)
	mustSet(t, s, VarIY, 5.4)
	mustSet(t, s, VarPV, 250000)
	mustSet(t, s, VarPMT, mustSolve(t, s, VarPMT))
	mustSet(t, s, VarP2, 12)

	if got := mustSolve(t, s, VarBAL); !near(got, 246570.01, 0.005) {
		t.Errorf("BAL = %v", got)
	}
	if got := mustSolve(t, s, VarINT); !near(got, 13415.93, 0.005) {
		t.Errorf("INT = %v", got)
	}
	if err := s.Set(VarPY, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("P/Y 0: got %v", err)
	}
}

func TestBondSheet(t *testing.T) {
	s := NewBondSheet()
	mustSet(t, s, VarSDT, 1.012024)
	mustSet(t, s, VarRDT, 1.012034)
	mustSet(t, s, VarCPN, 6)
	mustSet(t, s, VarDAY, float64(domain.DayCount30360))
	mustSet(t, s, VarYLD, 5)

	price := mustSolve(t, s, VarPRI)
	if !near(price, 107.79458, 1e-4) {
		t.Errorf("PRI = %v", price)
	}
	mustSet(t, s, VarPRI, price)
	mustSet(t, s, VarYLD, 0)
	if y := mustSolve(t, s, VarYLD); !near(y, 5, 1e-6) {
		t.Errorf("YLD = %v", y)
	}
	if got, _ := s.Get(VarSDT); !near(got, 1.012024, 1e-9) {
		t.Errorf("SDT reads back as %v", got)
	}
	if err := s.Set(VarFRQ, 3); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("FRQ 3: got %v", err)
	}
	if err := s.Set(VarSDT, 2.302024); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Feb 30: got %v", err)
	}
}

func TestStatisticsSheet(t *testing.T) {
	s := NewStatisticsSheet()
	for _, p := range [][2]float64{{1, 3}, {2, 5}, {3, 7}, {4, 9}} {
		mustSet(t, s, VarX, p[0])
		mustSet(t, s, VarY, p[1])
		s.Move(1)
	}
	if n := mustSolve(t, s, VarCount); n != 4 {
		t.Fatalf("n = %v", n)
	}
	if a, b := mustSolve(t, s, VarA), mustSolve(t, s, VarB); !near(a, 1, 1e-9) || !near(b, 2, 1e-9) {
		t.Errorf("fit a=%v b=%v; want 1, 2", a, b)
	}
	mustSet(t, s, VarXP, 10)
	if y := mustSolve(t, s, VarYP); !near(y, 21, 1e-9) {
		t.Errorf("Y' = %v", y)
	}

	s.Move(-2)
	if err := s.Delete(); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if s.Data.Len() != 3 || s.Data.Points[2].X != 4 {
		t.Errorf("after delete: %+v", s.Data.Points)
	}
}

func TestStatisticsSheet_SummaryRegisters(t *testing.T) {
	s := NewStatisticsSheet()
	for _, p := range [][2]float64{{1, 3}, {2, 5}, {4, 9}} {
		mustSet(t, s, VarX, p[0])
		mustSet(t, s, VarY, p[1])
		s.Move(1)
	}
	mustSet(t, s, VarX, 8)

	want := map[Variable]float64{
		VarSumX:  15,
		VarSumX2: 85,
		VarMinX:  1,
		VarMaxX:  8,
		VarSumY:  17,
		VarSumY2: 115,
		VarSumXY: 49,
	}
	for v, expected := range want {
		if got := mustSolve(t, s, v); !near(got, expected, 1e-9) {
			t.Errorf("%s = %v; want %v", v, got, expected)
		}
		if _, ok := FindVariable(s, strings.ToLower(string(v))); !ok {
			t.Errorf("%s is not reachable by key", v)
		}
	}
}

func TestStatisticsSheet_ForecastGated(t *testing.T) {
	s := NewStatisticsSheet()
	if s.Requires(VarXP) != FeatureForecast || s.Requires(VarYP) != FeatureForecast {
		t.Error("prediction should need the forecast feature")
	}
	if s.Requires(VarA) != FeatureStatistics || s.Requires(VarSumXY) != FeatureStatistics {
		t.Error("summary registers should need only statistics")
	}
}

func TestBreakevenSheet(t *testing.T) {
	s := NewBreakevenSheet()
	mustSet(t, s, VarFC, 10000)
	mustSet(t, s, VarVC, 5)
	mustSet(t, s, VarP, 15)
	if q := mustSolve(t, s, VarQ); !near(q, 1000, 1e-9) {
		t.Errorf("Q = %v", q)
	}
	if s.Requires(VarQ) != FeatureBreakeven {
		t.Error("breakeven should be gated")
	}
}

func TestProfitSheet(t *testing.T) {
	s := NewProfitSheet()
	mustSet(t, s, VarCost, 75)
	mustSet(t, s, VarSelling, 100)
	if m := mustSolve(t, s, VarMargin); !near(m, 25, 1e-9) {
		t.Errorf("MAR = %v", m)
	}
	mustSet(t, s, VarSelling, 0)
	mustSet(t, s, VarMarkup, 20)
	if sel := mustSolve(t, s, VarSelling); !near(sel, 90, 1e-9) {
		t.Errorf("SEL from markup = %v", sel)
	}
}

func TestDateSheet(t *testing.T) {
	s := NewDateSheet()
	if d := mustSolve(t, s, VarDBD); d != 365 {
		t.Errorf("default DBD = %v; want 365", d)
	}
	mustSet(t, s, VarDBD, 100)
	if dt2 := mustSolve(t, s, VarDT2); !near(dt2, 4.102024, 1e-9) {
		t.Errorf("DT2 = %v", dt2)
	}
	mustSet(t, s, VarDT2, 7.042024)
	if dow := mustSolve(t, s, VarDOW); dow != 4 {
		t.Errorf("DOW = %v; want 4 (Thursday)", dow)
	}
	mustSet(t, s, VarDCM, 1)
	mustSet(t, s, VarDT1, 1.312024)
	mustSet(t, s, VarDT2, 3.312024)
	if d := mustSolve(t, s, VarDBD); d != 60 {
		t.Errorf("30/360 DBD = %v; want 60", d)
	}
}

func TestCashFlowSheet_Cursor(t *testing.T) {
	s := NewCashFlowSheet()
	mustSet(t, s, VarC, 10)
	s.Move(1)
	mustSet(t, s, VarC, 30)
	mustSet(t, s, VarF, 3)
	s.Move(-1)
	s.Move(1)
	if err := s.Insert(); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	mustSet(t, s, VarC, 20)

	want := []domain.CashFlow{{Amount: 10, Count: 1}, {Amount: 20, Count: 1}, {Amount: 30, Count: 3}}
	for i, cf := range want {
		if s.List.Flows[i] != cf {
			t.Errorf("flow %d = %+v; want %+v", i, s.List.Flows[i], cf)
		}
	}
	if err := s.Set(VarF, 2); err != nil {
		t.Fatalf("Set F: %v", err)
	}
	s.Move(5)
	if err := s.Set(VarF, 2); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("F past the end: got %v", err)
	}
}
