package engine

import (
	"math"
	"testing"

	"github.com/shopspring/decimal"
)

func d(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}

// decimalClose compares with an absolute tolerance.
func decimalClose(a, b decimal.Decimal, tolerance float64) bool {
	diff := a.Sub(b).Abs()
	return diff.LessThan(decimal.NewFromFloat(tolerance))
}

func assertClose(t *testing.T, name string, got, want, tol float64) {
	t.Helper()
	if math.IsNaN(got) || math.IsInf(got, 0) {
		t.Fatalf("%s = %v; want ~%v", name, got, want)
	}
	if !decimalClose(d(got), d(want), tol) {
		t.Errorf("%s = %v; want ~%v (±%v)", name, got, want, tol)
	}
}
