package calculator

import (
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"fxba/domain"
)

const (
	significantDigits = 10
	maxInputLen       = 14
)

// FormatNumber renders a value for the display: ten significant digits
// with trailing zeros trimmed, or scientific notation for very large and
// very small magnitudes.
func FormatNumber(v float64) string {
	if v == 0 {
		return "0"
	}
	a := math.Abs(v)
	if a >= 1e10 || a < 1e-9 {
		return fmt.Sprintf("%.4e", v)
	}
	intDigits := int(math.Floor(math.Log10(a))) + 1
	return decimal.NewFromFloat(v).Round(int32(significantDigits - intDigits)).String()
}

// ParseNumber reads a display buffer. An empty buffer is 0.
func ParseNumber(s string) (float64, error) {
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return 0, nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, domain.ErrInvalidInput
	}
	f, _ := d.Float64()
	return f, nil
}
