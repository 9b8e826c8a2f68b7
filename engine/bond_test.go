package engine

import (
	"errors"
	"testing"

	"fxba/domain"
)

func tenYearBond() domain.BondInput {
	in := domain.NewBondInput()
	in.Settlement = 20240101
	in.Maturity = 20340101
	in.CouponRate = 6
	in.DayCount = domain.DayCount30360
	return in
}

func TestBondPrice_WholePeriods(t *testing.T) {
	in := tenYearBond()
	assertClose(t, "periods", CouponPeriods(in), 20, 1e-12)
	assertClose(t, "price", BondPrice(in, 5), 107.79458, 1e-4)
	assertClose(t, "accrued", AccruedInterest(in), 0, 1e-12)
}

func TestBondPrice_PartPeriod(t *testing.T) {
	in := tenYearBond()
	in.Settlement = 20240201
	assertClose(t, "periods", CouponPeriods(in), 19.83333, 1e-5)
	assertClose(t, "price", BondPrice(in, 5), 107.74425, 1e-4)
	assertClose(t, "accrued", AccruedInterest(in), 2.5, 1e-6)
}

func TestBondPrice_AtPar(t *testing.T) {
	in := tenYearBond()
	assertClose(t, "par price", BondPrice(in, in.CouponRate), 100, 1e-9)
}

func TestBondYield_RoundTrip(t *testing.T) {
	for _, yield := range []float64{1.5, 5, 6, 9.25} {
		in := tenYearBond()
		price := BondPrice(in, yield)
		got, err := BondYield(in, price)
		if err != nil {
			t.Fatalf("yield %v: %v", yield, err)
		}
		assertClose(t, "yield", got, yield, 1e-6)
	}
}

func TestDuration(t *testing.T) {
	in := tenYearBond()
	assertClose(t, "macaulay", MacaulayDuration(in, 5), 7.761794, 1e-5)
	assertClose(t, "modified", ModifiedDuration(in, 5), 7.572482, 1e-5)
}

func TestCalculateBond(t *testing.T) {
	in := tenYearBond()
	priced, err := CalculateBond(in, 0, 5)
	if err != nil {
		t.Fatalf("price: %v", err)
	}
	solved, err := CalculateBond(in, priced.Price, 0)
	if err != nil {
		t.Fatalf("yield: %v", err)
	}
	assertClose(t, "yield", solved.Yield, 5, 1e-6)
	assertClose(t, "dirty", priced.DirtyPrice, priced.Price+priced.AccruedInterest, 1e-12)
}

func TestValidateBond(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.BondInput)
	}{
		{"maturity before settlement", func(in *domain.BondInput) { in.Maturity = 20200101 }},
		{"same day", func(in *domain.BondInput) { in.Maturity = in.Settlement }},
		{"bad date", func(in *domain.BondInput) { in.Settlement = 20230230 }},
		{"year out of range", func(in *domain.BondInput) { in.Maturity = 21000101 }},
		{"bad frequency", func(in *domain.BondInput) { in.Frequency = 3 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tenYearBond()
			tc.mutate(&in)
			if _, err := CalculateBond(in, 0, 5); !errors.Is(err, domain.ErrInvalidInput) {
				t.Errorf("got %v; want ErrInvalidInput", err)
			}
		})
	}
}
