package engine

import (
	"errors"
	"testing"

	"fxba/domain"
)

func mortgage() domain.TVM {
	t := domain.TVM{N: 360, IY: 5.4, PV: 250000, PY: 12, CY: 12}
	t.PMT = Payment(t)
	return t
}

func TestAmortizePeriod_FirstPayment(t *testing.T) {
	row, err := AmortizePeriod(mortgage(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "interest", row.Interest, 1125.00, 0.005)
	assertClose(t, "principal", row.Principal, 278.83, 0.005)
	assertClose(t, "balance", row.Balance, 249721.17, 0.005)
}

func TestAmortization_PrincipalSumsToPV(t *testing.T) {
	loan := mortgage()
	var sum float64
	for p := 1; p <= 360; p++ {
		row, err := AmortizePeriod(loan, p)
		if err != nil {
			t.Fatalf("period %d: %v", p, err)
		}
		sum += row.Principal
	}
	assertClose(t, "sum of principal", sum, loan.PV, 1e-4)
}

func TestAmortizeRange_FirstYear(t *testing.T) {
	r, err := AmortizeRange(mortgage(), 1, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertClose(t, "principal", r.Principal, 3429.99, 0.005)
	assertClose(t, "interest", r.Interest, 13415.93, 0.005)
	assertClose(t, "balance", r.Balance, 246570.01, 0.005)
}

func TestAmortizeRange_MatchesPeriodSum(t *testing.T) {
	loan := mortgage()
	r, _ := AmortizeRange(loan, 25, 48)
	schedule, err := AmortizationSchedule(loan, 25, 48)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var prn, interest float64
	for _, row := range schedule {
		prn += row.Principal
		interest += row.Interest
	}
	assertClose(t, "principal", r.Principal, prn, 1e-6)
	assertClose(t, "interest", r.Interest, interest, 1e-6)
}

func TestAmortize_OutOfRange(t *testing.T) {
	loan := mortgage()
	if _, err := AmortizePeriod(loan, 0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("period 0: got %v", err)
	}
	if _, err := AmortizePeriod(loan, 361); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("period 361: got %v", err)
	}
	if _, err := AmortizeRange(loan, 10, 5); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("reversed range: got %v", err)
	}
}

func TestBalance_ZeroRate(t *testing.T) {
	if got := Balance(4, 0, 1000, -100); got != 600 {
		t.Errorf("Balance = %v; want 600", got)
	}
}
