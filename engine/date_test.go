package engine

import (
	"errors"
	"testing"

	"fxba/domain"
)

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name   string
		d1, d2 int
		conv   domain.DayCount
		want   int
	}{
		{"actual, leap year", 20240101, 20241231, domain.DayCountACTACT, 365},
		{"actual/360 counts calendar days", 20240101, 20240301, domain.DayCountACT360, 60},
		{"30/360 month end", 20230228, 20230331, domain.DayCount30360, 33},
		{"30/360 both month ends", 20230131, 20230331, domain.DayCount30360, 60},
		{"30/360 full year", 20230115, 20240115, domain.DayCount30360, 360},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := DaysBetween(tc.d1, tc.d2, tc.conv); got != tc.want {
				t.Errorf("DaysBetween(%d, %d) = %d; want %d", tc.d1, tc.d2, got, tc.want)
			}
		})
	}
}

func TestDateDiff_FebruaryEndOfMonth(t *testing.T) {
	if got := DateDiff(2023, 2, 28, 2023, 3, 31, true); got != 30 {
		t.Errorf("30/360 Feb 28 to Mar 31 = %d; want 30", got)
	}
	if got := DateDiff(2023, 12, 15, 2024, 3, 1, false); got != 77 {
		t.Errorf("actual = %d; want 77", got)
	}
}

func TestDaysSinceEpoch_RoundTrip(t *testing.T) {
	if got := DaysSinceEpoch(1900, 1, 1); got != 1 {
		t.Fatalf("1900-01-01 = %d; want 1", got)
	}
	for _, date := range []int{19000101, 19600229, 20000229, 20241231, 20991231} {
		y, m, d := SplitDate(date)
		gy, gm, gd := FromDaysSinceEpoch(DaysSinceEpoch(y, m, d))
		if JoinDate(gy, gm, gd) != date {
			t.Errorf("round trip of %d gave %d", date, JoinDate(gy, gm, gd))
		}
	}
}

func TestDayOfWeek(t *testing.T) {
	tests := []struct {
		y, m, d int
		want    string
	}{
		{1900, 1, 1, "MON"},
		{2024, 1, 1, "MON"},
		{2024, 7, 4, "THU"},
		{2000, 2, 29, "TUE"},
	}
	for _, tc := range tests {
		if got := DayName(DayOfWeek(tc.y, tc.m, tc.d)); got != tc.want {
			t.Errorf("%d-%02d-%02d = %s; want %s", tc.y, tc.m, tc.d, got, tc.want)
		}
	}
}

func TestValidDate(t *testing.T) {
	if ValidDate(2023, 2, 29) {
		t.Error("2023-02-29 should be invalid")
	}
	if !ValidDate(2024, 2, 29) {
		t.Error("2024-02-29 should be valid")
	}
	if ValidDate(1899, 12, 31) || ValidDate(2100, 1, 1) {
		t.Error("years outside 1900..2099 should be invalid")
	}
}

func TestParseKeyedDate(t *testing.T) {
	y, m, d, err := ParseKeyedDate(12.252024)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if y != 2024 || m != 12 || d != 25 {
		t.Errorf("got %d-%d-%d; want 2024-12-25", y, m, d)
	}
	if _, _, _, err := ParseKeyedDate(2.302024); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("Feb 30: got %v; want ErrInvalidInput", err)
	}
}

func TestDateWorksheet(t *testing.T) {
	w := domain.DateCalc{DT1: 1.012024, DT2: 4.102024}
	dbd, err := SolveDBD(w)
	if err != nil {
		t.Fatalf("SolveDBD: %v", err)
	}
	if dbd != 100 {
		t.Errorf("DBD = %v; want 100", dbd)
	}

	w.DBD = 100
	dt2, err := SolveDT2(w)
	if err != nil {
		t.Fatalf("SolveDT2: %v", err)
	}
	assertClose(t, "DT2", dt2, 4.102024, 1e-9)

	dt1, err := SolveDT1(w)
	if err != nil {
		t.Fatalf("SolveDT1: %v", err)
	}
	assertClose(t, "DT1", dt1, 1.012024, 1e-9)
}
