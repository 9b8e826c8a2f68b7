package engine

import (
	"math"

	"fxba/domain"
)

var dayNames = [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}

// DayOfWeek returns 0 for Sunday through 6 for Saturday.
func DayOfWeek(year, month, day int) int {
	// day 1 (1900-01-01) was a Monday
	days := DaysSinceEpoch(year, month, day)
	return days % 7
}

func DayName(dow int) string {
	if dow < 0 || dow >= len(dayNames) {
		return "???"
	}
	return dayNames[dow]
}

// DateDiff counts days from the first date to the second. With use360 the
// US 30/360 rules apply, including the February end-of-month adjustment.
func DateDiff(y1, m1, d1, y2, m2, d2 int, use360 bool) int {
	if !use360 {
		return DaysSinceEpoch(y2, m2, d2) - DaysSinceEpoch(y1, m1, d1)
	}
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	if m1 == 2 && d1 == DaysInMonth(y1, 2) {
		d1 = 30
	}
	if m2 == 2 && d2 == DaysInMonth(y2, 2) && d1 == 30 {
		d2 = 30
	}
	return 360*(y2-y1) + 30*(m2-m1) + (d2 - d1)
}

// AddDays moves a date by a signed number of calendar days.
func AddDays(year, month, day, days int) (int, int, int) {
	return FromDaysSinceEpoch(DaysSinceEpoch(year, month, day) + days)
}

// ParseKeyedDate decodes a MM.DDYYYY value as typed on the keypad.
func ParseKeyedDate(value float64) (year, month, day int, err error) {
	month = int(value)
	frac := int64((value-float64(month))*1_000_000 + 0.5)
	day = int(frac / 10000)
	year = int(frac % 10000)
	if !ValidDate(year, month, day) {
		return 0, 0, 0, domain.ErrInvalidInput
	}
	return year, month, day, nil
}

// KeyedDate encodes a date as MM.DDYYYY.
func KeyedDate(year, month, day int) float64 {
	return float64(month) + float64(day*10000+year)/1_000_000
}

// SolveDBD returns the days between DT1 and DT2.
func SolveDBD(d domain.DateCalc) (float64, error) {
	y1, m1, d1, err := ParseKeyedDate(d.DT1)
	if err != nil {
		return 0, err
	}
	y2, m2, d2, err := ParseKeyedDate(d.DT2)
	if err != nil {
		return 0, err
	}
	return float64(DateDiff(y1, m1, d1, y2, m2, d2, d.Use360)), nil
}

// SolveDT2 returns DT1 moved forward by DBD calendar days.
func SolveDT2(d domain.DateCalc) (float64, error) {
	return shiftKeyedDate(d.DT1, d.DBD)
}

// SolveDT1 returns DT2 moved back by DBD calendar days.
func SolveDT1(d domain.DateCalc) (float64, error) {
	return shiftKeyedDate(d.DT2, -d.DBD)
}

func shiftKeyedDate(keyed, days float64) (float64, error) {
	y, m, dd, err := ParseKeyedDate(keyed)
	if err != nil {
		return 0, err
	}
	ny, nm, nd := AddDays(y, m, dd, int(math.Round(days)))
	if !ValidDate(ny, nm, nd) {
		return 0, domain.ErrInvalidInput
	}
	return KeyedDate(ny, nm, nd), nil
}
