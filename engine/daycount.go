package engine

import (
	"time"

	"fxba/domain"
)

const (
	MinYear = 1900
	MaxYear = 2099
)

// dayEpoch makes 1900-01-01 day 1.
var dayEpoch = time.Date(1899, time.December, 31, 0, 0, 0, 0, time.UTC)

func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	}
	return 0
}

// ValidDate reports whether the date exists and lies in the supported range.
func ValidDate(year, month, day int) bool {
	if year < MinYear || year > MaxYear {
		return false
	}
	if month < 1 || month > 12 {
		return false
	}
	return day >= 1 && day <= DaysInMonth(year, month)
}

// SplitDate breaks a YYYYMMDD integer into its parts.
func SplitDate(yyyymmdd int) (year, month, day int) {
	return yyyymmdd / 10000, (yyyymmdd / 100) % 100, yyyymmdd % 100
}

func JoinDate(year, month, day int) int {
	return year*10000 + month*100 + day
}

// ValidYYYYMMDD validates a packed date.
func ValidYYYYMMDD(yyyymmdd int) bool {
	return ValidDate(SplitDate(yyyymmdd))
}

// DaysSinceEpoch counts days from 1899-12-31, so 1900-01-01 is 1.
func DaysSinceEpoch(year, month, day int) int {
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	return int(t.Sub(dayEpoch).Hours() / 24)
}

// FromDaysSinceEpoch is the inverse of DaysSinceEpoch.
func FromDaysSinceEpoch(days int) (year, month, day int) {
	t := dayEpoch.AddDate(0, 0, days)
	return t.Year(), int(t.Month()), t.Day()
}

// DateToDays converts a YYYYMMDD integer to its epoch day number.
func DateToDays(yyyymmdd int) int {
	return DaysSinceEpoch(SplitDate(yyyymmdd))
}

// days360 is the US 30/360 count used for bonds:
//   - d1 == 31 becomes 30
//   - d2 == 31 becomes 30 when d1 >= 30
func days360(y1, m1, d1, y2, m2, d2 int) int {
	if d1 == 31 {
		d1 = 30
	}
	if d2 == 31 && d1 >= 30 {
		d2 = 30
	}
	return 360*(y2-y1) + 30*(m2-m1) + (d2 - d1)
}

// DaysBetween counts days from d1 to d2 (YYYYMMDD) under conv. Only 30/360
// alters the count; the ACT conventions use calendar days.
func DaysBetween(d1, d2 int, conv domain.DayCount) int {
	if conv == domain.DayCount30360 {
		y1, m1, dd1 := SplitDate(d1)
		y2, m2, dd2 := SplitDate(d2)
		return days360(y1, m1, dd1, y2, m2, dd2)
	}
	return DateToDays(d2) - DateToDays(d1)
}

// DaysInYear is the year basis of a convention.
func DaysInYear(conv domain.DayCount) int {
	switch conv {
	case domain.DayCount30360, domain.DayCountACT360:
		return 360
	default:
		return 365
	}
}

// YearFraction is DaysBetween divided by the convention's basis.
func YearFraction(d1, d2 int, conv domain.DayCount) float64 {
	return float64(DaysBetween(d1, d2, conv)) / float64(DaysInYear(conv))
}
