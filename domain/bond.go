package domain

// DayCount is the convention used to count days between two dates.
type DayCount int

const (
	DayCountACTACT DayCount = iota
	DayCount30360
	DayCountACT360
	DayCountACT365
)

func (d DayCount) String() string {
	switch d {
	case DayCount30360:
		return "30/360"
	case DayCountACT360:
		return "ACT/360"
	case DayCountACT365:
		return "ACT/365"
	default:
		return "ACT/ACT"
	}
}

// ParseDayCount accepts the labels produced by String.
func ParseDayCount(s string) (DayCount, bool) {
	switch s {
	case "ACT/ACT", "ACT", "":
		return DayCountACTACT, true
	case "30/360", "360":
		return DayCount30360, true
	case "ACT/360":
		return DayCountACT360, true
	case "ACT/365":
		return DayCountACT365, true
	}
	return DayCountACTACT, false
}

// BondInput describes a bond between settlement and maturity.
// Dates are YYYYMMDD integers, CouponRate is in percent and Redemption is
// quoted per 100 of par.
type BondInput struct {
	Settlement int      `json:"settlement"`
	Maturity   int      `json:"maturity"`
	CouponRate float64  `json:"coupon_rate"`
	Redemption float64  `json:"redemption"`
	Frequency  int      `json:"frequency"`
	DayCount   DayCount `json:"day_count"`
}

// NewBondInput returns the worksheet defaults: semiannual, ACT, par redemption.
func NewBondInput() BondInput {
	return BondInput{Redemption: 100, Frequency: 2, DayCount: DayCountACTACT}
}

// BondResult is always filled as a whole once price or yield is known.
type BondResult struct {
	Price            float64 `json:"price"`
	Yield            float64 `json:"yield"`
	AccruedInterest  float64 `json:"accrued_interest"`
	DirtyPrice       float64 `json:"dirty_price"`
	Duration         float64 `json:"duration"`
	ModifiedDuration float64 `json:"modified_duration"`
}
