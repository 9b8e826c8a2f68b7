package domain

// PaymentMode selects ordinary annuity (END) or annuity due (BEGIN).
type PaymentMode int

const (
	ModeEnd PaymentMode = iota
	ModeBegin
)

func (m PaymentMode) String() string {
	if m == ModeBegin {
		return "BGN"
	}
	return "END"
}

// TVM holds the five time-value-of-money registers plus their settings.
// IY is the nominal annual rate in percent.
type TVM struct {
	N    float64     `json:"n"`
	IY   float64     `json:"iy"`
	PV   float64     `json:"pv"`
	PMT  float64     `json:"pmt"`
	FV   float64     `json:"fv"`
	PY   float64     `json:"py"`
	CY   float64     `json:"cy"`
	Mode PaymentMode `json:"mode"`
}

// TVMUnknown names the register a solve produces.
type TVMUnknown string

const (
	SolveN   TVMUnknown = "N"
	SolveIY  TVMUnknown = "I/Y"
	SolvePV  TVMUnknown = "PV"
	SolvePMT TVMUnknown = "PMT"
	SolveFV  TVMUnknown = "FV"
)

// NewTVM returns registers with monthly payments and compounding, END mode.
func NewTVM() TVM {
	return TVM{PY: 12, CY: 12, Mode: ModeEnd}
}

// Reset zeroes the five registers and keeps P/Y, C/Y and the mode.
func (t *TVM) Reset() {
	t.N, t.IY, t.PV, t.PMT, t.FV = 0, 0, 0, 0, 0
}

// AmortizationPeriod is the split of one payment.
type AmortizationPeriod struct {
	Period    int     `json:"period"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}

// AmortizationRange totals payments P1 through P2 inclusive.
type AmortizationRange struct {
	Start     int     `json:"start"`
	End       int     `json:"end"`
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Balance   float64 `json:"balance"`
}
