package domain

// DepreciationMethod selects one of the six schedules.
type DepreciationMethod int

const (
	MethodSL DepreciationMethod = iota
	MethodSYD
	MethodDB
	MethodDBSL
	MethodSLF
	MethodDBF
)

var depreciationMethodNames = [...]string{"SL", "SYD", "DB", "DB-SL", "SLF", "DBF"}

func (m DepreciationMethod) String() string {
	if m < 0 || int(m) >= len(depreciationMethodNames) {
		return "?"
	}
	return depreciationMethodNames[m]
}

// ParseDepreciationMethod maps a label back to its method.
func ParseDepreciationMethod(s string) (DepreciationMethod, bool) {
	for i, name := range depreciationMethodNames {
		if name == s {
			return DepreciationMethod(i), true
		}
	}
	return MethodSL, false
}

// DepreciationInput holds the asset description. Life may be fractional,
// DBRate is in percent and StartMonth is the month of acquisition.
type DepreciationInput struct {
	Cost       float64 `json:"cost"`
	Salvage    float64 `json:"salvage"`
	Life       float64 `json:"life"`
	DBRate     float64 `json:"db_rate"`
	StartMonth int     `json:"start_month"`
}

func NewDepreciationInput() DepreciationInput {
	return DepreciationInput{DBRate: 200, StartMonth: 1}
}

type DepreciationResult struct {
	Year           int     `json:"year"`
	Depreciation   float64 `json:"depreciation"`
	BookValueStart float64 `json:"book_value_start"`
	AccumDepr      float64 `json:"accumulated"`
	BookValueEnd   float64 `json:"book_value_end"`
	RemainingDepr  float64 `json:"remaining"`
}
