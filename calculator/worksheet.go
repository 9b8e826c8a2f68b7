package calculator

import "strings"

// SheetID identifies a worksheet.
type SheetID int

const (
	SheetTVM SheetID = iota
	SheetCashFlow
	SheetBond
	SheetDepreciation
	SheetStatistics
	SheetBreakeven
	SheetProfit
	SheetDate

	sheetCount
)

var sheetNames = [...]string{"TVM", "CF", "BOND", "DEPR", "STAT", "BRKEVN", "PROFIT", "DATE"}

func (id SheetID) String() string {
	if id < 0 || id >= sheetCount {
		return "?"
	}
	return sheetNames[id]
}

// ParseSheet accepts the labels produced by String, in any case.
func ParseSheet(s string) (SheetID, bool) {
	for i, name := range sheetNames {
		if strings.EqualFold(name, s) {
			return SheetID(i), true
		}
	}
	return SheetTVM, false
}

// Variable is the label of a worksheet register.
type Variable string

// VarSpec describes one worksheet register. Output registers are derived
// and cannot be keyed in; Solvable registers answer CPT.
type VarSpec struct {
	Name     Variable
	Output   bool
	Solvable bool
}

func input(name Variable) VarSpec    { return VarSpec{Name: name} }
func solvable(name Variable) VarSpec { return VarSpec{Name: name, Solvable: true} }
func output(name Variable) VarSpec   { return VarSpec{Name: name, Output: true, Solvable: true} }

// Worksheet is one calculator mode with its own registers. Solve never
// mutates the worksheet; the caller stores the answer.
type Worksheet interface {
	ID() SheetID
	Variables() []VarSpec
	Get(v Variable) (float64, error)
	Set(v Variable, x float64) error
	Solve(v Variable) (float64, error)
	// Requires names the feature needed to derive v, or "".
	Requires(v Variable) Feature
	Reset()
}

// Cursor is implemented by worksheets that hold a list of entries.
type Cursor interface {
	Position() int
	Move(delta int)
	Insert() error
	Delete() error
}

func lookup(ws Worksheet, v Variable) (VarSpec, bool) {
	for _, spec := range ws.Variables() {
		if strings.EqualFold(string(spec.Name), string(v)) {
			return spec, true
		}
	}
	return VarSpec{}, false
}

// FindVariable resolves a label on ws, ignoring case.
func FindVariable(ws Worksheet, label string) (Variable, bool) {
	if spec, ok := lookup(ws, Variable(label)); ok {
		return spec.Name, true
	}
	return "", false
}
