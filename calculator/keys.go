package calculator

// KeyKind is the class of a key press.
type KeyKind int

const (
	KeyDigit KeyKind = iota
	KeyDecimal
	KeySign
	KeyBackspace
	KeyClear
	KeyClearWorksheet
	KeyCompute
	KeyVariable
	KeySto
	KeyRcl
	KeyWorksheet
	KeyMode
	KeyModel
	KeyUp
	KeyDown
	KeyInsert
	KeyDelete
)

var keyKindNames = [...]string{
	"DIGIT", "DEC", "+/-", "BKSP", "CE", "CLR WORK", "CPT", "VAR",
	"STO", "RCL", "WS", "BGN", "MODEL", "UP", "DOWN", "INS", "DEL",
}

func (k KeyKind) String() string {
	if k < 0 || int(k) >= len(keyKindNames) {
		return "?"
	}
	return keyKindNames[k]
}

// KeyEvent is one key press. Digit is set for KeyDigit, Var for
// KeyVariable and Sheet for KeyWorksheet.
type KeyEvent struct {
	Kind  KeyKind
	Digit int
	Var   Variable
	Sheet SheetID
}

func Key(kind KeyKind) KeyEvent { return KeyEvent{Kind: kind} }

func Digit(d int) KeyEvent { return KeyEvent{Kind: KeyDigit, Digit: d} }

func Var(v Variable) KeyEvent { return KeyEvent{Kind: KeyVariable, Var: v} }

func SwitchTo(id SheetID) KeyEvent { return KeyEvent{Kind: KeyWorksheet, Sheet: id} }

// Number expands a literal such as "-12.5" into the digit, decimal and
// sign keys that type it.
func Number(s string) []KeyEvent {
	var keys []KeyEvent
	negative := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			keys = append(keys, Digit(int(r-'0')))
		case r == '.':
			keys = append(keys, Key(KeyDecimal))
		case r == '-':
			negative = !negative
		}
	}
	if negative {
		keys = append(keys, Key(KeySign))
	}
	return keys
}
