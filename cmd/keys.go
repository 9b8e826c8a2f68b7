package cmd

import (
	"fmt"
	"regexp"
	"strings"

	"fxba/calculator"
)

var numberToken = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d*)$`)

var namedKeys = map[string]calculator.KeyKind{
	"+/-":   calculator.KeySign,
	"neg":   calculator.KeySign,
	"bs":    calculator.KeyBackspace,
	"ce":    calculator.KeyClear,
	"clr":   calculator.KeyClear,
	"cw":    calculator.KeyClearWorksheet,
	"cpt":   calculator.KeyCompute,
	"sto":   calculator.KeySto,
	"rcl":   calculator.KeyRcl,
	"bgn":   calculator.KeyMode,
	"model": calculator.KeyModel,
	"up":    calculator.KeyUp,
	"down":  calculator.KeyDown,
	"ins":   calculator.KeyInsert,
	"del":   calculator.KeyDelete,
}

// parseToken turns one word typed at the prompt into key presses:
// a number such as -12.5, a named key, ws:<sheet> or a variable label.
func parseToken(tok string) ([]calculator.KeyEvent, error) {
	if numberToken.MatchString(tok) {
		return calculator.Number(tok), nil
	}

	lower := strings.ToLower(tok)
	if kind, ok := namedKeys[lower]; ok {
		return []calculator.KeyEvent{calculator.Key(kind)}, nil
	}

	if name, ok := strings.CutPrefix(lower, "ws:"); ok {
		id, ok := calculator.ParseSheet(name)
		if !ok {
			return nil, fmt.Errorf("unknown worksheet %q", name)
		}
		return []calculator.KeyEvent{calculator.SwitchTo(id)}, nil
	}

	for _, r := range tok {
		if r <= ' ' || r > '~' {
			return nil, fmt.Errorf("unknown key %q", tok)
		}
	}
	return []calculator.KeyEvent{calculator.Var(calculator.Variable(tok))}, nil
}

// parseLine splits a line on whitespace and parses every token.
func parseLine(line string) ([]calculator.KeyEvent, error) {
	var events []calculator.KeyEvent
	for _, tok := range strings.Fields(line) {
		keys, err := parseToken(tok)
		if err != nil {
			return nil, err
		}
		events = append(events, keys...)
	}
	return events, nil
}
