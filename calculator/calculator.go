package calculator

import (
	"errors"
	"io"
	"math"
	"strings"

	"github.com/sirupsen/logrus"

	"fxba/domain"
)

// DefaultWaitTimeout is how long STO and RCL wait for a slot digit.
const DefaultWaitTimeout uint64 = 4000

// State is the key-handling state of the calculator.
type State int

const (
	StateInput State = iota
	StateCompute
	StateResult
	StateError
	StateWaitSto
	StateWaitRcl
)

var stateNames = [...]string{"INPUT", "CPT", "RESULT", "ERROR", "STO", "RCL"}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "?"
	}
	return stateNames[s]
}

// Calculator owns every register and worksheet. It is not safe for
// concurrent use; the shell that owns it feeds it one event at a time.
type Calculator struct {
	model  Model
	state  State
	sheets [sheetCount]Worksheet
	active SheetID
	memory domain.Memory

	buffer     string
	hasDecimal bool
	isNegative bool

	deadline     uint64
	timeout      uint64
	pollInterval uint32
	lastErr      domain.ErrorKind

	log logrus.FieldLogger
}

type Option func(*Calculator)

// WithTimeout overrides the STO/RCL wait in milliseconds.
func WithTimeout(ms uint64) Option {
	return func(c *Calculator) { c.timeout = ms }
}

// WithPollInterval sets how often Run polls while STO or RCL is waiting.
func WithPollInterval(ms uint32) Option {
	return func(c *Calculator) {
		if ms > 0 {
			c.pollInterval = ms
		}
	}
}

func WithLogger(log logrus.FieldLogger) Option {
	return func(c *Calculator) { c.log = log }
}

// New returns a calculator on the TVM worksheet in Input state.
func New(model Model, opts ...Option) *Calculator {
	c := &Calculator{
		model:        model,
		timeout:      DefaultWaitTimeout,
		pollInterval: DefaultPollInterval,
	}
	c.sheets = [sheetCount]Worksheet{
		SheetTVM:          NewTVMSheet(),
		SheetCashFlow:     NewCashFlowSheet(),
		SheetBond:         NewBondSheet(),
		SheetDepreciation: NewDepreciationSheet(),
		SheetStatistics:   NewStatisticsSheet(),
		SheetBreakeven:    NewBreakevenSheet(),
		SheetProfit:       NewProfitSheet(),
		SheetDate:         NewDateSheet(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.log == nil {
		quiet := logrus.New()
		quiet.SetOutput(io.Discard)
		c.log = quiet
	}
	return c
}

func (c *Calculator) Model() Model { return c.model }

func (c *Calculator) State() State { return c.state }

func (c *Calculator) Memory() domain.Memory { return c.memory }

func (c *Calculator) ActiveID() SheetID { return c.active }

func (c *Calculator) Active() Worksheet { return c.sheets[c.active] }

func (c *Calculator) Sheet(id SheetID) Worksheet { return c.sheets[id] }

// TVM returns a copy of the TVM registers.
func (c *Calculator) TVM() domain.TVM {
	return c.sheets[SheetTVM].(*TVMSheet).TVM
}

// Err is the kind of the last error, or nil outside the Error state.
func (c *Calculator) Err() error {
	if c.state != StateError {
		return nil
	}
	return c.lastErr
}

// Waiting reports whether STO or RCL is waiting for a slot digit.
func (c *Calculator) Waiting() bool {
	return c.state == StateWaitSto || c.state == StateWaitRcl
}

// Display is the text for the main display.
func (c *Calculator) Display() string {
	if c.buffer == "" {
		return "0"
	}
	if c.isNegative {
		return "-" + c.buffer
	}
	return c.buffer
}

// Indicators are the annunciators shown beside the display.
func (c *Calculator) Indicators() []string {
	ind := []string{c.model.String(), c.active.String(), c.TVM().Mode.String()}
	switch c.state {
	case StateCompute:
		ind = append(ind, "CPT")
	case StateWaitSto:
		ind = append(ind, "STO")
	case StateWaitRcl:
		ind = append(ind, "RCL")
	}
	return ind
}

// CheckTimeout cancels a pending STO or RCL once its deadline has passed.
// It reports whether the state changed.
func (c *Calculator) CheckTimeout(nowMs uint64) bool {
	if !c.Waiting() || nowMs < c.deadline {
		return false
	}
	c.log.WithField("state", c.state).Debug("memory wait expired")
	c.state = StateInput
	return true
}

// HandleEvent applies one key press.
func (c *Calculator) HandleEvent(ev KeyEvent, nowMs uint64) {
	c.CheckTimeout(nowMs)

	switch c.state {
	case StateError:
		c.clearBuffer()
		c.state = StateInput
		return
	case StateWaitSto, StateWaitRcl:
		c.handleWait(ev)
		return
	}

	switch ev.Kind {
	case KeyDigit:
		c.typeDigit(ev.Digit)
	case KeyDecimal:
		c.typeDecimal()
	case KeySign:
		c.isNegative = !c.isNegative
	case KeyBackspace:
		c.backspace()
	case KeyClear:
		c.clearBuffer()
		c.state = StateInput
	case KeyClearWorksheet:
		c.Active().Reset()
		c.clearBuffer()
		c.state = StateInput
	case KeyCompute:
		c.state = StateCompute
	case KeyVariable:
		if c.state == StateCompute {
			c.compute(ev.Var)
		} else {
			c.enter(ev.Var)
		}
	case KeySto, KeyRcl:
		// Memory access is only offered from Input or Result.
		if c.state == StateCompute {
			return
		}
		c.state = StateWaitSto
		if ev.Kind == KeyRcl {
			c.state = StateWaitRcl
		}
		c.deadline = nowMs + c.timeout
	case KeyWorksheet:
		if ev.Sheet < 0 || ev.Sheet >= sheetCount {
			c.fail(domain.ErrInvalidInput)
			return
		}
		c.active = ev.Sheet
		c.clearBuffer()
		c.state = StateInput
	case KeyMode:
		tvm := c.sheets[SheetTVM].(*TVMSheet)
		if tvm.TVM.Mode == domain.ModeBegin {
			tvm.TVM.Mode = domain.ModeEnd
		} else {
			tvm.TVM.Mode = domain.ModeBegin
		}
	case KeyModel:
		c.model = c.model.Toggle()
	case KeyUp, KeyDown, KeyInsert, KeyDelete:
		c.handleCursor(ev.Kind)
	}
}

func (c *Calculator) handleWait(ev KeyEvent) {
	if ev.Kind != KeyDigit || ev.Digit < 0 || ev.Digit >= domain.MemorySlots {
		c.state = StateInput
		return
	}
	if c.state == StateWaitSto {
		c.memory.Store(ev.Digit, c.inputValue())
	} else {
		c.show(c.memory.Recall(ev.Digit))
	}
	c.state = StateResult
}

func (c *Calculator) handleCursor(kind KeyKind) {
	cur, ok := c.Active().(Cursor)
	if !ok {
		return
	}
	var err error
	switch kind {
	case KeyUp:
		cur.Move(-1)
	case KeyDown:
		cur.Move(1)
	case KeyInsert:
		err = cur.Insert()
	case KeyDelete:
		err = cur.Delete()
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.clearBuffer()
	c.state = StateInput
}

func (c *Calculator) typeDigit(d int) {
	if d < 0 || d > 9 {
		return
	}
	if c.state == StateResult || c.state == StateCompute {
		c.clearBuffer()
		c.state = StateInput
	}
	if len(c.buffer) >= maxInputLen {
		return
	}
	if c.buffer == "0" {
		c.buffer = ""
	}
	c.buffer += string(rune('0' + d))
}

func (c *Calculator) typeDecimal() {
	if c.state == StateResult || c.state == StateCompute {
		c.clearBuffer()
		c.state = StateInput
	}
	if c.hasDecimal || len(c.buffer) >= maxInputLen {
		return
	}
	if c.buffer == "" {
		c.buffer = "0"
	}
	c.buffer += "."
	c.hasDecimal = true
}

func (c *Calculator) backspace() {
	n := len(c.buffer)
	if n == 0 {
		return
	}
	if c.buffer[n-1] == '.' {
		c.hasDecimal = false
	}
	c.buffer = c.buffer[:n-1]
}

func (c *Calculator) clearBuffer() {
	c.buffer = ""
	c.hasDecimal = false
	c.isNegative = false
}

// show replaces the buffer with a formatted value.
func (c *Calculator) show(v float64) {
	c.clearBuffer()
	c.isNegative = v < 0
	c.buffer = FormatNumber(math.Abs(v))
	c.hasDecimal = strings.Contains(c.buffer, ".")
}

func (c *Calculator) inputValue() float64 {
	v, err := ParseNumber(c.buffer)
	if err != nil {
		return 0
	}
	if c.isNegative {
		return -v
	}
	return v
}

func (c *Calculator) fail(err error) {
	var kind domain.ErrorKind
	if !errors.As(err, &kind) {
		kind = domain.ErrInvalidInput
	}
	c.log.WithFields(logrus.Fields{
		"sheet": c.active,
		"error": kind.Error(),
	}).Debug("calculator error")

	c.lastErr = kind
	c.clearBuffer()
	c.buffer = kind.Message()
	c.state = StateError
}

// derive runs the worksheet solver for v after checking the model allows
// it. Non-finite answers are reported as overflow.
func (c *Calculator) derive(ws Worksheet, v Variable, solve func(Variable) (float64, error)) (float64, error) {
	if !c.model.Has(ws.Requires(v)) {
		return 0, domain.ErrFeatureUnavailable
	}
	x, err := solve(v)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0, domain.ErrOverflow
	}
	return x, nil
}

// compute answers CPT followed by a variable key. Nothing is stored
// unless the solve succeeds.
func (c *Calculator) compute(v Variable) {
	ws := c.Active()
	spec, ok := lookup(ws, v)
	if !ok || !spec.Solvable {
		c.fail(domain.ErrInvalidInput)
		return
	}
	x, err := c.derive(ws, spec.Name, ws.Solve)
	if err != nil {
		c.fail(err)
		return
	}
	if !spec.Output {
		if err := ws.Set(spec.Name, x); err != nil {
			c.fail(err)
			return
		}
	}
	c.log.WithFields(logrus.Fields{"sheet": c.active, "var": spec.Name}).Debug("computed")
	c.show(x)
	c.state = StateResult
}

// enter stores a keyed value into v, then shows v.
func (c *Calculator) enter(v Variable) {
	ws := c.Active()
	spec, ok := lookup(ws, v)
	if !ok {
		c.fail(domain.ErrInvalidInput)
		return
	}

	var x float64
	var err error
	switch {
	case c.buffer != "" && spec.Output:
		err = domain.ErrInvalidInput
	case c.buffer != "":
		if err = ws.Set(spec.Name, c.inputValue()); err == nil {
			x, err = ws.Get(spec.Name)
		}
	case spec.Output:
		x, err = c.derive(ws, spec.Name, ws.Get)
	default:
		x, err = ws.Get(spec.Name)
	}
	if err != nil {
		c.fail(err)
		return
	}
	c.show(x)
	c.state = StateResult
}
