// Package selftest runs a fixed battery of worked examples against the
// engines and the calculator and reports pass/fail counts.
package selftest

import (
	"fmt"
	"io"
	"math"

	"github.com/shopspring/decimal"
)

// Scenario is one worked example. Run returns the value to compare with
// Expected.
type Scenario struct {
	Group     string
	Name      string
	Expected  float64
	Tolerance float64
	Run       func() (float64, error)
}

type Outcome struct {
	Scenario
	Got    float64
	Err    error
	Passed bool
}

type Report struct {
	Outcomes []Outcome
	Passed   int
	Failed   int
}

// OK reports whether every scenario passed.
func (r Report) OK() bool { return r.Failed == 0 }

func within(got, want, tol float64) bool {
	if math.IsNaN(got) || math.IsInf(got, 0) {
		return false
	}
	diff := decimal.NewFromFloat(got).Sub(decimal.NewFromFloat(want)).Abs()
	return diff.LessThanOrEqual(decimal.NewFromFloat(tol))
}

// Run executes the scenarios in order.
func Run(scenarios []Scenario) Report {
	var r Report
	for _, s := range scenarios {
		o := Outcome{Scenario: s}
		o.Got, o.Err = s.Run()
		o.Passed = o.Err == nil && within(o.Got, s.Expected, s.Tolerance)
		if o.Passed {
			r.Passed++
		} else {
			r.Failed++
		}
		r.Outcomes = append(r.Outcomes, o)
	}
	return r
}

// Write prints one line per scenario and a total.
func (r Report) Write(w io.Writer) error {
	for _, o := range r.Outcomes {
		status := "PASS"
		if !o.Passed {
			status = "FAIL"
		}
		detail := fmt.Sprintf("got=%.6g want=%.6g ±%g", o.Got, o.Expected, o.Tolerance)
		if o.Err != nil {
			detail = fmt.Sprintf("error: %v", o.Err)
		}
		if _, err := fmt.Fprintf(w, "%s  %-6s %-40s %s\n", status, o.Group, o.Name, detail); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%d passed, %d failed, %d total\n", r.Passed, r.Failed, len(r.Outcomes))
	return err
}
