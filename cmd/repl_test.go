package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fxba/calculator"
)

func TestRunShell_KeyedMortgage(t *testing.T) {
	calc := calculator.New(calculator.ModelStandard)
	in := strings.NewReader("360 n 5.4 i/y\n250000 pv\ncpt pmt\n")
	var out, errOut bytes.Buffer

	if err := runShell(context.Background(), calc, in, &out, &errOut); err != nil {
		t.Fatalf("runShell: %v", err)
	}

	if calc.Display() != "-1403.82698" {
		t.Errorf("display %q", calc.Display())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if last := lines[len(lines)-1]; last != "[STD TVM END] -1403.82698" {
		t.Errorf("last line %q", last)
	}
	if errOut.Len() != 0 {
		t.Errorf("unexpected errors: %s", errOut.String())
	}
}

func TestRunShell_ReportsBadTokens(t *testing.T) {
	calc := calculator.New(calculator.ModelStandard)
	in := strings.NewReader("ws:nowhere\n42 fv\n")
	var out, errOut bytes.Buffer

	if err := runShell(context.Background(), calc, in, &out, &errOut); err != nil {
		t.Fatalf("runShell: %v", err)
	}
	if !strings.Contains(errOut.String(), "unknown worksheet") {
		t.Errorf("expected error output, got %q", errOut.String())
	}
	if calc.TVM().FV != 42 {
		t.Errorf("later lines should still run, FV = %v", calc.TVM().FV)
	}
}

func TestLineRenderer_SkipsRepeats(t *testing.T) {
	var out bytes.Buffer
	render := lineRenderer(&out)
	calc := calculator.New(calculator.ModelStandard)

	render(calc)
	render(calc)

	if n := strings.Count(out.String(), "\n"); n != 1 {
		t.Errorf("rendered %d lines, want 1", n)
	}
}
