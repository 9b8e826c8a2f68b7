package domain

import "fmt"

// ErrorKind classifies every failure a solver or container can report.
// It implements error so engines can return the kinds directly and callers
// can test them with errors.Is.
type ErrorKind int

const (
	ErrNoSolution ErrorKind = iota + 1
	ErrOverflow
	ErrIterationLimit
	ErrInvalidInput
	ErrMultipleIRR
	ErrCapacity
	ErrFeatureUnavailable
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrNoSolution:
		return "no solution"
	case ErrOverflow:
		return "overflow"
	case ErrIterationLimit:
		return "iteration limit reached"
	case ErrInvalidInput:
		return "invalid input"
	case ErrMultipleIRR:
		return "irr did not converge, multiple roots possible"
	case ErrCapacity:
		return "capacity exceeded"
	case ErrFeatureUnavailable:
		return "feature not available on this model"
	default:
		return fmt.Sprintf("error %d", int(k))
	}
}

// Message is the short text shown on the calculator display.
func (k ErrorKind) Message() string {
	switch k {
	case ErrNoSolution:
		return "No Solution"
	case ErrOverflow:
		return "Overflow"
	case ErrIterationLimit:
		return "No Converge"
	case ErrInvalidInput:
		return "Bad Input"
	case ErrMultipleIRR:
		return "Multi IRR"
	default:
		return "Error"
	}
}
