package tableau

import (
	"github.com/costela/lptrace"
)

type StepKind int

const (
	UnknownStep StepKind = iota
	PhaseOneStart
	FirstTableau
	FinalTableau
	PivotStep
)

func (k StepKind) String() string {
	switch k {
	case PhaseOneStart:
		return "phase one start"
	case FirstTableau:
		return "first tableau"
	case FinalTableau:
		return "final tableau"
	case PivotStep:
		return "pivot"
	default:
		return "unknown"
	}
}

// Classify tells what kind of step steps[index] is, from its pivot fields
// and its position in the trace.
func Classify(steps []lptrace.SimplexStep, index int) StepKind {
	if index < 0 || index >= len(steps) {
		return UnknownStep
	}
	step := &steps[index]

	switch {
	case step.In == nil && step.Out == nil:
		if index == len(steps)-1 {
			return FinalTableau
		}
		if step.Dualcut || step.Twophase {
			return PhaseOneStart
		}
		return FirstTableau
	case step.In != nil && step.Out != nil:
		// the leaving variable is read from the previous step
		if index == 0 {
			return UnknownStep
		}
		return PivotStep
	}

	return UnknownStep
}
