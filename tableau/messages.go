package tableau

import (
	"fmt"
	"strings"

	"github.com/costela/lptrace"
)

// Messages holds the fixed texts of a formatter dialect.
type Messages struct {
	PhaseOneStart string
	// FirstTableau receives PhaseTwoPrefix (or nothing) through its %s.
	FirstTableau   string
	PhaseTwoPrefix string
	FinalTableau   string
	// Pivot receives the step index, then the entering and leaving labels.
	Pivot       string
	UnknownStep string

	// Optimum receives the objective symbol and the optimum, Value the
	// coefficient symbol, the 1-based variable index and its value.
	Optimum    string
	Value      string
	OptimumEnd string

	Infeasible     string
	Unbounded      string
	IterationLimit string
	Unknown        string
}

// DefaultMessages returns the plain English texts used by TextFormatter.
func DefaultMessages() Messages {
	return Messages{
		PhaseOneStart:  "Phase 1: first tableau",
		FirstTableau:   "%sFirst tableau",
		PhaseTwoPrefix: "Phase 2: ",
		FinalTableau:   "Final tableau",
		Pivot:          "Step %d: entering variable %s, leaving variable %s",
		UnknownStep:    "Unknown step",

		Optimum:    "The optimum is %s* = %s with",
		Value:      " %s%d* = %s",
		OptimumEnd: ".",

		Infeasible:     "There is no solution.",
		Unbounded:      "The solution is unbounded.",
		IterationLimit: "The maximum number of iterations was reached.",
		Unknown:        "Unknown error",
	}
}

// Title describes a step.
func (m Messages) Title(v StepView) string {
	switch v.Kind {
	case PhaseOneStart:
		return m.PhaseOneStart
	case FirstTableau:
		prefix := ""
		if v.Phases {
			prefix = m.PhaseTwoPrefix
		}
		return fmt.Sprintf(m.FirstTableau, prefix)
	case FinalTableau:
		return m.FinalTableau
	case PivotStep:
		return fmt.Sprintf(m.Pivot, v.Index, v.Entering, v.Leaving)
	default:
		return m.UnknownStep
	}
}

// Summary describes the solver's verdict. For a feasible response the
// optimum and every value are interpolated after going through frac.
func (m Messages) Summary(r *lptrace.SimplexResponse, objective, coefficient string, frac func(lptrace.Fraction) string) string {
	switch r.Feasibility {
	case lptrace.Feasible:
		var b strings.Builder
		fmt.Fprintf(&b, m.Optimum, objective, frac(r.Optimum))
		for i, v := range r.Values {
			fmt.Fprintf(&b, m.Value, coefficient, i+1, frac(v))
		}
		b.WriteString(m.OptimumEnd)
		return b.String()
	case lptrace.Infeasible:
		return m.Infeasible
	case lptrace.Unbounded:
		return m.Unbounded
	case lptrace.IterationLimit:
		return m.IterationLimit
	default:
		return m.Unknown
	}
}
