package tableau

// labels the solver reserves for the λ column and the constants column
const (
	solverLambdaLabel   = "L"
	solverConstantLabel = "RHS"
)

// Labels maps tableau rows and columns to display labels. One Labels is
// shared by every step of a render pass.
type Labels struct {
	// Objective labels row 0.
	Objective string
	// Auxiliary labels the λ row and column of auxiliary-phase tables.
	Auxiliary string
	// Columns holds the constants label at index 0, then one label per
	// variable, in solver order.
	Columns []string
	// Placeholder is returned wherever no label can be worked out.
	Placeholder string
}

// NewLabels builds the shared label list from the solver's column labels,
// dropping the λ and RHS entries and formatting the others.
func NewLabels(raw []string, objective, constant, auxiliary string, format func(string) string) Labels {
	columns := make([]string, 1, len(raw)+1)
	columns[0] = constant

	for _, l := range raw {
		if l == solverLambdaLabel || l == solverConstantLabel {
			continue
		}
		columns = append(columns, format(l))
	}

	return Labels{
		Objective: objective,
		Auxiliary: auxiliary,
		Columns:   columns,
	}
}

// Column maps a tableau column to its label. Auxiliary-phase tables carry
// λ in column 1, which pushes every variable one column to the right.
func (l Labels) Column(col int, twophase bool) string {
	idx := col
	if twophase {
		switch {
		case col == 1:
			return l.Auxiliary
		case col > 1:
			idx = col - 1
		}
	}

	if idx < 0 || idx >= len(l.Columns) {
		return l.Placeholder
	}
	return l.Columns[idx]
}

// LeavingColumn maps the pivot row out of a step to the tableau column of
// the variable leaving the basis. basicID must come from the previous step,
// the one the pivot was applied to. BasicID values are 0-based variable
// indices, so the column is one further right.
func LeavingColumn(basicID []int, out int) (int, bool) {
	if out < 1 || out > len(basicID) {
		return 0, false
	}
	return basicID[out-1] + 1, true
}
