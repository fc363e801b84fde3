/*
Copyright © 2024 Leo Antunes <leo@costela.net>

This program is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program.  If not, see <http://www.gnu.org/licenses/>.
*/

package tableau

import (
	"fmt"

	"github.com/costela/lptrace"
)

/* Types */

// StepView is everything a Formatter needs to display one step.
type StepView struct {
	Index int
	Kind  StepKind
	// Twophase is set when this step belongs to the auxiliary phase.
	Twophase bool
	// Phases is set when any step of the trace does.
	Phases bool
	// Entering and Leaving are only set for pivot steps.
	Entering string
	Leaving  string

	ColumnHeaders []string
	RowHeaders    []string
	Cells         [][]lptrace.Fraction

	// PivotRow and PivotColumn locate the pivot the next step applies to
	// this table, -1 when there is none.
	PivotRow    int
	PivotColumn int
}

// Formatter turns step views into display strings of one dialect.
type Formatter interface {
	// Labels builds the label set for the solver's raw column labels.
	Labels(raw []string) Labels
	Step(v StepView) string
	Feasibility(r *lptrace.SimplexResponse) string
}

// Renderer rebuilds and formats the steps of a simplex trace. It keeps
// no state between calls.
type Renderer struct {
	formatter Formatter
	logger    lptrace.Logger
}

func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		formatter: NewTextFormatter(),
		logger:    lptrace.NoopLogger(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("applying renderer option: %w", err)
		}
	}

	return r, nil
}

// Render formats every step of the response, in order. A nil response or
// one without steps gives an empty result.
func (r *Renderer) Render(resp *lptrace.SimplexResponse) []string {
	views := r.Views(resp)
	if len(views) == 0 {
		return nil
	}

	out := make([]string, len(views))
	for i, v := range views {
		out[i] = r.formatter.Step(v)
	}
	return out
}

// SummarizeFeasibility describes the solver's verdict.
func (r *Renderer) SummarizeFeasibility(resp *lptrace.SimplexResponse) string {
	if resp == nil {
		resp = &lptrace.SimplexResponse{Feasibility: lptrace.FeasibilityUnknown}
	}
	return r.formatter.Feasibility(resp)
}

// Views rebuilds the display data of every step.
func (r *Renderer) Views(resp *lptrace.SimplexResponse) []StepView {
	if resp == nil || len(resp.Steps) == 0 {
		return nil
	}

	phases := resp.HasPhases()
	labels := r.formatter.Labels(resp.Labels)

	views := make([]StepView, len(resp.Steps))
	for i := range resp.Steps {
		views[i] = r.view(resp.Steps, i, labels, phases)
	}
	return views
}

func (r *Renderer) view(steps []lptrace.SimplexStep, i int, labels Labels, phases bool) StepView {
	step := &steps[i]
	if !step.Consistent() {
		r.logf("step %d: table and basic variables do not match in shape", i)
	}

	v := StepView{
		Index:       i,
		Kind:        Classify(steps, i),
		Twophase:    step.Twophase,
		Phases:      phases,
		Cells:       step.Table,
		PivotRow:    -1,
		PivotColumn: -1,
	}

	// the pivot shown on a table is the one producing the next step; the
	// last step looks at itself, which carries no pivot
	next := step
	if i+1 < len(steps) {
		next = &steps[i+1]
	}
	if next.In != nil {
		v.PivotColumn = *next.In
	}
	if next.Out != nil {
		v.PivotRow = *next.Out
	}

	width := 0
	if len(step.Table) > 0 {
		width = len(step.Table[0])
	}
	v.ColumnHeaders = make([]string, width)
	for c := range v.ColumnHeaders {
		v.ColumnHeaders[c] = labels.Column(c, step.Twophase)
	}

	v.RowHeaders = make([]string, len(step.Table))
	for row := range v.RowHeaders {
		v.RowHeaders[row] = ResolveRowLabel(step.Table, row, labels, step.Twophase)
		if row > 0 && v.RowHeaders[row] == labels.Placeholder {
			r.logf("step %d: no basic variable found for row %d", i, row)
		}
	}

	switch v.Kind {
	case PivotStep:
		v.Entering, v.Leaving = pivotLabels(&steps[i-1], step, labels)
		if v.Leaving == labels.Placeholder {
			r.logf("step %d: leaving row %d out of range", i, *step.Out)
		}
	case UnknownStep:
		r.logf("step %d: inconsistent pivot fields", i)
	}

	return v
}

// pivotLabels names the variables exchanged by the pivot that turned prev
// into step. Both indices refer to prev's table, so prev's phase decides
// whether column 1 is λ.
func pivotLabels(prev, step *lptrace.SimplexStep, labels Labels) (entering, leaving string) {
	entering = labels.Column(*step.In, prev.Twophase)

	col, ok := LeavingColumn(prev.BasicID, *step.Out)
	if !ok {
		return entering, labels.Placeholder
	}
	return entering, labels.Column(col, prev.Twophase)
}

func (r *Renderer) logf(format string, v ...interface{}) {
	r.logger.Print(fmt.Sprintf(format, v...))
}
