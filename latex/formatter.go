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

package latex

import (
	"strings"

	"github.com/costela/lptrace"
	"github.com/costela/lptrace/tableau"
)

const (
	arrayStart = `\begin{array} {|c|c|} \hline & `
	arrayEnd   = `\end{array}`
	rowEnd     = `\\ \hline `
	cellSep    = " & "

	columnColor = ` \color{RED} `
	rowColor    = ` \color{BLUE} `
	pivotColor  = `\color{PURPLE}`
)

// DefaultMessages returns the French step titles and verdicts, as LaTeX.
func DefaultMessages() tableau.Messages {
	return tableau.Messages{
		PhaseOneStart:  `\text{Phase 1: Premier tableau}`,
		FirstTableau:   `\text{%sPremier tableau}`,
		PhaseTwoPrefix: "Phase 2: ",
		FinalTableau:   `\text{Tableau final}`,
		Pivot:          `\text{Étape %d: variable entrante: }%s\text{, variable sortante }%s`,
		UnknownStep:    "Étape inconnue",

		Optimum:    `\text{L'optimum est } %s* = %s \text{avec }`,
		Value:      `%s_{%d}* = %s \space `,
		OptimumEnd: " .",

		Infeasible:     `\text{Il n'y a pas de solution.}`,
		Unbounded:      `\text{La solution est non restrainte.}`,
		IterationLimit: `\text{Le nombre maximal d'itérations a été atteint.}`,
		Unknown:        `\color{red}{\text{Erreur inconnue}}`,
	}
}

// Formatter renders steps as LaTeX arrays. The pivot column is coloured
// red, the pivot row blue and the pivot cell purple.
type Formatter struct {
	Messages tableau.Messages
	Symbols  Symbols
}

func NewFormatter() *Formatter {
	return &Formatter{
		Messages: DefaultMessages(),
		Symbols:  DefaultSymbols(),
	}
}

func (f *Formatter) Labels(raw []string) tableau.Labels {
	return tableau.NewLabels(raw, `\text{SM}`, `\text{SM}`, `\lambda`, func(l string) string {
		return FormatVariableLabel(l, f.Symbols)
	})
}

func (f *Formatter) Step(v tableau.StepView) string {
	return f.Messages.Title(v) + "\n" + f.Table(v)
}

func (f *Formatter) Feasibility(r *lptrace.SimplexResponse) string {
	return f.Messages.Summary(r, f.Symbols.Objective, f.Symbols.Coefficient, func(fr lptrace.Fraction) string {
		return FormatFraction(fr, Options{})
	})
}

// Table renders the grid of a step as an array with a header row and a
// header column.
func (f *Formatter) Table(v tableau.StepView) string {
	width := len(v.ColumnHeaders)
	cellOpts := Options{NoSpace: true, ShowOnes: true}

	var b strings.Builder
	b.WriteString(arrayStart)

	for c, label := range v.ColumnHeaders {
		if c == v.PivotColumn {
			b.WriteString(columnColor)
		}
		b.WriteString(label)
		if c < width-1 {
			b.WriteString(cellSep)
		}
	}
	b.WriteString(rowEnd)

	for i, row := range v.Cells {
		if i == v.PivotRow {
			b.WriteString(rowColor)
		}
		if i < len(v.RowHeaders) {
			b.WriteString(v.RowHeaders[i])
		}
		b.WriteString(cellSep)

		for j := 0; j < width; j++ {
			switch {
			case i == v.PivotRow && j == v.PivotColumn:
				b.WriteString(pivotColor)
			case j == v.PivotColumn:
				b.WriteString(columnColor)
			case i == v.PivotRow:
				b.WriteString(rowColor)
			}

			b.WriteByte(' ')
			if j < len(row) {
				b.WriteString(FormatFraction(row[j], cellOpts))
			}
			if j < width-1 {
				b.WriteString(cellSep)
			}
		}
		b.WriteString(rowEnd)
	}

	b.WriteString(arrayEnd)
	return b.String()
}
