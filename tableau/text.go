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
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/costela/lptrace"
)

const (
	columnSeparator = " | "
	pivotMarker     = "*"
)

// TextFormatter renders steps as aligned plain-text tables. The pivot
// column and row headers are suffixed with "*" and the pivot cell is
// bracketed; on colour terminals they are also highlighted.
type TextFormatter struct {
	Messages Messages

	ColumnStyle lipgloss.Style
	RowStyle    lipgloss.Style
	PivotStyle  lipgloss.Style
}

func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		Messages:    DefaultMessages(),
		ColumnStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		RowStyle:    lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
		PivotStyle:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true),
	}
}

func (f *TextFormatter) Labels(raw []string) Labels {
	labels := NewLabels(raw, "z", "RHS", "λ", VariableLabel)
	labels.Placeholder = "?"
	return labels
}

// VariableLabel turns a solver label such as "x0" into its 1-based form
// "x1". Labels without a numeric suffix are kept as they are.
func VariableLabel(raw string) string {
	if raw == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(raw)
	n, err := strconv.Atoi(raw[size:])
	if err != nil {
		return raw
	}
	return raw[:size] + strconv.Itoa(n+1)
}

// PlainFraction prints a fraction as "A" or "A/B", without inner spaces.
func PlainFraction(f lptrace.Fraction) string {
	num, den := f.Split()
	if den == "" {
		return num
	}
	return num + "/" + den
}

func (f *TextFormatter) Step(v StepView) string {
	return f.Messages.Title(v) + "\n" + f.Table(v)
}

func (f *TextFormatter) Feasibility(r *lptrace.SimplexResponse) string {
	return f.Messages.Summary(r, "z", "c", PlainFraction)
}

type textCell struct {
	text  string
	style *lipgloss.Style
	left  bool
}

// Table renders the grid of a step: a header line with the column labels,
// a rule, then one line per tableau row.
func (f *TextFormatter) Table(v StepView) string {
	grid := make([][]textCell, 0, len(v.Cells)+1)

	header := []textCell{{left: true}}
	for c, label := range v.ColumnHeaders {
		cell := textCell{text: label}
		if c == v.PivotColumn {
			cell.text += pivotMarker
			cell.style = &f.ColumnStyle
		}
		header = append(header, cell)
	}
	grid = append(grid, header)

	for i, row := range v.Cells {
		line := make([]textCell, 0, len(v.ColumnHeaders)+1)

		rowHeader := textCell{left: true}
		if i < len(v.RowHeaders) {
			rowHeader.text = v.RowHeaders[i]
		}
		if i == v.PivotRow {
			rowHeader.text += pivotMarker
			rowHeader.style = &f.RowStyle
		}
		line = append(line, rowHeader)

		for j := range v.ColumnHeaders {
			cell := textCell{}
			if j < len(row) {
				cell.text = PlainFraction(row[j])
			}
			switch {
			case i == v.PivotRow && j == v.PivotColumn:
				cell.text = "[" + cell.text + "]"
				cell.style = &f.PivotStyle
			case j == v.PivotColumn:
				cell.style = &f.ColumnStyle
			case i == v.PivotRow:
				cell.style = &f.RowStyle
			}
			line = append(line, cell)
		}
		grid = append(grid, line)
	}

	widths := make([]int, len(v.ColumnHeaders)+1)
	for _, line := range grid {
		for c, cell := range line {
			if w := runewidth.StringWidth(cell.text); w > widths[c] {
				widths[c] = w
			}
		}
	}

	var b strings.Builder
	for l, line := range grid {
		var sb strings.Builder
		for c, cell := range line {
			if c > 0 {
				sb.WriteString(columnSeparator)
			}
			sb.WriteString(renderCell(cell, widths[c]))
		}
		b.WriteString(strings.TrimRight(sb.String(), " "))
		b.WriteByte('\n')

		if l == 0 {
			b.WriteString(rule(widths))
			b.WriteByte('\n')
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// renderCell pads the cell to width before styling it, so escape codes
// never count towards the alignment.
func renderCell(cell textCell, width int) string {
	pad := strings.Repeat(" ", width-runewidth.StringWidth(cell.text))

	text := cell.text
	if cell.style != nil && text != "" {
		text = cell.style.Render(text)
	}

	if cell.left {
		return text + pad
	}
	return pad + text
}

func rule(widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("-", w)
	}
	return strings.Join(parts, "-+-")
}
