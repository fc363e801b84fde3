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

/*
Package latex formats simplex traces and linear programs as LaTeX math, in
the array and cases layouts MathJax renders.

Numbers follow a column-friendly convention: positive values are padded
with \space so signs line up, a unit coefficient can be elided, and values
that cannot be read print as "?".
*/
package latex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/costela/lptrace"
)

const (
	padding   = `\space\space\space\space`
	plusSign  = `+\space`
	minusSign = `-\space`
	elidedOne = `\space\space `
)

// Options tunes FormatNumber and FormatFraction. The zero value pads
// positive numbers and elides unit magnitudes.
type Options struct {
	// StartingSign prints "+" in front of positive numbers.
	StartingSign bool
	// ShowOnes prints 1 and -1 instead of eliding the magnitude.
	ShowOnes bool
	// NoSpace drops the padding of positive numbers.
	NoSpace bool
}

// Symbols are the letters used in equations.
type Symbols struct {
	Objective   string
	Variable    string
	Coefficient string
	Artificial  string
	Constant    string
}

func DefaultSymbols() Symbols {
	return Symbols{
		Objective:   "z",
		Variable:    "x",
		Coefficient: "c",
		Artificial:  "y",
		Constant:    "b",
	}
}

// FormatNumber prints v as a LaTeX term. NaN prints as "?".
func FormatNumber(v float64, opts Options) string {
	lead := padding
	if opts.NoSpace {
		lead = ""
	}
	if opts.StartingSign {
		lead = plusSign
	}

	switch {
	case math.IsNaN(v):
		return lead + "?"
	case v < 0:
		if v == -1 && !opts.ShowOnes {
			return minusSign + elidedOne
		}
		return minusSign + formatValue(-v)
	case v == 1 && !opts.ShowOnes:
		return lead + elidedOne
	default:
		return lead + formatValue(v)
	}
}

// FormatFraction prints "A" through FormatNumber and "A / B" as a \frac
// whose parts always show their magnitude and carry no padding. An empty
// fraction prints nothing.
func FormatFraction(f lptrace.Fraction, opts Options) string {
	if f == "" {
		return ""
	}

	num, den, found := strings.Cut(string(f), "/")
	if !found {
		return FormatNumber(parseValue(num), opts)
	}

	inner := Options{NoSpace: true, ShowOnes: true}
	return `\frac{` + FormatNumber(parseValue(num), inner) + `}{` + FormatNumber(parseValue(den), inner) + `}`
}

// FormatVariableLabel turns a solver label such as "x0" or "y5" into its
// subscripted 1-based form, x_{1} or y_{6}, using the given symbols for
// decision and artificial variables.
func FormatVariableLabel(label string, sym Symbols) string {
	if label == "" {
		return ""
	}

	_, size := utf8.DecodeRuneInString(label)
	kind, rest := label[:size], label[size:]
	switch kind {
	case "x":
		kind = sym.Variable
	case "y":
		kind = sym.Artificial
	}

	return fmt.Sprintf("%s_{%s}", kind, formatValue(parseValue(rest)+1))
}

// Sign returns the relation used by constraints of a maximisation
// (\leqslant) or minimisation (\geqslant) problem.
func Sign(toMaximise bool) string {
	if toMaximise {
		return `\leqslant`
	}
	return `\geqslant`
}

// parseValue reads a trimmed decimal, blank reading as 0 and anything
// unparsable as NaN.
func parseValue(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func formatValue(v float64) string {
	if v == 0 {
		// drops the sign of -0
		return "0"
	}
	if math.IsNaN(v) {
		return "NaN"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
