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
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/costela/lptrace"
)

// Preview renders the program as a LaTeX cases block: the objective line,
// one line per constraint, then the non-negativity conditions. Zero terms
// are left as empty cells so columns stay aligned; a line made only of
// zeros still shows its last term.
func Preview(lp *lptrace.LinearProgram, sym Symbols) (string, error) {
	if err := lp.Validate(); err != nil {
		return "", errors.Wrap(err, "previewing program")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `P = \begin{cases} \text{%s} \space %s(x) = & `, lp.Direction(), sym.Objective)

	obj := lp.ObjectiveVector()
	n := obj.Len()
	allZero := true
	for i := 0; i < n; i++ {
		if v := obj.AtVec(i); v != 0 || (allZero && i == n-1) {
			fmt.Fprintf(&b, "%s%s_{%d}", FormatNumber(v, Options{StartingSign: !allZero}), sym.Coefficient, i+1)
			allZero = false
		}
		if i < n-1 {
			b.WriteString(cellSep)
		}
	}
	fmt.Fprintf(&b, `%s%s\\`, cellSep, FormatNumber(lp.Objective[0], Options{ShowOnes: true, StartingSign: true}))

	coefs := lp.CoefMatrix()
	m, _ := coefs.Dims()
	sign := Sign(lp.ToMaximise)
	for i := 0; i < m; i++ {
		b.WriteString(cellSep)

		allZero := true
		for j := 0; j < n; j++ {
			if v := coefs.At(i, j); v != 0 || (allZero && j == n-1) {
				fmt.Fprintf(&b, "%s%s_{%d}%s", FormatNumber(v, Options{StartingSign: !allZero}), sym.Variable, j+1, cellSep)
				allZero = false
			} else {
				b.WriteString(cellSep)
			}
		}
		fmt.Fprintf(&b, `%s %s\\`, sign, FormatNumber(lp.Constants[i], Options{ShowOnes: true, NoSpace: true}))
	}

	if sym.Variable != sym.Coefficient {
		fmt.Fprintf(&b, `%s_{i}, i \in & \{%s\} & \geqslant 0`, sym.Coefficient, indexSet(m))
	}
	fmt.Fprintf(&b, `\\%s_{i}, i \in & \{%s\} & \geqslant 0`, sym.Variable, indexSet(n))
	b.WriteString(`\\\end{cases}`)

	return b.String(), nil
}

// indexSet lists 1..n, one per cell.
func indexSet(n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = fmt.Sprint(i + 1)
	}
	return strings.Join(parts, ", & ")
}
