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
	"math/big"

	"github.com/costela/lptrace"
)

var (
	ratZero = big.NewRat(0, 1)
	ratOne  = big.NewRat(1, 1)
)

// BasicColumn finds the column of the basic variable of a row: the first
// column, after the constants, holding exactly 1 in that row and exactly 0
// in every other row.
func BasicColumn(table [][]lptrace.Fraction, row int) (int, bool) {
	if row < 0 || row >= len(table) {
		return 0, false
	}

	for k := 1; k < len(table[row]); k++ {
		if !equals(table[row][k], ratOne) {
			continue
		}

		unit := true
		for l := range table {
			if l == row {
				continue
			}
			if k >= len(table[l]) || !equals(table[l][k], ratZero) {
				unit = false
				break
			}
		}

		if unit {
			return k, true
		}
	}

	return 0, false
}

func equals(f lptrace.Fraction, v *big.Rat) bool {
	r, ok := f.Rat()
	return ok && r.Cmp(v) == 0
}

// ResolveRowLabel returns the label of the variable basic in the given
// row. Row 0 is the objective and row 1 of an auxiliary-phase table is λ;
// both use their reserved label. Other rows are resolved by BasicColumn and
// get labels.Placeholder when no unit column exists.
func ResolveRowLabel(table [][]lptrace.Fraction, row int, labels Labels, twophase bool) string {
	switch {
	case row == 0:
		return labels.Objective
	case twophase && row == 1:
		return labels.Auxiliary
	}

	col, ok := BasicColumn(table, row)
	if !ok {
		return labels.Placeholder
	}
	return labels.Column(col, twophase)
}
