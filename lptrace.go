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

LPTrace turns the plain-text description of a linear program into a
validated model, and describes the step-by-step trace a tableau simplex
solver sends back for it.

The text format is line oriented:

    M N
    t_1 ... t_M            (tight variable indices)
    l_1 ... l_N            (loose variable indices)
    b_1 ... b_M            (constants)
    a_11 ... a_1N          (M constraint rows)
    ...
    c_0 c_1 ... c_N        (objective, constant first)

and is turned into a LinearProgram like this:

	package main

	import (
		"fmt"

		"github.com/costela/lptrace"
	)

	func main() {
		lp, err := lptrace.Parse("1 1\n1\n2\n4\n1\n0 1", lptrace.WithDirection(lptrace.Minimize))
		if err != nil {
			// err is a *lptrace.ValidationError naming the offending token and line
			panic(err)
		}

		fmt.Printf("%d constraints, %d variables\n", lp.M, lp.N)
	}

The solver's answer is decoded with DecodeResponse and rendered by the
tableau package (plain text) or the latex package.

*/
package lptrace

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

/* Types */

type direction bool

const (
	Minimize = direction(false)
	Maximize = direction(true)
)

func (d direction) String() string {
	if d == Maximize {
		return "max"
	}
	return "min"
}

// LinearProgram is the validated problem as sent to the solver. It is
// built once by the parser and should be treated as read-only.
type LinearProgram struct {
	// M is the number of constraints.
	M int `json:"m"`
	// N is the number of decision variables.
	N int `json:"n"`
	// Tight holds the 1-based indices of the tight (basic) variables.
	Tight []int `json:"tight"`
	// Loose holds the 1-based indices of the loose (non-basic) variables.
	Loose []int `json:"loose"`
	// Constants are the right hand side values, one per constraint.
	Constants []float64 `json:"constants"`
	// Coefs is the M×N constraint matrix, negated relative to the text
	// format.
	Coefs [][]float64 `json:"coefs"`
	// Objective holds the constant term at index 0, followed by the N
	// objective coefficients.
	Objective  []float64 `json:"objective"`
	ToMaximise bool      `json:"toMaximise"`
	ToInteger  bool      `json:"toInteger"`
}

// Direction returns the optimization direction of the program
func (lp *LinearProgram) Direction() direction {
	return direction(lp.ToMaximise)
}

// Validate checks the structural invariants of the program: positive
// dimensions, positive variable indices, finite numbers and consistent
// slice lengths.
func (lp *LinearProgram) Validate() error {
	if lp.M < 1 {
		return &ValidationError{Kind: InvalidM, Literal: fmt.Sprint(lp.M)}
	}
	if lp.N < 1 {
		return &ValidationError{Kind: InvalidN, Literal: fmt.Sprint(lp.N)}
	}

	if err := checkIndices("tight", lp.Tight, lp.M); err != nil {
		return err
	}
	if err := checkIndices("loose", lp.Loose, lp.N); err != nil {
		return err
	}

	if len(lp.Constants) != lp.M {
		return &ValidationError{Kind: TooFewValues, Field: "constants", Expected: lp.M, Found: len(lp.Constants)}
	}
	if err := checkFinite("constants", lp.Constants); err != nil {
		return err
	}

	if len(lp.Coefs) != lp.M {
		return &ValidationError{Kind: MissingLines, Field: "coefs", Expected: lp.M, Found: len(lp.Coefs)}
	}
	for _, row := range lp.Coefs {
		if len(row) != lp.N {
			return &ValidationError{Kind: TooFewValues, Field: "coefs", Expected: lp.N, Found: len(row)}
		}
		if err := checkFinite("coefs", row); err != nil {
			return err
		}
	}

	if len(lp.Objective) != lp.N+1 {
		return &ValidationError{Kind: TooFewValues, Field: "objective", Expected: lp.N + 1, Found: len(lp.Objective)}
	}
	return checkFinite("objective", lp.Objective)
}

func checkIndices(field string, indices []int, min int) error {
	if len(indices) < min {
		return &ValidationError{Kind: TooFewValues, Field: field, Expected: min, Found: len(indices)}
	}
	for _, idx := range indices {
		if idx <= 0 {
			return &ValidationError{Kind: InvalidNumber, Field: field, Literal: fmt.Sprint(idx)}
		}
	}
	return nil
}

func checkFinite(field string, values []float64) error {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{Kind: InvalidNumber, Field: field, Literal: fmt.Sprint(v)}
		}
	}
	return nil
}

// CoefMatrix returns a dense copy of the (negated) constraint matrix.
func (lp *LinearProgram) CoefMatrix() *mat.Dense {
	data := make([]float64, 0, lp.M*lp.N)
	for _, row := range lp.Coefs {
		data = append(data, row...)
	}
	return mat.NewDense(lp.M, lp.N, data)
}

// ObjectiveVector returns the N objective coefficients, without the
// constant term.
func (lp *LinearProgram) ObjectiveVector() *mat.VecDense {
	coefs := make([]float64, lp.N)
	copy(coefs, lp.Objective[1:])
	return mat.NewVecDense(lp.N, coefs)
}
