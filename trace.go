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

package lptrace

import (
	"math/big"
	"strings"
)

/* Types */

// Feasibility is the solver's verdict, encoded as a small integer on
// the wire.
type Feasibility int

const (
	FeasibilityUnknown = Feasibility(-1)
	Feasible           = Feasibility(0)
	Infeasible         = Feasibility(1)
	Unbounded          = Feasibility(2)
	IterationLimit     = Feasibility(3)
)

func (f Feasibility) String() string {
	switch f {
	case Feasible:
		return "feasible"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case IterationLimit:
		return "iteration limit reached"
	default:
		return "unknown"
	}
}

// Fraction is an exact rational serialized as "A" or "A/B". The solver
// puts spaces around the slash ("765 / 41"); both forms are accepted.
type Fraction string

// Split returns the trimmed numerator and denominator. The denominator
// is empty for whole numbers.
func (f Fraction) Split() (num, den string) {
	num, den, found := strings.Cut(string(f), "/")
	if !found {
		return strings.TrimSpace(num), ""
	}
	return strings.TrimSpace(num), strings.TrimSpace(den)
}

// Rat decodes the fraction. ok is false for anything that is not a
// valid rational with a non-zero denominator.
func (f Fraction) Rat() (r *big.Rat, ok bool) {
	num, den, isFraction := strings.Cut(string(f), "/")
	num = strings.TrimSpace(num)
	if num == "" {
		return nil, false
	}
	if !isFraction {
		return new(big.Rat).SetString(num)
	}

	n, ok := new(big.Rat).SetString(num)
	if !ok {
		return nil, false
	}
	d, ok := new(big.Rat).SetString(strings.TrimSpace(den))
	if !ok || d.Sign() == 0 {
		return nil, false
	}
	return n.Quo(n, d), true
}

// SimplexStep is one tableau snapshot of the solver's trace.
type SimplexStep struct {
	// In is the pivot column that produced this step, nil at the start of
	// a phase and on the final tableau.
	In *int `json:"in"`
	// Out is the pivot row that produced this step. The leaving variable
	// is found in the previous step's BasicID at Out-1.
	Out *int `json:"out"`
	// Twophase is set on steps of the auxiliary (λ) phase.
	Twophase bool `json:"twophase"`
	// Dualcut is set when the step adds an integer cut row.
	Dualcut bool `json:"dualcut"`
	// Table holds the objective row first, then one row per constraint.
	// Column 0 holds the constants.
	Table [][]Fraction `json:"table"`
	// BasicID holds, per constraint row, the 0-based variable index of
	// the basic variable. Index 0 is λ during the auxiliary phase and the
	// first decision variable afterwards.
	BasicID []int `json:"basicId"`
}

// Consistent reports whether the step honours the shape invariants: a
// rectangular table and one BasicID entry per constraint row.
func (s *SimplexStep) Consistent() bool {
	if len(s.Table) == 0 {
		return false
	}
	if len(s.BasicID) != len(s.Table)-1 {
		return false
	}
	width := len(s.Table[0])
	for _, row := range s.Table[1:] {
		if len(row) != width {
			return false
		}
	}
	return true
}

// SimplexResponse is the solver's answer for one LinearProgram.
type SimplexResponse struct {
	// transport metadata
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"error"`

	Feasibility Feasibility `json:"feasibility"`
	// Optimum and Values are only meaningful when Feasible.
	Optimum Fraction   `json:"optimum"`
	Values  []Fraction `json:"values"`
	// Steps are in chronological order.
	Steps []SimplexStep `json:"steps"`
	// Labels name the tableau columns: "RHS" first, then "L" (λ) and the
	// variables ("x0", ..., "y0", ...).
	Labels []string `json:"labels"`
}

// HasPhases reports whether any step belongs to the auxiliary phase.
func (r *SimplexResponse) HasPhases() bool {
	for i := range r.Steps {
		if r.Steps[i].Twophase {
			return true
		}
	}
	return false
}
