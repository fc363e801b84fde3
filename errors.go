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
	"fmt"
)

/* Types */

type ValidationKind int

const (
	NotNumeric ValidationKind = iota + 1
	InsufficientLines
	MalformedHeader
	InvalidM
	InvalidN
	MissingLines
	TooFewValues
	InvalidNumber
)

// Sentinels usable with errors.Is against any *ValidationError of the same kind.
var (
	ErrNotNumeric        = &ValidationError{Kind: NotNumeric}
	ErrInsufficientLines = &ValidationError{Kind: InsufficientLines}
	ErrMalformedHeader   = &ValidationError{Kind: MalformedHeader}
	ErrInvalidM          = &ValidationError{Kind: InvalidM}
	ErrInvalidN          = &ValidationError{Kind: InvalidN}
	ErrMissingLines      = &ValidationError{Kind: MissingLines}
	ErrTooFewValues      = &ValidationError{Kind: TooFewValues}
	ErrInvalidNumber     = &ValidationError{Kind: InvalidNumber}
)

// ValidationError is returned by the parser when the text does not
// describe a valid LinearProgram. Parsing stops at the first problem.
type ValidationError struct {
	Kind ValidationKind
	// Line is the 1-based line of the problem, 0 when not tied to a line.
	Line int
	// Field names the part of the program being read ("tight", "coefs", ...).
	Field string
	// Literal is the offending token, if any.
	Literal string
	// Expected and Found carry counts for the line/value count errors.
	Expected int
	Found    int
	// Cause is the lexer error behind InvalidNumber/NotNumeric, if any.
	Cause error
}

// Error returns a human-readable description of the validation failure.
func (e *ValidationError) Error() string {
	var msg string

	switch e.Kind {
	case NotNumeric:
		msg = "content is not made of valid numbers"
		if e.Literal != "" {
			msg += fmt.Sprintf(" (near %q)", e.Literal)
		}
	case InsufficientLines:
		msg = fmt.Sprintf("not enough lines (at least %d expected, %d found)", e.Expected, e.Found)
	case MalformedHeader:
		msg = "first line does not contain exactly two numbers"
	case InvalidM:
		msg = fmt.Sprintf("M must be a number greater or equal to 1 (got %s)", e.Literal)
	case InvalidN:
		msg = fmt.Sprintf("N must be a number greater or equal to 1 (got %s)", e.Literal)
	case MissingLines:
		msg = fmt.Sprintf("not enough lines (%d expected, %d found)", e.Expected, e.Found)
	case TooFewValues:
		msg = fmt.Sprintf("not enough values (%d expected, %d found)", e.Expected, e.Found)
	case InvalidNumber:
		msg = fmt.Sprintf("%q is not a valid number", e.Literal)
	default:
		msg = "invalid content"
	}

	switch {
	case e.Line > 0 && e.Field != "":
		return fmt.Sprintf("line %d (%s): %s", e.Line, e.Field, msg)
	case e.Line > 0:
		return fmt.Sprintf("line %d: %s", e.Line, msg)
	case e.Field != "":
		return fmt.Sprintf("%s: %s", e.Field, msg)
	}
	return msg
}

// Is reports whether target is a *ValidationError of the same kind.
func (e *ValidationError) Is(target error) bool {
	t, ok := target.(*ValidationError)
	return ok && t.Kind == e.Kind
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}
