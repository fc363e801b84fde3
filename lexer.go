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
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

type LexReason int

const (
	EmptyToken LexReason = iota + 1
	InvalidCharacter
	DoubleDash
	DoublePoint
	DashSpace
	PointSpace
	TrailingSign
	MisplacedDash
	MultiplePoints
	LeadingZero
	OutOfRange
)

func (r LexReason) String() string {
	switch r {
	case EmptyToken:
		return "empty token"
	case InvalidCharacter:
		return "invalid character"
	case DoubleDash:
		return "two consecutive dashes"
	case DoublePoint:
		return "two consecutive decimal points"
	case DashSpace:
		return "dash followed by whitespace"
	case PointSpace:
		return "decimal point next to whitespace"
	case TrailingSign:
		return "trailing dash or decimal point"
	case MisplacedDash:
		return "dash after a digit"
	case MultiplePoints:
		return "more than one decimal point"
	case LeadingZero:
		return "leading zero"
	case OutOfRange:
		return "out of range"
	default:
		return "unknown"
	}
}

// LexError reports a token rejected by LexNumber.
type LexError struct {
	Token  string
	Reason LexReason
}

func (e *LexError) Error() string {
	return fmt.Sprintf("invalid number %q: %s", e.Token, e.Reason)
}

// LexNumber decodes a single numeric token: an optional leading dash,
// digits and at most one decimal point. A comma is accepted in place of
// the decimal point.
func LexNumber(token string) (float64, error) {
	tok := strings.ReplaceAll(token, ",", ".")

	if reason := classifyToken(tok); reason != 0 {
		return 0, &LexError{Token: token, Reason: reason}
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, &LexError{Token: token, Reason: OutOfRange}
	}

	// -0 would otherwise survive into the JSON encoding
	if v == 0 {
		v = 0
	}

	return v, nil
}

// classifyToken returns the first rule the token breaks, or 0.
func classifyToken(tok string) LexReason {
	if tok == "" {
		return EmptyToken
	}

	for i, r := range tok {
		switch {
		case unicode.IsSpace(r):
			if i > 0 && tok[i-1] == '-' {
				return DashSpace
			}
			next := i + utf8.RuneLen(r)
			if (i > 0 && tok[i-1] == '.') || (next < len(tok) && tok[next] == '.') {
				return PointSpace
			}
			return InvalidCharacter
		case r > unicode.MaxASCII, r != '-' && r != '.' && !isDigit(byte(r)):
			return InvalidCharacter
		}
	}

	switch {
	case strings.Contains(tok, "--"):
		return DoubleDash
	case strings.Contains(tok, ".."):
		return DoublePoint
	case strings.HasSuffix(tok, "-"), strings.HasSuffix(tok, "."):
		return TrailingSign
	case tok[0] == '.':
		// in running text this is a point right after whitespace
		return PointSpace
	case strings.LastIndexByte(tok, '-') > 0:
		return MisplacedDash
	case strings.Count(tok, ".") > 1:
		return MultiplePoints
	}

	digits := strings.TrimPrefix(tok, "-")
	if len(digits) > 1 && digits[0] == '0' && isDigit(digits[1]) {
		return LeadingZero
	}

	return 0
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// normalize unifies line endings, turns decimal commas into points and
// trims the surrounding whitespace.
func normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, ",", ".")
	return strings.TrimSpace(s)
}

// checkContent is the coarse pass: the whole text may only hold digits,
// dashes, points, spaces and newlines, and none of its tokens may break
// a lexing rule.
func checkContent(content string) error {
	flat := strings.ReplaceAll(content, "\n", " ")
	if flat == "" {
		return &ValidationError{Kind: NotNumeric}
	}

	for _, r := range flat {
		if r > unicode.MaxASCII || r != ' ' && r != '-' && r != '.' && !isDigit(byte(r)) {
			return &ValidationError{Kind: NotNumeric, Literal: string(r)}
		}
	}

	for _, tok := range strings.Split(flat, " ") {
		if tok == "" {
			continue
		}
		if reason := classifyToken(tok); reason != 0 {
			return &ValidationError{
				Kind:    NotNumeric,
				Literal: tok,
				Cause:   &LexError{Token: tok, Reason: reason},
			}
		}
	}

	return nil
}
