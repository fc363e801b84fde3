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
	"io"
	"math"
	"strings"

	"github.com/pkg/errors"
)

const (
	// M N, tight, loose, constants and objective lines
	minLines = 5
	// largest dimension or index the solver accepts
	maxIndex = math.MaxInt32
)

/* Types */

// Parser turns the text format into a LinearProgram. A Parser holds no
// state besides its options and can be shared between goroutines.
type Parser struct {
	logger    Logger
	direction direction
	integer   bool
}

// NewParser instantiates a parser. Programs it returns are maximisation,
// non-integer problems unless told otherwise by the options.
func NewParser(opts ...Option) (*Parser, error) {
	p := &Parser{
		logger:    noopLogger{},
		direction: Maximize,
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, fmt.Errorf("applying parser option: %w", err)
		}
	}

	return p, nil
}

// Parse is a shorthand for NewParser followed by Parser.Parse.
func Parse(raw string, opts ...Option) (*LinearProgram, error) {
	p, err := NewParser(opts...)
	if err != nil {
		return nil, err
	}

	return p.Parse(raw)
}

// ParseReader reads the whole content of r and parses it.
func ParseReader(r io.Reader, opts ...Option) (*LinearProgram, error) {
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "reading linear program")
	}

	return Parse(string(content), opts...)
}

// Parse validates the raw text and builds the LinearProgram it
// describes. Any error is a *ValidationError; no partial program is ever
// returned.
func (p *Parser) Parse(raw string) (*LinearProgram, error) {
	content := normalize(raw)

	if err := checkContent(content); err != nil {
		return nil, err
	}

	lp, err := p.parseLines(splitLines(content))
	if err != nil {
		return nil, err
	}

	if err := lp.Validate(); err != nil {
		return nil, err
	}

	return lp, nil
}

/* Structural pass */

func splitLines(content string) [][]string {
	raw := strings.Split(content, "\n")
	lines := make([][]string, len(raw))
	for i, l := range raw {
		lines[i] = strings.Fields(l)
	}
	return lines
}

func (p *Parser) parseLines(lines [][]string) (*LinearProgram, error) {
	if len(lines) < minLines {
		return nil, &ValidationError{Kind: InsufficientLines, Expected: minLines, Found: len(lines)}
	}

	header := lines[0]
	if len(header) != 2 {
		return nil, &ValidationError{Kind: MalformedHeader, Line: 1}
	}

	m, err := parseDimension(header[0], InvalidM)
	if err != nil {
		return nil, err
	}
	n, err := parseDimension(header[1], InvalidN)
	if err != nil {
		return nil, err
	}
	p.logf("M: %d, N: %d", m, n)

	if len(lines) < minLines+m {
		return nil, &ValidationError{Kind: MissingLines, Expected: minLines + m, Found: len(lines)}
	}
	if extra := len(lines) - minLines - m; extra > 0 {
		p.logf("ignoring %d trailing line(s)", extra)
	}

	lp := &LinearProgram{
		M:          m,
		N:          n,
		ToMaximise: bool(p.direction),
		ToInteger:  p.integer,
	}

	if lp.Tight, err = parseIndices(lines[1], 2, "tight", m); err != nil {
		return nil, err
	}
	p.logf("tight: %v", lp.Tight)

	if lp.Loose, err = parseIndices(lines[2], 3, "loose", n); err != nil {
		return nil, err
	}
	p.logf("loose: %v", lp.Loose)

	if lp.Constants, err = p.parseValues(lines[3], 4, "constants", m, false); err != nil {
		return nil, err
	}
	p.logf("constants: %v", lp.Constants)

	lp.Coefs = make([][]float64, m)
	for i := range lp.Coefs {
		// the text states rows the other way round from what the solver expects
		if lp.Coefs[i], err = p.parseValues(lines[4+i], 5+i, "coefs", n, true); err != nil {
			return nil, err
		}
	}
	p.logf("coefs: %v", lp.Coefs)

	if lp.Objective, err = p.parseValues(lines[4+m], 5+m, "objective", n+1, false); err != nil {
		return nil, err
	}
	p.logf("objective: %v", lp.Objective)

	return lp, nil
}

func parseDimension(tok string, kind ValidationKind) (int, error) {
	v, err := LexNumber(tok)
	if err != nil {
		return 0, &ValidationError{Kind: kind, Line: 1, Literal: tok, Cause: err}
	}

	d := math.Floor(v)
	if d < 1 || d > maxIndex {
		return 0, &ValidationError{Kind: kind, Line: 1, Literal: tok}
	}

	return int(d), nil
}

// parseIndices reads every token of an index line; at least min are
// required and each must be a positive integer.
func parseIndices(tokens []string, line int, field string, min int) ([]int, error) {
	if len(tokens) < min {
		return nil, &ValidationError{Kind: TooFewValues, Line: line, Field: field, Expected: min, Found: len(tokens)}
	}

	indices := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := LexNumber(tok)
		if err != nil {
			return nil, &ValidationError{Kind: InvalidNumber, Line: line, Field: field, Literal: tok, Cause: err}
		}
		if v <= 0 || v != math.Trunc(v) || v > maxIndex {
			return nil, &ValidationError{Kind: InvalidNumber, Line: line, Field: field, Literal: tok}
		}
		indices[i] = int(v)
	}

	return indices, nil
}

// parseValues lexes every token of a line and keeps the first count of
// them, negated if asked to.
func (p *Parser) parseValues(tokens []string, line int, field string, count int, negate bool) ([]float64, error) {
	if len(tokens) < count {
		return nil, &ValidationError{Kind: TooFewValues, Line: line, Field: field, Expected: count, Found: len(tokens)}
	}

	values := make([]float64, 0, count)
	for _, tok := range tokens {
		v, err := LexNumber(tok)
		if err != nil {
			return nil, &ValidationError{Kind: InvalidNumber, Line: line, Field: field, Literal: tok, Cause: err}
		}
		if len(values) == count {
			continue
		}
		if negate && v != 0 {
			v = -v
		}
		values = append(values, v)
	}

	if extra := len(tokens) - count; extra > 0 {
		p.logf("line %d (%s): ignoring %d surplus value(s)", line, field, extra)
	}

	return values, nil
}

func (p *Parser) logf(format string, v ...interface{}) {
	p.logger.Print(fmt.Sprintf(format, v...))
}
