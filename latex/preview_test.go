package latex

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/lptrace"
)

func TestPreviewParsed(t *testing.T) {
	lp, err := lptrace.Parse("1 1\n1\n2\n4\n1\n0 1")
	require.NoError(t, err)

	out, err := Preview(lp, DefaultSymbols())
	require.NoError(t, err)

	expected := `P = \begin{cases} \text{max} \space z(x) = & \space\space\space\space\space\space c_{1} & +\space0\\` +
		` & -\space\space\space x_{1} & \leqslant 4\\` +
		`c_{i}, i \in & \{1\} & \geqslant 0` +
		`\\x_{i}, i \in & \{1\} & \geqslant 0` +
		`\\\end{cases}`
	assert.Equal(t, expected, out)
}

func TestPreviewZeroTerms(t *testing.T) {
	lp := &lptrace.LinearProgram{
		M:         2,
		N:         3,
		Tight:     []int{1, 2},
		Loose:     []int{3, 4, 5},
		Constants: []float64{6, 1},
		Coefs:     [][]float64{{0, 2, 0}, {0, 0, 0}},
		Objective: []float64{-1, 0, 3, -1},
	}

	out, err := Preview(lp, DefaultSymbols())
	require.NoError(t, err)

	expected := `P = \begin{cases} \text{min} \space z(x) = &  & \space\space\space\space3c_{2} & -\space\space\space c_{3} & -\space1\\` +
		` &  & \space\space\space\space2x_{2} &  & \geqslant 6\\` +
		` &  &  & \space\space\space\space0x_{3} & \geqslant 1\\` +
		`c_{i}, i \in & \{1, & 2\} & \geqslant 0` +
		`\\x_{i}, i \in & \{1, & 2, & 3\} & \geqslant 0` +
		`\\\end{cases}`
	assert.Equal(t, expected, out)

	sym := DefaultSymbols()
	sym.Coefficient = sym.Variable
	out, err = Preview(lp, sym)
	require.NoError(t, err)
	assert.NotContains(t, out, `\{1, & 2\}`)
	assert.Contains(t, out, `\\x_{i}, i \in & \{1, & 2, & 3\} & \geqslant 0\\\end{cases}`)
}

func TestPreviewInvalid(t *testing.T) {
	_, err := Preview(&lptrace.LinearProgram{}, DefaultSymbols())
	require.Error(t, err)
	assert.True(t, errors.Is(err, lptrace.ErrInvalidM))
}
