package tableau

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/lptrace"
)

func TestTextTable(t *testing.T) {
	v := StepView{
		Kind:          FirstTableau,
		ColumnHeaders: []string{"RHS", "x1", "x2"},
		RowHeaders:    []string{"z", "x2"},
		Cells:         [][]lptrace.Fraction{{"0", "3", "5"}, {"8", "2", "1"}},
		PivotRow:      1,
		PivotColumn:   2,
	}

	expected := strings.Join([]string{
		"First tableau",
		"    | RHS | x1 | x2*",
		"----+-----+----+----",
		"z   |   0 |  3 |   5",
		"x2* |   8 |  2 | [1]",
	}, "\n")

	assert.Equal(t, expected, plainFormatter().Step(v))
}

func TestTextTableWideLabels(t *testing.T) {
	v := StepView{
		ColumnHeaders: []string{"RHS", "λ", "x1"},
		RowHeaders:    []string{"z", "λ"},
		Cells:         [][]lptrace.Fraction{{"-40 / 3", "0", "1"}, {"1", "1", "0"}},
		PivotRow:      -1,
		PivotColumn:   -1,
	}

	lines := strings.Split(plainFormatter().Table(v), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "  |   RHS | λ | x1", lines[0])
	assert.Equal(t, "z | -40/3 | 0 |  1", lines[2])
	assert.Equal(t, "λ |     1 | 1 |  0", lines[3])
}

func TestRenderFeasibleText(t *testing.T) {
	out := newRenderer(t).Render(loadResponse(t, "feasible.json"))
	require.Len(t, out, 5)

	assert.True(t, strings.HasPrefix(out[0], "First tableau\n"))
	assert.Contains(t, out[0], "| x2* |")
	assert.Contains(t, out[0], "y1* |")
	assert.Contains(t, out[0], "[3]")
	assert.True(t, strings.HasPrefix(out[1], "Step 1: entering variable x2, leaving variable y1\n"))
	assert.True(t, strings.HasPrefix(out[4], "Final tableau\n"))
	assert.NotContains(t, out[4], "*")
	assert.Contains(t, out[4], "-765/41")
}

func TestVariableLabel(t *testing.T) {
	for raw, expected := range map[string]string{
		"x0":  "x1",
		"y12": "y13",
		"x":   "x",
		"RHS": "RHS",
		"":    "",
		"λ3":  "λ4",
	} {
		assert.Equal(t, expected, VariableLabel(raw), raw)
	}
}

func TestPlainFraction(t *testing.T) {
	assert.Equal(t, "765/41", PlainFraction("765 / 41"))
	assert.Equal(t, "-3", PlainFraction(" -3 "))
	assert.Equal(t, "", PlainFraction(""))
}
