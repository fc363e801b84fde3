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
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/costela/lptrace"
	"github.com/costela/lptrace/tableau"
)

func loadResponse(t *testing.T, name string) *lptrace.SimplexResponse {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("..", "tableau", "testdata", name))
	require.NoError(t, err)

	resp, err := lptrace.DecodeResponse(data)
	require.NoError(t, err)

	return resp
}

func newRenderer(t *testing.T) *tableau.Renderer {
	t.Helper()

	r, err := tableau.NewRenderer(tableau.WithFormatter(NewFormatter()))
	require.NoError(t, err)
	return r
}

func TestTable(t *testing.T) {
	v := tableau.StepView{
		ColumnHeaders: []string{`\text{SM}`, `x_{1}`, `x_{2}`},
		RowHeaders:    []string{`\text{SM}`, `x_{2}`},
		Cells:         [][]lptrace.Fraction{{"0", "3", "5"}, {"8", "2", "1 / 2"}},
		PivotRow:      1,
		PivotColumn:   2,
	}

	expected := strings.Join([]string{
		`\begin{array} {|c|c|} \hline & `,
		`\text{SM} & x_{1} &  \color{RED} x_{2}\\ \hline `,
		`\text{SM} &  0 &  3 &  \color{RED}  5\\ \hline `,
		` \color{BLUE} x_{2} &  \color{BLUE}  8 &  \color{BLUE}  2 & \color{PURPLE} \frac{1}{2}\\ \hline `,
		`\end{array}`,
	}, "")

	assert.Equal(t, expected, NewFormatter().Table(v))
}

func TestTableWithoutPivot(t *testing.T) {
	v := tableau.StepView{
		ColumnHeaders: []string{`\text{SM}`, `x_{1}`},
		RowHeaders:    []string{`\text{SM}`, ``},
		Cells:         [][]lptrace.Fraction{{"-1", "0"}, {"4"}},
		PivotRow:      -1,
		PivotColumn:   -1,
	}

	expected := `\begin{array} {|c|c|} \hline & \text{SM} & x_{1}\\ \hline ` +
		`\text{SM} &  -\space1 &  0\\ \hline ` +
		` &  4 &  \\ \hline ` +
		`\end{array}`

	assert.Equal(t, expected, NewFormatter().Table(v))
}

func TestRenderFeasible(t *testing.T) {
	r := newRenderer(t)
	resp := loadResponse(t, "feasible.json")

	out := r.Render(resp)
	require.Len(t, out, 5)

	assert.True(t, strings.HasPrefix(out[0], `\text{Premier tableau}`+"\n"+`\begin{array}`))
	assert.Contains(t, out[0], `\text{SM} & x_{1} &  \color{RED} x_{2} & x_{3} & y_{1} & y_{2} & y_{3}\\ \hline `)
	assert.Contains(t, out[0], ` \color{BLUE} y_{1} & `)
	assert.Contains(t, out[0], `\color{PURPLE} 3`)
	assert.True(t, strings.HasPrefix(out[1], `\text{Étape 1: variable entrante: }x_{2}\text{, variable sortante }y_{1}`))
	assert.True(t, strings.HasPrefix(out[4], `\text{Tableau final}`))
	assert.Contains(t, out[4], `\frac{-\space765}{41}`)

	assert.Equal(t,
		`\text{L'optimum est } z* = \frac{765}{41} \text{avec }`+
			`c_{1}* = \frac{89}{41} \space c_{2}* = \frac{50}{41} \space c_{3}* = \frac{62}{41} \space  .`,
		r.SummarizeFeasibility(resp))
}

func TestRenderTwoPhase(t *testing.T) {
	out := newRenderer(t).Render(loadResponse(t, "twophase.json"))
	require.Len(t, out, 5)

	assert.True(t, strings.HasPrefix(out[0], `\text{Phase 1: Premier tableau}`))
	assert.Contains(t, out[0], `\text{SM} & \lambda &  \color{RED} x_{1} & x_{2} & y_{1}\\ \hline `)
	assert.True(t, strings.HasPrefix(out[1], `\text{Étape 1: variable entrante: }x_{1}\text{, variable sortante }\lambda`))
	assert.True(t, strings.HasPrefix(out[2], `\text{Phase 2: Premier tableau}`))
}

func TestFeasibilityVerdicts(t *testing.T) {
	f := NewFormatter()

	for feasibility, expected := range map[lptrace.Feasibility]string{
		lptrace.Infeasible:         `\text{Il n'y a pas de solution.}`,
		lptrace.Unbounded:          `\text{La solution est non restrainte.}`,
		lptrace.IterationLimit:     `\text{Le nombre maximal d'itérations a été atteint.}`,
		lptrace.FeasibilityUnknown: `\color{red}{\text{Erreur inconnue}}`,
	} {
		assert.Equal(t, expected, f.Feasibility(&lptrace.SimplexResponse{Feasibility: feasibility}))
	}
}

func TestLabels(t *testing.T) {
	labels := NewFormatter().Labels([]string{"RHS", "L", "x0", "y0"})

	assert.Equal(t, []string{`\text{SM}`, `x_{1}`, `y_{1}`}, labels.Columns)
	assert.Equal(t, `\text{SM}`, labels.Objective)
	assert.Equal(t, `\lambda`, labels.Auxiliary)
	assert.Equal(t, ``, labels.Placeholder)
}
