package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunParse(t *testing.T) {
	path := writeFile(t, "lp.txt", "1 1\n1\n2\n4\n1\n0 1\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"parse", "-min", path}, &stdout, &stderr))

	assert.JSONEq(t,
		`{"m":1,"n":1,"tight":[1],"loose":[2],"constants":[4],"coefs":[[-1]],"objective":[0,1],"toMaximise":false,"toInteger":false}`,
		stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRunParseVerbose(t *testing.T) {
	path := writeFile(t, "lp.txt", "1 1\n1\n2\n4\n1\n0 1\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"parse", "-v", path}, &stdout, &stderr))
	assert.Contains(t, stderr.String(), "parse: ")
}

func TestRunParseInvalid(t *testing.T) {
	path := writeFile(t, "lp.txt", "1 x\n")

	var stdout, stderr bytes.Buffer
	err := run([]string{"parse", path}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing "+path)
	assert.Empty(t, stdout.String())
}

func TestRunPreview(t *testing.T) {
	path := writeFile(t, "lp.txt", "1 1\n1\n2\n4\n1\n0 1\n")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"preview", path}, &stdout, &stderr))
	assert.True(t, strings.HasPrefix(stdout.String(), `P = \begin{cases} \text{max}`))
}

func TestRunRender(t *testing.T) {
	path := filepath.Join("..", "..", "tableau", "testdata", "feasible.json")

	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"render", path}, &stdout, &stderr))

	out := stdout.String()
	assert.True(t, strings.HasPrefix(out, "The optimum is z* = 765/41 with"))
	assert.Contains(t, out, "\nStep 1: entering variable x2, leaving variable y1\n")
	assert.Contains(t, out, "\nFinal tableau\n")

	stdout.Reset()
	require.NoError(t, run([]string{"render", "-latex", path}, &stdout, &stderr))
	assert.Contains(t, stdout.String(), `\text{Tableau final}`)
}

func TestRunRenderErrors(t *testing.T) {
	var stdout, stderr bytes.Buffer

	timeout := writeFile(t, "timeout.json", "null")
	err := run([]string{"render", timeout}, &stdout, &stderr)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "timed out")

	rejected := writeFile(t, "rejected.json", `{"error":"bad program","code":400,"status":"BAD_REQUEST","feasibility":-1}`)
	err = run([]string{"render", rejected}, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "program rejected: "))

	failed := writeFile(t, "failed.json", `{"error":"boom","code":500,"status":"INTERNAL_SERVER_ERROR","feasibility":-1}`)
	err = run([]string{"render", failed}, &stdout, &stderr)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "solver failure: "))
}

func TestRunUsage(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Error(t, run(nil, &stdout, &stderr))
	assert.Error(t, run([]string{"solve"}, &stdout, &stderr))
	assert.Error(t, run([]string{"render"}, &stdout, &stderr))
}
