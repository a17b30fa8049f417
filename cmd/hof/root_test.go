package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-hof/internal/demo"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestList(t *testing.T) {
	out, _, err := execute(t, "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, len(demo.Tutorial().Examples()))
	require.Contains(t, lines[0], "pass-multiply")
}

func TestRunText(t *testing.T) {
	out, _, err := execute(t, "run", "reduce-sum", "filter-array")
	require.NoError(t, err)
	require.Equal(t, "reduce/reduce-sum: 25\nfilter/filter-array: [2 4 6 8]\n", out)
}

func TestRunJSON(t *testing.T) {
	out, _, err := execute(t, "run", "--format", "json", "reduce-strings")
	require.NoError(t, err)

	var got []demo.Result
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	require.Equal(t, "ambymbayi", got[0].Value)
}

func TestRunAll(t *testing.T) {
	out, _, err := execute(t, "run", "-f", "table")
	require.NoError(t, err)
	require.Contains(t, out, "compactmap-dictionary")
}

func TestRunUnknownExample(t *testing.T) {
	_, _, err := execute(t, "run", "nope")
	require.ErrorIs(t, err, demo.ErrUnknownExample)
}

func TestRunUnknownFormat(t *testing.T) {
	_, _, err := execute(t, "run", "--format", "xml")
	require.Error(t, err)
}

func TestVerboseLogsToStderr(t *testing.T) {
	out, errOut, err := execute(t, "run", "-v", "return-add")
	require.NoError(t, err)
	require.Equal(t, "functions/return-add: 9\n", out)
	require.Contains(t, errOut, "running examples")
}

func TestFormatFromEnv(t *testing.T) {
	t.Setenv(envFormat, "json")
	out, _, err := execute(t, "run", "return-multiply")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(strings.TrimSpace(out), "["))
}
