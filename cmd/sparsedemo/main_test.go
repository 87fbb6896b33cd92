package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/sparsemat/internal/scenario"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func nopLogger(bool) (*zap.Logger, error) { return zap.NewNop(), nil }

// execute runs the root command with args and returns its stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd(nopLogger)
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()

	return out.String(), err
}

func TestSelftestCommand(t *testing.T) {
	out, err := execute(t, "selftest")
	require.NoError(t, err)
	require.Contains(t, out, "=== TESTING PRIMITIVE TYPE: ===\nADD: PASSED\n")
	require.Contains(t, out, "32 47 50\n")
}

func TestSelftestColor(t *testing.T) {
	out, err := execute(t, "selftest", "--color")
	require.NoError(t, err)
	require.Contains(t, out, "\x1b[32;1m32\x1b[0m") // stored cells highlighted
}

func TestRunCommand(t *testing.T) {
	path := filepath.Join("..", "..", "scenarios", "float-demo.yaml")
	out, err := execute(t, "run", path, "-v")
	require.NoError(t, err)
	require.Contains(t, out, "evaluate(x > 1) = 3\n")
}

func TestRunCommandExpectationFailure(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	writeFile(t, path, "rows: 1\ncols: 1\nentries:\n  - {row: 0, col: 0, value: 2}\nexpect: {len: 2}\n")

	_, err := execute(t, "run", path)
	require.ErrorIs(t, err, scenario.ErrExpectation)
}

func TestRunCommandNeedsArgs(t *testing.T) {
	_, err := execute(t, "run")
	require.Error(t, err)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
