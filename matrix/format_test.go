// SPDX-License-Identifier: MIT

package matrix_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/fatih/color"
	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// prettyFixture is the 3×3 int matrix of the demonstration driver.
func prettyFixture(t *testing.T) *matrix.Sparse[int] {
	t.Helper()
	m := MustNew(t, 3, 3, 0)
	MustAdd(t, m, 0, 0, 3)
	MustAdd(t, m, 0, 1, 2)
	MustAdd(t, m, 0, 2, 5)
	MustAdd(t, m, 1, 0, 6)
	MustAdd(t, m, 1, 2, 10)
	MustAdd(t, m, 2, 0, 32)
	MustAdd(t, m, 2, 1, 47)
	MustAdd(t, m, 2, 2, 50)

	return m
}

// TestString checks the space-separated, newline-per-row layout.
func TestString(t *testing.T) {
	require.Equal(t, "3 2 5\n6 0 10\n32 47 50\n", prettyFixture(t).String())
}

// TestStringZeroColumns checks a matrix without columns renders as "".
func TestStringZeroColumns(t *testing.T) {
	require.Equal(t, "", MustNew(t, 4, 0, 0).String())
}

// TestFprintOptions exercises separator and cell format overrides.
func TestFprintOptions(t *testing.T) {
	m := MustNew(t, 2, 2, 0.0)
	MustAdd(t, m, 1, 0, 1.5)

	var buf bytes.Buffer
	err := matrix.Fprint(&buf, m, matrix.WithSeparator(","), matrix.WithCellFormat("%.1f"))
	require.NoError(t, err)
	require.Equal(t, "0.0,0.0\n1.5,0.0\n", buf.String())

	require.Panics(t, func() { matrix.WithCellFormat("") })
}

// TestFprintHighlight checks stored cells are wrapped in color escapes.
func TestFprintHighlight(t *testing.T) {
	m := MustNew(t, 1, 3, 0)
	MustAdd(t, m, 0, 1, 7)

	red := color.New(color.FgRed)
	red.EnableColor() // force escapes even when stdout is not a terminal

	var buf bytes.Buffer
	require.NoError(t, matrix.Fprint(&buf, m, matrix.WithHighlight(red)))
	require.Equal(t, "0 \x1b[31m7\x1b[0m 0\n", buf.String())
}

// failWriter fails every write.
type failWriter struct{}

var errWrite = errors.New("write refused")

func (failWriter) Write([]byte) (int, error) { return 0, errWrite }

// TestFprintErrors checks nil matrices and writer failures are reported.
func TestFprintErrors(t *testing.T) {
	require.ErrorIs(t, matrix.Fprint[int](&bytes.Buffer{}, nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.Fprint(failWriter{}, prettyFixture(t)), errWrite)
}
