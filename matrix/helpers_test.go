// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures shared by the Sparse tests.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/sparsemat/matrix"
	"github.com/stretchr/testify/require"
)

// coord is a comparable (row, col) pair used to assert traversal order.
type coord struct{ R, C int }

// MustNew allocates a rows×cols Sparse or fails the test.
func MustNew[T any](t *testing.T, rows, cols int, def T) *matrix.Sparse[T] {
	t.Helper()
	m, err := matrix.New(rows, cols, def)
	require.NoError(t, err)

	return m
}

// MustAdd stores v at (row, col) or fails the test.
func MustAdd[T any](t *testing.T, m *matrix.Sparse[T], row, col int, v T) {
	t.Helper()
	require.NoError(t, m.Add(row, col, v))
}

// floatFixture builds the 10×10 float scenario: (0,1)=1.2, (9,9)=0, (3,2)=5.3.
func floatFixture(t *testing.T) *matrix.Sparse[float64] {
	t.Helper()
	m := MustNew(t, 10, 10, 0.0)
	MustAdd(t, m, 0, 1, 1.2)
	MustAdd(t, m, 9, 9, 0)
	MustAdd(t, m, 3, 2, 5.3)

	return m
}

// collectValues drains Values into a slice.
func collectValues[T any](m *matrix.Sparse[T]) []T {
	var out []T
	for v := range m.Values() {
		out = append(out, v)
	}

	return out
}

// collectCoords drains Entries into a slice of coordinates.
func collectCoords[T any](m *matrix.Sparse[T]) []coord {
	var out []coord
	for e := range m.Entries() {
		out = append(out, coord{e.Row(), e.Col()})
	}

	return out
}
