// SPDX-License-Identifier: MIT

// Package matrix - converting construction and dense interop.
//
// Convert builds a matrix of another value type through an explicit mapping,
// so the conversion rule is always visible at the call site. Dense and
// FromDense move between the sparse form and a full [][]T grid.

package matrix

import "fmt"

// Convert returns a new matrix with src's dimensions and coordinates, where
// every stored value and the default are passed through cast.
// MAIN DESCRIPTION:
//   - Heterogeneous-type construction (numeric narrowing, wrapping, ...).
//
// Implementation:
//   - Stage 1: validate src and cast are non-nil.
//   - Stage 2: allocate exactly Len() entries and map them in storage order.
//
// Behavior highlights:
//   - Entry count, coordinates and relative order are preserved, so the sort
//     invariant carries over without re-sorting.
//   - The result owns its entries; no reference to src is kept.
//
// Errors:
//   - ErrNilMatrix, ErrNilCast.
//
// Complexity:
//   - Time O(n) calls to cast, Space O(n).
func Convert[U, T any](src *Sparse[U], cast func(U) T) (*Sparse[T], error) {
	if src == nil {
		return nil, ErrNilMatrix
	}
	if cast == nil {
		return nil, ErrNilCast
	}

	out := make([]Entry[T], len(src.entries))
	for i, e := range src.entries {
		out[i] = Entry[T]{row: e.row, col: e.col, Value: cast(e.Value)}
	}

	return &Sparse[T]{
		rows:    src.rows,
		cols:    src.cols,
		def:     cast(src.def),
		entries: out,
	}, nil
}

// Dense materializes the full Rows()×Cols() grid, filling absent cells with
// the default value.
// Complexity: O(rows*cols + n).
func (m *Sparse[T]) Dense() [][]T {
	grid := make([][]T, m.rows)
	for i := range grid {
		row := make([]T, m.cols)
		for j := range row {
			row[j] = m.def
		}
		grid[i] = row
	}
	for _, e := range m.entries {
		grid[e.row][e.col] = e.Value
	}

	return grid
}

// FromDense builds a sparse matrix from a rectangular grid, storing only the
// cells that differ from def. The extent is len(grid) × len(grid[0]).
//
// Errors:
//   - ErrDimensionMismatch when rows have different lengths.
//
// Complexity: O(rows*cols); entries are appended already sorted.
func FromDense[T comparable](grid [][]T, def T) (*Sparse[T], error) {
	rows, cols := len(grid), 0
	if rows > 0 {
		cols = len(grid[0])
	}

	m := &Sparse[T]{rows: rows, cols: cols, def: def}
	for i, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("FromDense: row %d has %d cells, want %d: %w",
				i, len(row), cols, ErrDimensionMismatch)
		}
		for j, v := range row {
			if v != def {
				m.entries = append(m.entries, Entry[T]{row: i, col: j, Value: v})
			}
		}
	}

	return m, nil
}
