// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (sorted coordinate list) & safe accessors.
//
// Purpose:
//   - Materialize only explicitly inserted cells; every other coordinate reads
//     as the caller-supplied default value.
//   - Keep entries in strictly ascending row-major order with unique
//     coordinates (the sort invariant) after every mutation.
//   - Guarantee safety at the public surface: Add returns errors instead of
//     panicking; At is total and never fails.
//
// Complexity quicksheet:
//   - New: O(capacity); Add: O(log n) search + O(n) shift; At: O(log n);
//     Clone: O(n); traversal: O(n).

package matrix

import (
	"fmt"
	"slices"
)

// Sparse is a rows×cols matrix that stores only explicitly added entries.
//   - rows,cols hold the declared extent; fixed at construction.
//   - def is returned for every coordinate without a stored entry.
//   - entries is sorted by (row, col) ascending with no duplicate coordinates.
//
// A Sparse is not safe for concurrent use; callers sharing one across
// goroutines must synchronize externally.
type Sparse[T any] struct {
	rows, cols int        // declared extent (>= 0)
	def        T          // default value for absent coordinates
	entries    []Entry[T] // row-major sorted, unique coordinates
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse[float64])(nil)

// New creates an empty rows×cols sparse matrix with default value def.
// MAIN DESCRIPTION:
//   - Public constructor with shape validation and optional preallocation.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and allocate the (possibly empty) entry slice.
//
// Behavior highlights:
//   - A 0×N or N×0 matrix is legal; every Add on it fails with ErrOutOfRange.
//
// Errors:
//   - ErrInvalidDimensions on negative dimensions.
//
// Complexity:
//   - Time O(capacity), Space O(capacity).
func New[T any](rows, cols int, def T, opts ...Option) (*Sparse[T], error) {
	if rows < 0 || cols < 0 {
		return nil, fmt.Errorf("New(%d,%d): %w", rows, cols, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)

	return &Sparse[T]{
		rows:    rows,
		cols:    cols,
		def:     def,
		entries: make([]Entry[T], 0, o.capacity),
	}, nil
}

// Rows returns the declared number of rows.
// Complexity: O(1).
func (m *Sparse[T]) Rows() int { return m.rows }

// Cols returns the declared number of columns.
// Complexity: O(1).
func (m *Sparse[T]) Cols() int { return m.cols }

// Default returns the value reported for coordinates without an entry.
// Complexity: O(1).
func (m *Sparse[T]) Default() T { return m.def }

// Len returns the number of stored entries.
// Complexity: O(1).
func (m *Sparse[T]) Len() int { return len(m.entries) }

// search locates (row, col) in the sorted entry slice.
// Returns the slot index and whether the coordinate is stored. When it is not,
// the index is the first entry greater than (row, col), i.e. the insertion point.
func (m *Sparse[T]) search(row, col int) (int, bool) {
	return slices.BinarySearchFunc(m.entries, Entry[T]{row: row, col: col}, func(e, target Entry[T]) int {
		return compareCoord(e.row, e.col, target.row, target.col)
	})
}

// Add stores v at (row, col).
// MAIN DESCRIPTION:
//   - Insert-or-overwrite that preserves the sort invariant.
//
// Implementation:
//   - Stage 1: validate 0 <= row < Rows() and 0 <= col < Cols().
//   - Stage 2: binary search for the coordinate.
//   - Stage 3: overwrite in place when found; otherwise insert at the first
//     entry greater than (row, col), or append when none is greater.
//
// Behavior highlights:
//   - Entry count grows only on true insertions.
//   - On error the matrix is left untouched.
//
// Errors:
//   - ErrOutOfRange (wrapped with "Sparse.Add(row,col)").
//
// Complexity:
//   - Time O(log n) to locate, O(n) worst case to shift on insert; amortized
//     slice growth.
func (m *Sparse[T]) Add(row, col int, v T) error {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return sparseErrorf(ctxAdd, row, col, ErrOutOfRange)
	}

	idx, found := m.search(row, col)
	if found {
		m.entries[idx].Value = v

		return nil
	}
	m.entries = slices.Insert(m.entries, idx, Entry[T]{row: row, col: col, Value: v})

	return nil
}

// Set is an alias for Add, matching the At/Set naming used by dense matrices.
func (m *Sparse[T]) Set(row, col int, v T) error {
	return m.Add(row, col, v)
}

// At returns the value stored at (row, col), or Default() when absent.
// Coordinates outside the declared extent simply read as absent.
// Complexity: O(log n).
func (m *Sparse[T]) At(row, col int) T {
	if idx, found := m.search(row, col); found {
		return m.entries[idx].Value
	}

	return m.def
}

// Lookup is like At but also reports whether (row, col) holds a stored entry.
// A stored value equal to the default still reports true.
func (m *Sparse[T]) Lookup(row, col int) (T, bool) {
	if idx, found := m.search(row, col); found {
		return m.entries[idx].Value, true
	}

	return m.def, false
}

// Clone returns a deep copy of the matrix; the result shares no storage with m.
// Note: values are copied by assignment, so reference-typed T (pointers,
// slices, maps) still alias their referents.
// Complexity: O(n).
func (m *Sparse[T]) Clone() *Sparse[T] {
	return &Sparse[T]{
		rows:    m.rows,
		cols:    m.cols,
		def:     m.def,
		entries: slices.Clone(m.entries),
	}
}
