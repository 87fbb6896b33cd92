// Package matrix provides Sparse, a generic two-dimensional container that
// stores only explicitly added (row, col, value) entries and reports a
// caller-supplied default value for every other coordinate.
//
// The matrix package provides:
//
//   - Sparse[T] with insert-or-overwrite Add, total At lookups and a fixed
//     rows×cols extent checked on every write (ErrOutOfRange).
//   - Ordered traversal: range-over-func sequences (All, Entries, Values) and
//     begin/end Cursors, all in ascending row-major order.
//   - Convert for building a Sparse[T] from a Sparse[U] through an explicit
//     mapping, plus Dense/FromDense interop with [][]T grids.
//   - Evaluate for predicate counts and Fprint/String for console dumps.
//
// Entries live in a single slice sorted by (row, col). Lookups binary-search
// it; inserts shift the tail. This suits small or very sparse matrices and is
// not meant for numerical workloads.
//
// A Sparse is not safe for concurrent use.
//
// See the examples in this package for usage patterns.
package matrix
