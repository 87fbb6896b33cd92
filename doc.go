// Package sparsemat is a small generic sparse-matrix toolkit: a container
// that stores only the cells you add and answers every other coordinate with
// a default value.
//
// What is inside:
//
//	matrix/              — Sparse[T]: ordered insert-or-overwrite, total lookups,
//	                       ordered traversal, Convert, Evaluate, console dumps
//	internal/scenario/   — YAML scenario files and the built-in self-test suite
//	cmd/sparsedemo/      — CLI driver (selftest, run)
//
// Quick ASCII example (3×3, default 0, three stored cells):
//
//	3 . .
//	. . 10
//	. 47 .
//
// Entries are kept in row-major order, so traversal visits (0,0), (1,2), (2,1).
//
//	go get github.com/katalvlaran/sparsemat
package sparsemat
