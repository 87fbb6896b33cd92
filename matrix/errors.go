// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Public methods return these sentinels (optionally wrapped with call
// context) and tests check them via errors.Is. Panics are reserved for
// programmer errors in option constructors.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Methods wrap with sparseErrorf so the sentinel
// survives %w and callers still match via errors.Is.

var (
	// ErrOutOfRange indicates that a row or column is outside [0,rows) x [0,cols).
	// Add/Set and cursor writes past the end return this, never panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrInvalidDimensions indicates that requested matrix dimensions are negative.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be >= 0")

	// ErrNilMatrix indicates that a nil *Sparse was passed as an argument.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNilCast indicates that Convert was called without a value mapping.
	ErrNilCast = errors.New("matrix: nil cast function")

	// ErrReadOnly is returned when a write goes through a read-only cursor.
	ErrReadOnly = errors.New("matrix: read-only cursor")

	// ErrDimensionMismatch indicates a ragged dense grid in FromDense.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")
)

// ---------- error context tags ----------

const (
	ctxAdd      = "Add"      // method tag used in error wrappers
	ctxSetValue = "SetValue" // cursor write tag
)

// sparseErrorf wraps a sentinel with a uniform Sparse context and coordinates.
// Output shape: "Sparse.<method>(row,col): <sentinel>".
// Complexity: O(1).
func sparseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, row, col, err)
}
