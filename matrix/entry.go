// SPDX-License-Identifier: MIT

package matrix

import "fmt"

// Entry is a stored (row, col, value) triple.
// Coordinates are fixed at creation and exposed only through Row and Col;
// Value may be overwritten in place (by Add on the same coordinate, or through
// a mutable traversal).
type Entry[T any] struct {
	row, col int // immutable coordinates
	Value    T   // mutable payload
}

// Row returns the entry's row coordinate.
func (e Entry[T]) Row() int { return e.row }

// Col returns the entry's column coordinate.
func (e Entry[T]) Col() int { return e.col }

// String renders the entry as "(row,col)=value".
func (e Entry[T]) String() string {
	return fmt.Sprintf("(%d,%d)=%v", e.row, e.col, e.Value)
}

// compareCoord orders coordinates row-major: by row, then by column.
// Returns -1, 0 or +1 in the style of cmp.Compare.
func compareCoord(r1, c1, r2, c2 int) int {
	switch {
	case r1 < r2:
		return -1
	case r1 > r2:
		return 1
	case c1 < c2:
		return -1
	case c1 > c2:
		return 1
	}

	return 0
}
