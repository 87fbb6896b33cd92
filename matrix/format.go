// SPDX-License-Identifier: MIT

// Package matrix - textual dump of every logical cell.
//
// Layout: row-major, cells joined by the separator (default one space), one
// line per row, each line terminated by "\n". Absent cells print the default.
// A matrix without columns renders as the empty string.

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// String implements fmt.Stringer using the default print options.
// Complexity: O(rows*cols + n).
func (m *Sparse[T]) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, m) // strings.Builder never fails

	return sb.String()
}

// Fprint writes the full rows×cols rendering of m to w.
// MAIN DESCRIPTION:
//   - Human inspection helper; not a serialization format.
//
// Implementation:
//   - Stage 1: resolve print options.
//   - Stage 2: walk cells row-major while advancing a cursor over the sorted
//     entries, so each cell is resolved in O(1) instead of a lookup.
//   - Stage 3: flush the buffered writer and report the first write error.
//
// Errors:
//   - ErrNilMatrix when m is nil; any error from w.
//
// Complexity:
//   - Time O(rows*cols + n).
func Fprint[T any](w io.Writer, m *Sparse[T], opts ...PrintOption) error {
	if m == nil {
		return ErrNilMatrix
	}
	o := gatherPrintOptions(opts...)
	bw := bufio.NewWriter(w)

	next := 0 // index of the next stored entry in row-major order
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				_, _ = bw.WriteString(o.sep)
			}
			if next < len(m.entries) && m.entries[next].row == i && m.entries[next].col == j {
				cell := fmt.Sprintf(o.cellFmt, m.entries[next].Value)
				if o.highlight != nil {
					cell = o.highlight.Sprint(cell)
				}
				_, _ = bw.WriteString(cell)
				next++

				continue
			}
			_, _ = fmt.Fprintf(bw, o.cellFmt, m.def)
		}
		if m.cols > 0 {
			_ = bw.WriteByte('\n')
		}
	}

	// bufio.Writer keeps the first error and reports it on Flush.
	return bw.Flush()
}
