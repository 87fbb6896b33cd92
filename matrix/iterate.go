// SPDX-License-Identifier: MIT

// Package matrix - traversal over stored entries.
//
// Two flavors share one storage order (ascending row-major):
//   - range-over-func sequences: All (mutable Ref handles), Entries and Values
//     (read-only copies);
//   - begin/end cursors: Begin/End (mutable), ConstBegin/ConstEnd (read-only).
//
// Every sequence is forward-only, finite and restartable: each range over the
// returned function starts from the first entry again. The bound is the entry
// count when the traversal starts. Adding entries mid-traversal is unsupported.

package matrix

import (
	"fmt"
	"iter"
)

// Ref is a mutable handle to a stored entry, handed out by All.
// The value can be read and overwritten in place; the coordinates are
// read-only. A Ref is valid until the next Add on its matrix.
type Ref[T any] struct {
	e *Entry[T]
}

// Row returns the referenced entry's row.
func (r Ref[T]) Row() int { return r.e.row }

// Col returns the referenced entry's column.
func (r Ref[T]) Col() int { return r.e.col }

// Value returns the referenced entry's current value.
func (r Ref[T]) Value() T { return r.e.Value }

// Set overwrites the referenced entry's value.
func (r Ref[T]) Set(v T) { r.e.Value = v }

// Entry returns a copy of the referenced entry.
func (r Ref[T]) Entry() Entry[T] { return *r.e }

// All yields a mutable handle to every stored entry in row-major order.
func (m *Sparse[T]) All() iter.Seq[Ref[T]] {
	return func(yield func(Ref[T]) bool) {
		n := len(m.entries)
		for i := 0; i < n; i++ {
			if !yield(Ref[T]{e: &m.entries[i]}) {
				return
			}
		}
	}
}

// Entries yields a copy of every stored entry in row-major order.
func (m *Sparse[T]) Entries() iter.Seq[Entry[T]] {
	return func(yield func(Entry[T]) bool) {
		n := len(m.entries)
		for i := 0; i < n; i++ {
			if !yield(m.entries[i]) {
				return
			}
		}
	}
}

// Values yields every stored value in row-major order.
func (m *Sparse[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for e := range m.Entries() {
			if !yield(e.Value) {
				return
			}
		}
	}
}

// Cursor is a position in a Sparse's entry sequence.
// The zero Cursor references no matrix and is never Valid.
type Cursor[T any] struct {
	m        *Sparse[T]
	idx      int
	readOnly bool
}

// Begin returns a mutable cursor at the first entry (== End() when empty).
func (m *Sparse[T]) Begin() Cursor[T] { return Cursor[T]{m: m} }

// End returns a mutable cursor one past the last entry.
func (m *Sparse[T]) End() Cursor[T] { return Cursor[T]{m: m, idx: len(m.entries)} }

// ConstBegin returns a read-only cursor at the first entry.
func (m *Sparse[T]) ConstBegin() Cursor[T] { return Cursor[T]{m: m, readOnly: true} }

// ConstEnd returns a read-only cursor one past the last entry.
func (m *Sparse[T]) ConstEnd() Cursor[T] {
	return Cursor[T]{m: m, idx: len(m.entries), readOnly: true}
}

// Valid reports whether the cursor references a stored entry.
func (c Cursor[T]) Valid() bool {
	return c.m != nil && c.idx >= 0 && c.idx < len(c.m.entries)
}

// Next returns the cursor advanced by one slot. Advancing past End is a no-op.
func (c Cursor[T]) Next() Cursor[T] {
	if c.m != nil && c.idx < len(c.m.entries) {
		c.idx++
	}

	return c
}

// ReadOnly reports whether writes through the cursor are rejected.
func (c Cursor[T]) ReadOnly() bool { return c.readOnly }

// Entry returns a copy of the referenced entry, or false at End.
func (c Cursor[T]) Entry() (Entry[T], bool) {
	if !c.Valid() {
		return Entry[T]{}, false
	}

	return c.m.entries[c.idx], true
}

// SetValue overwrites the referenced entry's value in place.
// Errors:
//   - ErrReadOnly on a cursor obtained from ConstBegin/ConstEnd.
//   - ErrOutOfRange when the cursor is at End (or zero).
func (c Cursor[T]) SetValue(v T) error {
	if c.readOnly {
		return ErrReadOnly
	}
	if !c.Valid() {
		return fmt.Errorf("Cursor.%s(slot %d): %w", ctxSetValue, c.idx, ErrOutOfRange)
	}
	c.m.entries[c.idx].Value = v

	return nil
}

// Equal reports whether c and o reference the same slot of the same matrix.
// Mutability is ignored: a mutable and a read-only cursor at the same slot
// are equal.
func (c Cursor[T]) Equal(o Cursor[T]) bool {
	return c.m == o.m && c.idx == o.idx
}
