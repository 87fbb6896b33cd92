// SPDX-License-Identifier: MIT

package matrix

// Evaluate counts the stored entries whose value satisfies pred, plus one if
// pred also holds for the default value.
//
// The default contributes a flat +1, not one per absent cell: the result is
// NOT a count over the rows*cols domain. A nil matrix or nil pred yields 0.
//
// Complexity: O(n) calls to pred, plus one.
func Evaluate[T any](m *Sparse[T], pred func(T) bool) int {
	if m == nil || pred == nil {
		return 0
	}

	sum := 0
	for v := range m.Values() {
		if pred(v) {
			sum++
		}
	}
	if pred(m.def) {
		sum++
	}

	return sum
}

// Count is the method form of Evaluate.
func (m *Sparse[T]) Count(pred func(T) bool) int {
	return Evaluate(m, pred)
}
