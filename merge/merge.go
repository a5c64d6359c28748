// Package merge combines sorted inputs into one sorted output by
// keying a heap on the head element of each input.
package merge

import "github.com/brimdata/zheap"

// Slices merges the given inputs, each of which must already be
// sorted in the sense of which and cmp, into a single sorted slice.
// The inputs are left unmodified.  Merging k inputs of n total
// elements costs O(n log k) comparisons.
func Slices[T any](which zheap.Order, cmp zheap.CompareFn[T], inputs ...[]T) []T {
	var n int
	heads := make([][]T, 0, len(inputs))
	for _, in := range inputs {
		if len(in) > 0 {
			heads = append(heads, in)
			n += len(in)
		}
	}
	h := zheap.NewFromSlice(which, func(a, b []T) int { return cmp(a[0], b[0]) }, heads)
	out := make([]T, 0, n)
	for !h.IsEmpty() {
		cur, _ := h.Peek()
		out = append(out, cur[0])
		if len(cur) > 1 {
			h.Replace(cur[1:])
		} else {
			h.Pop()
		}
	}
	return out
}
