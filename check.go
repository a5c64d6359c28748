package zheap

import (
	"fmt"

	"go.uber.org/multierr"
)

// Check walks the whole backing array and returns an error naming
// every position ordered ahead of its parent, or nil when the heap
// property holds everywhere.  Check never mutates the heap.
func (h *Heap[T]) Check() (merr error) {
	for i := 1; i < len(h.vals); i++ {
		if p := (i - 1) / 2; h.less(i, p) {
			merr = multierr.Append(merr, fmt.Errorf(
				"element %v at index %d is ordered ahead of its parent %v at index %d",
				h.vals[i], i, h.vals[p], p))
		}
	}
	return merr
}
