// Package top selects the greatest values from a stream of input
// while holding no more than a fixed number of them at a time.
package top

import "github.com/brimdata/zheap"

const defaultLimit = 100

// Top retains the limit greatest values consumed so far, ranked by a
// comparison function.  The smallest retained value sits at the root
// of a min-ordered heap so each new value needs only one comparison
// against it once the limit is reached.
type Top[T any] struct {
	limit int
	cmp   zheap.CompareFn[T]
	heap  *zheap.Heap[T]
}

// New creates a Top with the given retention limit.  A limit of zero
// or less selects a default of 100.
func New[T any](limit int, cmp zheap.CompareFn[T]) *Top[T] {
	if limit <= 0 {
		limit = defaultLimit
	}
	return &Top[T]{
		limit: limit,
		cmp:   cmp,
		heap:  zheap.New(zheap.Min, cmp),
	}
}

// Consume offers v for retention.  Below the limit, v is always
// retained.  At the limit, v displaces the smallest retained value
// only if it ranks strictly above it, so on ties the incumbent wins.
func (o *Top[T]) Consume(v T) {
	if o.heap.Len() < o.limit {
		o.heap.Push(v)
		return
	}
	o.heap.PushPop(v)
}

func (o *Top[T]) Len() int { return o.heap.Len() }

// Sorted drains the retained values and returns them greatest first.
// The Top is empty afterward and may be reused.
func (o *Top[T]) Sorted() []T {
	out := make([]T, o.heap.Len())
	for i := o.heap.Len() - 1; i >= 0; i-- {
		v, _ := o.heap.Pop()
		out[i] = v
	}
	return out
}
