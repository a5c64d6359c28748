package zheap

import "golang.org/x/exp/constraints"

// Compare is a CompareFn over the natural ordering of any ordered
// type.
func Compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// NewMax returns a heap of T's natural ordering with the greatest
// element at the root, heapifying any initial values.
func NewMax[T constraints.Ordered](vals ...T) *Heap[T] {
	return NewFromSlice(Max, Compare[T], vals)
}

// NewMin returns a heap of T's natural ordering with the least element
// at the root, heapifying any initial values.
func NewMin[T constraints.Ordered](vals ...T) *Heap[T] {
	return NewFromSlice(Min, Compare[T], vals)
}
