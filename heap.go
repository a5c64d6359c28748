// Package zheap provides an array-backed binary heap, a priority
// container over any element type.  A heap is built with an Order
// fixing whether the root holds the maximum or the minimum of the
// contents, and a CompareFn defining the element ordering; heaps over
// types with a natural ordering can be built with NewMax and NewMin
// instead of supplying a comparison.
//
// Elements live in the array representation of a complete binary tree:
// the element at position i has children at 2i+1 and 2i+2 and its
// parent at (i-1)/2.  Every mutating operation returns with no element
// ordered ahead of its parent, so position 0 always holds the extreme
// element.
//
// A Heap is not safe for concurrent use.  Callers that share one
// across goroutines must serialize all operations under a single lock.
package zheap

import (
	"errors"

	"golang.org/x/exp/slices"
)

// CompareFn returns a negative number if a is ordered before b, zero
// if the two are equal, and a positive number otherwise.  The zero
// result doubles as the notion of equality for Update, Remove, and
// Contains.
type CompareFn[T any] func(a, b T) int

var ErrEmpty = errors.New("empty heap")

// Heap is a binary heap over elements of type T.
type Heap[T any] struct {
	vals  []T
	cmp   CompareFn[T]
	which Order
}

// New returns an empty heap ordering elements with cmp and keeping the
// element selected by which at the root.
func New[T any](which Order, cmp CompareFn[T]) *Heap[T] {
	return &Heap[T]{cmp: cmp, which: which}
}

// NewFromSlice returns a heap holding the elements of vals, which may
// arrive in any order.  The heap takes a copy and never aliases vals.
// Construction sifts down from the last parent index toward the root
// and costs O(n), cheaper than pushing the elements one at a time.
func NewFromSlice[T any](which Order, cmp CompareFn[T], vals []T) *Heap[T] {
	h := &Heap[T]{vals: slices.Clone(vals), cmp: cmp, which: which}
	for i := len(h.vals)/2 - 1; i >= 0; i-- {
		h.down(i)
	}
	return h
}

// Len returns the number of elements in the heap.
func (h *Heap[T]) Len() int {
	return len(h.vals)
}

// IsEmpty reports whether the heap has no elements.
func (h *Heap[T]) IsEmpty() bool {
	return len(h.vals) == 0
}

// Order returns the direction the heap was built with.
func (h *Heap[T]) Order() Order {
	return h.which
}

// Push adds v to the heap in O(log n).
func (h *Heap[T]) Push(v T) {
	h.vals = append(h.vals, v)
	h.up(len(h.vals) - 1)
}

// Peek returns the root element without removing it, or ErrEmpty if
// the heap has no elements.
func (h *Heap[T]) Peek() (v T, err error) {
	if len(h.vals) == 0 {
		return v, ErrEmpty
	}
	return h.vals[0], nil
}

// Pop removes and returns the root element in O(log n), or returns
// ErrEmpty if the heap has no elements.
func (h *Heap[T]) Pop() (v T, err error) {
	if len(h.vals) == 0 {
		return v, ErrEmpty
	}
	v = h.vals[0]
	n := len(h.vals) - 1
	h.vals[0] = h.vals[n]
	h.vals = h.vals[:n]
	if n > 0 {
		h.down(0)
	}
	return v, nil
}

// Replace swaps v for the root element and returns the displaced root.
// It is equivalent to a Pop followed by a Push but rebalances only
// once.  An empty heap has no root to replace, so Replace returns
// ErrEmpty and leaves the heap empty rather than falling back to an
// insert.
func (h *Heap[T]) Replace(v T) (old T, err error) {
	if len(h.vals) == 0 {
		return old, ErrEmpty
	}
	old = h.vals[0]
	h.vals[0] = v
	h.down(0)
	return old, nil
}

// PushPop pushes v and then pops the root, rebalancing at most once.
// When v itself would come straight back out, the heap is not touched
// at all, so PushPop never fails on an empty heap.
func (h *Heap[T]) PushPop(v T) T {
	if len(h.vals) > 0 && h.compare(h.vals[0], v) < 0 {
		v, h.vals[0] = h.vals[0], v
		h.down(0)
	}
	return v
}

// Update overwrites the first element equal to old with val and sifts
// it in whichever direction the change calls for.  It reports whether
// a matching element was found; a miss changes nothing.  The scan is
// O(n) and when old occurs more than once, which occurrence is
// replaced is unspecified.
func (h *Heap[T]) Update(old, val T) bool {
	i := h.find(old)
	if i < 0 {
		return false
	}
	h.vals[i] = val
	h.fix(i)
	return true
}

// Remove deletes the first element equal to v and returns the deleted
// element, scanning in O(n) and rebalancing in O(log n).
func (h *Heap[T]) Remove(v T) (removed T, ok bool) {
	i := h.find(v)
	if i < 0 {
		return removed, false
	}
	removed = h.vals[i]
	n := len(h.vals) - 1
	if i != n {
		h.vals[i] = h.vals[n]
	}
	h.vals = h.vals[:n]
	if i != n {
		h.fix(i)
	}
	return removed, true
}

// Contains reports whether the heap holds an element equal to v.  The
// scan is O(n); heap order cannot narrow a search for an arbitrary
// value.
func (h *Heap[T]) Contains(v T) bool {
	return h.find(v) >= 0
}

// Clear removes all elements.
func (h *Heap[T]) Clear() {
	h.vals = nil
}

// Values returns a copy of the backing array in heap layout, which is
// not a fully sorted order.  Mutating the copy cannot affect the heap.
func (h *Heap[T]) Values() []T {
	return slices.Clone(h.vals)
}

// Index returns the element at position i in the backing array.  Like
// slice indexing, it panics when i is out of range.
func (h *Heap[T]) Index(i int) T {
	return h.vals[i]
}

// Parent returns the parent of the element at position i, reporting
// false when i is the root or out of range.
func (h *Heap[T]) Parent(i int) (v T, ok bool) {
	if i <= 0 || i >= len(h.vals) {
		return v, false
	}
	return h.vals[(i-1)/2], true
}

// LeftChild returns the left child of the element at position i,
// reporting false when there is none.
func (h *Heap[T]) LeftChild(i int) (T, bool) {
	return h.at(2*i + 1)
}

// RightChild returns the right child of the element at position i,
// reporting false when there is none.
func (h *Heap[T]) RightChild(i int) (T, bool) {
	return h.at(2*i + 2)
}

func (h *Heap[T]) at(j int) (v T, ok bool) {
	if j < 1 || j >= len(h.vals) {
		return v, false
	}
	return h.vals[j], true
}

func (h *Heap[T]) find(v T) int {
	return slices.IndexFunc(h.vals, func(x T) bool { return h.cmp(v, x) == 0 })
}

// compare orders with the root-first sense: a negative result means a
// belongs above b in the tree.
func (h *Heap[T]) compare(a, b T) int {
	if h.which == Max {
		a, b = b, a
	}
	return h.cmp(a, b)
}

func (h *Heap[T]) less(i, j int) bool {
	return h.compare(h.vals[i], h.vals[j]) < 0
}

func (h *Heap[T]) swap(i, j int) {
	h.vals[i], h.vals[j] = h.vals[j], h.vals[i]
}

func (h *Heap[T]) up(j int) {
	for {
		i := (j - 1) / 2 // parent
		if i == j || !h.less(j, i) {
			break
		}
		h.swap(i, j)
		j = i
	}
}

func (h *Heap[T]) down(i0 int) bool {
	n := len(h.vals)
	i := i0
	for {
		j1 := 2*i + 1
		if j1 >= n || j1 < 0 { // j1 < 0 after int overflow
			break
		}
		j := j1 // left child
		if j2 := j1 + 1; j2 < n && h.less(j2, j1) {
			j = j2 // = 2*i + 2  // right child
		}
		if !h.less(j, i) {
			break
		}
		h.swap(i, j)
		i = j
	}
	return i > i0
}

// fix restores the property at i after its element changed.  At most
// one direction can be out of order, so a sift down that went nowhere
// means any correction lies upward.
func (h *Heap[T]) fix(i int) {
	if !h.down(i) {
		h.up(i)
	}
}
