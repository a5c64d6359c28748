package zheap

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/kr/text"
)

// String renders the backing array level by level, one line per tree
// level, each element bracketed:
//
//	[12]
//	[10][5]
//	[8][7]
//
// An empty heap renders as "- Empty heap -".  The rendering is purely
// diagnostic.
func (h *Heap[T]) String() string {
	if len(h.vals) == 0 {
		return "- Empty heap -"
	}
	var b strings.Builder
	level := 1
	for i, v := range h.vals {
		// Index i sits on level floor(log2(i+1))+1.
		if l := bits.Len(uint(i) + 1); l != level {
			b.WriteByte('\n')
			level = l
		}
		fmt.Fprintf(&b, "[%v]", v)
	}
	return b.String()
}

// Tree renders the heap root-at-top with children indented two spaces
// beneath their parent:
//
//	12
//	  10
//	    8
//	    7
//	  5
//
// An empty heap renders as "".
func (h *Heap[T]) Tree() string {
	if len(h.vals) == 0 {
		return ""
	}
	return h.subtree(0)
}

func (h *Heap[T]) subtree(i int) string {
	s := fmt.Sprintf("%v\n", h.vals[i])
	for j := 2*i + 1; j <= 2*i+2 && j < len(h.vals); j++ {
		s += text.Indent(h.subtree(j), "  ")
	}
	return s
}
