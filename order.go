package zheap

import "fmt"

// Order selects which element a heap keeps at its root: Max puts the
// greatest element of the contents there, Min the least.  The zero
// value is Max.
type Order bool

const (
	Max Order = false
	Min Order = true
)

// ParseOrder converts the string form of an order ("max" or "min")
// back to an Order.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "max":
		return Max, nil
	case "min":
		return Min, nil
	}
	return Max, fmt.Errorf("unknown heap order: %q", s)
}

func (o Order) String() string {
	if o == Min {
		return "min"
	}
	return "max"
}
