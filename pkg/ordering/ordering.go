// Package ordering keeps a manually ordered collection in a gap-free
// 0..n-1 order and provides the drag gesture that drives it.
package ordering

import (
	"errors"
	"fmt"
	"sort"

	"tableflip.dev/thinktank/pkg/item"
)

var ErrIndexOutOfRange = errors.New("ordering: index out of range")

// Move removes the item at from, reinserts it at to and renumbers every
// item's Order to its new index. The input slice is left untouched.
func Move(items []item.Item, from, to int) ([]item.Item, error) {
	n := len(items)
	if from < 0 || from >= n {
		return items, fmt.Errorf("%w: from %d, length %d", ErrIndexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return items, fmt.Errorf("%w: to %d, length %d", ErrIndexOutOfRange, to, n)
	}
	out := make([]item.Item, 0, n)
	moved := items[from]
	for i, it := range items {
		if i != from {
			out = append(out, it)
		}
	}
	out = append(out[:to], append([]item.Item{moved}, out[to:]...)...)
	Renumber(out)
	return out, nil
}

// Renumber sets each Order to the item's index.
func Renumber(items []item.Item) {
	for i := range items {
		items[i].Order = i
	}
}

// Sorted returns a copy ordered by Order. Ties keep their relative order.
func Sorted(items []item.Item) []item.Item {
	out := append([]item.Item(nil), items...)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}

// Contiguous reports whether the Order fields are exactly 0..n-1 in slice order.
func Contiguous(items []item.Item) bool {
	for i, it := range items {
		if it.Order != i {
			return false
		}
	}
	return true
}
