// Package pinned builds the combined list of pinned threads, spaces and
// prompts shown at the top of the sidebar.
package pinned

import "tableflip.dev/thinktank/pkg/item"

// DefaultLimit is the number of pinned items shown per collection.
const DefaultLimit = 5

// Collections are the three sources, each in its own display order.
type Collections struct {
	Threads []item.Item
	Spaces  []item.Item
	Prompts []item.Item
}

func (c Collections) sources() [][]item.Item {
	return [][]item.Item{c.Threads, c.Spaces, c.Prompts}
}

// Eligible reports whether it may appear in the pinned list.
func Eligible(it item.Item) bool {
	return it.Pinned && it.State == item.StateActive
}

// Aggregate takes up to maxPerCollection eligible items from each source in
// source order and concatenates threads, spaces and prompts. Sources are
// never interleaved.
func Aggregate(c Collections, maxPerCollection int) []item.Item {
	if maxPerCollection < 0 {
		maxPerCollection = 0
	}
	var out []item.Item
	for _, src := range c.sources() {
		taken := 0
		for _, it := range src {
			if taken == maxPerCollection {
				break
			}
			if !Eligible(it) {
				continue
			}
			out = append(out, it)
			taken++
		}
	}
	return out
}

// Overflow counts, per kind, the eligible items Aggregate left out.
func Overflow(c Collections, maxPerCollection int) map[item.Kind]int {
	if maxPerCollection < 0 {
		maxPerCollection = 0
	}
	kinds := item.AllKinds()
	out := make(map[item.Kind]int)
	for i, src := range c.sources() {
		n := 0
		for _, it := range src {
			if Eligible(it) {
				n++
			}
		}
		if n > maxPerCollection {
			out[kinds[i]] = n - maxPerCollection
		}
	}
	return out
}
