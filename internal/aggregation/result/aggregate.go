package result

import "sort"

// Aggregate is one profile aggregated both per method and as a call tree.
type Aggregate struct {
	Totals  Totals
	Entries []*Entry
	Roots   []*Node
}

// NewAggregate orders entries and roots by total time, descending.
func NewAggregate(totals Totals, entries []*Entry, roots []*Node) *Aggregate {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].stats.TotalTime != entries[j].stats.TotalTime {
			return entries[i].stats.TotalTime > entries[j].stats.TotalTime
		}
		return entries[i].key < entries[j].key
	})
	sortNodes(roots)

	return &Aggregate{Totals: totals, Entries: entries, Roots: roots}
}

// Entry returns the flat entry of a method.
func (a *Aggregate) Entry(key string) (*Entry, bool) {
	for _, e := range a.Entries {
		if e.key == key {
			return e, true
		}
	}
	return nil, false
}

// Walk visits every call-tree node of a, root by root.
func (a *Aggregate) Walk(fn func(n *Node, depth int)) {
	for _, r := range a.Roots {
		r.Walk(fn)
	}
}
