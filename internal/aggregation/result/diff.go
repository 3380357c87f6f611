package result

import (
	"sort"
	"time"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

// DiffEntry pairs the entries of one method in a base and a new profile.
type DiffEntry struct {
	key  string
	base *Entry
	new  *Entry
}

var _ attribute.Diffed = (*DiffEntry)(nil)

// NewDiffEntry pairs base and next. A nil side stands for a method absent
// from that profile and is replaced by an empty entry.
func NewDiffEntry(key string, base, next *Entry) *DiffEntry {
	return &DiffEntry{key: key, base: orEmpty(key, base), new: orEmpty(key, next)}
}

func orEmpty(key string, e *Entry) *Entry {
	if e == nil {
		return &Entry{key: key}
	}
	return e
}

func (d *DiffEntry) Key() string          { return d.key }
func (d *DiffEntry) Base() attribute.Flat { return d.base }
func (d *DiffEntry) New() attribute.Flat  { return d.new }

func (d *DiffEntry) SelfTimeDiff() time.Duration {
	return d.new.stats.SelfTime - d.base.stats.SelfTime
}

func (d *DiffEntry) TotalTimeDiff() time.Duration {
	return d.new.stats.TotalTime - d.base.stats.TotalTime
}

func (d *DiffEntry) SelfCountDiff() int64 {
	return d.new.stats.SelfCount - d.base.stats.SelfCount
}

func (d *DiffEntry) TotalCountDiff() int64 {
	return d.new.stats.TotalCount - d.base.stats.TotalCount
}

func (d *DiffEntry) SelfTimeShareDiff() float64 {
	return d.new.SelfTimeShare() - d.base.SelfTimeShare()
}

func (d *DiffEntry) TotalTimeShareDiff() float64 {
	return d.new.TotalTimeShare() - d.base.TotalTimeShare()
}

func (d *DiffEntry) SelfCountShareDiff() float64 {
	return d.new.SelfCountShare() - d.base.SelfCountShare()
}

func (d *DiffEntry) TotalCountShareDiff() float64 {
	return d.new.TotalCountShare() - d.base.TotalCountShare()
}

// DiffNode pairs the call-tree nodes at the same path in two profiles.
type DiffNode struct {
	DiffEntry
	children []*DiffNode
}

var _ attribute.Diffed = (*DiffNode)(nil)

// Children returns the paired callees of d.
func (d *DiffNode) Children() []*DiffNode {
	return d.children
}

// Walk visits d and its descendants depth-first, parents before children.
func (d *DiffNode) Walk(fn func(d *DiffNode, depth int)) {
	d.walk(fn, 0)
}

func (d *DiffNode) walk(fn func(d *DiffNode, depth int), depth int) {
	fn(d, depth)
	for _, c := range d.children {
		c.walk(fn, depth+1)
	}
}

// DiffAggregate is the comparison of two aggregates.
type DiffAggregate struct {
	BaseTotals Totals
	NewTotals  Totals
	Entries    []*DiffEntry
	Roots      []*DiffNode
}

// Walk visits every paired call-tree node, root by root.
func (a *DiffAggregate) Walk(fn func(d *DiffNode, depth int)) {
	for _, r := range a.Roots {
		r.Walk(fn)
	}
}

// Diff pairs the entries of base and next by method key, and their call
// trees by path. Results are ordered by the magnitude of the total time
// change, largest first.
func Diff(base, next *Aggregate) *DiffAggregate {
	baseEntries := make(map[string]*Entry, len(base.Entries))
	for _, e := range base.Entries {
		baseEntries[e.key] = e
	}

	var entries []*DiffEntry
	seen := make(map[string]bool, len(next.Entries))
	for _, e := range next.Entries {
		seen[e.key] = true
		entries = append(entries, NewDiffEntry(e.key, baseEntries[e.key], e))
	}
	for _, e := range base.Entries {
		if !seen[e.key] {
			entries = append(entries, NewDiffEntry(e.key, e, nil))
		}
	}
	sortDiffEntries(entries)

	return &DiffAggregate{
		BaseTotals: base.Totals,
		NewTotals:  next.Totals,
		Entries:    entries,
		Roots:      diffNodes(base.Roots, next.Roots),
	}
}

func diffNodes(base, next []*Node) []*DiffNode {
	byKey := make(map[string]*Node, len(base))
	for _, n := range base {
		byKey[n.key] = n
	}

	var out []*DiffNode
	seen := make(map[string]bool, len(next))
	for _, n := range next {
		seen[n.key] = true
		b := byKey[n.key]
		out = append(out, pairNodes(n.key, b, n))
	}
	for _, b := range base {
		if !seen[b.key] {
			out = append(out, pairNodes(b.key, b, nil))
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return lessDiff(&out[i].DiffEntry, &out[j].DiffEntry)
	})
	return out
}

func pairNodes(key string, base, next *Node) *DiffNode {
	var baseEntry, newEntry *Entry
	var baseChildren, newChildren []*Node
	if base != nil {
		baseEntry = &base.Entry
		baseChildren = base.children
	}
	if next != nil {
		newEntry = &next.Entry
		newChildren = next.children
	}

	return &DiffNode{
		DiffEntry: *NewDiffEntry(key, baseEntry, newEntry),
		children:  diffNodes(baseChildren, newChildren),
	}
}

func sortDiffEntries(entries []*DiffEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return lessDiff(entries[i], entries[j])
	})
}

func lessDiff(a, b *DiffEntry) bool {
	da, db := abs(a.TotalTimeDiff()), abs(b.TotalTimeDiff())
	if da != db {
		return da > db
	}
	return a.key < b.key
}

func abs(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}
