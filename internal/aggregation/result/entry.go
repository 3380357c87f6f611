// Package result holds the aggregation result objects the attribute registry
// reads from: flat entries, call-tree nodes and their diffed counterparts.
//
// Result objects are snapshots. Nothing in this package mutates an object
// once the aggregation that produced it has returned it.
package result

import (
	"time"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

// Stats are the figures aggregated for one method or call-tree node.
type Stats struct {
	SelfTime   time.Duration
	TotalTime  time.Duration
	SelfCount  int64
	TotalCount int64
}

// Add returns the field-wise sum of s and o.
func (s Stats) Add(o Stats) Stats {
	return Stats{
		SelfTime:   s.SelfTime + o.SelfTime,
		TotalTime:  s.TotalTime + o.TotalTime,
		SelfCount:  s.SelfCount + o.SelfCount,
		TotalCount: s.TotalCount + o.TotalCount,
	}
}

// Totals are the profile-wide figures shares are computed against.
type Totals struct {
	Time  time.Duration
	Count int64
}

// Entry is a per-method aggregate over a whole profile.
type Entry struct {
	key    string
	stats  Stats
	totals Totals
}

var _ attribute.Flat = (*Entry)(nil)

// NewEntry creates an entry for key.
func NewEntry(key string, stats Stats, totals Totals) *Entry {
	return &Entry{key: key, stats: stats, totals: totals}
}

func (e *Entry) Key() string              { return e.key }
func (e *Entry) Stats() Stats             { return e.stats }
func (e *Entry) Totals() Totals           { return e.totals }
func (e *Entry) SelfTime() time.Duration  { return e.stats.SelfTime }
func (e *Entry) TotalTime() time.Duration { return e.stats.TotalTime }
func (e *Entry) SelfCount() int64         { return e.stats.SelfCount }
func (e *Entry) TotalCount() int64        { return e.stats.TotalCount }

func (e *Entry) SelfTimeShare() float64 {
	return share(int64(e.stats.SelfTime), int64(e.totals.Time))
}

func (e *Entry) TotalTimeShare() float64 {
	return share(int64(e.stats.TotalTime), int64(e.totals.Time))
}

func (e *Entry) SelfCountShare() float64 {
	return share(e.stats.SelfCount, e.totals.Count)
}

func (e *Entry) TotalCountShare() float64 {
	return share(e.stats.TotalCount, e.totals.Count)
}

// share is part/whole, or 0 for an empty whole.
func share(part, whole int64) float64 {
	if whole == 0 {
		return 0
	}
	return float64(part) / float64(whole)
}
