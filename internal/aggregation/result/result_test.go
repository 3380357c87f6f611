package result

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

func TestEntry_Shares(t *testing.T) {
	tests := []struct {
		name   string
		stats  Stats
		totals Totals
		check  func(t *testing.T, e *Entry)
	}{
		{
			name:   "count shares",
			stats:  Stats{SelfCount: 10, TotalCount: 40},
			totals: Totals{Count: 40},
			check: func(t *testing.T, e *Entry) {
				assert.InDelta(t, 0.25, e.SelfCountShare(), 1e-9)
				assert.InDelta(t, 1.0, e.TotalCountShare(), 1e-9)
			},
		},
		{
			name:   "time shares",
			stats:  Stats{SelfTime: 30 * time.Millisecond, TotalTime: 60 * time.Millisecond},
			totals: Totals{Time: 120 * time.Millisecond},
			check: func(t *testing.T, e *Entry) {
				assert.InDelta(t, 0.25, e.SelfTimeShare(), 1e-9)
				assert.InDelta(t, 0.5, e.TotalTimeShare(), 1e-9)
			},
		},
		{
			name:  "empty profile",
			stats: Stats{SelfCount: 3},
			check: func(t *testing.T, e *Entry) {
				assert.Zero(t, e.SelfCountShare())
				assert.Zero(t, e.SelfTimeShare())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, NewEntry("main.work", tt.stats, tt.totals))
		})
	}
}

func TestStats_Add(t *testing.T) {
	a := Stats{SelfTime: 1, TotalTime: 2, SelfCount: 3, TotalCount: 4}
	b := Stats{SelfTime: 10, TotalTime: 20, SelfCount: 30, TotalCount: 40}
	assert.Equal(t, Stats{SelfTime: 11, TotalTime: 22, SelfCount: 33, TotalCount: 44}, a.Add(b))
}

func TestNode_ChildrenOrderAndWalk(t *testing.T) {
	totals := Totals{Time: 100, Count: 10}
	small := NewNode("small", Stats{TotalTime: 10}, totals)
	big := NewNode("big", Stats{TotalTime: 50}, totals)
	root := NewNode("root", Stats{TotalTime: 60}, totals, small, big)

	require.Len(t, root.Children(), 2)
	assert.Equal(t, "big", root.Children()[0].Key())

	child, ok := root.Child("small")
	require.True(t, ok)
	assert.Equal(t, time.Duration(10), child.TotalTime())

	_, ok = root.Child("missing")
	assert.False(t, ok)

	var visited []string
	var depths []int
	root.Walk(func(n *Node, depth int) {
		visited = append(visited, n.Key())
		depths = append(depths, depth)
	})
	assert.Equal(t, []string{"root", "big", "small"}, visited)
	assert.Equal(t, []int{0, 1, 1}, depths)
}

func TestDiffEntry_Deltas(t *testing.T) {
	base := NewEntry("m", Stats{SelfTime: 100, TotalTime: 200, SelfCount: 10, TotalCount: 20}, Totals{Time: 1000, Count: 100})
	next := NewEntry("m", Stats{SelfTime: 150, TotalTime: 180, SelfCount: 15, TotalCount: 18}, Totals{Time: 1000, Count: 100})

	d := NewDiffEntry("m", base, next)
	assert.Equal(t, time.Duration(50), d.SelfTimeDiff())
	assert.Equal(t, time.Duration(-20), d.TotalTimeDiff())
	assert.Equal(t, int64(5), d.SelfCountDiff())
	assert.Equal(t, int64(-2), d.TotalCountDiff())
	assert.InDelta(t, 0.05, d.SelfTimeShareDiff(), 1e-9)
	assert.InDelta(t, -0.02, d.TotalTimeShareDiff(), 1e-9)
	assert.InDelta(t, 0.05, d.SelfCountShareDiff(), 1e-9)
	assert.InDelta(t, -0.02, d.TotalCountShareDiff(), 1e-9)
}

func TestDiffEntry_MissingSide(t *testing.T) {
	next := NewEntry("m", Stats{SelfTime: 40, SelfCount: 4}, Totals{Time: 100, Count: 10})
	d := NewDiffEntry("m", nil, next)

	require.NotNil(t, d.Base())
	assert.Equal(t, "m", d.Base().Key())
	assert.Zero(t, d.Base().SelfTime())
	assert.Equal(t, time.Duration(40), d.SelfTimeDiff())
	assert.InDelta(t, 0.4, d.SelfTimeShareDiff(), 1e-9)
}

func TestDiff_PairsEntriesAndTrees(t *testing.T) {
	baseTotals := Totals{Time: 100, Count: 10}
	newTotals := Totals{Time: 200, Count: 20}

	base := NewAggregate(baseTotals,
		[]*Entry{
			NewEntry("main", Stats{TotalTime: 100, TotalCount: 10}, baseTotals),
			NewEntry("gone", Stats{SelfTime: 30, TotalTime: 30, SelfCount: 3, TotalCount: 3}, baseTotals),
		},
		[]*Node{
			NewNode("main", Stats{TotalTime: 100, TotalCount: 10}, baseTotals,
				NewNode("gone", Stats{SelfTime: 30, TotalTime: 30}, baseTotals)),
		},
	)
	next := NewAggregate(newTotals,
		[]*Entry{
			NewEntry("main", Stats{TotalTime: 200, TotalCount: 20}, newTotals),
			NewEntry("added", Stats{SelfTime: 80, TotalTime: 80, SelfCount: 8, TotalCount: 8}, newTotals),
		},
		[]*Node{
			NewNode("main", Stats{TotalTime: 200, TotalCount: 20}, newTotals,
				NewNode("added", Stats{SelfTime: 80, TotalTime: 80}, newTotals)),
		},
	)

	diff := Diff(base, next)
	assert.Equal(t, baseTotals, diff.BaseTotals)
	assert.Equal(t, newTotals, diff.NewTotals)

	require.Len(t, diff.Entries, 3)
	assert.Equal(t, "main", diff.Entries[0].Key())
	assert.Equal(t, "added", diff.Entries[1].Key())
	assert.Equal(t, "gone", diff.Entries[2].Key())
	assert.Equal(t, time.Duration(-30), diff.Entries[2].TotalTimeDiff())

	var paths []string
	diff.Walk(func(d *DiffNode, depth int) {
		paths = append(paths, d.Key())
	})
	assert.Equal(t, []string{"main", "added", "gone"}, paths)
}

func TestResultObjects_WithRegistry(t *testing.T) {
	totals := Totals{Time: 400, Count: 40}
	node := NewNode("main", Stats{SelfTime: 100, TotalTime: 400, SelfCount: 10, TotalCount: 40}, totals)

	ext, err := attribute.Lookup(attribute.SelfCountShare, attribute.NodeShape)
	require.NoError(t, err)
	assert.InDelta(t, 0.25, ext(node).Float(), 1e-9)

	d := &DiffNode{DiffEntry: *NewDiffEntry("main", &node.Entry, nil)}
	diffExt, err := attribute.Lookup(attribute.BaseSelfTime, attribute.DiffNodeShape)
	require.NoError(t, err)
	assert.Equal(t, time.Duration(100), diffExt(d).Duration())

	_, err = attribute.Lookup(attribute.SelfTime, attribute.DiffNodeShape)
	assert.ErrorIs(t, err, attribute.ErrUnsupportedCombination)
}
