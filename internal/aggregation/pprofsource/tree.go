package pprofsource

import (
	"time"

	"github.com/coral-mesh/profattr/internal/aggregation/result"
)

// frame is a mutable call-tree node used while folding samples.
type frame struct {
	name     string
	stats    result.Stats
	children map[string]*frame
	order    []string
}

func newFrame(name string) *frame {
	return &frame{name: name, children: make(map[string]*frame)}
}

func (f *frame) child(name string) *frame {
	c, ok := f.children[name]
	if !ok {
		c = newFrame(name)
		f.children[name] = c
		f.order = append(f.order, name)
	}
	return c
}

type treeBuilder struct {
	root *frame
}

func newTreeBuilder() *treeBuilder {
	return &treeBuilder{root: newFrame("")}
}

// add records one stack, given innermost frame first.
func (b *treeBuilder) add(frames []string, count int64, elapsed time.Duration) {
	cur := b.root
	for i := len(frames) - 1; i >= 0; i-- {
		cur = cur.child(frames[i])
		cur.stats.TotalTime += elapsed
		cur.stats.TotalCount += count
	}
	cur.stats.SelfTime += elapsed
	cur.stats.SelfCount += count
}

func (b *treeBuilder) build(totals result.Totals) []*result.Node {
	return convert(b.root, totals)
}

func convert(f *frame, totals result.Totals) []*result.Node {
	nodes := make([]*result.Node, 0, len(f.order))
	for _, name := range f.order {
		c := f.children[name]
		nodes = append(nodes, result.NewNode(c.name, c.stats, totals, convert(c, totals)...))
	}
	return nodes
}
