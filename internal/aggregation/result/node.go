package result

import (
	"sort"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

// Node is a call-tree node. Its key is the method name of the frame; the
// path from the root identifies the node.
type Node struct {
	Entry
	children []*Node
}

var _ attribute.Flat = (*Node)(nil)

// NewNode creates a node. Children are ordered by total time, descending.
func NewNode(key string, stats Stats, totals Totals, children ...*Node) *Node {
	n := &Node{
		Entry:    Entry{key: key, stats: stats, totals: totals},
		children: children,
	}
	sortNodes(n.children)
	return n
}

// Children returns the direct callees of n.
func (n *Node) Children() []*Node {
	return n.children
}

// Child returns the direct callee with the given key.
func (n *Node) Child(key string) (*Node, bool) {
	for _, c := range n.children {
		if c.key == key {
			return c, true
		}
	}
	return nil, false
}

// Walk visits n and its descendants depth-first, parents before children.
func (n *Node) Walk(fn func(n *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(n *Node, depth int), depth int) {
	fn(n, depth)
	for _, c := range n.children {
		c.walk(fn, depth+1)
	}
}

func sortNodes(nodes []*Node) {
	sort.SliceStable(nodes, func(i, j int) bool {
		if nodes[i].stats.TotalTime != nodes[j].stats.TotalTime {
			return nodes[i].stats.TotalTime > nodes[j].stats.TotalTime
		}
		return nodes[i].key < nodes[j].key
	})
}
