package attribute

import (
	"fmt"
	"strings"
)

// ValueKind is the semantic category of an attribute value. Presentation
// layers use it to pick formatting and comparison rules.
type ValueKind uint8

const (
	// Text is a free-form string such as a method name.
	Text ValueKind = iota + 1
	// Count is an integer number of samples.
	Count
	// Duration is an amount of time.
	Duration
	// Share is a part's fraction of a whole (0.25 is 25%).
	Share
	// PercentPointDelta is the difference between two Shares.
	PercentPointDelta
)

func (k ValueKind) String() string {
	switch k {
	case Text:
		return "text"
	case Count:
		return "count"
	case Duration:
		return "duration"
	case Share:
		return "share"
	case PercentPointDelta:
		return "pp_delta"
	default:
		return fmt.Sprintf("ValueKind(%d)", uint8(k))
	}
}

// Representation identifies the shape of an aggregation result object.
type Representation uint8

const (
	// Entry is a flat, per-method aggregate.
	Entry Representation = iota
	// Node is a call-tree node.
	Node
	// DiffEntry pairs a base and a new Entry.
	DiffEntry
	// DiffNode pairs a base and a new Node.
	DiffNode
)

// Representations returns every representation in declaration order.
func Representations() []Representation {
	return []Representation{Entry, Node, DiffEntry, DiffNode}
}

func (r Representation) String() string {
	switch r {
	case Entry:
		return "entry"
	case Node:
		return "node"
	case DiffEntry:
		return "diff-entry"
	case DiffNode:
		return "diff-node"
	default:
		return fmt.Sprintf("Representation(%d)", uint8(r))
	}
}

// IsDiff reports whether r is one of the diffed shapes.
func (r Representation) IsDiff() bool {
	return r == DiffEntry || r == DiffNode
}

// ParseRepresentation resolves the String form of a representation.
func ParseRepresentation(s string) (Representation, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, r := range Representations() {
		if r.String() == name {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRepresentation, s)
}
