package attribute

// Extractor reads one attribute from a result object of shape T.
// Extractors are pure: the same object always yields the same Value.
type Extractor[T any] func(T) Value

// Shape ties a Representation to the contract its result objects satisfy,
// so that Lookup hands back an extractor of the matching type.
type Shape[T any] struct {
	rep  Representation
	pick func(binding) func(T) Value
}

// Representation returns the tag of the shape.
func (s Shape[T]) Representation() Representation {
	return s.rep
}

var (
	EntryShape = Shape[Flat]{
		rep:  Entry,
		pick: func(b binding) func(Flat) Value { return b.entry },
	}
	NodeShape = Shape[Flat]{
		rep:  Node,
		pick: func(b binding) func(Flat) Value { return b.node },
	}
	DiffEntryShape = Shape[Diffed]{
		rep:  DiffEntry,
		pick: func(b binding) func(Diffed) Value { return b.diffEntry },
	}
	DiffNodeShape = Shape[Diffed]{
		rep:  DiffNode,
		pick: func(b binding) func(Diffed) Value { return b.diffNode },
	}
)

// binding holds the extractor of one attribute per representation. A nil
// field means the attribute is undefined for that representation.
type binding struct {
	entry     func(Flat) Value
	node      func(Flat) Value
	diffEntry func(Diffed) Value
	diffNode  func(Diffed) Value
}

func (b binding) has(r Representation) bool {
	switch r {
	case Entry:
		return b.entry != nil
	case Node:
		return b.node != nil
	case DiffEntry:
		return b.diffEntry != nil
	case DiffNode:
		return b.diffNode != nil
	default:
		return false
	}
}

func onFlat(f func(Flat) Value) binding {
	return binding{entry: f, node: f}
}

func onDiffed(f func(Diffed) Value) binding {
	return binding{diffEntry: f, diffNode: f}
}

func onBase(f func(Flat) Value) binding {
	return onDiffed(func(d Diffed) Value { return f(d.Base()) })
}

func onNew(f func(Flat) Value) binding {
	return onDiffed(func(d Diffed) Value { return f(d.New()) })
}

var (
	selfTime        = func(f Flat) Value { return DurationValue(f.SelfTime()) }
	totalTime       = func(f Flat) Value { return DurationValue(f.TotalTime()) }
	selfCount       = func(f Flat) Value { return CountValue(f.SelfCount()) }
	totalCount      = func(f Flat) Value { return CountValue(f.TotalCount()) }
	selfTimeShare   = func(f Flat) Value { return ShareValue(f.SelfTimeShare()) }
	totalTimeShare  = func(f Flat) Value { return ShareValue(f.TotalTimeShare()) }
	selfCountShare  = func(f Flat) Value { return ShareValue(f.SelfCountShare()) }
	totalCountShare = func(f Flat) Value { return ShareValue(f.TotalCountShare()) }
)

var bindings = [numAttributes]binding{
	FQMN: {
		entry:     func(f Flat) Value { return TextValue(f.Key()) },
		node:      func(f Flat) Value { return TextValue(f.Key()) },
		diffEntry: func(d Diffed) Value { return TextValue(d.Key()) },
		diffNode:  func(d Diffed) Value { return TextValue(d.Key()) },
	},

	SelfTime:        onFlat(selfTime),
	TotalTime:       onFlat(totalTime),
	SelfCount:       onFlat(selfCount),
	TotalCount:      onFlat(totalCount),
	SelfTimeShare:   onFlat(selfTimeShare),
	TotalTimeShare:  onFlat(totalTimeShare),
	SelfCountShare:  onFlat(selfCountShare),
	TotalCountShare: onFlat(totalCountShare),

	BaseSelfTime:        onBase(selfTime),
	BaseTotalTime:       onBase(totalTime),
	BaseSelfCount:       onBase(selfCount),
	BaseTotalCount:      onBase(totalCount),
	BaseSelfTimeShare:   onBase(selfTimeShare),
	BaseTotalTimeShare:  onBase(totalTimeShare),
	BaseSelfCountShare:  onBase(selfCountShare),
	BaseTotalCountShare: onBase(totalCountShare),

	NewSelfTime:        onNew(selfTime),
	NewTotalTime:       onNew(totalTime),
	NewSelfCount:       onNew(selfCount),
	NewTotalCount:      onNew(totalCount),
	NewSelfTimeShare:   onNew(selfTimeShare),
	NewTotalTimeShare:  onNew(totalTimeShare),
	NewSelfCountShare:  onNew(selfCountShare),
	NewTotalCountShare: onNew(totalCountShare),

	SelfTimeDiff:        onDiffed(func(d Diffed) Value { return DurationValue(d.SelfTimeDiff()) }),
	TotalTimeDiff:       onDiffed(func(d Diffed) Value { return DurationValue(d.TotalTimeDiff()) }),
	SelfCountDiff:       onDiffed(func(d Diffed) Value { return CountValue(d.SelfCountDiff()) }),
	TotalCountDiff:      onDiffed(func(d Diffed) Value { return CountValue(d.TotalCountDiff()) }),
	SelfTimeShareDiff:   onDiffed(func(d Diffed) Value { return PercentPointValue(d.SelfTimeShareDiff()) }),
	TotalTimeShareDiff:  onDiffed(func(d Diffed) Value { return PercentPointValue(d.TotalTimeShareDiff()) }),
	SelfCountShareDiff:  onDiffed(func(d Diffed) Value { return PercentPointValue(d.SelfCountShareDiff()) }),
	TotalCountShareDiff: onDiffed(func(d Diffed) Value { return PercentPointValue(d.TotalCountShareDiff()) }),
}

// Lookup returns the extractor bound to a for the representation of s.
// It fails with *UnsupportedCombinationError when a is undefined for that
// representation; it never returns a nil extractor without an error.
func Lookup[T any](a Attribute, s Shape[T]) (Extractor[T], error) {
	if a.Valid() && s.pick != nil {
		if fn := s.pick(bindings[a]); fn != nil {
			return fn, nil
		}
	}
	return nil, &UnsupportedCombinationError{Attribute: a, Representation: s.rep}
}

// Check reports whether a can be extracted from r without handing out an
// extractor. Callers holding only tags, such as column validation, use it.
func Check(a Attribute, r Representation) error {
	if !Supports(a, r) {
		return &UnsupportedCombinationError{Attribute: a, Representation: r}
	}
	return nil
}

// Supports reports whether a has an extractor bound for r.
func Supports(a Attribute, r Representation) bool {
	return a.Valid() && bindings[a].has(r)
}

// Representations returns the representations a is defined for.
func (a Attribute) Representations() []Representation {
	var reps []Representation
	for _, r := range Representations() {
		if Supports(a, r) {
			reps = append(reps, r)
		}
	}
	return reps
}
