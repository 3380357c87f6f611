// Package attribute is the catalog of named, typed profile attributes and the
// table that binds each of them to an extractor per result representation.
//
// The catalog and the binding table are fixed at build time and never
// mutated, so every function in this package is safe for concurrent use.
package attribute

import (
	"fmt"
	"strings"
)

// Attribute is a named, typed field of an aggregation result.
type Attribute uint8

const (
	FQMN Attribute = iota

	SelfTime
	TotalTime
	SelfCount
	TotalCount
	SelfTimeShare
	TotalTimeShare
	SelfCountShare
	TotalCountShare

	BaseSelfTime
	BaseTotalTime
	BaseSelfCount
	BaseTotalCount
	BaseSelfTimeShare
	BaseTotalTimeShare
	BaseSelfCountShare
	BaseTotalCountShare

	NewSelfTime
	NewTotalTime
	NewSelfCount
	NewTotalCount
	NewSelfTimeShare
	NewTotalTimeShare
	NewSelfCountShare
	NewTotalCountShare

	SelfTimeDiff
	TotalTimeDiff
	SelfCountDiff
	TotalCountDiff
	SelfTimeShareDiff
	TotalTimeShareDiff
	SelfCountShareDiff
	TotalCountShareDiff

	numAttributes
)

type descriptor struct {
	key   string
	label string
	kind  ValueKind
}

var descriptors = [numAttributes]descriptor{
	FQMN: {"fqmn", "Fully Qualified Method Name", Text},

	SelfTime:        {"self_time", "Self Time", Duration},
	TotalTime:       {"total_time", "Total Time", Duration},
	SelfCount:       {"self_count", "Self Count", Count},
	TotalCount:      {"total_count", "Total Count", Count},
	SelfTimeShare:   {"self_time_pct", "Self Time %", Share},
	TotalTimeShare:  {"total_time_pct", "Total Time %", Share},
	SelfCountShare:  {"self_count_pct", "Self Count %", Share},
	TotalCountShare: {"total_count_pct", "Total Count %", Share},

	BaseSelfTime:        {"base_self_time", "Base Self Time", Duration},
	BaseTotalTime:       {"base_total_time", "Base Total Time", Duration},
	BaseSelfCount:       {"base_self_count", "Base Self Count", Count},
	BaseTotalCount:      {"base_total_count", "Base Total Count", Count},
	BaseSelfTimeShare:   {"base_self_time_pct", "Base Self Time %", Share},
	BaseTotalTimeShare:  {"base_total_time_pct", "Base Total Time %", Share},
	BaseSelfCountShare:  {"base_self_count_pct", "Base Self Count %", Share},
	BaseTotalCountShare: {"base_total_count_pct", "Base Total Count %", Share},

	NewSelfTime:        {"new_self_time", "New Self Time", Duration},
	NewTotalTime:       {"new_total_time", "New Total Time", Duration},
	NewSelfCount:       {"new_self_count", "New Self Count", Count},
	NewTotalCount:      {"new_total_count", "New Total Count", Count},
	NewSelfTimeShare:   {"new_self_time_pct", "New Self Time %", Share},
	NewTotalTimeShare:  {"new_total_time_pct", "New Total Time %", Share},
	NewSelfCountShare:  {"new_self_count_pct", "New Self Count %", Share},
	NewTotalCountShare: {"new_total_count_pct", "New Total Count %", Share},

	SelfTimeDiff:        {"self_time_diff", "Self Time Diff", Duration},
	TotalTimeDiff:       {"total_time_diff", "Total Time Diff", Duration},
	SelfCountDiff:       {"self_count_diff", "Self Count Diff", Count},
	TotalCountDiff:      {"total_count_diff", "Total Count Diff", Count},
	SelfTimeShareDiff:   {"self_time_pct_diff", "Self Time % Diff", PercentPointDelta},
	TotalTimeShareDiff:  {"total_time_pct_diff", "Total Time % Diff", PercentPointDelta},
	SelfCountShareDiff:  {"self_count_pct_diff", "Self Count % Diff", PercentPointDelta},
	TotalCountShareDiff: {"total_count_pct_diff", "Total Count % Diff", PercentPointDelta},
}

// Attributes returns the whole catalog in declaration order.
func Attributes() []Attribute {
	all := make([]Attribute, numAttributes)
	for i := range all {
		all[i] = Attribute(i)
	}
	return all
}

// Valid reports whether a is a catalogued attribute.
func (a Attribute) Valid() bool {
	return a < numAttributes
}

// Key returns the stable machine name, e.g. "self_time_pct".
func (a Attribute) Key() string {
	if !a.Valid() {
		return fmt.Sprintf("attribute_%d", uint8(a))
	}
	return descriptors[a].key
}

// Label returns the human-readable name, e.g. "Self Time %".
func (a Attribute) Label() string {
	if !a.Valid() {
		return fmt.Sprintf("Attribute(%d)", uint8(a))
	}
	return descriptors[a].label
}

// Kind returns the declared value kind.
func (a Attribute) Kind() ValueKind {
	if !a.Valid() {
		return 0
	}
	return descriptors[a].kind
}

func (a Attribute) String() string {
	return a.Label()
}

// ParseAttribute resolves an attribute from its key or its label, ignoring
// case and surrounding whitespace.
func ParseAttribute(s string) (Attribute, error) {
	name := strings.TrimSpace(s)
	for i, d := range descriptors {
		if strings.EqualFold(d.key, name) || strings.EqualFold(d.label, name) {
			return Attribute(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAttribute, s)
}
