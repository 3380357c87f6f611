package attribute

import "time"

// Flat is the capability set of the Entry and Node representations: one
// method's own figures plus their shares of the profile-wide totals.
type Flat interface {
	Key() string

	SelfTime() time.Duration
	TotalTime() time.Duration
	SelfCount() int64
	TotalCount() int64

	SelfTimeShare() float64
	TotalTimeShare() float64
	SelfCountShare() float64
	TotalCountShare() float64
}

// Diffed is the capability set of the DiffEntry and DiffNode
// representations. Base and New never return nil; a side missing from one
// profile is reported as a zero snapshot.
type Diffed interface {
	Key() string

	Base() Flat
	New() Flat

	SelfTimeDiff() time.Duration
	TotalTimeDiff() time.Duration
	SelfCountDiff() int64
	TotalCountDiff() int64

	// Share deltas are New minus Base, as fractions.
	SelfTimeShareDiff() float64
	TotalTimeShareDiff() float64
	SelfCountShareDiff() float64
	TotalCountShareDiff() float64
}
