package attribute

import "time"

// Value is an extracted attribute value tagged with its ValueKind. The zero
// Value has no kind.
type Value struct {
	kind  ValueKind
	text  string
	count int64
	ratio float64
}

func TextValue(s string) Value {
	return Value{kind: Text, text: s}
}

func CountValue(n int64) Value {
	return Value{kind: Count, count: n}
}

func DurationValue(d time.Duration) Value {
	return Value{kind: Duration, count: int64(d)}
}

// ShareValue wraps a fraction of a whole.
func ShareValue(f float64) Value {
	return Value{kind: Share, ratio: f}
}

// PercentPointValue wraps a difference between two shares, as a fraction.
func PercentPointValue(f float64) Value {
	return Value{kind: PercentPointDelta, ratio: f}
}

func (v Value) Kind() ValueKind { return v.kind }

func (v Value) Text() string { return v.text }

func (v Value) Count() int64 {
	if v.kind != Count {
		return 0
	}
	return v.count
}

func (v Value) Duration() time.Duration {
	if v.kind != Duration {
		return 0
	}
	return time.Duration(v.count)
}

// Float projects numeric kinds onto a float64 for ordering: counts as is,
// durations in nanoseconds, shares and deltas as fractions. Text yields 0.
func (v Value) Float() float64 {
	switch v.kind {
	case Count, Duration:
		return float64(v.count)
	case Share, PercentPointDelta:
		return v.ratio
	default:
		return 0
	}
}

// PercentPoints returns a PercentPointDelta in points (0.05 is 5 points).
func (v Value) PercentPoints() float64 {
	if v.kind != PercentPointDelta {
		return 0
	}
	return v.ratio * 100
}
