package helpers

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/coral-mesh/profattr/internal/aggregation/attribute"
)

// FormatValue renders an attribute value for display according to its kind.
func FormatValue(v attribute.Value) string {
	switch v.Kind() {
	case attribute.Text:
		return v.Text()
	case attribute.Count:
		return strconv.FormatInt(v.Count(), 10)
	case attribute.Duration:
		return FormatDuration(v.Duration())
	case attribute.Share:
		return fmt.Sprintf("%.2f%%", v.Float()*100)
	case attribute.PercentPointDelta:
		return fmt.Sprintf("%+.2fpp", v.PercentPoints())
	default:
		return ""
	}
}

// RawValue returns the JSON representation of an attribute value: durations
// in nanoseconds, shares as fractions and deltas in percentage points.
func RawValue(v attribute.Value) interface{} {
	switch v.Kind() {
	case attribute.Text:
		return v.Text()
	case attribute.Count:
		return v.Count()
	case attribute.Duration:
		return v.Duration().Nanoseconds()
	case attribute.Share:
		return v.Float()
	case attribute.PercentPointDelta:
		return v.PercentPoints()
	default:
		return nil
	}
}

// CompareValues orders two values of the same kind: text lexically,
// everything else numerically.
func CompareValues(a, b attribute.Value) int {
	if a.Kind() == attribute.Text || b.Kind() == attribute.Text {
		return strings.Compare(a.Text(), b.Text())
	}
	switch fa, fb := a.Float(), b.Float(); {
	case fa < fb:
		return -1
	case fa > fb:
		return 1
	default:
		return 0
	}
}

// FormatDuration renders d with a unit suited to its magnitude.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		return "-" + FormatDuration(-d)
	}
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	} else if d < time.Millisecond {
		return fmt.Sprintf("%.1fµs", float64(d.Nanoseconds())/1000)
	} else if d < time.Second {
		return fmt.Sprintf("%.1fms", float64(d.Microseconds())/1000)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
