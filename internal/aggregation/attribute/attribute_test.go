package attribute

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAttributes_Catalog(t *testing.T) {
	all := Attributes()
	require.Len(t, all, 33)

	keys := make(map[string]bool)
	labels := make(map[string]bool)
	for i, a := range all {
		assert.Equal(t, Attribute(i), a, "declaration order")
		assert.True(t, a.Valid())
		assert.NotEmpty(t, a.Key())
		assert.NotEmpty(t, a.Label())
		assert.NotZero(t, a.Kind(), "%s has no kind", a.Key())

		assert.False(t, keys[a.Key()], "duplicate key %s", a.Key())
		assert.False(t, labels[a.Label()], "duplicate label %s", a.Label())
		keys[a.Key()] = true
		labels[a.Label()] = true
	}

	assert.False(t, Attribute(len(all)).Valid())
}

func TestAttributes_FreshSlice(t *testing.T) {
	first := Attributes()
	first[0] = TotalCountShareDiff
	assert.Equal(t, FQMN, Attributes()[0])
}

func TestAttributes_KindConsistency(t *testing.T) {
	for _, a := range Attributes() {
		label := a.Label()
		switch {
		case strings.Contains(label, "% Diff"):
			assert.Equal(t, PercentPointDelta, a.Kind(), label)
		case strings.Contains(label, "%"):
			assert.Equal(t, Share, a.Kind(), label)
		case strings.Contains(label, "Time"):
			assert.Equal(t, Duration, a.Kind(), label)
		case strings.Contains(label, "Count"):
			assert.Equal(t, Count, a.Kind(), label)
		default:
			assert.Equal(t, Text, a.Kind(), label)
		}
	}
}

func TestAttribute_Metadata(t *testing.T) {
	tests := []struct {
		attr  Attribute
		key   string
		label string
		kind  ValueKind
	}{
		{FQMN, "fqmn", "Fully Qualified Method Name", Text},
		{SelfTime, "self_time", "Self Time", Duration},
		{TotalCountShare, "total_count_pct", "Total Count %", Share},
		{BaseSelfCount, "base_self_count", "Base Self Count", Count},
		{NewTotalTimeShare, "new_total_time_pct", "New Total Time %", Share},
		{SelfTimeShareDiff, "self_time_pct_diff", "Self Time % Diff", PercentPointDelta},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.key, tt.attr.Key())
			assert.Equal(t, tt.label, tt.attr.Label())
			assert.Equal(t, tt.label, tt.attr.String())
			assert.Equal(t, tt.kind, tt.attr.Kind())
		})
	}
}

func TestParseAttribute(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Attribute
		wantErr bool
	}{
		{name: "key", input: "self_time", want: SelfTime},
		{name: "label", input: "Self Time %", want: SelfTimeShare},
		{name: "label any case", input: "  total count % diff ", want: TotalCountShareDiff},
		{name: "key upper case", input: "FQMN", want: FQMN},
		{name: "unknown", input: "wall clock", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAttribute(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownAttribute)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRepresentation(t *testing.T) {
	for _, r := range Representations() {
		got, err := ParseRepresentation(strings.ToUpper(r.String()))
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	_, err := ParseRepresentation("tree")
	assert.ErrorIs(t, err, ErrUnknownRepresentation)
}

func TestRepresentation_IsDiff(t *testing.T) {
	assert.False(t, Entry.IsDiff())
	assert.False(t, Node.IsDiff())
	assert.True(t, DiffEntry.IsDiff())
	assert.True(t, DiffNode.IsDiff())
}

func TestValueKind_String(t *testing.T) {
	assert.Equal(t, "text", Text.String())
	assert.Equal(t, "count", Count.String())
	assert.Equal(t, "duration", Duration.String())
	assert.Equal(t, "share", Share.String())
	assert.Equal(t, "pp_delta", PercentPointDelta.String())
	assert.Equal(t, "ValueKind(0)", ValueKind(0).String())
}

func TestValue_Accessors(t *testing.T) {
	d := DurationValue(3 * time.Second)
	assert.Equal(t, Duration, d.Kind())
	assert.Equal(t, 3*time.Second, d.Duration())
	assert.Zero(t, d.Count())
	assert.Equal(t, float64(3*time.Second), d.Float())

	c := CountValue(7)
	assert.Equal(t, int64(7), c.Count())
	assert.Zero(t, c.Duration())
	assert.Equal(t, 7.0, c.Float())

	s := ShareValue(0.5)
	assert.Equal(t, 0.5, s.Float())
	assert.Zero(t, s.PercentPoints())

	pp := PercentPointValue(0.025)
	assert.InDelta(t, 2.5, pp.PercentPoints(), 1e-9)

	txt := TextValue("main.main")
	assert.Equal(t, "main.main", txt.Text())
	assert.Zero(t, txt.Float())
}
