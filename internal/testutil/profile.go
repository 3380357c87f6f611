package testutil

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/pprof/profile"
	"github.com/stretchr/testify/require"
)

// Stack is one CPU sample: frames innermost first, as pprof stores them.
type Stack struct {
	Frames []string
	Count  int64
}

// SamplePeriod is the CPU time each counted sample of BuildCPUProfile
// stands for.
const SamplePeriod = 10 * time.Millisecond

// BuildCPUProfile creates a synthetic CPU profile with "samples/count" and
// "cpu/nanoseconds" sample types, one location per frame.
func BuildCPUProfile(t *testing.T, stacks []Stack) *profile.Profile {
	t.Helper()

	prof := &profile.Profile{
		SampleType: []*profile.ValueType{
			{Type: "samples", Unit: "count"},
			{Type: "cpu", Unit: "nanoseconds"},
		},
		PeriodType: &profile.ValueType{Type: "cpu", Unit: "nanoseconds"},
		Period:     int64(SamplePeriod),
	}

	funcs := make(map[string]*profile.Function)
	locs := make(map[string]*profile.Location)

	for _, s := range stacks {
		var sampleLocs []*profile.Location
		for _, name := range s.Frames {
			loc, ok := locs[name]
			if !ok {
				fn := &profile.Function{ID: uint64(len(funcs) + 1), Name: name}
				prof.Function = append(prof.Function, fn)
				funcs[name] = fn

				loc = &profile.Location{
					ID:   uint64(len(locs) + 1),
					Line: []profile.Line{{Function: fn}},
				}
				prof.Location = append(prof.Location, loc)
				locs[name] = loc
			}
			sampleLocs = append(sampleLocs, loc)
		}
		prof.Sample = append(prof.Sample, &profile.Sample{
			Location: sampleLocs,
			Value:    []int64{s.Count, s.Count * int64(SamplePeriod)},
		})
	}

	require.NoError(t, prof.CheckValid())
	return prof
}

// WriteProfile writes prof, gzip-compressed, to a file in a temporary
// directory and returns its path.
func WriteProfile(t *testing.T, prof *profile.Profile, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, prof.Write(f))
	require.NoError(t, f.Close())
	return path
}
