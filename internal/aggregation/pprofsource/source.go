// Package pprofsource aggregates pprof profiles into result objects.
package pprofsource

import (
	"fmt"
	"io"
	"time"

	"github.com/google/pprof/profile"
	"github.com/rs/zerolog"

	"github.com/coral-mesh/profattr/internal/aggregation/result"
	"github.com/coral-mesh/profattr/internal/errors"
	"github.com/coral-mesh/profattr/internal/safe"
)

// MaxProfileSize bounds the size of profile files accepted by LoadFile.
const MaxProfileSize = 512 << 20

// Options controls how sample values are read.
type Options struct {
	// SampleType selects the time value by sample type name, e.g. "cpu".
	// When empty, the first sample type measured in nanoseconds is used.
	SampleType string
}

// Loader reads pprof files and aggregates them.
type Loader struct {
	opts   Options
	logger zerolog.Logger
}

// NewLoader creates a loader.
func NewLoader(opts Options, logger zerolog.Logger) *Loader {
	return &Loader{
		opts:   opts,
		logger: logger.With().Str("component", "pprofsource").Logger(),
	}
}

// LoadFile parses the pprof file at path. Gzip-compressed files are accepted.
func (l *Loader) LoadFile(path string) (*result.Aggregate, error) {
	f, err := safe.Open(path, &safe.Options{MaxSize: MaxProfileSize})
	if err != nil {
		return nil, fmt.Errorf("failed to open profile: %w", err)
	}
	defer errors.DeferClose(l.logger, f, "failed to close profile file")

	agg, err := l.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return agg, nil
}

// Load parses a pprof profile from r.
func (l *Loader) Load(r io.Reader) (*result.Aggregate, error) {
	prof, err := profile.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse pprof profile: %w", err)
	}

	agg, err := Aggregate(prof, l.opts)
	if err != nil {
		return nil, err
	}

	l.logger.Debug().
		Int("samples", len(prof.Sample)).
		Int("methods", len(agg.Entries)).
		Int64("total_count", agg.Totals.Count).
		Dur("total_time", agg.Totals.Time).
		Msg("Aggregated profile")

	return agg, nil
}

// valueReader extracts the count and time of one sample.
type valueReader struct {
	countIdx int
	timeIdx  int
	period   time.Duration
}

func newValueReader(prof *profile.Profile, opts Options) (valueReader, error) {
	vr := valueReader{countIdx: -1, timeIdx: -1}

	for i, st := range prof.SampleType {
		if vr.countIdx < 0 && st.Unit == "count" {
			vr.countIdx = i
		}
		if opts.SampleType != "" {
			if st.Type == opts.SampleType {
				vr.timeIdx = i
			}
			continue
		}
		if vr.timeIdx < 0 && st.Unit == "nanoseconds" {
			vr.timeIdx = i
		}
	}

	if opts.SampleType != "" && vr.timeIdx < 0 {
		return vr, fmt.Errorf("%w: %q", ErrSampleTypeNotFound, opts.SampleType)
	}
	if vr.countIdx < 0 && vr.timeIdx < 0 {
		return vr, ErrNoSampleValues
	}

	// Without a time sample type, each counted sample stands for one period.
	if vr.timeIdx < 0 && prof.PeriodType != nil && prof.PeriodType.Unit == "nanoseconds" {
		vr.period = time.Duration(prof.Period)
	}

	return vr, nil
}

func (vr valueReader) read(s *profile.Sample) (int64, time.Duration) {
	var count int64
	var elapsed time.Duration

	if vr.countIdx >= 0 && vr.countIdx < len(s.Value) {
		count = s.Value[vr.countIdx]
	}
	if vr.timeIdx >= 0 && vr.timeIdx < len(s.Value) {
		elapsed = time.Duration(s.Value[vr.timeIdx])
	} else {
		elapsed = time.Duration(count) * vr.period
	}

	return count, elapsed
}

// Aggregate folds the samples of prof into per-method entries and a call
// tree. Self figures go to the innermost frame of each stack; total figures
// go to every method on the stack, counted once per sample even when the
// method recurses.
func Aggregate(prof *profile.Profile, opts Options) (*result.Aggregate, error) {
	vr, err := newValueReader(prof, opts)
	if err != nil {
		return nil, err
	}

	var totals result.Totals
	methods := make(map[string]*result.Stats)
	var order []string
	tree := newTreeBuilder()

	for _, s := range prof.Sample {
		count, elapsed := vr.read(s)
		if count == 0 && elapsed == 0 {
			continue
		}

		frames := frameNames(s)
		if len(frames) == 0 {
			continue
		}

		totals.Count += count
		totals.Time += elapsed
		add := result.Stats{TotalTime: elapsed, TotalCount: count}

		seen := make(map[string]bool, len(frames))
		for i, name := range frames {
			st, ok := methods[name]
			if !ok {
				st = &result.Stats{}
				methods[name] = st
				order = append(order, name)
			}
			if i == 0 {
				st.SelfTime += elapsed
				st.SelfCount += count
			}
			if !seen[name] {
				seen[name] = true
				*st = st.Add(add)
			}
		}

		tree.add(frames, count, elapsed)
	}

	entries := make([]*result.Entry, 0, len(order))
	for _, name := range order {
		entries = append(entries, result.NewEntry(name, *methods[name], totals))
	}

	return result.NewAggregate(totals, entries, tree.build(totals)), nil
}

// frameNames returns the method names of a sample, innermost first.
// Inlined functions of a location come before the function they were
// inlined into.
func frameNames(s *profile.Sample) []string {
	frames := make([]string, 0, len(s.Location))
	for _, loc := range s.Location {
		if len(loc.Line) == 0 {
			frames = append(frames, fmt.Sprintf("0x%x", loc.Address))
			continue
		}
		for _, line := range loc.Line {
			if line.Function != nil {
				frames = append(frames, line.Function.Name)
			}
		}
	}
	return frames
}
