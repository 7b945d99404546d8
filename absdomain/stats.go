package absdomain

import (
	"io"
	"sync"
	"time"

	"gonum.org/v1/gonum/stat"
)

// sampleWindow bounds the rolling per-operation timing buffer so a
// long-lived StatsPoly doesn't grow without bound.
const sampleWindow = 256

// OpStats summarizes the timings recorded for one operation name.
type OpStats struct {
	Count    int
	MeanNS   float64
	StdDevNS float64
}

// StatsPoly decorates an AbsPoly with call-timing aggregation (the
// "_Stats" kinds of §6.1), mirroring the teacher's noisy-instrumentation
// option pattern (config.Context.NoisyStats) but computing the actual
// mean/variance via gonum/stat rather than hand-rolled accumulators.
type StatsPoly struct {
	mu      sync.Mutex
	inner   AbsPoly
	kind    Kind
	samples map[string][]float64
}

// NewStatsPoly wraps inner, reporting itself as kind (one of the
// "_Stats" variants).
func NewStatsPoly(inner AbsPoly, kind Kind) *StatsPoly {
	return &StatsPoly{inner: inner, kind: kind, samples: make(map[string][]float64)}
}

func (s *StatsPoly) record(op string, start time.Time) {
	elapsed := float64(time.Since(start).Nanoseconds())
	s.mu.Lock()
	defer s.mu.Unlock()
	xs := append(s.samples[op], elapsed)
	if len(xs) > sampleWindow {
		xs = xs[len(xs)-sampleWindow:]
	}
	s.samples[op] = xs
}

// Counters reports the current mean/stddev/count per recorded operation.
func (s *StatsPoly) Counters() map[string]OpStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]OpStats, len(s.samples))
	for op, xs := range s.samples {
		if len(xs) == 0 {
			continue
		}
		mean := stat.Mean(xs, nil)
		var sd float64
		if len(xs) > 1 {
			sd = stat.StdDev(xs, nil)
		}
		out[op] = OpStats{Count: len(xs), MeanNS: mean, StdDevNS: sd}
	}
	return out
}

func (s *StatsPoly) SpaceDim() int {
	defer s.record("SpaceDim", time.Now())
	return s.inner.SpaceDim()
}

func (s *StatsPoly) IsEmpty() bool {
	defer s.record("IsEmpty", time.Now())
	return s.inner.IsEmpty()
}

func (s *StatsPoly) CopyCons() []string {
	defer s.record("CopyCons", time.Now())
	return s.inner.CopyCons()
}

func (s *StatsPoly) CopyGens() []string {
	defer s.record("CopyGens", time.Now())
	return s.inner.CopyGens()
}

func (s *StatsPoly) Clone() AbsPoly {
	defer s.record("Clone", time.Now())
	return NewStatsPoly(s.inner.Clone(), s.kind)
}

func (s *StatsPoly) Hash() uint64 {
	defer s.record("Hash", time.Now())
	return s.inner.Hash()
}

func (s *StatsPoly) MemoryBytes() int {
	defer s.record("MemoryBytes", time.Now())
	return s.inner.MemoryBytes()
}

func (s *StatsPoly) AsciiDump(w io.Writer) error {
	defer s.record("AsciiDump", time.Now())
	return s.inner.AsciiDump(w)
}

func (s *StatsPoly) Kind() Kind { return s.kind }
