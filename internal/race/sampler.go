package race

import "time"

// SplitInterval is the minimum elapsed race time between two splits.
const SplitInterval = time.Second

// Sampler records splits of a tracker on elapsed race time.
type Sampler struct {
	tracker *Tracker
	mark    time.Duration
	splits  []Split
}

// NewSampler returns a sampler bound to t.
func NewSampler(t *Tracker) *Sampler {
	return &Sampler{tracker: t}
}

// Sample records a split when at least SplitInterval of race time has
// passed since the previous one. It does nothing before the first keystroke.
func (s *Sampler) Sample(now time.Time) (Split, bool) {
	if !s.tracker.Started() {
		return Split{}, false
	}
	elapsed := s.tracker.Elapsed(now)
	if elapsed-s.mark < SplitInterval {
		return Split{}, false
	}
	split := Split{Elapsed: elapsed, Hits: s.tracker.Hits(), Misses: s.tracker.Misses()}
	s.splits = append(s.splits, split)
	s.mark = elapsed
	return split, true
}

// Splits returns a copy of the recorded splits.
func (s *Sampler) Splits() []Split {
	out := make([]Split, len(s.splits))
	copy(out, s.splits)
	return out
}
