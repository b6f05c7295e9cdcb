package race

import (
	"errors"
	"time"
)

var (
	// ErrNotStarted is returned when finishing a race nobody typed in.
	ErrNotStarted = errors.New("race has not started")
	// ErrUnfinished is returned when finishing a race before the last character.
	ErrUnfinished = errors.New("race text is not fully typed")
)

// Race owns the state of one race from first keystroke to record.
type Race struct {
	clock   Clock
	tracker *Tracker
	sampler *Sampler
}

// New starts a race over text.
func New(text string, clock Clock) *Race {
	if clock == nil {
		clock = SystemClock
	}
	t := NewTracker(text, clock)
	return &Race{clock: clock, tracker: t, sampler: NewSampler(t)}
}

// Submit feeds one key into the tracker.
func (r *Race) Submit(key Key) Outcome {
	return r.tracker.Submit(key)
}

// Tick samples a split at the current time.
func (r *Race) Tick() (Split, bool) {
	return r.sampler.Sample(r.clock.Now())
}

// Tracker exposes the match state for rendering.
func (r *Race) Tracker() *Tracker {
	return r.tracker
}

// Done reports whether the text has been fully typed.
func (r *Race) Done() bool {
	return r.tracker.Done()
}

// Elapsed returns the race time so far.
func (r *Race) Elapsed() time.Duration {
	return r.tracker.Elapsed(r.clock.Now())
}

// Finish builds the record of a completed race. The record is timed at
// the last matched rune, so repeated calls return the same record.
func (r *Race) Finish() (Record, error) {
	if !r.tracker.Done() {
		return Record{}, ErrUnfinished
	}
	if !r.tracker.Started() {
		return Record{}, ErrNotStarted
	}
	return Record{
		Correct: r.tracker.Hits(),
		Misses:  r.tracker.Misses(),
		Elapsed: r.tracker.Elapsed(r.tracker.EndedAt()),
		Splits:  r.sampler.Splits(),
	}, nil
}
