package race

import "time"

// Tracker walks a target text one keystroke at a time.
type Tracker struct {
	clock     Clock
	text      []rune
	position  int
	hits      int
	misses    int
	startedAt time.Time
	endedAt   time.Time
}

// NewTracker returns a tracker for text. A nil clock uses SystemClock.
func NewTracker(text string, clock Clock) *Tracker {
	if clock == nil {
		clock = SystemClock
	}
	return &Tracker{clock: clock, text: []rune(text)}
}

// Submit applies one key event.
func (t *Tracker) Submit(key Key) Outcome {
	switch key.Kind {
	case KeyCancel:
		return Quit
	case KeyRune:
	default:
		return NoOp
	}
	if t.Done() {
		return NoOp
	}
	now := t.clock.Now()
	if t.startedAt.IsZero() {
		t.startedAt = now
	}
	if !Matches(t.text[t.position], key.Rune) {
		t.misses++
		return Wrong
	}
	t.hits++
	t.position++
	if t.Done() {
		t.endedAt = now
	}
	return Correct
}

// Expected returns the next rune to type, or false when the text is done.
func (t *Tracker) Expected() (rune, bool) {
	if t.Done() {
		return 0, false
	}
	return t.text[t.position], true
}

// Done reports whether every rune has been matched.
func (t *Tracker) Done() bool {
	return t.position >= len(t.text)
}

// Started reports whether the first keystroke has arrived.
func (t *Tracker) Started() bool {
	return !t.startedAt.IsZero()
}

// StartedAt returns the time of the first keystroke.
func (t *Tracker) StartedAt() time.Time {
	return t.startedAt
}

// EndedAt returns the time the last rune was matched, zero until then.
func (t *Tracker) EndedAt() time.Time {
	return t.endedAt
}

// Elapsed returns the race time at now, zero before the first keystroke.
// Once the text is done the race time stops at the last match.
func (t *Tracker) Elapsed(now time.Time) time.Duration {
	if t.startedAt.IsZero() {
		return 0
	}
	if !t.endedAt.IsZero() {
		now = t.endedAt
	}
	d := now.Sub(t.startedAt)
	if d < 0 {
		return 0
	}
	return d
}

// Position returns the index of the next rune to type.
func (t *Tracker) Position() int { return t.position }

// Hits returns the number of correct keystrokes.
func (t *Tracker) Hits() int { return t.hits }

// Misses returns the number of wrong keystrokes.
func (t *Tracker) Misses() int { return t.misses }

// Len returns the length of the target text in runes.
func (t *Tracker) Len() int { return len(t.text) }

// Text returns the target runes. Callers must not modify the slice.
func (t *Tracker) Text() []rune { return t.text }
