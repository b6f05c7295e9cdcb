package race

import (
	"errors"
	"math"
	"math/rand"
	"testing"
	"time"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1700000000, 0)}
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func typeString(r *Race, s string) {
	for _, ch := range s {
		r.Submit(RuneKey(ch))
	}
}

func TestFullCorrectTraversal(t *testing.T) {
	quote := "The sooner your kids appreciate the value of work."
	clock := newFakeClock()
	r := New(quote, clock)
	for _, ch := range quote {
		if r.Done() {
			t.Fatalf("race finished early")
		}
		clock.Advance(150 * time.Millisecond)
		if got := r.Submit(RuneKey(ch)); got != Correct {
			t.Fatalf("expected correct for %q, got %s", ch, got)
		}
	}
	if !r.Done() {
		t.Fatalf("expected race to be done")
	}
	rec, err := r.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if rec.Correct != len([]rune(quote)) {
		t.Fatalf("expected %d correct, got %d", len([]rune(quote)), rec.Correct)
	}
	if rec.Misses != 0 {
		t.Fatalf("expected no misses, got %d", rec.Misses)
	}
	if rec.Accuracy() != 100 {
		t.Fatalf("expected 100%% accuracy, got %.2f", rec.Accuracy())
	}
}

func TestWrongKeystrokeDoesNotAdvance(t *testing.T) {
	tr := NewTracker("ab", newFakeClock())
	if got := tr.Submit(RuneKey('x')); got != Wrong {
		t.Fatalf("expected wrong, got %s", got)
	}
	if tr.Position() != 0 || tr.Misses() != 1 || tr.Hits() != 0 {
		t.Fatalf("unexpected state: pos=%d hits=%d misses=%d", tr.Position(), tr.Hits(), tr.Misses())
	}
	if got := tr.Submit(RuneKey('x')); got != Wrong {
		t.Fatalf("expected wrong, got %s", got)
	}
	if tr.Position() != 0 || tr.Misses() != 2 {
		t.Fatalf("expected misses to grow without advancing, pos=%d misses=%d", tr.Position(), tr.Misses())
	}
}

func TestClockStartsOnFirstKeystroke(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker("abc", clock)
	clock.Advance(10 * time.Second)
	if tr.Started() {
		t.Fatalf("tracker started before any keystroke")
	}
	tr.Submit(Key{Kind: KeyIgnored})
	if tr.Started() {
		t.Fatalf("ignored key must not start the clock")
	}
	first := clock.Now()
	tr.Submit(RuneKey('z'))
	if !tr.Started() || !tr.StartedAt().Equal(first) {
		t.Fatalf("expected wrong first keystroke to start the clock at %v, got %v", first, tr.StartedAt())
	}
	clock.Advance(time.Second)
	tr.Submit(RuneKey('a'))
	if !tr.StartedAt().Equal(first) {
		t.Fatalf("start time moved after the first keystroke")
	}
}

func TestTerminalTrackerIgnoresInput(t *testing.T) {
	tr := NewTracker("a", newFakeClock())
	tr.Submit(RuneKey('a'))
	if !tr.Done() {
		t.Fatalf("expected tracker to be done")
	}
	if got := tr.Submit(RuneKey('a')); got != NoOp {
		t.Fatalf("expected noop after completion, got %s", got)
	}
	if tr.Position() != 1 || tr.Hits() != 1 || tr.Misses() != 0 {
		t.Fatalf("terminal tracker changed state")
	}
	if _, ok := tr.Expected(); ok {
		t.Fatalf("expected no next rune")
	}
}

func TestCancelAndIgnoredKeys(t *testing.T) {
	tr := NewTracker("ab", newFakeClock())
	if got := tr.Submit(CancelKey()); got != Quit {
		t.Fatalf("expected quit, got %s", got)
	}
	if got := tr.Submit(Key{Kind: KeyIgnored, Rune: 'a'}); got != NoOp {
		t.Fatalf("expected noop, got %s", got)
	}
	if tr.Started() || tr.Hits() != 0 || tr.Misses() != 0 {
		t.Fatalf("cancel or ignored keys changed state")
	}
}

func TestPunctuationSubstitution(t *testing.T) {
	tr := NewTracker("a:b?C<>", newFakeClock())
	for _, ch := range "a;b/c,." {
		if got := tr.Submit(RuneKey(ch)); got != Correct {
			t.Fatalf("expected %q to match, got %s", ch, got)
		}
	}
	if !tr.Done() {
		t.Fatalf("expected all substitutions to be accepted")
	}

	tr = NewTracker(":?", newFakeClock())
	if got := tr.Submit(RuneKey(':')); got != Correct {
		t.Fatalf("expected literal colon to match, got %s", got)
	}
	if got := tr.Submit(RuneKey('?')); got != Correct {
		t.Fatalf("expected literal question mark to match, got %s", got)
	}
}

func TestShiftedKeyDoesNotMatchBaseKey(t *testing.T) {
	pairs := map[rune]rune{';': ':', '/': '?', ',': '<', '.': '>'}
	for expected, typed := range pairs {
		tr := NewTracker(string(expected), newFakeClock())
		if got := tr.Submit(RuneKey(typed)); got != Wrong {
			t.Fatalf("expected %q typed against %q to be wrong, got %s", typed, expected, got)
		}
		if tr.Position() != 0 || tr.Misses() != 1 {
			t.Fatalf("expected miss without advancing, got position %d misses %d", tr.Position(), tr.Misses())
		}
	}
}

func TestPositionMonotonicAndBounded(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	alphabet := []rune("abc xyz")
	for round := 0; round < 50; round++ {
		tr := NewTracker("abc abc", newFakeClock())
		prev := 0
		for i := 0; i < 200; i++ {
			key := RuneKey(alphabet[rnd.Intn(len(alphabet))])
			if rnd.Intn(10) == 0 {
				key = Key{Kind: KeyIgnored}
			}
			before := tr.Misses()
			out := tr.Submit(key)
			if tr.Position() < prev {
				t.Fatalf("position decreased from %d to %d", prev, tr.Position())
			}
			if tr.Position() > tr.Len() {
				t.Fatalf("position %d exceeds length %d", tr.Position(), tr.Len())
			}
			if out == Wrong && (tr.Position() != prev || tr.Misses() != before+1) {
				t.Fatalf("wrong keystroke advanced or did not count a miss")
			}
			prev = tr.Position()
		}
	}
}

func TestSamplerOneSplitPerSecond(t *testing.T) {
	clock := newFakeClock()
	r := New("abcdefghij", clock)
	if _, ok := r.Tick(); ok {
		t.Fatalf("sampled before the race started")
	}
	clock.Advance(5 * time.Second)
	if _, ok := r.Tick(); ok {
		t.Fatalf("idle time before typing must not produce splits")
	}

	r.Submit(RuneKey('a'))
	total := 5500 * time.Millisecond
	tick := 20 * time.Millisecond
	count := 0
	for elapsed := time.Duration(0); elapsed < total; elapsed += tick {
		clock.Advance(tick)
		if split, ok := r.Tick(); ok {
			count++
			if split.Hits != 1 {
				t.Fatalf("expected split to carry current hits, got %d", split.Hits)
			}
		}
	}
	if count != 5 {
		t.Fatalf("expected 5 splits for a 5.5s race, got %d", count)
	}
}

func TestSamplerIrregularTicks(t *testing.T) {
	clock := newFakeClock()
	tr := NewTracker("abc", clock)
	s := NewSampler(tr)
	tr.Submit(RuneKey('a'))
	for _, step := range []time.Duration{300, 900, 100, 2500, 50, 900} {
		clock.Advance(step * time.Millisecond)
		s.Sample(clock.Now())
	}
	splits := s.Splits()
	if len(splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(splits))
	}
	if splits[0].Elapsed != 1200*time.Millisecond || splits[1].Elapsed != 3800*time.Millisecond {
		t.Fatalf("unexpected split marks: %v, %v", splits[0].Elapsed, splits[1].Elapsed)
	}
}

func TestScoreOneMinute(t *testing.T) {
	clock := newFakeClock()
	r := New("abc", clock)
	r.Submit(RuneKey('a'))
	clock.Advance(30 * time.Second)
	r.Submit(RuneKey('b'))
	clock.Advance(30 * time.Second)
	r.Submit(RuneKey('c'))
	rec, err := r.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if !approxEqual(rec.WPM(), 0.6) {
		t.Fatalf("expected 0.6 wpm, got %f", rec.WPM())
	}
	if rec.Accuracy() != 100 {
		t.Fatalf("expected 100%% accuracy, got %f", rec.Accuracy())
	}
	if len(rec.Splits) != 0 {
		t.Fatalf("expected no splits without ticks, got %d", len(rec.Splits))
	}
}

func TestScoreWithMiss(t *testing.T) {
	clock := newFakeClock()
	r := New("ab", clock)
	typeString(r, "axb")
	rec, err := r.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if rec.Correct != 2 || rec.Misses != 1 {
		t.Fatalf("expected hits=2 misses=1, got %d/%d", rec.Correct, rec.Misses)
	}
	if got := rec.Accuracy(); math.Abs(got-66.6666667) > 1e-6 {
		t.Fatalf("expected 66.67%% accuracy, got %f", got)
	}
	if r.Tracker().Position() != 2 {
		t.Fatalf("expected position 2, got %d", r.Tracker().Position())
	}
}

func TestScoreGuards(t *testing.T) {
	rec := Record{}
	if rec.Accuracy() != 100 {
		t.Fatalf("expected 100%% accuracy for an empty race, got %f", rec.Accuracy())
	}
	if rec.WPM() != 0 || rec.Raw() != 0 {
		t.Fatalf("expected zero rates for zero duration, got %f/%f", rec.WPM(), rec.Raw())
	}
	split := Split{Hits: 3}
	if split.WPM() != 0 || split.Raw() != 0 {
		t.Fatalf("expected zero split rates for zero duration")
	}
}

func TestRawIsPerSecond(t *testing.T) {
	rec := Record{Correct: 10, Misses: 5, Elapsed: 30 * time.Second}
	if !approxEqual(rec.Raw(), 0.1) {
		t.Fatalf("expected raw 0.1, got %f", rec.Raw())
	}
	if !approxEqual(rec.WPM(), 4) {
		t.Fatalf("expected wpm 4, got %f", rec.WPM())
	}
	split := Split{Elapsed: 2 * time.Second, Hits: 10, Misses: 5}
	if !approxEqual(split.Raw(), 1.5) {
		t.Fatalf("expected split raw 1.5, got %f", split.Raw())
	}
	if !approxEqual(split.WPM(), 60) {
		t.Fatalf("expected split wpm 60, got %f", split.WPM())
	}
}

func TestSeriesIncludeFinalPoint(t *testing.T) {
	rec := Record{
		Correct: 20,
		Misses:  2,
		Elapsed: 2500 * time.Millisecond,
		Splits: []Split{
			{Elapsed: time.Second, Hits: 8, Misses: 1},
			{Elapsed: 2 * time.Second, Hits: 16, Misses: 2},
		},
	}
	wpm := rec.WPMSeries()
	raw := rec.RawSeries()
	if len(wpm) != 3 || len(raw) != 3 {
		t.Fatalf("expected 3 points, got %d/%d", len(wpm), len(raw))
	}
	last := wpm[len(wpm)-1]
	if !approxEqual(last.Seconds, 2.5) || !approxEqual(last.Value, rec.WPM()) {
		t.Fatalf("unexpected final wpm point: %+v", last)
	}
	if !approxEqual(wpm[0].Value, rec.Splits[0].WPM()) || !approxEqual(raw[1].Value, rec.Splits[1].Raw()) {
		t.Fatalf("split points do not match split metrics")
	}
}

func TestFinishErrors(t *testing.T) {
	r := New("ab", newFakeClock())
	r.Submit(RuneKey('a'))
	if _, err := r.Finish(); !errors.Is(err, ErrUnfinished) {
		t.Fatalf("expected ErrUnfinished, got %v", err)
	}
	empty := New("", newFakeClock())
	if _, err := empty.Finish(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

func TestFinishUsesTimeOfLastKeystroke(t *testing.T) {
	clock := newFakeClock()
	r := New("ab", clock)
	r.Submit(RuneKey('a'))
	clock.Advance(time.Second)
	r.Submit(RuneKey('b'))

	clock.Advance(time.Minute)
	first, err := r.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	clock.Advance(time.Minute)
	second, err := r.Finish()
	if err != nil {
		t.Fatalf("finish again: %v", err)
	}
	if first.Elapsed != time.Second || second.Elapsed != time.Second {
		t.Fatalf("expected 1s for both records, got %s and %s", first.Elapsed, second.Elapsed)
	}
	if !approxEqual(first.WPM(), 24) || !approxEqual(second.WPM(), first.WPM()) {
		t.Fatalf("expected 24 wpm for both records, got %.2f and %.2f", first.WPM(), second.WPM())
	}
	if r.Elapsed() != time.Second {
		t.Fatalf("expected race clock to stop at the last keystroke, got %s", r.Elapsed())
	}
}

func TestSessionAverage(t *testing.T) {
	var s Session
	if _, ok := s.Average(); ok {
		t.Fatalf("expected no average before any race")
	}
	s.Record(Record{Correct: 25, Elapsed: time.Minute})
	s.Record(Record{Correct: 25, Misses: 4, Elapsed: time.Minute})
	avg, ok := s.Average()
	if !ok {
		t.Fatalf("expected an average")
	}
	if !approxEqual(s.TotalWords(), 10) || !approxEqual(s.TotalMinutes(), 2) {
		t.Fatalf("unexpected totals: %f words, %f minutes", s.TotalWords(), s.TotalMinutes())
	}
	if !approxEqual(avg, 5) {
		t.Fatalf("expected 5 wpm, got %f", avg)
	}
	if s.Races() != 2 {
		t.Fatalf("expected 2 races, got %d", s.Races())
	}
}
