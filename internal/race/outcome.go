// Package race implements the race timing and scoring engine.
package race

// Outcome classifies the effect of a single keystroke on a race.
type Outcome int

const (
	// NoOp means the keystroke was ignored and nothing changed.
	NoOp Outcome = iota
	// Correct means the keystroke matched and the position advanced.
	Correct
	// Wrong means the keystroke did not match and a miss was counted.
	Wrong
	// Quit means the race was cancelled.
	Quit
)

func (o Outcome) String() string {
	switch o {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	case Quit:
		return "quit"
	default:
		return "noop"
	}
}

// KeyKind distinguishes input events.
type KeyKind int

const (
	// KeyIgnored is any event the tracker does not care about.
	KeyIgnored KeyKind = iota
	// KeyRune is a printable character.
	KeyRune
	// KeyCancel aborts the race.
	KeyCancel
)

// Key is one input event fed to a Tracker.
type Key struct {
	Kind KeyKind
	Rune rune
}

// RuneKey returns a printable key event.
func RuneKey(r rune) Key {
	return Key{Kind: KeyRune, Rune: r}
}

// CancelKey returns a cancellation event.
func CancelKey() Key {
	return Key{Kind: KeyCancel}
}
