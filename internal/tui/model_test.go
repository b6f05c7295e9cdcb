package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingcabrams/typing/internal/model"
	"github.com/kingcabrams/typing/internal/quotes"
	"github.com/kingcabrams/typing/internal/store"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func newTestModel(t *testing.T, text string) (*Model, *stepClock, *store.Store) {
	t.Helper()
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	pool, err := quotes.NewPool([]quotes.Quote{{Name: "Test", Text: text}})
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	clock := &stepClock{now: time.Unix(1700000000, 0)}
	cfg := model.Config{Username: "tester", Layout: "qwerty"}
	return NewModel(cfg, st, pool, clock), clock, st
}

func runeKey(r rune) tea.KeyMsg {
	if r == ' ' {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(m *Model, msg tea.Msg) tea.Cmd {
	_, cmd := m.Update(msg)
	return cmd
}

func TestRaceCompletesAndRecordsSession(t *testing.T) {
	m, clock, st := newTestModel(t, "ab c")
	if cmd := send(m, runeKey('s')); cmd == nil {
		t.Fatalf("expected tick command when a race starts")
	}
	if m.screen != screenRace {
		t.Fatalf("expected race screen")
	}
	for _, r := range "ax" {
		send(m, runeKey(r))
		clock.now = clock.now.Add(3 * time.Second)
		send(m, tickMsg{seq: m.raceSeq, at: clock.now})
	}
	if !m.lastWrong {
		t.Fatalf("expected last keystroke to be marked wrong")
	}
	for _, r := range "b c" {
		send(m, runeKey(r))
	}
	if m.screen != screenTitle || m.last == nil {
		t.Fatalf("expected race to finish back on the title screen")
	}
	if m.last.Correct != 4 || m.last.Misses != 1 {
		t.Fatalf("unexpected record: %+v", m.last)
	}
	if m.last.Elapsed != 6*time.Second {
		t.Fatalf("expected 6s race, got %v", m.last.Elapsed)
	}
	if len(m.last.Splits) != 2 {
		t.Fatalf("expected 2 splits, got %d", len(m.last.Splits))
	}
	if _, ok := m.session.Average(); !ok {
		t.Fatalf("expected a session average")
	}
	races, err := st.ListRaces(context.Background())
	if err != nil {
		t.Fatalf("list races: %v", err)
	}
	if len(races) != 1 || races[0].Username != "tester" || races[0].Layout != "qwerty" {
		t.Fatalf("unexpected race log: %+v", races)
	}
	view := m.View()
	for _, want := range []string{"Session average:", "(r) results", "wpm", "acc", "80.00%"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in title view:\n%s", want, view)
		}
	}
}

func TestCancelAbandonsRace(t *testing.T) {
	m, _, st := newTestModel(t, "abc")
	send(m, runeKey('s'))
	send(m, runeKey('a'))
	send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if m.screen != screenTitle || m.race != nil {
		t.Fatalf("expected cancel to return to the title screen")
	}
	if m.last != nil || m.session.Races() != 0 {
		t.Fatalf("cancelled race must not be recorded")
	}
	races, err := st.ListRaces(context.Background())
	if err != nil {
		t.Fatalf("list races: %v", err)
	}
	if len(races) != 0 {
		t.Fatalf("expected no logged races, got %d", len(races))
	}
}

func TestIgnoredKeysDoNotStartRace(t *testing.T) {
	m, _, _ := newTestModel(t, "abc")
	send(m, runeKey('s'))
	send(m, tea.KeyMsg{Type: tea.KeyLeft})
	send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'a'}, Alt: true})
	if m.race.Tracker().Started() {
		t.Fatalf("ignored keys must not start the clock")
	}
}

func TestTitleKeys(t *testing.T) {
	m, _, _ := newTestModel(t, "a")
	if !strings.Contains(m.View(), "(s) start | (q) quit") || strings.Contains(m.View(), "(r) results") {
		t.Fatalf("unexpected menu before any race:\n%s", m.View())
	}
	send(m, runeKey('s'))
	send(m, runeKey('a'))
	if !m.showResults {
		t.Fatalf("expected results to show after a race")
	}
	send(m, runeKey('r'))
	if m.showResults {
		t.Fatalf("expected r to hide results")
	}
	cmd := send(m, runeKey('q'))
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}

func TestTickStopsOutsideRace(t *testing.T) {
	m, clock, _ := newTestModel(t, "a")
	if cmd := send(m, tickMsg{seq: m.raceSeq, at: clock.now}); cmd != nil {
		t.Fatalf("expected no tick on the title screen")
	}
}

func TestQuotesReloaded(t *testing.T) {
	m, _, _ := newTestModel(t, "a")
	send(m, QuotesReloadedMsg{Quotes: []quotes.Quote{{Name: "x", Text: "xyz"}, {Name: "y", Text: "yz"}}})
	if m.source.(quotes.Reloader).Len() != 2 || !strings.Contains(m.notice, "reloaded 2 quotes") {
		t.Fatalf("expected pool to be replaced, notice %q", m.notice)
	}
	send(m, QuotesReloadedMsg{Err: errors.New("bad toml")})
	if m.source.(quotes.Reloader).Len() != 2 || !strings.Contains(m.notice, "bad toml") {
		t.Fatalf("expected pool kept on error, notice %q", m.notice)
	}
}

func TestUnknownLayoutFallsBack(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	pool, err := quotes.NewPool(quotes.Builtin())
	if err != nil {
		t.Fatalf("new pool: %v", err)
	}
	m := NewModel(model.Config{Layout: "workman"}, st, pool, nil)
	if m.layout.Name != "qwerty" || !strings.Contains(m.notice, "workman") {
		t.Fatalf("expected qwerty fallback, got %q (%q)", m.layout.Name, m.notice)
	}
}

func TestKeyboardHighlightsFoldedKey(t *testing.T) {
	m, _, _ := newTestModel(t, "?")
	send(m, runeKey('s'))
	out := m.renderKeyboard('?')
	if !strings.Contains(out, "/") || !strings.Contains(out, "qwerty") {
		t.Fatalf("expected keyboard with slash key and layout name:\n%s", out)
	}
}

func TestStaleTicksAreDropped(t *testing.T) {
	m, clock, _ := newTestModel(t, "abc")
	send(m, runeKey('s'))
	first := m.raceSeq
	send(m, runeKey('a'))
	send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	send(m, runeKey('s'))
	if m.raceSeq == first {
		t.Fatalf("expected a new race number")
	}
	if cmd := send(m, tickMsg{seq: first, at: clock.now}); cmd != nil {
		t.Fatalf("expected tick from the abandoned race to stop")
	}
	if cmd := send(m, tickMsg{seq: m.raceSeq, at: clock.now}); cmd == nil {
		t.Fatalf("expected tick for the current race to continue")
	}
}

type fixedSource quotes.Quote

func (f fixedSource) Next() quotes.Quote { return quotes.Quote(f) }

func TestFixedSourceRacesAndRejectsReload(t *testing.T) {
	st, err := store.OpenMemory()
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()
	m := NewModel(model.Config{Layout: "qwerty"}, st, fixedSource{Name: "Fixed", Text: "hi"}, nil)
	send(m, runeKey('s'))
	if m.quote.Name != "Fixed" {
		t.Fatalf("expected quote from source, got %q", m.quote.Name)
	}
	send(m, QuotesReloadedMsg{Quotes: []quotes.Quote{{Name: "x", Text: "x"}}})
	if !strings.Contains(m.notice, "fixed") {
		t.Fatalf("expected reload to be refused, notice %q", m.notice)
	}
}

func TestKeyboardNotesOffLayoutKey(t *testing.T) {
	m, _, _ := newTestModel(t, "a")
	if out := m.renderKeyboard('1'); !strings.Contains(out, "next: 1") {
		t.Fatalf("expected off-layout hint, got:\n%s", out)
	}
	if out := m.renderKeyboard('a'); strings.Contains(out, "next:") {
		t.Fatalf("expected no hint for a layout key, got:\n%s", out)
	}
}
