// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingcabrams/typing/internal/layout"
	"github.com/kingcabrams/typing/internal/model"
	"github.com/kingcabrams/typing/internal/quotes"
	"github.com/kingcabrams/typing/internal/race"
	"github.com/kingcabrams/typing/internal/stats"
	"github.com/kingcabrams/typing/internal/store"
)

const tickInterval = 20 * time.Millisecond

type screen int

const (
	screenTitle screen = iota
	screenRace
)

// tickMsg drives split sampling for the race numbered seq.
type tickMsg struct {
	seq int
	at  time.Time
}

// QuotesReloadedMsg delivers a reloaded quote pool into the UI loop.
type QuotesReloadedMsg struct {
	Quotes []quotes.Quote
	Err    error
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	config model.Config
	store  *store.Store
	source quotes.Source
	layout layout.Layout
	clock  race.Clock
	keys   keyMap

	width  int
	height int

	screen      screen
	showResults bool
	notice      string

	quote     quotes.Quote
	race      *race.Race
	raceSeq   int
	lastWrong bool

	session   race.Session
	last      *race.Record
	lastQuote string
	history   table.Model
}

// NewModel constructs a typing TUI model. A nil clock uses the system clock.
// Quote reloads apply only when source is a quotes.Reloader.
func NewModel(cfg model.Config, st *store.Store, source quotes.Source, clock race.Clock) *Model {
	if clock == nil {
		clock = race.SystemClock
	}
	kb, ok := layout.Lookup(cfg.Layout)
	m := &Model{
		config:      cfg,
		store:       st,
		source:      source,
		layout:      kb,
		clock:       clock,
		keys:        defaultKeyMap(),
		showResults: true,
		history:     newHistoryTable(),
	}
	if !ok {
		m.notice = fmt.Sprintf("unknown layout %q, using %s", cfg.Layout, kb.Name)
	}
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.history.SetWidth(historyWidth(m.width))
		return m, nil
	case QuotesReloadedMsg:
		m.applyQuotes(msg)
		return m, nil
	case tickMsg:
		if m.screen != screenRace || m.race == nil || msg.seq != m.raceSeq {
			return m, nil
		}
		m.race.Tick()
		return m, tick(m.raceSeq)
	case tea.KeyMsg:
		if m.screen == screenRace {
			return m, m.handleRaceKey(msg)
		}
		return m, m.handleTitleKey(msg)
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.screen == screenRace && m.race != nil {
		return m.renderRace()
	}
	return m.renderTitle()
}

func tick(seq int) tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg{seq: seq, at: t}
	})
}

func (m *Model) handleTitleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return tea.Quit
	case key.Matches(msg, m.keys.Start):
		m.startRace()
		return tick(m.raceSeq)
	case key.Matches(msg, m.keys.Results):
		m.showResults = !m.showResults
	}
	return nil
}

func (m *Model) handleRaceKey(msg tea.KeyMsg) tea.Cmd {
	for _, k := range translateKey(msg) {
		switch m.race.Submit(k) {
		case race.Correct:
			m.lastWrong = false
			if m.race.Done() {
				m.finishRace()
				return nil
			}
		case race.Wrong:
			m.lastWrong = true
		case race.Quit:
			m.abandonRace()
			return nil
		case race.NoOp:
		}
	}
	return nil
}

// translateKey maps a terminal key event to tracker keys. Pasted text
// arrives as one message with several runes.
func translateKey(msg tea.KeyMsg) []race.Key {
	switch msg.Type {
	case tea.KeyCtrlC:
		return []race.Key{race.CancelKey()}
	case tea.KeySpace:
		return []race.Key{race.RuneKey(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return []race.Key{{Kind: race.KeyIgnored}}
		}
		keys := make([]race.Key, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			keys = append(keys, race.RuneKey(r))
		}
		return keys
	default:
		return []race.Key{{Kind: race.KeyIgnored}}
	}
}

func (m *Model) startRace() {
	m.quote = m.source.Next()
	m.race = race.New(m.quote.Text, m.clock)
	m.raceSeq++
	m.lastWrong = false
	m.screen = screenRace
}

func (m *Model) abandonRace() {
	m.race = nil
	m.lastWrong = false
	m.screen = screenTitle
}

func (m *Model) finishRace() {
	rec, err := m.race.Finish()
	m.race = nil
	m.screen = screenTitle
	if err != nil {
		logErrf("failed to finish race: %v\n", err)
		return
	}
	m.session.Record(rec)
	m.last = &rec
	m.lastQuote = m.quote.Name
	m.showResults = true

	summary, splits := stats.Summarize(rec, m.quote.Name, m.config.Username, m.layout.Name, m.clock.Now())
	ctx := context.Background()
	if _, err := m.store.InsertRace(ctx, summary, splits); err != nil {
		logErrf("failed to log race: %v\n", err)
		return
	}
	m.refreshHistory(ctx)
}

func (m *Model) refreshHistory(ctx context.Context) {
	races, err := m.store.ListRaces(ctx)
	if err != nil {
		logErrf("failed to load race history: %v\n", err)
		return
	}
	applyHistory(&m.history, races)
}

func (m *Model) applyQuotes(msg QuotesReloadedMsg) {
	if msg.Err != nil {
		m.notice = fmt.Sprintf("quotes not reloaded: %v", msg.Err)
		return
	}
	pool, ok := m.source.(quotes.Reloader)
	if !ok {
		m.notice = "quotes not reloaded: quote source is fixed"
		return
	}
	if err := pool.Replace(msg.Quotes); err != nil {
		m.notice = fmt.Sprintf("quotes not reloaded: %v", err)
		return
	}
	m.notice = fmt.Sprintf("reloaded %d quotes", pool.Len())
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
