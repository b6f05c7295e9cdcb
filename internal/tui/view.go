package tui

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingcabrams/typing/internal/race"
	"github.com/kingcabrams/typing/internal/stats"
)

const (
	keyWidth       = 5
	chartHeight    = 6
	resultsPadding = 4
)

const banner = `
$$$$$$$$\
\__$$  __|
   $$ | $$$$$$\   $$$$$$\  $$$$$$\$$$$\
   $$ |$$  __$$\ $$  __$$\ $$  _$$  _$$\
   $$ |$$$$$$$$ |$$ |  \__|$$ / $$ / $$ |
   $$ |$$   ____|$$ |      $$ | $$ | $$ |
   $$ |\$$$$$$$\ $$ |      $$ | $$ | $$ |
   \__| \_______|\__|      \__| \__| \__|`

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#50C878"))
	incorrectStyle   = lipgloss.NewStyle().Background(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	cursorStyle      = lipgloss.NewStyle().Background(lipgloss.Color("#6495ED"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#6495ED")).Bold(true)
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	keyStyle         = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A")).
				Width(keyWidth).
				Align(lipgloss.Center)
	nextKeyStyle = keyStyle.Foreground(lipgloss.Color("#50C878")).
			BorderForeground(lipgloss.Color("#50C878"))
	resultsStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A")).
			Padding(0, 1)
	statLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	statValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

func (m *Model) renderTitle() string {
	sections := []string{
		m.keys.menu(m.last != nil),
		banner,
		"",
		m.config.Username,
	}
	if avg, ok := m.session.Average(); ok {
		sections = append(sections, fmt.Sprintf("Session average: %.0f wpm", avg))
	}
	if m.last != nil && m.showResults {
		sections = append(sections, "", m.renderResults())
	}
	if m.session.Races() > 0 {
		sections = append(sections, "", m.history.View())
	}
	if m.notice != "" {
		sections = append(sections, "", footerStyle.Render(m.notice))
	}
	content := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) renderResults() string {
	rec := *m.last
	statsCol := lipgloss.JoinVertical(lipgloss.Center,
		statLabelStyle.Render("wpm"),
		statValueStyle.Render(fmt.Sprintf("%.0f", math.Round(rec.WPM()))),
		"",
		statLabelStyle.Render("acc"),
		statValueStyle.Render(fmt.Sprintf("%.2f%%", rec.Accuracy())),
	)
	chartWidth := stats.PlotWidthFor(m.resultsWidth() - lipgloss.Width(statsCol) - resultsPadding)
	var buf bytes.Buffer
	if err := stats.PlotRace(&buf, rec, chartWidth, chartHeight, true); err != nil {
		logErrf("failed to render chart: %v\n", err)
	}
	chart := strings.TrimRight(buf.String(), "\n")
	body := lipgloss.JoinHorizontal(lipgloss.Center, statsCol, strings.Repeat(" ", resultsPadding), chart)
	header := titleStyle.Render(m.lastQuote)
	return resultsStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

func (m *Model) resultsWidth() int {
	if m.width <= 0 {
		return 80
	}
	return int(float64(m.width) * 0.9)
}

func (m *Model) renderRace() string {
	t := m.race.Tracker()
	contentWidth := 60
	if m.width > 0 {
		contentWidth = int(float64(m.width) * 0.70)
	}
	if contentWidth < 1 {
		contentWidth = 1
	}
	styled := buildStyledRunes(t.Text(), t.Position(), m.lastWrong)
	text := lipgloss.NewStyle().Width(contentWidth).Render(wrapStyledRunes(styled, contentWidth))
	header := lipgloss.NewStyle().Width(contentWidth).Render(titleStyle.Render("## " + m.quote.Name))

	next, _ := t.Expected()
	content := lipgloss.JoinVertical(lipgloss.Center,
		header,
		"",
		text,
		"",
		m.renderKeyboard(next),
		footerStyle.Render(m.renderProgress()),
	)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderKeyboard draws the layout and highlights the key for next.
func (m *Model) renderKeyboard(next rune) string {
	folded := race.Fold(next)
	rows := make([]string, 0, len(m.layout.Rows)+1)
	for _, row := range m.layout.Rows {
		keys := make([]string, 0, len(row))
		for _, k := range row {
			style := keyStyle
			if k == folded {
				style = nextKeyStyle
			}
			keys = append(keys, style.Render(string(k)))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, keys...))
	}
	space := keyStyle.Width(keyWidth * 4)
	if next == ' ' {
		space = nextKeyStyle.Width(keyWidth * 4)
	}
	rows = append(rows, space.Render(m.layout.Name))
	if next != 0 && next != ' ' && !m.layout.Contains(folded) {
		rows = append(rows, footerStyle.Render("next: "+string(next)))
	}
	return lipgloss.JoinVertical(lipgloss.Center, rows...)
}

func (m *Model) renderProgress() string {
	t := m.race.Tracker()
	progress := 0
	if t.Len() > 0 {
		progress = t.Position() * 100 / t.Len()
	}
	segments := []string{fmt.Sprintf("Progress %d%%", progress)}
	if t.Started() {
		segments = append(segments, fmt.Sprintf("%.0fs", m.race.Elapsed().Seconds()))
	}
	if t.Misses() > 0 {
		segments = append(segments, fmt.Sprintf("%d misses", t.Misses()))
	}
	segments = append(segments, "ctrl+c abandons")
	return strings.Join(segments, "  ")
}
