package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type styledRune struct {
	s       string
	width   int
	isSpace bool
}

// buildStyledRunes styles the quote for the race screen. Runes before
// position are typed; the rune at position is the cursor, marked wrong
// while the last keystroke missed.
func buildStyledRunes(targetRunes []rune, position int, wrong bool) []styledRune {
	cursor := position
	if cursor >= len(targetRunes) {
		cursor = -1
	}
	current, hasCurrent := wordAt(findWords(targetRunes), cursor)

	out := make([]styledRune, len(targetRunes))
	for i, target := range targetRunes {
		shown := target
		style := pendingStyle
		switch {
		case i < position:
			style = correctStyle
		case i == cursor && wrong:
			style = incorrectStyle
			if target == ' ' {
				shown = '•'
			}
		case i == cursor:
			style = cursorStyle
		case hasCurrent && target != ' ' && current.contains(i):
			style = currentWordStyle
		}
		out[i] = styledRune{
			s:       style.Render(string(shown)),
			width:   runewidth.RuneWidth(shown),
			isSpace: target == ' ',
		}
	}
	return out
}

// span is a half-open rune range [start, end).
type span struct {
	start int
	end   int
}

func (s span) contains(i int) bool {
	return i >= s.start && i < s.end
}

// findWords returns the non-space runs of text.
func findWords(text []rune) []span {
	var words []span
	for i := 0; i < len(text); {
		if text[i] == ' ' {
			i++
			continue
		}
		start := i
		for i < len(text) && text[i] != ' ' {
			i++
		}
		words = append(words, span{start: start, end: i})
	}
	return words
}

// wordAt returns the word holding the cursor, or the next word when the
// cursor sits on a space. With no cursor the first word is current.
func wordAt(words []span, cursor int) (span, bool) {
	if len(words) == 0 {
		return span{}, false
	}
	if cursor < 0 {
		return words[0], true
	}
	for _, w := range words {
		if cursor < w.end {
			return w, true
		}
	}
	return words[len(words)-1], true
}

// wrapStyledRunes breaks runes into lines no wider than width, preferring
// to break at spaces. The space a line breaks on is dropped.
func wrapStyledRunes(runes []styledRune, width int) string {
	var b strings.Builder
	for i, line := range breakLines(runes, width) {
		if i > 0 {
			b.WriteByte('\n')
		}
		for _, r := range line {
			b.WriteString(r.s)
		}
	}
	return b.String()
}

func breakLines(runes []styledRune, width int) [][]styledRune {
	if width <= 0 {
		return [][]styledRune{runes}
	}
	var lines [][]styledRune
	start, used, lastSpace := 0, 0, -1
	for i := 0; i < len(runes); i++ {
		if used+runes[i].width <= width || i == start {
			used += runes[i].width
			if runes[i].isSpace {
				lastSpace = i
			}
			continue
		}
		cut, next := i, i
		if lastSpace > start {
			cut, next = lastSpace, lastSpace+1
		}
		lines = append(lines, runes[start:cut])
		start, used, lastSpace = next, 0, -1
		for j := start; j < i; j++ {
			used += runes[j].width
			if runes[j].isSpace {
				lastSpace = j
			}
		}
		i--
	}
	return append(lines, runes[start:])
}
