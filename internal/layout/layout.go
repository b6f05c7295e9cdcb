// Package layout holds the keyboard layouts drawn under the race text.
package layout

import (
	"sort"
	"strings"
	"unicode"
)

// Default is the layout used when none is configured.
const Default = "colemak"

// Fallback is the layout used for unknown names.
const Fallback = "qwerty"

// Rows is the three letter rows of a keyboard, ten keys each.
type Rows [3][10]rune

// Layout is a named keyboard layout.
type Layout struct {
	Name string
	Rows Rows
}

var layouts = map[string]Rows{
	"qwerty": {
		{'q', 'w', 'e', 'r', 't', 'y', 'u', 'i', 'o', 'p'},
		{'a', 's', 'd', 'f', 'g', 'h', 'j', 'k', 'l', ';'},
		{'z', 'x', 'c', 'v', 'b', 'n', 'm', ',', '.', '/'},
	},
	"colemak": {
		{'q', 'w', 'f', 'p', 'g', 'j', 'l', 'u', 'y', ';'},
		{'a', 'r', 's', 't', 'd', 'h', 'n', 'e', 'i', 'o'},
		{'z', 'x', 'c', 'v', 'b', 'k', 'm', ',', '.', '/'},
	},
	"dvorak": {
		{'\'', ',', '.', 'p', 'y', 'f', 'g', 'c', 'r', 'l'},
		{'a', 'o', 'e', 'u', 'i', 'd', 'h', 't', 'n', 's'},
		{';', 'q', 'j', 'k', 'x', 'b', 'm', 'w', 'v', 'z'},
	},
}

var shifted = map[rune]rune{
	',': '<',
	'.': '>',
	'/': '?',
	';': ':',
}

// Lookup returns the named layout. An empty name selects Default and an
// unknown name selects Fallback; ok is false only for unknown names.
func Lookup(name string) (Layout, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = Default
	}
	rows, ok := layouts[name]
	if !ok {
		return Layout{Name: Fallback, Rows: layouts[Fallback]}, false
	}
	return Layout{Name: name, Rows: rows}, true
}

// Names returns the known layout names in sorted order.
func Names() []string {
	names := make([]string, 0, len(layouts))
	for name := range layouts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Shifted returns the rows as printed with Shift held.
func (l Layout) Shifted() Rows {
	var out Rows
	for i, row := range l.Rows {
		for j, r := range row {
			out[i][j] = Shift(r)
		}
	}
	return out
}

// Shift maps an unshifted key to its shifted character.
func Shift(r rune) rune {
	if s, ok := shifted[r]; ok {
		return s
	}
	return unicode.ToUpper(r)
}

// Contains reports whether r is one of the layout's keys.
func (l Layout) Contains(r rune) bool {
	for _, row := range l.Rows {
		for _, k := range row {
			if k == r {
				return true
			}
		}
	}
	return false
}
