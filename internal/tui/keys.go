package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	Start   key.Binding
	Quit    key.Binding
	Results key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Results: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "results")),
	}
}

// menu renders the title screen bindings; results only once a race finished.
func (k keyMap) menu(hasResults bool) string {
	bindings := []key.Binding{k.Start, k.Quit}
	if hasResults {
		bindings = append(bindings, k.Results)
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, fmt.Sprintf("(%s) %s", h.Key, h.Desc))
	}
	return strings.Join(parts, " | ")
}
