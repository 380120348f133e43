package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kvols/termsnake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestKeyMapActions(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"w", runeKey('w'), core.ActionUp},
		{"s", runeKey('s'), core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"d", runeKey('d'), core.ActionRight},
		{"k", runeKey('k'), core.ActionUp},
		{"j", runeKey('j'), core.ActionDown},
		{"h", runeKey('h'), core.ActionLeft},
		{"l", runeKey('l'), core.ActionRight},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound key", runeKey('x'), core.ActionOther},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionOther},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.Action(tc.msg); got != tc.want {
				t.Errorf("Action(%s) = %v, expected %v", tc.msg.String(), got, tc.want)
			}
		})
	}
}

func TestShortHelpCoversAllBindings(t *testing.T) {
	km := DefaultKeyMap()
	help := km.ShortHelp()

	if len(help) != 5 {
		t.Fatalf("ShortHelp should list 5 bindings, got %d", len(help))
	}
	for _, b := range help {
		h := b.Help()
		if h.Key == "" || h.Desc == "" {
			t.Errorf("Binding %v should have help text", b.Keys())
		}
	}
}
