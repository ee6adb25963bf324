package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-simon/internal/core"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
		quit     bool
	}{
		{"digit 1", runeKey("1"), core.ActionPadRed, false},
		{"digit 2", runeKey("2"), core.ActionPadGreen, false},
		{"digit 3", runeKey("3"), core.ActionPadBlue, false},
		{"digit 4", runeKey("4"), core.ActionPadYellow, false},
		{"letter r", runeKey("r"), core.ActionPadRed, false},
		{"letter g", runeKey("g"), core.ActionPadGreen, false},
		{"letter b", runeKey("b"), core.ActionPadBlue, false},
		{"letter y", runeKey("y"), core.ActionPadYellow, false},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionStart, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, core.ActionStart, false},
		{"s", runeKey("s"), core.ActionStop, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionStop, false},
		{"help", runeKey("?"), core.ActionHelp, false},
		{"q", runeKey("q"), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey("x"), core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			assert.Equal(t, tc.expected, action)
			assert.Equal(t, tc.quit, quit)
		})
	}
}

func TestKeyMapHelp(t *testing.T) {
	keys := DefaultKeyMap()

	assert.Len(t, keys.ShortHelp(), 4)
	full := keys.FullHelp()
	assert.Len(t, full, 3)
	assert.Len(t, full[0], 4, "first column lists the pads")
}

func TestPadBindingsFollowBoardOrder(t *testing.T) {
	km := NewKeyMapper()
	pads := km.Keys().Pads()
	assert.Len(t, pads, core.PadCount)

	for i, b := range pads {
		action, quit := km.MapKey(runeKey(b.Keys()[0]))
		assert.False(t, quit)
		assert.Equal(t, core.PadAction(i), action)
		idx, ok := action.Pad()
		assert.True(t, ok)
		assert.Equal(t, i, idx)
	}
}
