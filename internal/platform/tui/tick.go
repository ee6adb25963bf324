// Package tui provides the Bubble Tea integration for the Simon game.
// It handles the terminal UI loop, input mapping, and engine orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-simon/internal/simon"
)

// EngineEventMsg carries one engine event into the Bubble Tea loop.
type EngineEventMsg struct {
	Event simon.Event
}

// PressReleasedMsg ends the flash of a tapped pad.
// Seq identifies the press so a newer tap is not cut short.
type PressReleasedMsg struct {
	Seq int
}

// waitForEvent returns a command that blocks until the engine publishes.
// It yields nil once the observer is closed.
func waitForEvent(obs *simon.ChannelObserver) tea.Cmd {
	return func() tea.Msg {
		select {
		case evt := <-obs.Events():
			return EngineEventMsg{Event: evt}
		case <-obs.Done():
			return nil
		}
	}
}

// releaseCmd returns a command that releases press seq after d.
func releaseCmd(d time.Duration, seq int) tea.Cmd {
	if d <= 0 {
		return func() tea.Msg { return PressReleasedMsg{Seq: seq} }
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return PressReleasedMsg{Seq: seq}
	})
}
