package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// Pad dimensions in cells.
const (
	padWidth         = 16
	padHeight        = 5
	compactPadWidth  = 8
	compactPadHeight = 3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229"))

	statsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 2).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	toastStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// padIndex returns the board position of a signal.
func padIndex(s simon.Signal) int {
	return int(s - simon.Red)
}

// padStyle returns the style of the pad at index i.
func padStyle(i int, lit, compact bool) lipgloss.Style {
	colors := core.PadPalette(i)
	bg := colors.Dim
	border := lipgloss.NormalBorder()
	if lit {
		bg = colors.Lit
		border = lipgloss.ThickBorder()
	}

	w, h := padWidth, padHeight
	if compact {
		w, h = compactPadWidth, compactPadHeight
	}

	return lipgloss.NewStyle().
		Width(w).
		Height(h).
		Align(lipgloss.Center, lipgloss.Center).
		Border(border).
		BorderForeground(lipgloss.Color(colors.Lit.ANSI())).
		Background(lipgloss.Color(bg.ANSI())).
		Foreground(lipgloss.Color(core.ColorBrightWhite.ANSI()))
}

// RenderBoard draws the 2x2 pad grid. A pad is lit when it is the one
// playback is flashing or the one the player just tapped.
func RenderBoard(active, pressed simon.Signal, compact bool) string {
	pads := make([]string, 0, simon.SignalCount)
	for _, s := range simon.Signals() {
		i := padIndex(s)
		lit := s == active || s == pressed
		label := fmt.Sprintf("%d", i+1)
		if !compact {
			label = fmt.Sprintf("%d\n%s", i+1, s)
		}
		pads = append(pads, padStyle(i, lit, compact).Render(label))
	}

	top := lipgloss.JoinHorizontal(lipgloss.Top, pads[0], " ", pads[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, pads[2], " ", pads[3])
	return lipgloss.JoinVertical(lipgloss.Center, top, bottom)
}

// Banner returns the phase text shown above the board.
// celebrating is true between a completed round and the next playback.
func Banner(st simon.State, celebrating bool) string {
	switch st.Status {
	case simon.StatusIdle:
		return "PRESS START"
	case simon.StatusPlayingBack:
		if celebrating {
			return "CORRECT!"
		}
		return "WATCH!"
	case simon.StatusAwaitingInput, simon.StatusValidating:
		return "REPEAT!"
	case simon.StatusGameOver:
		return "GAME OVER"
	default:
		return ""
	}
}

// RenderStats renders the round/record/speed line.
func RenderStats(st simon.State) string {
	line := fmt.Sprintf("Round %d   Record %d   Speed %dms", st.Round, st.Record, st.Speed.Milliseconds())
	if st.Status == simon.StatusAwaitingInput || st.Status == simon.StatusValidating {
		line += fmt.Sprintf("   Left %d", st.Remaining())
	}
	return statsStyle.Render(line)
}

// RenderHint renders the color name of the newest signal, or "".
func RenderHint(hint simon.Signal) string {
	if !hint.Valid() {
		return ""
	}
	colors := core.PadPalette(padIndex(hint))
	return lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colors.Lit.ANSI())).
		Render("Hint: " + hint.String())
}

// centerText centers text horizontally within the given width.
func centerText(text string, width int) string {
	if width <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
	}
	return strings.Join(lines, "\n")
}
