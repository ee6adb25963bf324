package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-simon/internal/config"
	"github.com/vovakirdan/tui-simon/internal/core"
	"github.com/vovakirdan/tui-simon/internal/simon"
)

// eventBuffer is the observer buffer size. Playback of a long round emits
// several events per signal, so this leaves plenty of slack.
const eventBuffer = 256

// Model is the Bubble Tea model for playing Simon.
// The engine owns the game; the model only renders what it observes and
// forwards taps, start and stop.
type Model struct {
	engine   *simon.Engine
	events   *simon.ChannelObserver
	recorder simon.ResultRecorder
	cfg      config.SimonConfig
	config   core.RuntimeConfig
	logger   *log.Logger

	keyMapper *KeyMapper
	help      help.Model

	state       simon.State
	celebrating bool // Between a completed round and the next playback
	pressed     simon.Signal
	pressSeq    int
	toast       string
	quitting    bool
}

// NewModel creates a model bound to engine. recorder may be nil.
func NewModel(engine *simon.Engine, recorder simon.ResultRecorder, cfg config.SimonConfig, rc core.RuntimeConfig, logger *log.Logger) Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	obs := simon.NewChannelObserver(eventBuffer)
	engine.Observe(obs.Observe)

	h := help.New()
	h.ShowAll = false
	h.Width = rc.ScreenW

	return Model{
		engine:    engine,
		events:    obs,
		recorder:  recorder,
		cfg:       cfg,
		config:    rc,
		logger:    logger,
		keyMapper: NewKeyMapper(),
		help:      h,
		state:     engine.State(),
	}
}

// Init starts listening for engine events.
func (m Model) Init() tea.Cmd {
	return waitForEvent(m.events)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case EngineEventMsg:
		m.handleEvent(msg.Event)
		return m, waitForEvent(m.events)

	case PressReleasedMsg:
		if msg.Seq == m.pressSeq {
			m.pressed = simon.None
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.Close()
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll

	case core.ActionStart:
		if m.engine.Start() {
			m.toast = ""
		}

	case core.ActionStop:
		m.engine.Stop()

	case core.ActionPadRed, core.ActionPadGreen, core.ActionPadBlue, core.ActionPadYellow:
		i, _ := action.Pad()
		sig := simon.Signals()[i]
		if !m.engine.Submit(sig) {
			return m, nil
		}
		m.pressed = sig
		m.pressSeq++
		return m, releaseCmd(m.cfg.PressFlash(), m.pressSeq)
	}

	return m, nil
}

// handleEvent folds one engine event into the view state.
func (m *Model) handleEvent(evt simon.Event) {
	switch evt := evt.(type) {
	case simon.StateChangedEvent:
		m.state = evt.State

	case simon.RoundCompletedEvent:
		m.celebrating = true

	case simon.RoundAdvancedEvent:
		m.celebrating = false

	case simon.GameOverEvent:
		m.celebrating = false
		m.toast = fmt.Sprintf("Game over. Record: %d", evt.Record)
		if m.recorder != nil {
			if err := m.recorder.RecordResult(simon.ResultFromEvent(evt)); err != nil {
				m.logger.Warn("could not save game", "game", evt.GameID, "error", err)
			}
		}
	}
}

// Close stops the engine and detaches the model from it.
func (m Model) Close() {
	m.engine.Stop()
	m.events.Close()
}

// State returns the last state the model observed.
func (m Model) State() simon.State {
	return m.state
}

// Toast returns the current notification text.
func (m Model) Toast() string {
	return m.toast
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	compact := m.config.Compact()
	active := m.state.Active

	var b strings.Builder
	b.WriteString(titleStyle.Render("S I M O N"))
	b.WriteString("\n")
	b.WriteString(RenderStats(m.state))
	b.WriteString("\n\n")
	b.WriteString(bannerStyle.Render(Banner(m.state, m.celebrating)))
	b.WriteString("\n\n")
	b.WriteString(RenderBoard(active, m.pressed, compact))
	b.WriteString("\n\n")

	if hint := RenderHint(m.state.Hint); hint != "" {
		b.WriteString(hint)
	}
	b.WriteString("\n")
	if m.toast != "" {
		b.WriteString(toastStyle.Render(m.toast))
	}
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keyMapper.Keys())))

	return centerText(b.String(), m.config.ScreenW)
}

// Run starts the Bubble Tea program for a local game.
func Run(engine *simon.Engine, recorder simon.ResultRecorder, cfg config.SimonConfig, rc core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(engine, recorder, cfg, rc, logger)
	defer model.Close()

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
