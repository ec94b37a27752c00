package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

const (
	// Terminals send no key-up events. A run key counts as held until
	// this long after its last press or auto-repeat.
	holdDuration = 250 * time.Millisecond

	// Longest simulated step, so a stalled terminal does not teleport
	// the player through platforms.
	maxStep = 0.1
)

func init() {
	registry.Register("terminal", func() registry.Frontend { return Frontend{} })
}

// Frontend runs the game inside the terminal.
type Frontend struct{}

func (Frontend) ID() string    { return "terminal" }
func (Frontend) Title() string { return "Terminal (Bubble Tea)" }

// Run starts the Bubble Tea program and blocks until the player quits.
func (Frontend) Run(s *platformer.Session) error {
	rt := s.Runtime()
	p := tea.NewProgram(
		NewModel(s, rt.ScreenW, rt.ScreenH),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

// Model is the Bubble Tea model driving one session.
type Model struct {
	session  *platformer.Session
	screen   *core.Screen
	painter  *Painter
	keys     KeyMap
	help     help.Model
	tickRate int

	input core.InputFrame           // edge actions collected since the last tick
	held  map[core.Action]time.Time // run keys and when they stop counting as held

	lastTick time.Time
	quitting bool
}

// NewModel creates a model for a terminal of width×height cells.
// The bottom row is reserved for the key help.
func NewModel(s *platformer.Session, width, height int) Model {
	screen := core.NewScreen(width, max(height-1, 1))
	h := help.New()
	h.ShowAll = false

	return Model{
		session:  s,
		screen:   screen,
		painter:  NewPainter(screen),
		keys:     DefaultKeyMap(),
		help:     h,
		tickRate: s.TickRate(),
		input:    core.NewInputFrame(),
		held:     make(map[core.Action]time.Time),
		lastTick: time.Now(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey records the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft, core.ActionRight:
		// Pressing one direction releases the other
		delete(m.held, core.ActionLeft)
		delete(m.held, core.ActionRight)
		m.held[action] = now.Add(holdDuration)
	default:
		m.input.Set(action)
	}
	return m, nil
}

// handleMouse forwards left clicks to the session in logical pixels.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.session.OnClick(m.painter.ToLogical(msg.X, msg.Y))
	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.screen.Resize(msg.Width, max(msg.Height-1, 1))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick advances the session by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := now.Sub(m.lastTick).Seconds()
	m.lastTick = now
	if dt < 0 {
		dt = 0
	}
	if dt > maxStep {
		dt = maxStep
	}

	frame := m.input.Clone()
	for action, until := range m.held {
		if now.After(until) {
			delete(m.held, action)
			continue
		}
		frame.Set(action)
	}

	m.session.Tick(dt, frame)
	m.input.Clear()

	if m.session.QuitRequested() {
		m.quitting = true
		return m, tea.Quit
	}
	return m, tickCmd(m.tickRate)
}

// View renders the current frame and the key help.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.session.Draw(m.painter)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}
