package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	pickerTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	pickerCursorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	pickerHintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// pickerKeys are the bindings of the frontend picker.
type pickerKeys struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

func defaultPickerKeys() pickerKeys {
	return pickerKeys{
		Up:     key.NewBinding(key.WithKeys("up", "k")),
		Down:   key.NewBinding(key.WithKeys("down", "j")),
		Select: key.NewBinding(key.WithKeys("enter", " ")),
		Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c")),
	}
}

// MenuModel is the Bubble Tea model for choosing where to play.
type MenuModel struct {
	items    []registry.FrontendInfo
	cursor   int
	width    int
	height   int
	config   core.RuntimeConfig
	keys     pickerKeys
	quitting bool
	selected *registry.FrontendInfo
}

// NewMenuModel lists every registered frontend.
func NewMenuModel(cfg core.RuntimeConfig) MenuModel {
	return MenuModel{
		items:  registry.List(),
		width:  cfg.ScreenW,
		height: cfg.ScreenH,
		config: cfg,
		keys:   defaultPickerKeys(),
	}
}

func (m MenuModel) Init() tea.Cmd {
	return nil
}

func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(pickerTitleStyle.Render("K O D L A N D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Where do you want to play?", m.width))
	b.WriteString("\n\n")

	for i, item := range m.items {
		line := fmt.Sprintf("  %s", item.Title)
		if i == m.cursor {
			line = pickerCursorStyle.Render(fmt.Sprintf("> %s", item.Title))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(pickerHintStyle.Render("Up/Down: Navigate  |  Enter: Play  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// Selected returns the chosen frontend, or nil if none was chosen.
func (m MenuModel) Selected() *registry.FrontendInfo {
	return m.selected
}

// Config returns the runtime config, updated by any resize.
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within width, measuring printable cells only.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the outcome of the picker.
type MenuResult struct {
	FrontendID string
	Config     core.RuntimeConfig
	Quit       bool
}

// RunMenu shows the picker and returns the choice.
func RunMenu(cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(NewMenuModel(cfg), tea.WithAltScreen())

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok || m.Selected() == nil {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return MenuResult{FrontendID: m.Selected().ID, Config: m.Config()}, nil
}
