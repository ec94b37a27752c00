package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/platformer"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := platformer.NewSession(config.Default(), core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, nil, nil)
	return NewModel(s, 80, 25)
}

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
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"a", runeKey('a'), core.ActionLeft},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"d", runeKey('d'), core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionJump},
		{"up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionJump},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"m", runeKey('m'), core.ActionToggleMusic},
		{"e", runeKey('e'), core.ActionToggleEffects},
		{"q", runeKey('q'), core.ActionQuit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestEnterStartsGame(t *testing.T) {
	m := newTestModel(t)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	next, _ = next.Update(TickMsg(time.Now()))

	if got := next.(Model).session.State(); got != platformer.StatePlaying {
		t.Errorf("expected playing, got %v", got)
	}
}

func TestHeldRunKeyExpires(t *testing.T) {
	m := newTestModel(t)
	m.session.Start()
	now := time.Now()

	next, _ := m.handleKey(tea.KeyMsg{Type: tea.KeyRight}, now)
	m = next.(Model)
	if _, ok := m.held[core.ActionRight]; !ok {
		t.Fatal("right should be held")
	}

	// Opposite direction replaces the held one
	next, _ = m.handleKey(tea.KeyMsg{Type: tea.KeyLeft}, now)
	m = next.(Model)
	if _, ok := m.held[core.ActionRight]; ok {
		t.Error("right should be released by left")
	}

	x := m.session.Player().Pos.X
	next, _ = m.handleTick(now.Add(holdDuration / 2))
	m = next.(Model)
	if m.session.Player().Pos.X >= x {
		t.Errorf("player should move left while held: %v -> %v", x, m.session.Player().Pos.X)
	}

	next, _ = m.handleTick(now.Add(2 * holdDuration))
	m = next.(Model)
	if len(m.held) != 0 {
		t.Errorf("held keys should expire, got %v", m.held)
	}
}

func TestQuitKey(t *testing.T) {
	m := newTestModel(t)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if !next.(Model).quitting {
		t.Error("model should be quitting")
	}
	if next.(Model).View() != "" {
		t.Error("quitting model should render nothing")
	}
}

func TestMouseClickHitsMenuButton(t *testing.T) {
	m := newTestModel(t)
	x, y := m.painter.ToCell(platformer.ButtonQuit.Center())

	next, cmd := m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

	if !m.session.QuitRequested() {
		t.Fatal("click on Quit should request quit")
	}
	if cmd == nil || !next.(Model).quitting {
		t.Error("model should quit after the Quit button")
	}
}

func TestMouseReleaseIgnored(t *testing.T) {
	m := newTestModel(t)
	x, y := m.painter.ToCell(platformer.ButtonStart.Center())

	m.Update(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})

	if m.session.State() != platformer.StateMenu {
		t.Error("release should not press buttons")
	}
}

func TestViewShowsMenuAndHelp(t *testing.T) {
	m := newTestModel(t)
	out := m.View()

	for _, want := range []string{"Kodland", "Start Game", "Quit", "jump"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestResizeKeepsHelpRow(t *testing.T) {
	m := newTestModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
}

func TestTerminalRegistered(t *testing.T) {
	if !registry.Exists("terminal") {
		t.Error("terminal frontend not registered")
	}
}
