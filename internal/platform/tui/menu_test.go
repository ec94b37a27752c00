package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

func TestMenuPicksFrontend(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) == 0 {
		t.Fatal("picker should list the terminal frontend")
	}

	// Moving past either end is clamped
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	for range m.items {
		next, _ = next.Update(runeKey('j'))
	}
	next, cmd := next.Update(tea.KeyMsg{Type: tea.KeyEnter})

	got := next.(MenuModel).Selected()
	if got == nil || cmd == nil {
		t.Fatal("enter should select and quit")
	}
	last := registry.List()[len(m.items)-1]
	if got.ID != last.ID {
		t.Errorf("selected %q, want %q", got.ID, last.ID)
	}
}

func TestMenuQuit(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	next, cmd := m.Update(runeKey('q'))

	if cmd == nil || next.(MenuModel).Selected() != nil {
		t.Error("q should quit without a selection")
	}
	if next.View() != "" {
		t.Error("quitting picker should render nothing")
	}
}

func TestMenuResizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	cfg := next.(MenuModel).Config()
	if cfg.ScreenW != 100 || cfg.ScreenH != 30 || cfg.TickRate != 60 {
		t.Errorf("config = %+v", cfg)
	}
}

func TestMenuViewListsFrontends(t *testing.T) {
	m := NewMenuModel(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	out := m.View()
	for _, want := range []string{"K O D L A N D", "Terminal (Bubble Tea)", "Enter: Play"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestCenterTextIgnoresStyling(t *testing.T) {
	styled := pickerCursorStyle.Render("abcd")
	got := centerText(styled, 10)
	if !strings.HasPrefix(got, "   ") || strings.HasPrefix(got, "    ") {
		t.Errorf("centerText padded %q", got)
	}
}
