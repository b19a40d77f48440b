package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skybird/internal/core"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) MenuModel {
	t.Helper()
	next, _ := m.Update(msg)
	mm, ok := next.(MenuModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return mm
}

func TestMenuCursorWraps(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if len(m.items) < 2 {
		t.Fatalf("expected both modes, got %+v", m.items)
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != len(m.items)-1 {
		t.Errorf("up from the top should wrap, cursor = %d", m.cursor)
	}
	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 0 {
		t.Errorf("down from the bottom should wrap, cursor = %d", m.cursor)
	}
}

func TestMenuViewAndSelect(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	out := m.View()
	for _, want := range []string{"S K Y B I R D", "Skybird (Classic)", modeBlurbs["skybird"]} {
		if !strings.Contains(out, want) {
			t.Errorf("menu view missing %q", want)
		}
	}

	m = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() == nil || m.Selected().GameID != "skybird" {
		t.Errorf("enter should select skybird, got %+v", m.Selected())
	}
	if m.IsQuitting() {
		t.Error("selecting is not quitting")
	}
}

func TestMenuWindowSizeUpdatesConfig(t *testing.T) {
	m := NewMenuModel(nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	m = menuUpdate(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if cfg := m.Config(); cfg.ScreenW != 120 || cfg.ScreenH != 40 {
		t.Errorf("config = %+v", cfg)
	}
}
