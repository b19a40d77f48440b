package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skybird/internal/storage"
)

func boardUpdate(t *testing.T, m ScoreboardModel, msg tea.Msg) ScoreboardModel {
	t.Helper()
	next, _ := m.Update(msg)
	b, ok := next.(ScoreboardModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return b
}

func TestScoreboardShowsRunsAndRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, r := range []storage.RunRecord{
		{Mode: "skybird", Score: 7, CoinScore: 3, Frames: 3600, Seed: 42},
		{Mode: "skybird", Score: 12, CoinScore: 5, Frames: 5400, Seed: 43},
		{Mode: "skybird_classic", Score: 2, Frames: 900, Seed: 44},
	} {
		if _, err := store.SaveRun(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 120, 40)
	if m.modes[m.current].ID != "skybird" {
		t.Fatalf("first mode = %q", m.modes[m.current].ID)
	}
	if len(m.runs) != 2 || m.runs[0].Score != 12 {
		t.Fatalf("runs = %+v", m.runs)
	}

	out := m.View()
	for _, want := range []string{"HIGH SCORES", "Records", "Best      12", "Runs      2", "1:30"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.modes[m.current].ID != "skybird_classic" || len(m.runs) != 1 {
		t.Errorf("tab should show classic runs, got %s with %d runs", m.modes[m.current].ID, len(m.runs))
	}

	// Wraps back around
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if m.current != 0 {
		t.Errorf("current = %d, want 0", m.current)
	}
	m = boardUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.current != len(m.modes)-1 {
		t.Errorf("left from the first mode should wrap, current = %d", m.current)
	}
}

func TestScoreboardNarrowDropsSeed(t *testing.T) {
	m := NewScoreboardModel(nil, 40, 20)
	if m.withSeed {
		t.Error("narrow table should drop the seed column")
	}
	if !strings.Contains(m.View(), "nothing yet") {
		t.Error("empty records panel should say so")
	}

	m = boardUpdate(t, m, tea.WindowSizeMsg{Width: 140, Height: 40})
	if !m.withSeed {
		t.Error("wide table should show the seed column")
	}
}

func TestScoreboardBackAndQuit(t *testing.T) {
	m := boardUpdate(t, NewScoreboardModel(nil, 80, 24), runeKey("b"))
	if !m.IsGoingBack() || m.IsQuitting() {
		t.Error("b should go back")
	}

	m = boardUpdate(t, NewScoreboardModel(nil, 80, 24), runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("closed scoreboard should render nothing")
	}
}

func TestFormatFrames(t *testing.T) {
	tests := map[int]string{0: "0:00", 59: "0:00", 60: "0:01", 3600: "1:00", 5430: "1:30"}
	for frames, want := range tests {
		if got := formatFrames(frames); got != want {
			t.Errorf("formatFrames(%d) = %q, want %q", frames, got, want)
		}
	}
}
