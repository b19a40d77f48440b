package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skybird/internal/registry"
	"github.com/vovakirdan/skybird/internal/storage"
)

const (
	recordsPanelWidth = 26  // Width of the records panel beside the table
	minWidthForPanel  = 80  // Below this the panel goes under the table
	maxScores         = 100 // Runs loaded per mode
	framesPerSecond   = 60  // Frame counts are stored at the default tick rate
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NextMode key.Binding
	PrevMode key.Binding
	Back     key.Binding
	Quit     key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextMode, k.PrevMode, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.NextMode, k.PrevMode}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		NextMode: key.NewBinding(key.WithKeys("tab", "right", "l"), key.WithHelp("tab/→", "next mode")),
		PrevMode: key.NewBinding(key.WithKeys("shift+tab", "left", "h"), key.WithHelp("S-tab/←", "prev mode")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the best runs of one mode at a time,
// with that mode's lifetime records beside them.
type ScoreboardModel struct {
	modes     []registry.GameInfo
	current   int
	store     *storage.Store
	runs      []storage.RunRecord
	stats     *storage.GameStats
	table     table.Model
	withSeed  bool // Whether the table has room for the seed column
	help      help.Model
	keys      ScoreboardKeyMap
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard opened on the first registered mode.
// A nil store shows every mode as empty.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		modes:  registry.List(),
		store:  store,
		help:   help.New(),
		keys:   DefaultScoreboardKeyMap(),
		width:  width,
		height: height,
	}
	m.help.Width = width
	m.table, m.withSeed = m.newTable()
	m.load()
	return m
}

func (m ScoreboardModel) wide() bool {
	return m.width >= minWidthForPanel
}

// newTable sizes the run table to the space left by the panel and
// reports whether the seed column fits.
func (m ScoreboardModel) newTable() (table.Model, bool) {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Score", Width: 6},
		{Title: "Coins", Width: 6},
		{Title: "Time", Width: 6},
		{Title: "Seed", Width: 8},
		{Title: "Date", Width: 12},
	}

	avail := m.width - 6
	if m.wide() {
		avail -= recordsPanelWidth + 4
	}
	withSeed := avail >= 4+6+6+6+8+12+12
	if !withSeed {
		columns = append(columns[:4], columns[5])
	}

	rows := max(m.height-10, 3)
	if !m.wide() {
		rows = max(rows-6, 3)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(rows),
	)
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t, withSeed
}

// load reads the current mode's runs and records and refills the table.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.modes) > 0 {
		mode := m.modes[m.current].ID
		if runs, err := m.store.TopScores(mode, maxScores); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(mode); err == nil && stats.RunsCount > 0 {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		row := table.Row{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.CoinScore),
			formatFrames(r.Frames),
		}
		if m.withSeed {
			row = append(row, fmt.Sprintf("%d", r.Seed))
		}
		rows[i] = append(row, r.CreatedAt.Format("Jan 02 15:04"))
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// cycle moves to the next (+1) or previous (-1) mode, wrapping around.
func (m *ScoreboardModel) cycle(dir int) {
	if len(m.modes) == 0 {
		return
	}
	m.current = (m.current + dir + len(m.modes)) % len(m.modes)
	m.load()
}

// formatFrames renders a frame count as m:ss of play.
func formatFrames(frames int) string {
	secs := frames / framesPerSecond
	return fmt.Sprintf("%d:%02d", secs/60, secs%60)
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextMode):
			m.cycle(1)
			return m, nil
		case key.Matches(msg, m.keys.PrevMode):
			m.cycle(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.table, m.withSeed = m.newTable()
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	var b strings.Builder
	b.WriteString(boardTitleStyle.Render(centerText("HIGH SCORES", m.width)))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.renderTabs(), m.width))
	b.WriteString("\n\n")

	runs := boardFrameStyle.Render(m.renderRuns())
	records := boardFrameStyle.Width(recordsPanelWidth).Render(m.renderRecords())
	if m.wide() {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, runs, "  ", records))
	} else {
		b.WriteString(lipgloss.JoinVertical(lipgloss.Left, runs, records))
	}

	b.WriteString("\n")
	b.WriteString(boardMutedStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// renderTabs draws one tab per mode, or just the current one when they
// do not fit.
func (m ScoreboardModel) renderTabs() string {
	if len(m.modes) == 0 {
		return boardMutedStyle.Render("no modes registered")
	}
	tabs := make([]string, len(m.modes))
	for i, g := range m.modes {
		if i == m.current {
			tabs[i] = boardActiveTab.Render(g.Title)
		} else {
			tabs[i] = boardTabStyle.Render(g.Title)
		}
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if lipgloss.Width(line) > m.width-4 {
		line = boardActiveTab.Render("< " + m.modes[m.current].Title + " >")
	}
	return line
}

func (m ScoreboardModel) renderRuns() string {
	if len(m.runs) == 0 {
		return boardMutedStyle.Italic(true).Padding(2, 4).
			Render("No runs recorded yet.\nFly a run to set a high score!")
	}
	return m.table.View()
}

// renderRecords lists the current mode's lifetime totals.
func (m ScoreboardModel) renderRecords() string {
	if m.stats == nil {
		return boardMutedStyle.Render("Records\n\nnothing yet")
	}
	st := m.stats
	lines := []string{
		boardTitleStyle.Render("Records"),
		"",
		fmt.Sprintf("Best      %d", st.HighScore),
		fmt.Sprintf("Runs      %d", st.RunsCount),
		fmt.Sprintf("Average   %.1f", st.AvgScore),
		fmt.Sprintf("Coins     %d", st.TotalCoins),
		fmt.Sprintf("Flown     %s", formatFrames(int(st.TotalFrames))),
	}
	if !st.LastPlayed.IsZero() {
		lines = append(lines, fmt.Sprintf("Last      %s", st.LastPlayed.Format("Jan 02 15:04")))
	}
	return strings.Join(lines, "\n")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard as its own program.
// It reports whether the player asked to go back to the menu.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	final, err := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen()).Run()
	if err != nil {
		return false, err
	}
	if m, ok := final.(ScoreboardModel); ok {
		return m.IsGoingBack(), nil
	}
	return false, nil
}
