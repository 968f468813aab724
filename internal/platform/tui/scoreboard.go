package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

// Board layout constants
const (
	minWidthForSideBySide = 100 // stats and history next to each other
	boardChrome           = 10  // title, help and margins around a table
	minTableRows          = 3
)

// BoardKeyMap defines the key bindings of the table screens.
type BoardKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Switch key.Binding
	Back   key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k BoardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Switch, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k BoardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Switch},
		{k.Back, k.Quit},
	}
}

// DefaultBoardKeyMap returns default key bindings.
func DefaultBoardKeyMap() BoardKeyMap {
	return BoardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		Switch: key.NewBinding(
			key.WithKeys("tab", "shift+tab"),
			key.WithHelp("tab", "switch table"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Board renders the achievements, statistics and score history tables.
type Board struct {
	keys         BoardKeyMap
	help         help.Model
	achievements table.Model
	stats        table.Model
	recent       table.Model
	focusRecent  bool // the history table receives scroll keys
	hasRecent    bool
	width        int
	height       int
}

// NewBoard creates the tables for a terminal of the given size.
func NewBoard(width, height int) *Board {
	h := help.New()
	h.ShowAll = false
	h.Width = width

	b := &Board{
		keys:   DefaultBoardKeyMap(),
		help:   h,
		width:  width,
		height: height,
	}
	b.achievements = b.newTable([]table.Column{
		{Title: "", Width: 3},
		{Title: "Achievement", Width: 16},
		{Title: "Goal", Width: 40},
		{Title: "Status", Width: 10},
	})
	b.stats = b.newTable([]table.Column{
		{Title: "Statistic", Width: 16},
		{Title: "Value", Width: 12},
	})
	b.recent = b.newTable([]table.Column{
		{Title: "Mode", Width: 16},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
		{Title: "Combo", Width: 6},
		{Title: "Date", Width: 13},
	})
	b.recent.Blur()
	return b
}

// newTable creates a table with the shared styles.
func (b *Board) newTable(columns []table.Column) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(b.tableHeight()),
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

	return t
}

func (b *Board) tableHeight() int {
	return max(b.height-boardChrome, minTableRows)
}

// Resize adapts the tables to a new terminal size.
func (b *Board) Resize(width, height int) {
	b.width = width
	b.height = height
	b.help.Width = width
	for _, t := range []*table.Model{&b.achievements, &b.stats, &b.recent} {
		t.SetHeight(b.tableHeight())
	}
}

// LoadAchievements fills the achievements table from a profile.
func (b *Board) LoadAchievements(p *shadowpaws.Profile) {
	rows := make([]table.Row, len(shadowpaws.Achievements))
	for i, a := range shadowpaws.Achievements {
		status := "Locked"
		if p.Achievements.Has(a.Key) {
			status = "Unlocked"
		}
		rows[i] = table.Row{a.Icon, a.Name, a.Description, status}
	}
	b.achievements.SetRows(rows)
	b.achievements.GotoTop()
}

// LoadStats fills the statistics table and the score history.
func (b *Board) LoadStats(lines []shadowpaws.StatLine, recent []storage.ScoreEntry) {
	rows := make([]table.Row, len(lines))
	for i, l := range lines {
		rows[i] = table.Row{l.Label, l.Value}
	}
	b.stats.SetRows(rows)
	b.stats.GotoTop()

	history := make([]table.Row, len(recent))
	for i, e := range recent {
		mode := e.Mode
		if info, ok := registry.Info(e.Mode); ok {
			mode = info.Title
		}
		history[i] = table.Row{
			mode,
			fmt.Sprintf("%d", e.Score),
			fmt.Sprintf("%d", e.Level),
			fmt.Sprintf("%d", e.MaxCombo),
			e.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	b.recent.SetRows(history)
	b.recent.GotoTop()
	b.hasRecent = len(recent) > 0
	b.focus(false)
}

func (b *Board) focus(recent bool) {
	b.focusRecent = recent && b.hasRecent
	if b.focusRecent {
		b.stats.Blur()
		b.recent.Focus()
	} else {
		b.recent.Blur()
		b.stats.Focus()
	}
}

// Update scrolls the achievements table, or the focused stats table
// when stats is set.
func (b *Board) Update(msg tea.KeyMsg, stats bool) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case !stats:
		b.achievements, cmd = b.achievements.Update(msg)
	case key.Matches(msg, b.keys.Switch):
		b.focus(!b.focusRecent)
	case b.focusRecent:
		b.recent, cmd = b.recent.Update(msg)
	default:
		b.stats, cmd = b.stats.Update(msg)
	}
	return cmd
}

func (b *Board) frame(content string) string {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1).
		Render(content)
}

// AchievementsView renders the achievements table.
func (b *Board) AchievementsView() string {
	return b.frame(b.achievements.View())
}

// StatsView renders the statistics and, when present, the score history.
// Wide terminals show both tables side by side.
func (b *Board) StatsView() string {
	stats := b.frame(b.stats.View())
	if !b.hasRecent {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Render("No games recorded yet.")
		return lipgloss.JoinVertical(lipgloss.Center, stats, "", empty)
	}

	recent := b.frame(b.recent.View())
	if b.width >= minWidthForSideBySide {
		return lipgloss.JoinHorizontal(lipgloss.Top, stats, "  ", recent)
	}
	return lipgloss.JoinVertical(lipgloss.Center, stats, recent)
}

// HelpView renders the key help line.
func (b *Board) HelpView() string {
	return b.help.View(b.keys)
}
