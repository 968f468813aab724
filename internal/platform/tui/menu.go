package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shadow-paws/internal/core"
	"github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

// menuState holds the cursor positions of the menu screens.
type menuState struct {
	cursor  int // selected row of the active list
	page    int // tutorial page
	confirm int // stats reset confirmations given so far
}

type mainItem struct {
	label  string
	intent core.Intent
	quit   bool
}

var mainItems = []mainItem{
	{label: "Play", intent: core.IntentOpenPlay},
	{label: "How to Play", intent: core.IntentOpenTutorial},
	{label: "Achievements", intent: core.IntentOpenAchievements},
	{label: "Statistics", intent: core.IntentOpenStats},
	{label: "Settings", intent: core.IntentOpenSettings},
	{label: "Quit", quit: true},
}

// resetConfirmations is how many times the reset key must be confirmed.
const resetConfirmations = 2

// styles are the menu styles of one renderer.
type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	item     lipgloss.Style
	selected lipgloss.Style
	dim      lipgloss.Style
	hud      lipgloss.Style
	status   lipgloss.Style
	toast    lipgloss.Style
	warn     lipgloss.Style
	panel    lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) styles {
	return styles{
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#9333ea")),
		subtitle: r.NewStyle().Foreground(lipgloss.Color("#ff69b4")),
		item:     r.NewStyle().Foreground(lipgloss.Color("252")),
		selected: r.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		dim:      r.NewStyle().Foreground(lipgloss.Color("241")),
		hud:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffd700")),
		status:   r.NewStyle().Foreground(lipgloss.Color("#5fd3d3")),
		toast:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff69b4")),
		warn:     r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6b6b")),
		panel: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#9333ea")).
			Padding(1, 3),
	}
}

// playModes returns the modes offered by the play menu.
func playModes() []registry.ModeInfo {
	var out []registry.ModeInfo
	for _, info := range registry.List() {
		if !info.Hidden {
			out = append(out, info)
		}
	}
	return out
}

// open applies a navigation intent and prepares the new screen.
func (m *Model) open(intent core.Intent) {
	if _, ok := m.nav.Apply(intent); !ok {
		return
	}
	m.menu = menuState{}

	switch m.nav.Current() {
	case core.ScreenAchievements:
		m.reloadProfile()
		m.board.LoadAchievements(m.profile)
	case core.ScreenStats:
		m.reloadProfile()
		m.board.LoadStats(m.profile.Stats(), m.recentScores())
	case core.ScreenMain, core.ScreenSettings:
		m.reloadProfile()
	}
}

// handleMenuKey processes keyboard input on the menu screens.
func (m Model) handleMenuKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKeyToMenuAction(msg)
	if action == MenuActionQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch m.nav.Current() {
	case core.ScreenMain:
		return m.updateMain(action)
	case core.ScreenPlay:
		return m.updatePlay(action)
	case core.ScreenTutorial:
		return m.updateTutorial(action)
	case core.ScreenAchievements:
		return m.updateBoard(msg, action)
	case core.ScreenStats:
		return m.updateStats(msg, action)
	case core.ScreenSettings:
		return m.updateSettings(action)
	case core.ScreenGameOver:
		return m.updateGameOver(msg, action)
	}
	return m, nil
}

// moveCursor moves the list cursor within n rows.
func (m *Model) moveCursor(action MenuAction, n int) {
	switch action {
	case MenuActionUp:
		if m.menu.cursor > 0 {
			m.menu.cursor--
		}
	case MenuActionDown:
		if m.menu.cursor < n-1 {
			m.menu.cursor++
		}
	}
}

func (m Model) updateMain(action MenuAction) (tea.Model, tea.Cmd) {
	m.moveCursor(action, len(mainItems))
	if action != MenuActionSelect {
		return m, nil
	}
	item := mainItems[m.menu.cursor]
	if item.quit {
		m.quitting = true
		return m, tea.Quit
	}
	m.open(item.intent)
	return m, nil
}

func (m Model) updatePlay(action MenuAction) (tea.Model, tea.Cmd) {
	modes := playModes()
	m.moveCursor(action, len(modes))
	switch action {
	case MenuActionBack:
		m.open(core.IntentBack)
	case MenuActionSelect:
		if len(modes) > 0 {
			cmd := m.startSession(modes[m.menu.cursor].ID)
			return m, cmd
		}
	}
	return m, nil
}

func (m Model) updateTutorial(action MenuAction) (tea.Model, tea.Cmd) {
	pages := tutorialPages()
	switch action {
	case MenuActionLeft, MenuActionUp:
		if m.menu.page > 0 {
			m.menu.page--
		}
	case MenuActionRight, MenuActionDown:
		if m.menu.page < len(pages)-1 {
			m.menu.page++
		}
	case MenuActionBack:
		m.open(core.IntentBack)
	case MenuActionSelect:
		cmd := m.startSession(shadowpaws.ModeTutorial.Spec().ID)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg, action MenuAction) (tea.Model, tea.Cmd) {
	if action == MenuActionBack {
		m.open(core.IntentBack)
		return m, nil
	}
	cmd := m.board.Update(msg, m.nav.Current() == core.ScreenStats)
	return m, cmd
}

// updateStats handles the stats screen. Resetting needs the reset key
// pressed once more for each confirmation; any other key cancels.
func (m Model) updateStats(msg tea.KeyMsg, action MenuAction) (tea.Model, tea.Cmd) {
	if strings.EqualFold(msg.String(), "r") {
		if m.menu.confirm < resetConfirmations {
			m.menu.confirm++
			return m, nil
		}
		m.resetStats()
		m.menu.confirm = 0
		m.board.LoadStats(m.profile.Stats(), m.recentScores())
		return m, nil
	}
	m.menu.confirm = 0
	return m.updateBoard(msg, action)
}

func (m Model) updateSettings(action MenuAction) (tea.Model, tea.Cmd) {
	const rows = 2 // sound, back
	m.moveCursor(action, rows)
	switch action {
	case MenuActionBack:
		m.open(core.IntentBack)
	case MenuActionLeft, MenuActionRight:
		if m.menu.cursor == 0 {
			m.setAudio(!m.profile.Audio)
		}
	case MenuActionSelect:
		if m.menu.cursor == 0 {
			m.setAudio(!m.profile.Audio)
		} else {
			m.open(core.IntentBack)
		}
	}
	return m, nil
}

func (m Model) updateGameOver(msg tea.KeyMsg, action MenuAction) (tea.Model, tea.Cmd) {
	const rows = 2 // play again, main menu
	m.moveCursor(action, rows)

	again := strings.EqualFold(msg.String(), "r") || (action == MenuActionSelect && m.menu.cursor == 0)
	switch {
	case again:
		if m.game == nil {
			return m, nil
		}
		m.nav.Apply(core.IntentPlayAgain)
		m.beginSession()
		cmd := m.ensureTicking()
		return m, cmd
	case action == MenuActionBack, action == MenuActionSelect:
		m.leaveSession()
	}
	return m, nil
}

// screenView composes a centered screen from a title, a body and a help line.
func (m Model) screenView(title, body, help string) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.title.Render(title),
		"",
		body,
		"",
		m.styles.dim.Render(help),
	)
	return m.renderer.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// list renders selectable rows with the cursor highlighted.
func (m Model) list(labels []string) string {
	rows := make([]string, len(labels))
	for i, l := range labels {
		if i == m.menu.cursor {
			rows[i] = m.styles.selected.Render("> " + l + " ")
		} else {
			rows[i] = m.styles.item.Render("  " + l + " ")
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) mainView() string {
	labels := make([]string, len(mainItems))
	for i, it := range mainItems {
		labels[i] = it.label
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.subtitle.Render(fmt.Sprintf("High Score: %d", m.profile.HighScore)),
		"",
		m.list(labels),
	)
	return m.screenView("🐾  S H A D O W   P A W S  🐾", body,
		"Up/Down: Navigate  |  Enter: Select  |  Q: Quit")
}

func (m Model) playView() string {
	modes := playModes()
	labels := make([]string, len(modes))
	for i, info := range modes {
		labels[i] = info.Title
	}

	detail := ""
	if len(modes) > 0 {
		info := modes[min(m.menu.cursor, len(modes)-1)]
		detail = info.Description
		switch info.ID {
		case shadowpaws.ModeStory.Spec().ID:
			detail += "\nFirst chapter: " + shadowpaws.ChapterAt(0).Theme
		case shadowpaws.ModeChallenge.Spec().ID:
			c := shadowpaws.ChallengeFor(m.env.Now())
			detail += fmt.Sprintf("\nToday: %s - %s (+%d)", c.Name, c.Description, c.Reward)
		}
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.list(labels),
		"",
		m.styles.status.Render(detail),
	)
	return m.screenView("Choose a Mode", body, "Up/Down: Navigate  |  Enter: Play  |  Esc: Back")
}

func (m Model) tutorialView() string {
	pages := tutorialPages()
	page := pages[core.Clamp(m.menu.page, 0, len(pages)-1)]

	body := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.subtitle.Render(page.title),
		"",
		strings.Join(page.lines, "\n"),
	)
	counter := fmt.Sprintf("Page %d/%d", m.menu.page+1, len(pages))
	return m.screenView("How to Play",
		lipgloss.JoinVertical(lipgloss.Center, m.styles.panel.Render(body), m.styles.dim.Render(counter)),
		"Left/Right: Page  |  Enter: Practice  |  Esc: Back")
}

func (m Model) settingsView() string {
	sound := "Off"
	if m.profile.Audio {
		sound = "On"
	}
	body := m.list([]string{"Sound: " + sound, "Back"})
	return m.screenView("Settings", body, "Enter/Left/Right: Toggle  |  Esc: Back")
}

func (m Model) achievementsView() string {
	title := fmt.Sprintf("Achievements  %d/%d", m.profile.Achievements.Len(), len(shadowpaws.Achievements))
	return m.screenView(title, m.board.AchievementsView(), m.board.HelpView())
}

func (m Model) statsView() string {
	body := m.board.StatsView()
	switch m.menu.confirm {
	case 1:
		body = lipgloss.JoinVertical(lipgloss.Center, body, "",
			m.styles.warn.Render("Reset all statistics and achievements? Press R again to confirm."))
	case 2:
		body = lipgloss.JoinVertical(lipgloss.Center, body, "",
			m.styles.warn.Render("This cannot be undone. Press R once more to reset."))
	}
	title := "Statistics  ·  " + profileLabel(m.opts.Profile)
	return m.screenView(title, body, m.board.HelpView()+"  |  R: Reset")
}

func (m Model) gameOverView() string {
	s := m.summary
	mode := s.Mode
	if info, ok := registry.Info(s.Mode); ok {
		mode = info.Title
	}

	lines := []string{
		fmt.Sprintf("%-12s %s", "Mode", mode),
		fmt.Sprintf("%-12s %d", "Score", s.Score),
		fmt.Sprintf("%-12s %d", "Level", s.Level),
		fmt.Sprintf("%-12s %d", "Best Combo", s.MaxCombo),
		fmt.Sprintf("%-12s %s", "Survived", shadowpaws.FormatDuration(s.Seconds)),
		fmt.Sprintf("%-12s %d", "High Score", s.HighScore),
	}
	parts := []string{strings.Join(lines, "\n")}
	if s.NewHighScore {
		parts = append([]string{m.styles.toast.Render("New High Score!"), ""}, parts...)
	}
	if len(s.Unlocked) > 0 {
		parts = append(parts, "", m.styles.subtitle.Render("Unlocked"), strings.Join(s.Unlocked, "\n"))
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		m.styles.panel.Render(lipgloss.JoinVertical(lipgloss.Left, parts...)),
		"",
		m.list([]string{"Play Again", "Main Menu"}),
	)
	return m.screenView("GAME OVER", body, "Enter: Select  |  R: Play Again  |  Esc: Menu")
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}

// profileLabel names the profile for the stats screen.
func profileLabel(name string) string {
	if name == "" || name == storage.DefaultProfile {
		return "local profile"
	}
	return "profile " + name
}
