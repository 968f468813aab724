package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/shadow-paws/internal/core"
	"github.com/vovakirdan/shadow-paws/internal/games/shadowpaws"
	"github.com/vovakirdan/shadow-paws/internal/registry"
	"github.com/vovakirdan/shadow-paws/internal/storage"
)

const (
	hudRows     = 2 // score line + status line
	footerRows  = 1
	holdMillis  = 120 // how long one key press counts as held
	toastMillis = 3000
	recentLimit = 10
)

// ScoreHistory is the score table finished sessions are recorded in.
// *storage.Store implements it.
type ScoreHistory interface {
	SaveScore(e storage.ScoreEntry) (int64, error)
	RecentScores(profile string, limit int) ([]storage.ScoreEntry, error)
	ClearProfile(profile string) error
}

// Options configures a Model.
type Options struct {
	// Env carries the game collaborators. Its Presenter is replaced by
	// the model's navigator.
	Env registry.Env
	// History records finished sessions. Nil disables score history.
	History ScoreHistory
	// Profile is the name scores are recorded under.
	Profile  string
	Runtime  core.RuntimeConfig
	Renderer *lipgloss.Renderer
	// StartMode starts a session immediately instead of opening the menu.
	StartMode string
}

// navPresenter lets the engine switch the host's active screen.
type navPresenter struct {
	nav *core.Navigator
}

func (p navPresenter) SetActiveScreen(id core.ScreenID) {
	p.nav.Set(id)
}

type toast struct {
	text string
	left int // ticks
}

// Model is the Bubble Tea model hosting the menus and game sessions.
type Model struct {
	opts     Options
	env      registry.Env
	nav      *core.Navigator
	runtime  core.RuntimeConfig
	renderer *lipgloss.Renderer
	styles   styles

	profile *shadowpaws.Profile
	game    registry.Game
	screen  *core.Screen
	canvas  *CellCanvas
	keys    *KeyMapper
	input   core.InputFrame
	state   core.GameState
	summary core.SessionSummary
	toasts  []toast

	menu  menuState
	board *Board

	width      int
	height     int
	ticking    bool
	scoreSaved bool
	quitting   bool
}

// NewModel creates the host model.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if rt.ScreenW <= 0 || rt.ScreenH <= 0 {
		d := core.DefaultConfig()
		rt.ScreenW, rt.ScreenH = d.ScreenW, d.ScreenH
	}
	if opts.Renderer == nil {
		opts.Renderer = lipgloss.DefaultRenderer()
	}
	if opts.Profile == "" {
		opts.Profile = storage.DefaultProfile
	}

	nav := core.NewNavigator()
	env := opts.Env.WithDefaults()
	env.Presenter = navPresenter{nav: nav}

	screen := core.NewScreen(rt.ScreenW, playRows(rt.ScreenH))
	m := Model{
		opts:     opts,
		env:      env,
		nav:      nav,
		runtime:  rt,
		renderer: opts.Renderer,
		styles:   newStyles(opts.Renderer),
		profile:  shadowpaws.LoadProfile(env.Store),
		screen:   screen,
		canvas:   NewCellCanvas(screen, env.Config.World.Width, env.Config.World.Height),
		keys:     NewKeyMapper(rt.TicksFor(holdMillis)),
		input:    core.NewInputFrame(),
		board:    NewBoard(rt.ScreenW, rt.ScreenH),
		width:    rt.ScreenW,
		height:   rt.ScreenH,
	}

	if opts.StartMode != "" {
		m.startSession(opts.StartMode)
	}
	return m
}

func playRows(height int) int {
	return max(height-hudRows-footerRows, 1)
}

// Init starts the frame loop when a session was started up front.
func (m Model) Init() tea.Cmd {
	if m.ticking {
		return tickCmd(m.runtime.TickRate)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" && m.game != nil {
			m.saveScreenshot()
			return m, nil
		}
		if m.nav.Current() == core.ScreenNone && m.game != nil {
			return m.handleGameKey(msg)
		}
		return m.handleMenuKey(msg)

	case tea.MouseMsg:
		if m.nav.Current() == core.ScreenNone && m.game != nil {
			view := m.canvas.View()
			view.Y += hudRows
			m.keys.MapMouse(msg, view, &m.input)
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

func (m Model) handleGameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapGameKey(msg, &m.input) {
	case GameKeyQuit:
		m.quitting = true
		return m, tea.Quit
	case GameKeyBack:
		m.leaveSession()
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps its size;
// only the cell view is refitted.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.runtime.ScreenW = msg.Width
	m.runtime.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playRows(msg.Height))
	m.screen.Clear()
	m.canvas.Fit()
	m.board.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by one fixed step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game == nil {
		m.ticking = false
		return m, nil
	}

	if m.nav.Current() == core.ScreenNone {
		m.keys.Expire(&m.input)
	}
	result := m.game.Step(m.input)
	m.input.Clear()
	m.state = result.State

	m.collectNotices()
	m.ageToasts()

	if m.state.GameOver && !m.scoreSaved {
		m.finishSession()
	}

	if m.nav.Current() != core.ScreenNone && !m.pending() && len(m.toasts) == 0 {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

// startSession creates a game for mode and starts it.
func (m *Model) startSession(mode string) tea.Cmd {
	game, err := registry.Create(mode, m.env)
	if err != nil {
		m.env.Logger.Error("cannot start session", "mode", mode, "err", err)
		return nil
	}
	m.game = game
	m.nav.Apply(core.IntentStartSession)
	m.beginSession()
	return m.ensureTicking()
}

// beginSession resets the current game. An explicit seed applies to the
// first session only; later sessions are seeded from the clock.
func (m *Model) beginSession() {
	rc := m.runtime
	m.runtime.Seed = 0

	m.keys.Release(nil)
	m.input.Clear()
	m.toasts = nil
	m.scoreSaved = false
	m.summary = core.SessionSummary{}
	m.screen.Clear()

	m.game.Reset(rc)
	m.state = m.game.State()
}

func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tickCmd(m.runtime.TickRate)
}

// leaveSession drops the current game and returns to the main menu.
func (m *Model) leaveSession() {
	if m.game != nil && !m.state.GameOver {
		m.env.Logger.Debug("session abandoned", "mode", m.game.ID(), "score", m.state.Score)
	}
	m.game = nil
	m.toasts = nil
	m.keys.Release(nil)
	m.input.Clear()
	m.nav.Apply(core.IntentBack)
	m.reloadProfile()
}

// finishSession records a finished session once.
func (m *Model) finishSession() {
	m.scoreSaved = true
	m.keys.Release(nil)

	if s, ok := m.game.(registry.Summarizer); ok {
		m.summary = s.Summary()
	} else {
		m.summary = core.SessionSummary{
			Mode:      m.game.ID(),
			Score:     m.state.Score,
			Level:     m.state.Level,
			MaxCombo:  m.state.MaxCombo,
			HighScore: m.state.HighScore,
		}
	}
	if m.nav.Current() == core.ScreenNone {
		m.nav.Apply(core.IntentSessionEnded)
	}
	m.menu.cursor = 0

	if m.opts.History != nil && m.summary.Score > 0 {
		_, err := m.opts.History.SaveScore(storage.ScoreEntry{
			Profile:  m.opts.Profile,
			Mode:     m.summary.Mode,
			Score:    m.summary.Score,
			Level:    m.summary.Level,
			MaxCombo: m.summary.MaxCombo,
		})
		if err != nil {
			m.env.Logger.Warn("cannot save score", "err", err)
		}
	}
	m.reloadProfile()
}

func (m *Model) pending() bool {
	d, ok := m.game.(registry.Deferrer)
	return ok && d.Pending() > 0
}

func (m *Model) collectNotices() {
	n, ok := m.game.(registry.Notifier)
	if !ok {
		return
	}
	for _, text := range n.DrainNotices() {
		m.toasts = append(m.toasts, toast{text: text, left: m.runtime.TicksFor(toastMillis)})
	}
}

func (m *Model) ageToasts() {
	kept := m.toasts[:0]
	for _, t := range m.toasts {
		t.left--
		if t.left > 0 {
			kept = append(kept, t)
		}
	}
	m.toasts = kept
}

func (m *Model) reloadProfile() {
	m.profile = shadowpaws.LoadProfile(m.env.Store)
}

// recentScores loads the score history, empty when unavailable.
func (m *Model) recentScores() []storage.ScoreEntry {
	if m.opts.History == nil {
		return nil
	}
	entries, err := m.opts.History.RecentScores(m.opts.Profile, recentLimit)
	if err != nil {
		m.env.Logger.Warn("cannot load score history", "err", err)
		return nil
	}
	return entries
}

// setAudio stores the preference and mutes a live speaker right away.
func (m *Model) setAudio(on bool) {
	m.profile.SetAudio(on)
	if s, ok := m.env.Tones.(interface{ SetEnabled(bool) }); ok {
		s.SetEnabled(on)
	}
}

// resetStats wipes the profile and its score history.
func (m *Model) resetStats() {
	if m.opts.History != nil {
		if err := m.opts.History.ClearProfile(m.opts.Profile); err != nil {
			m.env.Logger.Warn("cannot clear score history", "err", err)
		}
	}
	m.profile.Reset()
	m.setAudio(true)
	m.env.Logger.Info("statistics reset", "profile", m.opts.Profile)
}

// saveScreenshot saves the current playfield to a text file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".shadowpaws", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.game.ID(), m.env.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the active screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.nav.Current() {
	case core.ScreenNone:
		if m.game != nil {
			return m.gameView()
		}
		return m.mainView()
	case core.ScreenPlay:
		return m.playView()
	case core.ScreenTutorial:
		return m.tutorialView()
	case core.ScreenAchievements:
		return m.achievementsView()
	case core.ScreenStats:
		return m.statsView()
	case core.ScreenSettings:
		return m.settingsView()
	case core.ScreenGameOver:
		return m.gameOverView()
	default:
		return m.mainView()
	}
}

func (m Model) gameView() string {
	m.canvas.Begin()
	m.game.Render(m.canvas)
	if m.state.Paused {
		view := m.canvas.View()
		m.screen.DrawTextCentered(view.Y+view.H/2, " PAUSED ", core.ColorGold)
	}

	var b strings.Builder
	b.WriteString(m.hudView())
	b.WriteString("\n")
	b.WriteString(RenderScreen(m.renderer, m.screen))
	b.WriteString("\n")
	b.WriteString(m.footerView())
	return b.String()
}

// hudView renders the score line and the status line.
func (m Model) hudView() string {
	s := m.state
	lives := strings.Repeat("♥", min(s.Lives, 9))
	line := fmt.Sprintf("Score %d   Lives %s   Level %d   Combo x%d   High %d",
		s.Score, lives, s.Level, s.Combo, s.HighScore)

	status := s.Status
	if g, ok := m.game.(*shadowpaws.Game); ok {
		status = strings.TrimSpace(status + "  " + m.powerUpLine(g))
	}

	return m.styles.hud.MaxWidth(m.width).Render(centerText(line, m.width)) + "\n" +
		m.styles.status.MaxWidth(m.width).Render(centerText(status, m.width))
}

// powerUpLine lists every power-up with its hotkey and cooldown.
func (m Model) powerUpLine(g *shadowpaws.Game) string {
	rate := m.runtime.TickRate
	parts := make([]string, 0, len(shadowpaws.PowerUpKinds))
	for i, k := range shadowpaws.PowerUpKinds {
		state := "ready"
		if cd := g.PowerUps().Cooldown(k); cd > 0 {
			state = fmt.Sprintf("%ds", (cd+rate-1)/rate)
		}
		if g.PowerUps().Has(k) {
			state = "active"
		}
		parts = append(parts, fmt.Sprintf("[%d] %s %s", i+1, k, state))
	}
	return strings.Join(parts, "  ")
}

func (m Model) footerView() string {
	if n := len(m.toasts); n > 0 {
		return m.styles.toast.MaxWidth(m.width).Render(centerText(m.toasts[n-1].text, m.width))
	}
	help := "←↑↓→/WASD move · mouse follow · 1/2/3 power-ups · P pause · Esc menu"
	return m.styles.dim.MaxWidth(m.width).Render(centerText(help, m.width))
}

// Run starts the Bubble Tea program for local play.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),      // Use alternate screen buffer
		tea.WithMouseAllMotion(), // Pointer follow mode
	)

	_, err := p.Run()
	return err
}
