package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/storage"
)

const (
	helpRows     = 1 // Height of the help footer below the field
	overlayTitle = "GAME OVER"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configure a Model.
type Options struct {
	Store  *storage.Store // nil disables score saving
	Player string         // Recorded with saved scores
	FPS    int
	Seed   int64     // 0 picks a time-based seed for every session
	Bell   io.Writer // Where sounds ring; nil mutes
}

// scoreSavedMsg reports the outcome of saving session gen's score.
type scoreSavedMsg struct {
	gen  int
	id   int64
	best int
	err  error
}

// Model is the Bubble Tea model for playing flappy sessions back to back.
type Model struct {
	res        *flappy.Resources
	opts       Options
	session    *flappy.Session
	gen        int // Bumped for every new session; stale ticks are dropped
	screen     *core.Screen
	canvas     *Canvas
	audio      *BellAudio
	keys       KeyMap
	help       help.Model
	scoreboard *ScoreboardModel
	width      int
	height     int
	best       int
	savedID    int64
	newBest    bool // Score beat the stored best when the session ended
	saveErr    error
	err        error
	quitting   bool
}

// NewModel creates a model with a fresh session sized for a width x height
// terminal.
func NewModel(res *flappy.Resources, opts Options, width, height int) (Model, error) {
	screen := core.NewScreen(width, max(height-helpRows, 1))
	m := Model{
		res:    res,
		opts:   opts,
		screen: screen,
		canvas: NewCanvas(screen, res.Config.Field.Width, res.Config.Field.Height),
		audio:  NewBellAudio(opts.Bell, res.Sounds),
		keys:   DefaultKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.help.Width = width

	if opts.Store != nil {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()
		if best, err := opts.Store.HighScore(ctx, flappy.GameID); err == nil {
			m.best = best
		}
	}

	if err := m.startSession(); err != nil {
		return Model{}, err
	}
	return m, nil
}

// startSession replaces the current session with a new one.
func (m *Model) startSession() error {
	seed := m.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	session, err := m.res.NewSession(seed,
		flappy.WithRenderer(m.canvas),
		flappy.WithAudio(m.audio),
	)
	if err != nil {
		return fmt.Errorf("tui: cannot start session: %w", err)
	}

	m.session = session
	m.gen++
	m.savedID = 0
	m.newBest = false
	m.saveErr = nil
	m.keys.SetEnded(false)
	m.screen.Clear()
	return nil
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.gen, m.opts.FPS)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if saved, ok := msg.(scoreSavedMsg); ok {
		if saved.gen == m.gen {
			m.savedID, m.saveErr = saved.id, saved.err
			if saved.err == nil && saved.best > m.best {
				m.best = saved.best
			}
			m.drawOverlay()
		}
		return m, nil
	}
	if m.scoreboard != nil {
		return m.updateScoreboard(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
			m.session.Jump()
		}
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Shot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Mute):
		m.audio.SetMuted(!m.audio.Muted())
		return m, nil
	case key.Matches(msg, m.keys.Scores):
		sb := NewScoreboardModel(m.opts.Store, flappy.GameID, m.savedID, m.width, m.height)
		m.scoreboard = &sb
		return m, nil
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionJump:
		m.session.Jump()
	case core.ActionRestart:
		if err := m.startSession(); err != nil {
			m.err = err
			return m, tea.Quit
		}
		return m, tickCmd(m.gen, m.opts.FPS)
	}

	return m, nil
}

// updateScoreboard forwards messages to the open scoreboard.
func (m Model) updateScoreboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m = m.handleResize(wsm)
	}

	next, cmd := m.scoreboard.Update(msg)
	sb, ok := next.(ScoreboardModel)
	if !ok {
		return m, cmd
	}

	switch {
	case sb.IsQuitting():
		m.quitting = true
	case sb.IsGoingBack():
		m.scoreboard = nil
		return m, cmd
	}
	m.scoreboard = &sb
	return m, cmd
}

// handleResize fits the field to the new window size. A running session
// redraws on its next frame; an ended one only gets its overlay back.
func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width, m.height = msg.Width, msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 1))
	m.canvas.Fit()
	m.help.Width = msg.Width

	if m.session.Paused() {
		m.drawOverlay()
	}
	return m
}

// handleTick simulates one frame and schedules the next one while the
// session is still running.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.gen || m.session.Paused() {
		return m, nil
	}

	m.canvas.Begin()
	m.session.Step()

	select {
	case <-m.session.Done():
		return m, m.finishSession()
	default:
		return m, tickCmd(m.gen, m.opts.FPS)
	}
}

// finishSession switches to the ended screen and saves the score.
func (m *Model) finishSession() tea.Cmd {
	m.keys.SetEnded(true)
	m.keys.Scores.SetEnabled(m.opts.Store != nil)
	score := m.session.Score()
	m.newBest = score > m.best
	m.drawOverlay()

	if m.opts.Store == nil || score == 0 {
		return nil
	}
	return saveScoreCmd(m.opts.Store, m.gen, storage.ScoreEntry{
		GameID: flappy.GameID,
		Player: m.opts.Player,
		Score:  score,
		Frames: m.session.Frame(),
	})
}

// saveScoreCmd stores entry off the update loop and reports the new best.
func saveScoreCmd(store *storage.Store, gen int, entry storage.ScoreEntry) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), queryTimeout)
		defer cancel()

		id, err := store.SaveScore(ctx, entry)
		if err != nil {
			return scoreSavedMsg{gen: gen, err: err}
		}
		best, err := store.HighScore(ctx, entry.GameID)
		return scoreSavedMsg{gen: gen, id: id, best: best, err: err}
	}
}

// drawOverlay draws the game-over box over the frozen field.
func (m *Model) drawOverlay() {
	score := m.session.Score()
	lines := []string{
		overlayTitle,
		fmt.Sprintf("Score: %d", score),
		fmt.Sprintf("Best:  %d", max(m.best, score)),
	}
	switch {
	case m.saveErr != nil:
		lines = append(lines, "score not saved")
	case m.savedID != 0 && m.newBest:
		lines = append(lines, "new high score!")
	}

	width := 0
	for _, l := range lines {
		width = max(width, len(l))
	}
	view := m.canvas.Viewport()
	if view.W == 0 {
		view = core.NewRect(0, 0, m.screen.Width(), m.screen.Height())
	}
	box := core.NewRect(
		view.X+(view.W-width-4)/2,
		view.Y+(view.H-len(lines)-2)/2,
		width+4,
		len(lines)+2,
	)

	m.screen.FillRect(box, ' ', core.ColorDefault)
	m.screen.DrawBox(box)
	for i, l := range lines {
		color := core.ColorBrightWhite
		if i == 0 {
			color = core.ColorBrightRed
		}
		m.screen.DrawTextColored(box.X+2, box.Y+1+i, l, color)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".flappy", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	filename := fmt.Sprintf("%s_%s.txt", flappy.GameID, time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, filename), []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.scoreboard != nil {
		return m.scoreboard.View()
	}
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Session returns the current session.
func (m Model) Session() *flappy.Session {
	return m.session
}

// Err returns the error that stopped the model, if any.
func (m Model) Err() error {
	return m.err
}

// Run plays sessions in the current terminal until the user quits.
func Run(res *flappy.Resources, opts Options, width, height int) error {
	model, err := NewModel(res, opts, width, height)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
