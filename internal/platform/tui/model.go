package tui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/walk-the-dog/internal/core"
	"github.com/vovakirdan/walk-the-dog/internal/engine"
	"github.com/vovakirdan/walk-the-dog/internal/games/walkdog"
)

// footerLines is the number of rows below the canvas, status and help.
const footerLines = 2

// Options configures the terminal frontend.
type Options struct {
	Game          *walkdog.Game  // a game that has not been initialized yet
	Button        *engine.Button // the game's RestartUI
	Loop          *engine.Loop
	Config        core.RuntimeConfig
	World         core.Rect // the game canvas in world pixels
	ScreenshotDir string    // defaults to ~/.walkdog/screenshots
	Logger        *log.Logger
}

// loadedMsg carries the result of initializing the game.
type loadedMsg struct {
	game *walkdog.Game
	err  error
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     *walkdog.Game
	loop     *engine.Loop
	button   *engine.Button
	keys     *core.KeyState
	screen   *core.Screen
	canvas   *Canvas
	keymap   KeyMap
	help     help.Model
	config   core.RuntimeConfig
	shotDir  string
	logger   *log.Logger
	status   string
	err      error
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(opts Options) Model {
	cfg := opts.Config
	if opts.Button == nil {
		opts.Button = engine.NewButton()
	}
	if opts.Loop == nil {
		opts.Loop = engine.NewLoop(cfg.TickRate, 5, opts.Logger)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.ScreenshotDir == "" {
		opts.ScreenshotDir = filepath.Join(os.Getenv("HOME"), ".walkdog", "screenshots")
	}

	screen := core.NewScreen(cfg.ScreenW, core.Max(cfg.ScreenH-footerLines, 1))
	return Model{
		game:    opts.Game,
		loop:    opts.Loop,
		button:  opts.Button,
		keys:    core.NewKeyState(),
		screen:  screen,
		canvas:  NewCanvas(screen, opts.World, screen.Width(), screen.Height()),
		keymap:  DefaultKeyMap(),
		help:    help.New(),
		config:  cfg,
		shotDir: opts.ScreenshotDir,
		logger:  opts.Logger,
	}
}

// Init starts loading the game and the tick loop.
func (m Model) Init() tea.Cmd {
	return tea.Batch(initializeCmd(m.game), tickCmd(m.config.TickRate))
}

// initializeCmd loads the game's assets off the UI goroutine.
func initializeCmd(game *walkdog.Game) tea.Cmd {
	return func() tea.Msg {
		loaded, err := game.Initialize(context.Background())
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{game: loaded.(*walkdog.Game)}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.quitting = true
			return m, tea.Quit
		}
		m.game = msg.game
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Screenshot):
		m.saveScreenshot()
	case key.Matches(msg, m.keymap.Restart):
		m.button.Click()
	case key.Matches(msg, m.keymap.FrameRate):
		m.loop.ShowFrameRate = !m.loop.ShowFrameRate
	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
	default:
		// Terminals only report presses, so a key counts as held until
		// the next simulation tick has seen it.
		if code, ok := m.keymap.Code(msg); ok {
			m.keys.Press(code)
		}
	}
	return m, nil
}

// handleMouse clicks the restart button when it is visible and hit.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.button.Visible() {
		return m, nil
	}
	if restartButton(m.canvas.Cols(), m.canvas.Rows()).Contains(int16(msg.X), int16(msg.Y)) {
		m.button.Click()
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, core.Max(msg.Height-footerLines, 1))
	m.canvas.Resize(m.screen.Width(), m.screen.Height())
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs the due simulation ticks and draws a frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.screen.Clear()
	if ticks := m.loop.Frame(now, m.game, m.keys, m.canvas); ticks > 0 {
		m.keys.ReleaseAll()
	}
	if m.button.Visible() {
		drawRestartButton(m.screen, m.canvas.Cols(), m.canvas.Rows())
	}
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("walkdog_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
	m.status = "saved " + filepath.Base(path)
}

// Err returns the error that stopped the game, if any.
func (m Model) Err() error {
	return m.err
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help.View(m.keymap)))
	return b.String()
}

func (m Model) statusLine() string {
	state := "loading"
	if flow := m.game.Flow(); flow != nil {
		state = flow.Name()
	}
	line := "WALK THE DOG · " + state
	if m.status != "" {
		line += " · " + m.status
	}
	return line
}

// Run starts the Bubble Tea program and blocks until the player quits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
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
