package tui

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/numberpop/internal/canvas"
	"github.com/vovakirdan/numberpop/internal/core"
	"github.com/vovakirdan/numberpop/internal/game"
	"github.com/vovakirdan/numberpop/internal/loop"
)

// helpHeight is the number of rows below the canvas.
const helpHeight = 1

// Model is the Bubble Tea model for one game.
type Model struct {
	config    core.RuntimeConfig
	game      *game.Game
	loop      *loop.GameLoop
	host      *Host
	canvas    *canvas.Canvas
	renderer  *lipgloss.Renderer
	keys      keyMap
	help      help.Model
	hintStyle lipgloss.Style
	logger    *log.Logger
	wonLogged bool
	quitting  bool
}

// NewModel creates a game sized to the terminal and starts its loop.
// A nil renderer uses the process's default lipgloss renderer.
func NewModel(cfg core.RuntimeConfig, logger *log.Logger, renderer *lipgloss.Renderer) (Model, error) {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.FrameRate <= 0 {
		cfg.FrameRate = core.DefaultConfig().FrameRate
	}
	if renderer == nil {
		renderer = lipgloss.DefaultRenderer()
	}
	if logger == nil {
		logger = log.Default()
	}

	gcfg := game.DefaultConfig()
	screen := core.NewScreen(cfg.ScreenW, canvasRows(cfg.ScreenH))
	cv := canvas.New(screen, gcfg.BaseWidth, gcfg.BaseHeight)

	g, err := game.New(gcfg, cv, cv.ClientWidth(), cv.ClientHeight(), rand.New(rand.NewSource(cfg.Seed)))
	if err != nil {
		return Model{}, fmt.Errorf("create game: %w", err)
	}

	host := NewHost(time.Now())
	l := loop.New(gcfg, host, cv, logger)
	if err := l.Start(g); err != nil {
		return Model{}, fmt.Errorf("start game loop: %w", err)
	}
	logger.Debug("terminal host ready",
		"screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH),
		"fps", cfg.FrameRate,
		"seed", cfg.Seed,
	)

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		config:    cfg,
		game:      g,
		loop:      l,
		host:      host,
		canvas:    cv,
		renderer:  renderer,
		keys:      defaultKeyMap(),
		help:      h,
		hintStyle: renderer.NewStyle().Foreground(lipgloss.Color("#00ffff")),
		logger:    logger,
	}, nil
}

// canvasRows returns the canvas height for a terminal height.
func canvasRows(screenH int) int {
	return core.Max(screenH-helpHeight, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	return frameCmd(m.config.FrameRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case FrameMsg:
		return m.handleFrame(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleMouse forwards left button presses on the canvas to the host.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if msg.X >= m.canvas.ClientWidth() || msg.Y >= m.canvas.ClientHeight() {
		return m, nil
	}
	m.host.PointerDown(msg.X, msg.Y)
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.canvas.Screen().Resize(msg.Width, canvasRows(msg.Height))
	m.game.SetViewport(m.canvas.ClientWidth(), m.canvas.ClientHeight())
	m.help.Width = msg.Width
	return m, nil
}

// handleFrame presents one host frame.
func (m Model) handleFrame(now time.Time) (tea.Model, tea.Cmd) {
	m.host.Present(now)

	if !m.game.Running() && !m.wonLogged {
		m.logger.Info("goal reached", "score", m.game.Score(), "frames", m.loop.Frames())
		m.wonLogged = true
	}

	return m, frameCmd(m.config.FrameRate)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hint := m.hintStyle.Render("click a number to collect it")
	return RenderScreen(m.renderer, m.canvas.Screen()) + "\n" + hint + "  " + m.help.View(m.keys)
}

// Game returns the game driven by this model.
func (m Model) Game() *game.Game {
	return m.game
}

// Run starts the Bubble Tea program for a single local game.
func Run(cfg core.RuntimeConfig, logger *log.Logger) error {
	model, err := NewModel(cfg, logger, nil)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Mouse presses are the game's input
	)

	_, err = p.Run()
	return err
}
