package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-timber/internal/core"
	"github.com/vovakirdan/tui-timber/internal/games/timber"
)

// Options configures a Model beyond the runtime settings.
type Options struct {
	ChopDuration  float64 // seconds
	DeathDuration float64 // seconds
	Logger        *log.Logger
}

// fpsSmoothing is the weight of the newest frame in the FPS estimate.
const fpsSmoothing = 0.1

// Model is the Bubble Tea model for one timber session.
type Model struct {
	session    *timber.Session
	animator   *Animator
	screen     *core.Screen
	config     core.RuntimeConfig
	keys       KeyMap
	help       help.Model
	logger     *log.Logger
	inputFrame core.InputFrame
	lastTick   time.Time
	lastDelta  float64
	fps        float64
	debug      bool
	quitting   bool
}

// NewModel creates a model with a fresh session in the menu.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return Model{
		session:    timber.NewSession(rand.New(rand.NewSource(cfg.Seed))),
		animator:   NewAnimator(opts.ChopDuration, opts.DeathDuration),
		screen:     core.NewScreen(cfg.ScreenW, playHeight(cfg.ScreenH)),
		config:     cfg,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
		inputFrame: core.NewInputFrame(),
	}
}

// playHeight leaves the last terminal row for the help footer.
func playHeight(h int) int {
	return max(h-1, 0)
}

// Init starts the frame loop.
func (m Model) Init() tea.Cmd {
	m.logger.Debug("session ready", "seed", m.config.Seed, "tick_rate", m.config.TickRate)
	return tickCmd(m.config.TickRate)
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

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey queues the key's action for the next frame. Quit and the debug
// toggle never reach the session.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "score", m.session.Score(), "best", m.session.MaxScore())
		return m, tea.Quit
	case core.ActionToggleDebug:
		m.debug = !m.debug
	default:
		m.inputFrame.Set(action)
	}
	return m, nil
}

// handleMouse treats a left click on the button as the menu dismiss or the
// replay, depending on the state.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !ButtonRect(m.screen.Width(), m.screen.Height()).Contains(msg.X, msg.Y) {
		return m, nil
	}

	switch m.session.State() {
	case timber.StateMenu:
		m.inputFrame.Set(core.ActionDismiss)
	case timber.StateGameOver:
		m.inputFrame.Set(core.ActionReset)
	}
	return m, nil
}

// handleResize only changes the drawing surface; the run goes on.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, playHeight(msg.Height))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one frame: queued input, then time, then the animation,
// which may release the chop lock.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := m.config.FrameDelta()
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	dt = m.config.CapDelta(dt)
	m.lastTick = now
	m.lastDelta = dt
	if dt > 0 {
		m.fps += fpsSmoothing * (1/dt - m.fps)
	}

	result := m.session.Step(m.inputFrame, dt)
	if m.animator.Update(dt, m.session.Snapshot(), m.session) {
		m.logger.Debug("chop animation complete")
	}
	m.logEvents(result)

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

func (m Model) logEvents(result core.StepResult) {
	for _, ev := range result.Events {
		switch ev {
		case core.EventStarted:
			m.logger.Info("run started")
		case core.EventChopped:
			m.logger.Debug("chop", "score", result.State.Score)
		case core.EventKilled:
			m.logger.Info("lumberjack died", "score", result.State.Score)
		case core.EventGameOver:
			m.logger.Info("game over", "score", result.State.Score, "best", result.State.MaxScore)
		case core.EventReset:
			m.logger.Info("reset")
		}
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Draw(m.screen, m.session.Snapshot(), m.drawOptions())
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m Model) drawOptions() DrawOptions {
	return DrawOptions{
		Anim:     m.animator.Kind(),
		Progress: m.animator.Progress(),
		Debug:    m.debug,
		FPS:      m.fps,
		Delta:    m.lastDelta,
	}
}

// Session returns the session driven by the model.
func (m Model) Session() *timber.Session {
	return m.session
}

// Run starts the Bubble Tea program with the given model.
func Run(cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks on the play/replay button
	)

	_, err := p.Run()
	return err
}
