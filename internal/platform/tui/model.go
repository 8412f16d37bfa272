package tui

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flappy/internal/config"
	"github.com/vovakirdan/flappy/internal/core"
	"github.com/vovakirdan/flappy/internal/flappy"
	"github.com/vovakirdan/flappy/internal/storage"
)

// Options configures a terminal game.
type Options struct {
	Config  config.FlappyConfig
	Runtime core.RuntimeConfig // Initial screen size and seed; the tick rate comes from Config
	Store   storage.Saver      // Nil disables score saving
	Host    string             // storage.HostTUI or storage.HostSSH
	Player  string
	Logger  *log.Logger
	Watcher *config.Watcher // Nil disables hot reload
}

// Model is the Bubble Tea model running one game.
type Model struct {
	ctrl     *flappy.Controller
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	runtime  core.RuntimeConfig
	logger   *log.Logger
	watcher  *config.Watcher
	ticking  bool // A TickMsg is in flight
	quitting bool
}

// NewModel creates a running game.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	rt.TickRate = opts.Config.Timing.TickRate

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctrl := flappy.NewController(opts.Config, rand.New(rand.NewSource(rt.Seed)))
	ctrl.OnGameOver(storage.Recorder(opts.Store,
		storage.Run{Host: opts.Host, Player: opts.Player, Seed: rt.Seed}, logger))

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		ctrl:    ctrl,
		screen:  core.NewScreen(rt.ScreenW, playHeight(rt.ScreenH)),
		keys:    NewKeyMap(opts.Config.Keys),
		help:    h,
		runtime: rt,
		logger:  logger,
		watcher: opts.Watcher,
		ticking: true,
	}
}

// playHeight leaves the bottom row for the help line.
func playHeight(h int) int {
	return core.Max(1, h-1)
}

// Init starts the tick loop and the config watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.runtime.TickRate), watchCmd(m.watcher))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, playHeight(msg.Height))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()

	case configReloadMsg:
		return m.handleReload(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.MapKey(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit

	case core.ActionJump:
		m.ctrl.Handle(core.ActionJump)

	case core.ActionRestart:
		// The tick chain died with the last game; start a new one.
		if m.ctrl.Handle(core.ActionRestart) && !m.ticking {
			m.ticking = true
			return m, tickCmd(m.runtime.TickRate)
		}
	}
	return m, nil
}

func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.ctrl.Running() {
		m.ctrl.Step()
	}
	if !m.ctrl.Running() {
		m.ticking = false
		return m, nil
	}
	return m, tickCmd(m.runtime.TickRate)
}

func (m Model) handleReload(msg configReloadMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.logger.Warn("config reload failed", "path", msg.path, "error", msg.err)
		return m, watchCmd(m.watcher)
	}

	cfg := msg.cfg
	if cfg.Timing.TickRate != m.runtime.TickRate {
		m.logger.Warn("tick rate changes need a new process", "tick_rate", cfg.Timing.TickRate)
		cfg.Timing.TickRate = m.runtime.TickRate
	}
	m.ctrl.Reconfigure(cfg)
	m.keys = NewKeyMap(cfg.Keys)
	m.logger.Info("config reloaded, applies on restart", "path", msg.path)
	return m, watchCmd(m.watcher)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	Rasterize(m.ctrl.Frame(), m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run plays one terminal game until the player quits.
func Run(opts Options) error {
	p := tea.NewProgram(NewModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
