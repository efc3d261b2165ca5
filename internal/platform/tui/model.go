package tui

import (
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guitar-chase/internal/core"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

// DefaultHoldWindow is how long a direction key stays held after a press.
// Long enough to bridge the terminal's auto-repeat delay.
const DefaultHoldWindow = 250 * time.Millisecond

// Game is what the platform needs from a game: pure logic driven one tick at a time.
type Game interface {
	ID() string
	Title() string
	// Reset starts a fresh run.
	Reset(cfg core.RuntimeConfig)
	// Step advances the simulation by one fixed tick.
	Step(in core.InputFrame) core.StepResult
	// Render draws the current state into dst.
	Render(dst *core.Screen)
	State() core.GameState
	// Resize adapts to new terminal dimensions without restarting.
	Resize(w, h int)
	// Checkpoint and Resume save and continue a run.
	Checkpoint() core.GameState
	Resume(s core.GameState)
}

// Options carries the optional collaborators of a Model.
type Options struct {
	Store  *storage.Store     // nil disables save/resume and the completion log
	Logger *log.Logger        // nil discards
	Player string             // recorded in the completion log
	Slot   string             // saved-run slot
	Resume *storage.RunRecord // run to continue instead of starting fresh
	Hold   time.Duration      // direction hold window, DefaultHoldWindow if zero
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game     Game
	screen   *core.Screen
	store    *storage.Store
	logger   *log.Logger
	config   core.RuntimeConfig
	keys     *KeyMapper
	held     *HeldKeys
	input    core.InputFrame // edge actions since the last tick
	state    core.GameState
	run      *runInfo
	resume   *storage.RunRecord
	tickID   int64
	quitting bool
}

// runInfo tracks the current run for persistence. Shared by model copies.
type runInfo struct {
	id      string
	player  string
	slot    string
	started time.Time
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Logger == nil {
		opts.Logger = NewLogger(io.Discard, "", false)
	}
	if opts.Hold <= 0 {
		opts.Hold = DefaultHoldWindow
	}
	if opts.Slot == "" {
		opts.Slot = "local"
	}

	run := &runInfo{
		id:      storage.NewRunID(),
		player:  opts.Player,
		slot:    opts.Slot,
		started: time.Now(),
	}
	if opts.Resume != nil {
		run.id = opts.Resume.RunID
		if opts.Resume.Seed != 0 {
			cfg.Seed = opts.Resume.Seed
		}
	}

	holdTicks := int(opts.Hold * time.Duration(cfg.TickRate) / time.Second)

	return Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  opts.Store,
		logger: opts.Logger,
		config: cfg,
		keys:   NewKeyMapper(),
		held:   NewHeldKeys(holdTicks),
		input:  core.NewInputFrame(),
		run:    run,
		resume: opts.Resume,
		tickID: nextTickID(),
	}
}

// Init starts the game and the tick loop.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	if m.resume != nil {
		m.game.Resume(core.GameState{
			Level:    m.resume.Level,
			Coins:    m.resume.Coins,
			TimeLeft: m.resume.TimeLeft,
			Speed:    m.resume.Speed,
		})
		m.logger.Info("run resumed", "run", m.run.id, "level", m.resume.Level)
	} else {
		m.logger.Info("run started", "run", m.run.id, "seed", m.config.Seed)
	}
	return tickCmd(m.config.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.game.Resize(msg.Width, msg.Height)
		return m, nil

	case tea.BlurMsg:
		m.held.Release()
		return m, nil

	case TickMsg:
		if msg.ID != m.tickID || m.quitting {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)

	switch {
	case action == core.ActionQuit:
		m.saveRun()
		m.quitting = true
		return m, tea.Quit
	case IsDirection(action):
		m.held.Press(action)
	case action != core.ActionNone:
		m.input.Set(action)
	}

	return m, nil
}

// handleTick runs one simulation step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.input)

	if m.input.Has(core.ActionRestart) && !m.state.Completed {
		m.newRun()
	}

	result := m.game.Step(m.input)
	m.state = result.State
	for _, e := range result.Events {
		m.handleEvent(e)
	}

	m.input.Clear()
	m.held.Tick()
	return m, tickCmd(m.config.TickRate, m.tickID)
}

// handleEvent logs game events and feeds the completion log.
func (m Model) handleEvent(e core.Event) {
	switch e.Kind {
	case core.EventLevelAdvanced:
		m.logger.Info("level advanced", "run", m.run.id, "level", e.Level)
	case core.EventRunCompleted:
		duration := time.Since(m.run.started)
		m.logger.Info("run completed", "run", m.run.id, "player", m.run.player, "duration", duration.Round(time.Second))
		if m.store != nil {
			if _, err := m.store.RecordCompletion(storage.Completion{
				RunID:        m.run.id,
				Player:       m.run.player,
				DurationSecs: int(duration.Seconds()),
			}); err != nil {
				m.logger.Warn("could not record completion", "error", err)
			}
			// A finished run must not be resumed.
			if err := m.store.ClearRun(m.run.slot); err != nil {
				m.logger.Warn("could not clear saved run", "error", err)
			}
		}
		m.newRun()
	default:
		m.logger.Debug("event", "kind", e.Kind, "level", e.Level)
	}
}

// newRun starts tracking a fresh run.
func (m Model) newRun() {
	m.run.id = storage.NewRunID()
	m.run.started = time.Now()
}

// saveRun checkpoints the current run so it can be resumed.
func (m Model) saveRun() {
	if m.store == nil {
		return
	}
	s := m.game.Checkpoint()
	rec := storage.RunRecord{
		Slot:     m.run.slot,
		RunID:    m.run.id,
		Seed:     m.config.Seed,
		Level:    s.Level,
		Coins:    s.Coins,
		TimeLeft: s.TimeLeft,
		Speed:    s.Speed,
	}
	if err := m.store.SaveRun(rec); err != nil {
		m.logger.Warn("could not save run", "error", err)
		return
	}
	m.logger.Info("run saved", "run", rec.RunID, "slot", rec.Slot, "level", rec.Level)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// Quitting reports whether the player asked to leave the game.
func (m Model) Quitting() bool {
	return m.quitting
}

// State returns the state observed on the last tick.
func (m Model) State() core.GameState {
	return m.state
}

// RunID returns the identifier of the run in progress.
func (m Model) RunID() string {
	return m.run.id
}

// Run starts the Bubble Tea program for game.
func Run(game Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)

	_, err := p.Run()
	return err
}
