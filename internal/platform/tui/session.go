package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guitar-chase/internal/core"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

// SessionConfig describes one player's session.
type SessionConfig struct {
	Title   string
	Runtime core.RuntimeConfig
	Store   *storage.Store
	Logger  *log.Logger
	Player  string
	Slot    string
	NewGame func() Game
}

// SessionModel manages the full session flow: menu -> game -> menu.
// It is the top-level model for both local and SSH play.
type SessionModel struct {
	cfg      SessionConfig
	menu     MenuModel
	game     *Model
	history  *HistoryModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(cfg SessionConfig) SessionModel {
	if cfg.Logger == nil {
		cfg.Logger = NewLogger(io.Discard, "", false)
	}
	if cfg.Slot == "" {
		cfg.Slot = "local"
	}
	if cfg.Title == "" {
		cfg.Title = "Guitar Chase"
	}
	m := SessionModel{cfg: cfg}
	m.menu = m.newMenu()
	return m
}

// newMenu builds the menu, offering the saved run of this session's slot.
func (m SessionModel) newMenu() MenuModel {
	var saved *storage.RunRecord
	if m.cfg.Store != nil {
		rec, err := m.cfg.Store.LoadRun(m.cfg.Slot)
		if err != nil {
			m.cfg.Logger.Warn("could not load saved run", "slot", m.cfg.Slot, "error", err)
		}
		saved = rec
	}
	return NewMenuModel(m.cfg.Title, saved, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.cfg.Runtime.ScreenW = wsm.Width
		m.cfg.Runtime.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.history != nil:
		return m.updateHistory(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch m.menu.Selected() {
	case ChoiceQuit:
		m.quitting = true
		return m, tea.Quit
	case ChoiceNewRun:
		return m.startGame(nil)
	case ChoiceContinue:
		return m.startGame(m.menu.Saved())
	case ChoiceHistory:
		h := NewHistoryModel(m.cfg.Store, m.cfg.Runtime.ScreenW, m.cfg.Runtime.ScreenH)
		m.history = &h
		return m, h.Init()
	}

	return m, cmd
}

// startGame leaves the menu for a fresh or resumed run.
func (m SessionModel) startGame(resume *storage.RunRecord) (tea.Model, tea.Cmd) {
	model := NewModel(m.cfg.NewGame(), m.cfg.Runtime, Options{
		Store:  m.cfg.Store,
		Logger: m.cfg.Logger,
		Player: m.cfg.Player,
		Slot:   m.cfg.Slot,
		Resume: resume,
	})
	m.game = &model
	return m, m.game.Init()
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	gameModel, ok := newModel.(Model)
	if !ok {
		return m, cmd
	}

	// Quitting a game returns to the menu; its run was saved on the way out.
	if gameModel.Quitting() {
		m.game = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	m.game = &gameModel
	return m, cmd
}

// updateHistory handles updates on the history screen.
func (m SessionModel) updateHistory(msg tea.Msg) (tea.Model, tea.Cmd) {
	newHistory, cmd := m.history.Update(msg)
	historyModel, ok := newHistory.(HistoryModel)
	if !ok {
		return m, cmd
	}

	switch {
	case historyModel.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case historyModel.IsGoingBack():
		m.history = nil
		m.menu = m.newMenu()
		return m, m.menu.Init()
	}

	m.history = &historyModel
	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.history != nil:
		return m.history.View()
	}
	return m.menu.View()
}

// RunSession runs an interactive session in the local terminal.
func RunSession(cfg SessionConfig) error {
	p := tea.NewProgram(
		NewSessionModel(cfg),
		tea.WithAltScreen(),
		tea.WithReportFocus(),
	)
	_, err := p.Run()
	return err
}
