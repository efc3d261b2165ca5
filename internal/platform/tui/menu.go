package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guitar-chase/internal/core"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

// MenuChoice is an entry of the start menu.
type MenuChoice int

const (
	ChoiceNone MenuChoice = iota
	ChoiceNewRun
	ChoiceContinue
	ChoiceHistory
	ChoiceQuit
)

// MenuItem represents a selectable line in the menu.
type MenuItem struct {
	Choice MenuChoice
	Label  string
}

// MenuModel is the Bubble Tea model for the start menu.
type MenuModel struct {
	title     string
	items     []MenuItem
	cursor    int
	width     int
	height    int
	saved     *storage.RunRecord
	keyMapper *KeyMapper
	selected  MenuChoice
}

// NewMenuModel creates the start menu. A saved run adds a Continue entry
// and puts the cursor on it.
func NewMenuModel(title string, saved *storage.RunRecord, width, height int) MenuModel {
	items := []MenuItem{{Choice: ChoiceNewRun, Label: "New run"}}
	cursor := 0
	if saved != nil {
		items = append(items, MenuItem{
			Choice: ChoiceContinue,
			Label:  fmt.Sprintf("Continue (level %d, %d coins, %ds left)", saved.Level, saved.Coins, saved.TimeLeft),
		})
		cursor = 1
	}
	items = append(items,
		MenuItem{Choice: ChoiceHistory, Label: "Completed runs"},
		MenuItem{Choice: ChoiceQuit, Label: "Quit"},
	)

	return MenuModel{
		title:     title,
		items:     items,
		cursor:    cursor,
		width:     width,
		height:    height,
		saved:     saved,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKey(msg) {
	case core.ActionQuit:
		m.selected = ChoiceQuit
		return m, tea.Quit

	case core.ActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case core.ActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case core.ActionConfirm:
		m.selected = m.items[m.cursor].Choice
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.selected != ChoiceNone {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("213"))
	cursorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("229")).
		Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	var b strings.Builder
	b.WriteString(titleStyle.Render(strings.ToUpper(m.title)))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Catch the guitar. Grab the coins. Beat the clock."))
	b.WriteString("\n\n")

	for i, item := range m.items {
		if i == m.cursor {
			b.WriteString(cursorStyle.Render("> " + item.Label))
		} else {
			b.WriteString("  " + item.Label)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(mutedStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Q: Quit"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

// Selected returns the chosen entry, ChoiceNone while the menu is open.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}

// Saved returns the saved run offered by the Continue entry.
func (m MenuModel) Saved() *storage.RunRecord {
	return m.saved
}
