package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guitar-chase/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action. Unbound keys map to ActionNone.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionQuit
	case "left", "a", "h":
		return core.ActionLeft
	case "right", "d", "l":
		return core.ActionRight
	case "up", "w", "k":
		return core.ActionUp
	case "down", "s", "j":
		return core.ActionDown
	case "p", "esc":
		return core.ActionPause
	case "enter", " ":
		return core.ActionConfirm
	case "r":
		return core.ActionRestart
	}
	return core.ActionNone
}

// IsDirection reports whether a is one of the four movement actions.
func IsDirection(a core.Action) bool {
	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionUp, core.ActionDown:
		return true
	}
	return false
}

func opposite(a core.Action) core.Action {
	switch a {
	case core.ActionLeft:
		return core.ActionRight
	case core.ActionRight:
		return core.ActionLeft
	case core.ActionUp:
		return core.ActionDown
	case core.ActionDown:
		return core.ActionUp
	}
	return core.ActionNone
}

// HeldKeys approximates key-down state. Terminals only report presses (and
// auto-repeats), so a direction counts as held for window ticks after its
// last press. Pressing a direction releases its opposite at once.
type HeldKeys struct {
	window    int
	remaining map[core.Action]int
}

// NewHeldKeys creates a tracker that holds each press for window ticks.
func NewHeldKeys(window int) *HeldKeys {
	return &HeldKeys{
		window:    max(window, 1),
		remaining: make(map[core.Action]int),
	}
}

// Press marks a direction as held.
func (h *HeldKeys) Press(a core.Action) {
	if !IsDirection(a) {
		return
	}
	delete(h.remaining, opposite(a))
	h.remaining[a] = h.window
}

// Apply sets every held direction on frame.
func (h *HeldKeys) Apply(frame *core.InputFrame) {
	for a, n := range h.remaining {
		if n > 0 {
			frame.Set(a)
		}
	}
}

// Tick ages the holds by one frame.
func (h *HeldKeys) Tick() {
	for a := range h.remaining {
		h.remaining[a]--
		if h.remaining[a] <= 0 {
			delete(h.remaining, a)
		}
	}
}

// Release drops every hold.
func (h *HeldKeys) Release() {
	clear(h.remaining)
}
