package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/guitar-chase/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow left", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"wasd left", runeKey('a'), core.ActionLeft},
		{"wasd right", runeKey('d'), core.ActionRight},
		{"wasd up", runeKey('w'), core.ActionUp},
		{"wasd down", runeKey('s'), core.ActionDown},
		{"vim left", runeKey('h'), core.ActionLeft},
		{"vim down", runeKey('j'), core.ActionDown},
		{"pause", runeKey('p'), core.ActionPause},
		{"esc pauses", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionPause},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{"space confirms", tea.KeyMsg{Type: tea.KeySpace}, core.ActionConfirm},
		{"restart", runeKey('r'), core.ActionRestart},
		{"quit", runeKey('q'), core.ActionQuit},
		{"ctrl+c quits", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{"unbound", runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := km.MapKey(tt.msg); got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestIsDirection(t *testing.T) {
	for _, a := range core.Directions {
		if !IsDirection(a) {
			t.Errorf("IsDirection(%v) = false", a)
		}
	}
	for _, a := range []core.Action{core.ActionNone, core.ActionPause, core.ActionConfirm, core.ActionQuit} {
		if IsDirection(a) {
			t.Errorf("IsDirection(%v) = true", a)
		}
	}
}

func TestHeldKeysDecay(t *testing.T) {
	h := NewHeldKeys(3)
	h.Press(core.ActionLeft)

	for i := 0; i < 3; i++ {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", i)
		}
		h.Tick()
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestHeldKeysRepeatRefreshes(t *testing.T) {
	h := NewHeldKeys(2)
	h.Press(core.ActionUp)
	h.Tick()
	h.Press(core.ActionUp)
	h.Tick()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if !frame.Has(core.ActionUp) {
		t.Error("a repeated press should extend the hold")
	}
}

func TestHeldKeysOppositeReleases(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionLeft)
	h.Press(core.ActionUp)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !frame.Has(core.ActionRight) || !frame.Has(core.ActionUp) {
		t.Error("right and up should both be held")
	}
}

func TestHeldKeysRelease(t *testing.T) {
	h := NewHeldKeys(10)
	h.Press(core.ActionDown)
	h.Press(core.ActionPause)
	h.Release()

	frame := core.NewInputFrame()
	h.Apply(&frame)
	for _, a := range core.Directions {
		if frame.Has(a) {
			t.Errorf("%v held after Release", a)
		}
	}
	if frame.Has(core.ActionPause) {
		t.Error("non-directions are never held")
	}
}
