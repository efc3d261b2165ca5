// Package tui provides the Bubble Tea integration for the game.
// It handles the terminal UI loop, input mapping, persistence hooks, and remote play.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// lastTickID hands out tick loop identifiers.
var lastTickID atomic.Int64

func nextTickID() int64 {
	return lastTickID.Add(1)
}

// TickMsg is sent to trigger a game simulation tick. ID names the loop that
// scheduled it so a model ignores ticks left over from an earlier game.
type TickMsg struct {
	Time time.Time
	ID   int64
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id int64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
