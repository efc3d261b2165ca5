package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a running game.
type GameState struct {
	Level     int
	Coins     int
	TimeLeft  int // seconds
	Speed     int // guitar speed, world units per second
	Paused    bool
	Completed bool // completion modal is showing
}

// EventKind identifies something notable that happened during a tick.
type EventKind int

const (
	EventGuitarCaught EventKind = iota + 1
	EventCoinCaught
	EventLevelAdvanced
	EventRunCompleted
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventGuitarCaught:
		return "guitar_caught"
	case EventCoinCaught:
		return "coin_caught"
	case EventLevelAdvanced:
		return "level_advanced"
	case EventRunCompleted:
		return "run_completed"
	default:
		return "unknown"
	}
}

// Event is emitted by a game step. Level is the level after the event.
type Event struct {
	Kind  EventKind
	Level int
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []Event
}
