package guitar

import "github.com/vovakirdan/guitar-chase/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	State       GameState
	Player      core.Vec
	Guitar      core.Vec
	GuitarVel   core.Vec
	Coin        core.Vec
	Paused      bool
	Completed   bool
	Completions int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		State:       g.runner.State(),
		Player:      g.world.player.pos,
		Guitar:      g.world.guitar.pos,
		GuitarVel:   g.world.guitar.vel,
		Coin:        g.world.coin.pos,
		Paused:      g.paused,
		Completed:   g.completed,
		Completions: g.completions,
	}
}
