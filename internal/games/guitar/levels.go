package guitar

import "github.com/vovakirdan/guitar-chase/internal/core"

// GameState is the progression state of a run.
type GameState struct {
	Level          int // 1..LevelCount
	CoinsCollected int // catches this level, guitar and coin both count
	TimeRemaining  int // seconds left on the level countdown
	GuitarSpeed    int // max guitar speed per axis
}

// Host is the render/physics side the runner drives. The runner never owns
// entities; it only asks for them to be replaced.
type Host interface {
	RespawnGuitar(pos, vel core.Vec)
	RespawnCoin(pos core.Vec)
	// NotifyCompleted fires once per finished run, before the state resets.
	NotifyCompleted(final GameState)
}

// LevelRunner owns the GameState and the rules for advancing it.
// It is not safe for concurrent use; the host calls it from its update loop.
type LevelRunner struct {
	rules  Rules
	placer Placer
	host   Host
	state  GameState
}

// NewLevelRunner creates a runner. Call Start before the first event.
func NewLevelRunner(rules Rules, placer Placer, host Host) *LevelRunner {
	return &LevelRunner{
		rules:  rules,
		placer: placer,
		host:   host,
	}
}

// Rules returns the ruleset in use.
func (r *LevelRunner) Rules() Rules {
	return r.rules
}

// State returns a copy of the current state.
func (r *LevelRunner) State() GameState {
	return r.state
}

// Start begins a fresh run on level 1.
func (r *LevelRunner) Start() {
	r.resetRun()
}

// Restore resumes a saved run. Out-of-range values are clamped and the
// guitar speed is derived from the level.
func (r *LevelRunner) Restore(s GameState) {
	level := core.Clamp(s.Level, 1, r.rules.LevelCount)
	r.state = GameState{
		Level:          level,
		CoinsCollected: core.Clamp(s.CoinsCollected, 0, r.rules.CatchTarget-1),
		TimeRemaining:  core.Clamp(s.TimeRemaining, 0, r.rules.LevelSeconds),
		GuitarSpeed:    r.rules.SpeedAt(level),
	}
	r.respawnBoth()
}

// OnCatchGuitar records a guitar catch and replaces the guitar. A catch that
// reaches the target respawns the guitar again at the new level's speed, so
// it draws from the placer twice.
func (r *LevelRunner) OnCatchGuitar() {
	r.state.CoinsCollected++
	r.respawnGuitar()
	r.checkTarget()
}

// OnCatchCoin records a coin pickup and replaces the coin.
func (r *LevelRunner) OnCatchCoin() {
	r.state.CoinsCollected++
	r.respawnCoin()
	r.checkTarget()
}

// OnSecondElapsed counts the level timer down. The tick that finds the
// timer already at zero advances the level.
func (r *LevelRunner) OnSecondElapsed() {
	if r.state.TimeRemaining > 0 {
		r.state.TimeRemaining--
		return
	}
	r.AdvanceLevel()
}

// AdvanceLevel moves to the next level, or completes the run on the last
// one and starts over from level 1.
func (r *LevelRunner) AdvanceLevel() {
	if r.state.Level >= r.rules.LevelCount {
		r.host.NotifyCompleted(r.state)
		r.resetRun()
		return
	}

	r.state.Level++
	r.state.CoinsCollected = 0
	r.state.TimeRemaining = r.rules.LevelSeconds
	r.state.GuitarSpeed += r.rules.SpeedStep
	r.respawnBoth()
}

func (r *LevelRunner) checkTarget() {
	if r.state.CoinsCollected >= r.rules.CatchTarget {
		r.AdvanceLevel()
	}
}

func (r *LevelRunner) resetRun() {
	r.state = GameState{
		Level:          1,
		CoinsCollected: 0,
		TimeRemaining:  r.rules.LevelSeconds,
		GuitarSpeed:    r.rules.BaseSpeed,
	}
	r.respawnBoth()
}

func (r *LevelRunner) respawnBoth() {
	r.respawnGuitar()
	r.respawnCoin()
}

func (r *LevelRunner) respawnGuitar() {
	pos := r.placer.Position()
	vel := r.placer.Velocity(r.state.GuitarSpeed)
	r.host.RespawnGuitar(pos, vel)
}

func (r *LevelRunner) respawnCoin() {
	r.host.RespawnCoin(r.placer.Position())
}
