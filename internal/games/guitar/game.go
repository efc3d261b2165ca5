// Package guitar implements Guitar Chase: the player chases a bouncing guitar
// and picks up coins, ten catches per level, fifteen levels against the clock.
package guitar

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/guitar-chase/internal/config"
	"github.com/vovakirdan/guitar-chase/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '@'
	GuitarChar = '♫'
	CoinChar   = '$'
)

// CompletedMessage is shown when the last level is cleared.
const CompletedMessage = "Congratulations, you've completed all levels!"

// Minimum terminal size for a playable field.
const (
	minScreenW = 24
	minScreenH = 8
)

// Game implements the Guitar Chase game logic. It is the Host of its
// LevelRunner: the runner decides when sprites respawn, the game moves them.
type Game struct {
	cfg     config.GuitarConfig
	runner  *LevelRunner
	spawner *Spawner
	world   world
	clock   secondClock
	rcfg    core.RuntimeConfig

	tick        uint64
	paused      bool
	completed   bool // completion message is up; simulation is suspended
	completions int  // runs finished since Reset
	startLevel  int  // applied on the next Reset, then cleared
	events      []core.Event
}

// New creates a game with the given configuration. cfg should be validated.
func New(cfg config.GuitarConfig) *Game {
	g := &Game{cfg: cfg}
	g.world = newWorld(cfg)
	g.spawner = NewSpawner(0, g.world.bounds)
	g.runner = NewLevelRunner(RulesFrom(cfg.Rules), g.spawner, g)
	return g
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "guitar"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Guitar Chase"
}

// SetStartLevel makes the next Reset begin at level instead of level 1.
func (g *Game) SetStartLevel(level int) {
	g.startLevel = level
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	g.rcfg = cfg
	g.tick = 0
	g.paused = false
	g.completed = false
	g.completions = 0
	g.events = nil
	g.clock = secondClock{perSecond: cfg.TickRate}
	g.spawner.Reseed(cfg.Seed)
	g.world.resetPlayer()
	g.runner.Start()

	if g.startLevel > 1 {
		rules := g.runner.Rules()
		g.runner.Restore(GameState{Level: g.startLevel, TimeRemaining: rules.LevelSeconds})
		g.startLevel = 0
	}
}

// Resize adapts to a new screen size without disturbing the run.
func (g *Game) Resize(w, h int) {
	g.rcfg.ScreenW = w
	g.rcfg.ScreenH = h
}

// Step advances the game by one frame.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if g.completed {
		if in.Has(core.ActionConfirm) {
			g.completed = false
		}
		return g.result()
	}

	if in.Has(core.ActionRestart) {
		g.world.resetPlayer()
		g.clock.ticks = 0
		g.paused = false
		g.runner.Start()
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.tick++
	g.world.steerPlayer(in)
	g.world.move(1.0 / float64(g.clock.perSecond))

	if g.world.player.overlaps(g.world.guitar) {
		g.observe(core.EventGuitarCaught, g.runner.OnCatchGuitar)
	}
	// A completed run stops the frame; the message blocks like a modal.
	if !g.completed && g.world.player.overlaps(g.world.coin) {
		g.observe(core.EventCoinCaught, g.runner.OnCatchCoin)
	}
	if !g.completed && g.runner.State().TimeRemaining <= 0 {
		g.observe(0, g.runner.AdvanceLevel)
	}
	if !g.completed && g.clock.advance() {
		g.observe(0, g.runner.OnSecondElapsed)
	}

	return g.result()
}

// observe runs a runner callback and records what it caused. NotifyCompleted
// records its own event.
func (g *Game) observe(kind core.EventKind, fn func()) {
	level := g.runner.State().Level
	done := g.completions

	fn()

	if kind != 0 {
		g.emit(kind, level)
	}
	if g.completions == done && g.runner.State().Level != level {
		g.emit(core.EventLevelAdvanced, g.runner.State().Level)
	}
}

func (g *Game) emit(kind core.EventKind, level int) {
	g.events = append(g.events, core.Event{Kind: kind, Level: level})
}

func (g *Game) result() core.StepResult {
	var events []core.Event
	if len(g.events) > 0 {
		events = append(events, g.events...)
	}
	return core.StepResult{State: g.State(), Events: events}
}

// RespawnGuitar implements Host.
func (g *Game) RespawnGuitar(pos, vel core.Vec) {
	g.world.placeGuitar(pos, vel)
}

// RespawnCoin implements Host.
func (g *Game) RespawnCoin(pos core.Vec) {
	g.world.placeCoin(pos)
}

// NotifyCompleted implements Host. It raises the completion message, which
// suspends the game until acknowledged.
func (g *Game) NotifyCompleted(final GameState) {
	g.completed = true
	g.completions++
	g.emit(core.EventRunCompleted, final.Level)
}

// State returns the platform summary of the game.
func (g *Game) State() core.GameState {
	s := g.runner.State()
	return core.GameState{
		Level:     s.Level,
		Coins:     s.CoinsCollected,
		TimeLeft:  s.TimeRemaining,
		Speed:     s.GuitarSpeed,
		Paused:    g.paused,
		Completed: g.completed,
	}
}

// Checkpoint returns the state needed to resume the run later.
func (g *Game) Checkpoint() core.GameState {
	return g.State()
}

// Resume continues a checkpointed run. Call after Reset.
func (g *Game) Resume(s core.GameState) {
	g.world.resetPlayer()
	g.paused = false
	g.completed = false
	g.runner.Restore(GameState{
		Level:          s.Level,
		CoinsCollected: s.Coins,
		TimeRemaining:  s.TimeLeft,
		GuitarSpeed:    s.Speed,
	})
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	w, h := dst.Width(), dst.Height()

	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Terminal too small")
		return
	}

	s := g.runner.State()
	hud := fmt.Sprintf(" Coins: %d  Time: %d  Level: %d/%d ", s.CoinsCollected, s.TimeRemaining, s.Level, g.runner.Rules().LevelCount)
	dst.DrawText(1, 0, hud)

	field := core.NewRect(0, 1, w, h-1)
	dst.DrawBox(field, core.ColorGray)

	g.drawEntity(dst, field, g.world.coin, CoinChar, core.ColorYellow)
	g.drawEntity(dst, field, g.world.guitar, GuitarChar, core.ColorMagenta)
	g.drawEntity(dst, field, g.world.player, PlayerChar, core.ColorCyan)

	switch {
	case g.completed:
		g.drawCenteredMessage(dst, CompletedMessage, "Press Enter to play again")
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// drawEntity projects a world position into the inside of field.
func (g *Game) drawEntity(dst *core.Screen, field core.Rect, e entity, r rune, c core.Color) {
	x, y := g.project(field, e.pos)
	dst.SetColor(x, y, r, c)
}

func (g *Game) project(field core.Rect, p core.Vec) (int, int) {
	innerW := field.W - 2
	innerH := field.H - 2
	x := field.X + 1 + int(p.X*float64(innerW)/float64(g.cfg.World.Width))
	y := field.Y + 1 + int(p.Y*float64(innerH)/float64(g.cfg.World.Height))
	x = core.Clamp(x, field.X+1, field.Right()-2)
	y = core.Clamp(y, field.Y+1, field.Bottom()-2)
	return x, y
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleW := utf8.RuneCountInString(title)
	subtitleW := utf8.RuneCountInString(subtitle)
	boxW := min(max(titleW, subtitleW)+4, w)
	boxH := 5
	box := core.NewRect((w-boxW)/2, (h-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColor(box.X+(boxW-titleW)/2, box.Y+1, title, core.ColorYellow)
	dst.DrawText(box.X+(boxW-subtitleW)/2, box.Y+3, subtitle)
}
