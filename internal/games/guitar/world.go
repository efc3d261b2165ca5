package guitar

import (
	"math"

	"github.com/vovakirdan/guitar-chase/internal/config"
	"github.com/vovakirdan/guitar-chase/internal/core"
)

// entity is a sprite with a centered hitbox.
type entity struct {
	pos core.Vec
	vel core.Vec
	hw  int // hitbox half width
	hh  int // hitbox half height
}

func (e entity) box() core.Rect {
	return core.RectAround(e.pos, e.hw, e.hh)
}

func (e entity) overlaps(o entity) bool {
	return e.box().Intersects(o.box())
}

// world holds the three sprites and moves them.
type world struct {
	cfg    config.GuitarConfig
	bounds core.Bounds
	player entity
	guitar entity
	coin   entity
}

func newWorld(cfg config.GuitarConfig) world {
	w := world{
		cfg: cfg,
		bounds: core.Bounds{
			MinX: cfg.World.MinX,
			MinY: cfg.World.MinY,
			MaxX: cfg.World.MaxX,
			MaxY: cfg.World.MaxY,
		},
	}
	w.resetPlayer()
	return w
}

func (w *world) resetPlayer() {
	w.player = entity{
		pos: w.bounds.Clamp(core.V(float64(w.cfg.Player.StartX), float64(w.cfg.Player.StartY))),
		hw:  w.cfg.Player.HalfWidth,
		hh:  w.cfg.Player.HalfHeight,
	}
}

func (w *world) placeGuitar(pos, vel core.Vec) {
	w.guitar = entity{
		pos: w.bounds.Clamp(pos),
		vel: vel,
		hw:  w.cfg.Guitar.HalfWidth,
		hh:  w.cfg.Guitar.HalfHeight,
	}
}

func (w *world) placeCoin(pos core.Vec) {
	w.coin = entity{
		pos: w.bounds.Clamp(pos),
		hw:  w.cfg.Coin.HalfWidth,
		hh:  w.cfg.Coin.HalfHeight,
	}
}

// steerPlayer sets the player velocity from the held directions. Velocity is
// zeroed first; on conflicting keys the later direction in core.Directions wins.
func (w *world) steerPlayer(in core.InputFrame) {
	speed := w.cfg.Player.Speed
	w.player.vel = core.Vec{}
	for _, a := range core.Directions {
		if !in.Has(a) {
			continue
		}
		switch a {
		case core.ActionLeft:
			w.player.vel.X = -speed
		case core.ActionRight:
			w.player.vel.X = speed
		case core.ActionUp:
			w.player.vel.Y = -speed
		case core.ActionDown:
			w.player.vel.Y = speed
		}
	}
}

// move integrates one frame of dt seconds.
func (w *world) move(dt float64) {
	w.player.pos = w.bounds.Clamp(w.player.pos.Add(w.player.vel.Scale(dt)))
	w.guitar.pos = w.guitar.pos.Add(w.guitar.vel.Scale(dt))
	w.bounceGuitar()
}

// bounceGuitar keeps the guitar inside the bounds, reflecting the velocity
// component that hit a wall.
func (w *world) bounceGuitar() {
	g := &w.guitar
	k := w.cfg.Guitar.Bounce
	minX, maxX := float64(w.bounds.MinX), float64(w.bounds.MaxX)
	minY, maxY := float64(w.bounds.MinY), float64(w.bounds.MaxY)

	if g.pos.X < minX {
		g.pos.X = minX
		g.vel.X = math.Abs(g.vel.X) * k
	} else if g.pos.X > maxX {
		g.pos.X = maxX
		g.vel.X = -math.Abs(g.vel.X) * k
	}
	if g.pos.Y < minY {
		g.pos.Y = minY
		g.vel.Y = math.Abs(g.vel.Y) * k
	} else if g.pos.Y > maxY {
		g.pos.Y = maxY
		g.vel.Y = -math.Abs(g.vel.Y) * k
	}
}

// secondClock turns frame ticks into whole seconds.
type secondClock struct {
	ticks     int
	perSecond int
}

// advance counts one frame and reports whether a second has elapsed.
func (c *secondClock) advance() bool {
	c.ticks++
	if c.ticks >= c.perSecond {
		c.ticks = 0
		return true
	}
	return false
}
