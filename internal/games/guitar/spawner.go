package guitar

import (
	"math/rand"

	"github.com/vovakirdan/guitar-chase/internal/core"
)

// Placer picks respawn coordinates. Implementations decide the randomness.
type Placer interface {
	// Position returns a point inside the world bounds.
	Position() core.Vec
	// Velocity returns a velocity with each axis in [-speed, speed].
	Velocity(speed int) core.Vec
}

// Spawner is the seeded Placer used by the game. Coordinates are uniform
// integers over the inclusive bounds.
type Spawner struct {
	rng    *rand.Rand
	bounds core.Bounds
}

// NewSpawner creates a spawner over bounds seeded with seed.
func NewSpawner(seed int64, bounds core.Bounds) *Spawner {
	return &Spawner{
		rng:    rand.New(rand.NewSource(seed)),
		bounds: bounds,
	}
}

// Reseed restarts the random sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng.Seed(seed)
}

// Position implements Placer.
func (s *Spawner) Position() core.Vec {
	return core.V(
		float64(s.between(s.bounds.MinX, s.bounds.MaxX)),
		float64(s.between(s.bounds.MinY, s.bounds.MaxY)),
	)
}

// Velocity implements Placer.
func (s *Spawner) Velocity(speed int) core.Vec {
	if speed < 0 {
		speed = -speed
	}
	return core.V(
		float64(s.between(-speed, speed)),
		float64(s.between(-speed, speed)),
	)
}

// between returns a uniform integer in [lo, hi].
func (s *Spawner) between(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
