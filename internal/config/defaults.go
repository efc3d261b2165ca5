package config

import (
	_ "embed"
)

//go:embed defaults/guitar.yaml
var defaultGuitarYAML []byte

// Default returns the built-in configuration. It mirrors defaults/guitar.yaml.
func Default() GuitarConfig {
	return GuitarConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
			MinX:   50,
			MinY:   50,
			MaxX:   750,
			MaxY:   550,
		},
		Player: PlayerConfig{
			StartX:     100,
			StartY:     100,
			Speed:      200,
			HalfWidth:  16,
			HalfHeight: 16,
		},
		Guitar: GuitarBody{
			HalfWidth:  16,
			HalfHeight: 24,
			Bounce:     1.0,
		},
		Coin: CoinBody{
			HalfWidth:  12,
			HalfHeight: 12,
		},
		Rules: RulesConfig{
			CatchTarget:  10,
			LevelCount:   15,
			LevelSeconds: 180,
			BaseSpeed:    100,
			SpeedStep:    20,
		},
	}
}
