package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultMatchesHardcoded(t *testing.T) {
	cfg, err := Parse(defaultGuitarYAML)
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded YAML and Default() disagree:\n%+v\n%+v", cfg, Default())
	}
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() should be valid: %v", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guitar.yaml")
	data := []byte("rules:\n  catch_target: 5\n  speed_step: 30\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Rules.CatchTarget != 5 || cfg.Rules.SpeedStep != 30 {
		t.Errorf("overrides not applied: %+v", cfg.Rules)
	}
	// Keys not named keep their defaults
	if cfg.Rules.LevelCount != 15 || cfg.World.MaxX != 750 {
		t.Errorf("defaults lost: %+v %+v", cfg.Rules, cfg.World)
	}
}

func TestLoadCustomPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with a missing custom path should fail")
	}
}

func TestLoadCustomPathMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("rules: [1, 2"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load() with malformed YAML should fail")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GuitarConfig)
	}{
		{"zero catch target", func(c *GuitarConfig) { c.Rules.CatchTarget = 0 }},
		{"zero level count", func(c *GuitarConfig) { c.Rules.LevelCount = 0 }},
		{"zero level seconds", func(c *GuitarConfig) { c.Rules.LevelSeconds = 0 }},
		{"zero base speed", func(c *GuitarConfig) { c.Rules.BaseSpeed = 0 }},
		{"negative speed step", func(c *GuitarConfig) { c.Rules.SpeedStep = -1 }},
		{"empty bounds", func(c *GuitarConfig) { c.World.MaxX = c.World.MinX - 1 }},
		{"bounds outside field", func(c *GuitarConfig) { c.World.MaxY = c.World.Height + 1 }},
		{"stopped player", func(c *GuitarConfig) { c.Player.Speed = 0 }},
		{"empty hitbox", func(c *GuitarConfig) { c.Coin.HalfWidth = 0 }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("Validate() should fail")
			}
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("error should wrap ErrInvalid: %v", err)
			}
		})
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Rules.BaseSpeed = 140

	data, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if back != cfg {
		t.Errorf("round trip changed config: %+v", back)
	}
}
