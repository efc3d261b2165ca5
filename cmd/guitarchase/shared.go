package main

import (
	"fmt"
	"os"
	"os/user"

	"golang.org/x/term"

	"github.com/vovakirdan/guitar-chase/internal/config"
	"github.com/vovakirdan/guitar-chase/internal/core"
	"github.com/vovakirdan/guitar-chase/internal/games/guitar"
	"github.com/vovakirdan/guitar-chase/internal/platform/tui"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

// localSlot is the saved-run slot of terminal play.
const localSlot = "local"

// runtimeConfig builds the runtime config from the terminal size and global flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// gameFactory loads the game config once and returns a constructor for runs
// starting at startLevel (0 for level 1).
func gameFactory(startLevel int) (func() tui.Game, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if startLevel < 0 || startLevel > cfg.Rules.LevelCount {
		return nil, fmt.Errorf("level must be between 1 and %d", cfg.Rules.LevelCount)
	}
	return func() tui.Game {
		g := guitar.New(cfg)
		g.SetStartLevel(startLevel)
		return g
	}, nil
}

// openStore opens the database, or returns nil with a warning. The game
// still plays without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		return nil
	}
	return store
}

// playerName is the name recorded in the completion log.
func playerName() string {
	if name := os.Getenv("USER"); name != "" {
		return name
	}
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}
