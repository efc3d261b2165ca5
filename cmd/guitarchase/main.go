// guitarchase is a terminal arcade game: chase the bouncing guitar, grab the
// coins, and clear all 15 levels before the clock runs out.
//
// Usage:
//
//	guitarchase              - Start menu (new run, continue, history)
//	guitarchase play         - Jump straight into a run
//	guitarchase history      - Show completed runs
//	guitarchase config       - Print the effective game configuration
//	guitarchase serve        - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--db <path>        - Set database path (default: ~/.guitarchase/guitarchase.db)
//	--config <path>    - Use a custom game config YAML
//	--log-file <path>  - Write logs to a file
//	--debug            - Enable debug logging
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guitar-chase/internal/platform/tui"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagConfig  string
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "guitarchase",
	Short: "Guitar Chase - catch the guitar in your terminal",
	Long: `Guitar Chase is a terminal arcade game. Steer your player into the
bouncing guitar and the coin. Ten catches clear a level; when the clock runs
out you move on to the next level. Clear level 15 to complete the run.

Without a subcommand a start menu offers a new run, the saved run, and the
list of completed runs.

Controls:
  Arrows/WASD/HJKL  - Move
  P/Esc             - Pause
  Enter/Space       - Confirm
  R                 - Restart the run
  Q/Ctrl+C          - Save and leave

Examples:
  guitarchase
  guitarchase play --resume
  guitarchase play --level 10 --seed 7
  guitarchase serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runSession,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.guitarchase/guitarchase.db", "Path to saved runs database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(serveCmd)
}

func runSession(_ *cobra.Command, _ []string) error {
	newGame, err := gameFactory(0)
	if err != nil {
		return err
	}

	logger, closer, err := tui.OpenLogFile(flagLogFile, "guitarchase", flagDebug)
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	return tui.RunSession(tui.SessionConfig{
		Runtime: runtimeConfig(),
		Store:   store,
		Logger:  logger,
		Player:  playerName(),
		Slot:    localSlot,
		NewGame: newGame,
	})
}
