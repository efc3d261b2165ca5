package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guitar-chase/internal/platform/tui"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

var (
	flagResume bool
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run without the menu",
	Long: `Start playing right away.

Quitting saves the run; --resume continues it. A completed run clears the
save and is added to the history.

Examples:
  guitarchase play
  guitarchase play --resume
  guitarchase play --level 12
  guitarchase play --config ./my-guitar.yaml --log-file ./guitar.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagResume, "resume", false, "Continue the saved run")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Start at this level")
}

func runPlay(_ *cobra.Command, _ []string) error {
	if flagResume && flagLevel != 0 {
		return errors.New("--resume and --level cannot be combined")
	}

	newGame, err := gameFactory(flagLevel)
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

	var resume *storage.RunRecord
	if flagResume {
		if store == nil {
			return errors.New("cannot resume without a database")
		}
		resume, err = store.LoadRun(localSlot)
		if err != nil {
			return err
		}
		if resume == nil {
			return errors.New("no saved run to resume")
		}
	}

	return tui.Run(newGame(), runtimeConfig(), tui.Options{
		Store:  store,
		Logger: logger,
		Player: playerName(),
		Slot:   localSlot,
		Resume: resume,
	})
}
