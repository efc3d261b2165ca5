package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guitar-chase/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game configuration",
	Long: `Print the game configuration as YAML after applying the search order:
--config, ~/.guitarchase/configs/guitar.yaml, ./configs/guitar.yaml, built-in defaults.

Save the output to one of those paths to customise the game.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
