package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/guitar-chase/internal/platform/tui"
	"github.com/vovakirdan/guitar-chase/internal/storage"
)

var flagHistoryLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show completed runs",
	Long: `List every run that cleared all 15 levels, newest first.

On a terminal the list opens as an interactive table; piped output is plain text.

Examples:
  guitarchase history
  guitarchase history --limit 5 | cat`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of runs to print in plain mode")
}

func runHistory(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	if term.IsTerminal(int(os.Stdout.Fd())) {
		cfg := runtimeConfig()
		return tui.RunHistory(store, cfg.ScreenW, cfg.ScreenH)
	}

	entries, err := store.Completions(flagHistoryLimit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No completed runs yet.")
		return nil
	}

	fmt.Printf("  %-16s  %-8s  %s\n", "Player", "Time", "Date")
	fmt.Printf("  %-16s  %-8s  %s\n", "------", "----", "----")
	for _, e := range entries {
		fmt.Printf("  %-16s  %-8s  %s\n", e.Player, tui.FormatDuration(e.DurationSecs), e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
