package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

var (
	flagClear  bool
	flagBrowse bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [game]",
	Short: "Show best scores and session history",
	Long: `Display each game's stored best score, or the top 10 sessions of one game.

Examples:
  arcade scores
  arcade scores snake
  arcade scores --browse
  arcade scores pong --clear
  arcade scores --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Reset best scores and delete history (one game, or all)")
	scoresCmd.Flags().BoolVar(&flagBrowse, "browse", false, "Browse scores interactively")
}

func runScores(cmd *cobra.Command, args []string) error {
	var info registry.GameInfo
	if len(args) == 1 {
		var ok bool
		if info, ok = registry.Lookup(args[0]); !ok {
			return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", args[0])
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	switch {
	case flagClear && info.ID != "":
		if err := store.ClearGame(info.ID, info.Slot); err != nil {
			return err
		}
		fmt.Fprintf(out, "Cleared scores for %s.\n", info.Title)
		return nil

	case flagClear:
		if err := store.ClearAll(); err != nil {
			return err
		}
		fmt.Fprintln(out, "Cleared all scores.")
		return nil

	case flagBrowse:
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		return tui.RunScoreboard(store, width, height)

	case info.ID != "":
		return printGameScores(out, store, info)

	default:
		return printSummary(out, store)
	}
}

// printSummary lists every game's stored best and session count.
func printSummary(out io.Writer, store *storage.Store) error {
	fmt.Fprintf(out, "  %-12s  %-4s  %-8s  %s\n", "Game", "Best", "Sessions", "Last played")
	fmt.Fprintf(out, "  %-12s  %-4s  %-8s  %s\n", "----", "----", "--------", "-----------")

	for _, g := range registry.List() {
		best, err := store.ReadSlot(g.Slot)
		if err != nil {
			return err
		}
		stats, err := store.Stats(g.ID)
		if err != nil {
			return err
		}

		last := "-"
		if !stats.LastPlayed.IsZero() {
			last = stats.LastPlayed.Local().Format("2006-01-02 15:04")
		}
		fmt.Fprintf(out, "  %-12s  %-4d  %-8d  %s\n", g.Title, best, stats.GamesCount, last)
	}
	return nil
}

// printGameScores lists the top sessions of one game.
func printGameScores(out io.Writer, store *storage.Store, info registry.GameInfo) error {
	best, err := store.ReadSlot(info.Slot)
	if err != nil {
		return err
	}
	sessions, err := store.TopSessions(info.ID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", info.Title)

	if len(sessions) == 0 {
		fmt.Fprintln(out, "No sessions recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'arcade play %s' to set the first high score!\n", info.ID)
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Fprintf(out, "  %-4s  %-10s  %s\n", "----", "-----", "----")

	for i, entry := range sessions {
		dateStr := entry.CreatedAt.Local().Format("2006-01-02 15:04")
		fmt.Fprintf(out, "  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Best: %d\n", best)
	return nil
}
