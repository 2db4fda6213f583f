package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Show the console's game menu",
	Long: `Prints the menu in the order the stick cycles through it. Each entry
names the id accepted by 'arcade play' and the store slot its best score lives in.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printMenu(cmd.OutOrStdout(), registry.List())
	},
}

func printMenu(out io.Writer, games []registry.GameInfo) {
	if len(games) == 0 {
		fmt.Fprintln(out, "The console has no games installed.")
		return
	}

	idWidth := len("id")
	for _, g := range games {
		idWidth = max(idWidth, len(g.ID))
	}

	fmt.Fprintf(out, "  %-4s  %-*s  %s\n", "slot", idWidth, "id", "menu entry")
	for _, g := range games {
		fmt.Fprintf(out, "  %-4d  %-*s  %s\n", g.Slot, idWidth, g.ID, g.Title)
	}
	fmt.Fprintf(out, "\n%d games. 'arcade play <id>' starts one directly.\n", len(games))
}
