package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
)

var runCmd = &cobra.Command{
	Use:     "run",
	Aliases: []string{"menu"},
	Short:   "Start the console menu",
	Long: `Power on the console and show the game menu.

Controls:
  Up/Down (w/s)     - Move the stick vertically
  Left/Right (a/d)  - Move the stick horizontally
  Space/Enter       - Button (start the selected game)
  Q/Esc/Ctrl+C      - Quit

In the menu, pushing the stick up selects the next game and down the
previous one; the button starts the selected game.

Examples:
  arcade run
  arcade run --config ./my-arcade.yaml`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func runConsole(cmd *cobra.Command, args []string) error {
	if err := requireTerminal("run"); err != nil {
		return err
	}

	h, err := newHost()
	if err != nil {
		return err
	}
	defer h.Close()

	h.log.Info("console started")
	err = tui.Run(cmd.Context(), h.lcd, h.joy, "LCD ARCADE", func(ctx context.Context) error {
		return h.sched.Run(ctx)
	})
	h.log.Info("console stopped", "err", err)
	return err
}
