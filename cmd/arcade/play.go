package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play one session of a game",
	Long: `Play a single session of the specified game without the menu.
The best score is updated exactly as it is from the menu.

Examples:
  arcade play flappy
  arcade play snake --seed 42
  arcade play pong --config ./my-arcade.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}
	if err := requireTerminal("play"); err != nil {
		return err
	}

	h, err := newHost()
	if err != nil {
		return err
	}
	defer h.Close()

	info, _ := registry.Lookup(gameID)
	return tui.Run(cmd.Context(), h.lcd, h.joy, info.Title, func(context.Context) error {
		h.sched.Boot()
		res, err := h.sched.Play(gameID)
		if err != nil {
			return err
		}
		h.log.Info("single session finished", "game", res.GameID, "score", res.Score, "new_best", res.NewBest)
		return nil
	})
}
