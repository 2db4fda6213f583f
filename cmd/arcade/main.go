// arcade is a single-controller LCD arcade console emulated in the terminal.
//
// Usage:
//
//	arcade run               - Start the console menu (alias: menu)
//	arcade play <game>       - Play one session of a game
//	arcade list              - List the menu entries and their score slots
//	arcade scores [game]     - Show stored best scores and session history
//
// Global flags:
//
//	--config <path>     - Console configuration YAML
//	--db <path>         - Score database (default: ~/.arcade/scores.db)
//	--seed <value>      - RNG seed for reproducible sessions
//	--log-file <path>   - Log destination (default: ~/.arcade/arcade.log)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/lcd-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/lcd-arcade/internal/games/pong"
	_ "github.com/vovakirdan/lcd-arcade/internal/games/snake"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "LCD Arcade - a joystick console on a 16x2 character display",
	Long: `LCD Arcade emulates a small arcade console: a 16x2 character LCD,
an analog stick with one button and a buzzer. The menu picks between
Flappy Bird, Snake and Pong; best scores are kept per game.

Available commands:
  run      - Start the console menu
  play     - Play one session of a game
  list     - Show the menu entries
  scores   - View best scores and session history

Examples:
  arcade run
  arcade play snake --seed 42
  arcade scores pong
  arcade scores --clear`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to console config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file (empty disables logging)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(scoresCmd)
}
