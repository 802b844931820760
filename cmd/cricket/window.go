package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cricket-arcade/internal/core"
	"github.com/vovakirdan/cricket-arcade/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open a 1000x700 window and start at the main menu.

Movement and shot keys are read as held keys, so the batsman moves
for as long as A/D or the arrow keys are down.

Examples:
  cricket window
  cricket window --scale 0.75
  cricket window --difficulty easy --mute`,
	Run: runWindow,
}

func init() {
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Initial window scale")
}

func runWindow(_ *cobra.Command, _ []string) {
	defer closeLog()

	player, closeAudio := newPlayer()
	defer closeAudio()

	game := newGame(player)
	logger.Info("starting", "frontend", "window", "scale", flagScale)

	runErr := window.Run(game, runtimeConfig(core.WorldWidth, core.WorldHeight), window.Options{
		Logger: logger,
		Scale:  flagScale,
	})
	logMatch(game)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		closeAudio()
		closeLog()
		os.Exit(1)
	}
}
