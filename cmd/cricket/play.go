package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cricket-arcade/internal/platform/tui"
)

// Smallest terminal the field stays readable in.
const (
	minTermWidth  = 60
	minTermHeight = 20
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a match in the terminal.

Controls:
  A/D or Left/Right  - Move batsman
  Space              - Power shot
  S                  - Defensive shot
  Up/Down, Enter     - Menu navigation
  P                  - Pause
  R                  - Restart (after game over)
  Esc/M              - Back to menu
  Ctrl+S             - Save a text screenshot
  Q/Ctrl+C           - Quit

Examples:
  cricket play
  cricket play --difficulty hard
  cricket play --fps 30 --mute
  cricket play --config ./my-cricket.yaml`,
	Run: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	defer closeLog()

	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		fmt.Fprintln(os.Stderr, "Error: stdout is not a terminal; try 'cricket window'")
		os.Exit(1)
	}
	width, height, err := term.GetSize(fd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not read terminal size: %v\n", err)
		os.Exit(1)
	}
	if width < minTermWidth || height < minTermHeight {
		fmt.Fprintf(os.Stderr, "Error: terminal is %dx%d, need at least %dx%d\n",
			width, height, minTermWidth, minTermHeight)
		os.Exit(1)
	}

	player, closeAudio := newPlayer()
	defer closeAudio()

	game := newGame(player)
	logger.Info("starting", "frontend", "terminal", "size", fmt.Sprintf("%dx%d", width, height))

	runErr := tui.Run(game, runtimeConfig(width, height), tui.Options{
		Logger:        logger,
		ScreenshotDir: tui.DefaultScreenshotDir(),
	})
	logMatch(game)
	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeAudio()
		closeLog()
		os.Exit(1)
	}
}
