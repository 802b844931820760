package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cricket-arcade/internal/core"
	"github.com/vovakirdan/cricket-arcade/internal/cricket"
	"github.com/vovakirdan/cricket-arcade/internal/platform/tui"
)

var (
	flagShotDir    string
	flagShotWidth  int
	flagShotHeight int
)

var screenshotsCmd = &cobra.Command{
	Use:   "screenshots",
	Short: "Render the canned scenes to text files",
	Long: `Render the main menu, gameplay, a boundary celebration, a milestone
celebration and the game over screen without a terminal, one text file each.

Examples:
  cricket screenshots
  cricket screenshots --out ./shots --width 120 --height 40`,
	Run: runScreenshots,
}

func init() {
	screenshotsCmd.Flags().StringVar(&flagShotDir, "out", "screenshots", "Output directory")
	screenshotsCmd.Flags().IntVar(&flagShotWidth, "width", core.DefaultConfig().ScreenW, "Screen width in cells")
	screenshotsCmd.Flags().IntVar(&flagShotHeight, "height", core.DefaultConfig().ScreenH, "Screen height in cells")
}

func runScreenshots(_ *cobra.Command, _ []string) {
	defer closeLog()

	paths, err := captureScenes(flagShotDir, flagShotWidth, flagShotHeight)
	for _, p := range paths {
		fmt.Println("saved", p)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// captureScenes renders every canned scene on a fresh game and writes it to
// dir. It returns the files written so far.
func captureScenes(dir string, width, height int) ([]string, error) {
	seed := flagSeed
	if seed == 0 {
		seed = 1
	}
	cfg := runtimeConfig(width, height)
	cfg.Seed = seed

	var paths []string
	for _, scene := range cricket.Scenes {
		game := newGame(core.NopPlayer{})
		game.Reset(cfg)
		if err := game.Stage(scene); err != nil {
			return paths, err
		}

		screen := core.NewScreen(width, height)
		game.Render(screen)
		path, err := tui.SaveScreenshot(dir, scene, screen)
		if err != nil {
			return paths, err
		}
		logger.Debug("screenshot", "scene", scene, "path", path)
		paths = append(paths, path)
	}
	return paths, nil
}
