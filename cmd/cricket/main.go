// cricket is an arcade batting game for the terminal and the desktop.
//
// Usage:
//
//	cricket                      - Play in the terminal (same as "play")
//	cricket play                 - Play in the terminal
//	cricket window               - Play in a desktop window
//	cricket difficulties         - List difficulty levels
//	cricket screenshots          - Render the canned scenes to text files
//	cricket config               - Print the effective configuration
//	cricket version              - Print version information
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom cricket.yaml
//	--difficulty <name>   - Starting difficulty (easy, medium, hard)
//	--mute                - Disable sound
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log destination (default: ~/.cricket/cricket.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "cricket",
	Short: "Cricket Arcade - bat against an automated bowler",
	Long: `Cricket Arcade is a real-time batting game. Move the batsman along the
crease, time your shots against the bowler and score runs past the fielders.
Three wickets and the match is over.

Available commands:
  play          - Play in the terminal (default)
  window        - Play in a desktop window
  difficulties  - Show the difficulty table
  screenshots   - Render the canned scenes to text files
  config        - Print the effective configuration
  version       - Print version information

Examples:
  cricket
  cricket play --difficulty hard
  cricket window --scale 0.8
  cricket --seed 42 --mute
  cricket screenshots --out ./shots`,
	PersistentPreRunE: setup,
	Run:               runPlay,
	SilenceUsage:      true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom cricket config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Starting difficulty: easy, medium, hard")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", defaultLogFile(), "Log file path")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(difficultiesCmd)
	rootCmd.AddCommand(screenshotsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
