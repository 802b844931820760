package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty levels",
	Long:  `Shows the difficulty table from the effective configuration, in menu cycling order.`,
	Run:   runDifficulties,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration the game would run with, as YAML.
Redirect it to ~/.cricket/configs/cricket.yaml to start customizing.`,
	Run: runConfig,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run:   runVersion,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	defer closeLog()

	def := gameCfg.DefaultDifficultyRow().Name
	fmt.Println("Difficulty levels:")
	fmt.Println()
	fmt.Printf("  %-8s  %10s  %11s  %8s\n", "Name", "Ball speed", "Spawn delay", "Accuracy")
	fmt.Printf("  %-8s  %10s  %11s  %8s\n", "----", "----------", "-----------", "--------")
	for _, d := range gameCfg.Difficulties {
		marker := ""
		if d.Name == def {
			marker = "  (default)"
		}
		fmt.Printf("  %-8s  %10.1f  %11d  %8.1f%s\n", d.Name, d.BallSpeed, d.SpawnDelay, d.Accuracy, marker)
	}
	fmt.Println()
	fmt.Println("Run 'cricket play --difficulty <name>' to start at a level.")
}

func runConfig(_ *cobra.Command, _ []string) {
	defer closeLog()

	out, err := yaml.Marshal(gameCfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(out) //nolint:errcheck
}

func runVersion(_ *cobra.Command, _ []string) {
	defer closeLog()

	v := version
	if info, ok := debug.ReadBuildInfo(); ok && v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}
	fmt.Printf("cricket %s (%s, %s/%s)\n", v, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
