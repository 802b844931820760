package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/cricket-arcade/internal/audio"
	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
	"github.com/vovakirdan/cricket-arcade/internal/cricket"
)

// Shared by every subcommand, filled in by setup.
var (
	logger  *log.Logger
	logFile *os.File
	gameCfg config.CricketConfig
)

// defaultLogFile returns ~/.cricket/cricket.log, or "" (stderr) without a home.
func defaultLogFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cricket", "cricket.log")
}

// setup builds the logger and loads the configuration before any subcommand.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	logger = newLogger(flagLogFile, level)
	log.SetDefault(logger)

	cfg, source, err := config.LoadCricket(flagConfig)
	if err != nil {
		return err
	}
	if source == config.SourceBuiltin {
		logger.Warn("embedded config unreadable, using built-in defaults")
	}
	logger.Debug("config loaded", "source", source)

	if flagDifficulty != "" {
		if _, err := cfg.Difficulty(flagDifficulty); err != nil {
			return err
		}
	}
	gameCfg = cfg
	return nil
}

// newLogger writes to path, or to stderr when path is empty. A log file that
// cannot be opened silences logging rather than stopping the game.
func newLogger(path string, level log.Level) *log.Logger {
	var w io.Writer = os.Stderr
	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
			w = io.Discard
		} else {
			logFile = f
			w = f
		}
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cricket",
		Level:           level,
	})
}

func openLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
}

func closeLog() {
	if logFile != nil {
		logFile.Close() //nolint:errcheck
		logFile = nil
	}
}

// runtimeConfig returns the runtime settings for a surface of w x h.
func runtimeConfig(w, h int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  w,
		ScreenH:  h,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// newPlayer opens the sound device. Any failure degrades to silence; the
// returned close function is always safe to call.
func newPlayer() (core.Player, func()) {
	engine, err := audio.NewEngine(audio.Options{Muted: flagMute, Logger: logger})
	if err != nil {
		logger.Warn("audio disabled", "err", err)
		return core.NopPlayer{}, func() {}
	}
	if flagMute {
		return engine, func() {}
	}
	if err := engine.Init(); err != nil {
		logger.Warn("playing silently", "err", err, "no_device", errors.Is(err, audio.ErrUnavailable))
		return core.NopPlayer{}, func() {}
	}
	logger.Debug("audio ready", "rate", int(audio.SampleRate))
	return engine, engine.Close
}

// newGame builds a game from the loaded config and global flags.
func newGame(player core.Player) *cricket.Game {
	return cricket.New(cricket.Options{
		Config:     gameCfg,
		Difficulty: flagDifficulty,
		Audio:      player,
	})
}

// logMatch records the session outcome.
func logMatch(g *cricket.Game) {
	logger.Info("session over",
		"difficulty", g.Difficulty().Name,
		"score", g.Score(),
		"high_score", g.HighScore(),
	)
}
