package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name looked up in the config directories.
const ConfigFile = "cricket.yaml"

// Sources reported by LoadCricket when no file was found.
const (
	SourceEmbedded = "embedded"
	SourceBuiltin  = "builtin"
)

// LoadCricket loads the cricket configuration and reports where it came from.
// Search order: customPath -> ~/.cricket/configs/cricket.yaml ->
// ./configs/cricket.yaml -> embedded default -> DefaultCricketConfig.
//
// Files are decoded over the defaults, so a partial file only overrides the
// keys it names. An explicit customPath must exist and be valid; files found by
// searching are skipped when broken.
func LoadCricket(customPath string) (CricketConfig, string, error) {
	if customPath != "" {
		cfg, err := readFile(customPath)
		if err != nil {
			return cfg, customPath, err
		}
		return cfg, customPath, nil
	}

	for _, path := range searchPaths() {
		if cfg, err := readFile(path); err == nil {
			return cfg, path, nil
		}
	}

	cfg, err := decode(defaultCricketYAML)
	if err != nil {
		return DefaultCricketConfig(), SourceBuiltin, nil // Fallback to hardcoded if embed fails
	}
	return cfg, SourceEmbedded, nil
}

func readFile(path string) (CricketConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CricketConfig{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg, err := decode(data)
	if err != nil {
		return CricketConfig{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// decode parses YAML over the built-in defaults and validates the result.
func decode(data []byte) (CricketConfig, error) {
	cfg := DefaultCricketConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if p := userConfigPath(ConfigFile); p != "" {
		paths = append(paths, p)
	}
	return append(paths, filepath.Join("configs", ConfigFile))
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cricket", "configs", filename)
}

// Validate checks that the configuration can drive a match.
func (c CricketConfig) Validate() error {
	var errs []error
	check := func(ok bool, msg string) {
		if !ok {
			errs = append(errs, errors.New(msg))
		}
	}

	check(c.Field.BoundaryRadius > 0, "field.boundary_radius must be positive")
	check(c.Field.PitchWidth > c.Batsman.Width, "field.pitch_width must exceed batsman.width")
	check(c.Ball.Radius > 0, "ball.radius must be positive")
	check(c.Ball.TrailLength >= 0, "ball.trail_length must not be negative")
	check(c.Ball.PowerUpChance >= 0 && c.Ball.PowerUpChance <= 1, "ball.powerup_chance must be within [0, 1]")
	check(c.Ball.CurvePeriod > 0, "ball.curve_period must be positive")
	check(c.Batsman.SwingTicks > 0, "batsman.swing_ticks must be positive")
	check(c.Batsman.BatWidth >= 2 && c.Batsman.SwingBatWidth >= 2, "bat widths must be at least 2")
	check(c.Fielders.Speed > 0, "fielders.speed must be positive")
	check(c.Fielders.SnapDistance >= c.Fielders.Speed, "fielders.snap_distance must be at least fielders.speed")
	check(c.Scoring.Outs > 0, "scoring.outs must be positive")
	check(c.Scoring.CelebrationTicks > 0, "scoring.celebration_ticks must be positive")

	for i := 1; i < len(c.Scoring.Milestones); i++ {
		check(c.Scoring.Milestones[i].Score > c.Scoring.Milestones[i-1].Score,
			"scoring.milestones must be in ascending order")
	}
	for i := 1; i < len(c.Scoring.Combo); i++ {
		check(c.Scoring.Combo[i].Streak < c.Scoring.Combo[i-1].Streak,
			"scoring.combo must list the highest streak first")
	}

	check(len(c.Difficulties) > 0, "difficulties must not be empty")
	seen := make(map[string]bool, len(c.Difficulties))
	for _, d := range c.Difficulties {
		check(d.Name != "", "difficulty name must not be empty")
		check(!seen[normalize(d.Name)], fmt.Sprintf("duplicate difficulty %q", d.Name))
		check(d.SpawnDelay > 0, fmt.Sprintf("difficulty %q: spawn_delay must be positive", d.Name))
		check(d.BallSpeed > 0, fmt.Sprintf("difficulty %q: ball_speed must be positive", d.Name))
		seen[normalize(d.Name)] = true
	}
	if len(c.Difficulties) > 0 {
		_, err := c.Difficulty(c.DefaultDifficulty)
		check(err == nil, fmt.Sprintf("default_difficulty %q is not in the table", c.DefaultDifficulty))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid: %w", err)
	}
	return nil
}
