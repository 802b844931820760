package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDifficulty is returned when a difficulty name is not in the table.
var ErrUnknownDifficulty = errors.New("unknown difficulty")

// Difficulty looks up a row of the difficulty table by name, ignoring case.
func (c CricketConfig) Difficulty(name string) (Difficulty, error) {
	for _, d := range c.Difficulties {
		if normalize(d.Name) == normalize(name) {
			return d, nil
		}
	}
	return Difficulty{}, fmt.Errorf("config: %w %q (choose from %s)",
		ErrUnknownDifficulty, name, strings.Join(c.DifficultyNames(), ", "))
}

// DefaultDifficultyRow returns the configured default difficulty, or the first
// row of the table when the default is missing.
func (c CricketConfig) DefaultDifficultyRow() Difficulty {
	if d, err := c.Difficulty(c.DefaultDifficulty); err == nil {
		return d
	}
	if len(c.Difficulties) > 0 {
		return c.Difficulties[0]
	}
	return DefaultCricketConfig().Difficulties[1]
}

// NextDifficulty returns the row after name in table order, wrapping around.
// Unknown names fall back to the default row.
func (c CricketConfig) NextDifficulty(name string) Difficulty {
	for i, d := range c.Difficulties {
		if normalize(d.Name) == normalize(name) {
			return c.Difficulties[(i+1)%len(c.Difficulties)]
		}
	}
	return c.DefaultDifficultyRow()
}

// DifficultyNames returns the table's names in cycling order.
func (c CricketConfig) DifficultyNames() []string {
	names := make([]string, len(c.Difficulties))
	for i, d := range c.Difficulties {
		names[i] = d.Name
	}
	return names
}

func normalize(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
