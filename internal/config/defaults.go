package config

import (
	_ "embed"
)

//go:embed defaults/cricket.yaml
var defaultCricketYAML []byte

// DefaultCricketConfig returns the built-in configuration. It matches the
// embedded defaults/cricket.yaml and is used when even that fails to parse.
func DefaultCricketConfig() CricketConfig {
	return CricketConfig{
		Field: FieldConfig{
			BoundaryRadius: 300,
			PitchWidth:     200,
			PitchLength:    400,
			WicketLine:     180,
			SixLine:        200,
		},
		Ball: BallConfig{
			Radius:         6,
			TrailLength:    10,
			ReleaseOffset:  180,
			ReleaseJitter:  20,
			Drift:          1,
			WallDamping:    0.8,
			PowerUpChance:  0.1,
			FastMultiplier: 1.5,
			SlowMultiplier: 0.7,
			CurveStrength:  0.1,
			CurvePeriod:    6,
		},
		Batsman: BatsmanConfig{
			Width:          30,
			Height:         50,
			Speed:          6,
			CreaseOffset:   160,
			SwingTicks:     20,
			SwingBatWidth:  35,
			BatWidth:       25,
			BatHeight:      10,
			SwingPower:     8,
			DefensivePower: 4,
			ReadyPower:     6,
			Placement:      5,
		},
		Fielders: FieldersConfig{
			Speed:        2,
			SnapDistance: 5,
			Positions: []FielderPosition{
				{Name: "Mid-off", DX: -150, DY: -100},
				{Name: "Mid-on", DX: 150, DY: -100},
				{Name: "Square leg", DX: -200, DY: 0},
				{Name: "Point", DX: 200, DY: 0},
				{Name: "Fine leg", DX: -100, DY: 100},
				{Name: "Third man", DX: 100, DY: 100},
				{Name: "Long-off", DX: 0, DY: -250},
				{Name: "Long-on", DX: 0, DY: 250},
			},
		},
		Scoring: ScoringConfig{
			Outs:         3,
			BoundaryRuns: 4,
			SixRuns:      6,
			SwingRuns:    2,
			TouchRuns:    1,
			Combo: []ComboTier{
				{Streak: 5, Multiplier: 3},
				{Streak: 3, Multiplier: 2},
			},
			Milestones: []Milestone{
				{Score: 50, Name: "fifty"},
				{Score: 100, Name: "century"},
				{Score: 150, Name: "one_fifty"},
			},
			CelebrationTicks: 180,
		},
		Difficulties: []Difficulty{
			{Name: "Easy", BallSpeed: 3, SpawnDelay: 180, Accuracy: 0.8},
			{Name: "Medium", BallSpeed: 5, SpawnDelay: 120, Accuracy: 0.6},
			{Name: "Hard", BallSpeed: 7, SpawnDelay: 90, Accuracy: 0.4},
		},
		DefaultDifficulty: "Medium",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultCricketYAML
}
