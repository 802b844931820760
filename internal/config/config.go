// Package config provides YAML-based configuration loading and the difficulty
// table for the cricket game.
package config

// CricketConfig contains all tunable parameters of a match.
type CricketConfig struct {
	Field             FieldConfig    `yaml:"field"`
	Ball              BallConfig     `yaml:"ball"`
	Batsman           BatsmanConfig  `yaml:"batsman"`
	Fielders          FieldersConfig `yaml:"fielders"`
	Scoring           ScoringConfig  `yaml:"scoring"`
	Difficulties      []Difficulty   `yaml:"difficulties"`
	DefaultDifficulty string         `yaml:"default_difficulty"`
}

// FieldConfig defines the ground geometry in world units.
type FieldConfig struct {
	BoundaryRadius float64 `yaml:"boundary_radius"` // Distance from centre that counts as a boundary
	PitchWidth     float64 `yaml:"pitch_width"`
	PitchLength    float64 `yaml:"pitch_length"`
	WicketLine     float64 `yaml:"wicket_line"` // Ball below centre+WicketLine is a wicket
	SixLine        float64 `yaml:"six_line"`    // Ball above centre-SixLine is a six
}

// BallConfig defines ball physics and delivery parameters.
type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	TrailLength    int     `yaml:"trail_length"`
	ReleaseOffset  float64 `yaml:"release_offset"` // Distance above centre where deliveries start
	ReleaseJitter  int     `yaml:"release_jitter"` // Max horizontal jitter of the release point
	Drift          float64 `yaml:"drift"`          // Max initial horizontal speed
	WallDamping    float64 `yaml:"wall_damping"`   // Fraction of horizontal speed kept on a wall bounce
	PowerUpChance  float64 `yaml:"powerup_chance"`
	FastMultiplier float64 `yaml:"fast_multiplier"`
	SlowMultiplier float64 `yaml:"slow_multiplier"`
	CurveStrength  float64 `yaml:"curve_strength"`
	CurvePeriod    float64 `yaml:"curve_period"` // Ticks per radian of curve oscillation
}

// BatsmanConfig defines the batsman and the bat hit-box.
type BatsmanConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Speed          float64 `yaml:"speed"`
	CreaseOffset   float64 `yaml:"crease_offset"` // Distance below centre of the batsman's feet
	SwingTicks     int     `yaml:"swing_ticks"`
	SwingBatWidth  int     `yaml:"swing_bat_width"`
	BatWidth       int     `yaml:"bat_width"`
	BatHeight      float64 `yaml:"bat_height"`
	SwingPower     float64 `yaml:"swing_power"`
	DefensivePower float64 `yaml:"defensive_power"`
	ReadyPower     float64 `yaml:"ready_power"`
	Placement      float64 `yaml:"placement"` // Horizontal speed at the edge of the bat
}

// FieldersConfig defines fielder movement and the field placement.
type FieldersConfig struct {
	Speed        float64           `yaml:"speed"`
	SnapDistance float64           `yaml:"snap_distance"`
	Positions    []FielderPosition `yaml:"positions"`
}

// FielderPosition is a named fielding position relative to the field centre.
type FielderPosition struct {
	Name string  `yaml:"name"`
	DX   float64 `yaml:"dx"`
	DY   float64 `yaml:"dy"`
}

// ScoringConfig defines runs, combo tiers and milestones.
type ScoringConfig struct {
	Outs             int         `yaml:"outs"`
	BoundaryRuns     int         `yaml:"boundary_runs"`
	SixRuns          int         `yaml:"six_runs"`
	SwingRuns        int         `yaml:"swing_runs"`
	TouchRuns        int         `yaml:"touch_runs"` // Runs for a defensive or ready-stance contact
	Combo            []ComboTier `yaml:"combo"`      // Highest streak first
	Milestones       []Milestone `yaml:"milestones"` // Ascending score
	CelebrationTicks int         `yaml:"celebration_ticks"`
}

// ComboTier grants Multiplier once the hit streak reaches Streak.
type ComboTier struct {
	Streak     int `yaml:"streak"`
	Multiplier int `yaml:"multiplier"`
}

// Milestone is a cumulative score that triggers a one-time celebration.
type Milestone struct {
	Score int    `yaml:"score"`
	Name  string `yaml:"name"`
}

// Difficulty is one row of the difficulty table.
type Difficulty struct {
	Name       string  `yaml:"name"`
	BallSpeed  float64 `yaml:"ball_speed"`  // Initial downward speed of a delivery
	SpawnDelay int     `yaml:"spawn_delay"` // Ticks between bowler run-ups
	Accuracy   float64 `yaml:"accuracy"`    // Fielder accuracy rating, informational
}
