package cricket

import (
	"math"

	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Stance is the batsman's current shot.
type Stance int

const (
	StanceReady Stance = iota
	StanceSwing
	StanceDefensive
)

// String returns the stance name.
func (s Stance) String() string {
	switch s {
	case StanceSwing:
		return "swing"
	case StanceDefensive:
		return "defensive"
	default:
		return "ready"
	}
}

// Batsman is the player-controlled striker.
type Batsman struct {
	Pos        core.Vec2 // Top-left corner
	Width      float64
	Height     float64
	Stance     Stance
	SwingTimer int

	home       core.Vec2
	minX, maxX float64
	cfg        config.BatsmanConfig
}

// NewBatsman places the batsman on the crease at the striker's end.
func NewBatsman(cfg config.BatsmanConfig, s Stadium) *Batsman {
	b := &Batsman{
		Width:  cfg.Width,
		Height: cfg.Height,
		home: core.Vec2{
			X: s.Center.X - math.Floor(cfg.Width/2),
			Y: s.Center.Y + cfg.CreaseOffset - cfg.Height,
		},
		minX: s.Center.X - s.PitchWidth/2,
		maxX: s.Center.X + s.PitchWidth/2 - cfg.Width,
		cfg:  cfg,
	}
	b.ResetPosition()
	return b
}

// ResetPosition returns the batsman to the crease in the ready stance.
func (b *Batsman) ResetPosition() {
	b.Pos = b.home
	b.Stance = StanceReady
	b.SwingTimer = 0
}

// Update applies one tick of input. The stance follows the held keys: a power
// shot wins over a defensive block, and no key means ready.
func (b *Batsman) Update(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		b.Pos.X -= b.cfg.Speed
	}
	if in.Has(core.ActionRight) {
		b.Pos.X += b.cfg.Speed
	}

	switch {
	case in.Has(core.ActionPowerShot):
		b.Stance = StanceSwing
		b.SwingTimer = b.cfg.SwingTicks
	case in.Has(core.ActionDefensive):
		b.Stance = StanceDefensive
	default:
		b.Stance = StanceReady
	}

	if b.SwingTimer > 0 {
		b.SwingTimer--
		if b.SwingTimer == 0 {
			b.Stance = StanceReady
		}
	}

	b.Pos.X = core.ClampF(b.Pos.X, b.minX, b.maxX)
}

// BatCenter returns the centre of the bat hit-box.
func (b *Batsman) BatCenter() core.Vec2 {
	return core.Vec2{
		X: b.Pos.X + math.Floor(b.Width/2),
		Y: b.Pos.Y + math.Floor(b.Height/2),
	}
}

// BatHalfWidth returns half the bat width for the current stance, in whole units.
func (b *Batsman) BatHalfWidth() float64 {
	w := b.cfg.BatWidth
	if b.Stance == StanceSwing {
		w = b.cfg.SwingBatWidth
	}
	return float64(w / 2)
}

// Power returns the shot speed for the current stance.
func (b *Batsman) Power() float64 {
	switch b.Stance {
	case StanceSwing:
		return b.cfg.SwingPower
	case StanceDefensive:
		return b.cfg.DefensivePower
	default:
		return b.cfg.ReadyPower
	}
}

// Runs returns the runs awarded for bat contact in the current stance.
func (b *Batsman) Runs(s config.ScoringConfig) int {
	if b.Stance == StanceSwing {
		return s.SwingRuns
	}
	return s.TouchRuns
}

// Color returns the body colour for the current stance.
func (b *Batsman) Color() core.Color {
	switch b.Stance {
	case StanceSwing:
		return core.ColorRed
	case StanceDefensive:
		return core.ColorYellow
	default:
		return core.ColorBlue
	}
}

// Draw paints the body, head and bat.
func (b *Batsman) Draw(c core.Canvas) {
	c.FillRect(core.NewRect(b.Pos.X, b.Pos.Y, b.Width, b.Height), b.Color())

	mid := b.Pos.X + math.Floor(b.Width/2)
	c.FillCircle(core.Vec2{X: mid, Y: b.Pos.Y - 8}, 6, core.ColorBrown)

	var angle float64
	switch b.Stance {
	case StanceSwing:
		angle = -45 + float64(b.SwingTimer)*4
	case StanceDefensive:
		angle = 10
	}
	const batLength = 25
	from := b.BatCenter()
	rad := angle * math.Pi / 180
	to := core.Vec2{X: from.X + batLength*math.Cos(rad), Y: from.Y - batLength*math.Sin(rad)}
	c.Line(from, to, 4, core.ColorWhite)
}
