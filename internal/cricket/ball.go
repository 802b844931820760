package cricket

import (
	"math"

	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// PowerUp is a special-ball modifier attached to a delivery.
type PowerUp int

const (
	PowerNone PowerUp = iota
	PowerFast
	PowerSlow
	PowerCurve
)

// String returns the power-up name.
func (p PowerUp) String() string {
	switch p {
	case PowerFast:
		return "fast"
	case PowerSlow:
		return "slow"
	case PowerCurve:
		return "curve"
	default:
		return "none"
	}
}

// Color returns the ball colour for the power-up.
func (p PowerUp) Color() core.Color {
	switch p {
	case PowerFast:
		return core.ColorYellow
	case PowerSlow:
		return core.ColorBlue
	case PowerCurve:
		return core.ColorPurple
	default:
		return core.ColorRed
	}
}

// Ball is the cricket ball: position, velocity and a short trail.
type Ball struct {
	Pos     core.Vec2
	Vel     core.Vec2 // Vel.Y > 0 means travelling towards the batsman
	Radius  float64
	Trail   []core.Vec2 // Oldest first
	PowerUp PowerUp

	speed   float64 // Initial downward speed of each delivery
	cfg     config.BallConfig
	stadium Stadium
	rng     Rand
}

// NewBall creates a ball. Call Reset before the first Update.
func NewBall(cfg config.BallConfig, stadium Stadium, rng Rand) *Ball {
	return &Ball{
		Radius:  cfg.Radius,
		Trail:   make([]core.Vec2, 0, cfg.TrailLength+1),
		cfg:     cfg,
		stadium: stadium,
		rng:     rng,
	}
}

// Reset starts a new delivery from the bowler's end at the given speed.
func (b *Ball) Reset(speed float64) {
	b.speed = speed
	b.reset()
}

func (b *Ball) reset() {
	c := b.stadium.Center
	b.Pos = core.Vec2{
		X: c.X + float64(between(b.rng, -b.cfg.ReleaseJitter, b.cfg.ReleaseJitter)),
		Y: c.Y - b.cfg.ReleaseOffset,
	}
	b.Vel = core.Vec2{
		X: uniform(b.rng, -b.cfg.Drift, b.cfg.Drift),
		Y: b.speed,
	}
	b.Trail = b.Trail[:0]

	b.PowerUp = PowerNone
	if b.rng.Float64() < b.cfg.PowerUpChance {
		b.PowerUp = PowerUp(1 + b.rng.IntN(3))
	}
}

// Update advances the ball one tick and resolves the delivery. tick is the
// match's elapsed tick count and drives the curve-ball swerve. Any outcome
// other than OutcomeNone has already reset the ball for the next delivery.
func (b *Ball) Update(tick int) Outcome {
	mult := 1.0
	switch b.PowerUp {
	case PowerFast:
		mult = b.cfg.FastMultiplier
	case PowerSlow:
		mult = b.cfg.SlowMultiplier
	case PowerCurve:
		b.Vel.X += math.Sin(float64(tick)/b.cfg.CurvePeriod) * b.cfg.CurveStrength
	}

	b.Pos.X += b.Vel.X
	b.Pos.Y += b.Vel.Y * mult

	b.Trail = append(b.Trail, b.Pos)
	if len(b.Trail) > b.cfg.TrailLength {
		b.Trail = append(b.Trail[:0], b.Trail[len(b.Trail)-b.cfg.TrailLength:]...)
	}

	// Side walls of the world
	if b.Pos.X-b.Radius <= 0 || b.Pos.X+b.Radius >= core.WorldWidth {
		b.Vel.X *= -b.cfg.WallDamping
		b.Pos.X = core.ClampF(b.Pos.X, b.Radius, core.WorldWidth-b.Radius)
	}

	outcome := b.stadium.Classify(b.Pos)
	if outcome != OutcomeNone {
		b.reset()
	}
	return outcome
}

// CheckCollision tests the ball against the bat and, on contact, sends it back
// up the pitch. Only a descending ball can be hit.
func (b *Ball) CheckCollision(bat *Batsman) bool {
	if b.Vel.Y <= 0 {
		return false
	}

	center := bat.BatCenter()
	half := bat.BatHalfWidth()
	halfH := math.Floor(bat.cfg.BatHeight / 2)
	edge := b.Pos.Y + b.Radius

	if b.Pos.X < center.X-half || b.Pos.X > center.X+half ||
		edge < center.Y-halfH || edge > center.Y+halfH {
		return false
	}

	offset := core.ClampF((b.Pos.X-center.X)/half, -1, 1)
	b.Vel.Y = -bat.Power()
	b.Vel.X = offset * bat.cfg.Placement

	b.Vel.X += uniform(b.rng, -0.5, 0.5)
	b.Vel.Y += uniform(b.rng, -1, 0.5)
	return true
}

// Draw paints the trail, the special-ball ring and the ball.
func (b *Ball) Draw(c core.Canvas) {
	color := b.PowerUp.Color()
	n := len(b.Trail)
	for i, p := range b.Trail {
		c.FillCircle(p, math.Max(1, b.Radius-float64(n-i)), color)
	}
	if b.PowerUp != PowerNone {
		c.StrokeCircle(b.Pos, b.Radius+2, 1, core.ColorWhite)
	}
	c.FillCircle(b.Pos, b.Radius, color)
}
