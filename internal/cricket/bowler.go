package cricket

import (
	"math"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Bowler dimensions and run-up length.
const (
	BowlerWidth  = 25
	BowlerHeight = 40
	BowlerAction = 30 // Ticks the bowling animation stays active
)

// Bowler is the automated bowler. It is purely animated: deliveries are
// driven by the ball, not by the bowler.
type Bowler struct {
	Pos     core.Vec2 // Top-left corner
	Frame   int
	Bowling bool
	Timer   int
}

// NewBowler places the bowler at the non-striker's end.
func NewBowler(s Stadium, releaseOffset float64) *Bowler {
	return &Bowler{
		Pos: core.Vec2{X: s.Center.X - 12, Y: s.Center.Y - releaseOffset},
	}
}

// Update advances the animation.
func (b *Bowler) Update() {
	b.Frame++
	if b.Bowling {
		b.Timer++
		if b.Timer > BowlerAction {
			b.Bowling = false
			b.Timer = 0
		}
	}
}

// StartBowling begins the bowling action.
func (b *Bowler) StartBowling() {
	b.Bowling = true
	b.Timer = 0
}

// Reset stops any animation in progress.
func (b *Bowler) Reset() {
	b.Frame = 0
	b.Bowling = false
	b.Timer = 0
}

// Draw paints the body, head and arm.
func (b *Bowler) Draw(c core.Canvas) {
	body := core.ColorBlue
	if b.Bowling {
		body = core.ColorRed
	}
	c.FillRect(core.NewRect(b.Pos.X, b.Pos.Y, BowlerWidth, BowlerHeight), body)

	mid := b.Pos.X + BowlerWidth/2
	c.FillCircle(core.Vec2{X: mid, Y: b.Pos.Y - 10}, 8, core.ColorBrown)

	shoulder := core.Vec2{X: mid, Y: b.Pos.Y + 10}
	hand := core.Vec2{X: mid + 10, Y: b.Pos.Y + 20}
	if b.Bowling {
		angle := math.Sin(float64(b.Timer)*0.5) * 45 * math.Pi / 180
		hand = core.Vec2{X: mid + math.Cos(angle)*15, Y: shoulder.Y + math.Sin(angle)*15}
	}
	c.Line(shoulder, hand, 3, core.ColorBrown)
}
