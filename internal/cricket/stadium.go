package cricket

import (
	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Outcome is the resolution of a delivery.
type Outcome int

const (
	OutcomeNone     Outcome = iota // Ball still in play
	OutcomeBoundary                // Crossed the rope
	OutcomeWicket                  // Passed the batsman
	OutcomeSix                     // Cleared the bowler's end
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeBoundary:
		return "boundary"
	case OutcomeWicket:
		return "wicket"
	case OutcomeSix:
		return "six"
	default:
		return "none"
	}
}

// Stadium is the static ground geometry.
type Stadium struct {
	Center         core.Vec2
	BoundaryRadius float64
	PitchWidth     float64
	PitchLength    float64
	WicketLine     float64
	SixLine        float64
}

// NewStadium builds the ground centred in the world.
func NewStadium(cfg config.FieldConfig) Stadium {
	return Stadium{
		Center:         core.Vec2{X: core.WorldWidth / 2, Y: core.WorldHeight / 2},
		BoundaryRadius: cfg.BoundaryRadius,
		PitchWidth:     cfg.PitchWidth,
		PitchLength:    cfg.PitchLength,
		WicketLine:     cfg.WicketLine,
		SixLine:        cfg.SixLine,
	}
}

// Pitch returns the pitch rectangle.
func (s Stadium) Pitch() core.Rect {
	return core.RectAround(s.Center, s.PitchWidth, s.PitchLength)
}

// Classify resolves a ball position. Checks run in a fixed order, boundary
// then wicket then six, so at most one outcome is ever reported.
func (s Stadium) Classify(p core.Vec2) Outcome {
	switch {
	case core.Distance(p, s.Center) > s.BoundaryRadius:
		return OutcomeBoundary
	case p.Y > s.Center.Y+s.WicketLine:
		return OutcomeWicket
	case p.Y < s.Center.Y-s.SixLine:
		return OutcomeSix
	default:
		return OutcomeNone
	}
}

// Draw paints the outfield, rope, pitch, stumps and crease.
func (s Stadium) Draw(c core.Canvas) {
	c.Clear(core.ColorDarkGreen)
	c.FillCircle(s.Center, s.BoundaryRadius, core.ColorGreen)
	c.StrokeCircle(s.Center, s.BoundaryRadius, 3, core.ColorWhite)

	pitch := s.Pitch()
	c.FillRect(pitch, core.ColorLightBrown)
	c.StrokeRect(pitch, 2, core.ColorWhite)

	s.drawStumps(c, core.Vec2{X: s.Center.X, Y: pitch.Y + 20})
	s.drawStumps(c, core.Vec2{X: s.Center.X, Y: pitch.Bottom() - 20})

	crease := pitch.Bottom() - 30
	c.Line(core.Vec2{X: s.Center.X - 30, Y: crease}, core.Vec2{X: s.Center.X + 30, Y: crease}, 2, core.ColorWhite)
}

func (s Stadium) drawStumps(c core.Canvas, at core.Vec2) {
	for i := range 3 {
		c.FillRect(core.NewRect(at.X-15+float64(i)*10, at.Y-15, 3, 30), core.ColorWhite)
	}
	// Bails
	c.Line(core.Vec2{X: at.X - 15, Y: at.Y - 15}, core.Vec2{X: at.X + 15, Y: at.Y - 15}, 2, core.ColorWhite)
}
