package cricket

import (
	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Fielder body size.
const (
	FielderWidth  = 20
	FielderHeight = 30
)

// Fielder chases a struck ball and otherwise walks back to its position.
type Fielder struct {
	Name    string
	Home    core.Vec2
	Pos     core.Vec2
	Target  core.Vec2
	Chasing bool

	speed float64
	snap  float64
}

// NewFielders creates the field placement around the stadium centre.
func NewFielders(cfg config.FieldersConfig, s Stadium) []*Fielder {
	fielders := make([]*Fielder, 0, len(cfg.Positions))
	for _, p := range cfg.Positions {
		home := core.Vec2{X: s.Center.X + p.DX, Y: s.Center.Y + p.DY}
		fielders = append(fielders, &Fielder{
			Name:   p.Name,
			Home:   home,
			Pos:    home,
			Target: home,
			speed:  cfg.Speed,
			snap:   cfg.SnapDistance,
		})
	}
	return fielders
}

// Update retargets and takes one step. The ball is only read: a rising ball
// (just struck) is chased, anything else sends the fielder home.
func (f *Fielder) Update(ballPos, ballVel core.Vec2) {
	if ballVel.Y < 0 {
		f.Target = ballPos
		f.Chasing = true
	} else {
		f.Target = f.Home
		f.Chasing = false
	}

	d := f.Target.Sub(f.Pos)
	dist := d.Len()
	if dist <= f.snap {
		f.Pos = f.Target
		return
	}
	f.Pos = f.Pos.Add(d.Scale(f.speed / dist))
}

// ResetPosition puts the fielder back at home.
func (f *Fielder) ResetPosition() {
	f.Pos = f.Home
	f.Target = f.Home
	f.Chasing = false
}

// Draw paints the body and head.
func (f *Fielder) Draw(c core.Canvas) {
	body := core.ColorGray
	if f.Chasing {
		body = core.ColorRed
	}
	c.FillRect(core.NewRect(f.Pos.X, f.Pos.Y, FielderWidth, FielderHeight), body)
	c.FillCircle(core.Vec2{X: f.Pos.X + FielderWidth/2, Y: f.Pos.Y - 5}, 4, core.ColorBrown)
}
