package cricket

import (
	"math"
	"testing"

	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

const eps = 1e-9

func newTestBall(rng Rand) *Ball {
	if rng == nil {
		rng = &scriptedRand{}
	}
	b := NewBall(config.DefaultCricketConfig().Ball, testStadium(), rng)
	b.Reset(5)
	return b
}

func TestBallReset(t *testing.T) {
	rng := &scriptedRand{ints: []int{0}, floats: []float64{1.0 - eps, 0.9}}
	b := newTestBall(rng)

	if b.Pos.X != 480 || b.Pos.Y != 170 {
		t.Errorf("release point = %v, expected (480, 170)", b.Pos)
	}
	if math.Abs(b.Vel.X-1) > 1e-6 || b.Vel.Y != 5 {
		t.Errorf("velocity = %v, expected (~1, 5)", b.Vel)
	}
	if b.PowerUp != PowerNone {
		t.Errorf("power-up = %v, expected none", b.PowerUp)
	}
	if len(b.Trail) != 0 {
		t.Errorf("trail should be empty after reset, got %d", len(b.Trail))
	}
}

func TestBallPowerUpChoice(t *testing.T) {
	tests := []struct {
		pick int
		want PowerUp
	}{
		{0, PowerFast},
		{1, PowerSlow},
		{2, PowerCurve},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			rng := &scriptedRand{ints: []int{20, tt.pick}, floats: []float64{0.5, 0.05}}
			b := newTestBall(rng)
			if b.PowerUp != tt.want {
				t.Errorf("PowerUp = %v, expected %v", b.PowerUp, tt.want)
			}
		})
	}
}

func TestBallPowerUpSpeed(t *testing.T) {
	tests := []struct {
		power PowerUp
		dy    float64
	}{
		{PowerNone, 5},
		{PowerFast, 7.5},
		{PowerSlow, 3.5},
		{PowerCurve, 5},
	}

	for _, tt := range tests {
		t.Run(tt.power.String(), func(t *testing.T) {
			b := newTestBall(nil)
			b.PowerUp = tt.power
			y := b.Pos.Y
			b.Update(1)
			if got := b.Pos.Y - y; math.Abs(got-tt.dy) > eps {
				t.Errorf("moved %v, expected %v", got, tt.dy)
			}
		})
	}
}

func TestBallCurveFollowsTickCounter(t *testing.T) {
	a := newTestBall(nil)
	b := newTestBall(nil)
	a.PowerUp = PowerCurve
	b.PowerUp = PowerCurve

	a.Update(0)
	b.Update(10)

	if a.Vel.X != 0 {
		t.Errorf("sin(0) should not swerve, got vx=%v", a.Vel.X)
	}
	want := math.Sin(10.0/6) * 0.1
	if math.Abs(b.Vel.X-want) > eps {
		t.Errorf("vx = %v, expected %v", b.Vel.X, want)
	}
}

func TestBallTrailBoundedAndOrdered(t *testing.T) {
	b := newTestBall(nil)

	for i := 0; i < 40; i++ {
		if out := b.Update(i); out != OutcomeNone {
			t.Fatalf("unexpected outcome %v at tick %d", out, i)
		}
		if len(b.Trail) > 10 {
			t.Fatalf("trail length %d exceeds 10", len(b.Trail))
		}
		for j := 1; j < len(b.Trail); j++ {
			if b.Trail[j].Y <= b.Trail[j-1].Y {
				t.Fatalf("trail not chronological at tick %d: %v", i, b.Trail)
			}
		}
		if b.Trail[len(b.Trail)-1] != b.Pos {
			t.Fatalf("newest trail point should be the current position")
		}
	}
	if len(b.Trail) != 10 {
		t.Errorf("trail length = %d, expected 10", len(b.Trail))
	}
}

func TestBallOutcomePriority(t *testing.T) {
	tests := []struct {
		name string
		pos  core.Vec2
		want Outcome
	}{
		{"in play", core.Vec2{X: 500, Y: 400}, OutcomeNone},
		{"boundary beats wicket", core.Vec2{X: 500, Y: 660}, OutcomeBoundary},
		{"boundary beats six", core.Vec2{X: 500, Y: 40}, OutcomeBoundary},
		{"boundary sideways", core.Vec2{X: 810, Y: 350}, OutcomeBoundary},
		{"wicket", core.Vec2{X: 500, Y: 540}, OutcomeWicket},
		{"six", core.Vec2{X: 500, Y: 140}, OutcomeSix},
		{"on the wicket line", core.Vec2{X: 500, Y: 530}, OutcomeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestBall(nil)
			b.Pos = tt.pos
			b.Vel = core.Vec2{}
			if got := b.Update(1); got != tt.want {
				t.Errorf("Update() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestBallResetsAfterOutcome(t *testing.T) {
	b := newTestBall(nil)
	b.Pos = core.Vec2{X: 500, Y: 529}
	b.Vel = core.Vec2{X: 0, Y: 5}

	if got := b.Update(1); got != OutcomeWicket {
		t.Fatalf("Update() = %v, expected wicket", got)
	}
	if b.Pos != (core.Vec2{X: 500, Y: 170}) || len(b.Trail) != 0 {
		t.Errorf("ball not reset: pos=%v trail=%d", b.Pos, len(b.Trail))
	}
}

func TestBallWallBounce(t *testing.T) {
	open := Stadium{Center: core.Vec2{X: 500, Y: 350}, BoundaryRadius: 1e6, WicketLine: 1e6, SixLine: 1e6}
	b := NewBall(config.DefaultCricketConfig().Ball, open, &scriptedRand{})
	b.Reset(0)
	b.Pos = core.Vec2{X: 8, Y: 300}
	b.Vel = core.Vec2{X: -4, Y: 0}

	b.Update(1)

	if b.Pos.X != 6 {
		t.Errorf("x = %v, expected clamp to radius 6", b.Pos.X)
	}
	if math.Abs(b.Vel.X-3.2) > eps {
		t.Errorf("vx = %v, expected 3.2", b.Vel.X)
	}

	b.Pos = core.Vec2{X: 990, Y: 300}
	b.Vel = core.Vec2{X: 5, Y: 0}
	b.Update(2)
	if b.Pos.X != 994 || math.Abs(b.Vel.X+4) > eps {
		t.Errorf("right wall: x=%v vx=%v, expected 994 and -4", b.Pos.X, b.Vel.X)
	}
}

func TestBallCollision(t *testing.T) {
	tests := []struct {
		name   string
		stance Stance
		pos    core.Vec2
		vel    core.Vec2
		hit    bool
		wantVX float64
		wantVY float64
	}{
		{"ready centre", StanceReady, core.Vec2{X: 500, Y: 476}, core.Vec2{Y: 3}, true, 0, -6.25},
		{"swing centre", StanceSwing, core.Vec2{X: 500, Y: 476}, core.Vec2{Y: 3}, true, 0, -8.25},
		{"defensive centre", StanceDefensive, core.Vec2{X: 500, Y: 476}, core.Vec2{Y: 3}, true, 0, -4.25},
		{"ready offside", StanceReady, core.Vec2{X: 506, Y: 476}, core.Vec2{Y: 3}, true, 2.5, -6.25},
		{"ready edge", StanceReady, core.Vec2{X: 512, Y: 476}, core.Vec2{Y: 3}, true, 5, -6.25},
		{"ready past edge", StanceReady, core.Vec2{X: 513, Y: 476}, core.Vec2{Y: 3}, false, 0, 0},
		{"swing reaches wider", StanceSwing, core.Vec2{X: 483, Y: 476}, core.Vec2{Y: 3}, true, -5, -8.25},
		{"too high", StanceReady, core.Vec2{X: 500, Y: 470}, core.Vec2{Y: 3}, false, 0, 0},
		{"too low", StanceReady, core.Vec2{X: 500, Y: 485}, core.Vec2{Y: 3}, false, 0, 0},
		{"rising ball", StanceSwing, core.Vec2{X: 500, Y: 476}, core.Vec2{Y: -3}, false, 0, 0},
		{"stationary ball", StanceSwing, core.Vec2{X: 500, Y: 476}, core.Vec2{}, false, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bat := NewBatsman(config.DefaultCricketConfig().Batsman, testStadium())
			bat.Stance = tt.stance
			b := newTestBall(nil)
			b.Pos = tt.pos
			b.Vel = tt.vel

			got := b.CheckCollision(bat)
			if got != tt.hit {
				t.Fatalf("CheckCollision() = %v, expected %v", got, tt.hit)
			}
			if !tt.hit {
				if b.Vel != tt.vel {
					t.Errorf("missed ball velocity changed to %v", b.Vel)
				}
				return
			}
			if math.Abs(b.Vel.X-tt.wantVX) > eps || math.Abs(b.Vel.Y-tt.wantVY) > eps {
				t.Errorf("velocity = %v, expected (%v, %v)", b.Vel, tt.wantVX, tt.wantVY)
			}
			if b.Vel.Y >= 0 {
				t.Error("struck ball must travel upward")
			}
		})
	}
}

func TestBallRisingThroughBatNeverHits(t *testing.T) {
	bat := NewBatsman(config.DefaultCricketConfig().Batsman, testStadium())
	bat.Stance = StanceSwing
	b := newTestBall(nil)
	b.Pos = core.Vec2{X: 500, Y: 500}
	b.Vel = core.Vec2{X: 0, Y: -1}

	for i := 0; i < 40; i++ {
		b.Update(i)
		if b.CheckCollision(bat) {
			t.Fatalf("rising ball registered a hit at y=%v", b.Pos.Y)
		}
	}
}

func TestBallNoiseBounds(t *testing.T) {
	bat := NewBatsman(config.DefaultCricketConfig().Batsman, testStadium())
	rng := NewRand(7)

	for i := 0; i < 500; i++ {
		b := NewBall(config.DefaultCricketConfig().Ball, testStadium(), rng)
		b.Reset(5)
		b.Pos = core.Vec2{X: 500, Y: 476}
		b.Vel = core.Vec2{Y: 5}
		if !b.CheckCollision(bat) {
			t.Fatal("expected a hit")
		}
		if b.Vel.Y < -7 || b.Vel.Y >= -5.5 {
			t.Fatalf("vy = %v outside [-7, -5.5)", b.Vel.Y)
		}
		if b.Vel.X < -0.5 || b.Vel.X >= 0.5 {
			t.Fatalf("vx = %v outside [-0.5, 0.5)", b.Vel.X)
		}
	}
}
