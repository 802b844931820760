package cricket

import (
	"testing"

	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// scriptedRand replays queued values, then falls back to the midpoint:
// Float64 returns 0.5 and IntN returns n/2. With the default config that
// releases every ball at x=500 with no drift, no power-up and zero shot noise
// on the horizontal axis.
type scriptedRand struct {
	floats []float64
	ints   []int
}

func (r *scriptedRand) Float64() float64 {
	if len(r.floats) == 0 {
		return 0.5
	}
	v := r.floats[0]
	r.floats = r.floats[1:]
	return v
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.ints) == 0 {
		return n / 2
	}
	v := r.ints[0]
	r.ints = r.ints[1:]
	return v % n
}

// recordingPlayer remembers every sound request.
type recordingPlayer struct {
	played []core.Sound
}

func (p *recordingPlayer) Play(s core.Sound) {
	p.played = append(p.played, s)
}

func (p *recordingPlayer) count(s core.Sound) int {
	n := 0
	for _, v := range p.played {
		if v == s {
			n++
		}
	}
	return n
}

// drawOp is one recorded canvas call.
type drawOp struct {
	op     string
	color  core.Color
	rect   core.Rect
	center core.Vec2
	radius float64
	text   string
	alpha  float64
}

// recordingCanvas records draw calls in order.
type recordingCanvas struct {
	ops []drawOp
}

func (c *recordingCanvas) Clear(col core.Color) {
	c.ops = append(c.ops, drawOp{op: "clear", color: col})
}

func (c *recordingCanvas) FillCircle(center core.Vec2, radius float64, col core.Color) {
	c.ops = append(c.ops, drawOp{op: "fillcircle", center: center, radius: radius, color: col})
}

func (c *recordingCanvas) StrokeCircle(center core.Vec2, radius, _ float64, col core.Color) {
	c.ops = append(c.ops, drawOp{op: "strokecircle", center: center, radius: radius, color: col})
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.ops = append(c.ops, drawOp{op: "fillrect", rect: r, color: col})
}

func (c *recordingCanvas) StrokeRect(r core.Rect, _ float64, col core.Color) {
	c.ops = append(c.ops, drawOp{op: "strokerect", rect: r, color: col})
}

func (c *recordingCanvas) Line(_, _ core.Vec2, _ float64, col core.Color) {
	c.ops = append(c.ops, drawOp{op: "line", color: col})
}

func (c *recordingCanvas) Polygon(points []core.Vec2, col core.Color) {
	c.ops = append(c.ops, drawOp{op: "polygon", color: col})
}

func (c *recordingCanvas) Text(pos core.Vec2, s string, col core.Color, _ core.Align) {
	c.ops = append(c.ops, drawOp{op: "text", center: pos, text: s, color: col})
}

func (c *recordingCanvas) Tint(col core.Color, alpha float64) {
	c.ops = append(c.ops, drawOp{op: "tint", color: col, alpha: alpha})
}

// index returns the position of the first op matching pred, or -1.
func (c *recordingCanvas) index(pred func(drawOp) bool) int {
	for i, op := range c.ops {
		if pred(op) {
			return i
		}
	}
	return -1
}

// lastIndex returns the position of the last op matching pred, or -1.
func (c *recordingCanvas) lastIndex(pred func(drawOp) bool) int {
	for i := len(c.ops) - 1; i >= 0; i-- {
		if pred(c.ops[i]) {
			return i
		}
	}
	return -1
}

func (c *recordingCanvas) texts() []string {
	var out []string
	for _, op := range c.ops {
		if op.op == "text" {
			out = append(out, op.text)
		}
	}
	return out
}

// newTestGame returns a game at the main menu driven by the scripted source.
func newTestGame(t *testing.T, rng Rand, player core.Player) *Game {
	t.Helper()
	if rng == nil {
		rng = &scriptedRand{}
	}
	g := New(Options{Rand: rng, Audio: player})
	g.Reset(core.DefaultConfig())
	return g
}

// startMatch confirms "Start Game" from the menu.
func startMatch(t *testing.T, g *Game) {
	t.Helper()
	g.Step(core.InputOf(core.ActionConfirm))
	if g.Phase() != StatePlaying {
		t.Fatalf("expected playing after Start Game, got %s", g.Phase())
	}
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, e := range events {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

func testStadium() Stadium {
	return NewStadium(config.DefaultCricketConfig().Field)
}
