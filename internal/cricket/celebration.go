package cricket

import (
	"math"
	"strings"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Celebration kinds for deliveries. Milestone kinds come from the scoring
// config (fifty, century, one_fifty by default).
const (
	CelebrateBoundary = "boundary"
	CelebrateSix      = "six"
)

var celebrationMessages = map[string]string{
	CelebrateBoundary: "BOUNDARY! 4 RUNS!",
	CelebrateSix:      "SIX! MAXIMUM!",
	"fifty":           "FIFTY! WELL PLAYED!",
	"century":         "CENTURY! FANTASTIC!",
	"one_fifty":       "150 RUNS! AMAZING!",
}

// Celebration is a cosmetic countdown. It never feeds back into play.
type Celebration struct {
	Kind     string
	Timer    int
	Duration int
}

// Trigger starts (or restarts) a celebration.
func (c *Celebration) Trigger(kind string, duration int) {
	c.Kind = kind
	c.Timer = duration
	c.Duration = duration
}

// Tick counts the celebration down.
func (c *Celebration) Tick() {
	if c.Timer > 0 {
		c.Timer--
	}
}

// Clear cancels any celebration.
func (c *Celebration) Clear() {
	*c = Celebration{}
}

// Active reports whether the celebration should be shown.
func (c Celebration) Active() bool {
	return c.Timer > 0 && c.Kind != ""
}

// Milestone reports whether this celebrates a score milestone rather than a shot.
func (c Celebration) Milestone() bool {
	return c.Kind != "" && c.Kind != CelebrateBoundary && c.Kind != CelebrateSix
}

// Message returns the banner text.
func (c Celebration) Message() string {
	if msg, ok := celebrationMessages[c.Kind]; ok {
		return msg
	}
	return strings.ToUpper(strings.ReplaceAll(c.Kind, "_", " ")) + "!"
}

// Pulse returns the banner pulse in [0, 50].
func (c Celebration) Pulse() float64 {
	return math.Abs(math.Sin(float64(c.Timer)*0.1)) * 50
}

// Flash returns the opacity of the screen flash, fading from 100/255.
func (c Celebration) Flash() float64 {
	if c.Duration <= 0 {
		return 0
	}
	return float64(c.Timer) / float64(c.Duration) * 100 / 255
}

// Draw paints the flash, the banner and, for milestones, orbiting stars.
func (c Celebration) Draw(cv core.Canvas, center core.Vec2) {
	if !c.Active() {
		return
	}

	flash := core.ColorYellow
	if c.Milestone() {
		flash = core.ColorGold
	}
	cv.Tint(flash, c.Flash())

	text := core.ColorYellow
	if c.Pulse() > 25 {
		text = core.ColorGold
	}
	msg := c.Message()
	cv.Text(center.Add(core.Vec2{X: 3, Y: 3}), msg, core.ColorBlack, core.AlignCenter)
	cv.Text(center, msg, text, core.AlignCenter)

	if !c.Milestone() {
		return
	}
	for i := range 8 {
		angle := (float64(i)*45 + float64(c.Timer)*2) * math.Pi / 180
		star := core.Vec2{X: center.X + math.Cos(angle)*100, Y: center.Y + math.Sin(angle)*50}
		cv.Polygon(starPoints(star), core.ColorYellow)
	}
}

// starPoints returns a five-pointed star outline around p.
func starPoints(p core.Vec2) []core.Vec2 {
	offsets := [...]core.Vec2{
		{X: 0, Y: -10}, {X: 3, Y: -3}, {X: 10, Y: -3}, {X: 5, Y: 2}, {X: 8, Y: 10},
		{X: 0, Y: 6}, {X: -8, Y: 10}, {X: -5, Y: 2}, {X: -10, Y: -3}, {X: -3, Y: -3},
	}
	points := make([]core.Vec2, len(offsets))
	for i, o := range offsets {
		points[i] = p.Add(o)
	}
	return points
}
