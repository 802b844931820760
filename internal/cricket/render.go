package cricket

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

var menuInstructions = []string{
	"Use Arrow Keys to navigate",
	"Press ENTER to select",
	"Game Controls:",
	"A/D or Arrow Keys - Move batsman",
	"SPACE - Power shot",
	"S - Defensive shot",
	"P - Pause, ESC - Menu",
}

// Render draws the current state. Layers go stadium, fielders, bowler,
// batsman, ball, HUD, celebration, then any overlay.
func (g *Game) Render(c core.Canvas) {
	switch g.state {
	case StateMenu:
		g.renderMenu(c)
	case StateGameOver:
		g.renderField(c)
		g.renderGameOver(c)
	case StatePaused:
		g.renderField(c)
		g.renderPaused(c)
	default:
		g.renderField(c)
	}
}

func (g *Game) renderMenu(c core.Canvas) {
	c.Clear(core.ColorDarkGreen)
	mid := float64(core.WorldWidth / 2)

	c.Text(core.Vec2{X: mid, Y: 150}, "ENHANCED CRICKET", core.ColorWhite, core.AlignCenter)

	for i, opt := range g.MenuOptions() {
		color := core.ColorWhite
		if i == g.menuSelection {
			color = core.ColorYellow
			opt = "> " + opt + " <"
		}
		c.Text(core.Vec2{X: mid, Y: 250 + float64(i)*50}, opt, color, core.AlignCenter)
	}

	for i, line := range menuInstructions {
		c.Text(core.Vec2{X: 50, Y: 450 + float64(i)*25}, line, core.ColorWhite, core.AlignLeft)
	}
}

func (g *Game) renderField(c core.Canvas) {
	g.stadium.Draw(c)
	for _, f := range g.fielders {
		f.Draw(c)
	}
	g.bowler.Draw(c)
	g.batsman.Draw(c)
	g.ball.Draw(c)
	g.renderHUD(c)
	g.celebration.Draw(c, g.stadium.Center)
}

func (g *Game) renderHUD(c core.Canvas) {
	left := func(y float64, s string, color core.Color) {
		c.Text(core.Vec2{X: 10, Y: y}, s, color, core.AlignLeft)
	}
	left(10, fmt.Sprintf("Score: %d", g.score), core.ColorWhite)
	left(40, fmt.Sprintf("Outs: %d", g.outs), core.ColorWhite)
	left(70, fmt.Sprintf("Boundaries: %d", g.boundaries), core.ColorWhite)
	left(100, fmt.Sprintf("Sixes: %d", g.sixes), core.ColorWhite)
	if g.combo > 1 {
		left(130, fmt.Sprintf("COMBO x%d!", g.combo), core.ColorYellow)
	}

	right := core.WorldWidth - 10.0
	c.Text(core.Vec2{X: right, Y: 10}, "Difficulty: "+g.difficulty.Name, core.ColorWhite, core.AlignRight)
	c.Text(core.Vec2{X: right, Y: 30}, fmt.Sprintf("High Score: %d", g.highScore), core.ColorWhite, core.AlignRight)

	if g.ball.PowerUp != PowerNone {
		banner := "Special Ball: " + strings.ToUpper(g.ball.PowerUp.String())
		c.Text(core.Vec2{X: core.WorldWidth / 2, Y: 50}, banner, core.ColorYellow, core.AlignCenter)
	}

	stance := core.ColorWhite
	switch g.batsman.Stance {
	case StanceSwing:
		stance = core.ColorRed
	case StanceDefensive:
		stance = core.ColorBlue
	}
	left(core.WorldHeight-30, "Stance: "+strings.ToUpper(g.batsman.Stance.String()), stance)
}

func (g *Game) renderPaused(c core.Canvas) {
	c.Tint(core.ColorBlack, 0.5)
	center := g.stadium.Center
	c.Text(center, "PAUSED", core.ColorWhite, core.AlignCenter)
	c.Text(center.Add(core.Vec2{Y: 40}), "Press P to resume", core.ColorWhite, core.AlignCenter)
}

func (g *Game) renderGameOver(c core.Canvas) {
	c.Tint(core.ColorBlack, 180.0/255)
	center := g.stadium.Center

	c.Text(center.Add(core.Vec2{Y: -120}), "GAME OVER", core.ColorWhite, core.AlignCenter)

	highlight := g.score == g.highScore
	stats := []string{
		fmt.Sprintf("Final Score: %d", g.score),
		fmt.Sprintf("Boundaries (4s): %d", g.boundaries),
		fmt.Sprintf("Sixes: %d", g.sixes),
		fmt.Sprintf("High Score: %d", g.highScore),
		"",
		"Press R to restart",
		"Press M for menu",
		"Press Q to quit",
	}
	for i, line := range stats {
		color := core.ColorWhite
		if highlight && strings.HasPrefix(line, "High Score") {
			color = core.ColorYellow
		}
		c.Text(center.Add(core.Vec2{Y: -40 + float64(i)*30}), line, color, core.AlignCenter)
	}
}
