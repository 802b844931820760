package cricket

import (
	"fmt"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Canned scenes for headless screenshots.
const (
	SceneMenu      = "menu"
	SceneGameplay  = "gameplay"
	SceneBoundary  = "boundary"
	SceneMilestone = "milestone"
	SceneGameOver  = "gameover"
)

// Scenes lists the canned scenes in capture order.
var Scenes = []string{SceneMenu, SceneGameplay, SceneBoundary, SceneMilestone, SceneGameOver}

// ballInFlight is how long a staged match runs before capture.
const ballInFlight = 40

// Stage poses a reset game in one of the canned scenes. No sounds are played
// and no events are left behind.
func (g *Game) Stage(scene string) error {
	saved := g.audio
	g.audio = core.NopPlayer{}
	defer func() {
		g.audio = saved
		g.events = g.events[:0]
	}()

	switch scene {
	case SceneMenu:
		g.state = StateMenu
		g.menuSelection = MenuStart

	case SceneGameplay:
		g.stageMatch()

	case SceneBoundary:
		g.stageMatch()
		g.boundaries++
		g.addRuns(g.cfg.Scoring.BoundaryRuns)
		g.celebrate(CelebrateBoundary)

	case SceneMilestone:
		g.stageMatch()
		g.score = 52
		g.checkMilestones()

	case SceneGameOver:
		g.stageMatch()
		g.score = 37
		g.boundaries = 3
		g.sixes = 2
		g.outs = 1
		g.wicket()

	default:
		return fmt.Errorf("cricket: unknown scene %q", scene)
	}
	return nil
}

// stageMatch starts a match with some runs on the board and a ball on its way.
func (g *Game) stageMatch() {
	g.Restart()
	g.score = 24
	g.boundaries = 1
	g.sixes = 1
	g.outs = g.cfg.Scoring.Outs - 1
	g.streak = 2
	g.combo = ComboMultiplier(g.cfg.Scoring.Combo, g.streak)

	idle := core.NewInputFrame()
	for i := 0; i < ballInFlight && g.state == StatePlaying; i++ {
		g.update(idle)
	}
}
