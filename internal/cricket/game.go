// Package cricket implements the batting game: ball physics, the batsman,
// bowler and fielders, scoring and the menu/play/game-over state machine.
// It draws through core.Canvas and plays sounds through core.Player, so it
// runs unchanged in a terminal, a window or a test.
package cricket

import (
	"fmt"
	"time"

	"github.com/vovakirdan/cricket-arcade/internal/config"
	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Game states
const (
	StateMenu     = "menu"     // Main menu
	StatePlaying  = "playing"  // Match in progress
	StatePaused   = "paused"   // Match frozen
	StateGameOver = "gameover" // Out of wickets
	StateQuit     = "quit"     // Terminated
)

// Main menu rows.
const (
	MenuStart = iota
	MenuDifficulty
	MenuHighScore
	MenuQuit
	menuRows
)

// Options configures a Game.
type Options struct {
	Config     config.CricketConfig // Zero value means config.DefaultCricketConfig()
	Difficulty string               // Empty means the config's default
	Rand       Rand                 // Nil means NewRand(runtime seed)
	Audio      core.Player          // Nil means silence
}

// Game is the match controller. It exclusively owns every entity.
type Game struct {
	opts    Options
	cfg     config.CricketConfig
	runtime core.RuntimeConfig
	rng     Rand
	audio   core.Player

	stadium     Stadium
	ball        *Ball
	batsman     *Batsman
	bowler      *Bowler
	fielders    []*Fielder
	celebration Celebration

	state         string
	menuSelection int
	difficulty    config.Difficulty
	highScore     int // Session only

	// Match state, cleared by Restart
	score      int
	outs       int
	boundaries int
	sixes      int
	streak     int
	combo      int
	milestone  int // Highest milestone celebrated this match
	spawnTimer int
	tickCount  int

	events []Event
}

// New creates a game. Call Reset before stepping it.
func New(opts Options) *Game {
	return &Game{opts: opts}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "cricket"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Cricket Arcade"
}

// Reset initializes the game at the main menu, as at process start. The
// session high score is discarded; use Restart between matches.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	g.cfg = g.opts.Config
	if len(g.cfg.Difficulties) == 0 {
		g.cfg = config.DefaultCricketConfig()
	}

	g.difficulty = g.cfg.DefaultDifficultyRow()
	if g.opts.Difficulty != "" {
		if d, err := g.cfg.Difficulty(g.opts.Difficulty); err == nil {
			g.difficulty = d
		}
	}

	g.rng = g.opts.Rand
	if g.rng == nil {
		seed := runtime.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		g.rng = NewRand(seed)
	}
	g.audio = g.opts.Audio
	if g.audio == nil {
		g.audio = core.NopPlayer{}
	}

	g.stadium = NewStadium(g.cfg.Field)
	g.ball = NewBall(g.cfg.Ball, g.stadium, g.rng)
	g.batsman = NewBatsman(g.cfg.Batsman, g.stadium)
	g.bowler = NewBowler(g.stadium, g.cfg.Ball.ReleaseOffset)
	g.fielders = NewFielders(g.cfg.Fielders, g.stadium)

	g.highScore = 0
	g.menuSelection = MenuStart
	g.events = g.events[:0]
	g.clearMatch()
	g.ball.Reset(g.difficulty.BallSpeed)
	g.state = StateMenu
}

// Restart clears all match state and puts a fresh delivery in play. The high
// score and difficulty are kept.
func (g *Game) Restart() {
	g.clearMatch()
	g.ball.Reset(g.difficulty.BallSpeed)
	g.batsman.ResetPosition()
	g.bowler.Reset()
	g.resetFielders()
	g.state = StatePlaying
	g.emit(Event{Kind: EventStart, Detail: g.difficulty.Name})
	g.announceDelivery()
}

func (g *Game) clearMatch() {
	g.score = 0
	g.outs = g.cfg.Scoring.Outs
	g.boundaries = 0
	g.sixes = 0
	g.streak = 0
	g.combo = 1
	g.milestone = 0
	g.spawnTimer = 0
	g.tickCount = 0
	g.celebration.Clear()
}

// Step advances the game by one tick. Navigation actions (confirm, up, down,
// pause, restart, menu, quit) are expected as single-tick presses; movement
// and shot actions as held state.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = g.events[:0]

	if in.Has(core.ActionQuit) && g.state != StateQuit {
		g.state = StateQuit
		g.emit(Event{Kind: EventQuit, Score: g.score})
		return core.StepResult{State: g.State()}
	}

	switch g.state {
	case StateMenu:
		g.stepMenu(in)

	case StatePlaying:
		switch {
		case in.Has(core.ActionMenu):
			g.toMenu()
		case in.Has(core.ActionPause):
			g.state = StatePaused
			g.emit(Event{Kind: EventPause, Score: g.score})
		default:
			g.update(in)
		}

	case StatePaused:
		switch {
		case in.Has(core.ActionMenu):
			g.toMenu()
		case in.Has(core.ActionPause):
			g.state = StatePlaying
			g.emit(Event{Kind: EventResume, Score: g.score})
		}

	case StateGameOver:
		switch {
		case in.Has(core.ActionRestart):
			g.Restart()
		case in.Has(core.ActionMenu):
			g.toMenu()
		}
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) stepMenu(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.menuSelection = (g.menuSelection - 1 + menuRows) % menuRows
	case in.Has(core.ActionDown):
		g.menuSelection = (g.menuSelection + 1) % menuRows
	case in.Has(core.ActionConfirm):
		switch g.menuSelection {
		case MenuStart:
			g.Restart()
		case MenuDifficulty:
			g.difficulty = g.cfg.NextDifficulty(g.difficulty.Name)
			g.emit(Event{Kind: EventDifficulty, Detail: g.difficulty.Name})
		case MenuQuit:
			g.state = StateQuit
			g.emit(Event{Kind: EventQuit, Score: g.score})
		}
	}
}

func (g *Game) toMenu() {
	g.state = StateMenu
	g.emit(Event{Kind: EventMenu, Score: g.score})
}

// update runs one tick of play in a fixed order: celebration, batsman,
// bowler, fielders, spawn timer, ball and outcome, then bat contact.
func (g *Game) update(in core.InputFrame) {
	g.tickCount++
	g.celebration.Tick()

	g.batsman.Update(in)
	g.bowler.Update()
	for _, f := range g.fielders {
		f.Update(g.ball.Pos, g.ball.Vel)
	}

	g.spawnTimer++
	if g.spawnTimer > g.difficulty.SpawnDelay {
		g.bowler.StartBowling()
		g.spawnTimer = 0
		g.emit(Event{Kind: EventBowl, Score: g.score})
	}

	outcome := g.ball.Update(g.tickCount)
	switch outcome {
	case OutcomeWicket:
		g.wicket()
	case OutcomeBoundary:
		g.boundaries++
		runs := g.addRuns(g.cfg.Scoring.BoundaryRuns)
		g.emit(Event{Kind: EventBoundary, Runs: runs, Score: g.score})
		g.celebrate(CelebrateBoundary)
		g.resetFielders()
		g.checkMilestones()
	case OutcomeSix:
		g.sixes++
		runs := g.addRuns(g.cfg.Scoring.SixRuns)
		g.emit(Event{Kind: EventSix, Runs: runs, Score: g.score})
		g.celebrate(CelebrateSix)
		g.resetFielders()
		g.checkMilestones()
	}
	if g.state != StatePlaying {
		return
	}
	if outcome != OutcomeNone {
		g.announceDelivery()
	}

	if g.ball.CheckCollision(g.batsman) {
		g.audio.Play(core.SoundHit)
		runs := g.addRuns(g.batsman.Runs(g.cfg.Scoring))
		g.emit(Event{Kind: EventHit, Runs: runs, Score: g.score, Detail: g.batsman.Stance.String()})
		g.checkMilestones()
	}
}

func (g *Game) wicket() {
	g.audio.Play(core.SoundWicket)
	g.outs--
	g.streak = 0
	g.combo = 1
	g.emit(Event{Kind: EventWicket, Score: g.score})
	g.resetFielders()

	if g.outs > 0 {
		return
	}
	g.state = StateGameOver
	g.emit(Event{Kind: EventGameOver, Score: g.score})
	if g.score > g.highScore {
		g.highScore = g.score
		g.emit(Event{Kind: EventHighScore, Score: g.score})
	}
}

// addRuns awards base runs at the current multiplier, extends the streak and
// recomputes the multiplier. It returns the runs awarded.
func (g *Game) addRuns(base int) int {
	runs := base * g.combo
	g.score += runs
	g.streak++
	g.combo = ComboMultiplier(g.cfg.Scoring.Combo, g.streak)
	return runs
}

func (g *Game) checkMilestones() {
	m, ok := NextMilestone(g.cfg.Scoring.Milestones, g.score, g.milestone)
	if !ok {
		return
	}
	g.milestone = m.Score
	g.emit(Event{Kind: EventMilestone, Score: g.score, Detail: m.Name})
	g.celebrate(m.Name)
}

func (g *Game) celebrate(kind string) {
	g.celebration.Trigger(kind, g.cfg.Scoring.CelebrationTicks)
	if g.celebration.Milestone() {
		g.audio.Play(core.SoundMilestone)
	} else {
		g.audio.Play(core.SoundBoundary)
	}
}

func (g *Game) resetFielders() {
	for _, f := range g.fielders {
		f.ResetPosition()
	}
}

// announceDelivery flags a special ball as soon as it is bowled.
func (g *Game) announceDelivery() {
	if g.ball.PowerUp == PowerNone {
		return
	}
	g.audio.Play(core.SoundPowerUp)
	g.emit(Event{Kind: EventPowerUp, Score: g.score, Detail: g.ball.PowerUp.String()})
}

func (g *Game) emit(e Event) {
	g.events = append(g.events, e)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
		InMenu:   g.state == StateMenu,
		Quit:     g.state == StateQuit,
	}
}

// Phase returns the state machine state (StateMenu, StatePlaying, ...).
func (g *Game) Phase() string {
	return g.state
}

// Events returns what happened during the last Step. The slice is reused by
// the next Step.
func (g *Game) Events() []Event {
	return g.events
}

// Score returns the current match score.
func (g *Game) Score() int {
	return g.score
}

// Outs returns the wickets remaining.
func (g *Game) Outs() int {
	return g.outs
}

// HighScore returns the best score of this session.
func (g *Game) HighScore() int {
	return g.highScore
}

// Combo returns the current score multiplier.
func (g *Game) Combo() int {
	return g.combo
}

// Difficulty returns the selected difficulty.
func (g *Game) Difficulty() config.Difficulty {
	return g.difficulty
}

// MenuOptions returns the main menu labels.
func (g *Game) MenuOptions() []string {
	return []string{
		"Start Game",
		"Difficulty: " + g.difficulty.Name,
		fmt.Sprintf("High Score: %d", g.highScore),
		"Quit",
	}
}

// MenuSelection returns the highlighted menu row.
func (g *Game) MenuSelection() int {
	return g.menuSelection
}
