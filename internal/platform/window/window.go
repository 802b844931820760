// Package window runs the cricket game in a desktop window with ebiten. The
// window is the world: one pixel per world unit, scaled by the OS window.
package window

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/cricket-arcade/internal/core"
	"github.com/vovakirdan/cricket-arcade/internal/cricket"
)

// Keys sampled as held state every tick.
var heldKeys = map[core.Action][]ebiten.Key{
	core.ActionLeft:      {ebiten.KeyA, ebiten.KeyArrowLeft},
	core.ActionRight:     {ebiten.KeyD, ebiten.KeyArrowRight},
	core.ActionPowerShot: {ebiten.KeySpace},
	core.ActionDefensive: {ebiten.KeyS},
}

// Keys that only count on the tick they go down.
var pressKeys = map[core.Action][]ebiten.Key{
	core.ActionUp:      {ebiten.KeyArrowUp, ebiten.KeyW},
	core.ActionDown:    {ebiten.KeyArrowDown},
	core.ActionConfirm: {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	core.ActionPause:   {ebiten.KeyP},
	core.ActionRestart: {ebiten.KeyR},
	core.ActionMenu:    {ebiten.KeyEscape, ebiten.KeyM},
	core.ActionQuit:    {ebiten.KeyQ},
}

// KeyState reports key status; the window uses ebiten's, tests inject fakes.
type KeyState struct {
	Pressed     func(ebiten.Key) bool
	JustPressed func(ebiten.Key) bool
}

func liveKeys() KeyState {
	return KeyState{Pressed: ebiten.IsKeyPressed, JustPressed: inpututil.IsKeyJustPressed}
}

// ReadInput builds this tick's input frame from the keyboard.
func ReadInput(ks KeyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range heldKeys {
		for _, k := range keys {
			if ks.Pressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	for action, keys := range pressKeys {
		for _, k := range keys {
			if ks.JustPressed(k) {
				frame.Set(action)
				break
			}
		}
	}
	return frame
}

// Options configures the window front-end.
type Options struct {
	Logger *log.Logger // Nil means log.Default()
	Scale  float64     // Initial window scale; zero means 1
}

// App adapts a cricket.Game to ebiten.Game.
type App struct {
	game   *cricket.Game
	keys   KeyState
	logger *log.Logger
}

// NewApp resets the game and wraps it for ebiten.
func NewApp(game *cricket.Game, cfg core.RuntimeConfig, opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}
	game.Reset(cfg)
	return &App{game: game, keys: liveKeys(), logger: logger}
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	result := a.game.Step(ReadInput(a.keys))
	for _, e := range a.game.Events() {
		a.logger.Debug(string(e.Kind), "runs", e.Runs, "score", e.Score, "detail", e.Detail)
	}
	if result.State.Quit {
		return ebiten.Termination
	}
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	a.game.Render(NewCanvas(screen))
}

// Layout implements ebiten.Game.
func (a *App) Layout(_, _ int) (int, int) {
	return core.WorldWidth, core.WorldHeight
}

// Run opens the window and blocks until the player quits or closes it.
func Run(game *cricket.Game, cfg core.RuntimeConfig, opts Options) error {
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}

	app := NewApp(game, cfg, opts)
	ebiten.SetWindowSize(int(core.WorldWidth*scale), int(core.WorldHeight*scale))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TickRate)

	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
