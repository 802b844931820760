// Package audio plays the game's synthesized sound effects through beep.
// Every failure degrades to silence: the game never waits on, or stops for,
// the sound device.
package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// SampleRate is the output rate used for synthesis and playback.
const SampleRate = beep.SampleRate(22050)

// ErrUnavailable reports that no sound device could be opened.
var ErrUnavailable = errors.New("audio: unavailable")

// Options configures an Engine.
type Options struct {
	Muted  bool
	Volume float64     // Linear master volume in (0, 1]; zero means 1
	Logger *log.Logger // Nil means log.Default()
}

// Engine renders every sound once up front and mixes replays into the
// speaker. It implements core.Player.
type Engine struct {
	opts    Options
	logger  *log.Logger
	buffers map[core.Sound]*beep.Buffer

	mu          sync.Mutex
	initialized bool

	muted    atomic.Bool
	played   atomic.Uint64
	failOnce sync.Once
}

// NewEngine synthesizes all sounds. It does not touch the sound device;
// call Init for that.
func NewEngine(opts Options) (*Engine, error) {
	if opts.Volume <= 0 || opts.Volume > 1 {
		opts.Volume = 1
	}
	e := &Engine{
		opts:    opts,
		logger:  opts.Logger,
		buffers: make(map[core.Sound]*beep.Buffer, len(core.Sounds)),
	}
	if e.logger == nil {
		e.logger = log.Default()
	}
	e.muted.Store(opts.Muted)

	for _, s := range core.Sounds {
		buf, err := render(s, SampleRate)
		if err != nil {
			return nil, err
		}
		e.buffers[s] = buf
	}
	return e, nil
}

// Init opens the speaker. It is safe to call more than once.
func (e *Engine) Init() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.initialized {
		return nil
	}
	if err := initSpeaker(); err != nil {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	e.initialized = true
	return nil
}

// initSpeaker turns a panic from the device layer into an error.
func initSpeaker() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("speaker init: %v", r)
		}
	}()
	return speaker.Init(SampleRate, SampleRate.N(time.Second/10))
}

// Play starts a sound without blocking. Unknown sounds are ignored; playback
// failures are logged once and then swallowed.
func (e *Engine) Play(s core.Sound) {
	if e.muted.Load() {
		return
	}
	buf, ok := e.buffers[s]
	if !ok {
		return
	}

	e.mu.Lock()
	ready := e.initialized
	e.mu.Unlock()
	if !ready {
		return
	}

	defer func() {
		if r := recover(); r != nil {
			e.failOnce.Do(func() {
				e.logger.Warn("audio playback failed, continuing silently", "sound", s, "err", r)
			})
		}
	}()

	speaker.Play(gain(buf.Streamer(0, buf.Len()), e.opts.Volume))
	e.played.Add(1)
}

// SetMuted silences or restores playback.
func (e *Engine) SetMuted(muted bool) {
	e.muted.Store(muted)
}

// Muted reports whether playback is silenced.
func (e *Engine) Muted() bool {
	return e.muted.Load()
}

// Ready reports whether the speaker is open.
func (e *Engine) Ready() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.initialized
}

// Played returns how many sounds have been handed to the speaker.
func (e *Engine) Played() uint64 {
	return e.played.Load()
}

// Duration returns the length of a rendered sound, or zero if unknown.
func (e *Engine) Duration(s core.Sound) time.Duration {
	buf, ok := e.buffers[s]
	if !ok {
		return 0
	}
	return SampleRate.D(buf.Len())
}

// Close stops playback and releases the speaker.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	e.initialized = false
}

var _ core.Player = (*Engine)(nil)
