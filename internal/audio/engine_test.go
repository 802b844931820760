package audio

import (
	"errors"
	"io"
	"math"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	e, err := NewEngine(opts)
	if err != nil {
		t.Fatalf("NewEngine() error: %v", err)
	}
	return e
}

// drain reads a rendered sound back as mono samples.
func drain(t *testing.T, e *Engine, s core.Sound) []float64 {
	t.Helper()
	buf := e.buffers[s]
	stream := buf.Streamer(0, buf.Len())
	out := make([]float64, 0, buf.Len())
	chunk := make([][2]float64, 512)
	for {
		n, ok := stream.Stream(chunk)
		for i := 0; i < n; i++ {
			out = append(out, chunk[i][0])
		}
		if !ok {
			break
		}
	}
	return out
}

func TestEngineRendersAllSounds(t *testing.T) {
	e := newTestEngine(t, Options{})

	tests := []struct {
		sound    core.Sound
		duration time.Duration
	}{
		{core.SoundHit, 200 * time.Millisecond},
		{core.SoundWicket, 500 * time.Millisecond},
		{core.SoundBoundary, 800 * time.Millisecond},
		{core.SoundPowerUp, 300 * time.Millisecond},
		{core.SoundMilestone, 1500 * time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(string(tt.sound), func(t *testing.T) {
			want := SampleRate.N(tt.duration)
			if got := e.buffers[tt.sound].Len(); got != want {
				t.Errorf("rendered %d samples, expected %d", got, want)
			}

			samples := drain(t, e, tt.sound)
			var peak float64
			for _, v := range samples {
				peak = math.Max(peak, math.Abs(v))
			}
			if peak == 0 {
				t.Error("sound is silent")
			}
			if peak > 1 {
				t.Errorf("peak %v clips", peak)
			}
		})
	}
}

func TestFadedToneStartsAndEndsQuiet(t *testing.T) {
	e := newTestEngine(t, Options{})

	for _, s := range []core.Sound{core.SoundHit, core.SoundPowerUp} {
		samples := drain(t, e, s)
		if len(samples) < 2 {
			t.Fatalf("%s: too short", s)
		}
		first, last := math.Abs(samples[0]), math.Abs(samples[len(samples)-1])
		if first > 1e-3 || last > 1e-3 {
			t.Errorf("%s: edges %v and %v should be silent", s, first, last)
		}
	}
}

func TestSweepChangesPitch(t *testing.T) {
	// Zero crossings per second track the frequency
	crossings := func(samples []float64) int {
		n := 0
		for i := 1; i < len(samples); i++ {
			if (samples[i-1] < 0) != (samples[i] < 0) {
				n++
			}
		}
		return n
	}

	e := newTestEngine(t, Options{})
	samples := drain(t, e, core.SoundWicket)
	quarter := len(samples) / 4
	head := crossings(samples[:quarter])
	tail := crossings(samples[len(samples)-quarter:])
	if head <= tail {
		t.Errorf("wicket should fall in pitch: %d crossings early, %d late", head, tail)
	}
}

func TestUnknownSound(t *testing.T) {
	if _, err := render("applause", SampleRate); err == nil {
		t.Error("expected an error for an unknown sound")
	}

	e := newTestEngine(t, Options{})
	if e.Duration("applause") != 0 {
		t.Error("unknown sound should have no duration")
	}
	e.Play("applause")
	if e.Played() != 0 {
		t.Error("unknown sound should not play")
	}
}

// TestEngineGracefulDegradation verifies playback is safe without a device.
func TestEngineGracefulDegradation(t *testing.T) {
	e := newTestEngine(t, Options{})

	defer func() {
		if r := recover(); r != nil {
			t.Errorf("Play panicked without initialization: %v", r)
		}
	}()

	for _, s := range core.Sounds {
		e.Play(s)
	}
	if e.Ready() || e.Played() != 0 {
		t.Errorf("uninitialized engine: ready=%v played=%d", e.Ready(), e.Played())
	}
	e.Close()
}

func TestEngineMute(t *testing.T) {
	e := newTestEngine(t, Options{Muted: true})
	if !e.Muted() {
		t.Fatal("expected muted engine")
	}

	if err := e.Init(); err != nil {
		// No device in CI; the game runs silent
		if !errors.Is(err, ErrUnavailable) {
			t.Errorf("Init() error should wrap ErrUnavailable, got %v", err)
		}
		t.Logf("audio unavailable (expected in test environment): %v", err)
		return
	}
	defer e.Close()

	e.Play(core.SoundHit)
	if e.Played() != 0 {
		t.Error("muted engine should not play")
	}

	e.SetMuted(false)
	e.Play(core.SoundHit)
	if e.Played() != 1 {
		t.Errorf("Played() = %d, expected 1", e.Played())
	}
}

func TestEngineDoubleInit(t *testing.T) {
	e := newTestEngine(t, Options{})

	if err := e.Init(); err != nil {
		t.Logf("first initialization failed (expected in test environment): %v", err)
		return
	}
	defer e.Close()

	if err := e.Init(); err != nil {
		t.Errorf("second Init should be a no-op, got %v", err)
	}
}
