package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"github.com/vovakirdan/cricket-arcade/internal/core"
)

// Sound lengths.
const (
	hitDuration       = 200 * time.Millisecond
	wicketDuration    = 500 * time.Millisecond
	boundaryDuration  = 800 * time.Millisecond
	powerUpDuration   = 300 * time.Millisecond
	milestoneDuration = 1500 * time.Millisecond

	fadeDuration = 100 * time.Millisecond
)

// waveFunc returns a sample for time t (seconds) at progress p in [0, 1).
type waveFunc func(t, p float64) float64

// wave renders a mono waveFunc for a fixed number of samples.
type wave struct {
	rate beep.SampleRate
	fn   waveFunc
	pos  int
	n    int
}

func newWave(rate beep.SampleRate, d time.Duration, fn waveFunc) *wave {
	return &wave{rate: rate, fn: fn, n: rate.N(d)}
}

func (w *wave) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if w.pos >= w.n {
			return i, i > 0
		}
		t := float64(w.pos) / float64(w.rate)
		v := w.fn(t, float64(w.pos)/float64(w.n))
		samples[i][0] = v
		samples[i][1] = v
		w.pos++
	}
	return len(samples), true
}

func (w *wave) Err() error { return nil }

// fade ramps a fixed-length stream in and out to avoid clicks. The ramps may
// overlap on short sounds.
type fade struct {
	streamer beep.Streamer
	pos      int
	n        int
	ramp     int
}

func newFade(s beep.Streamer, rate beep.SampleRate, d, ramp time.Duration) *fade {
	return &fade{streamer: s, n: rate.N(d), ramp: rate.N(ramp)}
}

func (f *fade) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = f.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		g := 1.0
		if f.ramp > 0 {
			g = math.Min(1, float64(f.pos)/float64(f.ramp))
			g *= math.Min(1, float64(f.n-1-f.pos)/float64(f.ramp))
		}
		g = math.Max(0, g)
		samples[i][0] *= g
		samples[i][1] *= g
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.streamer.Err() }

// gain scales a stream by a linear factor.
func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

// sweep returns a sine whose frequency moves linearly from 'from' to 'to'.
func sweep(from, to float64) waveFunc {
	return func(t, p float64) float64 {
		f := from + (to-from)*p
		return math.Sin(2 * math.Pi * f * t)
	}
}

// fadedTone is a plain sine with fade ramps at both ends.
func fadedTone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, fmt.Errorf("audio: tone %.0f Hz: %w", freq, err)
	}
	return newFade(beep.Take(rate.N(d), sine), rate, d, fadeDuration), nil
}

// synthesize builds the streamer for a sound. Each call returns a fresh stream.
func synthesize(s core.Sound, rate beep.SampleRate) (beep.Streamer, error) {
	switch s {
	case core.SoundHit:
		return fadedTone(rate, 200, hitDuration)

	case core.SoundWicket:
		return gain(newWave(rate, wicketDuration, sweep(400, 100)), 0.5), nil

	case core.SoundBoundary:
		return beep.Take(rate.N(boundaryDuration), beep.Mix(
			gain(newWave(rate, boundaryDuration, sweep(300, 500)), 0.3),
			gain(newWave(rate, boundaryDuration, sweep(450, 750)), 0.2),
		)), nil

	case core.SoundPowerUp:
		return fadedTone(rate, 440, powerUpDuration)

	case core.SoundMilestone:
		return newWave(rate, milestoneDuration, fanfare), nil
	}
	return nil, fmt.Errorf("audio: unknown sound %q", s)
}

// fanfare stacks harmonics of A4 under a 5 Hz tremolo.
func fanfare(t, _ float64) float64 {
	const base = 440
	var v float64
	for _, h := range [...]float64{1, 1.5, 2, 2.5} {
		v += math.Sin(2*math.Pi*base*h*t) * (0.2 / h)
	}
	return v * (1 + 0.3*math.Sin(2*math.Pi*5*t))
}

// render synthesizes a sound into a replayable buffer.
func render(s core.Sound, rate beep.SampleRate) (*beep.Buffer, error) {
	stream, err := synthesize(s, rate)
	if err != nil {
		return nil, err
	}
	buf := beep.NewBuffer(beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2})
	buf.Append(stream)
	return buf, nil
}
