package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// tone is a fixed-length sine blip with a short fade at both ends to avoid
// clicks.
type tone struct {
	freq    float64
	volume  float64
	pos     int
	samples int
}

func newTone(freq float64, d time.Duration, volume float64) beep.Streamer {
	return &tone{freq: freq, volume: volume, samples: sampleRate.N(d)}
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, false
		}
		t := float64(g.pos) / float64(sampleRate)
		v := g.volume * fade(g.pos, g.samples) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }

// bell is a struck tone: a fundamental plus its octave, both decaying
// exponentially.
type bell struct {
	freq    float64
	volume  float64
	pos     int
	samples int
}

func newBell(freq float64, d time.Duration, volume float64) beep.Streamer {
	return &bell{freq: freq, volume: volume, samples: sampleRate.N(d)}
}

func (g *bell) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, false
		}
		t := float64(g.pos) / float64(sampleRate)
		decay := math.Exp(-t * 7)
		v := g.volume * decay *
			(0.7*math.Sin(2*math.Pi*g.freq*t) + 0.3*math.Sin(2*math.Pi*g.freq*2*t))
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *bell) Err() error { return nil }

// buzz stacks the first three harmonics of a low tone for a harsh reject
// sound.
type buzz struct {
	freq    float64
	volume  float64
	pos     int
	samples int
}

func newBuzz(freq float64, d time.Duration, volume float64) beep.Streamer {
	return &buzz{freq: freq, volume: volume, samples: sampleRate.N(d)}
}

func (g *buzz) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, false
		}
		t := float64(g.pos) / float64(sampleRate)
		v := 0.5*math.Sin(2*math.Pi*g.freq*t) +
			0.25*math.Sin(2*math.Pi*g.freq*2*t) +
			0.125*math.Sin(2*math.Pi*g.freq*3*t)
		v *= g.volume * fade(g.pos, g.samples)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *buzz) Err() error { return nil }

// fade ramps a one-shot in over its first 2% and out over its last 20%.
func fade(pos, total int) float64 {
	attack := total / 50
	if attack > 0 && pos < attack {
		return float64(pos) / float64(attack)
	}
	release := total / 5
	if release > 0 && pos >= total-release {
		return float64(total-pos) / float64(release)
	}
	return 1.0
}
