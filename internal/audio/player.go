// Package audio synthesizes the stand's short sound cues. Everything is
// generated at play time; there are no sample assets. If the speaker cannot
// be opened the player stays silent and every cue is a no-op, so the game
// runs fine on machines with no audio device.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(48000)

// Player owns the speaker and mixes one-shot cues into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent player. Call Initialize to open the speaker.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Initialize opens the audio device. Safe to call more than once.
func (p *Player) Initialize() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup silences the player. The speaker itself stays open; beep has no
// close, but an empty mixer produces silence.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Clear()
	p.initialized = false
}

// play adds a one-shot streamer to the mixer. Cues on an uninitialized
// player are dropped.
func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	p.mixer.Add(s)
}

// PlayCoin plays the two-note sale jingle.
func (p *Player) PlayCoin() {
	p.play(beep.Seq(
		newTone(987.77, 60*time.Millisecond, 0.18),
		newTone(1318.51, 100*time.Millisecond, 0.18),
	))
}

// PlayPickup plays a short blip for a harvest.
func (p *Player) PlayPickup() {
	p.play(newTone(660, 50*time.Millisecond, 0.15))
}

// PlayBell rings the stand bell for day starts and endings.
func (p *Player) PlayBell() {
	p.play(newBell(880, 400*time.Millisecond, 0.2))
}

// PlayChime plays the rising purchase chime.
func (p *Player) PlayChime() {
	p.play(beep.Seq(
		newTone(523.25, 70*time.Millisecond, 0.16),
		newTone(659.25, 70*time.Millisecond, 0.16),
		newTone(783.99, 120*time.Millisecond, 0.16),
	))
}

// PlayBuzz plays the low rejection buzz.
func (p *Player) PlayBuzz() {
	p.play(newBuzz(120, 150*time.Millisecond, 0.2))
}
