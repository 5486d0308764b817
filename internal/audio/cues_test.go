package audio

import (
	"testing"
	"time"
)

func TestToneStaysInRange(t *testing.T) {
	g := newTone(440.0, 100*time.Millisecond, 0.2)

	samples := make([][2]float64, 1000)
	n, ok := g.Stream(samples)
	if !ok {
		t.Fatal("expected tone to keep streaming")
	}
	if n != 1000 {
		t.Fatalf("streamed %d samples, want 1000", n)
	}
	for i := 0; i < n; i++ {
		if samples[i][0] < -1.0 || samples[i][0] > 1.0 {
			t.Fatalf("sample %d out of range: %f", i, samples[i][0])
		}
		if samples[i][0] != samples[i][1] {
			t.Fatalf("sample %d not mono: %f vs %f", i, samples[i][0], samples[i][1])
		}
	}
	if g.Err() != nil {
		t.Errorf("unexpected error: %v", g.Err())
	}
}

func TestToneEndsAfterDuration(t *testing.T) {
	d := 10 * time.Millisecond
	want := sampleRate.N(d)
	g := newTone(440.0, d, 0.2)

	samples := make([][2]float64, want*2)
	n, ok := g.Stream(samples)
	if ok {
		t.Error("expected stream to report completion")
	}
	if n != want {
		t.Errorf("streamed %d samples, want %d", n, want)
	}

	n, ok = g.Stream(samples[:10])
	if ok || n != 0 {
		t.Errorf("finished tone streamed again: n=%d ok=%v", n, ok)
	}
}

func TestBellDecays(t *testing.T) {
	g := newBell(880.0, 400*time.Millisecond, 0.2)

	total := sampleRate.N(400 * time.Millisecond)
	samples := make([][2]float64, total)
	n, _ := g.Stream(samples)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}

	peak := func(from, to int) float64 {
		m := 0.0
		for i := from; i < to; i++ {
			if v := samples[i][0]; v > m {
				m = v
			} else if -v > m {
				m = -v
			}
		}
		return m
	}

	early := peak(0, total/8)
	late := peak(total-total/8, total)
	if late >= early {
		t.Errorf("bell did not decay: early peak %f, late peak %f", early, late)
	}
}

func TestBuzzFadesInAndOut(t *testing.T) {
	d := 150 * time.Millisecond
	total := sampleRate.N(d)
	g := newBuzz(120.0, d, 0.2)

	samples := make([][2]float64, total)
	n, _ := g.Stream(samples)
	if n != total {
		t.Fatalf("streamed %d samples, want %d", n, total)
	}
	if samples[0][0] != 0.0 {
		t.Errorf("buzz does not start silent: %f", samples[0][0])
	}
	if last := samples[total-1][0]; last < -0.01 || last > 0.01 {
		t.Errorf("buzz does not end near silence: %f", last)
	}
}

func TestPlayerSilentWithoutInitialize(t *testing.T) {
	p := NewPlayer()

	// None of these may panic or block on a player that never opened the
	// speaker.
	p.PlayCoin()
	p.PlayPickup()
	p.PlayBell()
	p.PlayChime()
	p.PlayBuzz()
	p.Cleanup()

	if p.initialized {
		t.Error("player marked initialized without Initialize")
	}
}
