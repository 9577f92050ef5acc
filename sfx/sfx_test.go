package sfx

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"neonshooter/game"
)

func TestEveryCueHasARecipe(t *testing.T) {
	for _, s := range game.AllSounds {
		if Streamer(s, 1) == nil {
			t.Errorf("Expected a streamer for %s", s)
		}
		if Duration(s) <= 0 {
			t.Errorf("Expected %s to have a duration", s)
		}
	}
	if Streamer("kazoo", 1) != nil {
		t.Error("Expected nil for an unknown cue")
	}
}

func TestRenderLength(t *testing.T) {
	for _, s := range game.AllSounds {
		pcm := Render(Streamer(s, 0.5))
		want := SampleRate.N(Duration(s)) * BytesPerFrame
		if len(pcm) != want {
			t.Errorf("%s: expected %d bytes, got %d", s, want, len(pcm))
		}
	}
}

func TestRenderSilentAtZeroVolume(t *testing.T) {
	pcm := Render(Streamer(game.SoundExplode, 0))
	for i, b := range pcm {
		if b != 0 {
			t.Fatalf("Expected silence, got byte %d = %d", i, b)
		}
	}
}

func TestRenderIsAudible(t *testing.T) {
	pcm := Render(Streamer(game.SoundShootDefault, 1))
	loud := false
	for _, b := range pcm {
		if b != 0 {
			loud = true
			break
		}
	}
	if !loud {
		t.Error("Expected non-silent PCM at full volume")
	}
}

func TestOscillatorStaysInRange(t *testing.T) {
	for _, w := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		osc := newOscillator(tone{Freq: 440, To: 880, Wave: w}, 1000)
		samples := make([][2]float64, 1200)
		n, ok := osc.Stream(samples)
		if !ok || n != 1000 {
			t.Errorf("Wave %d: expected 1000 samples, got %d (ok=%v)", w, n, ok)
		}
		for i := 0; i < n; i++ {
			if samples[i][0] < -1 || samples[i][0] > 1 {
				t.Fatalf("Wave %d: sample %d out of range: %f", w, i, samples[i][0])
			}
		}
		if n, ok := osc.Stream(samples); ok || n != 0 {
			t.Errorf("Wave %d: expected drained oscillator, got %d (ok=%v)", w, n, ok)
		}
	}
}

func TestEnvelopeFadesIn(t *testing.T) {
	rate := beep.SampleRate(1000)
	src := newOscillator(tone{Freq: 0, Wave: WaveSquare}, rate.N(100*time.Millisecond))
	env := newEnvelope(src, 100, 10, 10)

	samples := make([][2]float64, 100)
	env.Stream(samples)
	if samples[0][0] != 0 {
		t.Errorf("Expected first sample silent, got %f", samples[0][0])
	}
	if samples[50][0] != 1 {
		t.Errorf("Expected full level mid-tone, got %f", samples[50][0])
	}
	if samples[99][0] >= samples[90][0] {
		t.Errorf("Expected release to fade out, got %f after %f", samples[99][0], samples[90][0])
	}
}

func TestNewBank(t *testing.T) {
	b := NewBank(0.5)
	for _, s := range game.AllSounds {
		if len(b[s]) == 0 {
			t.Errorf("Expected rendered PCM for %s", s)
		}
	}
}
