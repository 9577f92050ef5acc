// Package sfx synthesises the game's sound cues with beep. Nothing is
// loaded from disk; every cue is built from a few oscillator tones.
package sfx

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"

	"neonshooter/game"
)

// SampleRate used for every cue
const SampleRate = beep.SampleRate(44100)

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is one oscillator segment, optionally sweeping from Freq to To
type tone struct {
	Freq     float64
	To       float64
	Duration time.Duration
	Wave     Wave
	Gain     float64
}

// recipe layers play together; the tones of a layer play in sequence
type recipe [][]tone

var recipes = map[game.Sound]recipe{
	game.SoundShootDefault: {
		{{Freq: 880, To: 660, Duration: 60 * time.Millisecond, Wave: WaveSquare, Gain: 0.25}},
	},
	game.SoundShootShotgun: {
		{{Freq: 220, To: 110, Duration: 120 * time.Millisecond, Wave: WaveSaw, Gain: 0.3}},
		{{Duration: 90 * time.Millisecond, Wave: WaveNoise, Gain: 0.2}},
	},
	game.SoundShootPierce: {
		{{Freq: 1200, To: 400, Duration: 150 * time.Millisecond, Wave: WaveSaw, Gain: 0.25}},
	},
	game.SoundHit: {
		{{Freq: 300, To: 200, Duration: 40 * time.Millisecond, Wave: WaveSquare, Gain: 0.2}},
	},
	game.SoundExplode: {
		{{Duration: 250 * time.Millisecond, Wave: WaveNoise, Gain: 0.35}},
		{{Freq: 120, To: 40, Duration: 250 * time.Millisecond, Wave: WaveSine, Gain: 0.4}},
	},
	game.SoundLevelUp: {
		{
			{Freq: 523.25, Duration: 90 * time.Millisecond, Gain: 0.3},
			{Freq: 659.25, Duration: 90 * time.Millisecond, Gain: 0.3},
			{Freq: 783.99, Duration: 90 * time.Millisecond, Gain: 0.3},
			{Freq: 1046.5, Duration: 200 * time.Millisecond, Gain: 0.3},
		},
	},
	game.SoundWin: {
		{
			{Freq: 523.25, Duration: 120 * time.Millisecond, Gain: 0.3},
			{Freq: 659.25, Duration: 120 * time.Millisecond, Gain: 0.3},
			{Freq: 783.99, Duration: 120 * time.Millisecond, Gain: 0.3},
			{Freq: 1046.5, Duration: 120 * time.Millisecond, Gain: 0.3},
			{Freq: 1318.51, Duration: 400 * time.Millisecond, Gain: 0.3},
		},
		{
			{Duration: 480 * time.Millisecond, Gain: 0},
			{Freq: 659.25, Duration: 400 * time.Millisecond, Gain: 0.2},
		},
	},
	game.SoundPickup: {
		{{Freq: 660, To: 1320, Duration: 120 * time.Millisecond, Wave: WaveSine, Gain: 0.3}},
	},
	game.SoundDamage: {
		{{Freq: 160, To: 60, Duration: 250 * time.Millisecond, Wave: WaveSaw, Gain: 0.35}},
	},
}

// Duration returns how long a cue plays
func Duration(s game.Sound) time.Duration {
	var longest time.Duration
	for _, layer := range recipes[s] {
		var d time.Duration
		for _, t := range layer {
			d += t.Duration
		}
		longest = max(longest, d)
	}
	return longest
}

// Streamer builds a fresh streamer for the cue at the given volume in [0,1].
// Unknown cues return nil.
func Streamer(s game.Sound, volume float64) beep.Streamer {
	r, ok := recipes[s]
	if !ok {
		return nil
	}

	layers := make([]beep.Streamer, 0, len(r))
	for _, layer := range r {
		seq := make([]beep.Streamer, 0, len(layer))
		for _, t := range layer {
			seq = append(seq, t.streamer())
		}
		layers = append(layers, beep.Seq(seq...))
	}
	// Mix never ends on its own; bound it to the longest layer
	return newVolume(beep.Take(SampleRate.N(Duration(s)), beep.Mix(layers...)), volume)
}

func (t tone) streamer() beep.Streamer {
	n := SampleRate.N(t.Duration)
	if t.Gain <= 0 {
		return beep.Silence(n)
	}

	var src beep.Streamer
	if t.Wave == WaveSine && t.To == 0 {
		sine, err := generators.SineTone(SampleRate, t.Freq)
		if err != nil {
			return beep.Silence(n)
		}
		src = beep.Take(n, sine)
	} else {
		src = newOscillator(t, n)
	}

	attack := min(5*time.Millisecond, t.Duration/4)
	release := t.Duration / 3
	return newVolume(newEnvelope(src, n, SampleRate.N(attack), SampleRate.N(release)), t.Gain)
}

// oscillator generates one tone, sweeping its frequency linearly
type oscillator struct {
	from, to float64
	wave     Wave
	phase    float64
	position int
	total    int
}

func newOscillator(t tone, samples int) beep.Streamer {
	to := t.To
	if to == 0 {
		to = t.Freq
	}
	return &oscillator{from: t.Freq, to: to, wave: t.Wave, total: samples}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.total {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		progress := float64(o.position) / float64(o.total)
		freq := o.from + (o.to-o.from)*progress
		o.phase += freq / float64(SampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack samples and out over release samples
type envelope struct {
	streamer beep.Streamer
	position int
	total    int
	attack   int
	release  int
}

func newEnvelope(s beep.Streamer, total, attack, release int) beep.Streamer {
	return &envelope{streamer: s, total: total, attack: attack, release: release}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if remaining := e.total - e.position; e.release > 0 && remaining < e.release {
			vol = max(0, float64(remaining)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; zero or less is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
