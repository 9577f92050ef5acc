package main

import (
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"neonshooter/game"
	"neonshooter/sfx"
)

// maxVoices caps how many cues may overlap
const maxVoices = 16

// AudioSink plays pre-rendered cues through ebiten's audio context
type AudioSink struct {
	ctx     *audio.Context
	bank    sfx.Bank
	playing []*audio.Player
	log     zerolog.Logger
}

// NewAudioSink renders every cue at volume and opens the audio context
func NewAudioSink(volume float64, log zerolog.Logger) *AudioSink {
	return &AudioSink{
		ctx:  audio.NewContext(int(sfx.SampleRate)),
		bank: sfx.NewBank(volume),
		log:  log,
	}
}

// Play starts a cue. Finished players are reclaimed first and cues beyond
// maxVoices are dropped.
func (a *AudioSink) Play(s game.Sound) {
	a.reap()
	if len(a.playing) >= maxVoices {
		a.log.Debug().Str("sound", string(s)).Msg("voice limit reached")
		return
	}
	pcm, ok := a.bank[s]
	if !ok {
		return
	}
	p := a.ctx.NewPlayerFromBytes(pcm)
	p.Play()
	a.playing = append(a.playing, p)
}

func (a *AudioSink) reap() {
	live := a.playing[:0]
	for _, p := range a.playing {
		if p.IsPlaying() {
			live = append(live, p)
			continue
		}
		if err := p.Close(); err != nil {
			a.log.Warn().Err(err).Msg("close player")
		}
	}
	a.playing = live
}
