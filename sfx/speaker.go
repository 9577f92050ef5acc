package sfx

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"neonshooter/game"
)

// SpeakerSink plays cues straight to the system audio device through a
// shared mixer. It satisfies game.AudioSink.
type SpeakerSink struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
}

// NewSpeakerSink creates a sink at the given volume; call Init before use
func NewSpeakerSink(volume float64) *SpeakerSink {
	return &SpeakerSink{mixer: &beep.Mixer{}, volume: volume}
}

// Init opens the audio device with a 100ms buffer
func (s *SpeakerSink) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(s.mixer)
	s.initialized = true
	return nil
}

// Play mixes the cue in. Before Init it does nothing.
func (s *SpeakerSink) Play(snd game.Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	st := Streamer(snd, s.volume)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing
func (s *SpeakerSink) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized {
		return
	}
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	s.initialized = false
}
