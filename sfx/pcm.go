package sfx

import (
	"encoding/binary"
	"math"

	"github.com/gopxl/beep"

	"neonshooter/game"
)

// BytesPerFrame is one stereo frame of signed 16-bit little-endian PCM
const BytesPerFrame = 4

// Render drains s into signed 16-bit little-endian stereo PCM, the format
// ebiten's audio context plays
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(frame[1])))
		}
		if !ok || n < len(buf) {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}

// Bank holds every cue pre-rendered to PCM
type Bank map[game.Sound][]byte

// NewBank renders all cues at the given volume
func NewBank(volume float64) Bank {
	b := make(Bank, len(game.AllSounds))
	for _, s := range game.AllSounds {
		b[s] = Render(Streamer(s, volume))
	}
	return b
}
