// Package audio plays the game's sound cues through ebiten's audio context.
// No sound files ship with the game; every cue is synthesized at startup.
package audio

import (
	"encoding/binary"
	"math"
)

// SampleRate is the rate of every synthesized buffer
const SampleRate = 44100

// bytesPerFrame is 16-bit little-endian stereo
const bytesPerFrame = 4

// Wave is an oscillator shape
type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
)

// Tone is a single note with a linear pitch slide and a release
type Tone struct {
	Freq     float64
	EndFreq  float64 // zero keeps Freq
	Duration float64
	Wave     Wave
	Gain     float64
}

// Note is a tone placed at an offset inside a longer clip
type Note struct {
	At   float64
	Tone Tone
}

// Synthesize renders one tone as PCM
func Synthesize(t Tone) []byte {
	return Sequence(t.Duration, Note{Tone: t})
}

// Sequence renders notes into a clip of the given length. Overlapping notes
// are mixed and clipped.
func Sequence(length float64, notes ...Note) []byte {
	frames := int(math.Round(length * SampleRate))
	if frames <= 0 {
		return nil
	}
	mix := make([]float64, frames)
	for _, n := range notes {
		render(mix, n)
	}

	buf := make([]byte, frames*bytesPerFrame)
	for i, v := range mix {
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame:], uint16(s))
		binary.LittleEndian.PutUint16(buf[i*bytesPerFrame+2:], uint16(s))
	}
	return buf
}

func render(mix []float64, n Note) {
	t := n.Tone
	start := int(math.Round(n.At * SampleRate))
	count := int(math.Round(t.Duration * SampleRate))
	end := t.EndFreq
	if end == 0 {
		end = t.Freq
	}

	phase := 0.0
	for i := 0; i < count; i++ {
		idx := start + i
		if idx < 0 || idx >= len(mix) {
			continue
		}
		progress := float64(i) / float64(count)
		freq := t.Freq + (end-t.Freq)*progress
		phase += freq / SampleRate
		phase -= math.Floor(phase)

		mix[idx] += oscillate(t.Wave, phase) * t.Gain * envelope(progress)
	}
}

func oscillate(w Wave, phase float64) float64 {
	switch w {
	case WaveSquare:
		if phase < 0.5 {
			return 1
		}
		return -1
	case WaveSaw:
		return 2*phase - 1
	default:
		return math.Sin(2 * math.Pi * phase)
	}
}

// envelope is a short attack followed by a linear release
func envelope(progress float64) float64 {
	const attack = 0.05
	if progress < attack {
		return progress / attack
	}
	return 1 - (progress-attack)/(1-attack)
}
