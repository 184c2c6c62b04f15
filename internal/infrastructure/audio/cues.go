package audio

import "github.com/younwookim/tinytown/internal/application/world"

// effectTones are the one-shot cues
var effectTones = map[string]Tone{
	world.CueAttack:        {Freq: 880, EndFreq: 440, Duration: 0.08, Wave: WaveSquare, Gain: 0.25},
	world.CueHit:           {Freq: 180, EndFreq: 90, Duration: 0.12, Wave: WaveSaw, Gain: 0.35},
	world.CueEnemyDefeated: {Freq: 660, EndFreq: 990, Duration: 0.2, Wave: WaveSquare, Gain: 0.25},
	world.CueGameOver:      {Freq: 440, EndFreq: 110, Duration: 0.8, Wave: WaveSaw, Gain: 0.35},
}

// musicLoop is a four-bar arpeggio in A minor
func musicLoop() []byte {
	const beat = 0.25
	chords := [][]float64{
		{220.00, 261.63, 329.63},
		{174.61, 220.00, 261.63},
		{196.00, 246.94, 293.66},
		{164.81, 207.65, 246.94},
	}

	var notes []Note
	at := 0.0
	for _, chord := range chords {
		for step := 0; step < 8; step++ {
			notes = append(notes, Note{
				At:   at,
				Tone: Tone{Freq: chord[step%len(chord)], Duration: beat * 0.9, Wave: WaveSine, Gain: 0.18},
			})
			at += beat
		}
	}
	return Sequence(at, notes...)
}

// Cues synthesizes every one-shot cue
func Cues() map[string][]byte {
	out := make(map[string][]byte, len(effectTones))
	for name, tone := range effectTones {
		out[name] = Synthesize(tone)
	}
	return out
}
