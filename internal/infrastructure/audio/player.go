package audio

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/younwookim/tinytown/internal/application/world"
)

// Player is a world.AudioSink backed by an ebiten audio context
type Player struct {
	ctx     *audio.Context
	effects map[string][]byte
	music   *audio.Player
	volume  float64

	// active keeps one-shot players referenced until they finish
	active []*audio.Player
}

// NewPlayer synthesizes the cues and prepares the looping music.
// volume is clamped to [0, 1].
func NewPlayer(volume float64) (*Player, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}
	volume = min(max(volume, 0), 1)

	pcm := musicLoop()
	loop := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	music, err := ctx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("failed to create music player: %w", err)
	}
	music.SetVolume(volume)

	return &Player{
		ctx:     ctx,
		effects: Cues(),
		music:   music,
		volume:  volume,
	}, nil
}

// Has reports whether the cue was synthesized
func (p *Player) Has(cue string) bool {
	if cue == world.CueMusic {
		return p.music != nil
	}
	_, ok := p.effects[cue]
	return ok
}

// Play starts a cue. Music that is already playing keeps going.
func (p *Player) Play(cue string) {
	if cue == world.CueMusic {
		if !p.music.IsPlaying() {
			p.music.Play()
		}
		return
	}

	pcm, ok := p.effects[cue]
	if !ok {
		return
	}
	p.prune()
	sfx := p.ctx.NewPlayerFromBytes(pcm)
	sfx.SetVolume(p.volume)
	sfx.Play()
	p.active = append(p.active, sfx)
}

// StopMusic pauses the music and rewinds it for the next start
func (p *Player) StopMusic() {
	p.music.Pause()
	_ = p.music.Rewind()
}

// Close releases every player
func (p *Player) Close() error {
	for _, sfx := range p.active {
		_ = sfx.Close()
	}
	p.active = nil
	return p.music.Close()
}

func (p *Player) prune() {
	alive := p.active[:0]
	for _, sfx := range p.active {
		if sfx.IsPlaying() {
			alive = append(alive, sfx)
			continue
		}
		_ = sfx.Close()
	}
	p.active = alive
}

var _ world.AudioSink = (*Player)(nil)
