package world

// Audio cue names
const (
	CueAttack        = "attack"
	CueHit           = "hit"
	CueEnemyDefeated = "enemy_defeated"
	CueGameOver      = "game_over"
	CueMusic         = "background_music"
)

// AudioSink plays named cues. Playback is fire-and-forget; callers ask Has
// before Play instead of relying on Play to fail quietly.
type AudioSink interface {
	Has(cue string) bool
	Play(cue string)
	StopMusic()
}

type silentSink struct{}

func (silentSink) Has(string) bool { return false }
func (silentSink) Play(string)     {}
func (silentSink) StopMusic()      {}
