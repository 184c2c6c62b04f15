// Package world owns one running scene: the level, the player, the enemies,
// the score and the Menu/Playing/Paused/GameOver mode machine.
package world

import (
	"errors"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/younwookim/tinytown/internal/application/state"
	"github.com/younwookim/tinytown/internal/application/system"
	"github.com/younwookim/tinytown/internal/domain/entity"
	"github.com/younwookim/tinytown/internal/infrastructure/config"
	"github.com/younwookim/tinytown/internal/infrastructure/level"
)

// ErrQuit is returned by Update when the player picks Exit
var ErrQuit = errors.New("quit requested")

// World is the scene controller. It is not safe for concurrent use.
type World struct {
	cfg    *config.Config
	logger *log.Logger
	rng    *rand.Rand
	audio  AudioSink
	level  *level.Level

	// Rebuilt on every reset
	platforms *system.PlatformSet
	resolver  *system.Resolver
	physics   *system.PhysicsSystem
	behavior  *system.EnemyBehavior

	controller    *system.PlayerController
	encounter     *system.EncounterManager
	enemyResponse system.Response

	player  *entity.Actor
	enemies []*entity.Actor
	nextID  entity.EntityID

	mode         state.GameState
	score        int
	lastScore    int
	soundEnabled bool
	resets       int

	spawnTimer  float64
	spawnCursor int

	// events holds what the encounter pass reported on the last tick
	events []system.Event
}

// Option configures a World
type Option func(*World)

// WithLogger sets the logger; the default discards everything
func WithLogger(logger *log.Logger) Option {
	return func(w *World) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithAudio sets the audio sink; the default is silent
func WithAudio(sink AudioSink) Option {
	return func(w *World) {
		if sink != nil {
			w.audio = sink
		}
	}
}

// WithSound sets the initial sound switch, overriding the config
func WithSound(enabled bool) Option {
	return func(w *World) {
		w.soundEnabled = enabled
	}
}

// New creates a scene in the Menu mode. cfg is expected to be normalized.
// The same seed with the same inputs reproduces a run exactly.
func New(cfg *config.Config, lvl *level.Level, seed int64, opts ...Option) *World {
	w := &World{
		cfg:          cfg,
		logger:       log.New(io.Discard),
		rng:          rand.New(rand.NewSource(seed)),
		audio:        silentSink{},
		level:        lvl,
		controller:   system.NewPlayerController(cfg.Movement),
		encounter:    system.NewEncounterManager(cfg.Combat, cfg.Enemies.Attack.Enabled),
		mode:         state.StateMenu,
		soundEnabled: cfg.Audio.Enabled,
	}
	if cfg.Enemies.Bounce {
		w.enemyResponse = system.ResponseReflect
	}
	for _, opt := range opts {
		opt(w)
	}

	w.rebuild()
	return w
}

// Update advances the scene by dt seconds
func (w *World) Update(dt float64, in system.InputState) error {
	w.events = w.events[:0]

	switch w.mode {
	case state.StateMenu:
		return w.updateMenu(in)
	case state.StatePlaying:
		if in.Pause {
			w.setMode(state.StatePaused)
			return nil
		}
		w.tick(dt, in)
	case state.StatePaused:
		if in.Pause {
			w.setMode(state.StatePlaying)
		}
	case state.StateGameOver:
		if in.Acknowledged() {
			w.player.Heal()
			w.setMode(state.StateMenu)
		}
	}
	return nil
}

func (w *World) updateMenu(in system.InputState) error {
	if in.Confirm {
		w.start()
		return nil
	}
	if !in.MouseClick {
		return nil
	}
	if b, ok := w.ButtonAt(float64(in.MouseX), float64(in.MouseY)); ok {
		return w.press(b)
	}
	return nil
}

// tick is one Playing frame: player, enemies, encounters, then terminal checks
func (w *World) tick(dt float64, in system.InputState) {
	w.updatePlayer(dt, in)
	for _, e := range w.enemies {
		w.updateEnemy(e, dt)
	}

	var res system.EncounterResult
	w.enemies, res = w.encounter.Resolve(w.player, w.enemies)
	w.events = append(w.events, res.Events...)
	w.score += res.ScoreDelta
	w.cueEvents(res.Events)

	if res.PlayerDefeated {
		w.defeat()
		return
	}
	w.updateSpawner(dt)
}

func (w *World) updatePlayer(dt float64, in system.InputState) {
	p := w.player
	p.Combat.Tick(dt)

	applied := system.ApplyIntents(p, w.controller.Intents(p, in, dt))
	if applied.Attacked {
		w.play(CueAttack)
	}

	if w.controller.Frozen(p) {
		w.physics.Freeze(&p.Body)
		return
	}
	w.physics.Step(&p.Body, dt, system.ResponseClamp)
}

func (w *World) updateEnemy(e *entity.Actor, dt float64) {
	e.Combat.Tick(dt)
	system.ApplyIntents(e, w.behavior.Intents(e, w.player, dt))

	// Orbiters are placed directly and skip gravity and collision
	if !e.AI.Mode.Physical() {
		return
	}
	res := w.physics.Step(&e.Body, dt, w.enemyResponse)
	w.behavior.AfterStep(e, res)
}

func (w *World) cueEvents(events []system.Event) {
	for _, ev := range events {
		switch ev.Kind {
		case system.EventPlayerHit:
			w.play(CueHit)
		case system.EventEnemyDefeated:
			w.play(CueEnemyDefeated)
		}
	}
}

// defeat resets the scene and, for variants with a terminal screen, shows it
func (w *World) defeat() {
	w.lastScore = w.score
	w.logger.Info("player defeated", "score", w.score, "variant", w.cfg.Name)

	w.Reset()
	if w.cfg.Rules.GameOver == config.GameOverScreen {
		w.setMode(state.StateGameOver)
		w.play(CueGameOver)
	}
}

// Reset rebuilds the platforms, the player and the enemies and zeroes the score.
// The mode and the sound switch are kept.
func (w *World) Reset() {
	w.rebuild()
	w.resets++
}

func (w *World) rebuild() {
	w.platforms = system.NewPlatformSet(w.level.Platforms, w.level.Width, w.level.Height)
	w.resolver = system.NewResolver(w.platforms, w.level.Width, w.level.Height)
	w.physics = system.NewPhysicsSystem(w.cfg.Physics.Gravity, w.resolver)
	w.behavior = system.NewEnemyBehavior(w.cfg.Enemies, w.cfg.Physics.Gravity, w.resolver, w.rng)

	w.nextID = 0
	w.player = w.spawnPlayer()
	w.enemies = make([]*entity.Actor, 0, w.cfg.Enemies.Count)
	w.spawnCursor = 0
	for i := 0; i < w.cfg.Enemies.Count; i++ {
		w.enemies = append(w.enemies, w.spawnEnemy())
	}

	w.score = 0
	w.spawnTimer = 0
	w.logger.Debug("scene reset", "enemies", len(w.enemies), "platforms", w.platforms.Len())
}

func (w *World) setMode(next state.GameState) {
	if next == w.mode {
		return
	}
	w.logger.Debug("mode change", "from", w.mode, "to", next)
	w.mode = next
}

// Mode returns the current top-level mode
func (w *World) Mode() state.GameState {
	return w.mode
}

// Player returns the player actor
func (w *World) Player() *entity.Actor {
	return w.player
}

// Enemies returns the live enemies. The slice is owned by the World.
func (w *World) Enemies() []*entity.Actor {
	return w.enemies
}

// Platforms returns the level's valid platforms
func (w *World) Platforms() []entity.Platform {
	return w.platforms.Platforms()
}

// Score returns the running score
func (w *World) Score() int {
	return w.score
}

// LastScore returns the score reached when the player was last defeated
func (w *World) LastScore() int {
	return w.lastScore
}

// SoundEnabled reports the sound switch
func (w *World) SoundEnabled() bool {
	return w.soundEnabled
}

// Resets counts how many times the scene was rebuilt after construction
func (w *World) Resets() int {
	return w.resets
}

// Events returns what the encounter pass reported during the last Update
func (w *World) Events() []system.Event {
	return w.events
}

// Size returns the world dimensions
func (w *World) Size() (float64, float64) {
	return w.level.Width, w.level.Height
}

// Config returns the variant config the scene runs
func (w *World) Config() *config.Config {
	return w.cfg
}
