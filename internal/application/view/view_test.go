package view

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tinytown/internal/application/state"
	"github.com/younwookim/tinytown/internal/application/system"
	"github.com/younwookim/tinytown/internal/application/world"
	"github.com/younwookim/tinytown/internal/domain/entity"
	"github.com/younwookim/tinytown/internal/infrastructure/config"
	"github.com/younwookim/tinytown/internal/infrastructure/level"
)

type rectCall struct {
	rect  entity.Rect
	color color.Color
}

type textCall struct {
	text     string
	x, y     float64
	centered bool
}

type spriteCall struct {
	name string
	pos  entity.Vec2
	flip bool
}

// fakeSurface records draw calls; only sprites listed in known exist
type fakeSurface struct {
	known   map[string]bool
	fill    color.Color
	rects   []rectCall
	texts   []textCall
	sprites []spriteCall
}

func newFakeSurface(known ...string) *fakeSurface {
	s := &fakeSurface{known: map[string]bool{}}
	for _, k := range known {
		s.known[k] = true
	}
	return s
}

func (s *fakeSurface) Fill(c color.Color) { s.fill = c }

func (s *fakeSurface) FillRect(r entity.Rect, c color.Color) {
	s.rects = append(s.rects, rectCall{rect: r, color: c})
}

func (s *fakeSurface) DrawSprite(name string, pos entity.Vec2, flip bool) bool {
	if !s.known[name] {
		return false
	}
	s.sprites = append(s.sprites, spriteCall{name: name, pos: pos, flip: flip})
	return true
}

func (s *fakeSurface) DrawText(text string, x, y float64, centered bool, _ color.Color) {
	s.texts = append(s.texts, textCall{text: text, x: x, y: y, centered: centered})
}

func (s *fakeSurface) textStrings() []string {
	out := make([]string, 0, len(s.texts))
	for _, t := range s.texts {
		out = append(out, t.text)
	}
	return out
}

func (s *fakeSurface) rectsColored(c color.Color) []entity.Rect {
	var out []entity.Rect
	for _, r := range s.rects {
		if r.color == c {
			out = append(out, r.rect)
		}
	}
	return out
}

func createTestWorld(t *testing.T) *world.World {
	t.Helper()
	cfg, err := config.LoadPreset("survivor")
	require.NoError(t, err)
	cfg.Normalize()
	return world.New(cfg, level.Inline(cfg), 7)
}

func startTestWorld(t *testing.T) *world.World {
	t.Helper()
	w := createTestWorld(t)
	require.NoError(t, w.Update(1.0/60, system.InputState{Confirm: true}))
	return w
}

func TestRenderer_Menu(t *testing.T) {
	w := createTestWorld(t)
	s := newFakeSurface()

	NewRenderer().Draw(s, w)

	assert.Equal(t, colorBackground, s.fill)
	assert.Len(t, s.rectsColored(colorButton), 3)
	assert.Equal(t, []textCall{
		{text: "Start Game", x: 400, y: 270, centered: true},
		{text: "Sound: ON", x: 400, y: 330, centered: true},
		{text: "Exit", x: 400, y: 390, centered: true},
	}, s.texts)
}

func TestRenderer_PlayingFallback(t *testing.T) {
	w := startTestWorld(t)
	s := newFakeSurface()

	NewRenderer().Draw(s, w)

	assert.Equal(t, []entity.Rect{w.Player().Bounds()}, s.rectsColored(colorPlayer))
	assert.Len(t, s.rectsColored(colorEnemy), len(w.Enemies()))
	assert.Equal(t, []entity.Rect{{X: 10, Y: 10, W: 200, H: 20}}, s.rectsColored(colorHealth))
	assert.Contains(t, s.textStrings(), "Score: 0")
}

func TestRenderer_PlayingSprites(t *testing.T) {
	w := startTestWorld(t)
	w.Player().Facing = entity.FacingLeft
	s := newFakeSurface("character_idle1", "enemy_idle1", "enemy_walk1")

	NewRenderer().Draw(s, w)

	assert.Empty(t, s.rectsColored(colorPlayer))
	assert.Empty(t, s.rectsColored(colorEnemy))
	require.NotEmpty(t, s.sprites)
	last := s.sprites[len(s.sprites)-1]
	assert.Equal(t, spriteCall{name: "character_idle1", pos: w.Player().Body.Pos, flip: true}, last)
}

func TestRenderer_HealthBarFollowsMaxHealth(t *testing.T) {
	cfg, err := config.LoadPreset("survivor")
	require.NoError(t, err)
	cfg.Player.MaxHealth = 60
	cfg.Normalize()
	w := world.New(cfg, level.Inline(cfg), 7)
	require.NoError(t, w.Update(1.0/60, system.InputState{Confirm: true}))
	require.Equal(t, 60, w.Player().Health)

	r := NewRenderer()
	r.Update(1.0/60, w)
	s := newFakeSurface()
	r.Draw(s, w)

	assert.Equal(t, []entity.Rect{{X: 10, Y: 10, W: 120, H: 20}}, s.rectsColored(colorHealth))
}

func TestRenderer_Platforms(t *testing.T) {
	cfg, err := config.LoadPreset("bouncer")
	require.NoError(t, err)
	cfg.Normalize()
	w := world.New(cfg, level.Inline(cfg), 1)
	require.NoError(t, w.Update(1.0/60, system.InputState{Confirm: true}))
	s := newFakeSurface()

	NewRenderer().Draw(s, w)

	assert.Len(t, s.rectsColored(MaterialColor(entity.MaterialMetal)), 3)
	assert.Len(t, s.rectsColored(MaterialColor(entity.MaterialWood)), 2)
}

func TestRenderer_PausedAndGameOver(t *testing.T) {
	w := startTestWorld(t)

	require.NoError(t, w.Update(1.0/60, system.InputState{Pause: true}))
	s := newFakeSurface()
	NewRenderer().Draw(s, w)
	assert.Contains(t, s.textStrings(), "PAUSED")
	require.NoError(t, w.Update(1.0/60, system.InputState{Pause: true}))

	// Walk an enemy into a nearly dead player
	p := w.Player()
	p.Health = 10
	e := w.Enemies()[0]
	e.AI.Modes = []entity.AIMode{entity.AIPatrol}
	e.AI.Mode = entity.AIPatrol
	e.Body.Place(p.Body.Pos)
	require.NoError(t, w.Update(1.0/60, system.InputState{}))
	require.Equal(t, state.StateGameOver, w.Mode())

	s = newFakeSurface()
	NewRenderer().Draw(s, w)
	assert.Equal(t, []textCall{
		{text: "GAME OVER", x: 400, y: 300, centered: true},
		{text: "Click to return to menu", x: 400, y: 340, centered: true},
		{text: "Score: 0", x: 400, y: 380, centered: true},
	}, s.texts)
	assert.Empty(t, s.rects)
}

func TestAnimation(t *testing.T) {
	p := entity.NewPlayer(1, 100, 100, 32, 32, 100, entity.NewCombatTimers(0.3, 0.5))
	assert.Equal(t, "idle", Animation(p))

	p.Body.Pos.X += 3
	assert.Equal(t, "walk", Animation(p))

	require.True(t, p.Combat.Trigger())
	assert.Equal(t, "attack", Animation(p))

	ai := entity.NewEnemyAI([]entity.AIMode{entity.AIPatrol}, entity.Vec2{}, 0)
	e := entity.NewEnemy(2, 0, 0, 32, 32, 50, entity.NewCombatTimers(0.25, 1), ai)
	require.True(t, e.Combat.Trigger())
	assert.Equal(t, "idle", Animation(e))
}

func TestRenderer_SpriteName(t *testing.T) {
	r := NewRenderer()
	r.Frames["character_walk"] = 2
	p := entity.NewPlayer(1, 100, 100, 32, 32, 100, entity.NewCombatTimers(0.3, 0.5))
	p.Body.Pos.X++

	assert.Equal(t, "character_walk1", r.SpriteName(p, SpritePlayer))
	r.clock = 0.15
	assert.Equal(t, "character_walk2", r.SpriteName(p, SpritePlayer))
	r.clock = 0.25
	assert.Equal(t, "character_walk1", r.SpriteName(p, SpritePlayer))
	assert.Equal(t, "enemy_walk1", r.SpriteName(p, SpriteEnemy))
}

func TestHealthBar(t *testing.T) {
	h := NewHealthBar(100)
	assert.Equal(t, 200.0, h.Width())

	h.Update(0.1, 90)
	assert.Greater(t, h.Width(), 180.0)
	assert.Less(t, h.Width(), 200.0)

	h.Update(1, 90)
	assert.Equal(t, 180.0, h.Width())

	h.Update(0.01, 100)
	assert.Equal(t, 200.0, h.Width())

	h.Update(0.01, 0)
	h.Update(1, 0)
	assert.Equal(t, 0.0, h.Width())
}
