package view

import (
	"fmt"
	"image/color"

	"github.com/younwookim/tinytown/internal/application/state"
	"github.com/younwookim/tinytown/internal/application/world"
	"github.com/younwookim/tinytown/internal/domain/entity"
)

// Sprite name prefixes
const (
	SpritePlayer = "character"
	SpriteEnemy  = "enemy"
)

const frameDelay = 0.1

// Renderer draws each mode of a World
type Renderer struct {
	health *HealthBar
	clock  float64

	// Frames is the number of frames per animation, keyed by "<prefix>_<anim>".
	// Missing entries count as one frame.
	Frames map[string]int

	// ShowHitboxes outlines live attack hitboxes
	ShowHitboxes bool
}

// NewRenderer creates a renderer for a fresh scene
func NewRenderer() *Renderer {
	return &Renderer{
		Frames: map[string]int{},
	}
}

// Update advances animations and the health bar
func (r *Renderer) Update(dt float64, w *world.World) {
	r.clock += dt
	r.bar(w).Update(dt, w.Player().Health)
}

// bar starts the health bar at the player's health the first time w is seen
func (r *Renderer) bar(w *world.World) *HealthBar {
	if r.health == nil {
		r.health = NewHealthBar(w.Player().Health)
	}
	return r.health
}

// Draw renders w onto s
func (r *Renderer) Draw(s Surface, w *world.World) {
	s.Fill(colorBackground)

	switch w.Mode() {
	case state.StateMenu:
		r.drawMenu(s, w)
	case state.StatePlaying:
		r.drawScene(s, w)
	case state.StatePaused:
		r.drawScene(s, w)
		cx, cy := center(w)
		s.DrawText("PAUSED", cx, cy, true, colorText)
		s.DrawText("Press Esc to resume", cx, cy+40, true, colorText)
	case state.StateGameOver:
		cx, cy := center(w)
		s.DrawText("GAME OVER", cx, cy, true, colorText)
		s.DrawText("Click to return to menu", cx, cy+40, true, colorText)
		s.DrawText(fmt.Sprintf("Score: %d", w.LastScore()), cx, cy+80, true, colorText)
	}
}

func (r *Renderer) drawMenu(s Surface, w *world.World) {
	for _, b := range w.Buttons() {
		s.FillRect(b.Bounds, colorButton)
		c := b.Bounds.Center()
		s.DrawText(b.Label, c.X, c.Y, true, colorText)
	}
}

func (r *Renderer) drawScene(s Surface, w *world.World) {
	for _, p := range w.Platforms() {
		s.FillRect(p.Bounds, MaterialColor(p.Material))
	}

	for _, e := range w.Enemies() {
		r.drawActor(s, e, SpriteEnemy, colorEnemy)
	}
	r.drawActor(s, w.Player(), SpritePlayer, colorPlayer)

	s.FillRect(entity.Rect{X: 10, Y: 10, W: r.bar(w).Width(), H: 20}, colorHealth)
	s.DrawText(fmt.Sprintf("Score: %d", w.Score()), 10, 40, false, colorText)
}

func (r *Renderer) drawActor(s Surface, a *entity.Actor, prefix string, fallback color.Color) {
	flip := a.Facing == entity.FacingLeft
	if !s.DrawSprite(r.SpriteName(a, prefix), a.Body.Pos, flip) {
		s.FillRect(a.Bounds(), fallback)
	}
	if r.ShowHitboxes {
		if box, live := a.AttackHitbox(); live {
			s.FillRect(box, colorHitbox)
		}
	}
}

// SpriteName returns the frame to show for a, such as "character_walk1"
func (r *Renderer) SpriteName(a *entity.Actor, prefix string) string {
	anim := Animation(a)
	key := prefix + "_" + anim
	frames := r.Frames[key]
	if frames < 1 {
		frames = 1
	}
	frame := int(r.clock/frameDelay)%frames + 1
	return fmt.Sprintf("%s%d", key, frame)
}

// Animation picks the animation for an actor: attack, walk or idle.
// Enemies have no attack animation.
func Animation(a *entity.Actor) string {
	if a.Kind == entity.KindPlayer && a.AttackActive() {
		return "attack"
	}
	if a.Body.Pos != a.Body.Prev {
		return "walk"
	}
	return "idle"
}

func center(w *world.World) (float64, float64) {
	width, height := w.Size()
	return width / 2, height / 2
}
