package sim

import (
	"math"
	"math/rand"

	"github.com/younwookim/tinytown/internal/application/state"
	"github.com/younwookim/tinytown/internal/application/system"
	"github.com/younwookim/tinytown/internal/application/world"
	"github.com/younwookim/tinytown/internal/domain/entity"
)

const (
	// deadzone keeps the bot from jittering around its target
	deadzone     = 2.0
	stuckTicks   = 12
	wanderChance = 0.03
)

// Bot is a scripted InputSource. It leaves menus, walks toward the nearest
// enemy, swings when in reach and jumps when blocked or when the target is above.
type Bot struct {
	world *world.World
	rng   *rand.Rand

	lastX float64
	stuck int
}

// NewBot creates a bot playing w
func NewBot(w *world.World, seed int64) *Bot {
	return &Bot{world: w, rng: rand.New(rand.NewSource(seed))}
}

// Poll implements system.InputSource
func (b *Bot) Poll() system.InputState {
	switch b.world.Mode() {
	case state.StateMenu, state.StateGameOver:
		return system.InputState{Confirm: true}
	case state.StatePaused:
		return system.InputState{Pause: true}
	}
	return b.steer()
}

func (b *Bot) steer() system.InputState {
	var in system.InputState
	p := b.world.Player()
	target, ok := nearest(p, b.world.Enemies())
	if !ok {
		return in
	}

	pc := p.Bounds().Center()
	tc := target.Bounds().Center()
	dx, dy := tc.X-pc.X, tc.Y-pc.Y

	if dx < -deadzone {
		in.Left = true
	} else if dx > deadzone {
		in.Right = true
	}
	if b.rng.Float64() < wanderChance {
		in.Left, in.Right = in.Right, in.Left
	}

	if math.Abs(dx) <= p.Body.W*1.5 && math.Abs(dy) < p.Body.H {
		in.Attack = true
	}

	if b.world.Config().Movement.TopDown() {
		if dy < -deadzone {
			in.Up = true
		} else if dy > deadzone {
			in.Down = true
		}
		return in
	}

	b.trackStuck(p, in)
	if p.Body.Grounded && (b.stuck >= stuckTicks || dy < -p.Body.H) {
		in.Jump = true
		in.JumpPressed = true
		b.stuck = 0
	}
	return in
}

// trackStuck counts ticks spent pushing sideways without moving
func (b *Bot) trackStuck(p *entity.Actor, in system.InputState) {
	x := p.Body.Pos.X
	if (in.Left || in.Right) && math.Abs(x-b.lastX) < 0.5 {
		b.stuck++
	} else {
		b.stuck = 0
	}
	b.lastX = x
}

// nearest returns the enemy whose center is closest to the player's
func nearest(p *entity.Actor, enemies []*entity.Actor) (*entity.Actor, bool) {
	var best *entity.Actor
	bestDist := math.Inf(1)
	pc := p.Bounds().Center()
	for _, e := range enemies {
		if d := e.Bounds().Center().Sub(pc).Len(); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, best != nil
}

var _ system.InputSource = (*Bot)(nil)
