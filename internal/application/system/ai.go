package system

import (
	"math"
	"math/rand"
	"slices"

	"github.com/younwookim/tinytown/internal/domain/entity"
	"github.com/younwookim/tinytown/internal/infrastructure/config"
)

// EnemyBehavior decides enemy intents. It runs before physics each tick.
type EnemyBehavior struct {
	cfg      config.AIConfig
	speed    float64
	attacks  bool
	flying   bool
	resolver *Resolver
	rng      *rand.Rand
}

// NewEnemyBehavior creates the enemy policy. Enemies fly (chase and flee on
// both axes) when the world has no gravity.
func NewEnemyBehavior(cfg config.EnemiesConfig, gravity float64, resolver *Resolver, rng *rand.Rand) *EnemyBehavior {
	return &EnemyBehavior{
		cfg:      cfg.AI,
		speed:    cfg.Speed,
		attacks:  cfg.Attack.Enabled,
		flying:   gravity == 0,
		resolver: resolver,
		rng:      rng,
	}
}

// Arm seeds the per-enemy timers right after spawning
func (b *EnemyBehavior) Arm(e *entity.Actor) {
	if e.AI == nil {
		return
	}
	e.AI.RerollTimer = b.between(b.cfg.Reroll)
	e.AI.JumpTimer = b.between(b.cfg.JumpEvery)
}

// Intents returns the enemy's intents for this tick
func (b *EnemyBehavior) Intents(e, player *entity.Actor, dt float64) []Intent {
	ai := e.AI
	if ai == nil {
		return nil
	}

	delta := player.Bounds().Center().Sub(e.Bounds().Center())
	dist := delta.Len()
	b.selectMode(e, dist, dt)

	switch ai.Mode {
	case entity.AIOrbit:
		return b.orbit(e, dt)
	case entity.AIChase:
		return b.chase(e, delta, dist)
	case entity.AIFlee:
		return b.flee(e, delta, dist)
	default:
		return b.patrol(e, dt)
	}
}

// AfterStep reacts to the collision result of a physical move
func (b *EnemyBehavior) AfterStep(e *entity.Actor, res entity.Resolution) {
	if e.AI == nil || e.AI.Mode != entity.AIPatrol {
		return
	}
	if res.HitLeft {
		e.AI.PatrolDir = 1
	} else if res.HitRight {
		e.AI.PatrolDir = -1
	}
}

// selectMode re-rolls on a timer, or switches on aggro when chase is one of the modes
func (b *EnemyBehavior) selectMode(e *entity.Actor, dist, dt float64) {
	ai := e.AI
	if !ai.CanReroll() {
		return
	}

	next := ai.Mode
	if b.cfg.Reroll.Max > 0 {
		ai.RerollTimer -= dt
		if ai.RerollTimer > 0 {
			return
		}
		ai.RerollTimer = b.between(b.cfg.Reroll)
		next = ai.Modes[b.rng.Intn(len(ai.Modes))]
	} else if slices.Contains(ai.Modes, entity.AIChase) {
		next = ai.Modes[0]
		if b.inAggro(dist) {
			next = entity.AIChase
		}
	}
	b.switchMode(e, next)
}

func (b *EnemyBehavior) switchMode(e *entity.Actor, next entity.AIMode) {
	ai := e.AI
	if next == ai.Mode {
		return
	}
	if next == entity.AIOrbit {
		// Re-anchor so the current position lies on the circle
		r := b.cfg.OrbitRadius
		ai.Anchor = e.Body.Pos.Sub(entity.Vec2{X: math.Cos(ai.Phase) * r, Y: math.Sin(ai.Phase) * r})
	}
	ai.Mode = next
}

func (b *EnemyBehavior) patrol(e *entity.Actor, dt float64) []Intent {
	ai := e.AI
	body := &e.Body

	// Reverse at the world edges and at ledges
	if body.Pos.X <= 0 && ai.PatrolDir < 0 {
		ai.PatrolDir = 1
	} else if body.Pos.X >= b.resolver.Width()-body.W && ai.PatrolDir > 0 {
		ai.PatrolDir = -1
	} else if body.Grounded && !b.flying && !b.resolver.Supported(b.footProbe(body, ai.PatrolDir)) {
		ai.PatrolDir = -ai.PatrolDir
	}

	intents := []Intent{MoveIntent{EntityID: e.ID, VX: float64(ai.PatrolDir) * b.speed}}

	if body.Grounded && b.cfg.JumpForce > 0 && b.cfg.JumpEvery.Max > 0 {
		ai.JumpTimer -= dt
		if ai.JumpTimer <= 0 {
			ai.JumpTimer = b.between(b.cfg.JumpEvery)
			if b.rng.Float64() < b.cfg.JumpChance {
				intents = append(intents, JumpIntent{EntityID: e.ID, Force: b.cfg.JumpForce})
			}
		}
	}
	return intents
}

// footProbe is a thin rectangle just below the leading bottom corner
func (b *EnemyBehavior) footProbe(body *entity.Body, dir int) entity.Rect {
	x := body.Pos.X + body.W
	if dir < 0 {
		x = body.Pos.X - 1
	}
	return entity.Rect{X: x, Y: body.Pos.Y + body.H, W: 1, H: 2}
}

func (b *EnemyBehavior) chase(e *entity.Actor, delta entity.Vec2, dist float64) []Intent {
	if !b.inAggro(dist) {
		return []Intent{b.move(e, 0, 0)}
	}

	intents := []Intent{b.move(e, sign(delta.X)*b.speed, sign(delta.Y)*b.speed)}
	if b.attacks && dist <= b.cfg.MeleeRadius {
		e.SetFacingFrom(delta.X)
		intents = append(intents, AttackIntent{EntityID: e.ID})
	}
	return intents
}

func (b *EnemyBehavior) flee(e *entity.Actor, delta entity.Vec2, dist float64) []Intent {
	if !b.inAggro(dist) {
		return []Intent{b.move(e, 0, 0)}
	}
	return []Intent{b.move(e, -sign(delta.X)*b.speed, -sign(delta.Y)*b.speed)}
}

func (b *EnemyBehavior) orbit(e *entity.Actor, dt float64) []Intent {
	ai := e.AI
	ai.Phase += dt * b.cfg.OrbitSpeed

	r := b.cfg.OrbitRadius
	cos := math.Cos(ai.Phase)
	pos := ai.Anchor.Add(entity.Vec2{X: cos * r, Y: math.Sin(ai.Phase) * r})
	pos = b.resolver.ClampToWorld(pos, e.Body.W, e.Body.H)

	facing := entity.FacingLeft
	if cos > 0 {
		facing = entity.FacingRight
	}
	return []Intent{PlaceIntent{EntityID: e.ID, Pos: pos, Facing: facing}}
}

func (b *EnemyBehavior) move(e *entity.Actor, vx, vy float64) MoveIntent {
	if !b.flying {
		return MoveIntent{EntityID: e.ID, VX: vx}
	}
	return MoveIntent{EntityID: e.ID, VX: vx, VY: vy, Vertical: true}
}

// inAggro treats a non-positive radius as unlimited
func (b *EnemyBehavior) inAggro(dist float64) bool {
	return b.cfg.AggroRadius <= 0 || dist <= b.cfg.AggroRadius
}

// between returns a uniform value in [r.Min, r.Max]
func (b *EnemyBehavior) between(r config.RangeConfig) float64 {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + b.rng.Float64()*(r.Max-r.Min)
}

func sign(v float64) float64 {
	switch {
	case v > 0.5:
		return 1
	case v < -0.5:
		return -1
	default:
		return 0
	}
}
