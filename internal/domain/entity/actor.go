package entity

// JumpTimers holds the player's jump forgiveness windows
type JumpTimers struct {
	CoyoteTimer     float64
	JumpBufferTimer float64
}

// Actor is a player or an enemy.
// Behavior is selected by Kind; AI is only set for enemies.
type Actor struct {
	ID     EntityID
	Kind   Kind
	Body   Body
	Combat CombatTimers
	Jump   JumpTimers

	Health    int
	MaxHealth int
	Facing    int

	// IframeTimer blocks incoming damage while positive
	IframeTimer float64

	// LastSwingHit is the attacker swing that last damaged this actor
	LastSwingHit uint32

	AI *EnemyAI
}

// NewPlayer creates the player actor at the given top-left position
func NewPlayer(id EntityID, x, y, w, h float64, maxHealth int, combat CombatTimers) *Actor {
	return &Actor{
		ID:        id,
		Kind:      KindPlayer,
		Body:      NewBody(x, y, w, h),
		Combat:    combat,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Facing:    FacingRight,
	}
}

// NewEnemy creates an enemy actor driven by ai
func NewEnemy(id EntityID, x, y, w, h float64, maxHealth int, combat CombatTimers, ai *EnemyAI) *Actor {
	return &Actor{
		ID:        id,
		Kind:      KindEnemy,
		Body:      NewBody(x, y, w, h),
		Combat:    combat,
		Health:    maxHealth,
		MaxHealth: maxHealth,
		Facing:    FacingLeft,
		AI:        ai,
	}
}

// Position returns the top-left position
func (a *Actor) Position() Vec2 {
	return a.Body.Pos
}

// Bounds returns the actor's AABB
func (a *Actor) Bounds() Rect {
	return a.Body.Bounds()
}

// AttackActive reports whether the actor's melee hitbox is live
func (a *Actor) AttackActive() bool {
	return a.Combat.Active()
}

// AttackHitbox returns the melee hitbox and whether it is live this tick
func (a *Actor) AttackHitbox() (Rect, bool) {
	return MeleeHitbox(a.Bounds(), a.Facing), a.Combat.Active()
}

// IsAlive returns true while health is above zero
func (a *Actor) IsAlive() bool {
	return a.Health > 0
}

// IsInvincible returns true while damage is blocked
func (a *Actor) IsInvincible() bool {
	return a.IframeTimer > 0
}

// TakeDamage subtracts damage, clamping health to [0, MaxHealth].
// Returns true if the actor is defeated.
func (a *Actor) TakeDamage(damage int) bool {
	a.Health -= damage
	if a.Health < 0 {
		a.Health = 0
	}
	if a.Health > a.MaxHealth {
		a.Health = a.MaxHealth
	}
	return a.Health <= 0
}

// Heal restores full health
func (a *Actor) Heal() {
	a.Health = a.MaxHealth
}

// SetFacingFrom updates facing from a horizontal direction; zero keeps the current facing
func (a *Actor) SetFacingFrom(dx float64) {
	if dx > 0 {
		a.Facing = FacingRight
	} else if dx < 0 {
		a.Facing = FacingLeft
	}
}
