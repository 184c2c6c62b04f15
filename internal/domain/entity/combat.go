package entity

// CombatPhase is the state of an actor's melee attack
type CombatPhase int

const (
	CombatIdle CombatPhase = iota
	CombatAttacking
	CombatCooldown
)

// String returns the phase name
func (p CombatPhase) String() string {
	switch p {
	case CombatIdle:
		return "Idle"
	case CombatAttacking:
		return "Attacking"
	case CombatCooldown:
		return "Cooldown"
	default:
		return "Unknown"
	}
}

// CombatTimers drives Idle -> Attacking -> Cooldown -> Idle.
// The active and cooldown windows never overlap.
type CombatTimers struct {
	ActiveRemaining   float64
	CooldownRemaining float64
	Duration          float64
	CooldownDuration  float64

	// Swing counts triggered attacks, so a target can remember which swing hit it
	Swing uint32
}

// NewCombatTimers creates idle timers with the given windows (seconds)
func NewCombatTimers(duration, cooldown float64) CombatTimers {
	return CombatTimers{Duration: duration, CooldownDuration: cooldown}
}

// Phase returns the current combat phase
func (c *CombatTimers) Phase() CombatPhase {
	switch {
	case c.ActiveRemaining > 0:
		return CombatAttacking
	case c.CooldownRemaining > 0:
		return CombatCooldown
	default:
		return CombatIdle
	}
}

// Active reports whether the attack hitbox is live
func (c *CombatTimers) Active() bool {
	return c.ActiveRemaining > 0
}

// Trigger starts an attack if idle. Commands while attacking or cooling down
// are dropped, not queued.
func (c *CombatTimers) Trigger() bool {
	if c.ActiveRemaining > 0 || c.CooldownRemaining > 0 {
		return false
	}
	if c.Duration <= 0 {
		return false
	}
	c.ActiveRemaining = c.Duration
	c.Swing++
	return true
}

// Tick advances the timers by dt
func (c *CombatTimers) Tick(dt float64) {
	if c.ActiveRemaining > 0 {
		c.ActiveRemaining -= dt
		if c.ActiveRemaining <= 0 {
			c.ActiveRemaining = 0
			c.CooldownRemaining = c.CooldownDuration
		}
		return
	}
	if c.CooldownRemaining > 0 {
		c.CooldownRemaining -= dt
		if c.CooldownRemaining < 0 {
			c.CooldownRemaining = 0
		}
	}
}

// Reset returns the timers to idle
func (c *CombatTimers) Reset() {
	c.ActiveRemaining = 0
	c.CooldownRemaining = 0
}

// MeleeHitbox returns bounds shifted one width in the facing direction
func MeleeHitbox(bounds Rect, facing int) Rect {
	dir := 1.0
	if facing < 0 {
		dir = -1.0
	}
	return bounds.Offset(dir*bounds.W, 0)
}
