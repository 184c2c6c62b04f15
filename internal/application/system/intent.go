package system

import "github.com/younwookim/tinytown/internal/domain/entity"

// Intent represents an action that an actor wants to perform.
// Behaviors emit intents; ApplyIntents is the only place they touch the actor.
type Intent interface {
	isIntent()
}

// MoveIntent sets the actor's walking velocity.
// VY is only applied when Vertical is set (free movement, flying).
type MoveIntent struct {
	EntityID entity.EntityID
	VX, VY   float64
	Vertical bool
}

func (MoveIntent) isIntent() {}

// JumpIntent launches the actor upward
type JumpIntent struct {
	EntityID entity.EntityID
	Force    float64
}

func (JumpIntent) isIntent() {}

// AttackIntent asks the combat timers for a new swing
type AttackIntent struct {
	EntityID entity.EntityID
}

func (AttackIntent) isIntent() {}

// PlaceIntent moves the actor directly, bypassing physics
type PlaceIntent struct {
	EntityID entity.EntityID
	Pos      entity.Vec2
	Facing   int
}

func (PlaceIntent) isIntent() {}

// Applied reports what ApplyIntents changed
type Applied struct {
	Attacked bool
	Jumped   bool
	Placed   bool
}

// ApplyIntents applies intents addressed to the actor, in order
func ApplyIntents(a *entity.Actor, intents []Intent) Applied {
	var out Applied
	for _, in := range intents {
		switch it := in.(type) {
		case MoveIntent:
			if it.EntityID != a.ID {
				continue
			}
			a.Body.Vel.X = it.VX
			if it.Vertical {
				a.Body.Vel.Y = it.VY
			}
			a.SetFacingFrom(it.VX)
		case JumpIntent:
			if it.EntityID != a.ID {
				continue
			}
			a.Body.Vel.Y = -it.Force
			a.Body.Grounded = false
			out.Jumped = true
		case AttackIntent:
			if it.EntityID != a.ID {
				continue
			}
			if a.Combat.Trigger() {
				out.Attacked = true
			}
		case PlaceIntent:
			if it.EntityID != a.ID {
				continue
			}
			a.Body.Place(it.Pos)
			a.SetFacingFrom(float64(it.Facing))
			out.Placed = true
		}
	}
	return out
}
