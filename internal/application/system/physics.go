package system

import (
	"github.com/younwookim/tinytown/internal/domain/entity"
)

// PhysicsSystem integrates bodies and settles them against the level
type PhysicsSystem struct {
	gravity  float64
	resolver *Resolver
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(gravity float64, resolver *Resolver) *PhysicsSystem {
	return &PhysicsSystem{
		gravity:  gravity,
		resolver: resolver,
	}
}

// Gravity returns the downward acceleration in px/s^2
func (s *PhysicsSystem) Gravity() float64 {
	return s.gravity
}

// Resolver returns the collision resolver
func (s *PhysicsSystem) Resolver() *Resolver {
	return s.resolver
}

// Step advances a body by dt: gravity, then velocity, then collision.
// The settled position is always inside the world.
func (s *PhysicsSystem) Step(body *entity.Body, dt float64, response Response) entity.Resolution {
	body.Integrate(dt, s.gravity)
	res := s.resolver.Resolve(body, response)
	body.Settle(res)
	return res
}

// Freeze keeps a body in place for this tick
func (s *PhysicsSystem) Freeze(body *entity.Body) {
	body.Hold()
}
