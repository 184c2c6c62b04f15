package entity

// Body is the kinematic part of an actor.
// Pos is authoritative; Bounds is always recomputed from it.
// Prev holds the position before the last Integrate and is what the
// collision resolver sweeps from.
type Body struct {
	Pos  Vec2
	Prev Vec2
	Vel  Vec2
	W, H float64

	// Grounded is true iff the last vertical resolution stopped a fall on a platform top
	Grounded bool
}

// NewBody creates a body at the given top-left position
func NewBody(x, y, w, h float64) Body {
	pos := Vec2{X: x, Y: y}
	return Body{Pos: pos, Prev: pos, W: w, H: h}
}

// Bounds returns the body's AABB
func (b *Body) Bounds() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.W, H: b.H}
}

// Integrate applies gravity to the vertical velocity, then velocity to position.
// There is no terminal velocity.
func (b *Body) Integrate(dt, gravity float64) {
	b.Prev = b.Pos
	b.Vel.Y += gravity * dt
	b.Pos.X += b.Vel.X * dt
	b.Pos.Y += b.Vel.Y * dt
}

// Hold marks a tick in which the body does not move
func (b *Body) Hold() {
	b.Prev = b.Pos
}

// Place moves the body without sweeping (teleport)
func (b *Body) Place(pos Vec2) {
	b.Pos = pos
	b.Prev = pos
}

// Settle writes a collision resolution back into the body
func (b *Body) Settle(res Resolution) {
	b.Pos = res.Pos
	b.Vel = res.Vel
	b.Grounded = res.Grounded
}

// Resolution is the corrected state produced by the collision resolver
type Resolution struct {
	Pos      Vec2
	Vel      Vec2
	Grounded bool

	HitLeft    bool
	HitRight   bool
	HitCeiling bool
	HitFloor   bool // world floor, not a platform
}

// HitWall reports whether the horizontal pass corrected the position
func (r Resolution) HitWall() bool {
	return r.HitLeft || r.HitRight
}
