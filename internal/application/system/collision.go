package system

import (
	"math"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

// Response selects what a horizontal correction does to velocity
type Response int

const (
	// ResponseClamp stops at the obstacle and keeps velocity
	ResponseClamp Response = iota
	// ResponseReflect stops at the obstacle and negates horizontal velocity
	ResponseReflect
)

// Resolver corrects a body's motion against the platform set and the world edges.
// It never mutates the body; callers Settle the returned Resolution.
type Resolver struct {
	platforms     *PlatformSet
	width, height float64
}

// NewResolver creates a resolver over a world of the given size
func NewResolver(platforms *PlatformSet, width, height float64) *Resolver {
	return &Resolver{platforms: platforms, width: width, height: height}
}

// Platforms returns the platform set the resolver tests against
func (r *Resolver) Platforms() *PlatformSet {
	return r.platforms
}

// Resolve moves the body from Prev to Pos one axis at a time.
// The horizontal pass sweeps Prev.X -> Pos.X at Prev.Y; the vertical pass
// sweeps Prev.Y -> Pos.Y at the corrected X. Overlapping platforms are handled
// in collection order and each correction shortens the sweep.
func (r *Resolver) Resolve(b *entity.Body, response Response) entity.Resolution {
	res := entity.Resolution{Pos: b.Pos, Vel: b.Vel}

	r.resolveX(b, &res, response)
	r.resolveY(b, &res)
	r.clampWorld(b, &res, response)

	return res
}

func (r *Resolver) resolveX(b *entity.Body, res *entity.Resolution, response Response) {
	vx := res.Vel.X
	if vx == 0 {
		return
	}

	x0, y := b.Prev.X, b.Prev.Y
	sweep := func() entity.Rect {
		left := math.Min(x0, res.Pos.X)
		return entity.Rect{X: left, Y: y, W: math.Abs(res.Pos.X-x0) + b.W, H: b.H}
	}

	for _, i := range r.platforms.Candidates(sweep()) {
		p := r.platforms.At(i).Bounds
		if !sweep().Overlaps(p) {
			continue
		}
		if vx > 0 {
			res.Pos.X = p.X - b.W
			res.HitRight = true
		} else {
			res.Pos.X = p.Right()
			res.HitLeft = true
		}
	}

	if res.HitWall() && response == ResponseReflect {
		res.Vel.X = -vx
	}
}

func (r *Resolver) resolveY(b *entity.Body, res *entity.Resolution) {
	vy := res.Vel.Y
	if vy == 0 {
		return
	}

	y0, x := b.Prev.Y, res.Pos.X
	sweep := func() entity.Rect {
		top := math.Min(y0, res.Pos.Y)
		return entity.Rect{X: x, Y: top, W: b.W, H: math.Abs(res.Pos.Y-y0) + b.H}
	}

	for _, i := range r.platforms.Candidates(sweep()) {
		p := r.platforms.At(i).Bounds
		if !sweep().Overlaps(p) {
			continue
		}
		res.Vel.Y = 0
		if vy > 0 {
			res.Pos.Y = p.Y - b.H
			res.Grounded = true
		} else {
			res.Pos.Y = p.Bottom()
			res.HitCeiling = true
		}
	}
}

// clampWorld keeps the body inside [0, width-w] x [0, height-h].
// The floor acts as an implicit platform.
func (r *Resolver) clampWorld(b *entity.Body, res *entity.Resolution, response Response) {
	if bottom := r.height - b.H; res.Pos.Y > bottom {
		res.Pos.Y = bottom
		if res.Vel.Y > 0 {
			res.Vel.Y = 0
			res.Grounded = true
		}
		res.HitFloor = true
	}
	if res.Pos.Y < 0 {
		res.Pos.Y = 0
		if res.Vel.Y < 0 {
			res.Vel.Y = 0
		}
		res.HitCeiling = true
	}

	hitWall := false
	if res.Pos.X < 0 {
		res.Pos.X = 0
		res.HitLeft = true
		hitWall = res.Vel.X < 0
	}
	if right := r.width - b.W; res.Pos.X > right {
		res.Pos.X = math.Max(right, 0)
		res.HitRight = true
		hitWall = res.Vel.X > 0
	}
	if hitWall && response == ResponseReflect {
		res.Vel.X = -res.Vel.X
	}
}

// Supported reports whether a probe rectangle touches a platform or the world floor
func (r *Resolver) Supported(probe entity.Rect) bool {
	if probe.Bottom() >= r.height {
		return true
	}
	return len(r.platforms.Overlapping(probe)) > 0
}

// ClampToWorld clamps a position so a w x h box stays inside the world
func (r *Resolver) ClampToWorld(pos entity.Vec2, w, h float64) entity.Vec2 {
	pos.X = math.Max(0, math.Min(pos.X, r.width-w))
	pos.Y = math.Max(0, math.Min(pos.Y, r.height-h))
	return pos
}

// Width returns the world width
func (r *Resolver) Width() float64 {
	return r.width
}

// Height returns the world height
func (r *Resolver) Height() float64 {
	return r.height
}
