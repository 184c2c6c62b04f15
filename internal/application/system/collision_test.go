package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

// movedBody returns a body that moved from (x, y) with velocity v over dt, without gravity
func movedBody(x, y, vx, vy, dt float64) entity.Body {
	b := entity.NewBody(x, y, 32, 32)
	b.Vel = entity.Vec2{X: vx, Y: vy}
	b.Integrate(dt, 0)
	return b
}

func TestResolver_Vertical(t *testing.T) {
	platform := entity.NewPlatform(350, 400, 100, 20, entity.MaterialStone)

	t.Run("large dt cannot tunnel through a platform", func(t *testing.T) {
		r := createTestResolver(platform)
		b := entity.NewBody(400, 300, 32, 32)
		b.Integrate(1, 800)
		assert.Equal(t, 800.0, b.Vel.Y)
		assert.Equal(t, 1100.0, b.Pos.Y)

		res := r.Resolve(&b, ResponseClamp)

		assert.Equal(t, 368.0, res.Pos.Y)
		assert.Equal(t, 0.0, res.Vel.Y)
		assert.True(t, res.Grounded)
		assert.False(t, res.HitFloor)
	})

	t.Run("rising body hits the underside", func(t *testing.T) {
		r := createTestResolver(platform)
		b := movedBody(400, 450, 0, -300, 1)

		res := r.Resolve(&b, ResponseClamp)

		assert.Equal(t, 420.0, res.Pos.Y)
		assert.Equal(t, 0.0, res.Vel.Y)
		assert.True(t, res.HitCeiling)
		assert.False(t, res.Grounded)
	})

	t.Run("first surface crossed wins regardless of order", func(t *testing.T) {
		low := entity.NewPlatform(300, 500, 200, 20, entity.MaterialStone)
		for _, order := range [][]entity.Platform{{low, platform}, {platform, low}} {
			r := createTestResolver(order...)
			b := movedBody(400, 300, 0, 600, 1)

			res := r.Resolve(&b, ResponseClamp)

			assert.Equal(t, 368.0, res.Pos.Y)
			assert.True(t, res.Grounded)
		}
	})

	t.Run("world floor acts as ground", func(t *testing.T) {
		r := createTestResolver()
		b := movedBody(10, 500, 0, 200, 1)

		res := r.Resolve(&b, ResponseClamp)

		assert.Equal(t, testWorldH-32, res.Pos.Y)
		assert.Equal(t, 0.0, res.Vel.Y)
		assert.True(t, res.Grounded)
		assert.True(t, res.HitFloor)
	})

	t.Run("world ceiling stops upward motion", func(t *testing.T) {
		r := createTestResolver()
		b := movedBody(10, 20, 0, -100, 1)

		res := r.Resolve(&b, ResponseClamp)

		assert.Equal(t, 0.0, res.Pos.Y)
		assert.Equal(t, 0.0, res.Vel.Y)
		assert.True(t, res.HitCeiling)
	})
}

func TestResolver_Horizontal(t *testing.T) {
	wall := entity.NewPlatform(200, 450, 40, 110, entity.MaterialMetal)

	tests := []struct {
		name     string
		x, vx    float64
		response Response
		wantX    float64
		wantVX   float64
		wantLeft bool
	}{
		{name: "moving right clamps to left edge", x: 100, vx: 200, response: ResponseClamp, wantX: 168, wantVX: 200},
		{name: "moving left clamps to right edge", x: 300, vx: -200, response: ResponseClamp, wantX: 240, wantVX: -200, wantLeft: true},
		{name: "reflect negates velocity", x: 100, vx: 200, response: ResponseReflect, wantX: 168, wantVX: -200},
		{name: "miss leaves motion alone", x: 300, vx: 100, response: ResponseClamp, wantX: 400, wantVX: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := createTestResolver(wall)
			b := movedBody(tt.x, 500, tt.vx, 0, 1)

			res := r.Resolve(&b, tt.response)

			assert.Equal(t, tt.wantX, res.Pos.X)
			assert.Equal(t, tt.wantVX, res.Vel.X)
			assert.Equal(t, tt.wantLeft, res.HitLeft)
			assert.Equal(t, 500.0, res.Pos.Y)
		})
	}
}

func TestResolver_WorldBounds(t *testing.T) {
	r := createTestResolver()

	t.Run("left edge", func(t *testing.T) {
		b := movedBody(5, 100, -100, 0, 1)
		res := r.Resolve(&b, ResponseClamp)
		assert.Equal(t, 0.0, res.Pos.X)
		assert.True(t, res.HitLeft)
	})

	t.Run("right edge", func(t *testing.T) {
		b := movedBody(760, 100, 100, 0, 1)
		res := r.Resolve(&b, ResponseClamp)
		assert.Equal(t, testWorldW-32, res.Pos.X)
		assert.True(t, res.HitRight)
	})

	t.Run("reflect off the world edge", func(t *testing.T) {
		b := movedBody(760, 100, 100, 0, 1)
		res := r.Resolve(&b, ResponseReflect)
		assert.Equal(t, -100.0, res.Vel.X)
	})
}

func TestResolver_Idempotent(t *testing.T) {
	platform := entity.NewPlatform(350, 400, 100, 20, entity.MaterialStone)
	r := createTestResolver(platform)

	b := entity.NewBody(400, 300, 32, 32)
	b.Integrate(1, 800)
	b.Settle(r.Resolve(&b, ResponseClamp))
	settled := b.Pos

	b.Vel = entity.Vec2{}
	b.Integrate(1, 0)
	res := r.Resolve(&b, ResponseClamp)

	assert.Equal(t, settled, res.Pos)
	assert.Equal(t, entity.Vec2{}, res.Vel)
}

func TestResolver_TouchingEdgesDoNotCollide(t *testing.T) {
	platform := entity.NewPlatform(350, 400, 100, 20, entity.MaterialStone)
	r := createTestResolver(platform)

	// Standing on top and walking: bottom == platform top is not an overlap
	b := movedBody(360, 368, 120, 0, 0.5)
	res := r.Resolve(&b, ResponseClamp)

	assert.Equal(t, 420.0, res.Pos.X)
	assert.False(t, res.HitWall())
}

func TestResolver_ZeroSizePlatformIsInert(t *testing.T) {
	r := createTestResolver(entity.NewPlatform(350, 400, 100, 0, entity.MaterialStone))
	b := movedBody(400, 300, 0, 100, 1)

	res := r.Resolve(&b, ResponseClamp)

	assert.Equal(t, 400.0, res.Pos.Y)
	assert.False(t, res.Grounded)
}

func TestResolver_Supported(t *testing.T) {
	r := createTestResolver(entity.NewPlatform(100, 300, 200, 20, entity.MaterialStone))

	assert.True(t, r.Supported(entity.Rect{X: 150, Y: 300, W: 1, H: 2}))
	assert.False(t, r.Supported(entity.Rect{X: 300, Y: 300, W: 1, H: 2}))
	assert.True(t, r.Supported(entity.Rect{X: 500, Y: 599, W: 1, H: 2}))
}

func TestResolver_ClampToWorld(t *testing.T) {
	r := createTestResolver()

	assert.Equal(t, entity.Vec2{X: 0, Y: 568}, r.ClampToWorld(entity.Vec2{X: -40, Y: 900}, 32, 32))
	assert.Equal(t, entity.Vec2{X: 768, Y: 0}, r.ClampToWorld(entity.Vec2{X: 999, Y: -5}, 32, 32))
}
