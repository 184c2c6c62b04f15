package system

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

const (
	testWorldW = 800.0
	testWorldH = 600.0
)

func createTestResolver(platforms ...entity.Platform) *Resolver {
	set := NewPlatformSet(platforms, testWorldW, testWorldH)
	return NewResolver(set, testWorldW, testWorldH)
}

func TestPlatformSet(t *testing.T) {
	t.Run("skips platforms with non-positive extent", func(t *testing.T) {
		set := NewPlatformSet([]entity.Platform{
			entity.NewPlatform(0, 0, 0, 20, entity.MaterialStone),
			entity.NewPlatform(10, 10, 20, -5, entity.MaterialStone),
			entity.NewPlatform(350, 400, 100, 20, entity.MaterialWood),
		}, testWorldW, testWorldH)

		require.Equal(t, 1, set.Len())
		assert.Equal(t, entity.MaterialWood, set.At(0).Material)
	})

	t.Run("candidates come back in collection order", func(t *testing.T) {
		set := NewPlatformSet([]entity.Platform{
			entity.NewPlatform(0, 500, 800, 20, entity.MaterialStone),
			entity.NewPlatform(350, 400, 100, 20, entity.MaterialStone),
			entity.NewPlatform(700, 50, 50, 20, entity.MaterialStone),
		}, testWorldW, testWorldH)

		got := set.Candidates(entity.Rect{X: 360, Y: 300, W: 32, H: 300})
		assert.Equal(t, []int{0, 1}, got)
		assert.Equal(t, []int{0, 1}, set.Overlapping(entity.Rect{X: 360, Y: 300, W: 32, H: 300}))
	})

	t.Run("broad phase works outside the screen", func(t *testing.T) {
		set := NewPlatformSet([]entity.Platform{
			entity.NewPlatform(-100, 700, 200, 20, entity.MaterialStone),
		}, testWorldW, testWorldH)

		assert.Equal(t, []int{0}, set.Overlapping(entity.Rect{X: -50, Y: 690, W: 10, H: 20}))
		assert.Empty(t, set.Overlapping(entity.Rect{X: 300, Y: 690, W: 10, H: 20}))
	})

	t.Run("degenerate probe finds nothing", func(t *testing.T) {
		set := NewPlatformSet([]entity.Platform{
			entity.NewPlatform(0, 0, 100, 100, entity.MaterialStone),
		}, testWorldW, testWorldH)

		assert.Nil(t, set.Candidates(entity.Rect{X: 10, Y: 10, W: 0, H: 10}))
	})
}

func TestPhysicsSystem_Step(t *testing.T) {
	t.Run("falls onto a platform in one large tick", func(t *testing.T) {
		platform := entity.NewPlatform(350, 400, 100, 20, entity.MaterialStone)
		sys := NewPhysicsSystem(800, createTestResolver(platform))
		body := entity.NewBody(400, 300, 32, 32)

		res := sys.Step(&body, 1, ResponseClamp)

		assert.Equal(t, 400.0, body.Bounds().Bottom())
		assert.Equal(t, 0.0, body.Vel.Y)
		assert.True(t, body.Grounded)
		assert.True(t, res.Grounded)
	})

	t.Run("gravity accumulates without a terminal velocity", func(t *testing.T) {
		sys := NewPhysicsSystem(800, createTestResolver())
		body := entity.NewBody(0, 0, 32, 32)

		for i := 0; i < 100; i++ {
			sys.Step(&body, 0.01, ResponseClamp)
		}

		assert.InDelta(t, 800.0, body.Vel.Y, 1e-6)
		assert.False(t, body.Grounded)
	})

	t.Run("freeze keeps the body in place", func(t *testing.T) {
		sys := NewPhysicsSystem(800, createTestResolver())
		body := entity.NewBody(100, 100, 32, 32)
		body.Vel = entity.Vec2{X: 200, Y: 50}

		sys.Freeze(&body)

		assert.Equal(t, entity.Vec2{X: 100, Y: 100}, body.Pos)
		assert.Equal(t, body.Pos, body.Prev)
	})

	t.Run("bounds follow position every tick", func(t *testing.T) {
		rng := rand.New(rand.NewSource(7))
		sys := NewPhysicsSystem(800, createTestResolver(
			entity.NewPlatform(0, 560, 800, 40, entity.MaterialStone),
			entity.NewPlatform(200, 420, 120, 20, entity.MaterialWood),
			entity.NewPlatform(480, 300, 40, 260, entity.MaterialMetal),
		))
		body := entity.NewBody(100, 100, 32, 32)

		for i := 0; i < 500; i++ {
			body.Vel.X = (rng.Float64()*2 - 1) * 400
			if body.Grounded && rng.Intn(10) == 0 {
				body.Vel.Y = -500
			}
			sys.Step(&body, rng.Float64()*0.1, ResponseClamp)

			b := body.Bounds()
			require.Equal(t, body.Pos.X, b.X)
			require.Equal(t, body.Pos.Y, b.Y)
			require.GreaterOrEqual(t, body.Pos.X, 0.0)
			require.LessOrEqual(t, body.Pos.X, testWorldW-body.W)
			require.LessOrEqual(t, b.Bottom(), testWorldH)
		}
	})
}
