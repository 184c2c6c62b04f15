package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBody(t *testing.T) {
	b := NewBody(10, 20, 32, 32)

	assert.Equal(t, Vec2{X: 10, Y: 20}, b.Pos)
	assert.Equal(t, b.Pos, b.Prev)
	assert.Equal(t, Rect{X: 10, Y: 20, W: 32, H: 32}, b.Bounds())
	assert.False(t, b.Grounded)
}

func TestBody_Integrate(t *testing.T) {
	tests := []struct {
		name    string
		vel     Vec2
		dt      float64
		gravity float64
		wantPos Vec2
		wantVel Vec2
	}{
		{
			name:    "gravity from rest, dt=1",
			dt:      1,
			gravity: 800,
			wantPos: Vec2{X: 400, Y: 1100},
			wantVel: Vec2{X: 0, Y: 800},
		},
		{
			name:    "horizontal only without gravity",
			vel:     Vec2{X: 200},
			dt:      0.5,
			wantPos: Vec2{X: 500, Y: 300},
			wantVel: Vec2{X: 200},
		},
		{
			name:    "gravity is added before displacement",
			vel:     Vec2{X: -100, Y: -400},
			dt:      0.25,
			gravity: 800,
			wantPos: Vec2{X: 375, Y: 250}, // vy = -400 + 200 = -200, dy = -50
			wantVel: Vec2{X: -100, Y: -200},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBody(400, 300, 32, 32)
			b.Vel = tt.vel

			b.Integrate(tt.dt, tt.gravity)

			assert.InDelta(t, tt.wantPos.X, b.Pos.X, 1e-9)
			assert.InDelta(t, tt.wantPos.Y, b.Pos.Y, 1e-9)
			assert.InDelta(t, tt.wantVel.X, b.Vel.X, 1e-9)
			assert.InDelta(t, tt.wantVel.Y, b.Vel.Y, 1e-9)
			assert.Equal(t, Vec2{X: 400, Y: 300}, b.Prev, "Prev keeps the pre-integration position")
		})
	}
}

func TestBody_NoTerminalVelocity(t *testing.T) {
	b := NewBody(0, 0, 10, 10)
	for i := 0; i < 600; i++ {
		b.Integrate(1.0/60.0, 800)
	}
	assert.InDelta(t, 8000.0, b.Vel.Y, 1e-6)
}

func TestBody_SettleKeepsBoundsInSync(t *testing.T) {
	b := NewBody(0, 0, 16, 24)
	b.Settle(Resolution{Pos: Vec2{X: 40, Y: 76}, Vel: Vec2{X: 5}, Grounded: true})

	bounds := b.Bounds()
	assert.Equal(t, b.Pos.X, bounds.X)
	assert.Equal(t, b.Pos.Y, bounds.Y)
	assert.True(t, b.Grounded)
	assert.Equal(t, Vec2{X: 5}, b.Vel)
}

func TestBody_HoldAndPlace(t *testing.T) {
	b := NewBody(0, 0, 16, 16)
	b.Pos = Vec2{X: 12, Y: 8}
	b.Hold()
	assert.Equal(t, b.Pos, b.Prev)

	b.Place(Vec2{X: 100, Y: 50})
	assert.Equal(t, Vec2{X: 100, Y: 50}, b.Pos)
	assert.Equal(t, b.Pos, b.Prev)
}
