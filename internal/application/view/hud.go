package view

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const (
	// healthBarScale is pixels per point of health
	healthBarScale = 2
	healthDrain    = 0.25
)

// HealthBar eases the bar width down after damage and snaps it up on heals
type HealthBar struct {
	health int
	width  float64
	tween  *gween.Tween
}

// NewHealthBar creates a bar showing health
func NewHealthBar(health int) *HealthBar {
	return &HealthBar{health: health, width: float64(health * healthBarScale)}
}

// Update follows the current health
func (h *HealthBar) Update(dt float64, health int) {
	if health != h.health {
		target := float64(health * healthBarScale)
		if health > h.health {
			h.width = target
			h.tween = nil
		} else {
			h.tween = gween.New(float32(h.width), float32(target), healthDrain, ease.OutQuad)
		}
		h.health = health
	}

	if h.tween == nil {
		return
	}
	current, done := h.tween.Update(float32(dt))
	h.width = float64(current)
	if done {
		h.width = float64(h.health * healthBarScale)
		h.tween = nil
	}
}

// Width returns the bar width in pixels
func (h *HealthBar) Width() float64 {
	return h.width
}
