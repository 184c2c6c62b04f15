// Package view draws a World onto an abstract drawing surface.
package view

import (
	"image/color"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

// Surface is what the renderer draws on
type Surface interface {
	Fill(c color.Color)
	FillRect(r entity.Rect, c color.Color)

	// DrawSprite draws a named sprite with its top-left at pos.
	// It returns false when the sprite is unknown so the caller can fall back.
	DrawSprite(name string, pos entity.Vec2, flip bool) bool

	// DrawText draws s in c; when centered, (x, y) is the middle of the text
	// instead of its top-left corner
	DrawText(s string, x, y float64, centered bool, c color.Color)
}
