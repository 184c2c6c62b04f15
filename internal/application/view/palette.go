package view

import (
	"image/color"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

var (
	colorBackground = color.RGBA{50, 50, 50, 255}
	colorButton     = color.RGBA{100, 100, 200, 255}
	colorText       = color.RGBA{255, 255, 255, 255}
	colorPlayer     = color.RGBA{0, 255, 0, 255}
	colorEnemy      = color.RGBA{255, 0, 0, 255}
	colorHealth     = color.RGBA{200, 0, 0, 255}
	colorHitbox     = color.RGBA{255, 255, 255, 80}
)

var materialColors = map[entity.Material]color.RGBA{
	entity.MaterialStone: {120, 120, 120, 255},
	entity.MaterialWood:  {139, 90, 43, 255},
	entity.MaterialGrass: {60, 160, 60, 255},
	entity.MaterialMetal: {160, 170, 190, 255},
}

// MaterialColor returns the fill used for a platform
func MaterialColor(m entity.Material) color.RGBA {
	if c, ok := materialColors[m]; ok {
		return c
	}
	return materialColors[entity.MaterialStone]
}
