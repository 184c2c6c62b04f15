// Package render draws onto ebiten images.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/tinytown/internal/domain/entity"
)

var defaultFace = text.NewGoXFace(basicfont.Face7x13)

// Surface adapts an ebiten image to view.Surface
type Surface struct {
	dst   *ebiten.Image
	atlas *Atlas
	face  text.Face
}

// NewSurface wraps dst. A nil atlas draws no sprites.
func NewSurface(dst *ebiten.Image, atlas *Atlas) *Surface {
	return &Surface{dst: dst, atlas: atlas, face: defaultFace}
}

// Fill clears the whole image
func (s *Surface) Fill(c color.Color) {
	s.dst.Fill(c)
}

// FillRect draws a filled rectangle; empty rects are skipped
func (s *Surface) FillRect(r entity.Rect, c color.Color) {
	if !r.Valid() {
		return
	}
	vector.FillRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
}

// DrawSprite draws an atlas image, mirrored horizontally when flip is set
func (s *Surface) DrawSprite(name string, pos entity.Vec2, flip bool) bool {
	img, ok := s.atlas.Get(name)
	if !ok {
		return false
	}

	op := &ebiten.DrawImageOptions{}
	if flip {
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(float64(img.Bounds().Dx()), 0)
	}
	op.GeoM.Translate(pos.X, pos.Y)
	s.dst.DrawImage(img, op)
	return true
}

// DrawText draws a single line of text
func (s *Surface) DrawText(str string, x, y float64, centered bool, c color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	if centered {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(s.dst, str, s.face, op)
}

// Image returns the wrapped image
func (s *Surface) Image() *ebiten.Image {
	return s.dst
}
