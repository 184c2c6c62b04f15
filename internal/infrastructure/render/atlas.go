package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png" // PNG sprites
	"io/fs"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Atlas maps sprite names to images
type Atlas struct {
	images map[string]*ebiten.Image
}

// NewAtlas creates an empty atlas
func NewAtlas() *Atlas {
	return &Atlas{images: map[string]*ebiten.Image{}}
}

// Add registers img under name, replacing any previous image
func (a *Atlas) Add(name string, img *ebiten.Image) {
	a.images[name] = img
}

// Get returns the image for name. A nil atlas has no images.
func (a *Atlas) Get(name string) (*ebiten.Image, bool) {
	if a == nil {
		return nil, false
	}
	img, ok := a.images[name]
	return img, ok
}

// Len returns the number of sprites
func (a *Atlas) Len() int {
	return len(a.images)
}

// LoadDir adds every PNG in dir, named after the file without its extension
func (a *Atlas) LoadDir(fsys fs.FS, dir string) error {
	matches, err := fs.Glob(fsys, path.Join(dir, "*.png"))
	if err != nil {
		return fmt.Errorf("failed to list sprites: %w", err)
	}
	for _, m := range matches {
		if err := a.loadFile(fsys, m); err != nil {
			return err
		}
	}
	return nil
}

func (a *Atlas) loadFile(fsys fs.FS, name string) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("failed to open sprite %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("failed to decode sprite %s: %w", name, err)
	}
	a.Add(strings.TrimSuffix(path.Base(name), ".png"), ebiten.NewImageFromImage(img))
	return nil
}

// Placeholder tints per animation
var (
	placeholderPlayer = map[string]color.RGBA{
		"idle":   {40, 170, 90, 255},
		"walk":   {60, 200, 110, 255},
		"attack": {230, 220, 80, 255},
	}
	placeholderEnemy = map[string]color.RGBA{
		"idle": {170, 50, 60, 255},
		"walk": {210, 70, 70, 255},
	}
	placeholderEye = color.RGBA{250, 250, 250, 255}
)

// Placeholders generates one-frame sprites for the character and enemy
// animations. The eye sits on the right so flipped sprites show facing.
func Placeholders(playerW, playerH, enemyW, enemyH int) *Atlas {
	a := NewAtlas()
	for anim, c := range placeholderPlayer {
		a.Add("character_"+anim+"1", placeholder(playerW, playerH, c))
	}
	for anim, c := range placeholderEnemy {
		a.Add("enemy_"+anim+"1", placeholder(enemyW, enemyH, c))
	}
	return a
}

func placeholder(w, h int, body color.Color) *ebiten.Image {
	if w < 4 {
		w = 4
	}
	if h < 4 {
		h = 4
	}
	img := ebiten.NewImage(w, h)
	img.Fill(body)
	eye := float32(w) / 6
	vector.FillRect(img, float32(w)-2*eye, float32(h)/4, eye, eye, placeholderEye, false)
	return img
}
