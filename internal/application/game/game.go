// Package game drives the current scene from the ebiten loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/tinytown/internal/application/scene"
)

// Game implements ebiten.Game on top of a Scene
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
	closed  bool
}

// New creates a Game stepping at a fixed 1/tps seconds per Update.
// A non-positive tps falls back to 60. The initial scene's OnEnter runs immediately.
func New(initial scene.Scene, screenW, screenH, tps int) *Game {
	if tps <= 0 {
		tps = 60
	}
	g := &Game{
		current: initial,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / float64(tps),
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene and performs transitions.
// When the scene ends the loop, its OnExit runs before the error is returned.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		g.Close()
		return err
	}

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}
	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// DT returns the fixed timestep in seconds
func (g *Game) DT() float64 {
	return g.dt
}

// Close runs the current scene's OnExit once. Call it after ebiten.RunGame
// returns so a closed window still saves recordings.
func (g *Game) Close() {
	if g.closed {
		return
	}
	g.closed = true
	g.current.OnExit()
}
