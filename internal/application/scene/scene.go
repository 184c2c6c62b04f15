// Package scene defines the screens the game loop can run.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game.
//
// Update returns a non-nil Scene to switch to it, or an error to end the loop.
type Scene interface {
	// Update advances the scene by dt seconds
	Update(dt float64) (next Scene, err error)

	Draw(screen *ebiten.Image)

	// OnEnter runs each time the scene becomes current
	OnEnter()

	// OnExit runs when the scene is left or the loop ends
	OnExit()
}
