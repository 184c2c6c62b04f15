package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tinytown/internal/domain/entity"
	"github.com/younwookim/tinytown/internal/infrastructure/config"
)

// InputState holds the current input state
type InputState struct {
	Left        bool `json:"l,omitempty"`
	Right       bool `json:"r,omitempty"`
	Up          bool `json:"u,omitempty"`
	Down        bool `json:"d,omitempty"`
	Jump        bool `json:"j,omitempty"`
	JumpPressed bool `json:"jp,omitempty"`
	Attack        bool `json:"a,omitempty"`
	AttackPressed bool `json:"ap,omitempty"`
	Confirm       bool `json:"c,omitempty"`
	Pause         bool `json:"p,omitempty"`
	MouseX        int  `json:"mx,omitempty"`
	MouseY        int  `json:"my,omitempty"`
	MouseClick    bool `json:"mc,omitempty"`
}

// Acknowledged reports whether a "continue" key was pressed this tick.
// A held attack key does not count.
func (in InputState) Acknowledged() bool {
	return in.Confirm || in.AttackPressed || in.MouseClick
}

// InputSource produces one InputState per tick
type InputSource interface {
	Poll() InputState
}

// AttackKeys trigger a melee swing
var AttackKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyZ}

func anyPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}

func anyJustPressed(keys []ebiten.Key) bool {
	for _, k := range keys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	return false
}

// InputSystem reads the keyboard and mouse through ebiten
type InputSystem struct{}

// NewInputSystem creates a new input system
func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	mx, my := ebiten.CursorPosition()
	up := ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW)
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right:       ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Up:          up,
		Down:        ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Jump:        up,
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyW),
		Attack:        anyPressed(AttackKeys),
		AttackPressed: anyJustPressed(AttackKeys),
		Confirm:       inpututil.IsKeyJustPressed(ebiten.KeyEnter),
		Pause:         inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		MouseX:        mx,
		MouseY:        my,
		MouseClick:    inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
	}
}

// Poll implements InputSource
func (s *InputSystem) Poll() InputState {
	return s.GetInput()
}

// PlayerController maps input to player intents
type PlayerController struct {
	movement config.MovementConfig
}

// NewPlayerController creates a controller for the given movement model
func NewPlayerController(cfg config.MovementConfig) *PlayerController {
	return &PlayerController{movement: cfg}
}

// Frozen reports whether the player must not move this tick
func (c *PlayerController) Frozen(player *entity.Actor) bool {
	return c.movement.FreezeWhileAttacking && player.AttackActive()
}

// Intents returns the player's intents for this tick
func (c *PlayerController) Intents(player *entity.Actor, input InputState, dt float64) []Intent {
	c.updateTimers(player, dt)

	var intents []Intent
	if input.Attack {
		intents = append(intents, AttackIntent{EntityID: player.ID})
	}

	dx := 0.0
	if input.Left {
		dx = -1
	} else if input.Right {
		dx = 1
	}

	if c.movement.TopDown() {
		dy := 0.0
		if input.Up {
			dy = -1
		} else if input.Down {
			dy = 1
		}
		return append(intents, MoveIntent{
			EntityID: player.ID,
			VX:       dx * c.movement.Speed,
			VY:       dy * c.movement.Speed,
			Vertical: true,
		})
	}

	intents = append(intents, MoveIntent{EntityID: player.ID, VX: dx * c.movement.Speed})
	if jump, ok := c.handleJump(player, input); ok {
		intents = append(intents, jump)
	}
	return intents
}

// updateTimers updates the jump forgiveness and invulnerability timers
func (c *PlayerController) updateTimers(player *entity.Actor, dt float64) {
	if player.Body.Grounded {
		player.Jump.CoyoteTimer = c.movement.CoyoteTime
	} else if player.Jump.CoyoteTimer > 0 {
		player.Jump.CoyoteTimer -= dt
	}

	if player.Jump.JumpBufferTimer > 0 {
		player.Jump.JumpBufferTimer -= dt
	}

	if player.IframeTimer > 0 {
		player.IframeTimer -= dt
		if player.IframeTimer < 0 {
			player.IframeTimer = 0
		}
	}
}

// handleJump combines coyote time and the jump buffer
func (c *PlayerController) handleJump(player *entity.Actor, input InputState) (Intent, bool) {
	if input.JumpPressed {
		player.Jump.JumpBufferTimer = c.movement.JumpBuffer
	}

	canJump := player.Body.Grounded || player.Jump.CoyoteTimer > 0
	wantsJump := input.JumpPressed || player.Jump.JumpBufferTimer > 0
	if !canJump || !wantsJump {
		return nil, false
	}

	player.Jump.CoyoteTimer = 0
	player.Jump.JumpBufferTimer = 0
	return JumpIntent{EntityID: player.ID, Force: c.movement.JumpForce}, true
}
