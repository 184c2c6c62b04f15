package world

import (
	"github.com/younwookim/tinytown/internal/application/state"
	"github.com/younwookim/tinytown/internal/domain/entity"
)

// Button identifies a menu region
type Button int

const (
	ButtonStart Button = iota
	ButtonSound
	ButtonExit
)

// Menu button geometry, relative to the screen center
const (
	buttonW = 200
	buttonH = 40
)

// MenuButton is a clickable menu region
type MenuButton struct {
	Button Button
	Bounds entity.Rect
	Label  string
}

// Buttons returns the menu regions top to bottom
func (w *World) Buttons() []MenuButton {
	cx := w.level.Width / 2
	cy := w.level.Height / 2
	at := func(b Button, dy float64) MenuButton {
		return MenuButton{
			Button: b,
			Bounds: entity.Rect{X: cx - buttonW/2, Y: cy + dy, W: buttonW, H: buttonH},
			Label:  w.label(b),
		}
	}
	return []MenuButton{
		at(ButtonStart, -50),
		at(ButtonSound, 10),
		at(ButtonExit, 70),
	}
}

func (w *World) label(b Button) string {
	switch b {
	case ButtonStart:
		return "Start Game"
	case ButtonSound:
		if w.soundEnabled {
			return "Sound: ON"
		}
		return "Sound: OFF"
	case ButtonExit:
		return "Exit"
	default:
		return ""
	}
}

// ButtonAt returns the button under the point, if any
func (w *World) ButtonAt(x, y float64) (Button, bool) {
	for _, b := range w.Buttons() {
		if b.Bounds.Contains(x, y) {
			return b.Button, true
		}
	}
	return 0, false
}

func (w *World) press(b Button) error {
	switch b {
	case ButtonStart:
		w.start()
	case ButtonSound:
		w.toggleSound()
	case ButtonExit:
		w.logger.Info("exit requested")
		return ErrQuit
	}
	return nil
}

func (w *World) start() {
	w.setMode(state.StatePlaying)
	if w.soundEnabled {
		w.playMusic()
	}
}

func (w *World) toggleSound() {
	w.soundEnabled = !w.soundEnabled
	w.logger.Debug("sound toggled", "enabled", w.soundEnabled)
	if w.soundEnabled {
		w.playMusic()
		return
	}
	w.audio.StopMusic()
}

func (w *World) playMusic() {
	if w.audio.Has(CueMusic) {
		w.audio.Play(CueMusic)
	}
}

// play triggers a sound effect when sound is on and the cue exists
func (w *World) play(cue string) {
	if !w.soundEnabled || !w.audio.Has(cue) {
		return
	}
	w.audio.Play(cue)
}
