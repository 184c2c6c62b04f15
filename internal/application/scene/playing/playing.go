// Package playing provides the scene that runs a World under ebiten.
package playing

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/tinytown/internal/application/replay"
	"github.com/younwookim/tinytown/internal/application/scene"
	"github.com/younwookim/tinytown/internal/application/system"
	"github.com/younwookim/tinytown/internal/application/view"
	"github.com/younwookim/tinytown/internal/application/world"
	"github.com/younwookim/tinytown/internal/infrastructure/render"
)

// Options configures the Playing scene
type Options struct {
	// Input defaults to the keyboard and mouse
	Input system.InputSource

	// Atlas holds the sprites; nil draws rectangles only
	Atlas *render.Atlas

	Logger *log.Logger

	// Recorder captures every polled input; the file is written on exit
	Recorder   *replay.Recorder
	RecordPath string
}

// Playing is the main gameplay scene
type Playing struct {
	world    *world.World
	renderer *view.Renderer
	input    system.InputSource
	atlas    *render.Atlas
	logger   *log.Logger

	recorder   *replay.Recorder
	recordPath string
}

// New creates a new Playing scene around w
func New(w *world.World, opts Options) *Playing {
	p := &Playing{
		world:      w,
		renderer:   view.NewRenderer(),
		input:      opts.Input,
		atlas:      opts.Atlas,
		logger:     opts.Logger,
		recorder:   opts.Recorder,
		recordPath: opts.RecordPath,
	}
	if p.input == nil {
		p.input = system.NewInputSystem()
	}
	if p.logger == nil {
		p.logger = log.New(io.Discard)
	}
	return p
}

// Update advances the world one frame (implements scene.Scene).
// Exit from the menu ends the game loop with ebiten.Termination.
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	in := p.input.Poll()
	if p.recorder != nil {
		p.recorder.RecordFrame(in)

		// F5: save the recording so far
		if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
			p.saveRecording()
		}
	}

	if err := p.world.Update(dt, in); err != nil {
		if errors.Is(err, world.ErrQuit) {
			return nil, ebiten.Termination
		}
		return nil, err
	}

	p.renderer.Update(dt, p.world)
	return nil, nil // nil = stay on this scene
}

// Draw renders the world (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	p.renderer.Draw(render.NewSurface(screen, p.atlas), p.world)
}

// OnEnter implements scene.Scene
func (p *Playing) OnEnter() {
	p.logger.Info("scene started", "variant", p.world.Config().Name, "mode", p.world.Mode())
}

// OnExit saves the recording, if any (implements scene.Scene)
func (p *Playing) OnExit() {
	p.saveRecording()
}

// World returns the running world
func (p *Playing) World() *world.World {
	return p.world
}

func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error("failed to save recording", "file", filename, "error", err)
		return
	}
	p.logger.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
}
