// Package sim runs a World without a window, for soak tests, bots and replays.
package sim

import (
	"errors"
	"fmt"

	"github.com/younwookim/tinytown/internal/application/system"
	"github.com/younwookim/tinytown/internal/application/world"
)

// Recorder receives every input the runner feeds to the world
type Recorder interface {
	RecordFrame(in system.InputState)
}

// Runner drives a World from an InputSource at a fixed dt
type Runner struct {
	world    *world.World
	source   system.InputSource
	dt       float64
	recorder Recorder
}

// NewRunner creates a runner
func NewRunner(w *world.World, source system.InputSource, dt float64) *Runner {
	return &Runner{world: w, source: source, dt: dt}
}

// Record tees every polled input into rec
func (r *Runner) Record(rec Recorder) {
	r.recorder = rec
}

// Run advances up to ticks frames. Exit from the menu ends the run early
// without an error.
func (r *Runner) Run(ticks int) (Stats, error) {
	if r.dt <= 0 {
		return Stats{}, fmt.Errorf("invalid dt %v", r.dt)
	}

	var stats Stats
	for i := 0; i < ticks; i++ {
		in := r.source.Poll()
		if r.recorder != nil {
			r.recorder.RecordFrame(in)
		}

		err := r.world.Update(r.dt, in)
		stats.Ticks++
		stats.Elapsed += r.dt
		stats.record(r.world.Events())
		stats.BestScore = max(stats.BestScore, r.world.Score(), r.world.LastScore())

		if errors.Is(err, world.ErrQuit) {
			break
		}
		if err != nil {
			return stats, fmt.Errorf("tick %d: %w", i, err)
		}
	}

	stats.FinalScore = r.world.Score()
	stats.FinalHealth = r.world.Player().Health
	stats.Enemies = len(r.world.Enemies())
	return stats, nil
}
