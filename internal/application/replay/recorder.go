package replay

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/tinytown/internal/application/system"
)

// ErrEmpty is returned when saving a recording with no frames
var ErrEmpty = errors.New("no frames to save")

// Recorder accumulates polled inputs for one run
type Recorder struct {
	data    Data
	stopped bool
}

// NewRecorder starts a recording of a run seeded with seed on variant
func NewRecorder(seed int64, variant string, dt float64) *Recorder {
	return &Recorder{
		data: Data{
			Version:   FormatVersion,
			Seed:      seed,
			Variant:   variant,
			DT:        dt,
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]Frame, 0, 3600),
		},
	}
}

// RecordFrame appends one tick of input; it is a no-op once stopped
func (r *Recorder) RecordFrame(input system.InputState) {
	if r.stopped {
		return
	}
	r.data.Frames = append(r.data.Frames, Frame{F: len(r.data.Frames), InputState: input})
}

// Save writes the recording so far to filename. The file is written next to
// its destination and renamed into place, so a save during play never leaves
// a truncated replay behind.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return ErrEmpty
	}

	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create replay dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".replay-*.json")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if err := r.data.Encode(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to write replay: %w", err)
	}
	return nil
}

// Stop ends the recording; frames recorded so far are kept
func (r *Recorder) Stop() {
	r.stopped = true
}

func (r *Recorder) IsRecording() bool {
	return !r.stopped
}

func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns a copy of the recording header and frames
func (r *Recorder) Data() Data {
	d := r.data
	d.Frames = append([]Frame(nil), r.data.Frames...)
	return d
}

// GenerateFilename names a replay after the current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
