package replay

import (
	"fmt"
	"os"

	"github.com/younwookim/tinytown/internal/application/system"
)

// Replayer handles input playback from recorded data.
// It is a system.InputSource that goes idle after the last frame.
type Replayer struct {
	data  Data
	frame int
}

// NewReplayer creates a new replayer from replay data
func NewReplayer(data Data) *Replayer {
	return &Replayer{data: data}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*Data, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file)
}

// Next returns the input for the current frame and advances
func (r *Replayer) Next() (system.InputState, bool) {
	if r.frame >= len(r.data.Frames) {
		return system.InputState{}, false
	}
	in := r.data.Frames[r.frame].InputState
	r.frame++
	return in, true
}

// Poll implements system.InputSource
func (r *Replayer) Poll() system.InputState {
	in, _ := r.Next()
	return in
}

// Done reports whether every frame was played
func (r *Replayer) Done() bool {
	return r.frame >= len(r.data.Frames)
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.data.Frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Variant returns the variant the replay was recorded on
func (r *Replayer) Variant() string {
	return r.data.Variant
}

// DT returns the recorded tick length
func (r *Replayer) DT() float64 {
	return r.data.DT
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

var _ system.InputSource = (*Replayer)(nil)
