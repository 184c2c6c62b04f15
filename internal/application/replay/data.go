// Package replay records and plays back per-frame input so a seeded run can be reproduced.
package replay

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/younwookim/tinytown/internal/application/system"
)

// FormatVersion is written into every replay
const FormatVersion = "2.0"

// Frame is the input of one tick
type Frame struct {
	F int `json:"f"` // Frame number
	system.InputState
}

// Data contains all data needed to replay a session
type Data struct {
	Version   string  `json:"version"`
	Seed      int64   `json:"seed"`
	Variant   string  `json:"variant"`
	DT        float64 `json:"dt"`
	StartTime string  `json:"startTime"`
	Frames    []Frame `json:"frames"`
}

// Encode writes d as indented JSON
func (d *Data) Encode(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(d); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}
	return nil
}

// Decode reads a replay written by Encode
func Decode(r io.Reader) (*Data, error) {
	var d Data
	if err := json.NewDecoder(r).Decode(&d); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if d.Version == "" {
		return nil, fmt.Errorf("failed to decode replay: missing version")
	}
	return &d, nil
}
