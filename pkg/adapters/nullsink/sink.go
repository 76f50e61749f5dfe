// Package nullsink provides a no-op debug sink.
package nullsink

import (
	"image"

	"github.com/user/gifcast/pkg/ports"
)

// Sink discards all debug output.
type Sink struct{}

// New creates a new Sink.
func New() *Sink {
	return &Sink{}
}

// Enabled returns false so callers can skip preparing debug data.
func (s *Sink) Enabled() bool {
	return false
}

// SaveRecordingJSON does nothing.
func (s *Sink) SaveRecordingJSON(data []byte) error {
	return nil
}

// SaveFrame does nothing.
func (s *Sink) SaveFrame(index int, img image.Image) error {
	return nil
}

// Ensure Sink implements ports.DebugSink
var _ ports.DebugSink = (*Sink)(nil)
