package ports

import (
	"image"
)

// DebugSink abstracts debug output for intermediate results.
// It allows saving intermediate capture results for debugging purposes.
type DebugSink interface {
	// Enabled returns true if debug output is enabled.
	Enabled() bool

	// SaveRecordingJSON saves the recording metadata as JSON.
	SaveRecordingJSON(data []byte) error

	// SaveFrame saves a captured frame.
	SaveFrame(index int, img image.Image) error
}
