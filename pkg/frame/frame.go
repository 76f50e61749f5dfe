// Package frame defines the captured frame data model.
package frame

import (
	"image"
	"time"
)

// Frame is one captured image paired with its display duration.
// The delay is expressed in hundredths of a second, the timing unit
// of the animated-image sink.
type Frame struct {
	Image   image.Image
	DelayCS int
}

// Sequence is an ordered list of captured frames. It is owned
// exclusively by the capture worker while recording and by the caller
// after retrieval; it is never accessed by both at once.
type Sequence []Frame

// Geometry returns the pixel bounds shared by the sequence, taken from
// the first frame. The zero rectangle is returned for an empty sequence.
func (s Sequence) Geometry() image.Rectangle {
	if len(s) == 0 {
		return image.Rectangle{}
	}
	return s[0].Image.Bounds()
}

// Duration returns the total display time of the sequence.
func (s Sequence) Duration() time.Duration {
	var cs int
	for _, f := range s {
		cs += f.DelayCS
	}
	return time.Duration(cs) * 10 * time.Millisecond
}
