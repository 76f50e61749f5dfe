// Package screengrab provides a display-backed image source.
package screengrab

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/user/gifcast/pkg/ports"
)

// Source implements ports.ImageSource for a physical display.
type Source struct {
	display int
	region  image.Rectangle // Zero rectangle captures the whole display
}

// New creates a source capturing the given display. A non-empty region
// restricts capture to that area, in display coordinates.
func New(display int, region image.Rectangle) *Source {
	return &Source{display: display, region: region}
}

// Displays returns the bounds of all active displays.
func Displays() []image.Rectangle {
	n := screenshot.NumActiveDisplays()
	bounds := make([]image.Rectangle, n)
	for i := 0; i < n; i++ {
		bounds[i] = screenshot.GetDisplayBounds(i)
	}
	return bounds
}

// Geometry returns the pixel bounds the source captures.
func (s *Source) Geometry() (image.Rectangle, error) {
	if screenshot.NumActiveDisplays() <= s.display {
		return image.Rectangle{}, fmt.Errorf("display %d not found", s.display)
	}
	if !s.region.Empty() {
		return s.region, nil
	}
	return screenshot.GetDisplayBounds(s.display), nil
}

// Capture returns one still image of the display.
func (s *Source) Capture() (image.Image, error) {
	bounds, err := s.Geometry()
	if err != nil {
		return nil, err
	}
	img, err := screenshot.CaptureRect(bounds)
	if err != nil {
		return nil, fmt.Errorf("capture display %d: %w", s.display, err)
	}
	return img, nil
}

// Ensure Source implements ports.ImageSource
var _ ports.ImageSource = (*Source)(nil)
