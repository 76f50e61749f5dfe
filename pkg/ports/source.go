// Package ports defines interfaces for external dependencies.
package ports

import (
	"context"
	"image"
)

// ImageSource abstracts frame acquisition from a screen or window.
// Implementations must be safe to call from the capture worker goroutine.
type ImageSource interface {
	// Capture returns one still image of the source.
	// An error means the source is unavailable; the current recording
	// cannot continue past that point.
	Capture() (image.Image, error)

	// Geometry returns the pixel bounds the source captures.
	Geometry() (image.Rectangle, error)
}

// CommandRunner abstracts running a companion command to completion.
type CommandRunner interface {
	// Run executes the command and blocks until it exits.
	// A non-zero exit status is reported as an error.
	Run(ctx context.Context, command string) error
}
