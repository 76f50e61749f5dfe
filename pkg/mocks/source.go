// Package mocks provides mock implementations for testing.
package mocks

import (
	"image"
	"sync"

	"github.com/user/gifcast/pkg/ports"
)

// ImageSource is a mock implementation of ports.ImageSource.
type ImageSource struct {
	mu       sync.Mutex
	captures int

	CaptureFunc  func() (image.Image, error)
	GeometryFunc func() (image.Rectangle, error)
}

func (m *ImageSource) Capture() (image.Image, error) {
	m.mu.Lock()
	m.captures++
	m.mu.Unlock()
	if m.CaptureFunc != nil {
		return m.CaptureFunc()
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

func (m *ImageSource) Geometry() (image.Rectangle, error) {
	if m.GeometryFunc != nil {
		return m.GeometryFunc()
	}
	return image.Rect(0, 0, 1, 1), nil
}

// Captures returns how many times Capture was invoked (for test verification).
func (m *ImageSource) Captures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.captures
}

var _ ports.ImageSource = (*ImageSource)(nil)
