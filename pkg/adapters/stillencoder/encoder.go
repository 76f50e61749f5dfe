// Package stillencoder encodes single frames as PNG, JPEG or BMP.
package stillencoder

import (
	"image"

	"github.com/user/gifcast/pkg/ports"
)

// Encoder implements ports.StillEncoder on top of a Renderer, which
// owns the actual codec work.
type Encoder struct {
	renderer ports.Renderer
}

// New creates a new Encoder.
func New(renderer ports.Renderer) *Encoder {
	return &Encoder{renderer: renderer}
}

// Encode encodes an image to the specified still format.
func (e *Encoder) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	return e.renderer.EncodeImage(img, format, quality)
}

// Ensure Encoder implements ports.StillEncoder
var _ ports.StillEncoder = (*Encoder)(nil)
