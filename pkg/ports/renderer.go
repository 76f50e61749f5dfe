package ports

import (
	"image"
	"image/color"
)

// Renderer abstracts image processing operations.
type Renderer interface {
	// Decorate returns the image with padding applied and an optional
	// border drawn around it.
	Decorate(img image.Image, opts DecorOptions) image.Image

	// Resize resizes an image to the specified dimensions.
	Resize(img image.Image, width, height int) image.Image

	// EncodeImage encodes an image to the specified format.
	EncodeImage(img image.Image, format ImageFormat, quality int) ([]byte, error)

	// DecodeImage decodes image data, auto-detecting the format.
	DecodeImage(data []byte) (image.Image, error)
}

// DecorOptions configures frame decoration.
type DecorOptions struct {
	Padding     Padding
	BorderWidth int // 0 disables the border
	BorderColor color.Color
}

// Padding is the extra space around a frame, in pixels.
type Padding struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Empty reports whether no padding is set.
func (p Padding) Empty() bool {
	return p == Padding{}
}
