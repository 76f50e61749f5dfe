package mocks

import (
	"image"

	"github.com/user/gifcast/pkg/ports"
)

// Renderer is a mock implementation of ports.Renderer.
type Renderer struct {
	Decorated int

	DecorateFunc    func(img image.Image, opts ports.DecorOptions) image.Image
	ResizeFunc      func(img image.Image, width, height int) image.Image
	EncodeImageFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
	DecodeImageFunc func(data []byte) (image.Image, error)
}

func (m *Renderer) Decorate(img image.Image, opts ports.DecorOptions) image.Image {
	m.Decorated++
	if m.DecorateFunc != nil {
		return m.DecorateFunc(img, opts)
	}
	return img
}

func (m *Renderer) Resize(img image.Image, width, height int) image.Image {
	if m.ResizeFunc != nil {
		return m.ResizeFunc(img, width, height)
	}
	return img
}

func (m *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	if m.EncodeImageFunc != nil {
		return m.EncodeImageFunc(img, format, quality)
	}
	return []byte{}, nil
}

func (m *Renderer) DecodeImage(data []byte) (image.Image, error) {
	if m.DecodeImageFunc != nil {
		return m.DecodeImageFunc(data)
	}
	return image.NewRGBA(image.Rect(0, 0, 1, 1)), nil
}

var _ ports.Renderer = (*Renderer)(nil)
