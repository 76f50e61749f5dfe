package mocks

import (
	"image"

	"github.com/user/gifcast/pkg/ports"
)

// AnimationEncoder is a mock implementation of ports.AnimationEncoder.
type AnimationEncoder struct {
	Width  int
	Height int
	Opts   ports.AnimationOptions
	Frames []image.Image
	Delays []int

	BeginFunc       func(width, height int, opts ports.AnimationOptions) error
	EncodeFrameFunc func(img image.Image, delayCS int) error
	EndFunc         func() ([]byte, error)
}

func (m *AnimationEncoder) Begin(width, height int, opts ports.AnimationOptions) error {
	m.Width = width
	m.Height = height
	m.Opts = opts
	if m.BeginFunc != nil {
		return m.BeginFunc(width, height, opts)
	}
	return nil
}

func (m *AnimationEncoder) EncodeFrame(img image.Image, delayCS int) error {
	m.Frames = append(m.Frames, img)
	m.Delays = append(m.Delays, delayCS)
	if m.EncodeFrameFunc != nil {
		return m.EncodeFrameFunc(img, delayCS)
	}
	return nil
}

func (m *AnimationEncoder) End() ([]byte, error) {
	if m.EndFunc != nil {
		return m.EndFunc()
	}
	return []byte("GIF89a"), nil
}

// AnimationDecoder is a mock implementation of ports.AnimationDecoder.
type AnimationDecoder struct {
	DecodeFunc func(data []byte) ([]ports.AnimationFrame, error)
}

func (m *AnimationDecoder) Decode(data []byte) ([]ports.AnimationFrame, error) {
	if m.DecodeFunc != nil {
		return m.DecodeFunc(data)
	}
	return nil, nil
}

// StillEncoder is a mock implementation of ports.StillEncoder.
type StillEncoder struct {
	Images  []image.Image
	Formats []ports.ImageFormat

	EncodeFunc func(img image.Image, format ports.ImageFormat, quality int) ([]byte, error)
}

func (m *StillEncoder) Encode(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	m.Images = append(m.Images, img)
	m.Formats = append(m.Formats, format)
	if m.EncodeFunc != nil {
		return m.EncodeFunc(img, format, quality)
	}
	return []byte{0x89, 'P', 'N', 'G'}, nil
}

var (
	_ ports.AnimationEncoder = (*AnimationEncoder)(nil)
	_ ports.AnimationDecoder = (*AnimationDecoder)(nil)
	_ ports.StillEncoder     = (*StillEncoder)(nil)
)
