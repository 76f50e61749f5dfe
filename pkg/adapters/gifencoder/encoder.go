// Package gifencoder encodes frame sequences with the standard GIF codec.
package gifencoder

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"

	"github.com/user/gifcast/pkg/ports"
)

// ErrGeometryMismatch is returned when a frame's geometry differs from
// the canvas declared at Begin. Geometry drift mid-recording (e.g. a
// resized window) is rejected rather than padded or cropped.
var ErrGeometryMismatch = errors.New("frame geometry differs from the first frame")

// ErrNotStarted is returned when frames are encoded before Begin.
var ErrNotStarted = errors.New("encoder not started")

// Encoder implements ports.AnimationEncoder using image/gif.
type Encoder struct {
	g       *gif.GIF
	bounds  image.Rectangle
	opts    ports.AnimationOptions
	palette []color.Color
}

// New creates a new Encoder.
func New() *Encoder {
	return &Encoder{}
}

// Begin initializes the encoder with the canvas dimensions shared by
// all frames.
func (e *Encoder) Begin(width, height int, opts ports.AnimationOptions) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("invalid canvas %dx%d", width, height)
	}
	if opts.Speed <= 0 {
		opts.Speed = 1.0
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = 75
	}
	loop := 0 // GIF: 0 loops forever
	if opts.Repeat >= 0 {
		loop = opts.Repeat
	}
	e.g = &gif.GIF{LoopCount: loop}
	e.bounds = image.Rect(0, 0, width, height)
	e.opts = opts
	e.palette = qualityPalette(opts.Quality)
	return nil
}

// qualityPalette scales the quantization palette with the configured
// quality: 100 keeps all 256 colors, lower values shrink the palette
// and with it the artifact size.
func qualityPalette(quality int) []color.Color {
	size := len(palette.Plan9) * quality / 100
	if size < 2 {
		size = 2
	}
	return palette.Plan9[:size]
}

// EncodeFrame quantizes and appends a single frame. The delay is scaled
// by the configured playback speed.
func (e *Encoder) EncodeFrame(img image.Image, delayCS int) error {
	if e.g == nil {
		return ErrNotStarted
	}
	bounds := img.Bounds()
	if bounds.Dx() != e.bounds.Dx() || bounds.Dy() != e.bounds.Dy() {
		return fmt.Errorf("frame %d: %w", len(e.g.Image), ErrGeometryMismatch)
	}

	paletted := image.NewPaletted(e.bounds, e.palette)
	if e.opts.Fast {
		draw.Draw(paletted, e.bounds, img, bounds.Min, draw.Src)
	} else {
		draw.FloydSteinberg.Draw(paletted, e.bounds, img, bounds.Min)
	}

	if delayCS < 0 {
		delayCS = 0
	}
	e.g.Image = append(e.g.Image, paletted)
	e.g.Delay = append(e.g.Delay, int(float64(delayCS)/e.opts.Speed))
	return nil
}

// End finalizes encoding and returns the GIF bytes.
func (e *Encoder) End() ([]byte, error) {
	if e.g == nil {
		return nil, ErrNotStarted
	}
	if len(e.g.Image) == 0 {
		return nil, errors.New("no frames encoded")
	}
	var buf bytes.Buffer
	if err := gif.EncodeAll(&buf, e.g); err != nil {
		return nil, fmt.Errorf("encode GIF: %w", err)
	}
	e.g = nil
	return buf.Bytes(), nil
}

// Decoder implements ports.AnimationDecoder using image/gif.
type Decoder struct{}

// NewDecoder creates a new Decoder.
func NewDecoder() *Decoder {
	return &Decoder{}
}

// Decode reads all frames and their delays out of a GIF artifact.
func (d *Decoder) Decode(data []byte) ([]ports.AnimationFrame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode GIF: %w", err)
	}
	frames := make([]ports.AnimationFrame, 0, len(g.Image))
	for i, img := range g.Image {
		delay := 0
		if i < len(g.Delay) {
			delay = g.Delay[i]
		}
		frames = append(frames, ports.AnimationFrame{Image: img, DelayCS: delay})
	}
	return frames, nil
}

// Ensure interfaces are implemented
var (
	_ ports.AnimationEncoder = (*Encoder)(nil)
	_ ports.AnimationDecoder = (*Decoder)(nil)
)
