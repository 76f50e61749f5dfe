// Package ggrenderer provides a renderer implementation using the gg library.
package ggrenderer

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif" // DecodeImage format registration
	"image/jpeg"
	"image/png"

	"github.com/fogleman/gg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"

	"github.com/user/gifcast/pkg/ports"
)

// Renderer implements ports.Renderer using the gg library.
type Renderer struct{}

// New creates a new Renderer.
func New() *Renderer {
	return &Renderer{}
}

// Decorate returns the image with padding applied and an optional
// border drawn around it. The border is stroked inside the padded
// canvas so the output geometry is the source geometry plus padding.
func (r *Renderer) Decorate(img image.Image, opts ports.DecorOptions) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx() + opts.Padding.Left + opts.Padding.Right
	height := bounds.Dy() + opts.Padding.Top + opts.Padding.Bottom

	dc := gg.NewContext(width, height)
	dc.DrawImage(img, opts.Padding.Left, opts.Padding.Top)

	if opts.BorderWidth > 0 && opts.BorderColor != nil {
		w := float64(opts.BorderWidth)
		dc.SetColor(opts.BorderColor)
		dc.SetLineWidth(w)
		dc.DrawRectangle(w/2, w/2, float64(width)-w, float64(height)-w)
		dc.Stroke()
	}

	return dc.Image()
}

// Resize resizes an image to the specified dimensions.
func (r *Renderer) Resize(img image.Image, width, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}

// EncodeImage encodes an image to the specified format.
func (r *Renderer) EncodeImage(img image.Image, format ports.ImageFormat, quality int) ([]byte, error) {
	var buf bytes.Buffer

	switch format {
	case ports.FormatJPEG:
		opts := &jpeg.Options{Quality: quality}
		if err := jpeg.Encode(&buf, img, opts); err != nil {
			return nil, fmt.Errorf("encode JPEG: %w", err)
		}
	case ports.FormatPNG:
		if err := png.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode PNG: %w", err)
		}
	case ports.FormatBMP:
		if err := bmp.Encode(&buf, img); err != nil {
			return nil, fmt.Errorf("encode BMP: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return buf.Bytes(), nil
}

// DecodeImage decodes image data, auto-detecting the format.
func (r *Renderer) DecodeImage(data []byte) (image.Image, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	return img, err
}

// Ensure Renderer implements ports.Renderer
var _ ports.Renderer = (*Renderer)(nil)
