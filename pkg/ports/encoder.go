package ports

import (
	"image"
)

// AnimationEncoder abstracts animated-image encoding.
type AnimationEncoder interface {
	// Begin initializes the encoder with the canvas dimensions shared by
	// all frames of the animation.
	Begin(width, height int, opts AnimationOptions) error

	// EncodeFrame appends a single frame with its display duration in
	// hundredths of a second.
	EncodeFrame(img image.Image, delayCS int) error

	// End finalizes encoding and returns the artifact bytes.
	End() ([]byte, error)
}

// AnimationOptions configures animation encoding parameters.
type AnimationOptions struct {
	Repeat  int     // Loop count; negative means loop forever
	Quality int     // Encoding quality: 1-100 (higher is better)
	Speed   float64 // Delay divisor; 2.0 plays back twice as fast
	Fast    bool    // Trade dithering quality for encoding speed
}

// AnimationFrame is one frame read back out of an animated artifact.
type AnimationFrame struct {
	Image   image.Image
	DelayCS int // Display duration in hundredths of a second
}

// AnimationDecoder abstracts reading frames back out of an animated artifact.
type AnimationDecoder interface {
	Decode(data []byte) ([]AnimationFrame, error)
}

// StillEncoder abstracts single-image encoding.
type StillEncoder interface {
	// Encode encodes an image to the specified format.
	// The quality parameter only applies to lossy formats.
	Encode(img image.Image, format ImageFormat, quality int) ([]byte, error)
}

// ImageFormat specifies the output artifact format.
type ImageFormat int

const (
	FormatGIF ImageFormat = iota
	FormatPNG
	FormatJPEG
	FormatBMP
)

// String returns the canonical file extension of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatGIF:
		return "gif"
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatBMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// ParseImageFormat parses a file extension into an ImageFormat.
// Unrecognized values fall back to GIF, the recording default.
func ParseImageFormat(s string) ImageFormat {
	switch s {
	case "png":
		return FormatPNG
	case "jpg", "jpeg":
		return FormatJPEG
	case "bmp":
		return FormatBMP
	default:
		return FormatGIF
	}
}
