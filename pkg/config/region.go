package config

import (
	"fmt"
	"image"
	"strconv"
	"strings"
)

// ParseRegion parses a capture region in "WxH+X+Y" form. The offset
// part is optional; an empty string means the whole display.
func ParseRegion(s string) (image.Rectangle, error) {
	if s == "" {
		return image.Rectangle{}, nil
	}
	size := s
	var x, y int
	if i := strings.Index(s, "+"); i >= 0 {
		size = s[:i]
		offsets := strings.Split(s[i+1:], "+")
		if len(offsets) != 2 {
			return image.Rectangle{}, fmt.Errorf("invalid region %q", s)
		}
		var err error
		if x, err = strconv.Atoi(offsets[0]); err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid region %q", s)
		}
		if y, err = strconv.Atoi(offsets[1]); err != nil {
			return image.Rectangle{}, fmt.Errorf("invalid region %q", s)
		}
	}
	dims := strings.Split(size, "x")
	if len(dims) != 2 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q", s)
	}
	w, err := strconv.Atoi(dims[0])
	if err != nil || w <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q", s)
	}
	h, err := strconv.Atoi(dims[1])
	if err != nil || h <= 0 {
		return image.Rectangle{}, fmt.Errorf("invalid region %q", s)
	}
	return image.Rect(x, y, x+w, y+h), nil
}
