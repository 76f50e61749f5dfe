package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// dateLayout is the marker appended to file names with the date option.
const dateLayout = "20060102T150405"

// FileName returns the output file path with the optional date or
// timestamp marker appended before the extension. An empty path falls
// back to "t.<format>".
func (c OutputConfig) FileName() string {
	return c.fileName(time.Now())
}

func (c OutputConfig) fileName(now time.Time) string {
	name := c.Path
	if name == "" {
		name = "t." + c.Format
	}
	var info string
	switch {
	case c.Date:
		info = now.Format(dateLayout)
	case c.Timestamp:
		info = strconv.FormatInt(now.Unix(), 10)
	default:
		return name
	}
	if i := strings.Index(name, "."); i >= 0 {
		return fmt.Sprintf("%s_%s%s", name[:i], info, name[i:])
	}
	return fmt.Sprintf("%s_%s", name, info)
}
