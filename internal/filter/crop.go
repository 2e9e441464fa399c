package filter

import (
	"fmt"
	"strings"
)

// Crop trims the video frame. All dimension fields are optional; only the
// fields that were set appear in the rendered expression, in the fixed
// order width, height, x, y, keep-aspect, exact.
type Crop struct {
	width, height, x, y *int
	keepAspect          bool
	exact               bool
}

// CropOption configures a Crop filter.
type CropOption func(*Crop)

// CropWidth sets the output width.
func CropWidth(w int) CropOption {
	return func(c *Crop) { c.width = &w }
}

// CropHeight sets the output height.
func CropHeight(h int) CropOption {
	return func(c *Crop) { c.height = &h }
}

// CropX sets the horizontal position of the crop area.
func CropX(x int) CropOption {
	return func(c *Crop) { c.x = &x }
}

// CropY sets the vertical position of the crop area.
func CropY(y int) CropOption {
	return func(c *Crop) { c.y = &y }
}

// CropKeepAspect keeps the display aspect ratio of the input.
func CropKeepAspect() CropOption {
	return func(c *Crop) { c.keepAspect = true }
}

// CropExact enables exact cropping, disabling subsampled-chroma rounding.
func CropExact() CropOption {
	return func(c *Crop) { c.exact = true }
}

// NewCrop creates a crop filter with the given options.
func NewCrop(opts ...CropOption) *Crop {
	c := &Crop{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Name returns the ffmpeg filter name.
func (c *Crop) Name() string { return "crop" }

// FFmpegCLIValue renders the filter. A crop with no fields set renders as
// "crop=", which is legal at the filter level; emptiness only becomes an
// error at the chain level.
func (c *Crop) FFmpegCLIValue() (string, error) {
	var parts []string
	if c.width != nil {
		parts = append(parts, fmt.Sprintf("w=%d", *c.width))
	}
	if c.height != nil {
		parts = append(parts, fmt.Sprintf("h=%d", *c.height))
	}
	if c.x != nil {
		parts = append(parts, fmt.Sprintf("x=%d", *c.x))
	}
	if c.y != nil {
		parts = append(parts, fmt.Sprintf("y=%d", *c.y))
	}
	if c.keepAspect {
		parts = append(parts, "keep_aspect=1")
	}
	if c.exact {
		parts = append(parts, "exact=1")
	}
	return "crop=" + strings.Join(parts, ":"), nil
}
