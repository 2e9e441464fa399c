package filter

import "fmt"

// Scale resizes the video frame to the given dimensions. A dimension of
// -1 keeps the input aspect ratio, matching ffmpeg's scale semantics.
type Scale struct {
	Width  int
	Height int
}

// NewScale creates a scale filter.
func NewScale(width, height int) *Scale {
	return &Scale{Width: width, Height: height}
}

// Name returns the ffmpeg filter name.
func (s *Scale) Name() string { return "scale" }

// FFmpegCLIValue renders the filter.
func (s *Scale) FFmpegCLIValue() (string, error) {
	return fmt.Sprintf("scale=%d:%d", s.Width, s.Height), nil
}
