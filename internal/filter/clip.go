package filter

// Clip marks a time range of the input to convert. It deliberately exposes
// no CLI rendering capability: the range is consumed by callers as seek
// parameters (-ss/-to), so inside a chain the filter is an inert
// placeholder contributing nothing to the -filter:v expression.
type Clip struct {
	Start    string
	Duration string
}

// NewClip creates a clip marker with timecodes like "00:01:30" or "90".
func NewClip(start, duration string) *Clip {
	return &Clip{Start: start, Duration: duration}
}

// Name identifies the filter.
func (c *Clip) Name() string { return "clip" }
