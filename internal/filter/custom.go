package filter

// Custom carries a raw ffmpeg filter expression verbatim, for filters the
// library has no dedicated type for (e.g. "fps=30" or "yadif=0").
type Custom struct {
	Expr string
}

// NewCustom creates a custom filter from a raw expression.
func NewCustom(expr string) *Custom {
	return &Custom{Expr: expr}
}

// Name returns a generic name for the custom filter.
func (c *Custom) Name() string { return "custom" }

// FFmpegCLIValue returns the raw expression unchanged.
func (c *Custom) FFmpegCLIValue() (string, error) {
	return c.Expr, nil
}
