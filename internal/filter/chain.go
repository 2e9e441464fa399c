package filter

import (
	"fmt"
	"strings"

	"github.com/user/ffcmd/internal/params"
)

// Chain is an ordered collection of filters whose renderable outputs
// concatenate into a single -filter:v expression. Order matters; filters
// are appended and never removed.
type Chain struct {
	filters []Filter
}

// NewChain creates a chain holding the given filters in order.
func NewChain(filters ...Filter) *Chain {
	c := &Chain{}
	for _, f := range filters {
		c.AddFilter(f)
	}
	return c
}

// AddFilter appends one filter and returns the chain for chaining calls.
func (c *Chain) AddFilter(f Filter) *Chain {
	c.filters = append(c.filters, f)
	return c
}

// AddFilters appends a batch of values that must all be Filters. The check
// is strict and atomic: if any element is not a Filter the whole batch is
// rejected with an INVALID_ARGUMENT error and the chain stays unmodified.
func (c *Chain) AddFilters(items ...any) error {
	batch := make([]Filter, 0, len(items))
	for i, item := range items {
		f, ok := item.(Filter)
		if !ok {
			return params.NewError(params.ErrCodeInvalidArgument,
				fmt.Sprintf("element %d is %T, not a filter", i, item), nil)
		}
		batch = append(batch, f)
	}
	c.filters = append(c.filters, batch...)
	return nil
}

// Filters returns the stored filter instances in insertion order.
func (c *Chain) Filters() []Filter {
	out := make([]Filter, len(c.filters))
	copy(out, c.filters)
	return out
}

// FFmpegCLIValue renders the chain by joining each capable filter's
// non-empty rendering in order. Filters without the rendering capability
// contribute nothing, not even a separator. An overall empty rendering is
// an UNSUPPORTED_PARAM_VALUE error: the chain was used where a CLI value
// is required but produced none.
func (c *Chain) FFmpegCLIValue() (string, error) {
	var parts []string
	for _, f := range c.filters {
		r, ok := f.(params.CLIValuer)
		if !ok {
			continue
		}
		v, err := r.FFmpegCLIValue()
		if err != nil {
			return "", err
		}
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return "", params.NewError(params.ErrCodeUnsupportedParamValue,
			"filter chain rendered an empty CLI value", nil)
	}
	return strings.Join(parts, ","), nil
}
