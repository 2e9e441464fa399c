// Package filter provides composable video filters for the conversion
// parameter model. A Filter is only required to name itself; producing a
// CLI value is an optional capability checked at render time via
// params.CLIValuer. Filters without the capability are inert placeholders
// that other layers may consume (for example Clip, whose range becomes
// seek parameters instead of a -filter:v expression).
package filter

// Filter is the marker interface all video filters satisfy.
type Filter interface {
	Name() string
}
