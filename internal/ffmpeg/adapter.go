// Package ffmpeg maps typed conversion parameter sets onto ffmpeg's CLI
// syntax. The adapter renders each parameter through a static pattern
// table, runs cross-parameter validation, and assembles the final
// shell-ready command line. It never executes anything; spawning and
// monitoring the process belongs to an external runner.
package ffmpeg

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/user/ffcmd/internal/params"
)

// Config exposes the externally configured binary settings the adapter
// needs. Satisfied by *config.Config.
type Config interface {
	BinaryPath() string
	ThreadCount() int
}

// Mapped is one rendered parameter: the name it came from and the CLI
// argument fragment it produced. Boolean false parameters render as the
// empty string.
type Mapped struct {
	Name params.Name
	Arg  string
}

// Adapter translates parameter sets into ffmpeg argument fragments and
// command lines.
type Adapter struct {
	cfg       Config
	validator Validator
	logger    *slog.Logger
}

// Option configures an Adapter.
type Option func(*Adapter)

// WithValidator replaces the default cross-parameter validator.
func WithValidator(v Validator) Option {
	return func(a *Adapter) { a.validator = v }
}

// WithLogger attaches a logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(a *Adapter) { a.logger = logger }
}

// NewAdapter creates an adapter bound to a binary configuration.
func NewAdapter(cfg Config, opts ...Option) *Adapter {
	a := &Adapter{
		cfg:       cfg,
		validator: NewValidator(DefaultRules()...),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// MappedConversionParams renders every parameter in the set into its CLI
// argument fragment, in the set's canonical iteration order. When the
// overwrite flag is absent it is injected as true on a copy of the set;
// the caller's instance is never touched. With validate set, the
// cross-parameter validator runs against the augmented set and its
// failure propagates.
func (a *Adapter) MappedConversionParams(set params.Set, validate bool) ([]Mapped, error) {
	if !set.Has(params.Overwrite) {
		set = set.With(params.Overwrite, params.Bool(true))
	}

	mapped := make([]Mapped, 0, set.Len())
	for _, name := range set.Names() {
		value, _ := set.Get(name)
		arg, err := renderParam(name, value)
		if err != nil {
			return nil, err
		}
		mapped = append(mapped, Mapped{Name: name, Arg: arg})
	}

	if validate && a.validator != nil {
		if err := a.validator.Validate(set); err != nil {
			return nil, err
		}
	}

	if a.logger != nil {
		a.logger.Debug("mapped conversion params", "count", len(mapped))
	}
	return mapped, nil
}

// renderParam renders one name/value pair through the pattern table.
func renderParam(name params.Name, value params.Value) (string, error) {
	pattern, ok := Pattern(name)
	if !ok {
		return "", params.NewError(params.ErrCodeUnsupportedParam,
			fmt.Sprintf("parameter %q has no CLI mapping", string(name)), nil)
	}

	switch value.Kind() {
	case params.KindBool:
		if on, _ := value.BoolVal(); on {
			return pattern, nil
		}
		return "", nil
	case params.KindInt, params.KindString, params.KindRenderer:
		text, err := value.Text()
		if err != nil {
			return "", err
		}
		if strings.Contains(pattern, "%s") {
			return fmt.Sprintf(pattern, text), nil
		}
		return pattern, nil
	default:
		return "", params.NewError(params.ErrCodeUnsupportedParamValue,
			fmt.Sprintf("parameter %q holds an unrenderable %s value",
				string(name), value.Kind()), nil)
	}
}

// Args collects the non-empty argument fragments from mapped parameters,
// preserving order.
func Args(mapped []Mapped) []string {
	out := make([]string, 0, len(mapped))
	for _, m := range mapped {
		if m.Arg != "" {
			out = append(out, m.Arg)
		}
	}
	return out
}

// DefaultThreads returns the configured default thread count for the
// binary.
func (a *Adapter) DefaultThreads() int {
	return a.cfg.ThreadCount()
}
