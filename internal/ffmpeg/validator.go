package ffmpeg

import (
	"fmt"
	"strings"

	"github.com/user/ffcmd/internal/params"
)

// Validator enforces cross-parameter semantic constraints the
// per-parameter type system cannot express. Given a fully populated set
// it either returns nil or exactly one descriptive PARAM_VALIDATION
// failure.
type Validator interface {
	Validate(set params.Set) error
}

// Rule checks a single cross-parameter constraint.
type Rule func(set params.Set) error

// RuleValidator runs an ordered list of rules and stops at the first
// violation.
type RuleValidator struct {
	rules []Rule
}

// NewValidator creates a validator from the given rules.
func NewValidator(rules ...Rule) *RuleValidator {
	return &RuleValidator{rules: rules}
}

// Validate runs every rule in order against the set.
func (v *RuleValidator) Validate(set params.Set) error {
	for _, rule := range v.rules {
		if err := rule(set); err != nil {
			return err
		}
	}
	return nil
}

func validationError(format string, args ...any) error {
	return params.NewError(params.ErrCodeParamValidation,
		fmt.Sprintf(format, args...), nil)
}

// DefaultRules returns the standard codec and container compatibility
// rules.
func DefaultRules() []Rule {
	return []Rule{
		RuleCRFExcludesBitrate,
		RuleCRFRange,
		RulePassNumber,
		RuleBitrateBounds,
		RuleVPXOnlyParams,
		RuleNoAudioConflicts,
		RuleStreamableContainer,
	}
}

// RuleCRFExcludesBitrate rejects constant-rate-factor encoding combined
// with a target video bitrate; the two rate-control modes are mutually
// exclusive.
func RuleCRFExcludesBitrate(set params.Set) error {
	if set.Has(params.CRF) && set.Has(params.VideoBitrate) {
		return validationError("crf and video bitrate are mutually exclusive rate-control modes")
	}
	return nil
}

// RuleCRFRange keeps integer CRF values inside ffmpeg's 0-51 range.
func RuleCRFRange(set params.Set) error {
	v, ok := set.Get(params.CRF)
	if !ok {
		return nil
	}
	if crf, isInt := v.IntVal(); isInt && (crf < 0 || crf > 51) {
		return validationError("crf %d out of range 0-51", crf)
	}
	return nil
}

// RulePassNumber constrains multi-pass encoding: the pass number must be
// 1 or 2, and pass 2 needs the pass log file written by pass 1.
func RulePassNumber(set params.Set) error {
	v, ok := set.Get(params.Pass)
	if !ok {
		return nil
	}
	pass, isInt := v.IntVal()
	if isInt && pass != 1 && pass != 2 {
		return validationError("pass must be 1 or 2, got %d", pass)
	}
	if isInt && pass == 2 && !set.Has(params.PassLogFile) {
		return validationError("pass 2 requires a pass log file")
	}
	return nil
}

// RuleBitrateBounds requires a target video bitrate before min/max
// bitrate bounds make sense.
func RuleBitrateBounds(set params.Set) error {
	if set.Has(params.VideoBitrate) {
		return nil
	}
	for _, name := range []params.Name{params.MinBitrate, params.MaxBitrate} {
		if set.Has(name) {
			return validationError("%s requires a video bitrate", string(name))
		}
	}
	return nil
}

// vpxOnly lists parameters only the libvpx encoders understand.
var vpxOnly = []params.Name{
	params.TileColumns,
	params.FrameParallel,
	params.AutoAltRef,
	params.LagInFrames,
}

// RuleVPXOnlyParams rejects libvpx-specific tuning parameters when the
// selected video codec is not a VP8/VP9 encoder.
func RuleVPXOnlyParams(set params.Set) error {
	codec := ""
	if v, ok := set.Get(params.VideoCodec); ok {
		codec, _ = v.StringVal()
	}
	if strings.HasPrefix(codec, "libvpx") {
		return nil
	}
	for _, name := range vpxOnly {
		if set.Has(name) {
			return validationError("%s requires a libvpx video codec, got %q", string(name), codec)
		}
	}
	return nil
}

// RuleNoAudioConflicts rejects audio settings on an audio-less output.
func RuleNoAudioConflicts(set params.Set) error {
	v, ok := set.Get(params.NoAudio)
	if !ok {
		return nil
	}
	if on, _ := v.BoolVal(); !on {
		return nil
	}
	for _, name := range []params.Name{params.AudioCodec, params.AudioBitrate} {
		if set.Has(name) {
			return validationError("%s conflicts with the no-audio flag", string(name))
		}
	}
	return nil
}

// RuleStreamableContainer limits the streamable (faststart) flag to
// containers that support a relocated moov atom.
func RuleStreamableContainer(set params.Set) error {
	v, ok := set.Get(params.Streamable)
	if !ok {
		return nil
	}
	if on, _ := v.BoolVal(); !on {
		return nil
	}
	format := ""
	if fv, present := set.Get(params.OutputFormat); present {
		format, _ = fv.StringVal()
	}
	switch format {
	case "mp4", "mov", "m4v":
		return nil
	}
	return validationError("streamable flag requires an mp4/mov output format, got %q", format)
}
