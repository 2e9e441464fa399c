package params

// Name identifies a conversion parameter. Only the constants below are
// valid; the adapter rejects anything outside this vocabulary.
type Name string

// Conversion parameter constants
const (
	OutputFormat    Name = "output_format"
	VideoCodec      Name = "video_codec"
	AudioCodec      Name = "audio_codec"
	VideoBitrate    Name = "video_bitrate"
	AudioBitrate    Name = "audio_bitrate"
	MinBitrate      Name = "min_bitrate"
	MaxBitrate      Name = "max_bitrate"
	PixelFormat     Name = "pixel_format"
	Preset          Name = "preset"
	Speed           Name = "speed"
	Threads         Name = "threads"
	KeyframeSpacing Name = "keyframe_spacing"
	Quality         Name = "quality"
	QScale          Name = "qscale"
	CRF             Name = "crf"
	Streamable      Name = "streamable"
	FrameParallel   Name = "frame_parallel"
	TileColumns     Name = "tile_columns"
	Tune            Name = "tune"
	VideoFilter     Name = "video_filter"
	Overwrite       Name = "overwrite"
	FrameLimit      Name = "frame_limit"
	NoAudio         Name = "no_audio"
	SeekStart       Name = "seek_start"
	SeekEnd         Name = "seek_end"
	PassLogFile     Name = "pass_log_file"
	Pass            Name = "pass"
	AutoAltRef      Name = "auto_alt_ref"
	LagInFrames     Name = "lag_in_frames"
)

// ordered is the canonical rendering order. Sets iterate in this order so
// generated commands are reproducible regardless of insertion order.
var ordered = []Name{
	SeekStart,
	SeekEnd,
	OutputFormat,
	VideoCodec,
	AudioCodec,
	VideoBitrate,
	AudioBitrate,
	MinBitrate,
	MaxBitrate,
	PixelFormat,
	Preset,
	Speed,
	Threads,
	KeyframeSpacing,
	Quality,
	QScale,
	CRF,
	Streamable,
	FrameParallel,
	TileColumns,
	Tune,
	VideoFilter,
	FrameLimit,
	NoAudio,
	Pass,
	PassLogFile,
	AutoAltRef,
	LagInFrames,
	Overwrite,
}

var known = func() map[Name]bool {
	m := make(map[Name]bool, len(ordered))
	for _, n := range ordered {
		m[n] = true
	}
	return m
}()

// All returns every parameter name in canonical order.
func All() []Name {
	out := make([]Name, len(ordered))
	copy(out, ordered)
	return out
}

// IsKnown reports whether name belongs to the fixed vocabulary.
func IsKnown(name Name) bool {
	return known[name]
}
