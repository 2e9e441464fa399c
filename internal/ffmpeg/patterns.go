package ffmpeg

import "github.com/user/ffcmd/internal/params"

// patterns maps every supported parameter name to its CLI rendering
// pattern. Patterns with a %s placeholder consume the parameter's value;
// placeholder-free patterns are boolean flags rendered whole when true
// and dropped when false.
var patterns = map[params.Name]string{
	params.SeekStart:       "-ss %s",
	params.SeekEnd:         "-to %s",
	params.OutputFormat:    "-f %s",
	params.VideoCodec:      "-c:v %s",
	params.AudioCodec:      "-c:a %s",
	params.VideoBitrate:    "-b:v %s",
	params.AudioBitrate:    "-b:a %s",
	params.MinBitrate:      "-minrate %s",
	params.MaxBitrate:      "-maxrate %s",
	params.PixelFormat:     "-pix_fmt %s",
	params.Preset:          "-preset %s",
	params.Speed:           "-speed %s",
	params.Threads:         "-threads %s",
	params.KeyframeSpacing: "-g %s",
	params.Quality:         "-quality %s",
	params.QScale:          "-qscale:v %s",
	params.CRF:             "-crf %s",
	params.Streamable:      "-movflags +faststart",
	params.FrameParallel:   "-frame-parallel %s",
	params.TileColumns:     "-tile-columns %s",
	params.Tune:            "-tune %s",
	params.VideoFilter:     "-filter:v %s",
	params.FrameLimit:      "-frames:v %s",
	params.NoAudio:         "-an",
	params.Pass:            "-pass %s",
	params.PassLogFile:     "-passlogfile %s",
	params.AutoAltRef:      "-auto-alt-ref %s",
	params.LagInFrames:     "-lag-in-frames %s",
	params.Overwrite:       "-y",
}

// Pattern returns the CLI pattern for a parameter name.
func Pattern(name params.Name) (string, bool) {
	p, ok := patterns[name]
	return p, ok
}
