package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/user/ffcmd/internal/config"
	"github.com/user/ffcmd/internal/ffmpeg"
	"github.com/user/ffcmd/internal/filter"
	"github.com/user/ffcmd/internal/logging"
	"github.com/user/ffcmd/internal/params"
)

// buildFlags carries the conversion parameter flags of the build command.
type buildFlags struct {
	input      string
	output     string
	nullOutput bool
	noValidate bool

	format       string
	videoCodec   string
	audioCodec   string
	videoBitrate string
	audioBitrate string
	minBitrate   string
	maxBitrate   string
	pixelFormat  string
	preset       string
	speed        int
	threads      int
	keyint       int
	quality      string
	qscale       int
	crf          int
	streamable   bool
	tune         string
	frames       int
	noAudio      bool
	seekStart    string
	seekEnd      string
	pass         int
	passLogFile  string
	overwrite    bool

	crop    string
	scale   string
	filters []string
}

// stringParams maps flag names to vocabulary names for plain string
// parameters.
var stringParams = map[string]params.Name{
	"format":      params.OutputFormat,
	"vcodec":      params.VideoCodec,
	"acodec":      params.AudioCodec,
	"vbitrate":    params.VideoBitrate,
	"abitrate":    params.AudioBitrate,
	"minrate":     params.MinBitrate,
	"maxrate":     params.MaxBitrate,
	"pix-fmt":     params.PixelFormat,
	"preset":      params.Preset,
	"quality":     params.Quality,
	"tune":        params.Tune,
	"ss":          params.SeekStart,
	"to":          params.SeekEnd,
	"passlogfile": params.PassLogFile,
}

// intParams maps flag names to vocabulary names for integer parameters.
var intParams = map[string]params.Name{
	"speed":   params.Speed,
	"threads": params.Threads,
	"keyint":  params.KeyframeSpacing,
	"qscale":  params.QScale,
	"crf":     params.CRF,
	"frames":  params.FrameLimit,
	"pass":    params.Pass,
}

// boolParams maps flag names to vocabulary names for boolean flags.
var boolParams = map[string]params.Name{
	"streamable": params.Streamable,
	"no-audio":   params.NoAudio,
	"overwrite":  params.Overwrite,
}

// CreateBuildCmd creates the build command.
func CreateBuildCmd() *cobra.Command {
	var configFile string
	flags := &buildFlags{}

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build an ffmpeg command line",
		Long: `Builds a complete ffmpeg command line from conversion parameters and prints it ` +
			`to stdout without executing anything. Only parameters passed explicitly appear in ` +
			`the command; the overwrite flag defaults to enabled.`,
		Run: func(cmd *cobra.Command, _ []string) {
			cfg, err := config.Load(configFile)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			cfg.ApplyFlags(cmd.Flags())
			if err := cfg.Validate(); err != nil {
				fmt.Fprintln(os.Stderr, "Error: invalid config:", err)
				os.Exit(1)
			}
			logging.Initialize(cfg.Logging)

			set, err := paramSetFromFlags(cmd.Flags(), flags)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}

			adapter := ffmpeg.NewAdapter(cfg, ffmpeg.WithLogger(logging.GetLogger("ffmpeg")))
			mapped, err := adapter.MappedConversionParams(set, !flags.noValidate)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}

			var output any
			switch {
			case flags.nullOutput:
				output = ffmpeg.NullDevice()
			case flags.output != "":
				output = flags.output
			}

			command, err := adapter.CLICommand(ffmpeg.Args(mapped), flags.input, output, nil)
			if err != nil {
				fmt.Fprintln(os.Stderr, "Error:", err)
				os.Exit(1)
			}
			fmt.Println(command)
		},
	}

	cmd.Flags().StringVarP(&configFile, "config", "c", "ffcmd.toml", "Path to configuration file")
	cmd.Flags().String("binary", "", "Override the configured ffmpeg binary path")
	cmd.Flags().String("log-level", "", "Override the configured log level")

	cmd.Flags().StringVarP(&flags.input, "input", "i", "", "Input file path")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file path")
	cmd.Flags().BoolVar(&flags.nullOutput, "null-output", false, "Discard output to the null device (two-pass first pass)")
	cmd.Flags().BoolVar(&flags.noValidate, "no-validate", false, "Skip cross-parameter validation")

	cmd.Flags().StringVar(&flags.format, "format", "", "Output container format (-f)")
	cmd.Flags().StringVar(&flags.videoCodec, "vcodec", "", "Video codec (-c:v)")
	cmd.Flags().StringVar(&flags.audioCodec, "acodec", "", "Audio codec (-c:a)")
	cmd.Flags().StringVar(&flags.videoBitrate, "vbitrate", "", "Video bitrate (-b:v), e.g. 2M")
	cmd.Flags().StringVar(&flags.audioBitrate, "abitrate", "", "Audio bitrate (-b:a), e.g. 128k")
	cmd.Flags().StringVar(&flags.minBitrate, "minrate", "", "Minimum video bitrate (-minrate)")
	cmd.Flags().StringVar(&flags.maxBitrate, "maxrate", "", "Maximum video bitrate (-maxrate)")
	cmd.Flags().StringVar(&flags.pixelFormat, "pix-fmt", "", "Pixel format (-pix_fmt)")
	cmd.Flags().StringVar(&flags.preset, "preset", "", "Encoder preset (-preset)")
	cmd.Flags().IntVar(&flags.speed, "speed", 0, "Encoder speed (-speed)")
	cmd.Flags().IntVar(&flags.threads, "threads", 0, "Thread count (-threads)")
	cmd.Flags().IntVar(&flags.keyint, "keyint", 0, "Keyframe spacing (-g)")
	cmd.Flags().StringVar(&flags.quality, "quality", "", "Encoder quality mode (-quality)")
	cmd.Flags().IntVar(&flags.qscale, "qscale", 0, "Quality scale (-qscale:v)")
	cmd.Flags().IntVar(&flags.crf, "crf", 0, "Constant rate factor (-crf)")
	cmd.Flags().BoolVar(&flags.streamable, "streamable", false, "Relocate the moov atom for streaming (-movflags +faststart)")
	cmd.Flags().StringVar(&flags.tune, "tune", "", "Encoder tuning (-tune)")
	cmd.Flags().IntVar(&flags.frames, "frames", 0, "Frame limit (-frames:v)")
	cmd.Flags().BoolVar(&flags.noAudio, "no-audio", false, "Drop the audio stream (-an)")
	cmd.Flags().StringVar(&flags.seekStart, "ss", "", "Seek start timecode (-ss)")
	cmd.Flags().StringVar(&flags.seekEnd, "to", "", "Seek end timecode (-to)")
	cmd.Flags().IntVar(&flags.pass, "pass", 0, "Encoding pass number (-pass)")
	cmd.Flags().StringVar(&flags.passLogFile, "passlogfile", "", "Two-pass log file prefix (-passlogfile)")
	cmd.Flags().BoolVar(&flags.overwrite, "overwrite", true, "Overwrite the output file (-y)")

	cmd.Flags().StringVar(&flags.crop, "crop", "", "Crop filter as w:h:x:y, trailing fields optional")
	cmd.Flags().StringVar(&flags.scale, "scale", "", "Scale filter as w:h, -1 keeps aspect")
	cmd.Flags().StringArrayVar(&flags.filters, "vf", nil, "Raw video filter expression, repeatable")

	return cmd
}

// paramSetFromFlags builds a parameter set from the flags the user
// actually passed.
func paramSetFromFlags(fs *pflag.FlagSet, flags *buildFlags) (params.Set, error) {
	set := params.NewSet()

	var flagErr error
	fs.Visit(func(f *pflag.Flag) {
		if flagErr != nil {
			return
		}
		if name, ok := stringParams[f.Name]; ok {
			set = set.With(name, params.String(f.Value.String()))
			return
		}
		if name, ok := intParams[f.Name]; ok {
			n, err := strconv.Atoi(f.Value.String())
			if err != nil {
				flagErr = fmt.Errorf("flag --%s: %w", f.Name, err)
				return
			}
			set = set.With(name, params.Int(n))
			return
		}
		if name, ok := boolParams[f.Name]; ok {
			on, err := strconv.ParseBool(f.Value.String())
			if err != nil {
				flagErr = fmt.Errorf("flag --%s: %w", f.Name, err)
				return
			}
			set = set.With(name, params.Bool(on))
		}
	})
	if flagErr != nil {
		return params.Set{}, flagErr
	}

	chain := filter.NewChain()
	if flags.crop != "" {
		crop, err := parseCrop(flags.crop)
		if err != nil {
			return params.Set{}, err
		}
		chain.AddFilter(crop)
	}
	if flags.scale != "" {
		scale, err := parseScale(flags.scale)
		if err != nil {
			return params.Set{}, err
		}
		chain.AddFilter(scale)
	}
	for _, expr := range flags.filters {
		chain.AddFilter(filter.NewCustom(expr))
	}
	if len(chain.Filters()) > 0 {
		set = set.With(params.VideoFilter, params.Renderer(chain))
	}

	return set, nil
}

// parseCrop parses "w:h:x:y" with trailing fields optional.
func parseCrop(spec string) (*filter.Crop, error) {
	fields := strings.Split(spec, ":")
	if len(fields) > 4 {
		return nil, fmt.Errorf("crop spec %q has more than 4 fields", spec)
	}
	setters := []func(int) filter.CropOption{
		filter.CropWidth, filter.CropHeight, filter.CropX, filter.CropY,
	}
	var opts []filter.CropOption
	for i, field := range fields {
		if field == "" {
			continue
		}
		n, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("crop spec %q: %w", spec, err)
		}
		opts = append(opts, setters[i](n))
	}
	return filter.NewCrop(opts...), nil
}

// parseScale parses "w:h".
func parseScale(spec string) (*filter.Scale, error) {
	fields := strings.Split(spec, ":")
	if len(fields) != 2 {
		return nil, fmt.Errorf("scale spec %q must be w:h", spec)
	}
	w, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("scale spec %q: %w", spec, err)
	}
	h, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("scale spec %q: %w", spec, err)
	}
	return filter.NewScale(w, h), nil
}
