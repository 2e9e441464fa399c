package ffmpeg

import (
	"testing"

	"github.com/user/ffcmd/internal/params"
)

func TestDefaultRules(t *testing.T) {
	validator := NewValidator(DefaultRules()...)

	tests := []struct {
		name    string
		set     params.Set
		wantErr bool
	}{
		{
			name: "plain x264 encode passes",
			set: params.NewSet().
				With(params.OutputFormat, params.String("mp4")).
				With(params.VideoCodec, params.String("libx264")).
				With(params.CRF, params.Int(23)),
		},
		{
			name: "crf with video bitrate fails",
			set: params.NewSet().
				With(params.CRF, params.Int(23)).
				With(params.VideoBitrate, params.String("2M")),
			wantErr: true,
		},
		{
			name:    "crf above range fails",
			set:     params.NewSet().With(params.CRF, params.Int(52)),
			wantErr: true,
		},
		{
			name:    "negative crf fails",
			set:     params.NewSet().With(params.CRF, params.Int(-1)),
			wantErr: true,
		},
		{
			name:    "pass out of range fails",
			set:     params.NewSet().With(params.Pass, params.Int(3)),
			wantErr: true,
		},
		{
			name:    "pass 2 without log file fails",
			set:     params.NewSet().With(params.Pass, params.Int(2)),
			wantErr: true,
		},
		{
			name: "pass 2 with log file passes",
			set: params.NewSet().
				With(params.Pass, params.Int(2)).
				With(params.PassLogFile, params.String("ffmpeg2pass")),
		},
		{
			name:    "pass 1 without log file passes",
			set:     params.NewSet().With(params.Pass, params.Int(1)),
		},
		{
			name:    "maxrate without bitrate fails",
			set:     params.NewSet().With(params.MaxBitrate, params.String("4M")),
			wantErr: true,
		},
		{
			name: "minrate and maxrate with bitrate pass",
			set: params.NewSet().
				With(params.VideoBitrate, params.String("2M")).
				With(params.MinBitrate, params.String("1M")).
				With(params.MaxBitrate, params.String("4M")),
		},
		{
			name: "tile columns on x264 fails",
			set: params.NewSet().
				With(params.VideoCodec, params.String("libx264")).
				With(params.TileColumns, params.Int(4)),
			wantErr: true,
		},
		{
			name:    "lag in frames without codec fails",
			set:     params.NewSet().With(params.LagInFrames, params.Int(25)),
			wantErr: true,
		},
		{
			name: "vp9 tuning params pass",
			set: params.NewSet().
				With(params.VideoCodec, params.String("libvpx-vp9")).
				With(params.TileColumns, params.Int(4)).
				With(params.FrameParallel, params.Int(1)).
				With(params.AutoAltRef, params.Int(1)).
				With(params.LagInFrames, params.Int(25)),
		},
		{
			name: "no-audio with audio codec fails",
			set: params.NewSet().
				With(params.NoAudio, params.Bool(true)).
				With(params.AudioCodec, params.String("aac")),
			wantErr: true,
		},
		{
			name: "no-audio false with audio codec passes",
			set: params.NewSet().
				With(params.NoAudio, params.Bool(false)).
				With(params.AudioCodec, params.String("aac")),
		},
		{
			name: "streamable webm fails",
			set: params.NewSet().
				With(params.OutputFormat, params.String("webm")).
				With(params.Streamable, params.Bool(true)),
			wantErr: true,
		},
		{
			name: "streamable mp4 passes",
			set: params.NewSet().
				With(params.OutputFormat, params.String("mp4")).
				With(params.Streamable, params.Bool(true)),
		},
		{
			name:    "streamable without format fails",
			set:     params.NewSet().With(params.Streamable, params.Bool(true)),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.set)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Validate() expected error but got none")
				}
				if !params.IsCode(err, params.ErrCodeParamValidation) {
					t.Errorf("Validate() error = %v, want code %s",
						err, params.ErrCodeParamValidation)
				}
				return
			}
			if err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestValidatorStopsAtFirstViolation(t *testing.T) {
	calls := 0
	recording := func(set params.Set) error {
		calls++
		return validationError("always fails")
	}

	validator := NewValidator(recording, recording)
	if err := validator.Validate(params.NewSet()); err == nil {
		t.Fatal("Validate() expected error but got none")
	}
	if calls != 1 {
		t.Errorf("validator ran %d rules after a violation, want 1", calls)
	}
}
