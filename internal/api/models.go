package api

// HealthData reports service status.
type HealthData struct {
	Status  string `json:"status" example:"ok" doc:"Service status"`
	Version string `json:"version" example:"dev" doc:"Application version"`
}

// HealthResponse wraps the health check body.
type HealthResponse struct {
	Body HealthData
}

// CommandRequest is the payload for building a command line.
type CommandRequest struct {
	InputFile    string         `json:"input_file,omitempty" example:"in.mp4" doc:"Input file path, quoted into the command"`
	OutputFile   string         `json:"output_file,omitempty" example:"out.mp4" doc:"Output file path, quoted into the command"`
	NullOutput   bool           `json:"null_output,omitempty" doc:"Discard output to the platform null device (two-pass first pass)"`
	Validate     *bool          `json:"validate,omitempty" doc:"Run cross-parameter validation (default true)"`
	Params       map[string]any `json:"params" doc:"Conversion parameters keyed by vocabulary name; values are booleans, integers or strings"`
	VideoFilters []string       `json:"video_filters,omitempty" example:"[\"scale=1280:720\"]" doc:"Raw video filter expressions chained in order"`
}

// CommandData is the built command.
type CommandData struct {
	Command string   `json:"command" example:"/usr/bin/ffmpeg -i 'in.mp4' -c:v libx264 -y 'out.mp4'" doc:"Assembled shell-ready command line"`
	Args    []string `json:"args" doc:"Rendered argument fragments in canonical order"`
}

// CommandResponse wraps the command body.
type CommandResponse struct {
	Body CommandData
}

// ParamInfo describes one supported parameter.
type ParamInfo struct {
	Name    string `json:"name" example:"video_codec" doc:"Parameter name"`
	Pattern string `json:"pattern" example:"-c:v %s" doc:"CLI rendering pattern; placeholder-free patterns are boolean flags"`
}

// ParamsData lists the supported vocabulary.
type ParamsData struct {
	Params []ParamInfo `json:"params" doc:"Supported parameters in canonical rendering order"`
	Count  int         `json:"count" example:"29" doc:"Number of supported parameters"`
}

// ParamsResponse wraps the vocabulary body.
type ParamsResponse struct {
	Body ParamsData
}
