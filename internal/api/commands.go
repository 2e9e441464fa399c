package api

import (
	"context"
	"fmt"
	"math"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/user/ffcmd/internal/ffmpeg"
	"github.com/user/ffcmd/internal/filter"
	"github.com/user/ffcmd/internal/params"
	"github.com/user/ffcmd/internal/version"
)

func (s *Server) registerRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health",
		Description: "Check API health status",
		Tags:        []string{"health"},
	}, func(ctx context.Context, input *struct{}) (*HealthResponse, error) {
		return &HealthResponse{
			Body: HealthData{
				Status:  "ok",
				Version: version.String(),
			},
		}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "list-params",
		Method:      http.MethodGet,
		Path:        "/api/params",
		Summary:     "List parameters",
		Description: "List the supported conversion parameters and their CLI patterns",
		Tags:        []string{"params"},
	}, func(ctx context.Context, input *struct{}) (*ParamsResponse, error) {
		names := params.All()
		infos := make([]ParamInfo, 0, len(names))
		for _, name := range names {
			pattern, _ := ffmpeg.Pattern(name)
			infos = append(infos, ParamInfo{Name: string(name), Pattern: pattern})
		}
		return &ParamsResponse{
			Body: ParamsData{Params: infos, Count: len(infos)},
		}, nil
	})

	huma.Register(s.api, huma.Operation{
		OperationID: "build-command",
		Method:      http.MethodPost,
		Path:        "/api/commands",
		Summary:     "Build command",
		Description: "Build an ffmpeg command line from a conversion parameter mapping",
		Tags:        []string{"commands"},
	}, func(ctx context.Context, input *struct {
		Body CommandRequest
	}) (*CommandResponse, error) {
		resp, err := s.buildCommand(input.Body)
		if err != nil {
			s.metrics.buildFailures.Inc()
			return nil, mapDomainError(err)
		}
		s.metrics.commandsBuilt.Inc()
		return resp, nil
	})
}

// buildCommand converts the request into a parameter set and runs it
// through the adapter.
func (s *Server) buildCommand(req CommandRequest) (*CommandResponse, error) {
	set, err := setFromRequest(req)
	if err != nil {
		return nil, err
	}

	validate := true
	if req.Validate != nil {
		validate = *req.Validate
	}

	adapter := s.currentAdapter()
	mapped, err := adapter.MappedConversionParams(set, validate)
	if err != nil {
		return nil, err
	}

	args := ffmpeg.Args(mapped)
	var output any
	switch {
	case req.NullOutput:
		output = ffmpeg.NullDevice()
	case req.OutputFile != "":
		output = req.OutputFile
	}

	command, err := adapter.CLICommand(args, req.InputFile, output, nil)
	if err != nil {
		return nil, err
	}

	return &CommandResponse{
		Body: CommandData{Command: command, Args: args},
	}, nil
}

// setFromRequest turns the loose JSON parameter mapping into a typed set.
func setFromRequest(req CommandRequest) (params.Set, error) {
	init := make(map[params.Name]params.Value, len(req.Params))
	for name, raw := range req.Params {
		value, err := valueFromJSON(name, raw)
		if err != nil {
			return params.Set{}, err
		}
		init[params.Name(name)] = value
	}

	set, err := params.FromMap(init)
	if err != nil {
		return params.Set{}, err
	}

	if len(req.VideoFilters) > 0 {
		chain := filter.NewChain()
		for _, expr := range req.VideoFilters {
			chain.AddFilter(filter.NewCustom(expr))
		}
		set = set.With(params.VideoFilter, params.Renderer(chain))
	}
	return set, nil
}

// valueFromJSON maps a decoded JSON value onto the closed parameter
// value union. JSON numbers must be integral.
func valueFromJSON(name string, raw any) (params.Value, error) {
	switch v := raw.(type) {
	case bool:
		return params.Bool(v), nil
	case string:
		return params.String(v), nil
	case float64:
		if v != math.Trunc(v) {
			return params.Value{}, params.NewError(params.ErrCodeUnsupportedParamValue,
				fmt.Sprintf("parameter %q must be an integer, got %v", name, v), nil)
		}
		return params.Int(int(v)), nil
	default:
		return params.Value{}, params.NewError(params.ErrCodeUnsupportedParamValue,
			fmt.Sprintf("parameter %q has unsupported type %T", name, raw), nil)
	}
}

// mapDomainError maps the conversion error taxonomy onto HTTP statuses.
func mapDomainError(err error) error {
	switch {
	case params.IsCode(err, params.ErrCodeInvalidArgument):
		return huma.Error400BadRequest(err.Error())
	case params.IsCode(err, params.ErrCodeUnsupportedParam),
		params.IsCode(err, params.ErrCodeUnsupportedParamValue),
		params.IsCode(err, params.ErrCodeParamValidation):
		return huma.Error422UnprocessableEntity(err.Error())
	default:
		return err
	}
}
