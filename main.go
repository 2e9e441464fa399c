package main

import (
	"errors"
	"log/slog"
	"net/http"
	"os"

	"github.com/danielgtaylor/huma/v2/humacli"

	"github.com/user/ffcmd/cmd"
	"github.com/user/ffcmd/internal/api"
	"github.com/user/ffcmd/internal/config"
	"github.com/user/ffcmd/internal/logging"
)

// Options for the CLI - flat structure overriding the TOML config.
type Options struct {
	Config string `help:"Path to configuration file" short:"c" default:"ffcmd.toml"`

	// Server settings
	Port string `help:"Port to listen on" short:"p" default:":8080"`

	// Binary settings
	Binary  string `help:"Path to the ffmpeg binary" default:""`
	Threads int    `help:"Default thread count for the binary" default:"0"`

	// Logging settings
	LoggingLevel  string `help:"Global logging level (debug, info, warn, error)" default:""`
	LoggingFormat string `help:"Logging format (text, json)" default:""`

	// Watch settings
	WatchConfig bool `help:"Reload configuration when the file changes" default:"true"`
}

func main() {
	cli := humacli.New(func(hooks humacli.Hooks, opts *Options) {
		cfg, err := config.Load(opts.Config)
		if err != nil {
			slog.Warn("Failed to load config", "error", err)
		}
		if opts.Binary != "" {
			cfg.Binary = opts.Binary
		}
		if opts.Threads != 0 {
			cfg.Threads = opts.Threads
		}
		if opts.LoggingLevel != "" {
			cfg.Logging.Level = opts.LoggingLevel
		}
		if opts.LoggingFormat != "" {
			cfg.Logging.Format = opts.LoggingFormat
		}
		if err := cfg.Validate(); err != nil {
			slog.Error("Invalid configuration", "error", err)
			os.Exit(1)
		}

		logging.Initialize(cfg.Logging)
		logger := logging.GetLogger("main")

		server := api.NewServer(cfg)

		var watcher *config.Watcher
		if opts.WatchConfig {
			watcher = config.NewWatcher(opts.Config, logging.GetLogger("config"))
			watcher.OnReload(func(next config.Config) {
				server.SetConfig(next)
			})
		}

		hooks.OnStart(func() {
			if watcher != nil {
				if watchErr := watcher.Start(); watchErr != nil {
					logger.Warn("Config watcher unavailable", "error", watchErr)
				}
			}

			logger.Info("Starting HTTP server", "port", opts.Port)
			if startErr := server.Start(opts.Port); startErr != nil && !errors.Is(startErr, http.ErrServerClosed) {
				logger.Error("Failed to start HTTP server", "error", startErr)
				os.Exit(1)
			}
		})

		hooks.OnStop(func() {
			logger.Info("Shutting down server")
			if watcher != nil {
				if stopErr := watcher.Stop(); stopErr != nil {
					logger.Error("Error stopping config watcher", "error", stopErr)
				}
			}
			if stopErr := server.Stop(); stopErr != nil {
				logger.Error("Error stopping HTTP server", "error", stopErr)
			}
		})
	})

	// Add build command
	cli.Root().AddCommand(cmd.CreateBuildCmd())

	// Add params command
	cli.Root().AddCommand(cmd.CreateParamsCmd())

	// Run the CLI
	cli.Run()
}
