// Package config holds the externally configured binary settings: the
// path of the ffmpeg executable and its default thread count. Values are
// loaded with the usual precedence: CLI flags > environment > TOML file >
// built-in defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/pflag"

	"github.com/user/ffcmd/internal/logging"
)

const envPrefix = "FFCMD_"

// Config is the application configuration.
type Config struct {
	Binary  string         `toml:"binary"`
	Threads int            `toml:"threads"`
	Logging logging.Config `toml:"logging"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Binary:  "/usr/bin/ffmpeg",
		Threads: 0, // 0 leaves thread selection to ffmpeg
		Logging: logging.Config{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads configuration from path (if it exists) over the defaults,
// then applies environment overrides. A missing file is not an error; a
// malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		default:
			if err := toml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv(envPrefix + "BINARY"); v != "" {
		cfg.Binary = v
	}
	if v := os.Getenv(envPrefix + "THREADS"); v != "" {
		threads, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("parse %sTHREADS: %w", envPrefix, err)
		}
		cfg.Threads = threads
	}
	if v := os.Getenv(envPrefix + "LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}

	return cfg, nil
}

// ApplyFlags overrides config values from flags the user explicitly set
// on the command line, preserving CLI-over-file precedence.
func (c *Config) ApplyFlags(flags *pflag.FlagSet) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "binary":
			c.Binary = f.Value.String()
		case "threads":
			if threads, err := strconv.Atoi(f.Value.String()); err == nil {
				c.Threads = threads
			}
		case "log-level":
			c.Logging.Level = f.Value.String()
		}
	})
}

// Validate checks the configuration for values that can never work.
func (c Config) Validate() error {
	if c.Binary == "" {
		return fmt.Errorf("binary path must not be empty")
	}
	if c.Threads < 0 {
		return fmt.Errorf("threads must not be negative, got %d", c.Threads)
	}
	return nil
}

// BinaryPath returns the configured ffmpeg executable path.
func (c Config) BinaryPath() string { return c.Binary }

// ThreadCount returns the configured default thread count.
func (c Config) ThreadCount() int { return c.Threads }
