package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ffcmd.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Binary != "/usr/bin/ffmpeg" {
		t.Errorf("Binary = %q, want default", cfg.Binary)
	}
	if cfg.Threads != 0 {
		t.Errorf("Threads = %d, want 0", cfg.Threads)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
binary = "/opt/ffmpeg/bin/ffmpeg"
threads = 8

[logging]
level = "debug"
format = "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Binary != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("Binary = %q", cfg.Binary)
	}
	if cfg.Threads != 8 {
		t.Errorf("Threads = %d, want 8", cfg.Threads)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := writeConfig(t, "binary = [not toml")
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted malformed TOML")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeConfig(t, `binary = "/from/file"`)
	t.Setenv("FFCMD_BINARY", "/from/env")
	t.Setenv("FFCMD_THREADS", "2")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}
	if cfg.Binary != "/from/env" {
		t.Errorf("Binary = %q, want env override", cfg.Binary)
	}
	if cfg.Threads != 2 {
		t.Errorf("Threads = %d, want 2", cfg.Threads)
	}
}

func TestApplyFlagsOverridesAll(t *testing.T) {
	t.Setenv("FFCMD_BINARY", "/from/env")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() unexpected error: %v", err)
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("binary", "", "")
	flags.Int("threads", 0, "")
	if err := flags.Parse([]string{"--binary", "/from/flag", "--threads", "6"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg.ApplyFlags(flags)
	if cfg.Binary != "/from/flag" {
		t.Errorf("Binary = %q, want flag override", cfg.Binary)
	}
	if cfg.Threads != 6 {
		t.Errorf("Threads = %d, want 6", cfg.Threads)
	}
}

func TestApplyFlagsSkipsUnsetFlags(t *testing.T) {
	cfg := Default()

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("binary", "", "")
	if err := flags.Parse(nil); err != nil {
		t.Fatalf("parse flags: %v", err)
	}

	cfg.ApplyFlags(flags)
	if cfg.Binary != Default().Binary {
		t.Errorf("Binary = %q, flag default leaked into config", cfg.Binary)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults pass", mutate: func(*Config) {}},
		{name: "empty binary fails", mutate: func(c *Config) { c.Binary = "" }, wantErr: true},
		{name: "negative threads fail", mutate: func(c *Config) { c.Threads = -1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Validate() expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}
