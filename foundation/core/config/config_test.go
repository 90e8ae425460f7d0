// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML loading, environment overrides, validation
//              and the runtime pieces built from a Config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/core/log"
	"github.com/msto63/strx/foundation/utils/stringx"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "strx.toml", `
[diagnostics]
level = "debug"
format = "json"

[strings]
sticky_policy = "construct"
max_capacity = 4096
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Diagnostics.Level != "debug" || cfg.Diagnostics.Format != "json" {
			t.Errorf("diagnostics = %+v", cfg.Diagnostics)
		}
		if !cfg.Diagnostics.Enabled || cfg.Diagnostics.Output != "stderr" {
			t.Errorf("defaults not kept: %+v", cfg.Diagnostics)
		}
		if cfg.Strings.StickyPolicy != "construct" || cfg.Strings.MaxCapacity != 4096 {
			t.Errorf("strings = %+v", cfg.Strings)
		}
		if cfg.Path() != path {
			t.Errorf("Path() = %q", cfg.Path())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		path := writeFile(t, tempDir, "strx.yaml", `
diagnostics:
  enabled: false
  output: stdout
strings:
  max_capacity: 64
`)
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if cfg.Diagnostics.Enabled || cfg.Diagnostics.Output != "stdout" {
			t.Errorf("diagnostics = %+v", cfg.Diagnostics)
		}
		if cfg.Diagnostics.Level != "warn" {
			t.Errorf("default level lost: %q", cfg.Diagnostics.Level)
		}
		if cfg.Strings.MaxCapacity != 64 {
			t.Errorf("max_capacity = %d", cfg.Strings.MaxCapacity)
		}
	})

	t.Run("empty YAML keeps defaults", func(t *testing.T) {
		path := writeFile(t, tempDir, "empty.yml", "")
		cfg, err := Load(path)
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}
		if *cfg != *withPath(Default(), path) {
			t.Errorf("config = %+v", cfg)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "missing.toml"))
		if !strxerror.HasCode(err, strxerror.CodeConfigError) {
			t.Errorf("error = %v, want CONFIG_ERROR", err)
		}
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error should wrap os.ErrNotExist: %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		if _, err := Load("  "); !strxerror.HasCode(err, strxerror.CodeConfigError) {
			t.Errorf("error = %v", err)
		}
	})
}

func withPath(c *Config, path string) *Config {
	c.path = path
	return c
}

func TestUnknownKeys(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
	}{
		{"toml key", "[strings]\ncapacity = 3\n", FormatTOML},
		{"toml section", "[network]\nport = 1\n", FormatTOML},
		{"yaml key", "strings:\n  capacity: 3\n", FormatYAML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromString(tt.content, tt.format)
			if !strxerror.HasCode(err, strxerror.CodeConfigError) {
				t.Errorf("error = %v, want CONFIG_ERROR", err)
			}
		})
	}
}

func TestSyntaxErrors(t *testing.T) {
	if _, err := LoadFromString("[diagnostics\nlevel=", FormatTOML); !strxerror.HasCode(err, strxerror.CodeConfigError) {
		t.Errorf("TOML error = %v", err)
	}
	if _, err := LoadFromString("diagnostics: [", FormatYAML); !strxerror.HasCode(err, strxerror.CodeConfigError) {
		t.Errorf("YAML error = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(c *Config)
		problems int
	}{
		{"defaults", func(c *Config) {}, 0},
		{"bad level", func(c *Config) { c.Diagnostics.Level = "loud" }, 1},
		{"bad format", func(c *Config) { c.Diagnostics.Format = "xml" }, 1},
		{"empty output", func(c *Config) { c.Diagnostics.Output = " " }, 1},
		{"bad policy", func(c *Config) { c.Strings.StickyPolicy = "always" }, 1},
		{"tiny limit", func(c *Config) { c.Strings.MaxCapacity = 8 }, 1},
		{"smallest limit", func(c *Config) { c.Strings.MaxCapacity = 17 }, 0},
		{"everything", func(c *Config) {
			c.Diagnostics.Level = "x"
			c.Diagnostics.Format = "y"
			c.Strings.StickyPolicy = "z"
		}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.problems == 0 {
				if err != nil {
					t.Errorf("Validate() = %v", err)
				}
				return
			}
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("Validate() = %v, want *ValidationError", err)
			}
			if len(verr.Problems) != tt.problems {
				t.Errorf("problems = %v, want %d", verr.Problems, tt.problems)
			}
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"STRX_DIAGNOSTICS_ENABLED":    "false",
		"STRX_DIAGNOSTICS_LEVEL":      "trace",
		"STRX_STRINGS_STICKY_POLICY":  "construct",
		"STRX_STRINGS_MAX_CAPACITY":   "1024",
		"STRX_UNRELATED_SETTING_NAME": "ignored",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	if err := cfg.ApplyEnv(lookup); err != nil {
		t.Fatalf("ApplyEnv() = %v", err)
	}
	if cfg.Diagnostics.Enabled || cfg.Diagnostics.Level != "trace" {
		t.Errorf("diagnostics = %+v", cfg.Diagnostics)
	}
	if cfg.Strings.StickyPolicy != "construct" || cfg.Strings.MaxCapacity != 1024 {
		t.Errorf("strings = %+v", cfg.Strings)
	}
	if cfg.Diagnostics.Format != "text" {
		t.Errorf("unset variable changed format to %q", cfg.Diagnostics.Format)
	}

	env["STRX_STRINGS_MAX_CAPACITY"] = "lots"
	err := Default().ApplyEnv(lookup)
	if !strxerror.HasCode(err, strxerror.CodeConfigError) {
		t.Fatalf("ApplyEnv() = %v, want CONFIG_ERROR", err)
	}
	var serr *strxerror.Error
	if errors.As(err, &serr) && serr.Details()["variable"] != "STRX_STRINGS_MAX_CAPACITY" {
		t.Errorf("details = %v", serr.Details())
	}
}

func TestLoadAppliesEnvironment(t *testing.T) {
	path := writeFile(t, t.TempDir(), "strx.toml", "[diagnostics]\nlevel = \"info\"\n")
	t.Setenv("STRX_DIAGNOSTICS_LEVEL", "error")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Diagnostics.Level != "error" {
		t.Errorf("level = %q, want environment value", cfg.Diagnostics.Level)
	}
}

func TestEnvKeys(t *testing.T) {
	keys := EnvKeys()
	if len(keys) != 6 {
		t.Errorf("EnvKeys() = %v", keys)
	}
	for _, k := range keys {
		if !strings.HasPrefix(k, EnvPrefix) {
			t.Errorf("key %q lacks prefix", k)
		}
	}
}

func TestMarshal(t *testing.T) {
	cfg := Default()
	cfg.Strings.MaxCapacity = 256

	for _, format := range []Format{FormatTOML, FormatYAML} {
		t.Run(format.String(), func(t *testing.T) {
			data, err := cfg.Marshal(format)
			if err != nil {
				t.Fatal(err)
			}
			back, err := LoadFromString(string(data), format)
			if err != nil {
				t.Fatalf("reload: %v\n%s", err, data)
			}
			if *back != *cfg {
				t.Errorf("reloaded %+v, want %+v", back, cfg)
			}
		})
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:      []string{filepath.Join(dir, "missing"), dir},
		Filenames:  []string{"strx"},
		Extensions: []string{".toml", ".yaml"},
	}

	cfg, err := Discover(opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path() != "" || cfg.Diagnostics.Level != "warn" {
		t.Errorf("expected defaults, got %+v (path %q)", cfg, cfg.Path())
	}

	path := writeFile(t, dir, "strx.yaml", "diagnostics:\n  level: debug\n")
	cfg, err = Discover(opts)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Path() != path || cfg.Diagnostics.Level != "debug" {
		t.Errorf("Discover() loaded %q with level %q", cfg.Path(), cfg.Diagnostics.Level)
	}

	if n := len(opts.Candidates()); n != 4 {
		t.Errorf("Candidates() = %d paths, want 4", n)
	}
}

func TestChannelAndStringOptions(t *testing.T) {
	out := filepath.Join(t.TempDir(), "diag.log")
	cfg := Default()
	cfg.Diagnostics.Output = out
	cfg.Diagnostics.Format = "logfmt"
	cfg.Strings.MaxCapacity = 32

	ch, closer, err := cfg.Channel()
	if err != nil {
		t.Fatal(err)
	}

	s, err := stringx.New("short", cfg.StringOptions(ch)...)
	if err != nil {
		t.Fatal(err)
	}
	err = s.AppendString(strings.Repeat("x", 40))
	if !strxerror.HasCode(err, strxerror.CodeAllocationFailure) {
		t.Fatalf("AppendString past the limit = %v", err)
	}
	if ch.Last().Code != strxerror.CodeAllocationFailure {
		t.Errorf("channel code = %v", ch.Last().Code)
	}
	if err := closer.Close(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "level=error") || !strings.Contains(string(data), "code=\"ALLOCATION_FAILURE\"") {
		t.Errorf("log output = %q", data)
	}
}

func TestChannelDisabled(t *testing.T) {
	cfg := Default()
	cfg.Diagnostics.Enabled = false
	ch, closer, err := cfg.Channel()
	if err != nil {
		t.Fatal(err)
	}
	defer closer.Close()
	if ch.Enabled() {
		t.Error("channel should be disabled")
	}
}

func TestStickyPolicyOption(t *testing.T) {
	cfg := Default()
	cfg.Strings.StickyPolicy = "construct"
	s, err := stringx.New("x", cfg.StringOptions(nil)...)
	if err != nil {
		t.Fatal(err)
	}
	if !s.IsSticky() {
		t.Error("construct policy not applied")
	}
}

func TestLogger(t *testing.T) {
	cfg := Default()
	cfg.Diagnostics.Level = "error"
	logger, err := cfg.Logger("test", os.Stderr)
	if err != nil {
		t.Fatal(err)
	}
	if logger.GetLevel() != log.LevelError {
		t.Errorf("level = %v", logger.GetLevel())
	}
}
