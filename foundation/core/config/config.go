// File: config.go
// Title: Core Configuration Management Implementation
// Description: Typed strx configuration loaded from TOML or YAML files, with
//              defaults for every key and STRX_ environment overrides.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-03-02 v0.2.0: Typed sections replace the generic key/value map

package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

// Format represents the configuration file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// ParseFormat parses "toml", "yaml", "yml" or "auto".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "auto", "":
		return FormatAuto, nil
	default:
		return FormatAuto, configError("config.ParseFormat", "unsupported format %q", s)
	}
}

// Config is the complete strx configuration.
type Config struct {
	Diagnostics DiagnosticsConfig `toml:"diagnostics" yaml:"diagnostics"`
	Strings     StringsConfig     `toml:"strings" yaml:"strings"`

	// source file, empty for defaults or strings
	path string
}

// DiagnosticsConfig configures the diagnostics channel and its logger.
type DiagnosticsConfig struct {
	// Enabled switches failure recording and the log callback.
	Enabled bool `toml:"enabled" yaml:"enabled"`

	// Level is the minimum log level: trace, debug, info, warn, error or off.
	Level string `toml:"level" yaml:"level"`

	// Format is json, text, console or logfmt.
	Format string `toml:"format" yaml:"format"`

	// Output is stderr, stdout or a file path.
	Output string `toml:"output" yaml:"output"`
}

// StringsConfig configures constructed strings.
type StringsConfig struct {
	// StickyPolicy is "reserve" or "construct".
	StickyPolicy string `toml:"sticky_policy" yaml:"sticky_policy"`

	// MaxCapacity limits heap buffers in bytes; 0 means unlimited.
	MaxCapacity uint32 `toml:"max_capacity" yaml:"max_capacity"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Diagnostics: DiagnosticsConfig{
			Enabled: true,
			Level:   "warn",
			Format:  "text",
			Output:  "stderr",
		},
		Strings: StringsConfig{
			StickyPolicy: "reserve",
		},
	}
}

// Path returns the file the configuration was loaded from.
func (c *Config) Path() string {
	return c.path
}

// Load reads a configuration file, applies STRX_ environment overrides and
// validates the result. The format is detected from the file extension.
func Load(filePath string) (*Config, error) {
	return LoadWithFormat(filePath, FormatAuto)
}

// LoadWithFormat is Load with an explicit format.
func LoadWithFormat(filePath string, format Format) (*Config, error) {
	const op = "config.Load"

	if strings.TrimSpace(filePath) == "" {
		return nil, configError(op, "config file path cannot be empty")
	}

	content, err := os.ReadFile(filePath)
	if err != nil {
		return nil, strxerror.Wrap(err, "failed to read config file").
			WithCode(strxerror.CodeConfigError).
			WithOperation(op).
			WithDetail("filePath", filePath)
	}

	if format == FormatAuto {
		format = detectFormat(filePath)
	}

	cfg, err := parse(content, format)
	if err != nil {
		return nil, strxerror.Wrap(err, "failed to parse config file").
			WithOperation(op).
			WithDetail("filePath", filePath).
			WithDetail("format", format.String())
	}
	cfg.path = filePath

	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromString parses content without environment overrides.
func LoadFromString(content string, format Format) (*Config, error) {
	if format == FormatAuto {
		format = FormatTOML
	}
	cfg, err := parse([]byte(content), format)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// detectFormat determines the configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// parse decodes content over the defaults. Unknown keys are rejected.
func parse(content []byte, format Format) (*Config, error) {
	const op = "config.parse"
	cfg := Default()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return nil, strxerror.Wrap(err, "TOML parse error").
				WithCode(strxerror.CodeConfigError).
				WithOperation(op)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, configError(op, "unknown keys: %s", strings.Join(keys, ", ")).
				WithDetail("keys", keys)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// an empty document keeps the defaults
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, strxerror.Wrap(err, "YAML parse error").
				WithCode(strxerror.CodeConfigError).
				WithOperation(op)
		}
	default:
		return nil, configError(op, "unsupported format: %s", format).
			WithDetail("format", format.String())
	}

	return cfg, nil
}

// Marshal encodes the configuration in the given format.
func (c *Config) Marshal(format Format) ([]byte, error) {
	const op = "config.Marshal"
	var buf bytes.Buffer

	switch format {
	case FormatTOML, FormatAuto:
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return nil, strxerror.Wrap(err, "TOML encode error").
				WithCode(strxerror.CodeConfigError).
				WithOperation(op)
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(c); err != nil {
			return nil, strxerror.Wrap(err, "YAML encode error").
				WithCode(strxerror.CodeConfigError).
				WithOperation(op)
		}
		if err := enc.Close(); err != nil {
			return nil, strxerror.Wrap(err, "YAML encode error").
				WithCode(strxerror.CodeConfigError).
				WithOperation(op)
		}
	default:
		return nil, configError(op, "unsupported format: %s", format)
	}
	return buf.Bytes(), nil
}

func configError(op, format string, args ...interface{}) *strxerror.Error {
	return strxerror.New(fmt.Sprintf(format, args...)).
		WithCode(strxerror.CodeConfigError).
		WithOperation(op).
		AtCaller(1)
}
