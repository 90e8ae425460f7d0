// File: apply.go
// Title: Configuration Application
// Description: Builds the logger, diagnostics channel and string options
//              described by a Config.
// Author: msto63
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02

package config

import (
	"io"
	"os"
	"strings"

	"github.com/msto63/strx/foundation/core/diag"
	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/core/log"
	"github.com/msto63/strx/foundation/utils/stringx"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// Output opens the configured diagnostics output. The closer must be called
// when the output is no longer needed; it is a no-op for stderr and stdout.
func (c *Config) Output() (io.Writer, io.Closer, error) {
	switch strings.ToLower(strings.TrimSpace(c.Diagnostics.Output)) {
	case "", "stderr":
		return os.Stderr, nopCloser{}, nil
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	}

	f, err := os.OpenFile(c.Diagnostics.Output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, strxerror.Wrap(err, "failed to open diagnostics output").
			WithCode(strxerror.CodeConfigError).
			WithOperation("config.Output").
			WithDetail("output", c.Diagnostics.Output)
	}
	return f, f, nil
}

// Logger builds a logger named name writing to w with the configured level
// and format.
func (c *Config) Logger(name string, w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(c.Diagnostics.Level)
	if err != nil {
		return nil, configError("config.Logger", "diagnostics.level: %v", err)
	}
	format, err := log.ParseFormat(c.Diagnostics.Format)
	if err != nil {
		return nil, configError("config.Logger", "diagnostics.format: %v", err)
	}
	return log.NewWithConfig(log.Config{
		Level:  level,
		Format: format,
		Output: w,
		Name:   name,
	}), nil
}

// Channel builds a diagnostics channel logging through the configured output.
// The closer releases the output.
func (c *Config) Channel() (*diag.Channel, io.Closer, error) {
	w, closer, err := c.Output()
	if err != nil {
		return nil, nil, err
	}
	logger, err := c.Logger("strx", w)
	if err != nil {
		_ = closer.Close()
		return nil, nil, err
	}

	opts := []diag.Option{diag.WithLogger(logger)}
	if !c.Diagnostics.Enabled {
		opts = append(opts, diag.Disabled())
	}
	return diag.New(opts...), closer, nil
}

// StringOptions returns the stringx options for the configured sticky policy
// and capacity limit, reporting to ch.
func (c *Config) StringOptions(ch *diag.Channel) []stringx.Option {
	opts := []stringx.Option{stringx.WithChannel(ch)}
	if policy, err := stringx.ParseStickyPolicy(c.Strings.StickyPolicy); err == nil {
		opts = append(opts, stringx.WithStickyPolicy(policy))
	}
	if c.Strings.MaxCapacity > 0 {
		opts = append(opts, stringx.WithAllocator(stringx.LimitAllocator{Max: c.Strings.MaxCapacity}))
	}
	return opts
}
