// File: doc.go
// Title: Package Documentation for config
// Description: Configuration of the strx diagnostics and string defaults.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

/*
Package config loads the strx configuration from TOML or YAML.

	[diagnostics]
	enabled = true
	level   = "warn"     # trace, debug, info, warn, error, off
	format  = "text"     # json, text, console, logfmt
	output  = "stderr"   # stderr, stdout or a file path

	[strings]
	sticky_policy = "reserve"  # reserve or construct
	max_capacity  = 0          # heap limit in bytes, 0 = unlimited

Every key can be overridden by an environment variable named
STRX_<SECTION>_<KEY>, for example STRX_DIAGNOSTICS_LEVEL=debug.

A loaded Config builds the runtime pieces it describes:

	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
	ch, closer, err := cfg.Channel()
	defer closer.Close()
	s, err := stringx.New("hello", cfg.StringOptions(ch)...)
*/
package config
