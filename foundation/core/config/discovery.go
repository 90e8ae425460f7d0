// File: discovery.go
// Title: Configuration File Discovery Implementation
// Description: Finds strx.toml, strx.yaml or strx.yml in the usual places.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of file discovery
// - 2025-03-02 v0.2.0: Defaults when nothing is found, XDG config directory

package config

import (
	"os"
	"path/filepath"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // Directories to search for config files
	Filenames  []string // Base filenames to look for (without extension)
	Extensions []string // File extensions to try (.toml, .yaml, .yml)
}

// DefaultDiscoveryOptions searches the working directory, the user config
// directory and /etc for strx.{toml,yaml,yml}.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "strx"))
	}
	paths = append(paths, "/etc/strx")

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"strx"},
		Extensions: []string{".toml", ".yaml", ".yml"},
	}
}

// Candidates returns every path Discover tries, in order.
func (o DiscoveryOptions) Candidates() []string {
	paths := make([]string, 0, len(o.Paths)*len(o.Filenames)*len(o.Extensions))
	for _, dir := range o.Paths {
		for _, name := range o.Filenames {
			for _, ext := range o.Extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}

// Discover loads the first existing candidate. Without one it returns the
// defaults with environment overrides applied.
func Discover(options DiscoveryOptions) (*Config, error) {
	for _, candidate := range options.Candidates() {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return Load(candidate)
		}
	}

	cfg := Default()
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
