// ============================================================================
// strx - Small-String Container Toolkit
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all strx components
const (
	// Library is the version of the foundation packages.
	Library = "0.2.0"

	// CLI is the version of the strx command.
	CLI = "0.2.0"

	// Config is the version of the configuration file layout.
	Config = "1.0.0"
)

// Build metadata, set with -ldflags "-X github.com/msto63/strx/pkg/core/version.GitCommit=..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "strx":
		return CLI
	case "config":
		return Config
	default:
		return Library
	}
}

// Info describes the running binary.
type Info struct {
	Library   string
	CLI       string
	Config    string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Get returns the build information.
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		Config:    Config,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String formats the information as one line.
func (i Info) String() string {
	return fmt.Sprintf("strx v%s (library v%s, commit %s, built %s, %s %s)",
		i.CLI, i.Library, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
