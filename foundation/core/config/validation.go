// File: validation.go
// Title: Configuration Validation
// Description: Checks every configured value against the names the log and
//              stringx packages accept. All problems are reported at once.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02
//
// Change History:
// - 2025-01-25 v0.1.0: Rule based validation of generic keys
// - 2025-03-02 v0.2.0: Validation of the typed sections

package config

import (
	"fmt"
	"strings"

	strxerror "github.com/msto63/strx/foundation/core/error"
	"github.com/msto63/strx/foundation/core/log"
	"github.com/msto63/strx/foundation/utils/stringx"
)

// minMaxCapacity is the smallest useful heap limit: one byte more than the
// inline buffer.
const minMaxCapacity = stringx.InlineCapacity + 2

// ValidationError collects the problems found by Validate.
type ValidationError struct {
	Problems []string
}

// Error implements error
func (e *ValidationError) Error() string {
	return "invalid configuration: " + strings.Join(e.Problems, "; ")
}

// Validate checks all values. The returned error wraps a *ValidationError.
func (c *Config) Validate() error {
	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if _, err := log.ParseLevel(c.Diagnostics.Level); err != nil {
		add("diagnostics.level: unknown level %q", c.Diagnostics.Level)
	}
	if _, err := log.ParseFormat(c.Diagnostics.Format); err != nil {
		add("diagnostics.format: unknown format %q", c.Diagnostics.Format)
	}
	if strings.TrimSpace(c.Diagnostics.Output) == "" {
		add("diagnostics.output: must not be empty")
	}
	if _, err := stringx.ParseStickyPolicy(c.Strings.StickyPolicy); err != nil {
		add("strings.sticky_policy: %v", err)
	}
	if m := c.Strings.MaxCapacity; m != 0 && m < minMaxCapacity {
		add("strings.max_capacity: %d is below the minimum of %d", m, minMaxCapacity)
	}

	if len(problems) == 0 {
		return nil
	}
	verr := &ValidationError{Problems: problems}
	return strxerror.Wrap(verr, "configuration validation failed").
		WithCode(strxerror.CodeConfigError).
		WithOperation("config.Validate").
		WithDetail("problems", len(problems))
}
