// File: env.go
// Title: Environment Variable Overrides
// Description: STRX_<SECTION>_<KEY> variables override file values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-03-02

package config

import (
	"sort"
	"strconv"

	strxerror "github.com/msto63/strx/foundation/core/error"
)

// EnvPrefix is prepended to every override variable name.
const EnvPrefix = "STRX_"

// LookupFunc has the signature of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// envBinding applies one variable to a Config.
type envBinding func(c *Config, value string) error

var envBindings = map[string]envBinding{
	"DIAGNOSTICS_ENABLED": func(c *Config, v string) error {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return err
		}
		c.Diagnostics.Enabled = b
		return nil
	},
	"DIAGNOSTICS_LEVEL":  func(c *Config, v string) error { c.Diagnostics.Level = v; return nil },
	"DIAGNOSTICS_FORMAT": func(c *Config, v string) error { c.Diagnostics.Format = v; return nil },
	"DIAGNOSTICS_OUTPUT": func(c *Config, v string) error { c.Diagnostics.Output = v; return nil },
	"STRINGS_STICKY_POLICY": func(c *Config, v string) error {
		c.Strings.StickyPolicy = v
		return nil
	},
	"STRINGS_MAX_CAPACITY": func(c *Config, v string) error {
		n, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return err
		}
		c.Strings.MaxCapacity = uint32(n)
		return nil
	},
}

// EnvKeys returns the names of all recognised override variables.
func EnvKeys() []string {
	keys := make([]string, 0, len(envBindings))
	for k := range envBindings {
		keys = append(keys, EnvPrefix+k)
	}
	sort.Strings(keys)
	return keys
}

// ApplyEnv applies every set STRX_ variable found through lookup. A value
// that cannot be parsed is a configuration error naming the variable.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	if lookup == nil {
		return nil
	}
	for _, name := range EnvKeys() {
		value, ok := lookup(name)
		if !ok {
			continue
		}
		if err := envBindings[name[len(EnvPrefix):]](c, value); err != nil {
			return strxerror.Wrap(err, "invalid environment override").
				WithCode(strxerror.CodeConfigError).
				WithOperation("config.ApplyEnv").
				WithDetail("variable", name).
				WithDetail("value", value)
		}
	}
	return nil
}
