// Package config loads and queries the lsg YAML configuration file.
//
// A Config wraps an optional parsed document. Lookups are typed: a key is
// either absent, present with the expected type, or present with the wrong
// type. Wrong-typed keys never abort the run — they resolve as absent and
// print a warning so the user can fix their file.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location when set.
const EnvConfigPath = "LSG_CONFIG"

// FileName is the config file looked up under the user config directory.
const FileName = "lsg.yaml"

// BoolLookup classifies the outcome of a boolean key lookup.
type BoolLookup int

const (
	// BoolAbsent means the key is missing, or no document is loaded.
	BoolAbsent BoolLookup = iota

	// BoolValue means the key holds a boolean.
	BoolValue

	// BoolWrongType means the key is present but not a boolean.
	BoolWrongType
)

// Config is an optional, read-only configuration document.
// The zero value behaves like an absent document.
type Config struct {
	doc  map[string]yaml.Node
	warn io.Writer
}

// None returns a Config with no document loaded. All lookups report absent.
func None() *Config {
	return &Config{warn: os.Stderr}
}

// FromYAML parses data as a YAML mapping and returns a Config over it.
// An empty document (e.g. "---") yields a Config with no keys.
func FromYAML(data []byte) (*Config, error) {
	var doc map[string]yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &Config{doc: doc, warn: os.Stderr}, nil
}

// Load reads the config file from LSG_CONFIG or the user config directory.
// A missing file is not an error: the returned Config simply has no document.
// An unreadable or unparsable file prints a warning to warn and is treated
// as absent.
func Load(warn io.Writer) *Config {
	path := configPath()
	if path == "" {
		return &Config{warn: warn}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(warn, "Warning: cannot read config file %s: %v\n", path, err)
		}
		return &Config{warn: warn}
	}

	cfg, err := FromYAML(data)
	if err != nil {
		fmt.Fprintf(warn, "Warning: cannot parse config file %s: %v\n", path, err)
		return &Config{warn: warn}
	}
	cfg.warn = warn
	return cfg
}

// configPath returns the config file path, or "" when none applies.
func configPath() string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "lsg", FileName)
}

// SetWarnWriter redirects wrong-type warnings, for tests.
func (c *Config) SetWarnWriter(w io.Writer) {
	c.warn = w
}

// HasDocument reports whether a document is loaded.
func (c *Config) HasDocument() bool {
	return c.doc != nil
}

// Bool looks up key as a boolean.
//
// Absent keys — and absent documents — return BoolAbsent with no warning.
// A key holding a boolean returns its value with BoolValue. A key holding
// any other type — strings like "yes", numbers, null, nested structures —
// returns BoolWrongType and prints a warning naming the key and the
// expected type; every call on the same bad key warns again.
func (c *Config) Bool(key string) (bool, BoolLookup) {
	node, ok := c.doc[key]
	if !ok {
		return false, BoolAbsent
	}

	// Classify by the resolved tag, not by Decode: Decode coerces string
	// booleans ("yes") and null into a bool, which must not silently
	// resolve here.
	if node.Kind != yaml.ScalarNode || node.Tag != "!!bool" {
		c.warnWrongType(key, "boolean")
		return false, BoolWrongType
	}

	var value bool
	if err := node.Decode(&value); err != nil {
		c.warnWrongType(key, "boolean")
		return false, BoolWrongType
	}
	return value, BoolValue
}

func (c *Config) warnWrongType(key, want string) {
	w := c.warn
	if w == nil {
		w = os.Stderr
	}
	fmt.Fprintf(w, "Warning: the config value of %q should be a %s\n", key, want)
}
