// Package flags resolves lsg's behavioral flags from their three sources.
//
// Every flag value may be set in up to three places: a command-line switch,
// a key in the YAML config file, and a compiled-in default. Resolution is
// strict precedence — command line beats config file beats default — and is
// total: Configure always yields exactly one value, never an error.
//
// Each flag is a small value type implementing Configurable against itself.
// Adding a flag means writing the two extraction methods and a default; the
// orchestration below is shared.
package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// Configurable is the contract every flag type implements.
//
// FromArgs and FromConfig return the candidate value and whether the source
// supplied one. Both must be side-effect free except for the wrong-type
// warning emitted by config lookups. Default is total — a flag always has a
// compiled-in value.
type Configurable[T any] interface {
	FromArgs(m *app.Matches) (T, bool)
	FromConfig(c *config.Config) (T, bool)
	Default() T
}

// Configure resolves one flag: command line first, then config file, then
// the default. It is total for any combination of inputs.
func Configure[T Configurable[T]](m *app.Matches, c *config.Config) T {
	var flag T
	if v, ok := flag.FromArgs(m); ok {
		return v
	}
	if v, ok := flag.FromConfig(c); ok {
		return v
	}
	return flag.Default()
}

// boolFromConfig extracts a boolean flag value from the config document.
// Wrong-typed keys count as absent; the Config already warned about them.
func boolFromConfig(c *config.Config, key string) (bool, bool) {
	v, res := c.Bool(key)
	if res != config.BoolValue {
		return false, false
	}
	return v, true
}

// Flags holds the resolved value of every behavioral flag for one run.
type Flags struct {
	NoSymlink   NoSymlink
	TotalSize   TotalSize
	Classic     Classic
	Dereference Dereference
	Indicators  Indicators
	Interactive Interactive
}

// ConfigureAll resolves every flag. Flags are independent; each one consults
// only its own switch and config key.
func ConfigureAll(m *app.Matches, c *config.Config) Flags {
	return Flags{
		NoSymlink:   Configure[NoSymlink](m, c),
		TotalSize:   Configure[TotalSize](m, c),
		Classic:     Configure[Classic](m, c),
		Dereference: Configure[Dereference](m, c),
		Indicators:  Configure[Indicators](m, c),
		Interactive: Configure[Interactive](m, c),
	}
}
