package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// NoSymlink controls whether symlink targets are hidden in the listing.
type NoSymlink bool

// FromArgs returns the value of the --no-symlink switch when it was
// supplied. A bare --no-symlink means true; an explicit --no-symlink=false
// is honored.
func (NoSymlink) FromArgs(m *app.Matches) (NoSymlink, bool) {
	v, ok := m.Bool(app.NoSymlink)
	return NoSymlink(v), ok
}

// FromConfig returns the boolean under the "no-symlink" key, if present
// with the right type.
func (NoSymlink) FromConfig(c *config.Config) (NoSymlink, bool) {
	v, ok := boolFromConfig(c, app.NoSymlink)
	return NoSymlink(v), ok
}

// Default returns false: symlink targets are shown.
func (NoSymlink) Default() NoSymlink {
	return false
}
