package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// Dereference controls whether symlinks are resolved to their targets'
// metadata when listing.
type Dereference bool

// FromArgs returns the value of --dereference or -L when supplied; a bare
// switch means true.
func (Dereference) FromArgs(m *app.Matches) (Dereference, bool) {
	v, ok := m.Bool(app.Dereference)
	return Dereference(v), ok
}

// FromConfig returns the boolean under the "dereference" key, if present
// with the right type.
func (Dereference) FromConfig(c *config.Config) (Dereference, bool) {
	v, ok := boolFromConfig(c, app.Dereference)
	return Dereference(v), ok
}

// Default returns false: links are listed as links.
func (Dereference) Default() Dereference {
	return false
}
