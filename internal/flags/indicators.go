package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// Indicators controls whether entries carry a classify suffix:
// "/" for directories, "@" for symlinks, "*" for executables.
type Indicators bool

// FromArgs returns the value of --indicators or -F when supplied; a bare
// switch means true.
func (Indicators) FromArgs(m *app.Matches) (Indicators, bool) {
	v, ok := m.Bool(app.Indicators)
	return Indicators(v), ok
}

// FromConfig returns the boolean under the "indicators" key, if present
// with the right type.
func (Indicators) FromConfig(c *config.Config) (Indicators, bool) {
	v, ok := boolFromConfig(c, app.Indicators)
	return Indicators(v), ok
}

// Default returns false: no suffixes.
func (Indicators) Default() Indicators {
	return false
}
