package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// Interactive controls whether long listings open in a scrollable viewport
// instead of printing straight through. Only takes effect on a TTY.
type Interactive bool

// FromArgs returns the value of the --interactive switch when it was
// supplied; a bare --interactive means true.
func (Interactive) FromArgs(m *app.Matches) (Interactive, bool) {
	v, ok := m.Bool(app.Interactive)
	return Interactive(v), ok
}

// FromConfig returns the boolean under the "interactive" key, if present
// with the right type.
func (Interactive) FromConfig(c *config.Config) (Interactive, bool) {
	v, ok := boolFromConfig(c, app.Interactive)
	return Interactive(v), ok
}

// Default returns false: print straight through.
func (Interactive) Default() Interactive {
	return false
}
