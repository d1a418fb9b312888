package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// Classic disables colors and indicators for plain, ls-like output.
type Classic bool

// FromArgs returns the value of the --classic switch when it was supplied;
// a bare --classic means true.
func (Classic) FromArgs(m *app.Matches) (Classic, bool) {
	v, ok := m.Bool(app.Classic)
	return Classic(v), ok
}

// FromConfig returns the boolean under the "classic" key, if present with
// the right type.
func (Classic) FromConfig(c *config.Config) (Classic, bool) {
	v, ok := boolFromConfig(c, app.Classic)
	return Classic(v), ok
}

// Default returns false: styled output.
func (Classic) Default() Classic {
	return false
}
