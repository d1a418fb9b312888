package flags

import (
	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
)

// TotalSize controls whether directories show their recursive byte total.
type TotalSize bool

// FromArgs returns the value of the --total-size switch when it was
// supplied; a bare --total-size means true.
func (TotalSize) FromArgs(m *app.Matches) (TotalSize, bool) {
	v, ok := m.Bool(app.TotalSize)
	return TotalSize(v), ok
}

// FromConfig returns the boolean under the "total-size" key, if present
// with the right type.
func (TotalSize) FromConfig(c *config.Config) (TotalSize, bool) {
	v, ok := boolFromConfig(c, app.TotalSize)
	return TotalSize(v), ok
}

// Default returns false: directory totals are not computed.
func (TotalSize) Default() TotalSize {
	return false
}
