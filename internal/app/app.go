// Package app defines the lsg command-line grammar and the parsed result.
package app

import (
	"flag"
	"fmt"
	"io"
)

// Boolean switch names recognized on the command line. Flag types query
// Matches with these names; the config file uses the same keys.
const (
	NoSymlink   = "no-symlink"
	TotalSize   = "total-size"
	Classic     = "classic"
	Dereference = "dereference"
	Indicators  = "indicators"
	Interactive = "interactive"
)

// shortAliases maps single-letter switches to their long names.
var shortAliases = map[string]string{
	"L": Dereference,
	"F": Indicators,
}

// Matches is the command line after grammar parsing: which switches were
// supplied with which value, plus the positional paths. Read-only once built.
type Matches struct {
	values  map[string]bool
	paths   []string
	version bool
}

// Parse parses args (without the program name) against the lsg grammar.
// Usage and parse errors are written to errOut.
func Parse(args []string, errOut io.Writer) (*Matches, error) {
	fs := flag.NewFlagSet("lsg", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() { printUsage(errOut, fs) }

	for name, usage := range switchUsage {
		fs.Bool(name, false, usage)
	}
	for short, long := range shortAliases {
		fs.Bool(short, false, "alias for --"+long)
	}
	version := fs.Bool("version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	m := &Matches{values: make(map[string]bool), version: *version}
	fs.Visit(func(f *flag.Flag) {
		name := f.Name
		if long, ok := shortAliases[name]; ok {
			name = long
		}
		value := false
		if getter, ok := f.Value.(flag.Getter); ok {
			value, _ = getter.Get().(bool)
		}
		// A switch supplied through both spellings stays on if either was.
		m.values[name] = m.values[name] || value
	})
	m.paths = fs.Args()
	return m, nil
}

var switchUsage = map[string]string{
	NoSymlink:   "do not display symlink targets",
	TotalSize:   "display the total size of directories",
	Classic:     "plain output without colors or indicators",
	Dereference: "dereference symbolic links when listing",
	Indicators:  "append file type indicators (/, @, *)",
	Interactive: "scroll long listings in the terminal",
}

// Has reports whether the named switch was supplied on the command line.
func (m *Matches) Has(name string) bool {
	_, ok := m.values[name]
	return ok
}

// Bool returns the value supplied for the named switch; ok is false when
// the switch was absent. A bare --name parses as true, --name=false as
// false.
func (m *Matches) Bool(name string) (value, ok bool) {
	value, ok = m.values[name]
	return value, ok
}

// Paths returns the positional path arguments, or ["."] when none were given.
func (m *Matches) Paths() []string {
	if len(m.paths) == 0 {
		return []string{"."}
	}
	return m.paths
}

// Version reports whether --version was supplied.
func (m *Matches) Version() bool {
	return m.version
}

func printUsage(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Usage: lsg [options] [path ...]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.PrintDefaults()
}
