// lsg lists directories with styled, configurable output.
//
// Each behavioral flag resolves from three layered sources with strict
// precedence: command-line switch, then the lsg.yaml config file, then the
// compiled-in default. Malformed config values warn and fall through; they
// never abort the run.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dkoosis/lsg/internal/app"
	"github.com/dkoosis/lsg/internal/config"
	"github.com/dkoosis/lsg/internal/flags"
	"github.com/dkoosis/lsg/internal/meta"
	"github.com/dkoosis/lsg/internal/pager"
	"github.com/dkoosis/lsg/internal/render"
	"github.com/dkoosis/lsg/internal/version"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	matches, err := app.Parse(args, stderr)
	if err != nil {
		return 2
	}

	if matches.Version() {
		fmt.Fprintf(stdout, "lsg %s (%s, %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	cfg := config.Load(stderr)
	resolved := flags.ConfigureAll(matches, cfg)

	width := terminalWidth(stdout)
	renderer := render.Renderer{
		Width:      width,
		Classic:    resolved.Classic,
		Indicators: resolved.Indicators,
		TotalSize:  resolved.TotalSize,
	}
	opts := meta.Options{
		NoSymlink:   resolved.NoSymlink,
		TotalSize:   resolved.TotalSize,
		Dereference: resolved.Dereference,
	}

	exit := 0
	paths := matches.Paths()
	var out strings.Builder
	for i, path := range paths {
		entries, err := meta.List(path, opts)
		if err != nil {
			fmt.Fprintf(stderr, "lsg: %v\n", err)
			exit = 1
			continue
		}
		if len(paths) > 1 {
			if i > 0 {
				out.WriteByte('\n')
			}
			fmt.Fprintf(&out, "%s:\n", path)
		}
		out.WriteString(renderer.Render(entries))
	}

	if bool(resolved.Interactive) && width > 0 {
		if err := pager.Show(strings.Join(paths, " "), out.String()); err != nil {
			fmt.Fprintf(stderr, "lsg: %v\n", err)
			io.WriteString(stdout, out.String())
		}
		return exit
	}

	io.WriteString(stdout, out.String())
	return exit
}

// terminalWidth returns w's width in cells, or 0 when w is not a terminal.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}
