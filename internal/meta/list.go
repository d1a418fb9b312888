package meta

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dkoosis/lsg/internal/flags"
)

// Options is the subset of resolved flags the lister honors.
type Options struct {
	NoSymlink   flags.NoSymlink
	TotalSize   flags.TotalSize
	Dereference flags.Dereference
}

// List returns the entries under path, sorted by collated name.
// A non-directory path yields a single entry for the path itself.
func List(path string, opts Options) ([]Entry, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	if !info.IsDir() {
		e := entryFor(filepath.Dir(path), info, opts)
		e.Name = path
		return []Entry{e}, nil
	}

	dirents, err := os.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", path, err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, d := range dirents {
		info, err := d.Info()
		if err != nil {
			// Entry vanished between ReadDir and Info; skip it.
			continue
		}
		entries = append(entries, entryFor(path, info, opts))
	}
	sortEntries(entries)
	return entries, nil
}

func entryFor(dir string, info fs.FileInfo, opts Options) Entry {
	name := info.Name()
	full := filepath.Join(dir, name)
	mode := info.Mode()
	size := info.Size()
	target := ""
	broken := false

	if mode&fs.ModeSymlink != 0 {
		resolved, err := os.Stat(full)
		broken = err != nil

		if bool(opts.Dereference) && !broken {
			// List the target's metadata under the link's name.
			mode = resolved.Mode()
			size = resolved.Size()
		} else if !bool(opts.NoSymlink) {
			if t, err := os.Readlink(full); err == nil {
				target = t
			}
		}
	}

	class := classify(mode, broken)
	if class == ClassDir && bool(opts.TotalSize) {
		total, err := dirTotalSize(full)
		if err == nil {
			size = total
		}
	}

	return Entry{Name: name, Size: size, Mode: mode, Class: class, Target: target}
}

// dirTotalSize walks dir and sums regular file sizes.
// Symlinks are not followed, so cycles cannot occur.
func dirTotalSize(dir string) (int64, error) {
	var total int64
	err := filepath.WalkDir(dir, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtrees contribute nothing.
			return filepath.SkipDir
		}
		if d.Type().IsRegular() {
			if info, err := d.Info(); err == nil {
				total += info.Size()
			}
		}
		return nil
	})
	return total, err
}
