// Package meta gathers filesystem metadata for the entries being listed.
package meta

import (
	"io/fs"
)

// Class buckets an entry for styling and indicators.
type Class int

const (
	ClassFile Class = iota
	ClassDir
	ClassSymlink
	ClassExecutable
	ClassBroken
)

// Entry is one listed filesystem object.
type Entry struct {
	Name   string
	Size   int64
	Mode   fs.FileMode
	Class  Class
	Target string // symlink target, "" unless Class is ClassSymlink or ClassBroken
}

// Indicator returns the classify suffix for the entry, or "".
func (e Entry) Indicator() string {
	switch e.Class {
	case ClassDir:
		return "/"
	case ClassSymlink, ClassBroken:
		return "@"
	case ClassExecutable:
		return "*"
	default:
		return ""
	}
}

func classify(mode fs.FileMode, broken bool) Class {
	switch {
	case broken:
		return ClassBroken
	case mode&fs.ModeSymlink != 0:
		return ClassSymlink
	case mode.IsDir():
		return ClassDir
	case mode&0o111 != 0:
		return ClassExecutable
	default:
		return ClassFile
	}
}
