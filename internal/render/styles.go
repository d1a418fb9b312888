// Package render lays out listing entries for the terminal.
package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dkoosis/lsg/internal/meta"
)

var (
	dirStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	symlinkStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	execStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	brokenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	sizeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	plainStyle   = lipgloss.NewStyle()
)

func styleFor(class meta.Class) lipgloss.Style {
	switch class {
	case meta.ClassDir:
		return dirStyle
	case meta.ClassSymlink:
		return symlinkStyle
	case meta.ClassExecutable:
		return execStyle
	case meta.ClassBroken:
		return brokenStyle
	default:
		return plainStyle
	}
}
