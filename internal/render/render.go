package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/dkoosis/lsg/internal/flags"
	"github.com/dkoosis/lsg/internal/meta"
)

// columnGap is the spacing between grid columns, in cells.
const columnGap = 2

// Renderer formats entries according to the resolved flags.
// Width is the terminal width in cells; zero means output is not a terminal
// and entries are printed one per line.
type Renderer struct {
	Width      int
	Classic    flags.Classic
	Indicators flags.Indicators
	TotalSize  flags.TotalSize
}

// Render returns the formatted listing, newline-terminated unless empty.
func (r Renderer) Render(entries []meta.Entry) string {
	if len(entries) == 0 {
		return ""
	}

	cells := make([]string, len(entries))
	for i, e := range entries {
		cells[i] = r.cell(e)
	}

	if r.Width <= 0 {
		return strings.Join(cells, "\n") + "\n"
	}
	return r.grid(cells)
}

// cell formats a single entry: styled name, optional indicator, optional
// symlink target, optional directory total.
func (r Renderer) cell(e meta.Entry) string {
	name := e.Name
	if bool(r.Indicators) {
		name += e.Indicator()
	}

	if bool(r.Classic) {
		if e.Target != "" {
			name += " -> " + e.Target
		}
		if e.Class == meta.ClassDir && bool(r.TotalSize) {
			name += fmt.Sprintf(" (%s)", FormatSize(e.Size))
		}
		return name
	}

	out := styleFor(e.Class).Render(name)
	if e.Target != "" {
		out += " -> " + symlinkStyle.Render(e.Target)
	}
	if e.Class == meta.ClassDir && bool(r.TotalSize) {
		out += " " + sizeStyle.Render(fmt.Sprintf("(%s)", FormatSize(e.Size)))
	}
	return out
}

// grid lays cells out column-major across the terminal width, the way ls
// does. Cell widths are visual widths, so wide runes and ANSI styling are
// measured correctly.
func (r Renderer) grid(cells []string) string {
	widest := 0
	for _, c := range cells {
		if w := cellWidth(c); w > widest {
			widest = w
		}
	}

	cols := (r.Width + columnGap) / (widest + columnGap)
	if cols < 1 {
		cols = 1
	}
	if cols > len(cells) {
		cols = len(cells)
	}
	rows := (len(cells) + cols - 1) / cols

	var b strings.Builder
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			i := col*rows + row
			if i >= len(cells) {
				break
			}
			cell := cells[i]
			if col < cols-1 && col*rows+rows+row < len(cells) {
				cell = padRight(cell, widest+columnGap)
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// cellWidth is the visual width of a possibly styled cell.
func cellWidth(s string) int {
	if strings.Contains(s, "\x1b") {
		return lipgloss.Width(s)
	}
	return runewidth.StringWidth(s)
}

func padRight(s string, width int) string {
	vw := cellWidth(s)
	if vw >= width {
		return s
	}
	return s + strings.Repeat(" ", width-vw)
}

// FormatSize renders a byte count in human-readable binary units.
func FormatSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(n)/float64(div), "KMGTPE"[exp])
}
