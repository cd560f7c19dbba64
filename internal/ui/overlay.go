package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

const resetSGR = "\x1b[0m"

// placement controls where a block lands on the screen.
type placement struct {
	horizontal lipgloss.Position
	vertical   lipgloss.Position
	marginX    int
	marginY    int
}

// compose draws foreground over background, keeping the background outside
// the foreground's bounding box.
func compose(background string, width, height int, foreground string, p placement) string {
	bgLines := normalize(background, width, height)
	if foreground == "" || width <= 0 || height <= 0 {
		return strings.Join(bgLines, "\n")
	}

	fgLines := strings.Split(foreground, "\n")
	fgWidth := 0
	for _, line := range fgLines {
		if w := ansi.StringWidth(line); w > fgWidth {
			fgWidth = w
		}
	}
	if fgWidth == 0 {
		return strings.Join(bgLines, "\n")
	}
	if fgWidth > width {
		fgWidth = width
	}
	fgHeight := len(fgLines)
	if fgHeight > height {
		fgHeight = height
		fgLines = fgLines[:height]
	}

	offsetX, offsetY := offsets(width, height, fgWidth, fgHeight, p)

	for row, fgLine := range fgLines {
		y := offsetY + row
		if y < 0 || y >= len(bgLines) {
			continue
		}
		base := bgLines[y]
		prefix := ansi.Truncate(base, offsetX, "")
		suffix := ansi.TruncateLeft(base, offsetX+fgWidth, "")
		bgLines[y] = prefix + resetSGR + padTo(fgLine, fgWidth) + resetSGR + suffix
	}
	return strings.Join(bgLines, "\n")
}

func normalize(view string, width, height int) []string {
	lines := strings.Split(view, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i := range lines {
		lines[i] = padTo(lines[i], width)
	}
	return lines
}

// padTo truncates or pads s to exactly width cells.
func padTo(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	if w > width {
		return ansi.Truncate(s, width, "")
	}
	return s + strings.Repeat(" ", width-w)
}

func offsets(width, height, w, h int, p placement) (int, int) {
	x := p.marginX
	switch p.horizontal {
	case lipgloss.Right:
		x = width - w - p.marginX
	case lipgloss.Center:
		x = (width-w)/2 + p.marginX
	}
	if x > width-w {
		x = width - w
	}
	if x < 0 {
		x = 0
	}

	y := p.marginY
	switch p.vertical {
	case lipgloss.Bottom:
		y = height - h - p.marginY
	case lipgloss.Center:
		y = (height-h)/2 + p.marginY
	}
	if y > height-h {
		y = height - h
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
