package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/synapse/internal/background"
	"github.com/san-kum/synapse/internal/theme"
)

// Braille dot-to-bit mapping
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// CanvasToSVG converts a Braille canvas to SVG format, one circle per dot,
// coloured with the palette's node colour over its background.
func CanvasToSVG(canvas *background.Canvas, scale float64, pal theme.Palette) string {
	if canvas == nil {
		return ""
	}
	if scale <= 0 {
		scale = 1
	}

	width := float64(canvas.Width) * scale * 2   // 2 sub-pixels per char
	height := float64(canvas.Height) * scale * 4 // 4 sub-pixels per char

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, width, height, width, height, pal.Background, pal.Node))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, cx, cy, dotRadius))
					}
				}
			}
		}
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}

// Snapshot advances net by warmup seconds at fps and returns the frame as
// SVG.
func Snapshot(net *background.Network, w, h int, warmup float64, fps int, scale float64, pal theme.Palette) string {
	if fps <= 0 {
		fps = 30
	}
	dt := 1 / float64(fps)
	for t := 0.0; t < warmup; t += dt {
		net.Step(dt)
	}
	return CanvasToSVG(net.Frame(w, h), scale, pal)
}
