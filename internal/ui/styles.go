package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/synapse/internal/theme"
)

// styles are rebuilt whenever the active palette changes.
type styles struct {
	pal theme.Palette

	// Glass panel effect with subtle border
	panel lipgloss.Style
	// Selected project card
	selected lipgloss.Style

	title    lipgloss.Style
	heading  lipgloss.Style
	accent   lipgloss.Style
	text     lipgloss.Style
	subtle   lipgloss.Style
	mono     lipgloss.Style
	tag      lipgloss.Style
	button   lipgloss.Style
	keyHint  lipgloss.Style
	graph    lipgloss.Style
	modal    lipgloss.Style
	modalDim lipgloss.Style
}

func newStyles(pal theme.Palette) styles {
	return styles{
		pal: pal,
		panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#27272a")).
			Padding(0, 2),
		selected: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(pal.Accent).
			Padding(0, 2),
		title:   lipgloss.NewStyle().Bold(true).Foreground(pal.Text),
		heading: lipgloss.NewStyle().Bold(true).Foreground(pal.Text),
		accent:  lipgloss.NewStyle().Bold(true).Foreground(pal.Accent),
		text:    lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa")),
		subtle:  lipgloss.NewStyle().Foreground(pal.Muted),
		mono:    lipgloss.NewStyle().Foreground(lipgloss.Color("#52525b")),
		tag: lipgloss.NewStyle().
			Foreground(pal.Accent).
			Background(lipgloss.Color("#18181b")).
			Padding(0, 1),
		button:  lipgloss.NewStyle().Bold(true).Foreground(pal.Accent),
		keyHint: lipgloss.NewStyle().Foreground(pal.Muted).Italic(true),
		graph:   lipgloss.NewStyle().Foreground(pal.Accent),
		modal: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(pal.Accent).
			Background(lipgloss.Color("#09090b")).
			Padding(1, 3),
		modalDim: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(pal.Glow).
			Background(lipgloss.Color("#09090b")).
			Padding(1, 3),
	}
}

// gradientText colours each rune along a blend from start to end.
func gradientText(text string, start, end lipgloss.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	a, errA := colorful.Hex(string(start))
	b, errB := colorful.Hex(string(end))
	if errA != nil || errB != nil {
		return lipgloss.NewStyle().Foreground(start).Render(text)
	}

	var out strings.Builder
	n := len(runes)
	for i, r := range runes {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		c := lipgloss.Color(a.BlendLuv(b, t).Clamped().Hex())
		out.WriteString(lipgloss.NewStyle().Foreground(c).Render(string(r)))
	}
	return out.String()
}

// blend mixes two hex colours; t=0 is a, t=1 is b.
func blend(a, b lipgloss.Color, t float64) lipgloss.Color {
	ca, errA := colorful.Hex(string(a))
	cb, errB := colorful.Hex(string(b))
	if errA != nil || errB != nil {
		return a
	}
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return lipgloss.Color(ca.BlendRgb(cb, t).Clamped().Hex())
}

// slider renders a horizontal track with a thumb at fraction f.
func slider(f float64, width int, s styles) string {
	if width < 2 {
		return ""
	}
	pos := int(f*float64(width-1) + 0.5)
	if pos < 0 {
		pos = 0
	}
	if pos > width-1 {
		pos = width - 1
	}
	return s.accent.Render(strings.Repeat("━", pos)) +
		s.accent.Render("●") +
		s.mono.Render(strings.Repeat("─", width-pos-1))
}

// separator is a decorative rule with a centred diamond.
func separator(width int, s styles) string {
	if width < 8 {
		return s.subtle.Render(strings.Repeat("─", max(width, 0)))
	}
	mid := width / 2
	left := strings.Repeat("─", mid-1)
	right := strings.Repeat("─", width-mid-2)
	return s.subtle.Render(left+" ") + s.accent.Render("◆") + s.subtle.Render(" "+right)
}

// accentBar is the short underline beneath section headings.
func accentBar(width int, s styles) string {
	return s.accent.Render(strings.Repeat("▀", width))
}
