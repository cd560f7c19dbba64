package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/synapse/internal/session"
)

const (
	hudWidth    = 30
	sliderWidth = hudWidth - 4
	rewireZone  = "rewire"
	sliderZone  = "density"
	closeZone   = "close"
	modalZone   = "modal"
)

// hud renders the control panel: active core, density slider, activity
// graph and the rewire button.
func (m *Model) hud() string {
	s := m.styles
	inner := hudWidth - 4

	core := s.subtle.Render("CORE: ") + s.accent.Render(m.sess.Theme().String())
	stable := s.mono.Render("STABLE")
	row1 := core + strings.Repeat(" ", max(inner-lipgloss.Width(core)-lipgloss.Width(stable), 1)) + stable

	d := m.sess.Density()
	label := s.subtle.Render("SYNAPSE_DENSITY")
	value := s.accent.Render(fmt.Sprintf("%.1fx", float64(d)))
	row2 := label + strings.Repeat(" ", max(inner-lipgloss.Width(label)-lipgloss.Width(value), 1)) + value

	track := m.zones.Mark(sliderZone, slider(d.Fraction(), sliderWidth, s))

	lines := []string{row1, "", row2, track}
	if g := m.activityGraph(inner); g != "" {
		lines = append(lines, "", g)
	}
	panel := s.panel.Padding(0, 1).Width(hudWidth - 2).Render(strings.Join(lines, "\n"))

	button := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(s.pal.Glow).
		Padding(0, 2).
		Render(s.heading.Render("REWIRE_NET ↻"))
	return panel + "\n" + m.zones.Mark(rewireZone, button)
}

func (m *Model) activityGraph(width int) string {
	data := m.net.Activity()
	if len(data) < 2 {
		return ""
	}
	plot := asciigraph.Plot(data,
		asciigraph.Height(2),
		asciigraph.Width(width-6),
		asciigraph.Precision(0),
	)
	return m.styles.graph.Render(plot)
}

// densityAt maps a column inside the slider zone to a density.
func densityAt(col, startX, endX int) float64 {
	span := endX - startX
	if span <= 0 {
		return float64(session.DefaultDensity)
	}
	f := float64(col-startX) / float64(span)
	return float64(session.MinDensity) + f*float64(session.MaxDensity-session.MinDensity)
}
