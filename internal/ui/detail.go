package ui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/synapse/internal/modal"
)

const (
	modalMaxWidth = 72
	modalTravel   = 4.0
)

// modalView renders the full report of the project held by the overlay.
func (m *Model) modalView() string {
	st := m.sess.Modal()
	if st.Phase == modal.Closed || st.Project < 0 || st.Project >= len(m.content.Projects) {
		return ""
	}
	p := m.content.Projects[st.Project]
	s := m.styles

	w := min(modalMaxWidth, max(m.width-6, 24))
	inner := w - 8 // double border + padding

	closeBtn := m.zones.Mark(closeZone, s.subtle.Render("[ CLOSE ✕ ]"))
	top := s.mono.Render(p.Date)
	top += strings.Repeat(" ", max(inner-lipgloss.Width(top)-lipgloss.Width(closeBtn), 1)) + closeBtn

	tags := make([]string, len(p.Tags))
	for i, t := range p.Tags {
		tags[i] = s.tag.Render(strings.ToUpper(t))
	}

	body := []string{
		top,
		"",
		gradientText(p.Title, s.pal.Text, s.pal.Accent),
		accentBar(8, s),
		"",
		lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " ")),
		"",
		s.text.Width(inner).Render(p.Report()),
	}

	frame := s.modal
	if st.Phase == modal.Closing {
		frame = s.modalDim
	}
	return m.zones.Mark(modalZone, frame.Width(w-2).Render(strings.Join(body, "\n")))
}

// modalDrop is the vertical offset of the overlay during its fade.
func (m *Model) modalDrop() int {
	f := m.fade.pos
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return int(math.Round((1 - f) * modalTravel))
}
