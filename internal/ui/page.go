package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/san-kum/synapse/internal/content"
	"github.com/san-kum/synapse/internal/reveal"
	"github.com/san-kum/synapse/internal/session"
)

// pageBuilder accumulates page lines and records where regions and cards
// start and end.
type pageBuilder struct {
	lines []string
	spans map[reveal.Region]span
	cards []span
}

func (b *pageBuilder) add(block string) {
	b.lines = append(b.lines, strings.Split(block, "\n")...)
}

func (b *pageBuilder) gap(n int) {
	for i := 0; i < n; i++ {
		b.lines = append(b.lines, "")
	}
}

func (b *pageBuilder) begin() int { return len(b.lines) }

func (b *pageBuilder) end(r reveal.Region, start int) {
	b.spans[r] = span{start: start, end: len(b.lines)}
}

// buildPage renders the whole page at width w.
func (m *Model) buildPage(w int) *pageBuilder {
	b := &pageBuilder{spans: make(map[reveal.Region]span)}
	if w < 20 {
		w = 20
	}
	s := m.styles
	c := m.content

	// hero
	b.gap(1)
	b.add(gradientText(c.Hero.Name, s.pal.Text, s.pal.Accent))
	b.add(s.accent.Render(c.Hero.Tagline))
	b.gap(1)
	b.add(s.text.Width(w).Render(c.Hero.Summary))
	b.gap(1)
	b.add(separator(w, s))
	b.gap(1)

	// projects
	start := b.begin()
	b.add(m.revealBlock(session.RegionProjects, 0, heading("SYSTEM_LOGS", "", s)))
	b.gap(1)
	for i, p := range c.Projects {
		cardStart := b.begin()
		b.add(m.projectCard(i, p, w))
		b.cards = append(b.cards, span{start: cardStart, end: b.begin()})
	}
	b.end(session.RegionProjects, start)
	b.gap(2)

	// skills
	start = b.begin()
	b.add(m.revealBlock(session.RegionSkills, 0, heading("CORE_MATRIX", "Integrated Intelligence Architectures", s)))
	b.gap(1)
	for i, cat := range c.Skills {
		b.add(m.revealBlock(session.RegionSkills, i+1, m.skillCard(i, cat, w)))
	}
	b.end(session.RegionSkills, start)
	b.gap(2)

	if len(c.Experiences) > 0 {
		b.add(heading("TIMELINE", "", s))
		b.gap(1)
		for _, e := range c.Experiences {
			b.add(experience(e, w, s))
			b.gap(1)
		}
		b.gap(1)
	}

	// contact
	start = b.begin()
	b.add(separator(w, s))
	b.gap(1)
	b.add(m.revealBlock(session.RegionContact, 0, contact(c.Contact, w, s)))
	b.gap(1)
	b.end(session.RegionContact, start)
	return b
}

func heading(title, sub string, s styles) string {
	lines := []string{s.heading.Render(title), accentBar(8, s)}
	if sub != "" {
		lines = append(lines, s.subtle.Render(strings.ToUpper(sub)))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) projectCard(i int, p content.Project, w int) string {
	s := m.styles
	inner := w - 6 // border + padding
	if inner < 10 {
		inner = 10
	}
	selected := m.sess.Selected() == i

	date := lipgloss.PlaceHorizontal(inner, lipgloss.Right, s.mono.Render(p.Date))
	title := s.title.Render(p.Title)
	if selected {
		marker := "◉"
		if (m.frame/max(m.fps/2, 1))%2 == 1 {
			marker = "○"
		}
		title = s.accent.Render(marker+" ") + s.accent.Render(p.Title)
	}
	desc := s.text.Width(inner).Render(p.Description)

	tags := make([]string, len(p.Tags))
	for j, t := range p.Tags {
		tags[j] = s.tag.Render(strings.ToUpper(t))
	}
	tagLine := lipgloss.NewStyle().Width(inner).Render(strings.Join(tags, " "))

	button := m.zones.Mark(expandZone(i), s.button.Render("── READ_FULL_REPORT"))

	body := strings.Join([]string{date, title, "", desc, "", tagLine, "", button}, "\n")
	style := s.panel
	if selected {
		style = s.selected.BorderForeground(m.glowColor())
	}
	return m.zones.Mark(cardZone(i), style.Width(w-2).Render(body))
}

// glowColor pulses between glow and accent on a 2.5s period.
func (m *Model) glowColor() lipgloss.Color {
	period := 2.5 * float64(m.fps)
	phase := 0.5 + 0.5*math.Sin(2*math.Pi*float64(m.frame)/period)
	return blend(m.styles.pal.Glow, m.styles.pal.Accent, phase)
}

func (m *Model) skillCard(i int, cat content.SkillCategory, w int) string {
	s := m.styles
	inner := w - 6
	lines := []string{
		s.accent.Render(fmt.Sprintf("[%d] ", i+1)) + s.heading.Render(strings.ToUpper(cat.Category)),
		"",
	}
	for _, sk := range cat.Skills {
		lines = append(lines, s.title.Render(sk.Name))
		lines = append(lines, s.subtle.Width(inner).Render(sk.Description))
	}
	return s.panel.Width(w - 2).Render(strings.Join(lines, "\n"))
}

func experience(e content.Experience, w int, s styles) string {
	head := s.title.Render(e.Role) + s.subtle.Render(" @ "+e.Company)
	period := s.mono.Render(e.Period)
	if gap := w - lipgloss.Width(head) - lipgloss.Width(period); gap > 0 {
		head += strings.Repeat(" ", gap) + period
	} else {
		head += "\n" + period
	}
	lines := []string{head}
	for _, d := range e.Description {
		lines = append(lines, s.text.Width(w).Render("  › "+d))
	}
	return strings.Join(lines, "\n")
}

func contact(c content.Contact, w int, s styles) string {
	title := gradientText("LET'S INTERFACE", s.pal.Text, s.pal.Muted)
	var links []string
	if c.Email != "" {
		links = append(links, ansi.SetHyperlink("mailto:"+c.Email)+s.title.Render(c.Email)+ansi.ResetHyperlink())
	}
	if c.LinkedIn != "" {
		links = append(links, ansi.SetHyperlink(c.LinkedIn)+s.title.Render("LinkedIn_Signal")+ansi.ResetHyperlink())
	}
	block := []string{title, ""}
	block = append(block, links...)
	return lipgloss.PlaceHorizontal(w, lipgloss.Center, strings.Join(block, "\n"))
}

// revealBlock hides block until its entrance has started, then slides it in
// from the right.
func (m *Model) revealBlock(r reveal.Region, item int, block string) string {
	e, ok := m.entrances[itemKey(r, item)]
	if !ok {
		return blankLike(block)
	}
	offset := int(math.Round(e.pos))
	if offset <= 0 {
		return block
	}
	pad := strings.Repeat(" ", offset)
	lines := strings.Split(block, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

// blankLike returns empty lines occupying the same height as block.
func blankLike(block string) string {
	return strings.Repeat("\n", lipgloss.Height(block)-1)
}

func itemKey(r reveal.Region, item int) string {
	return fmt.Sprintf("%s/%d", r, item)
}

func cardZone(i int) string   { return fmt.Sprintf("project-%d", i) }
func expandZone(i int) string { return fmt.Sprintf("expand-%d", i) }
