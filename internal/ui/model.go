package ui

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/san-kum/synapse/internal/background"
	"github.com/san-kum/synapse/internal/content"
	"github.com/san-kum/synapse/internal/modal"
	"github.com/san-kum/synapse/internal/reveal"
	"github.com/san-kum/synapse/internal/session"
	"github.com/san-kum/synapse/internal/theme"
)

const (
	defaultWidth   = 100
	defaultHeight  = 30
	maxPageWidth   = 84
	entranceOffset = 6.0
)

// TickMsg advances animations by one frame.
type TickMsg time.Time

type Options struct {
	Content   *content.Portfolio
	Palettes  theme.Table
	Network   *background.Network
	FPS       int
	Mouse     bool
	AltScreen bool
	Logger    *slog.Logger
}

type entrance struct {
	pos, vel float64
}

// Model is the Bubble Tea model for the portfolio page.
type Model struct {
	log      *slog.Logger
	content  *content.Portfolio
	palettes theme.Table
	net      *background.Network
	sess     *session.Session

	sched    *teaScheduler
	scroll   *pageScroll
	observer *viewportObserver
	zones    *zone.Manager

	styles   styles
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	width, height int
	fps           int
	frame         int
	now           time.Time
	spring        harmonica.Spring

	cards      []span
	revealedAt map[reveal.Region]time.Time
	entrances  map[string]*entrance
	fade       entrance
	closed     bool
}

func NewModel(opts Options) *Model {
	if opts.Content == nil {
		opts.Content = content.Default()
	}
	if opts.Palettes == nil {
		opts.Palettes = theme.DefaultTable()
	}
	if opts.Network == nil {
		opts.Network = background.New(48, time.Now().UnixNano())
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	m := &Model{
		log:        log,
		content:    opts.Content,
		palettes:   opts.Palettes,
		net:        opts.Network,
		sched:      newTeaScheduler(),
		scroll:     &pageScroll{},
		observer:   newViewportObserver(),
		zones:      zone.New(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		width:      defaultWidth,
		height:     defaultHeight,
		fps:        opts.FPS,
		now:        time.Now(),
		spring:     harmonica.NewSpring(harmonica.FPS(opts.FPS), 7.0, 0.8),
		revealedAt: make(map[reveal.Region]time.Time),
		entrances:  make(map[string]*entrance),
	}
	m.sess = session.New(session.Options{
		Projects:   len(opts.Content.Projects),
		Scheduler:  m.sched,
		ScrollLock: m.scroll,
		Observer:   m.observer,
		Background: m.net,
		Logger:     log,
	})
	m.sess.OnReveal(func(r reveal.Region) { m.revealedAt[r] = m.now })
	m.sess.OnModalChange(func(from, to modal.State) {
		if from.Phase == modal.Closed && to.Phase == modal.Open {
			m.fade = entrance{}
		}
	})
	m.styles = newStyles(m.palettes.Get(m.sess.Theme()))
	m.viewport = viewport.New(m.pageWidth(), m.pageHeight())
	m.relayout()
	return m
}

// Session exposes the page state for callers that drive the model directly.
func (m *Model) Session() *session.Session { return m.sess }

func (m *Model) Init() tea.Cmd {
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m *Model) pageWidth() int {
	return min(maxPageWidth, max(m.width-4, 20))
}

func (m *Model) pageHeight() int {
	return max(m.height-1, 1)
}

// relayout rebuilds the page content and refreshes reveal observations.
func (m *Model) relayout() {
	m.viewport.Width = m.pageWidth()
	m.viewport.Height = m.pageHeight()
	page := m.buildPage(m.viewport.Width)
	m.cards = page.cards
	m.viewport.SetContent(strings.Join(page.lines, "\n"))
	m.observer.update(page.spans, m.viewport.YOffset, m.viewport.Height)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.relayout()
	case TickMsg:
		m.now = time.Time(msg)
		m.frame++
		m.net.Step(1 / float64(m.fps))
		m.animate()
		m.relayout()
		if !m.closed {
			cmds = append(cmds, m.tick())
		}
	case timerMsg:
		m.sched.fire(msg.id)
		m.relayout()
	case tea.KeyMsg:
		if cmd := m.handleKey(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	if cmd := m.sched.drain(); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// animate advances reveal entrances and the overlay fade by one frame.
func (m *Model) animate() {
	for r, at := range m.revealedAt {
		items := m.revealItems(r)
		for i := 0; i < items; i++ {
			k := itemKey(r, i)
			e, ok := m.entrances[k]
			if !ok {
				delay := time.Duration(0)
				if i > 0 {
					delay = reveal.StaggerDelay(i - 1)
				}
				if m.now.Sub(at) < delay {
					continue
				}
				m.entrances[k] = &entrance{pos: entranceOffset}
				continue
			}
			e.pos, e.vel = m.spring.Update(e.pos, e.vel, 0)
		}
	}

	target := 0.0
	if m.sess.Modal().Phase == modal.Open {
		target = 1
	}
	m.fade.pos, m.fade.vel = m.spring.Update(m.fade.pos, m.fade.vel, target)
}

// revealItems is how many staggered blocks a region contains.
func (m *Model) revealItems(r reveal.Region) int {
	if r == session.RegionSkills {
		return 1 + len(m.content.Skills)
	}
	return 1
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		return tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return nil
	case key.Matches(msg, m.keys.Rewire):
		m.rewire()
		return nil
	case key.Matches(msg, m.keys.Denser):
		m.nudgeDensity(float64(session.DensityStep))
		return nil
	case key.Matches(msg, m.keys.Sparser):
		m.nudgeDensity(-float64(session.DensityStep))
		return nil
	}

	if m.sess.Modal().Phase != modal.Closed {
		if key.Matches(msg, m.keys.Close) {
			m.sess.Close()
		}
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.NextProject):
		m.selectProject(m.sess.Selected() + 1)
	case key.Matches(msg, m.keys.PrevProject):
		prev := m.sess.Selected() - 1
		if m.sess.Selected() == session.NoSelection {
			prev = len(m.content.Projects) - 1
		}
		m.selectProject(prev)
	case key.Matches(msg, m.keys.Expand):
		if sel := m.sess.Selected(); sel != session.NoSelection {
			m.expand(sel)
		}
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.viewport.TotalLineCount())
	}
	return nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	m.net.Pointer(msg.X, msg.Y)
	if msg.Action == tea.MouseActionMotion {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.scrollBy(-3)
		return
	case tea.MouseButtonWheelDown:
		m.scrollBy(3)
		return
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	m.click(m.hit(msg), msg.X)
}

// hit resolves which zone, if any, the mouse event landed on.
func (m *Model) hit(msg tea.MouseMsg) string {
	ids := []string{closeZone, modalZone, rewireZone, sliderZone}
	for i := range m.content.Projects {
		ids = append(ids, expandZone(i), cardZone(i))
	}
	for _, id := range ids {
		if z := m.zones.Get(id); z != nil && z.InBounds(msg) {
			return id
		}
	}
	return ""
}

// click applies a press on zone id at screen column x.
func (m *Model) click(id string, x int) {
	if m.sess.Modal().Phase != modal.Closed {
		switch id {
		case modalZone:
		case rewireZone:
			m.rewire()
		case sliderZone:
			m.clickSlider(x)
		default:
			m.sess.Close()
		}
		return
	}
	switch id {
	case rewireZone:
		m.rewire()
	case sliderZone:
		m.clickSlider(x)
	default:
		for i := range m.content.Projects {
			switch id {
			case expandZone(i):
				m.expand(i)
				return
			case cardZone(i):
				m.sess.Select(i)
				m.relayout()
				return
			}
		}
	}
}

func (m *Model) clickSlider(x int) {
	z := m.zones.Get(sliderZone)
	if z == nil {
		return
	}
	m.setDensity(densityAt(x, z.StartX, z.EndX))
}

func (m *Model) rewire() {
	t := m.sess.CycleTheme()
	m.styles = newStyles(m.palettes.Get(t))
	m.relayout()
}

func (m *Model) nudgeDensity(delta float64) {
	m.setDensity(float64(m.sess.Density()) + delta)
}

func (m *Model) setDensity(v float64) {
	m.sess.SetDensity(v)
	m.relayout()
}

func (m *Model) selectProject(i int) {
	n := len(m.content.Projects)
	if n == 0 {
		return
	}
	i = ((i % n) + n) % n
	m.sess.Select(i)
	m.relayout()
	if i < len(m.cards) {
		card := m.cards[i]
		if card.start < m.viewport.YOffset || card.end > m.viewport.YOffset+m.viewport.Height {
			m.scrollTo(card.start)
		}
	}
}

func (m *Model) expand(i int) {
	m.sess.Select(i)
	m.sess.Expand(i)
	m.relayout()
}

func (m *Model) scrollBy(n int) {
	m.scrollTo(m.viewport.YOffset + n)
}

func (m *Model) scrollTo(y int) {
	if m.scroll.locked {
		return
	}
	m.viewport.SetYOffset(y)
	m.relayout()
}

func (m *Model) teardown() {
	if m.closed {
		return
	}
	m.closed = true
	m.sess.Teardown()
	m.sched.stop()
}

// View composes background, page, control panel, status line and overlay.
func (m *Model) View() string {
	if m.closed {
		return ""
	}
	w, h := m.width, m.height
	pal := m.styles.pal
	out := m.net.Render(w, h, pal)
	out = compose(out, w, h, m.viewport.View(), placement{horizontal: lipgloss.Center})
	out = compose(out, w, h, m.hud(), placement{horizontal: lipgloss.Left, vertical: lipgloss.Bottom, marginX: 1, marginY: 1})
	out = compose(out, w, h, m.help.View(m.keys), placement{horizontal: lipgloss.Left, vertical: lipgloss.Bottom})
	if m.sess.Modal().Phase != modal.Closed {
		out = compose(out, w, h, m.modalView(), placement{horizontal: lipgloss.Center, vertical: lipgloss.Center, marginY: m.modalDrop()})
	}
	return m.zones.Scan(out)
}

// Run starts the program and blocks until it exits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	m := NewModel(opts)
	defer m.zones.Close()

	progOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if opts.AltScreen {
		progOpts = append(progOpts, tea.WithAltScreen())
	}
	if opts.Mouse {
		progOpts = append(progOpts, tea.WithMouseAllMotion())
	}
	m.log.Info("starting", "fps", m.fps, "nodes", m.net.Nodes(), "mouse", opts.Mouse)
	_, err := tea.NewProgram(m, progOpts...).Run()
	m.teardown()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
