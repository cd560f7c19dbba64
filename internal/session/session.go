// Package session owns the page state: active theme, background density,
// selected project, detail overlay and reveal flags.
//
// Presentation code reads state through the accessors and changes it only
// through CycleTheme, SetDensity, Select, Expand and Close. Every method runs
// on the UI event loop.
package session

import (
	"io"
	"log/slog"

	"github.com/san-kum/synapse/internal/clock"
	"github.com/san-kum/synapse/internal/modal"
	"github.com/san-kum/synapse/internal/reveal"
	"github.com/san-kum/synapse/internal/theme"
)

// NoSelection is the selection value when no project is highlighted.
const NoSelection = -1

// Page regions observed for reveal.
const (
	RegionProjects reveal.Region = "projects"
	RegionSkills   reveal.Region = "skills"
	RegionContact  reveal.Region = "contact"
)

// Regions lists the observed regions in page order.
var Regions = []reveal.Region{RegionProjects, RegionSkills, RegionContact}

// Background receives the active theme and density every time either
// changes.
type Background interface {
	Configure(t theme.Name, density float64)
}

// Options configures a Session. Zero values are valid except for the ports.
type Options struct {
	Projects   int
	Scheduler  clock.Scheduler
	ScrollLock modal.ScrollLock
	Observer   reveal.Observer
	Background Background
	Logger     *slog.Logger
}

type Session struct {
	log      *slog.Logger
	bg       Background
	themes   *theme.Controller
	density  Density
	selected int
	projects int
	modal    *modal.Controller
	reveal   *reveal.Controller
}

// New builds a fresh session: CYBER, density 1.0, nothing selected, overlay
// closed and every region unrevealed. The background is configured once
// before New returns.
func New(opts Options) *Session {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s := &Session{
		log:      log,
		bg:       opts.Background,
		themes:   theme.NewController(),
		density:  DefaultDensity,
		selected: NoSelection,
		projects: opts.Projects,
		modal:    modal.NewController(opts.Scheduler, opts.ScrollLock),
		reveal:   reveal.NewController(opts.Observer),
	}
	s.themes.Subscribe(theme.ListenerFunc(func(n theme.Name) {
		s.log.Debug("theme changed", "theme", n)
		s.push()
	}))
	s.modal.OnChange(func(from, to modal.State) {
		s.log.Debug("modal transition", "from", from, "to", to)
	})
	s.reveal.OnReveal(func(r reveal.Region) {
		s.log.Debug("region revealed", "region", r)
	})
	s.push()
	for _, r := range Regions {
		s.reveal.Watch(r)
	}
	return s
}

func (s *Session) push() {
	if s.bg != nil {
		s.bg.Configure(s.themes.Active(), float64(s.density))
	}
}

func (s *Session) Theme() theme.Name { return s.themes.Active() }

func (s *Session) Density() Density { return s.density }

// Selected returns the highlighted project index or NoSelection.
func (s *Session) Selected() int { return s.selected }

func (s *Session) Modal() modal.State { return s.modal.State() }

func (s *Session) Revealed(r reveal.Region) bool { return s.reveal.Revealed(r) }

func (s *Session) RevealFlags() map[reveal.Region]bool { return s.reveal.Flags() }

// OnModalChange registers fn for every overlay transition.
func (s *Session) OnModalChange(fn func(from, to modal.State)) { s.modal.OnChange(fn) }

// OnReveal registers fn for the first reveal of each region.
func (s *Session) OnReveal(fn func(reveal.Region)) {
	s.reveal.OnReveal(func(r reveal.Region) {
		s.log.Debug("region revealed", "region", r)
		fn(r)
	})
}

// CycleTheme advances to the next theme and reconfigures the background.
func (s *Session) CycleTheme() theme.Name { return s.themes.Cycle() }

// SetDensity clamps v into range and reconfigures the background when the
// stored value changes. NaN is ignored.
func (s *Session) SetDensity(v float64) Density {
	d, ok := ClampDensity(v)
	if !ok {
		s.log.Debug("density rejected", "value", v)
		return s.density
	}
	if d != s.density {
		s.density = d
		s.log.Debug("density changed", "density", float64(d))
		s.push()
	}
	return s.density
}

// Select highlights project idx. Indices outside the project list are
// ignored.
func (s *Session) Select(idx int) {
	if idx < 0 || idx >= s.projects {
		return
	}
	s.selected = idx
}

// Expand opens the detail overlay on project idx.
func (s *Session) Expand(idx int) {
	if idx < 0 || idx >= s.projects {
		return
	}
	s.modal.Expand(idx)
}

func (s *Session) Close() { s.modal.Close() }

// Teardown cancels the overlay timer and every reveal subscription.
func (s *Session) Teardown() {
	s.modal.Teardown()
	s.reveal.Teardown()
}
