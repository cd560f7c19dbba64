package session_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/synapse/internal/clock"
	"github.com/san-kum/synapse/internal/modal"
	"github.com/san-kum/synapse/internal/reveal"
	"github.com/san-kum/synapse/internal/session"
	"github.com/san-kum/synapse/internal/theme"
)

type pageLock struct{ locked bool }

func (p *pageLock) Lock()   { p.locked = true }
func (p *pageLock) Unlock() { p.locked = false }

type config struct {
	theme   theme.Name
	density float64
}

type recordingBackground struct{ pushes []config }

func (b *recordingBackground) Configure(t theme.Name, d float64) {
	b.pushes = append(b.pushes, config{t, d})
}

func (b *recordingBackground) last() config { return b.pushes[len(b.pushes)-1] }

type viewport struct {
	subs map[reveal.Region]func(bool)
}

func (v *viewport) Observe(r reveal.Region, _ float64, fn func(bool)) func() {
	v.subs[r] = fn
	return func() { delete(v.subs, r) }
}

func (v *viewport) scrollTo(r reveal.Region) {
	for region, fn := range v.subs {
		fn(region == r)
	}
}

var _ = Describe("Session", func() {
	var (
		sched *clock.Manual
		lock  *pageLock
		bg    *recordingBackground
		view  *viewport
		s     *session.Session
	)

	BeforeEach(func() {
		sched = clock.NewManual()
		lock = &pageLock{}
		bg = &recordingBackground{}
		view = &viewport{subs: make(map[reveal.Region]func(bool))}
		s = session.New(session.Options{
			Projects:   4,
			Scheduler:  sched,
			ScrollLock: lock,
			Observer:   view,
			Background: bg,
		})
	})

	It("starts from a fresh load", func() {
		Expect(s.Theme()).To(Equal(theme.Cyber))
		Expect(s.Density()).To(Equal(session.Density(1.0)))
		Expect(s.Selected()).To(Equal(session.NoSelection))
		Expect(s.Modal().Phase).To(Equal(modal.Closed))
		Expect(s.RevealFlags()).To(HaveLen(len(session.Regions)))
		for _, r := range session.Regions {
			Expect(s.Revealed(r)).To(BeFalse())
		}
		Expect(bg.pushes).To(Equal([]config{{theme.Cyber, 1.0}}))
	})

	It("runs the select, expand, close scenario", func() {
		s.Select(2)
		Expect(s.Selected()).To(Equal(2))

		s.Expand(2)
		Expect(s.Modal()).To(Equal(modal.State{Phase: modal.Open, Project: 2}))
		Expect(lock.locked).To(BeTrue())

		s.Close()
		Expect(s.Modal()).To(Equal(modal.State{Phase: modal.Closing, Project: 2}))
		Expect(lock.locked).To(BeTrue())

		sched.Advance(modal.CloseDelay)
		Expect(s.Modal().Phase).To(Equal(modal.Closed))
		Expect(lock.locked).To(BeFalse())
		Expect(s.Selected()).To(Equal(2))
	})

	Describe("CycleTheme", func() {
		It("pushes every theme to the background in order", func() {
			for range theme.Order {
				s.CycleTheme()
			}
			Expect(s.Theme()).To(Equal(theme.Cyber))
			Expect(bg.pushes).To(Equal([]config{
				{theme.Cyber, 1.0},
				{theme.Nova, 1.0},
				{theme.Void, 1.0},
				{theme.Nebula, 1.0},
				{theme.Cyber, 1.0},
			}))
		})
	})

	Describe("SetDensity", func() {
		It("clamps and pushes the stored value", func() {
			Expect(s.SetDensity(7)).To(Equal(session.MaxDensity))
			Expect(bg.last()).To(Equal(config{theme.Cyber, 2.5}))

			Expect(s.SetDensity(0.44)).To(Equal(session.Density(0.4)))
			Expect(bg.last().density).To(BeNumerically("~", 0.4, 1e-9))
		})

		It("does not push when the value is unchanged", func() {
			s.SetDensity(1.02)
			Expect(bg.pushes).To(HaveLen(1))
		})

		It("ignores NaN", func() {
			s.SetDensity(math.NaN())
			Expect(s.Density()).To(Equal(session.DefaultDensity))
			Expect(bg.pushes).To(HaveLen(1))
		})
	})

	Describe("Select", func() {
		It("keeps at most one project and ignores bad indices", func() {
			s.Select(1)
			s.Select(3)
			Expect(s.Selected()).To(Equal(3))

			s.Select(4)
			s.Select(-1)
			Expect(s.Selected()).To(Equal(3))
		})

		It("is independent of the overlay", func() {
			s.Select(0)
			s.Expand(1)
			Expect(s.Selected()).To(Equal(0))
		})
	})

	It("ignores expand for unknown projects", func() {
		s.Expand(9)
		Expect(s.Modal().Phase).To(Equal(modal.Closed))
		Expect(lock.locked).To(BeFalse())
	})

	It("reveals regions as they scroll into view", func() {
		var revealed []reveal.Region
		s.OnReveal(func(r reveal.Region) { revealed = append(revealed, r) })

		view.scrollTo(session.RegionSkills)
		Expect(s.Revealed(session.RegionSkills)).To(BeTrue())
		Expect(s.Revealed(session.RegionProjects)).To(BeFalse())

		view.scrollTo(session.RegionProjects)
		Expect(s.Revealed(session.RegionSkills)).To(BeTrue())
		Expect(revealed).To(Equal([]reveal.Region{session.RegionSkills, session.RegionProjects}))
		Expect(view.subs).To(HaveLen(1))
	})

	It("tears down timers and subscriptions", func() {
		s.Expand(1)
		s.Close()
		s.Teardown()

		Expect(view.subs).To(BeEmpty())
		Expect(lock.locked).To(BeFalse())
		sched.Advance(modal.CloseDelay)
		Expect(s.Modal()).To(Equal(modal.State{Phase: modal.Closing, Project: 1}))
	})
})
