package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/san-kum/synapse/internal/background"
	"github.com/san-kum/synapse/internal/clock"
	"github.com/san-kum/synapse/internal/modal"
	"github.com/san-kum/synapse/internal/reveal"
	"github.com/san-kum/synapse/internal/session"
	"github.com/spf13/cobra"
)

// demoLock counts lock transitions for the demo output.
type demoLock struct {
	held          bool
	locks, unlock int
}

func (l *demoLock) Lock() {
	l.held = true
	l.locks++
}

func (l *demoLock) Unlock() {
	l.held = false
	l.unlock++
}

// demoPage is a scripted observer: scrolling to a region makes it the only
// one in view.
type demoPage struct {
	subs map[reveal.Region]func(bool)
}

func (p *demoPage) Observe(r reveal.Region, _ float64, fn func(bool)) func() {
	p.subs[r] = fn
	return func() { delete(p.subs, r) }
}

func (p *demoPage) scrollTo(target reveal.Region) {
	for _, r := range session.Regions {
		if fn, ok := p.subs[r]; ok {
			fn(r == target)
		}
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, closeLog, err := newLogger(cfg.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	portfolio, _, err := loadAssets(cfg, log)
	if err != nil {
		return err
	}

	clk := clock.NewManual()
	lock := &demoLock{}
	page := &demoPage{subs: make(map[reveal.Region]func(bool))}
	net := background.New(cfg.Nodes, cfg.Seed)
	s := session.New(session.Options{
		Projects:   len(portfolio.Projects),
		Scheduler:  clk,
		ScrollLock: lock,
		Observer:   page,
		Background: net,
		Logger:     log,
	})
	defer s.Teardown()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "T\tSTEP\tTHEME\tDENSITY\tNODES\tSELECTED\tOVERLAY\tSCROLL\tREVEALED")
	row := func(step string) {
		scroll := "free"
		if lock.held {
			scroll = "locked"
		}
		var shown []reveal.Region
		for _, r := range session.Regions {
			if s.Revealed(r) {
				shown = append(shown, r)
			}
		}
		fmt.Fprintf(w, "%v\t%s\t%s\t%.1f\t%d\t%d\t%s\t%s\t%v\n",
			clk.Now(), step, s.Theme(), float64(s.Density()), net.Nodes(), s.Selected(), s.Modal(), scroll, shown)
	}

	row("load")
	page.scrollTo(session.RegionProjects)
	row("scroll to projects")
	s.Select(2)
	row("select 2")
	s.Expand(2)
	row("expand 2")
	s.Close()
	row("close")
	clk.Advance(modal.CloseDelay - time.Millisecond)
	row("wait 499ms")
	clk.Advance(time.Millisecond)
	row("wait 1ms")

	s.Expand(3)
	s.Close()
	clk.Advance(200 * time.Millisecond)
	s.Expand(len(portfolio.Projects) - 1)
	row("reopen mid-exit")
	clk.Advance(modal.CloseDelay)
	row("wait 500ms")
	s.Close()
	clk.Advance(modal.CloseDelay)
	row("close")

	for range 4 {
		s.CycleTheme()
		row("rewire")
	}
	s.SetDensity(2.0)
	row("density 2.0")
	s.SetDensity(9)
	row("density 9")
	page.scrollTo(session.RegionSkills)
	page.scrollTo(session.RegionContact)
	page.scrollTo(session.RegionProjects)
	row("scroll through")

	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\nscroll lock: %d lock, %d unlock\n", lock.locks, lock.unlock)
	return nil
}
