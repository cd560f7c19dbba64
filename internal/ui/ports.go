package ui

import (
	"sort"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/synapse/internal/clock"
	"github.com/san-kum/synapse/internal/reveal"
)

// timerMsg delivers a scheduled action back into Update.
type timerMsg struct{ id uint64 }

// teaScheduler implements clock.Scheduler on top of tea.Tick. Actions run
// from Update, never from the tick goroutine.
type teaScheduler struct {
	next    uint64
	pending map[uint64]func()
	queued  []tea.Cmd
	stopped bool
}

func newTeaScheduler() *teaScheduler {
	return &teaScheduler{pending: make(map[uint64]func())}
}

type teaHandle struct {
	s  *teaScheduler
	id uint64
}

func (h teaHandle) Cancel() { delete(h.s.pending, h.id) }

func (s *teaScheduler) After(d time.Duration, fn func()) clock.Handle {
	s.next++
	id := s.next
	if !s.stopped {
		s.pending[id] = fn
		s.queued = append(s.queued, tea.Tick(d, func(time.Time) tea.Msg { return timerMsg{id: id} }))
	}
	return teaHandle{s: s, id: id}
}

func (s *teaScheduler) fire(id uint64) {
	fn, ok := s.pending[id]
	if !ok {
		return
	}
	delete(s.pending, id)
	fn()
}

// drain returns the ticks queued since the last call.
func (s *teaScheduler) drain() tea.Cmd {
	if len(s.queued) == 0 {
		return nil
	}
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

func (s *teaScheduler) stop() {
	s.stopped = true
	s.pending = make(map[uint64]func())
	s.queued = nil
}

// pageScroll is the page's scroll lock; while held the viewport ignores
// scroll input.
type pageScroll struct {
	locked bool
}

func (p *pageScroll) Lock()   { p.locked = true }
func (p *pageScroll) Unlock() { p.locked = false }

type span struct{ start, end int } // [start, end) in page lines

type observation struct {
	region    reveal.Region
	threshold float64
	fn        func(bool)
	last      *bool
}

// viewportObserver reports which page regions intersect the visible window
// of the page viewport.
type viewportObserver struct {
	next   int
	subs   map[int]*observation
	spans  map[reveal.Region]span
	offset int
	height int
	ready  bool
}

func newViewportObserver() *viewportObserver {
	return &viewportObserver{subs: make(map[int]*observation)}
}

func (o *viewportObserver) Observe(r reveal.Region, threshold float64, fn func(bool)) func() {
	o.next++
	id := o.next
	o.subs[id] = &observation{region: r, threshold: threshold, fn: fn}
	if o.ready {
		o.evaluate(id)
	}
	return func() { delete(o.subs, id) }
}

// update records the current layout and notifies subscribers whose
// intersection state changed.
func (o *viewportObserver) update(spans map[reveal.Region]span, offset, height int) {
	o.spans, o.offset, o.height, o.ready = spans, offset, height, true
	ids := make([]int, 0, len(o.subs))
	for id := range o.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		o.evaluate(id)
	}
}

func (o *viewportObserver) evaluate(id int) {
	obs, ok := o.subs[id]
	if !ok {
		return
	}
	sp, ok := o.spans[obs.region]
	if !ok {
		return
	}
	in := visibleFraction(sp, o.offset, o.height) >= obs.threshold
	if obs.last != nil && *obs.last == in {
		return
	}
	obs.last = &in
	obs.fn(in)
}

// visibleFraction is the share of sp inside the window [offset, offset+height).
func visibleFraction(sp span, offset, height int) float64 {
	total := sp.end - sp.start
	if total <= 0 || height <= 0 {
		return 0
	}
	lo, hi := sp.start, sp.end
	if offset > lo {
		lo = offset
	}
	if offset+height < hi {
		hi = offset + height
	}
	if hi <= lo {
		return 0
	}
	if hi-lo == height {
		// a region taller than the window counts as fully in view while it fills it
		return 1
	}
	return float64(hi-lo) / float64(total)
}
