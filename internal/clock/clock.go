// Package clock provides deferred, cancellable actions for single-threaded
// controllers.
//
// A [Scheduler] never runs a callback concurrently with its caller: the UI
// adapter delivers expiries through the Bubble Tea update loop, and [Manual]
// fires them synchronously from [Manual.Advance].
package clock

import (
	"sort"
	"time"
)

// Handle is an owned reference to a scheduled action.
type Handle interface {
	// Cancel prevents the action from running. It is safe to call more
	// than once and after the action has fired.
	Cancel()
}

// Scheduler runs fn once, no earlier than d from now.
type Scheduler interface {
	After(d time.Duration, fn func()) Handle
}

type manualTimer struct {
	id       uint64
	deadline time.Duration
	fn       func()
	owner    *Manual
}

func (t *manualTimer) Cancel() {
	if t.owner != nil {
		delete(t.owner.pending, t.id)
	}
}

// Manual is a deterministic Scheduler driven by virtual time.
type Manual struct {
	now     time.Duration
	nextID  uint64
	pending map[uint64]*manualTimer
}

func NewManual() *Manual {
	return &Manual{pending: make(map[uint64]*manualTimer)}
}

func (m *Manual) After(d time.Duration, fn func()) Handle {
	if d < 0 {
		d = 0
	}
	m.nextID++
	t := &manualTimer{id: m.nextID, deadline: m.now + d, fn: fn, owner: m}
	m.pending[t.id] = t
	return t
}

// Now returns the virtual time elapsed since creation.
func (m *Manual) Now() time.Duration { return m.now }

// Pending reports how many actions are still scheduled.
func (m *Manual) Pending() int { return len(m.pending) }

// Advance moves virtual time forward by d, firing every due action in
// deadline order. Actions scheduled by a firing callback run in the same
// call if they fall due.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		due := m.due(target)
		if due == nil {
			break
		}
		delete(m.pending, due.id)
		m.now = due.deadline
		due.fn()
	}
	m.now = target
}

func (m *Manual) due(target time.Duration) *manualTimer {
	ready := make([]*manualTimer, 0, len(m.pending))
	for _, t := range m.pending {
		if t.deadline <= target {
			ready = append(ready, t)
		}
	}
	if len(ready) == 0 {
		return nil
	}
	sort.Slice(ready, func(i, j int) bool {
		if ready[i].deadline == ready[j].deadline {
			return ready[i].id < ready[j].id
		}
		return ready[i].deadline < ready[j].deadline
	})
	return ready[0]
}
