// Package modal implements the lifecycle of the project-detail overlay.
//
//	Closed --Expand(id)--> Open(id) --Close--> Closing(id) --500ms--> Closed
//
// Expand from any phase re-opens on the new project and cancels a pending
// close. The page scroll lock is taken on Closed->Open and released on
// Closing->Closed.
package modal

import (
	"fmt"
	"time"

	"github.com/san-kum/synapse/internal/clock"
)

// CloseDelay is how long the exit animation runs before the overlay is gone.
const CloseDelay = 500 * time.Millisecond

type Phase int

const (
	Closed Phase = iota
	Open
	Closing
)

func (p Phase) String() string {
	switch p {
	case Closed:
		return "closed"
	case Open:
		return "open"
	case Closing:
		return "closing"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// State is a snapshot of the overlay. Project is meaningful only when the
// phase is Open or Closing.
type State struct {
	Phase   Phase
	Project int
}

func (s State) String() string {
	if s.Phase == Closed {
		return "closed"
	}
	return fmt.Sprintf("%s(%d)", s.Phase, s.Project)
}

// ScrollLock suppresses scrolling of the page behind the overlay.
type ScrollLock interface {
	Lock()
	Unlock()
}

// Controller owns the overlay state. It is not safe for concurrent use; all
// calls, including scheduled expiries, must come from one event loop.
type Controller struct {
	state     State
	sched     clock.Scheduler
	lock      ScrollLock
	locked    bool
	pending   clock.Handle
	torn      bool
	listeners []func(from, to State)
}

func NewController(sched clock.Scheduler, lock ScrollLock) *Controller {
	return &Controller{sched: sched, lock: lock}
}

func (c *Controller) State() State { return c.state }

// OnChange registers fn to run after every transition.
func (c *Controller) OnChange(fn func(from, to State)) {
	c.listeners = append(c.listeners, fn)
}

// Expand opens the overlay on project id, replacing whatever was shown.
func (c *Controller) Expand(id int) {
	if c.torn {
		return
	}
	c.cancelPending()
	if !c.locked {
		c.lock.Lock()
		c.locked = true
	}
	c.set(State{Phase: Open, Project: id})
}

// Close starts the exit animation. It does nothing unless the overlay is
// open.
func (c *Controller) Close() {
	if c.torn || c.state.Phase != Open {
		return
	}
	c.set(State{Phase: Closing, Project: c.state.Project})
	var h clock.Handle
	h = c.sched.After(CloseDelay, func() {
		if c.pending != h {
			return
		}
		c.finish()
	})
	c.pending = h
}

func (c *Controller) finish() {
	c.pending = nil
	if c.torn || c.state.Phase != Closing {
		return
	}
	c.release()
	c.set(State{Phase: Closed})
}

// Teardown cancels any pending transition and releases the scroll lock.
// The controller ignores every call afterwards.
func (c *Controller) Teardown() {
	if c.torn {
		return
	}
	c.cancelPending()
	c.release()
	c.torn = true
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
}

func (c *Controller) release() {
	if c.locked {
		c.lock.Unlock()
		c.locked = false
	}
}

func (c *Controller) set(s State) {
	from := c.state
	c.state = s
	for _, fn := range c.listeners {
		fn(from, s)
	}
}
