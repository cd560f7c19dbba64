// Package reveal tracks one-shot entrance flags for page regions.
//
// A region's flag flips to true the first time the observer reports it as
// intersecting the viewport, after which the region is no longer observed.
// Flags never revert.
package reveal

import (
	"sort"
	"time"
)

// Threshold is the visible fraction of a region that counts as in view.
const Threshold = 0.10

// StaggerStep separates the entrance of neighbouring items in a list.
const StaggerStep = 150 * time.Millisecond

// Region names an observed part of the page.
type Region string

// Observer reports viewport intersection changes for a region. The returned
// function stops further callbacks.
type Observer interface {
	Observe(r Region, threshold float64, fn func(intersecting bool)) (unsubscribe func())
}

// Controller owns the reveal flags. Calls must come from one event loop.
type Controller struct {
	obs      Observer
	flags    map[Region]bool
	subs     map[Region]func()
	torn     bool
	onReveal func(Region)
}

func NewController(obs Observer) *Controller {
	return &Controller{
		obs:   obs,
		flags: make(map[Region]bool),
		subs:  make(map[Region]func()),
	}
}

// OnReveal registers fn to run when a region is first revealed.
func (c *Controller) OnReveal(fn func(Region)) { c.onReveal = fn }

// Watch starts observing r. Watching a region twice, or one already
// revealed, does nothing.
func (c *Controller) Watch(r Region) {
	if c.torn {
		return
	}
	if _, ok := c.flags[r]; ok {
		return
	}
	c.flags[r] = false
	unsub := c.obs.Observe(r, Threshold, func(intersecting bool) {
		c.handle(r, intersecting)
	})
	if c.flags[r] {
		// revealed synchronously during Observe
		if unsub != nil {
			unsub()
		}
		return
	}
	c.subs[r] = unsub
}

func (c *Controller) handle(r Region, intersecting bool) {
	if c.torn || !intersecting || c.flags[r] {
		return
	}
	c.flags[r] = true
	if unsub, ok := c.subs[r]; ok {
		delete(c.subs, r)
		if unsub != nil {
			unsub()
		}
	}
	if c.onReveal != nil {
		c.onReveal(r)
	}
}

func (c *Controller) Revealed(r Region) bool { return c.flags[r] }

// Flags returns a copy of every watched region's flag.
func (c *Controller) Flags() map[Region]bool {
	out := make(map[Region]bool, len(c.flags))
	for r, v := range c.flags {
		out[r] = v
	}
	return out
}

// Observing lists the regions still subscribed, sorted.
func (c *Controller) Observing() []Region {
	out := make([]Region, 0, len(c.subs))
	for r := range c.subs {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Teardown unsubscribes every region still observed.
func (c *Controller) Teardown() {
	if c.torn {
		return
	}
	c.torn = true
	for r, unsub := range c.subs {
		delete(c.subs, r)
		if unsub != nil {
			unsub()
		}
	}
}

// StaggerDelay is the entrance delay of the item at index in a revealed list.
func StaggerDelay(index int) time.Duration {
	if index < 0 {
		return 0
	}
	return time.Duration(index) * StaggerStep
}
