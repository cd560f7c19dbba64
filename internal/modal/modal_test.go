package modal_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/synapse/internal/clock"
	"github.com/san-kum/synapse/internal/modal"
)

type countingLock struct {
	locks, unlocks int
}

func (l *countingLock) Lock()   { l.locks++ }
func (l *countingLock) Unlock() { l.unlocks++ }

func (l *countingLock) held() bool { return l.locks > l.unlocks }

var _ = Describe("Controller", func() {
	var (
		sched *clock.Manual
		lock  *countingLock
		ctrl  *modal.Controller
	)

	BeforeEach(func() {
		sched = clock.NewManual()
		lock = &countingLock{}
		ctrl = modal.NewController(sched, lock)
	})

	It("starts closed with the page unlocked", func() {
		Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Closed}))
		Expect(lock.locks).To(BeZero())
	})

	Describe("Close", func() {
		It("is a no-op while closed", func() {
			ctrl.Close()
			Expect(ctrl.State().Phase).To(Equal(modal.Closed))
			Expect(sched.Pending()).To(BeZero())
			Expect(lock.unlocks).To(BeZero())
		})

		It("enters closing immediately and closes after the delay", func() {
			ctrl.Expand(2)
			ctrl.Close()
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Closing, Project: 2}))
			Expect(lock.held()).To(BeTrue())

			sched.Advance(modal.CloseDelay - time.Millisecond)
			Expect(ctrl.State().Phase).To(Equal(modal.Closing))

			sched.Advance(time.Millisecond)
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Closed}))
			Expect(lock.locks).To(Equal(1))
			Expect(lock.unlocks).To(Equal(1))
		})

		It("is idempotent while closing", func() {
			ctrl.Expand(1)
			ctrl.Close()
			ctrl.Close()
			Expect(sched.Pending()).To(Equal(1))

			sched.Advance(modal.CloseDelay)
			Expect(ctrl.State().Phase).To(Equal(modal.Closed))
			Expect(lock.unlocks).To(Equal(1))
		})
	})

	Describe("Expand", func() {
		It("locks scroll once per open", func() {
			ctrl.Expand(3)
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Open, Project: 3}))
			Expect(lock.locks).To(Equal(1))

			ctrl.Expand(4)
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Open, Project: 4}))
			Expect(lock.locks).To(Equal(1))
		})

		It("cancels a pending close when re-opened", func() {
			ctrl.Expand(3)
			ctrl.Close()
			ctrl.Expand(5)
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Open, Project: 5}))
			Expect(sched.Pending()).To(BeZero())

			sched.Advance(10 * modal.CloseDelay)
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Open, Project: 5}))
			Expect(lock.locks).To(Equal(1))
			Expect(lock.unlocks).To(BeZero())
		})

		It("never reports an intermediate state for the old project", func() {
			var seen []modal.State
			ctrl.OnChange(func(_, to modal.State) { seen = append(seen, to) })

			ctrl.Expand(3)
			ctrl.Expand(5)
			sched.Advance(time.Second)

			Expect(seen).To(Equal([]modal.State{
				{Phase: modal.Open, Project: 3},
				{Phase: modal.Open, Project: 5},
			}))
		})

		It("uses a fresh timer after a cancelled close", func() {
			ctrl.Expand(1)
			ctrl.Close()
			sched.Advance(400 * time.Millisecond)
			ctrl.Expand(2)
			ctrl.Close()

			sched.Advance(200 * time.Millisecond)
			Expect(ctrl.State()).To(Equal(modal.State{Phase: modal.Closing, Project: 2}))

			sched.Advance(300 * time.Millisecond)
			Expect(ctrl.State().Phase).To(Equal(modal.Closed))
		})
	})

	Describe("Teardown", func() {
		It("prevents a pending close from firing", func() {
			var transitions int
			ctrl.Expand(2)
			ctrl.Close()
			ctrl.OnChange(func(_, _ modal.State) { transitions++ })

			ctrl.Teardown()
			sched.Advance(time.Second)

			Expect(transitions).To(BeZero())
			Expect(sched.Pending()).To(BeZero())
		})

		It("releases a held scroll lock exactly once", func() {
			ctrl.Expand(0)
			ctrl.Teardown()
			ctrl.Teardown()
			Expect(lock.locks).To(Equal(1))
			Expect(lock.unlocks).To(Equal(1))
		})

		It("ignores mutators afterwards", func() {
			ctrl.Teardown()
			ctrl.Expand(1)
			ctrl.Close()
			Expect(ctrl.State().Phase).To(Equal(modal.Closed))
			Expect(lock.locks).To(BeZero())
		})
	})

	It("formats states", func() {
		Expect(modal.State{Phase: modal.Closing, Project: 2}.String()).To(Equal("closing(2)"))
		Expect(modal.State{}.String()).To(Equal("closed"))
	})
})
