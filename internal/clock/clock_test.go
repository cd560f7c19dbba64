package clock

import (
	"testing"
	"time"
)

func TestManualFiresAtDeadline(t *testing.T) {
	m := NewManual()
	fired := 0
	m.After(500*time.Millisecond, func() { fired++ })

	m.Advance(499 * time.Millisecond)
	if fired != 0 {
		t.Fatalf("fired early at %v", m.Now())
	}
	m.Advance(time.Millisecond)
	if fired != 1 {
		t.Fatalf("expected 1 fire, got %d", fired)
	}
	m.Advance(time.Second)
	if fired != 1 {
		t.Errorf("action fired twice")
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual()
	fired := false
	h := m.After(time.Millisecond, func() { fired = true })
	h.Cancel()
	h.Cancel()

	m.Advance(time.Second)
	if fired {
		t.Error("cancelled action fired")
	}
	if m.Pending() != 0 {
		t.Errorf("expected no pending actions, got %d", m.Pending())
	}
}

func TestManualOrder(t *testing.T) {
	m := NewManual()
	var order []int
	m.After(30*time.Millisecond, func() { order = append(order, 3) })
	m.After(10*time.Millisecond, func() { order = append(order, 1) })
	m.After(20*time.Millisecond, func() {
		order = append(order, 2)
		m.After(5*time.Millisecond, func() { order = append(order, 25) })
	})

	m.Advance(time.Second)
	want := []int{1, 2, 25, 3}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: expected %d, got %d", i, want[i], order[i])
		}
	}
}
