package background

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/synapse/internal/theme"
)

func TestConfigureScalesNodes(t *testing.T) {
	n := New(40, 1)
	if n.Nodes() != 40 {
		t.Fatalf("expected 40 nodes at density 1.0, got %d", n.Nodes())
	}

	n.Configure(theme.Cyber, 2.5)
	if n.Nodes() != 100 {
		t.Errorf("expected 100 nodes at density 2.5, got %d", n.Nodes())
	}

	n.Configure(theme.Cyber, 0.2)
	if n.Nodes() != 8 {
		t.Errorf("expected 8 nodes at density 0.2, got %d", n.Nodes())
	}

	n.Configure(theme.Cyber, 0.01)
	if n.Nodes() != minNodes {
		t.Errorf("expected floor of %d nodes, got %d", minNodes, n.Nodes())
	}
}

func TestConfigureFollowsTheme(t *testing.T) {
	n := New(20, 1)
	for _, th := range theme.Order {
		n.Configure(th, 1.0)
		if n.Theme() != th {
			t.Errorf("expected %s, got %s", th, n.Theme())
		}
		if n.motion != motions[th] {
			t.Errorf("%s: motion not applied", th)
		}
	}
}

func TestStepKeepsNodesInside(t *testing.T) {
	n := New(30, 7)
	n.Configure(theme.Nova, 1.5)
	for i := 0; i < 2000; i++ {
		n.Step(0.05)
	}
	for i, nd := range n.nodes {
		if nd.x < 0 || nd.x > 1 || nd.y < 0 || nd.y > 1 {
			t.Fatalf("node %d escaped: (%.3f, %.3f)", i, nd.x, nd.y)
		}
	}
	for _, p := range n.pulses {
		if p.t < 0 || p.t >= 1 {
			t.Fatalf("pulse out of range: %v", p.t)
		}
	}
}

func TestActivityHistoryIsBounded(t *testing.T) {
	n := New(30, 3)
	for i := 0; i < historyCapacity+50; i++ {
		n.Step(1.0 / 30)
	}
	if got := len(n.Activity()); got != historyCapacity {
		t.Errorf("expected %d samples, got %d", historyCapacity, got)
	}
}

func TestSameSeedSameFrame(t *testing.T) {
	a, b := New(25, 42), New(25, 42)
	for i := 0; i < 30; i++ {
		a.Step(0.1)
		b.Step(0.1)
	}
	if a.Frame(40, 12).String() != b.Frame(40, 12).String() {
		t.Error("same seed produced different frames")
	}
}

func TestRenderSize(t *testing.T) {
	n := New(30, 9)
	n.Pointer(3, 2)
	n.Pointer(4, 2)
	n.Step(0.1)

	out := n.Render(50, 10, theme.PaletteFor(theme.Nebula))
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("expected 10 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 50 {
			t.Errorf("line %d: expected width 50, got %d", i, w)
		}
	}
	if n.Render(0, 10, theme.Palette{}) != "" {
		t.Error("expected empty render for zero width")
	}
}

func TestPointerTrail(t *testing.T) {
	n := New(10, 1)
	for i := 0; i < 20; i++ {
		n.Pointer(i, 0)
	}
	n.Pointer(19, 0)
	if len(n.trail) != trailLength {
		t.Errorf("expected trail of %d, got %d", trailLength, len(n.trail))
	}
	if n.trail[len(n.trail)-1] != (point{19, 0}) {
		t.Errorf("unexpected trail head %v", n.trail[len(n.trail)-1])
	}
}
