package background

import (
	"math"
	"math/rand"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/synapse/internal/theme"
)

const (
	minNodes        = 4
	historyCapacity = 120
	trailLength     = 6
)

// motion holds the per-theme animation parameters.
type motion struct {
	speed     float64 // node drift, unit square per second
	link      float64 // link radius at density 1.0
	pulseRate float64 // new pulses per link per second
	pulseVel  float64 // pulse travel, link lengths per second
}

var motions = map[theme.Name]motion{
	theme.Cyber:  {speed: 0.030, link: 0.22, pulseRate: 0.08, pulseVel: 1.2},
	theme.Nova:   {speed: 0.055, link: 0.20, pulseRate: 0.16, pulseVel: 2.0},
	theme.Void:   {speed: 0.015, link: 0.26, pulseRate: 0.03, pulseVel: 0.6},
	theme.Nebula: {speed: 0.022, link: 0.30, pulseRate: 0.10, pulseVel: 0.9},
}

type node struct {
	x, y, vx, vy float64
}

type pulse struct {
	a, b int
	t    float64
}

type point struct{ col, row int }

// Network is the animated neural-network backdrop. It satisfies
// session.Background.
type Network struct {
	rng     *rand.Rand
	base    int
	theme   theme.Name
	density float64
	motion  motion
	nodes   []node
	pulses  []pulse
	history []float64
	trail   []point
}

// New creates a network with base nodes at density 1.0.
func New(base int, seed int64) *Network {
	if base < minNodes {
		base = minNodes
	}
	n := &Network{
		rng:     rand.New(rand.NewSource(seed)),
		base:    base,
		history: make([]float64, 0, historyCapacity),
	}
	n.Configure(theme.Cyber, 1.0)
	return n
}

// Configure applies the active theme and density.
func (n *Network) Configure(t theme.Name, density float64) {
	n.theme = t
	n.density = density
	m, ok := motions[t]
	if !ok {
		m = motions[theme.Cyber]
	}
	n.motion = m
	n.populate()
}

func (n *Network) Theme() theme.Name { return n.theme }

func (n *Network) Density() float64 { return n.density }

// Target is the node count for the current density.
func (n *Network) Target() int {
	want := int(math.Round(float64(n.base) * n.density))
	if want < minNodes {
		want = minNodes
	}
	return want
}

// LinkRadius is the distance under which two nodes are connected.
func (n *Network) LinkRadius() float64 {
	// more nodes means closer neighbours; shrink links to keep the mesh legible
	return n.motion.link / math.Sqrt(math.Max(n.density, 0.2))
}

func (n *Network) populate() {
	want := n.Target()
	for len(n.nodes) < want {
		angle := n.rng.Float64() * 2 * math.Pi
		n.nodes = append(n.nodes, node{
			x:  n.rng.Float64(),
			y:  n.rng.Float64(),
			vx: math.Cos(angle),
			vy: math.Sin(angle),
		})
	}
	if len(n.nodes) > want {
		n.nodes = n.nodes[:want]
		kept := n.pulses[:0]
		for _, p := range n.pulses {
			if p.a < want && p.b < want {
				kept = append(kept, p)
			}
		}
		n.pulses = kept
	}
}

// Nodes returns the node count.
func (n *Network) Nodes() int { return len(n.nodes) }

// Links returns every connected pair (i < j).
func (n *Network) Links() [][2]int {
	r := n.LinkRadius()
	r2 := r * r
	var out [][2]int
	for i := range n.nodes {
		for j := i + 1; j < len(n.nodes); j++ {
			dx := n.nodes[i].x - n.nodes[j].x
			dy := n.nodes[i].y - n.nodes[j].y
			if dx*dx+dy*dy <= r2 {
				out = append(out, [2]int{i, j})
			}
		}
	}
	return out
}

// Step advances the animation by dt seconds.
func (n *Network) Step(dt float64) {
	if dt <= 0 {
		return
	}
	speed := n.motion.speed
	for i := range n.nodes {
		nd := &n.nodes[i]
		nd.x += nd.vx * speed * dt
		nd.y += nd.vy * speed * dt
		if nd.x < 0 {
			nd.x, nd.vx = -nd.x, -nd.vx
		} else if nd.x > 1 {
			nd.x, nd.vx = 2-nd.x, -nd.vx
		}
		if nd.y < 0 {
			nd.y, nd.vy = -nd.y, -nd.vy
		} else if nd.y > 1 {
			nd.y, nd.vy = 2-nd.y, -nd.vy
		}
	}

	kept := n.pulses[:0]
	for _, p := range n.pulses {
		p.t += n.motion.pulseVel * dt
		if p.t < 1 {
			kept = append(kept, p)
		}
	}
	n.pulses = kept

	for _, l := range n.Links() {
		if n.rng.Float64() < n.motion.pulseRate*dt {
			a, b := l[0], l[1]
			if n.rng.Intn(2) == 0 {
				a, b = b, a
			}
			n.pulses = append(n.pulses, pulse{a: a, b: b})
		}
	}

	if len(n.history) == historyCapacity {
		copy(n.history, n.history[1:])
		n.history = n.history[:historyCapacity-1]
	}
	n.history = append(n.history, float64(len(n.pulses)))
}

// Activity returns recent pulse counts, oldest first.
func (n *Network) Activity() []float64 {
	out := make([]float64, len(n.history))
	copy(out, n.history)
	return out
}

// Pointer records the cursor cell; the last few positions form a trail.
func (n *Network) Pointer(col, row int) {
	p := point{col, row}
	if len(n.trail) > 0 && n.trail[len(n.trail)-1] == p {
		return
	}
	n.trail = append(n.trail, p)
	if len(n.trail) > trailLength {
		n.trail = n.trail[len(n.trail)-trailLength:]
	}
}

type layers struct {
	edges, nodes, pulses, cursor *Canvas
}

func (n *Network) draw(w, h int) layers {
	l := layers{
		edges:  NewCanvas(w, h),
		nodes:  NewCanvas(w, h),
		pulses: NewCanvas(w, h),
		cursor: NewCanvas(w, h),
	}
	px := func(nd node) (int, int) {
		return int(nd.x * float64(w*2-1)), int(nd.y * float64(h*4-1))
	}
	for _, lk := range n.Links() {
		x0, y0 := px(n.nodes[lk[0]])
		x1, y1 := px(n.nodes[lk[1]])
		l.edges.DrawLine(x0, y0, x1, y1)
	}
	for _, nd := range n.nodes {
		x, y := px(nd)
		l.nodes.DrawDot(x, y, 1)
	}
	for _, p := range n.pulses {
		if p.a >= len(n.nodes) || p.b >= len(n.nodes) {
			continue
		}
		a, b := n.nodes[p.a], n.nodes[p.b]
		at := node{x: a.x + (b.x-a.x)*p.t, y: a.y + (b.y-a.y)*p.t}
		x, y := px(at)
		l.pulses.DrawDot(x, y, 1)
	}
	for i, c := range n.trail {
		r := 1 + i*3/len(n.trail)
		l.cursor.DrawDot(c.col*2, c.row*4+1, r)
	}
	return l
}

// Frame draws the current state into a single w x h canvas.
func (n *Network) Frame(w, h int) *Canvas {
	l := n.draw(w, h)
	l.edges.Merge(l.nodes)
	l.edges.Merge(l.pulses)
	return l.edges
}

// Render draws the network as w x h coloured cells.
func (n *Network) Render(w, h int, pal theme.Palette) string {
	if w <= 0 || h <= 0 {
		return ""
	}
	l := n.draw(w, h)
	styles := map[lipgloss.Color]lipgloss.Style{}
	style := func(c lipgloss.Color) lipgloss.Style {
		s, ok := styles[c]
		if !ok {
			s = lipgloss.NewStyle().Foreground(c)
			styles[c] = s
		}
		return s
	}

	var b strings.Builder
	for row := 0; row < h; row++ {
		var run strings.Builder
		var runColor lipgloss.Color
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runColor == "" {
				b.WriteString(run.String())
			} else {
				b.WriteString(style(runColor).Render(run.String()))
			}
			run.Reset()
		}
		for col := 0; col < w; col++ {
			var color lipgloss.Color
			switch {
			case l.cursor.Lit(col, row):
				color = pal.Accent
			case l.pulses.Lit(col, row):
				color = pal.Pulse
			case l.nodes.Lit(col, row):
				color = pal.Node
			case l.edges.Lit(col, row):
				color = pal.Edge
			}
			r := l.edges.Grid[row][col] | l.nodes.Grid[row][col] | l.pulses.Grid[row][col] | l.cursor.Grid[row][col]
			ch := " "
			if r != blank {
				ch = string(r)
			}
			if color != runColor {
				flush()
				runColor = color
			}
			run.WriteString(ch)
		}
		flush()
		if row < h-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
