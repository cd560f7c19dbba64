package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Name identifies one of the fixed network themes.
type Name int

const (
	Cyber Name = iota
	Nova
	Void
	Nebula
)

// Order is the cycling order; the first entry is the initial theme.
var Order = []Name{Cyber, Nova, Void, Nebula}

var names = [...]string{"CYBER", "NOVA", "VOID", "NEBULA"}

func (n Name) String() string {
	if n < 0 || int(n) >= len(names) {
		return fmt.Sprintf("Name(%d)", int(n))
	}
	return names[n]
}

// Next returns the theme after n, wrapping from the last to the first.
func (n Name) Next() Name {
	for i, t := range Order {
		if t == n {
			return Order[(i+1)%len(Order)]
		}
	}
	return Order[0]
}

// ParseName resolves a theme name case-insensitively.
func ParseName(s string) (Name, error) {
	for i, name := range names {
		if strings.EqualFold(name, strings.TrimSpace(s)) {
			return Name(i), nil
		}
	}
	return Cyber, fmt.Errorf("%w: %q", ErrUnknownTheme, s)
}

// Palette defines the colours bound to a theme
type Palette struct {
	Accent     lipgloss.Color
	Glow       lipgloss.Color
	Node       lipgloss.Color
	Edge       lipgloss.Color
	Pulse      lipgloss.Color
	Background lipgloss.Color
	Text       lipgloss.Color
	Muted      lipgloss.Color
}

var palettes = map[Name]Palette{
	Cyber: {
		Accent:     lipgloss.Color("#00f2ff"),
		Glow:       lipgloss.Color("#006d73"), // rgba(0,242,255,.4) over black
		Node:       lipgloss.Color("#00f2ff"),
		Edge:       lipgloss.Color("#0b4f5c"),
		Pulse:      lipgloss.Color("#b8fbff"),
		Background: lipgloss.Color("#050608"),
		Text:       lipgloss.Color("#f4f4f5"),
		Muted:      lipgloss.Color("#71717a"),
	},
	Nova: {
		Accent:     lipgloss.Color("#ff4d4d"),
		Glow:       lipgloss.Color("#662020"),
		Node:       lipgloss.Color("#ff4d4d"),
		Edge:       lipgloss.Color("#5c1a1a"),
		Pulse:      lipgloss.Color("#ffc2c2"),
		Background: lipgloss.Color("#080505"),
		Text:       lipgloss.Color("#f4f4f5"),
		Muted:      lipgloss.Color("#7a7171"),
	},
	Void: {
		Accent:     lipgloss.Color("#ffffff"),
		Glow:       lipgloss.Color("#333333"), // rgba(255,255,255,.2)
		Node:       lipgloss.Color("#e4e4e7"),
		Edge:       lipgloss.Color("#3f3f46"),
		Pulse:      lipgloss.Color("#ffffff"),
		Background: lipgloss.Color("#000000"),
		Text:       lipgloss.Color("#fafafa"),
		Muted:      lipgloss.Color("#71717a"),
	},
	Nebula: {
		Accent:     lipgloss.Color("#aa00ff"),
		Glow:       lipgloss.Color("#440066"),
		Node:       lipgloss.Color("#c04dff"),
		Edge:       lipgloss.Color("#3b0a57"),
		Pulse:      lipgloss.Color("#e6b3ff"),
		Background: lipgloss.Color("#07040a"),
		Text:       lipgloss.Color("#f4f4f5"),
		Muted:      lipgloss.Color("#7a717f"),
	},
}

// PaletteFor returns the colours of theme n. Unknown names get the CYBER
// palette.
func PaletteFor(n Name) Palette {
	if p, ok := palettes[n]; ok {
		return p
	}
	return palettes[Cyber]
}

// Listener is notified after the active theme changes.
type Listener interface {
	ThemeChanged(Name)
}

// ListenerFunc adapts a function to a Listener.
type ListenerFunc func(Name)

func (f ListenerFunc) ThemeChanged(n Name) { f(n) }

// Controller holds the active theme.
type Controller struct {
	active    Name
	listeners []Listener
}

func NewController() *Controller {
	return &Controller{active: Order[0]}
}

func (c *Controller) Active() Name { return c.active }

// Subscribe registers l for every subsequent change.
func (c *Controller) Subscribe(l Listener) {
	c.listeners = append(c.listeners, l)
}

// Cycle advances to the next theme and notifies listeners.
func (c *Controller) Cycle() Name {
	c.active = c.active.Next()
	for _, l := range c.listeners {
		l.ThemeChanged(c.active)
	}
	return c.active
}
