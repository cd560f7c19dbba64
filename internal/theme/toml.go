package theme

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/lipgloss"
)

// Table maps every theme to the palette used to draw it.
type Table map[Name]Palette

// DefaultTable returns a copy of the built-in palettes.
func DefaultTable() Table {
	t := make(Table, len(palettes))
	for n, p := range palettes {
		t[n] = p
	}
	return t
}

// Get returns the palette for n, falling back to the built-in one.
func (t Table) Get(n Name) Palette {
	if p, ok := t[n]; ok {
		return p
	}
	return PaletteFor(n)
}

type tomlPalette struct {
	Accent     string `toml:"accent"`
	Glow       string `toml:"glow"`
	Node       string `toml:"node"`
	Edge       string `toml:"edge"`
	Pulse      string `toml:"pulse"`
	Background string `toml:"background"`
	Text       string `toml:"text"`
	Muted      string `toml:"muted"`
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadOverrides parses TOML palette overrides on top of base. Each table is
// keyed by theme name; empty keys keep the base colour.
//
//	[nova]
//	accent = "#ff7a00"
func LoadOverrides(data []byte, base Table) (Table, error) {
	var raw map[string]tomlPalette
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("theme: parse TOML: %w", err)
	}

	out := make(Table, len(base))
	for n, p := range base {
		out[n] = p
	}
	for key, tp := range raw {
		name, err := ParseName(key)
		if err != nil {
			return nil, err
		}
		p := out.Get(name)
		fields := []struct {
			val string
			dst *lipgloss.Color
		}{
			{tp.Accent, &p.Accent},
			{tp.Glow, &p.Glow},
			{tp.Node, &p.Node},
			{tp.Edge, &p.Edge},
			{tp.Pulse, &p.Pulse},
			{tp.Background, &p.Background},
			{tp.Text, &p.Text},
			{tp.Muted, &p.Muted},
		}
		for _, f := range fields {
			if f.val == "" {
				continue
			}
			if !hexColor.MatchString(f.val) {
				return nil, fmt.Errorf("%w: %s has %q", ErrBadColor, name, f.val)
			}
			*f.dst = lipgloss.Color(f.val)
		}
		out[name] = p
	}
	return out, nil
}

// LoadOverridesFile reads path and applies it over the built-in palettes.
func LoadOverridesFile(path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return LoadOverrides(data, DefaultTable())
}
