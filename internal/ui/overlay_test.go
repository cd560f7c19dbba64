package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func TestPadTo(t *testing.T) {
	if got := padTo("ab", 4); got != "ab  " {
		t.Errorf("pad: got %q", got)
	}
	if got := padTo("abcdef", 3); ansi.StringWidth(got) != 3 {
		t.Errorf("truncate: got %q", got)
	}
	if got := padTo("abc", 0); got != "" {
		t.Errorf("zero width: got %q", got)
	}
}

func TestOffsets(t *testing.T) {
	tests := []struct {
		name  string
		p     placement
		wantX int
		wantY int
	}{
		{"top left", placement{}, 0, 0},
		{"centre", placement{horizontal: lipgloss.Center, vertical: lipgloss.Center}, 8, 4},
		{"bottom right", placement{horizontal: lipgloss.Right, vertical: lipgloss.Bottom}, 16, 8},
		{"margins", placement{vertical: lipgloss.Bottom, marginX: 1, marginY: 1}, 1, 7},
		{"margin past edge", placement{horizontal: lipgloss.Right, marginX: -5}, 16, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := offsets(20, 10, 4, 2, tt.p)
			if x != tt.wantX || y != tt.wantY {
				t.Errorf("got (%d,%d), want (%d,%d)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestComposeKeepsBackgroundAround(t *testing.T) {
	bg := strings.Repeat(strings.Repeat(".", 10)+"\n", 4)
	out := compose(bg, 10, 4, "XX\nXX", placement{horizontal: lipgloss.Center, vertical: lipgloss.Center})

	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	want := []string{"..........", "....XX....", "....XX....", ".........."}
	for i, l := range lines {
		if got := ansi.Strip(l); got != want[i] {
			t.Errorf("line %d: got %q, want %q", i, got, want[i])
		}
	}
}

func TestComposeEmptyForeground(t *testing.T) {
	out := compose("abc", 5, 2, "", placement{})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || lines[0] != "abc  " || lines[1] != "     " {
		t.Errorf("unexpected output %q", out)
	}
}
