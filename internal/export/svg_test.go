package export

import (
	"strings"
	"testing"

	"github.com/san-kum/synapse/internal/background"
	"github.com/san-kum/synapse/internal/theme"
)

func TestCanvasToSVG(t *testing.T) {
	c := background.NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)

	svg := CanvasToSVG(c, 10, theme.PaletteFor(theme.Nova))
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatal("not an svg document")
	}
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("expected 2 dots, got %d", got)
	}
	if !strings.Contains(svg, `fill="#ff4d4d"`) {
		t.Error("expected nova node colour")
	}
	if !strings.Contains(svg, `width="40" height="40"`) {
		t.Error("unexpected document size")
	}
}

func TestCanvasToSVGNil(t *testing.T) {
	if CanvasToSVG(nil, 1, theme.Palette{}) != "" {
		t.Error("expected empty output for nil canvas")
	}
}

func TestSnapshot(t *testing.T) {
	net := background.New(20, 5)
	svg := Snapshot(net, 30, 10, 1.0, 30, 4, theme.PaletteFor(theme.Cyber))
	if strings.Count(svg, "<circle") == 0 {
		t.Error("expected dots in snapshot")
	}
	if len(net.Activity()) == 0 {
		t.Error("expected warmup steps to run")
	}
}
