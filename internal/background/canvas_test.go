package background

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)
	c.Set(3, 3)
	c.Set(-1, 0)
	c.Set(4, 0)

	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.Lit(0, 0) || c.Lit(5, 0) {
		t.Error("Lit reported wrong cells")
	}
}

func TestCanvasLineAndMerge(t *testing.T) {
	a := NewCanvas(4, 2)
	a.DrawLine(0, 0, 7, 7)
	for i := 0; i < 4; i++ {
		if !a.Lit(i, i/2) {
			t.Errorf("diagonal missing cell (%d,%d)", i, i/2)
		}
	}

	b := NewCanvas(4, 2)
	b.DrawDot(6, 1, 1)
	a.Merge(b)
	if !a.Lit(3, 0) {
		t.Error("merge lost dot")
	}

	a.Clear()
	for row := 0; row < a.Height; row++ {
		for col := 0; col < a.Width; col++ {
			if a.Lit(col, row) {
				t.Errorf("clear left a dot at (%d,%d)", col, row)
			}
		}
	}
	if got := strings.Count(a.String(), "\n"); got != 2 {
		t.Errorf("expected 2 rows, got %d", got)
	}
}
