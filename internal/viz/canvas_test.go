package viz

import (
	"strings"
	"testing"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 4)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1 set, got %x", c.Grid[0][0])
	}

	c.Set(1, 3)
	if c.Grid[0][0]&0x80 == 0 {
		t.Errorf("expected dot 8 set, got %x", c.Grid[0][0])
	}

	// Out of range is a no-op
	c.Set(-1, 0)
	c.Set(100, 100)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Clear()
	for _, row := range c.Grid {
		for _, r := range row {
			if r != 0x2800 {
				t.Fatalf("expected empty cell, got %x", r)
			}
		}
	}
}

func TestCanvasDrawLine(t *testing.T) {
	c := NewCanvas(10, 10)
	c.DrawLine(0, 0, 19, 0)

	for col := 0; col < 10; col++ {
		if c.Grid[0][col] == 0x2800 {
			t.Errorf("column %d untouched by horizontal line", col)
		}
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(3, 2)
	s := c.String()

	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 2 {
		t.Errorf("expected 2 lines, got %d", len(lines))
	}
	for _, l := range lines {
		if len([]rune(l)) != 3 {
			t.Errorf("expected 3 runes per line, got %d", len([]rune(l)))
		}
	}
}

func TestCanvasMarkerAndBlock(t *testing.T) {
	c := NewCanvas(5, 5)
	c.DrawMarker(4, 4)
	if c.Grid[1][2] == 0x2800 {
		t.Error("marker center not set")
	}

	c.Clear()
	c.FillBlock(0, 0, 4, 4)
	if c.Grid[0][0] == 0x2800 || c.Grid[0][1] == 0x2800 {
		t.Error("filled block left cells empty")
	}
}
