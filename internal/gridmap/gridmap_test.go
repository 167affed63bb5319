package gridmap

import (
	"os"
	"path/filepath"
	"testing"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.txt")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeMap(t, `// 5x3 test arena
.....
.#.#.
.....
`)

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m == nil {
		t.Fatal("expected map, got nil")
	}
	if m.Width != 5 || m.Height != 3 {
		t.Errorf("expected 5x3, got %dx%d", m.Width, m.Height)
	}

	want := []Cell{{X: 1, Y: 1}, {X: 3, Y: 1}}
	if len(m.Obstacles) != len(want) {
		t.Fatalf("expected %d obstacles, got %d", len(want), len(m.Obstacles))
	}
	for i, c := range want {
		if m.Obstacles[i] != c {
			t.Errorf("obstacle %d: expected %+v, got %+v", i, c, m.Obstacles[i])
		}
	}
}

func TestLoadRaggedRows(t *testing.T) {
	path := writeMap(t, "..\n....#\n.\n")

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if m.Width != 5 {
		t.Errorf("width should be the longest row, got %d", m.Width)
	}
	if m.Height != 3 {
		t.Errorf("expected height 3, got %d", m.Height)
	}
}

func TestLoadAllComments(t *testing.T) {
	path := writeMap(t, "// nothing here\n\n// still nothing\n")

	m, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m != nil {
		t.Errorf("expected nil map for all-comment file, got %+v", m)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestBlocked(t *testing.T) {
	path := writeMap(t, ".#\n..\n")

	m, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if !m.Blocked(1, 0) {
		t.Error("(1,0) should be blocked")
	}
	if m.Blocked(0, 0) || m.Blocked(9, 9) || m.Blocked(-1, 0) {
		t.Error("free and out-of-range cells should not be blocked")
	}
}
