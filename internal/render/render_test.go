package render

import (
	"image"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/dutch-casa/uav-swarm-simulator/internal/config"
	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/metrics"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

func testTrace() *trace.Trace {
	return &trace.Trace{
		Paths: []trace.Path{
			{AgentID: "agent-one", Points: []trace.Point{
				{Tick: 0, X: 0, Y: 0}, {Tick: 1, X: 1, Y: 0}, {Tick: 2, X: 2, Y: 1},
			}},
			{AgentID: "b", Points: []trace.Point{
				{Tick: 0, X: 3, Y: 3}, {Tick: 1, X: 2, Y: 3},
			}},
		},
		Rows:    5,
		MaxX:    3,
		MaxY:    3,
		MaxTick: 2,
	}
}

func TestStatic(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	r := New(config.DefaultConfig())
	sum := &metrics.Summary{Makespan: 2, TotalMessages: 10, DroppedMessages: 1}

	if err := r.Static(testTrace(), sum, nil, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a valid png: %v", err)
	}

	cfg := config.DefaultConfig()
	wantW := cfg.Margin*2 + 4*cfg.CellSize + cfg.PanelWidth
	if img.Bounds().Dx() != wantW {
		t.Errorf("expected width %d, got %d", wantW, img.Bounds().Dx())
	}
}

func TestStaticNoMetrics(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	r := New(nil)

	if err := r.Static(testTrace(), nil, nil, out); err != nil {
		t.Fatalf("render without metrics should degrade, got: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("output file missing: %v", err)
	}
}

func TestStaticWithMap(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	r := New(config.DefaultConfig())
	m := &gridmap.Map{
		Width: 8, Height: 8,
		Obstacles: []gridmap.Cell{{X: 5, Y: 5}},
		Rows:      []string{"........", "........", "........", "........", "........", ".....#..", "........", "........"},
	}

	if err := r.Static(testTrace(), nil, m, out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	// Map is larger than the trace bounds, so it dictates plot size.
	cfg := config.DefaultConfig()
	wantW := cfg.Margin*2 + 8*cfg.CellSize + cfg.PanelWidth
	if img.Bounds().Dx() != wantW {
		t.Errorf("expected width %d, got %d", wantW, img.Bounds().Dx())
	}
}

func TestAnimate(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.gif")
	r := New(config.DefaultConfig())
	tr := testTrace()

	if err := r.Animate(tr, nil, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("output is not a valid gif: %v", err)
	}

	if len(anim.Image) != tr.MaxTick+1 {
		t.Errorf("expected %d frames, got %d", tr.MaxTick+1, len(anim.Image))
	}
	if anim.LoopCount != 0 {
		t.Errorf("expected looping gif, got loop count %d", anim.LoopCount)
	}
	for i, d := range anim.Delay {
		if d != 20 {
			t.Errorf("frame %d: expected delay 20, got %d", i, d)
			break
		}
	}
}

func TestAnimateObstacleLayer(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.gif")
	cfg := config.DefaultConfig()
	r := New(cfg)
	m := &gridmap.Map{
		Width: 6, Height: 6,
		Obstacles: []gridmap.Cell{{X: 5, Y: 0}},
		Rows:      []string{".....#", "......", "......", "......", "......", "......"},
	}

	if err := r.Animate(testTrace(), m, out); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatal(err)
	}

	// Map is wider than the trace, so it dictates the frame size.
	wantW := cfg.Margin*2 + 6*cfg.CellSize
	if got := anim.Image[0].Bounds().Dx(); got != wantW {
		t.Errorf("expected frame width %d, got %d", wantW, got)
	}

	// The obstacle cell center must carry the obstacle color in every
	// frame, not just the static figure.
	cx := cfg.Margin + 5*cfg.CellSize + cfg.CellSize/2
	cy := titleHeight + cfg.Margin + cfg.CellSize/2
	wr, wg, wb, _ := ThemeDark.Obstacle.RGBA()
	for i, frame := range anim.Image {
		gr, gg, gb, _ := frame.At(cx, cy).RGBA()
		if gr != wr || gg != wg || gb != wb {
			t.Errorf("frame %d: obstacle missing at (%d,%d)", i, cx, cy)
			break
		}
	}
}

func TestGifPath(t *testing.T) {
	tests := []struct {
		in, out string
	}{
		{"out.png", "out.gif"},
		{"dir/result.png", "dir/result.gif"},
		{"noext", "noext.gif"},
	}
	for _, tt := range tests {
		if got := GifPath(tt.in); got != tt.out {
			t.Errorf("GifPath(%q): expected %q, got %q", tt.in, tt.out, got)
		}
	}
}

func TestAgentColorCycles(t *testing.T) {
	if AgentColor(0) != AgentColor(10) {
		t.Error("palette should cycle at 10")
	}
	if AgentColor(1) == AgentColor(2) {
		t.Error("adjacent agents should differ")
	}
}

func TestThemeByName(t *testing.T) {
	if ThemeByName("light").Name != "light" {
		t.Error("expected light theme")
	}
	if ThemeByName("bogus").Name != "dark" {
		t.Error("unknown theme should fall back to dark")
	}
}

func TestLineStaysInBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	// Set on out-of-bounds coordinates is a no-op for image.RGBA, so a
	// line through the corner must not panic.
	line(img, -5, -5, 15, 15, 1, ThemeDark.Text)
}
