package viz

import (
	"strings"
	"testing"

	"github.com/dutch-casa/uav-swarm-simulator/internal/config"
	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

func testTrace() *trace.Trace {
	return &trace.Trace{
		Paths: []trace.Path{
			{AgentID: "uav-1", Points: []trace.Point{{Tick: 0, X: 0, Y: 0}, {Tick: 1, X: 3, Y: 3}}},
		},
		Rows:    2,
		MaxX:    3,
		MaxY:    3,
		MaxTick: 1,
	}
}

func TestPreview(t *testing.T) {
	out := Preview(testTrace(), nil)

	if !strings.Contains(out, "1 agents") {
		t.Errorf("header missing agent count:\n%s", out)
	}
	if !strings.Contains(out, "uav-1") {
		t.Error("legend missing agent id")
	}
	// Canvas must contain at least one non-empty braille rune
	if !strings.ContainsFunc(out, func(r rune) bool { return r > 0x2800 && r <= 0x28ff }) {
		t.Error("canvas is empty")
	}
}

func TestPreviewWithMap(t *testing.T) {
	m := &gridmap.Map{
		Width: 6, Height: 6,
		Obstacles: []gridmap.Cell{{X: 5, Y: 5}},
		Rows:      []string{"......", "......", "......", "......", "......", ".....#"},
	}
	out := Preview(testTrace(), m)
	if out == "" {
		t.Fatal("expected preview output")
	}
}

func TestPlaybackModelZeroFPS(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.FPS = 0

	m := NewModel(testTrace(), nil, cfg)
	if m.cfg.FPS != config.DefaultFPS {
		t.Errorf("expected fps clamped to %d, got %d", config.DefaultFPS, m.cfg.FPS)
	}
	if cmd := m.tickCmd(); cmd == nil {
		t.Error("expected a tick command")
	}
}

func TestPlaybackModelScrub(t *testing.T) {
	m := NewModel(testTrace(), nil, nil)

	if !m.running {
		t.Fatal("playback should start running")
	}

	m.running = false
	m.tick = m.tr.MaxTick
	m.drawTick()

	view := m.View()
	if !strings.Contains(view, "PAUSED") {
		t.Error("expected paused status in view")
	}
	if !strings.Contains(view, "1 / 1") {
		t.Errorf("expected tick readout, got:\n%s", view)
	}
}
