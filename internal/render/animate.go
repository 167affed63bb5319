package render

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"os"
	"path/filepath"
	"strings"

	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

// GifPath swaps the output file's extension for .gif.
func GifPath(outPath string) string {
	ext := filepath.Ext(outPath)
	return strings.TrimSuffix(outPath, ext) + ".gif"
}

// Animate renders one frame per tick and encodes a looping GIF at the
// configured playback rate. A nil map skips the obstacle layer. The
// caller skips this for empty traces.
func (r *Renderer) Animate(tr *trace.Trace, m *gridmap.Map, outPath string) error {
	l := r.newLayout(tr, m)
	width := l.plotWidth(r.cfg.Margin)
	height := l.plotHeight(r.cfg.Margin)

	palette := r.framePalette(tr.NumAgents())
	anim := gif.GIF{LoopCount: 0}
	delay := r.cfg.FrameDelay()

	for tick := 0; tick <= tr.MaxTick; tick++ {
		frame := image.NewPaletted(image.Rect(0, 0, width, height), palette)
		r.drawFrame(frame, l, tr, m, tick)
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, delay)
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create gif: %w", err)
	}
	defer f.Close()
	if err := gif.EncodeAll(f, &anim); err != nil {
		return fmt.Errorf("encode gif: %w", err)
	}
	return nil
}

// framePalette lists every color a frame can touch: theme colors plus
// the agent colors and their faded trail variants.
func (r *Renderer) framePalette(agents int) color.Palette {
	p := color.Palette{
		r.theme.Background,
		r.theme.Grid,
		r.theme.Obstacle,
		r.theme.Text,
		r.theme.Muted,
	}
	n := agents
	if n > len(agentPalette) {
		n = len(agentPalette)
	}
	for i := 0; i < n; i++ {
		p = append(p, agentPalette[i])
		p = append(p, fade(agentPalette[i], r.theme.Background))
	}
	return p
}

func (r *Renderer) drawFrame(frame *image.Paletted, l layout, tr *trace.Trace, m *gridmap.Map, tick int) {
	b := frame.Bounds()
	fillRect(frame, b.Min.X, b.Min.Y, b.Max.X, b.Max.Y, r.theme.Background)
	r.drawGrid(frame, l)
	if m != nil {
		r.drawObstacles(frame, l, m)
	}

	caption := fmt.Sprintf("tick %d/%d", tick, tr.MaxTick)
	drawText(frame, l.originX, 18, caption, r.theme.Text)

	for i := range tr.Paths {
		p := &tr.Paths[i]
		c := AgentColor(i)
		trailColor := c
		if r.cfg.TrailFade {
			trailColor = fade(c, r.theme.Background)
		}

		pts := p.Trail(tick)
		for j := 1; j < len(pts); j++ {
			x0, y0 := l.center(pts[j-1].X, pts[j-1].Y)
			x1, y1 := l.center(pts[j].X, pts[j].Y)
			line(frame, x0, y0, x1, y1, 0, trailColor)
		}

		if pos, ok := p.At(tick); ok {
			cx, cy := l.center(pos.X, pos.Y)
			disc(frame, cx, cy, currentRadius, c)
			circleOutline(frame, cx, cy, currentRadius+1, r.theme.Text)
		}
	}
}
