// Package render produces the raster figures for a recorded swarm run:
// a static two-panel PNG of final paths plus metrics, and a looping
// GIF animation of the run tick by tick.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"

	"github.com/dutch-casa/uav-swarm-simulator/internal/config"
	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/metrics"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

const (
	titleHeight   = 28
	lineHeight    = 16
	legendSwatch  = 10
	maxLegendID   = 8
	startRadius   = 5
	markerHalf    = 5
	strokeRadius  = 1
	currentRadius = 6
)

// Renderer paints figures from a loaded trace.
type Renderer struct {
	cfg   *config.Config
	theme Theme
}

func New(cfg *config.Config) *Renderer {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Renderer{cfg: cfg, theme: ThemeByName(cfg.Theme)}
}

// layout maps grid cells to pixel positions inside the plot area.
type layout struct {
	cols, rows int
	cell       int
	originX    int
	originY    int
}

func (r *Renderer) newLayout(tr *trace.Trace, m *gridmap.Map) layout {
	cols, rows := tr.MaxX+1, tr.MaxY+1
	if m != nil {
		if m.Width > cols {
			cols = m.Width
		}
		if m.Height > rows {
			rows = m.Height
		}
	}
	return layout{
		cols:    cols,
		rows:    rows,
		cell:    r.cfg.CellSize,
		originX: r.cfg.Margin,
		originY: titleHeight + r.cfg.Margin,
	}
}

func (l layout) center(x, y int) (int, int) {
	return l.originX + x*l.cell + l.cell/2, l.originY + y*l.cell + l.cell/2
}

func (l layout) plotWidth(margin int) int {
	return l.originX + l.cols*l.cell + margin
}

func (l layout) plotHeight(margin int) int {
	return l.originY + l.rows*l.cell + margin
}

// Static renders the two-panel figure: paths on the left, metrics on
// the right. A nil summary produces the "no metrics" panel; a nil map
// skips the obstacle layer.
func (r *Renderer) Static(tr *trace.Trace, sum *metrics.Summary, m *gridmap.Map, outPath string) error {
	l := r.newLayout(tr, m)

	plotW := l.plotWidth(r.cfg.Margin)
	height := l.plotHeight(r.cfg.Margin)
	if min := r.panelHeight(tr, sum); height < min {
		height = min
	}
	width := plotW + r.cfg.PanelWidth

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	fillRect(img, 0, 0, width, height, r.theme.Background)

	drawText(img, l.originX, 18, "swarm final paths", r.theme.Text)

	r.drawGrid(img, l)
	if m != nil {
		r.drawObstacles(img, l, m)
	}
	for i := range tr.Paths {
		r.drawPath(img, l, &tr.Paths[i], AgentColor(i))
	}

	r.drawPanel(img, tr, sum, plotW, 18)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

func (r *Renderer) drawGrid(img draw.Image, l layout) {
	x1 := l.originX + l.cols*l.cell
	y1 := l.originY + l.rows*l.cell
	for i := 0; i <= l.cols; i++ {
		vline(img, l.originX+i*l.cell, l.originY, y1, r.theme.Grid)
	}
	for i := 0; i <= l.rows; i++ {
		hline(img, l.originX, x1, l.originY+i*l.cell, r.theme.Grid)
	}
}

func (r *Renderer) drawObstacles(img draw.Image, l layout, m *gridmap.Map) {
	inset := l.cell / 8
	for _, c := range m.Obstacles {
		x0 := l.originX + c.X*l.cell + inset
		y0 := l.originY + c.Y*l.cell + inset
		fillRect(img, x0, y0, x0+l.cell-2*inset, y0+l.cell-2*inset, r.theme.Obstacle)
	}
}

// drawPath paints the polyline, the circular start marker and the
// square end marker for one agent.
func (r *Renderer) drawPath(img draw.Image, l layout, p *trace.Path, c color.RGBA) {
	if len(p.Points) == 0 {
		return
	}
	for i := 1; i < len(p.Points); i++ {
		x0, y0 := l.center(p.Points[i-1].X, p.Points[i-1].Y)
		x1, y1 := l.center(p.Points[i].X, p.Points[i].Y)
		line(img, x0, y0, x1, y1, strokeRadius, c)
	}

	sx, sy := l.center(p.Start().X, p.Start().Y)
	disc(img, sx, sy, startRadius, c)
	circleOutline(img, sx, sy, startRadius+1, r.theme.Text)

	ex, ey := l.center(p.End().X, p.End().Y)
	fillRect(img, ex-markerHalf, ey-markerHalf, ex+markerHalf+1, ey+markerHalf+1, c)
	rectOutline(img, ex-markerHalf-1, ey-markerHalf-1, ex+markerHalf+1, ey+markerHalf+1, r.theme.Text)
}

// panelHeight is the vertical space the metrics panel needs, so short
// plots still fit the full report and legend.
func (r *Renderer) panelHeight(tr *trace.Trace, sum *metrics.Summary) int {
	lines := 1 // "no metrics available"
	if sum != nil {
		lines = len(sum.Report(tr.NumAgents())) + 2 // report + gap + score
	}
	return titleHeight + (lines+2+tr.NumAgents())*lineHeight + 2*r.cfg.Margin
}

func (r *Renderer) drawPanel(img draw.Image, tr *trace.Trace, sum *metrics.Summary, panelX, titleY int) {
	x := panelX + r.cfg.Margin
	drawText(img, x, titleY, "simulation metrics", r.theme.Text)

	y := titleHeight + lineHeight
	if sum == nil {
		drawText(img, x, y, "no metrics available", r.theme.Muted)
		y += 2 * lineHeight
	} else {
		for _, lineText := range sum.Report(tr.NumAgents()) {
			drawText(img, x, y, lineText, r.theme.Text)
			y += lineHeight
		}
		y += lineHeight
		drawText(img, x, y, sum.ScoreLine(), r.scoreColor(sum))
		y += 2 * lineHeight
	}

	drawText(img, x, y, "agents", r.theme.Muted)
	y += lineHeight
	for i := range tr.Paths {
		c := AgentColor(i)
		fillRect(img, x, y-legendSwatch, x+legendSwatch, y, c)
		drawText(img, x+legendSwatch+6, y, legendLabel(tr.Paths[i].AgentID), r.theme.Text)
		y += lineHeight
	}
}

func (r *Renderer) scoreColor(sum *metrics.Summary) color.RGBA {
	switch sum.ScoreBand() {
	case metrics.BandGood:
		return r.theme.Good
	case metrics.BandFair:
		return r.theme.Warn
	default:
		return r.theme.Bad
	}
}

func legendLabel(id string) string {
	if len(id) > maxLegendID {
		return id[:maxLegendID] + "..."
	}
	return id
}
