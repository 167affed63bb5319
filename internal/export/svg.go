// Package export writes vector renditions of a trace for reports and
// docs, where a scalable figure beats the raster output.
package export

import (
	"fmt"
	"strings"

	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/render"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

const svgCell = 24.0

// PathsToSVG renders every agent path, optionally over the obstacle
// map, as a standalone SVG document.
func PathsToSVG(tr *trace.Trace, m *gridmap.Map, theme render.Theme) string {
	if tr == nil || tr.Empty() {
		return ""
	}

	cols, rows := tr.MaxX+1, tr.MaxY+1
	if m != nil {
		if m.Width > cols {
			cols = m.Width
		}
		if m.Height > rows {
			rows = m.Height
		}
	}
	width := float64(cols) * svgCell
	height := float64(rows) * svgCell

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, hex(theme.Background)))

	// Grid lines on cell boundaries
	sb.WriteString(fmt.Sprintf(`<g stroke="%s" stroke-width="0.5">`+"\n", hex(theme.Grid)))
	for i := 0; i <= cols; i++ {
		x := float64(i) * svgCell
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%.0f"/>`+"\n", x, x, height))
	}
	for i := 0; i <= rows; i++ {
		y := float64(i) * svgCell
		sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%.0f" y2="%.1f"/>`+"\n", y, width, y))
	}
	sb.WriteString("</g>\n")

	if m != nil {
		sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", hex(theme.Obstacle)))
		for _, c := range m.Obstacles {
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>`+"\n",
				float64(c.X)*svgCell+2, float64(c.Y)*svgCell+2, svgCell-4, svgCell-4))
		}
		sb.WriteString("</g>\n")
	}

	for i := range tr.Paths {
		p := &tr.Paths[i]
		if len(p.Points) == 0 {
			continue
		}
		c := render.AgentColor(i)
		stroke := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)

		sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M`, stroke))
		for j, pt := range p.Points {
			x := float64(pt.X)*svgCell + svgCell/2
			y := float64(pt.Y)*svgCell + svgCell/2
			if j == 0 {
				sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
			} else {
				sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
			}
		}
		sb.WriteString("\"/>\n")

		sx := float64(p.Start().X)*svgCell + svgCell/2
		sy := float64(p.Start().Y)*svgCell + svgCell/2
		sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="%s" stroke="%s"/>`+"\n",
			sx, sy, stroke, hex(theme.Text)))

		ex := float64(p.End().X) * svgCell
		ey := float64(p.End().Y) * svgCell
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="10" height="10" fill="%s" stroke="%s"/>`+"\n",
			ex+svgCell/2-5, ey+svgCell/2-5, stroke, hex(theme.Text)))
	}

	sb.WriteString("</svg>")
	return sb.String()
}

func hex(c interface{ RGBA() (r, g, b, a uint32) }) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>8), uint8(g>>8), uint8(b>>8))
}
