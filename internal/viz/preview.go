package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

const (
	previewCols = 60
	previewRows = 24
)

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true)
	canvasStyle = lipgloss.NewStyle().Padding(0, 1)
	legendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// agentSwatches colors legend entries; indices track render.AgentColor
// hue order closely enough for a terminal.
var agentSwatches = []lipgloss.Color{
	"33", "208", "40", "160", "135", "94", "205", "245", "142", "45",
}

// Preview renders the map and every final path onto a Braille canvas
// and returns the styled block for printing.
func Preview(tr *trace.Trace, m *gridmap.Map) string {
	cols, rows := tr.MaxX+1, tr.MaxY+1
	if m != nil {
		if m.Width > cols {
			cols = m.Width
		}
		if m.Height > rows {
			rows = m.Height
		}
	}

	c := NewCanvas(previewCols, previewRows)
	pxW, pxH := previewCols*2, previewRows*4
	scaleX := float64(pxW-4) / float64(cols)
	scaleY := float64(pxH-4) / float64(rows)

	px := func(x, y int) (int, int) {
		return 2 + int((float64(x)+0.5)*scaleX), 2 + int((float64(y)+0.5)*scaleY)
	}

	c.DrawBorder()

	if m != nil {
		bw := int(scaleX) - 1
		bh := int(scaleY) - 1
		if bw < 1 {
			bw = 1
		}
		if bh < 1 {
			bh = 1
		}
		for _, cell := range m.Obstacles {
			x, y := px(cell.X, cell.Y)
			c.FillBlock(x-bw/2, y-bh/2, bw, bh)
		}
	}

	for i := range tr.Paths {
		pts := tr.Paths[i].Points
		for j := 1; j < len(pts); j++ {
			x0, y0 := px(pts[j-1].X, pts[j-1].Y)
			x1, y1 := px(pts[j].X, pts[j].Y)
			c.DrawLine(x0, y0, x1, y1)
		}
		if len(pts) > 0 {
			x, y := px(pts[len(pts)-1].X, pts[len(pts)-1].Y)
			c.DrawMarker(x, y)
		}
	}

	var legend strings.Builder
	for i := range tr.Paths {
		sw := agentSwatches[i%len(agentSwatches)]
		dot := lipgloss.NewStyle().Foreground(sw).Render("●")
		legend.WriteString(fmt.Sprintf("%s %s  ", dot, legendStyle.Render(tr.Paths[i].AgentID)))
	}

	header := headerStyle.Render(fmt.Sprintf("swarm paths  %d agents, %d ticks", tr.NumAgents(), tr.MaxTick+1))
	return header + "\n" + canvasStyle.Render(c.String()) + legend.String() + "\n"
}
