package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dutch-casa/uav-swarm-simulator/internal/config"
	"github.com/dutch-casa/uav-swarm-simulator/internal/gridmap"
	"github.com/dutch-casa/uav-swarm-simulator/internal/render"
	"github.com/dutch-casa/uav-swarm-simulator/internal/trace"
)

var (
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(0, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(10)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model plays a recorded trace back tick by tick in the terminal.
type Model struct {
	tr      *trace.Trace
	grid    *gridmap.Map
	cfg     *config.Config
	canvas  *Canvas
	tick    int
	running bool
	saved   string
}

// NewModel prepares playback at tick zero, running.
func NewModel(tr *trace.Trace, grid *gridmap.Map, cfg *config.Config) Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if cfg.FPS <= 0 {
		cfg.FPS = config.DefaultFPS
	}
	return Model{
		tr:      tr,
		grid:    grid,
		cfg:     cfg,
		canvas:  NewCanvas(previewCols, previewRows),
		running: true,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tickCmd()
}

func (m Model) tickCmd() tea.Cmd {
	interval := time.Second / time.Duration(m.cfg.FPS)
	return tea.Tick(interval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input and advances playback.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.tick = 0
			m.running = true
		case "[":
			m.running = false
			if m.tick > 0 {
				m.tick--
			}
		case "]":
			m.running = false
			if m.tick < m.tr.MaxTick {
				m.tick++
			}
		case "g":
			m.saved = m.saveGIF()
		}
	case TickMsg:
		if m.running {
			m.tick++
			if m.tick > m.tr.MaxTick {
				m.tick = 0 // loop like the GIF does
			}
		}
		return m, m.tickCmd()
	}
	return m, nil
}

// saveGIF writes the full animation next to the working directory and
// returns the file name for the status line.
func (m *Model) saveGIF() string {
	name := "playback.gif"
	r := render.New(m.cfg)
	if err := r.Animate(m.tr, m.grid, name); err != nil {
		return ""
	}
	return name
}

// View draws the canvas and status panel.
func (m Model) View() string {
	m.drawTick()

	status := "PLAYING"
	if !m.running {
		status = "PAUSED"
	}

	var stats strings.Builder
	stats.WriteString(statusStyle.Render(status) + "\n\n")
	row := func(label, value string) {
		stats.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("tick", fmt.Sprintf("%d / %d", m.tick, m.tr.MaxTick))
	row("agents", fmt.Sprintf("%d", m.tr.NumAgents()))
	row("active", fmt.Sprintf("%d", m.tr.ActiveAt(m.tick)))
	if m.saved != "" {
		stats.WriteString("\n" + valueStyle.Render("saved "+m.saved) + "\n")
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.canvas.String()),
		statsStyle.Render(stats.String()),
	)
	help := helpStyle.Render("space pause  [ ] step  r restart  g gif  q quit")
	return body + "\n" + help
}

func (m *Model) drawTick() {
	m.canvas.Clear()
	m.canvas.DrawBorder()

	cols, rows := m.tr.MaxX+1, m.tr.MaxY+1
	if m.grid != nil {
		if m.grid.Width > cols {
			cols = m.grid.Width
		}
		if m.grid.Height > rows {
			rows = m.grid.Height
		}
	}
	pxW, pxH := m.canvas.Width*2, m.canvas.Height*4
	scaleX := float64(pxW-4) / float64(cols)
	scaleY := float64(pxH-4) / float64(rows)
	px := func(x, y int) (int, int) {
		return 2 + int((float64(x)+0.5)*scaleX), 2 + int((float64(y)+0.5)*scaleY)
	}

	if m.grid != nil {
		bw, bh := int(scaleX)-1, int(scaleY)-1
		if bw < 1 {
			bw = 1
		}
		if bh < 1 {
			bh = 1
		}
		for _, cell := range m.grid.Obstacles {
			x, y := px(cell.X, cell.Y)
			m.canvas.FillBlock(x-bw/2, y-bh/2, bw, bh)
		}
	}

	for i := range m.tr.Paths {
		p := &m.tr.Paths[i]
		pts := p.Trail(m.tick)
		for j := 1; j < len(pts); j++ {
			x0, y0 := px(pts[j-1].X, pts[j-1].Y)
			x1, y1 := px(pts[j].X, pts[j].Y)
			m.canvas.DrawLine(x0, y0, x1, y1)
		}
		if pos, ok := p.At(m.tick); ok {
			x, y := px(pos.X, pos.Y)
			m.canvas.DrawMarker(x, y)
		}
	}
}

// Play runs the interactive playback until the user quits.
func Play(tr *trace.Trace, grid *gridmap.Map, cfg *config.Config) error {
	p := tea.NewProgram(NewModel(tr, grid, cfg))
	_, err := p.Run()
	return err
}
