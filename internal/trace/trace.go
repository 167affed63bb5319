// Package trace loads recorded swarm movement traces.
//
// A trace is the CSV a simulation run leaves behind: one row per agent
// per observed tick, identified by the agent_id, tick, x and y columns.
// The package groups rows into per-agent paths ordered by tick and
// derives the grid bounds needed for plotting.
package trace

import "errors"

// Domain errors for trace loading.
var (
	// ErrEmptyTrace indicates a trace file with a header but no data rows.
	ErrEmptyTrace = errors.New("trace: no data rows")

	// ErrMissingColumn indicates a required column is absent from the header.
	ErrMissingColumn = errors.New("trace: required column missing")
)

// Point is one recorded agent position.
type Point struct {
	Tick int
	X    int
	Y    int
}

// Path is the ordered movement history of a single agent.
type Path struct {
	AgentID string
	Points  []Point
}

// Start returns the first recorded position.
func (p *Path) Start() Point {
	return p.Points[0]
}

// End returns the last recorded position.
func (p *Path) End() Point {
	return p.Points[len(p.Points)-1]
}

// At returns the position recorded at the given tick, or false if the
// agent has no row for that tick.
func (p *Path) At(tick int) (Point, bool) {
	for _, pt := range p.Points {
		if pt.Tick == tick {
			return pt, true
		}
	}
	return Point{}, false
}

// Trail returns the prefix of the path up to and including tick.
func (p *Path) Trail(tick int) []Point {
	end := 0
	for end < len(p.Points) && p.Points[end].Tick <= tick {
		end++
	}
	return p.Points[:end]
}

// Trace is a fully loaded movement record, agents in first-seen order.
type Trace struct {
	Paths   []Path
	Rows    int
	MaxX    int
	MaxY    int
	MaxTick int
}

// NumAgents returns the number of distinct agents observed.
func (t *Trace) NumAgents() int {
	return len(t.Paths)
}

// Empty reports whether the trace holds no data rows.
func (t *Trace) Empty() bool {
	return t.Rows == 0
}

// ActiveAt counts agents with a recorded position at the given tick.
func (t *Trace) ActiveAt(tick int) int {
	n := 0
	for i := range t.Paths {
		if _, ok := t.Paths[i].At(tick); ok {
			n++
		}
	}
	return n
}
