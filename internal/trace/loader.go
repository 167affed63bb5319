package trace

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Load reads a trace CSV. Columns are located by header name so the
// extra bookkeeping columns the simulator writes (active_agents,
// messages_sent) are tolerated in any order. Paths come back sorted by
// tick, agents in first-seen order.
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	if len(records) == 0 {
		return nil, ErrEmptyTrace
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}
	if len(records) == 1 {
		return nil, ErrEmptyTrace
	}

	tr := &Trace{}
	pathIdx := make(map[string]int)

	for line, rec := range records[1:] {
		if len(rec) <= cols.max() {
			return nil, fmt.Errorf("trace row %d: expected at least %d fields, got %d", line+2, cols.max()+1, len(rec))
		}
		id := rec[cols.agentID]
		tick, err := strconv.Atoi(strings.TrimSpace(rec[cols.tick]))
		if err != nil {
			return nil, fmt.Errorf("trace row %d: bad tick %q", line+2, rec[cols.tick])
		}
		x, err := parseCoord(rec[cols.x])
		if err != nil {
			return nil, fmt.Errorf("trace row %d: bad x %q", line+2, rec[cols.x])
		}
		y, err := parseCoord(rec[cols.y])
		if err != nil {
			return nil, fmt.Errorf("trace row %d: bad y %q", line+2, rec[cols.y])
		}

		i, ok := pathIdx[id]
		if !ok {
			i = len(tr.Paths)
			pathIdx[id] = i
			tr.Paths = append(tr.Paths, Path{AgentID: id})
		}
		tr.Paths[i].Points = append(tr.Paths[i].Points, Point{Tick: tick, X: x, Y: y})
		tr.Rows++

		if x > tr.MaxX {
			tr.MaxX = x
		}
		if y > tr.MaxY {
			tr.MaxY = y
		}
		if tick > tr.MaxTick {
			tr.MaxTick = tick
		}
	}

	for i := range tr.Paths {
		pts := tr.Paths[i].Points
		sort.SliceStable(pts, func(a, b int) bool { return pts[a].Tick < pts[b].Tick })
	}

	return tr, nil
}

type columns struct {
	agentID, tick, x, y int
}

func (c columns) max() int {
	m := c.agentID
	for _, v := range []int{c.tick, c.x, c.y} {
		if v > m {
			m = v
		}
	}
	return m
}

func headerIndex(header []string) (columns, error) {
	cols := columns{agentID: -1, tick: -1, x: -1, y: -1}
	for i, name := range header {
		switch strings.TrimSpace(strings.ToLower(name)) {
		case "agent_id":
			cols.agentID = i
		case "tick":
			cols.tick = i
		case "x":
			cols.x = i
		case "y":
			cols.y = i
		}
	}
	for _, c := range []struct {
		name string
		idx  int
	}{
		{"agent_id", cols.agentID},
		{"tick", cols.tick},
		{"x", cols.x},
		{"y", cols.y},
	} {
		if c.idx == -1 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, c.name)
		}
	}
	return cols, nil
}

// parseCoord accepts plain integers and the float spellings some
// tooling re-exports (pandas round-trips write "3.0").
func parseCoord(s string) (int, error) {
	s = strings.TrimSpace(s)
	if v, err := strconv.Atoi(s); err == nil {
		return v, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, err
	}
	return int(f), nil
}
