// Package gridmap loads the textual obstacle maps the simulator runs on.
//
// A map file is a character grid, one row per line. '#' marks an
// obstacle cell, anything else is free space. Lines starting with //
// and blank lines are ignored.
package gridmap

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// Cell is a grid coordinate, x right, y down.
type Cell struct {
	X int
	Y int
}

// Map is a parsed obstacle grid.
type Map struct {
	Width     int
	Height    int
	Obstacles []Cell
	Rows      []string
}

// Load parses a map file. An empty or all-comment file yields nil with
// no error; the caller treats a nil map as "no overlay".
func Load(path string) (*Map, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open map: %w", err)
	}
	defer f.Close()

	var rows []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "//") {
			continue
		}
		rows = append(rows, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read map: %w", err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	m := &Map{Height: len(rows), Rows: rows}
	for y, row := range rows {
		if len(row) > m.Width {
			m.Width = len(row)
		}
		for x, ch := range row {
			if ch == '#' {
				m.Obstacles = append(m.Obstacles, Cell{X: x, Y: y})
			}
		}
	}
	return m, nil
}

// Blocked reports whether the cell holds an obstacle.
func (m *Map) Blocked(x, y int) bool {
	if y < 0 || y >= len(m.Rows) {
		return false
	}
	row := m.Rows[y]
	return x >= 0 && x < len(row) && row[x] == '#'
}
