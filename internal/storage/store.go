// Package storage keeps a ledger of past renders so `swarmviz list`
// can show what was produced from which trace.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// Report records one completed render.
type Report struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	TracePath string    `json:"trace_path"`
	Agents    int       `json:"agents"`
	Ticks     int       `json:"ticks"`
	Score     float64   `json:"score"`
	HasScore  bool      `json:"has_score"`
	Outputs   []string  `json:"outputs"`
}

// Save writes the report under a timestamped id and returns the id.
func (s *Store) Save(r Report) (string, error) {
	base := strings.TrimSuffix(filepath.Base(r.TracePath), filepath.Ext(r.TracePath))
	r.ID = fmt.Sprintf("%s_%d", base, time.Now().UnixNano())
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now()
	}

	f, err := os.Create(filepath.Join(s.baseDir, r.ID+".json"))
	if err != nil {
		return "", err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	return r.ID, nil
}

// List returns all saved reports, newest first.
func (s *Store) List() ([]Report, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var reports []Report
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		data, err := os.ReadFile(filepath.Join(s.baseDir, e.Name()))
		if err != nil {
			continue
		}
		var r Report
		if err := json.Unmarshal(data, &r); err != nil {
			continue
		}
		reports = append(reports, r)
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Timestamp.After(reports[j].Timestamp)
	})
	return reports, nil
}

// Load fetches one report by id.
func (s *Store) Load(id string) (*Report, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("load report %s: %w", id, err)
	}
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse report %s: %w", id, err)
	}
	return &r, nil
}
