// Package metrics loads and scores simulation summary metrics.
//
// A metrics file is the flat JSON object a simulation run writes at
// the end: makespan, wall time, message counters, replan counts and a
// collision flag. The package derives a drop rate and an overall
// performance score from it.
package metrics

import (
	"encoding/json"
	"fmt"
	"os"
)

// Band classifies an overall score for display.
type Band int

const (
	BandPoor Band = iota
	BandFair
	BandGood
)

func (b Band) String() string {
	switch b {
	case BandGood:
		return "good"
	case BandFair:
		return "fair"
	default:
		return "poor"
	}
}

// CollisionPenalty is subtracted from the efficiency score when any
// collision was detected during the run.
const CollisionPenalty = 50.0

// Summary holds the scalar metrics of one simulation run. DropRate is
// a pointer so a recorded zero can be told apart from a missing key.
type Summary struct {
	Makespan          int      `json:"makespan"`
	WallTimeMs        int64    `json:"wall_time_ms"`
	TotalMessages     int64    `json:"total_messages"`
	DroppedMessages   int64    `json:"dropped_messages"`
	DropRate          *float64 `json:"drop_rate"`
	TotalReplans      int      `json:"total_replans"`
	CollisionDetected bool     `json:"collision_detected"`
	NumAgents         int      `json:"num_agents"`
	Success           bool     `json:"success"`
}

// Load reads a metrics JSON file.
func Load(path string) (*Summary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read metrics: %w", err)
	}
	var s Summary
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse metrics: %w", err)
	}
	return &s, nil
}

// EffectiveDropRate takes the recorded drop_rate as-is, zero included;
// only when the key is absent is the rate recomputed from the message
// counters.
func (s *Summary) EffectiveDropRate() float64 {
	if s.DropRate != nil {
		return *s.DropRate
	}
	if s.TotalMessages > 0 {
		return float64(s.DroppedMessages) / float64(s.TotalMessages)
	}
	return 0
}

// Score is the overall performance figure shown on the metrics panel:
// communication efficiency out of 100, minus a flat collision
// penalty, floored at zero.
func (s *Summary) Score() float64 {
	score := 100 * (1 - s.EffectiveDropRate())
	if s.CollisionDetected {
		score -= CollisionPenalty
	}
	if score < 0 {
		return 0
	}
	return score
}

// ScoreBand buckets the score: >=80 good, >=60 fair, else poor.
func (s *Summary) ScoreBand() Band {
	switch score := s.Score(); {
	case score >= 80:
		return BandGood
	case score >= 60:
		return BandFair
	default:
		return BandPoor
	}
}

// ReplansPerAgent averages replans over the given agent count.
func (s *Summary) ReplansPerAgent(agents int) float64 {
	if agents == 0 {
		return 0
	}
	return float64(s.TotalReplans) / float64(agents)
}
