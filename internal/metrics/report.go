package metrics

import "fmt"

// Report formats the summary as display lines for the metrics panel
// and the terminal stats view. The agent count comes from the trace
// since the metrics file may predate the num_agents field.
func (s *Summary) Report(agents int) []string {
	if agents == 0 {
		agents = s.NumAgents
	}

	collision := "none"
	if s.CollisionDetected {
		collision = "YES"
	}

	return []string{
		"Mission",
		fmt.Sprintf("  agents:       %d", agents),
		fmt.Sprintf("  makespan:     %d ticks", s.Makespan),
		fmt.Sprintf("  wall time:    %d ms", s.WallTimeMs),
		"",
		"Communication",
		fmt.Sprintf("  messages:     %d", s.TotalMessages),
		fmt.Sprintf("  dropped:      %d", s.DroppedMessages),
		fmt.Sprintf("  drop rate:    %.2f%%", s.EffectiveDropRate()*100),
		"",
		"Planning",
		fmt.Sprintf("  replans:      %d", s.TotalReplans),
		fmt.Sprintf("  per agent:    %.1f", s.ReplansPerAgent(agents)),
		"",
		"Safety",
		fmt.Sprintf("  collisions:   %s", collision),
	}
}

// ScoreLine formats the overall score for display.
func (s *Summary) ScoreLine() string {
	return fmt.Sprintf("overall score: %.0f/100", s.Score())
}
