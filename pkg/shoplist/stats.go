package shoplist

import "fmt"

// Stats is derived from the current items and never stored.
type Stats struct {
	Total     int `json:"total"`
	Bought    int `json:"bought"`
	Remaining int `json:"remaining"`
}

// ComputeStats counts completion flags. An empty sequence yields zeros.
func ComputeStats(completed []bool) Stats {
	s := Stats{Total: len(completed)}
	for _, done := range completed {
		if done {
			s.Bought++
		}
	}
	s.Remaining = s.Total - s.Bought
	return s
}

// StatsOf computes stats for items.
func StatsOf(items []Item) Stats {
	flags := make([]bool, len(items))
	for i, item := range items {
		flags[i] = item.Completed
	}
	return ComputeStats(flags)
}

// Progress returns bought/total as a percentage rounded half up, 0 when empty.
func (s Stats) Progress() int {
	if s.Total <= 0 {
		return 0
	}
	return (200*s.Bought + s.Total) / (2 * s.Total)
}

// ProgressCSS renders Progress as a value for the --progress custom property.
func (s Stats) ProgressCSS() string {
	return fmt.Sprintf("%d%%", s.Progress())
}

// Subtitle renders the summary line shown under the list title.
func (s Stats) Subtitle() string {
	return fmt.Sprintf("%d de %d itens comprados", s.Bought, s.Total)
}
