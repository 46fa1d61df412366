package usecase

import (
	"log"
	"sort"

	"main/model"
)

// BuildCompletionIndex groups completion records by habit into
// descending-sorted unique day keys. Records whose completed_at does not parse
// as a day key are logged and skipped rather than aborting the computation.
// Duplicate (habit, day) records collapse to a single entry; the repository
// enforces that uniqueness, but the index does not depend on it.
func BuildCompletionIndex(completions []*model.Completion) map[string][]string {
	seen := make(map[string]map[string]struct{})
	for _, comp := range completions {
		if _, err := ParseDayKey(comp.CompletedAt); err != nil {
			log.Printf("Skipping completion %s: malformed date %q", comp.CompletionID, comp.CompletedAt)
			continue
		}
		if seen[comp.HabitID] == nil {
			seen[comp.HabitID] = make(map[string]struct{})
		}
		seen[comp.HabitID][comp.CompletedAt] = struct{}{}
	}

	index := make(map[string][]string, len(seen))
	for habitID, days := range seen {
		keys := make([]string, 0, len(days))
		for day := range days {
			keys = append(keys, day)
		}
		sort.Sort(sort.Reverse(sort.StringSlice(keys)))
		index[habitID] = keys
	}
	return index
}
