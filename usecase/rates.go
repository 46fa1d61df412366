package usecase

import (
	"log"
	"math"
	"sort"
	"time"

	"main/model"
)

// Sentinels for habits that reference no category, matching the UI fallbacks.
const (
	UncategorizedName  = "Uncategorized"
	UncategorizedColor = "#6b7280"
)

// WindowTotals sums completed_count per habit over the trailing window of
// `days` days ending at today. Records with malformed dates are logged and
// skipped. Counts, unlike streaks, honor multiple completions per day.
func WindowTotals(completions []*model.Completion, today time.Time, days int) map[string]int {
	lower := DayKey(DaysAgo(today, days-1))
	upper := DayKey(today)

	totals := make(map[string]int)
	for _, comp := range completions {
		if _, err := ParseDayKey(comp.CompletedAt); err != nil {
			log.Printf("Skipping completion %s: malformed date %q", comp.CompletionID, comp.CompletedAt)
			continue
		}
		if comp.CompletedAt < lower || comp.CompletedAt > upper {
			continue
		}
		count := comp.CompletedCount
		if count < 1 {
			count = 1
		}
		totals[comp.HabitID] += count
	}
	return totals
}

// CompletionRate returns the percentage of actual vs expected completions for
// a window. The rate is deliberately uncapped: more completions than
// target_frequency * days reads as over 100%.
func CompletionRate(completions, targetFrequency, days int) int {
	expected := targetFrequency * days
	if expected <= 0 {
		return 0
	}
	return int(math.Round(float64(completions) / float64(expected) * 100))
}

// ComputeCategoryStats rolls windowed completion totals up per category over
// the user's active habits. Categories with no active habits are omitted
// entirely, which also keeps the rate denominator nonzero. Habits without a
// category aggregate under the Uncategorized sentinel.
func ComputeCategoryStats(habits []*model.Habit, completions []*model.Completion, categories []*model.Category, today time.Time, days int) []model.CategoryStat {
	totals := WindowTotals(completions, today, days)
	byID := categoryLookup(categories)

	type rollup struct {
		completed int
		expected  int
	}
	rollups := make(map[string]*rollup)
	for _, habit := range habits {
		if !habit.IsActive {
			continue
		}
		agg := rollups[habit.CategoryID]
		if agg == nil {
			agg = &rollup{}
			rollups[habit.CategoryID] = agg
		}
		agg.completed += totals[habit.HabitID]
		agg.expected += habit.TargetFrequency * days
	}

	stats := make([]model.CategoryStat, 0, len(rollups))
	for categoryID, agg := range rollups {
		if agg.expected <= 0 {
			continue
		}
		name, color := categoryLabel(categoryID, byID)
		stats = append(stats, model.CategoryStat{
			CategoryName: name,
			Color:        color,
			Completed:    agg.completed,
			Total:        agg.expected,
			Rate:         int(math.Round(float64(agg.completed) / float64(agg.expected) * 100)),
		})
	}

	sort.Slice(stats, func(i, j int) bool {
		return stats[i].CategoryName < stats[j].CategoryName
	})
	return stats
}

func categoryLookup(categories []*model.Category) map[string]*model.Category {
	byID := make(map[string]*model.Category, len(categories))
	for _, category := range categories {
		byID[category.CategoryID] = category
	}
	return byID
}

// categoryLabel resolves a habit's category reference to a display name and
// color, falling back to the Uncategorized sentinels when the reference is
// empty or dangling.
func categoryLabel(categoryID string, byID map[string]*model.Category) (string, string) {
	category, ok := byID[categoryID]
	if categoryID == "" || !ok {
		return UncategorizedName, UncategorizedColor
	}
	name := category.Name
	color := category.Color
	if name == "" {
		name = UncategorizedName
	}
	if color == "" {
		color = UncategorizedColor
	}
	return name, color
}
