package usecase

import (
	"testing"
	"time"

	"main/model"
)

func completion(habitID, day string, count int, createdAt time.Time) *model.Completion {
	return &model.Completion{
		CompletionID:   habitID + "-" + day,
		HabitID:        habitID,
		UserID:         "user-1",
		CompletedAt:    day,
		CompletedCount: count,
		CreatedAt:      createdAt,
	}
}

func TestWindowTotals(t *testing.T) {
	completions := []*model.Completion{
		completion("h1", relDay(0), 2, testToday),
		completion("h1", relDay(6), 1, testToday),
		completion("h1", relDay(7), 1, testToday), // just outside a 7-day window
		completion("h2", relDay(3), 0, testToday), // zero count still counts once
		completion("h2", "bogus", 5, testToday),
	}

	totals := WindowTotals(completions, testToday, 7)

	if totals["h1"] != 3 {
		t.Errorf("h1 total = %d, want 3", totals["h1"])
	}
	if totals["h2"] != 1 {
		t.Errorf("h2 total = %d, want 1", totals["h2"])
	}
}

func TestCompletionRate(t *testing.T) {
	tests := []struct {
		name            string
		completions     int
		targetFrequency int
		days            int
		want            int
	}{
		{"three of seven", 3, 1, 7, 43},
		{"perfect week", 7, 1, 7, 100},
		{"over-achievement is uncapped", 10, 1, 7, 143},
		{"twice-daily target", 7, 2, 7, 50},
		{"zero completions", 0, 1, 7, 0},
		{"zero target guards the division", 3, 0, 7, 0},
		{"zero days guards the division", 3, 1, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CompletionRate(tt.completions, tt.targetFrequency, tt.days)
			if got != tt.want {
				t.Errorf("CompletionRate(%d, %d, %d) = %d, want %d",
					tt.completions, tt.targetFrequency, tt.days, got, tt.want)
			}
		})
	}
}

func TestCompletionRateMonotonic(t *testing.T) {
	prev := -1
	for completions := 0; completions <= 20; completions++ {
		rate := CompletionRate(completions, 1, 7)
		if rate < prev {
			t.Fatalf("rate dropped from %d to %d at %d completions", prev, rate, completions)
		}
		prev = rate
	}
}

func TestComputeCategoryStats(t *testing.T) {
	habits := []*model.Habit{
		{HabitID: "h1", Name: "Run", CategoryID: "c1", TargetFrequency: 1, IsActive: true},
		{HabitID: "h2", Name: "Read", CategoryID: "", TargetFrequency: 2, IsActive: true},
		{HabitID: "h3", Name: "Old", CategoryID: "c2", TargetFrequency: 1, IsActive: false},
	}
	categories := []*model.Category{
		{CategoryID: "c1", Name: "Health", Color: "#22c55e"},
		{CategoryID: "c2", Name: "Archive", Color: "#000000"},
	}
	completions := []*model.Completion{
		completion("h1", relDay(0), 1, testToday),
		completion("h1", relDay(1), 1, testToday),
		completion("h1", relDay(2), 1, testToday),
		completion("h2", relDay(0), 3, testToday),
	}

	stats := ComputeCategoryStats(habits, completions, categories, testToday, 7)

	if len(stats) != 2 {
		t.Fatalf("got %d category stats, want 2 (inactive-only categories omitted)", len(stats))
	}

	// Sorted by category name, so Health precedes Uncategorized.
	health := stats[0]
	if health.CategoryName != "Health" || health.Color != "#22c55e" {
		t.Errorf("stats[0] = %+v, want Health/#22c55e", health)
	}
	if health.Completed != 3 || health.Total != 7 || health.Rate != 43 {
		t.Errorf("Health = %+v, want completed 3, total 7, rate 43", health)
	}

	uncat := stats[1]
	if uncat.CategoryName != UncategorizedName || uncat.Color != UncategorizedColor {
		t.Errorf("stats[1] = %+v, want the Uncategorized sentinels", uncat)
	}
	if uncat.Completed != 3 || uncat.Total != 14 || uncat.Rate != 21 {
		t.Errorf("Uncategorized = %+v, want completed 3, total 14, rate 21", uncat)
	}
}

func TestComputeCategoryStatsDanglingReference(t *testing.T) {
	habits := []*model.Habit{
		{HabitID: "h1", Name: "Run", CategoryID: "deleted", TargetFrequency: 1, IsActive: true},
	}

	stats := ComputeCategoryStats(habits, nil, nil, testToday, 7)

	if len(stats) != 1 {
		t.Fatalf("got %d stats, want 1", len(stats))
	}
	if stats[0].CategoryName != UncategorizedName || stats[0].Color != UncategorizedColor {
		t.Errorf("dangling category = %+v, want the Uncategorized sentinels", stats[0])
	}
}
