package usecase

import (
	"testing"

	"main/model"
)

func TestComputeHabitStreak(t *testing.T) {
	tests := []struct {
		name        string
		sortedDates []string
		want        model.StreakResult
	}{
		{
			name:        "no completions",
			sortedDates: nil,
			want:        model.StreakResult{Current: 0, Longest: 0},
		},
		{
			name:        "single completion today",
			sortedDates: []string{relDay(0)},
			want:        model.StreakResult{Current: 1, Longest: 1},
		},
		{
			name:        "single completion yesterday still alive",
			sortedDates: []string{relDay(1)},
			want:        model.StreakResult{Current: 1, Longest: 1},
		},
		{
			name:        "latest completion two days old is broken",
			sortedDates: []string{relDay(2)},
			want:        model.StreakResult{Current: 0, Longest: 1},
		},
		{
			name:        "three consecutive days ending today",
			sortedDates: []string{relDay(0), relDay(1), relDay(2)},
			want:        model.StreakResult{Current: 3, Longest: 3},
		},
		{
			name:        "run ending yesterday counts in full",
			sortedDates: []string{relDay(1), relDay(2), relDay(3)},
			want:        model.StreakResult{Current: 3, Longest: 3},
		},
		{
			name:        "gap splits current from longest",
			sortedDates: []string{relDay(0), relDay(1), relDay(5), relDay(6), relDay(7)},
			want:        model.StreakResult{Current: 2, Longest: 3},
		},
		{
			name:        "longest run entirely in the past",
			sortedDates: []string{relDay(0), relDay(4), relDay(5), relDay(6), relDay(7)},
			want:        model.StreakResult{Current: 1, Longest: 4},
		},
		{
			name:        "old scattered completions",
			sortedDates: []string{relDay(10), relDay(20), relDay(30)},
			want:        model.StreakResult{Current: 0, Longest: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeHabitStreak(tt.sortedDates, testToday)
			if got != tt.want {
				t.Errorf("ComputeHabitStreak() = %+v, want %+v", got, tt.want)
			}
			if got.Longest < got.Current {
				t.Errorf("longest %d < current %d", got.Longest, got.Current)
			}
		})
	}
}

func TestComputeHabitStreakSkipsMalformedDates(t *testing.T) {
	got := ComputeHabitStreak([]string{relDay(0), "bogus", relDay(5)}, testToday)
	if got.Current != 1 {
		t.Errorf("current = %d, want 1", got.Current)
	}
	if got.Longest < 1 {
		t.Errorf("longest = %d, want >= 1", got.Longest)
	}
}

func TestBuildCompletionIndex(t *testing.T) {
	completions := []*model.Completion{
		{CompletionID: "1", HabitID: "h1", CompletedAt: relDay(2)},
		{CompletionID: "2", HabitID: "h1", CompletedAt: relDay(0)},
		{CompletionID: "3", HabitID: "h1", CompletedAt: relDay(0)}, // duplicate day
		{CompletionID: "4", HabitID: "h2", CompletedAt: relDay(1)},
		{CompletionID: "5", HabitID: "h2", CompletedAt: "garbage"},
	}

	index := BuildCompletionIndex(completions)

	if got := index["h1"]; len(got) != 2 || got[0] != relDay(0) || got[1] != relDay(2) {
		t.Errorf("h1 index = %v, want [%s %s]", got, relDay(0), relDay(2))
	}
	if got := index["h2"]; len(got) != 1 || got[0] != relDay(1) {
		t.Errorf("h2 index = %v, want [%s]", got, relDay(1))
	}
}

func TestBuildCompletionIndexEmpty(t *testing.T) {
	if index := BuildCompletionIndex(nil); len(index) != 0 {
		t.Errorf("got %v, want empty map", index)
	}
}
