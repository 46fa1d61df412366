package usecase

import (
	"time"

	"main/model"
)

// ComputeHabitStreak computes the current and longest run of consecutive
// completion days for one habit. sortedDates must be unique day keys in
// descending order, as produced by BuildCompletionIndex.
//
// The current streak is alive only while the most recent completion is today
// or yesterday; anything older means the streak is broken and reads zero. A
// streak that ends yesterday still counts: completing today extends it rather
// than restarting it.
func ComputeHabitStreak(sortedDates []string, today time.Time) model.StreakResult {
	var result model.StreakResult
	if len(sortedDates) == 0 {
		return result
	}

	anchor := -1
	switch sortedDates[0] {
	case DayKey(today):
		anchor = 0
	case DayKey(DaysAgo(today, 1)):
		anchor = 1
	}

	if anchor >= 0 {
		for i, day := range sortedDates {
			if day != DayKey(DaysAgo(today, i+anchor)) {
				break
			}
			result.Current++
		}
	}

	// Longest streak: walk from the oldest date forward, resetting the run
	// whenever the gap to the previous day is not exactly one day.
	run := 1
	result.Longest = 1
	for i := len(sortedDates) - 1; i > 0; i-- {
		older, err := ParseDayKey(sortedDates[i])
		if err != nil {
			run = 1
			continue
		}
		if DayKey(older.AddDate(0, 0, 1)) == sortedDates[i-1] {
			run++
		} else {
			run = 1
		}
		if run > result.Longest {
			result.Longest = run
		}
	}

	return result
}
