package usecase

import (
	"fmt"
	"log"
	"math"
	"sort"
	"time"

	"main/model"
)

// DailySeries buckets all of the user's completions into one point per day of
// the trailing window, oldest first. Every requested day is present even when
// its count is zero.
func DailySeries(completions []*model.Completion, today time.Time, days int) []model.DailyPoint {
	perDay := make(map[string]int)
	for _, comp := range completions {
		if _, err := ParseDayKey(comp.CompletedAt); err != nil {
			log.Printf("Skipping completion %s: malformed date %q", comp.CompletionID, comp.CompletedAt)
			continue
		}
		count := comp.CompletedCount
		if count < 1 {
			count = 1
		}
		perDay[comp.CompletedAt] += count
	}

	series := make([]model.DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		date := DaysAgo(today, i)
		key := DayKey(date)
		series = append(series, model.DailyPoint{
			Date:        key,
			Day:         WeekdayShort(date),
			Completions: perDay[key],
		})
	}
	return series
}

// WeeklySeries sums completions per trailing week window, oldest first, and
// derives the per-day average rounded to one decimal.
func WeeklySeries(completions []*model.Completion, today time.Time, weeks int, weekStart time.Weekday) []model.WeeklyPoint {
	windows := WeekWindows(today, weeks, weekStart)

	series := make([]model.WeeklyPoint, 0, len(windows))
	for i, window := range windows {
		lower := DayKey(window.Start)
		upper := DayKey(window.End)

		sum := 0
		for _, comp := range completions {
			if _, err := ParseDayKey(comp.CompletedAt); err != nil {
				continue
			}
			if comp.CompletedAt < lower || comp.CompletedAt > upper {
				continue
			}
			count := comp.CompletedCount
			if count < 1 {
				count = 1
			}
			sum += count
		}

		series = append(series, model.WeeklyPoint{
			Week:        fmt.Sprintf("Week %d", i+1),
			WeekStart:   lower,
			Completions: sum,
			Average:     math.Round(float64(sum)/7*10) / 10,
		})
	}
	return series
}

// HourlySeries buckets windowed completions by the hour of day they were
// recorded (the record's created_at timestamp, since completed_at is
// date-only). The result always has exactly 24 buckets, zero counts included.
func HourlySeries(completions []*model.Completion, today time.Time, days int) []model.HourBucket {
	lower := DayKey(DaysAgo(today, days-1))
	upper := DayKey(today)

	counts := [24]int{}
	for _, comp := range completions {
		if _, err := ParseDayKey(comp.CompletedAt); err != nil {
			continue
		}
		if comp.CompletedAt < lower || comp.CompletedAt > upper {
			continue
		}
		count := comp.CompletedCount
		if count < 1 {
			count = 1
		}
		counts[comp.CreatedAt.Hour()] += count
	}

	series := make([]model.HourBucket, 24)
	for hour := 0; hour < 24; hour++ {
		series[hour] = model.HourBucket{
			Hour:        hour,
			Time:        HourLabel(hour),
			Completions: counts[hour],
		}
	}
	return series
}

// BestDay returns the daily point with the most completions. Ties keep the
// earliest point: the comparison is strictly greater, never greater-or-equal.
func BestDay(daily []model.DailyPoint) model.DailyPoint {
	if len(daily) == 0 {
		return model.DailyPoint{}
	}
	best := daily[0]
	for _, point := range daily[1:] {
		if point.Completions > best.Completions {
			best = point
		}
	}
	return best
}

// PeakHour returns the hour bucket with the most completions, with the same
// earliest-wins tie-break as BestDay.
func PeakHour(hours []model.HourBucket) model.HourBucket {
	if len(hours) == 0 {
		return model.HourBucket{}
	}
	best := hours[0]
	for _, bucket := range hours[1:] {
		if bucket.Completions > best.Completions {
			best = bucket
		}
	}
	return best
}

// HabitPerformance builds the per-habit analytics rows for active habits,
// ordered by windowed completions descending.
func HabitPerformance(habits []*model.Habit, completions []*model.Completion, categories []*model.Category, today time.Time, days int) []model.HabitPerformanceRow {
	totals := WindowTotals(completions, today, days)
	byID := categoryLookup(categories)

	rows := make([]model.HabitPerformanceRow, 0, len(habits))
	for _, habit := range habits {
		if !habit.IsActive {
			continue
		}
		name, color := categoryLabel(habit.CategoryID, byID)
		rows = append(rows, model.HabitPerformanceRow{
			Name:        habit.Name,
			Completions: totals[habit.HabitID],
			Target:      habit.TargetFrequency * days,
			Rate:        CompletionRate(totals[habit.HabitID], habit.TargetFrequency, days),
			Category:    name,
			Color:       color,
		})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Completions > rows[j].Completions
	})
	return rows
}
