package usecase

import (
	"testing"
	"time"

	"main/model"
)

func atHour(daysAgo, hour int) time.Time {
	return time.Date(
		testToday.Year(), testToday.Month(), testToday.Day()-daysAgo,
		hour, 30, 0, 0, time.UTC,
	)
}

func TestDailySeries(t *testing.T) {
	completions := []*model.Completion{
		completion("h1", relDay(0), 2, testToday),
		completion("h2", relDay(0), 1, testToday),
		completion("h1", relDay(3), 1, testToday),
		completion("h1", "bogus", 9, testToday),
	}

	series := DailySeries(completions, testToday, 7)

	if len(series) != 7 {
		t.Fatalf("got %d points, want 7", len(series))
	}
	if series[0].Date != relDay(6) || series[6].Date != relDay(0) {
		t.Errorf("series spans %q..%q, want %q..%q", series[0].Date, series[6].Date, relDay(6), relDay(0))
	}
	if series[6].Completions != 3 {
		t.Errorf("today = %d completions, want 3", series[6].Completions)
	}
	if series[3].Completions != 1 {
		t.Errorf("three days ago = %d completions, want 1", series[3].Completions)
	}
	if series[6].Day != "Sat" {
		t.Errorf("today labeled %q, want Sat", series[6].Day)
	}

	sum := 0
	for _, point := range series {
		sum += point.Completions
	}
	if sum != 4 {
		t.Errorf("series sum = %d, want 4", sum)
	}
}

func TestDailySeriesZeroFilled(t *testing.T) {
	series := DailySeries(nil, testToday, 30)
	if len(series) != 30 {
		t.Fatalf("got %d points, want 30", len(series))
	}
	for _, point := range series {
		if point.Completions != 0 {
			t.Errorf("%s = %d completions, want 0", point.Date, point.Completions)
		}
	}
}

func TestWeeklySeries(t *testing.T) {
	// Five completions spread across the current week, one the week before.
	completions := []*model.Completion{
		completion("h1", relDay(0), 1, testToday),
		completion("h1", relDay(1), 1, testToday),
		completion("h1", relDay(2), 1, testToday),
		completion("h1", relDay(3), 1, testToday),
		completion("h1", relDay(4), 1, testToday),
		completion("h1", relDay(10), 1, testToday),
	}

	series := WeeklySeries(completions, testToday, 8, time.Sunday)

	if len(series) != 8 {
		t.Fatalf("got %d weeks, want 8", len(series))
	}
	if series[0].Week != "Week 1" || series[7].Week != "Week 8" {
		t.Errorf("week labels %q..%q, want Week 1..Week 8", series[0].Week, series[7].Week)
	}
	if series[7].WeekStart != "2025-03-09" {
		t.Errorf("current week starts %q, want 2025-03-09", series[7].WeekStart)
	}

	current := series[7]
	if current.Completions != 5 {
		t.Errorf("current week = %d completions, want 5", current.Completions)
	}
	if current.Average != 0.7 {
		t.Errorf("current week average = %v, want 0.7", current.Average)
	}
	if series[6].Completions != 1 {
		t.Errorf("previous week = %d completions, want 1", series[6].Completions)
	}
}

func TestHourlySeries(t *testing.T) {
	completions := []*model.Completion{
		completion("h1", relDay(0), 2, atHour(0, 9)),
		completion("h2", relDay(1), 1, atHour(1, 9)),
		completion("h1", relDay(2), 1, atHour(2, 20)),
		completion("h1", relDay(10), 4, atHour(10, 9)), // outside the window
	}

	series := HourlySeries(completions, testToday, 7)

	if len(series) != 24 {
		t.Fatalf("got %d buckets, want exactly 24", len(series))
	}
	for hour, bucket := range series {
		if bucket.Hour != hour {
			t.Errorf("bucket %d carries hour %d", hour, bucket.Hour)
		}
		if bucket.Time != HourLabel(hour) {
			t.Errorf("bucket %d labeled %q, want %q", hour, bucket.Time, HourLabel(hour))
		}
	}
	if series[9].Completions != 3 {
		t.Errorf("09:00 = %d completions, want 3", series[9].Completions)
	}
	if series[20].Completions != 1 {
		t.Errorf("20:00 = %d completions, want 1", series[20].Completions)
	}
}

func TestHourlySeriesEmpty(t *testing.T) {
	series := HourlySeries(nil, testToday, 7)
	if len(series) != 24 {
		t.Fatalf("got %d buckets, want 24 even with no completions", len(series))
	}
}

func TestBestDayTieBreak(t *testing.T) {
	daily := []model.DailyPoint{
		{Date: "2025-03-10", Completions: 3},
		{Date: "2025-03-11", Completions: 5},
		{Date: "2025-03-12", Completions: 5},
	}
	if best := BestDay(daily); best.Date != "2025-03-11" {
		t.Errorf("best day = %q, want the earliest of the tied days", best.Date)
	}
	if best := BestDay(nil); best != (model.DailyPoint{}) {
		t.Errorf("best of empty = %+v, want zero value", best)
	}
}

func TestPeakHourTieBreak(t *testing.T) {
	hours := []model.HourBucket{
		{Hour: 7, Completions: 2},
		{Hour: 9, Completions: 2},
		{Hour: 21, Completions: 1},
	}
	if peak := PeakHour(hours); peak.Hour != 7 {
		t.Errorf("peak hour = %d, want the earliest of the tied hours", peak.Hour)
	}
	if peak := PeakHour(nil); peak != (model.HourBucket{}) {
		t.Errorf("peak of empty = %+v, want zero value", peak)
	}
}

func TestHabitPerformance(t *testing.T) {
	habits := []*model.Habit{
		{HabitID: "h1", Name: "Run", CategoryID: "c1", TargetFrequency: 1, IsActive: true},
		{HabitID: "h2", Name: "Read", TargetFrequency: 1, IsActive: true},
		{HabitID: "h3", Name: "Old", TargetFrequency: 1, IsActive: false},
	}
	categories := []*model.Category{
		{CategoryID: "c1", Name: "Health", Color: "#22c55e"},
	}
	completions := []*model.Completion{
		completion("h2", relDay(0), 1, testToday),
		completion("h2", relDay(1), 1, testToday),
		completion("h1", relDay(0), 1, testToday),
		completion("h3", relDay(0), 1, testToday),
	}

	rows := HabitPerformance(habits, completions, categories, testToday, 7)

	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2 (inactive habits excluded)", len(rows))
	}
	if rows[0].Name != "Read" || rows[0].Completions != 2 {
		t.Errorf("rows[0] = %+v, want Read with 2 completions first", rows[0])
	}
	if rows[1].Name != "Run" || rows[1].Completions != 1 {
		t.Errorf("rows[1] = %+v, want Run with 1 completion", rows[1])
	}
	if rows[0].Target != 7 || rows[0].Rate != 29 {
		t.Errorf("Read target/rate = %d/%d, want 7/29", rows[0].Target, rows[0].Rate)
	}
	if rows[0].Category != UncategorizedName {
		t.Errorf("Read category = %q, want %q", rows[0].Category, UncategorizedName)
	}
	if rows[1].Category != "Health" || rows[1].Color != "#22c55e" {
		t.Errorf("Run category = %q/%q, want Health/#22c55e", rows[1].Category, rows[1].Color)
	}
}
