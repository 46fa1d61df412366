package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
)

type fakeHabitStore struct {
	habits []*model.Habit
	err    error
}

func (s *fakeHabitStore) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return s.habits, s.err
}

type fakeCompletionStore struct {
	completions []*model.Completion
	lastSince   string
}

func (s *fakeCompletionStore) GetUserCompletionsSince(ctx context.Context, userID string, since string) ([]*model.Completion, error) {
	s.lastSince = since
	if since == "" {
		return s.completions, nil
	}
	var out []*model.Completion
	for _, comp := range s.completions {
		if comp.CompletedAt >= since {
			out = append(out, comp)
		}
	}
	return out, nil
}

type fakeCategoryStore struct {
	categories []*model.Category
}

func (s *fakeCategoryStore) GetCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categories, nil
}

func dashboardFixture() ([]*model.Habit, []*model.Completion, []*model.Category) {
	habits := []*model.Habit{
		{HabitID: "h1", Name: "Run", CategoryID: "c1", TargetFrequency: 1, IsActive: true},
		{HabitID: "h2", Name: "Read", TargetFrequency: 2, IsActive: true},
		{HabitID: "h3", Name: "Old", TargetFrequency: 1, IsActive: false},
	}
	completions := []*model.Completion{
		// h1: three-day streak ending today.
		completion("h1", relDay(0), 1, testToday),
		completion("h1", relDay(1), 1, testToday),
		completion("h1", relDay(2), 1, testToday),
		// h2: alive via yesterday, longest run of three further back.
		completion("h2", relDay(1), 1, testToday),
		completion("h2", relDay(5), 1, testToday),
		completion("h2", relDay(6), 1, testToday),
		completion("h2", relDay(7), 1, testToday),
	}
	categories := []*model.Category{
		{CategoryID: "c1", Name: "Health", Color: "#22c55e"},
	}
	return habits, completions, categories
}

func TestComputeDashboardStats(t *testing.T) {
	habits, completions, categories := dashboardFixture()

	stats := ComputeDashboardStats(habits, completions, categories, testToday, 7)

	if stats.TotalHabits != 2 {
		t.Errorf("TotalHabits = %d, want 2 (active only)", stats.TotalHabits)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d, want 1", stats.CompletedToday)
	}
	// Scalar streaks are the maximum across active habits.
	if stats.CurrentStreak != 3 {
		t.Errorf("CurrentStreak = %d, want 3", stats.CurrentStreak)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", stats.LongestStreak)
	}
	// h1: 3/7 -> 43. h2: 3 in-window completions of 14 expected -> 21.
	// Overall rate is the average: round((43+21)/2) = 32.
	if stats.CompletionRate != 32 {
		t.Errorf("CompletionRate = %d, want 32", stats.CompletionRate)
	}
	if stats.TotalCompletions != 6 {
		t.Errorf("TotalCompletions = %d, want 6", stats.TotalCompletions)
	}

	if len(stats.Habits) != 2 {
		t.Fatalf("got %d habit rows, want 2", len(stats.Habits))
	}
	run := stats.Habits[0]
	if run.HabitID != "h1" || run.CurrentStreak != 3 || run.LongestStreak != 3 || run.CompletionRate != 43 {
		t.Errorf("h1 row = %+v, want streaks 3/3 and rate 43", run)
	}
	if !run.IsCompletedToday {
		t.Error("h1 should be completed today")
	}
	if run.CategoryName != "Health" || run.CategoryColor != "#22c55e" {
		t.Errorf("h1 category = %q/%q, want Health/#22c55e", run.CategoryName, run.CategoryColor)
	}
	read := stats.Habits[1]
	if read.CurrentStreak != 1 || read.LongestStreak != 3 {
		t.Errorf("h2 streaks = %d/%d, want 1/3", read.CurrentStreak, read.LongestStreak)
	}
	if read.IsCompletedToday {
		t.Error("h2 should not be completed today")
	}
	if read.CategoryName != UncategorizedName {
		t.Errorf("h2 category = %q, want %q", read.CategoryName, UncategorizedName)
	}

	if len(stats.CategoryStats) != 2 {
		t.Errorf("got %d category stats, want 2", len(stats.CategoryStats))
	}
}

func TestComputeDashboardStatsNoHabits(t *testing.T) {
	stats := ComputeDashboardStats(nil, nil, nil, testToday, 7)

	if stats.TotalHabits != 0 || stats.CompletionRate != 0 || stats.CurrentStreak != 0 {
		t.Errorf("empty dashboard = %+v, want zeros", stats)
	}
	// Slices serialize as [] rather than null.
	if stats.Habits == nil {
		t.Error("Habits slice is nil")
	}
	if stats.CategoryStats == nil {
		t.Error("CategoryStats slice is nil")
	}
}

func TestComputeAnalyticsReport(t *testing.T) {
	habits := []*model.Habit{
		{HabitID: "h1", Name: "Run", TargetFrequency: 1, IsActive: true},
	}
	completions := []*model.Completion{
		completion("h1", relDay(0), 2, atHour(0, 9)),
		completion("h2", relDay(1), 1, atHour(1, 9)),
		completion("h1", relDay(3), 1, atHour(3, 20)),
	}

	report := ComputeAnalyticsReport(habits, completions, nil, testToday, 7)

	if len(report.DailyCompletions) != 7 {
		t.Errorf("got %d daily points, want 7", len(report.DailyCompletions))
	}
	if len(report.WeeklyTrends) != DefaultTrendWeeks {
		t.Errorf("got %d weekly points, want %d", len(report.WeeklyTrends), DefaultTrendWeeks)
	}
	if len(report.TimeOfDay) != 24 {
		t.Errorf("got %d hour buckets, want 24", len(report.TimeOfDay))
	}

	dailySum := 0
	for _, point := range report.DailyCompletions {
		dailySum += point.Completions
	}
	if report.Summary.TotalCompletions != dailySum {
		t.Errorf("summary total %d != daily sum %d", report.Summary.TotalCompletions, dailySum)
	}
	if report.Summary.TotalCompletions != 4 {
		t.Errorf("TotalCompletions = %d, want 4", report.Summary.TotalCompletions)
	}
	if report.Summary.AverageDaily != 0.6 {
		t.Errorf("AverageDaily = %v, want 0.6", report.Summary.AverageDaily)
	}
	if report.Summary.BestDay.Date != relDay(0) || report.Summary.BestDay.Completions != 2 {
		t.Errorf("BestDay = %+v, want today with 2", report.Summary.BestDay)
	}
	if report.Summary.MostProductiveHour.Hour != 9 || report.Summary.MostProductiveHour.Completions != 3 {
		t.Errorf("MostProductiveHour = %+v, want 09:00 with 3", report.Summary.MostProductiveHour)
	}

	if len(report.HabitPerformance) != 1 || report.HabitPerformance[0].Name != "Run" {
		t.Errorf("HabitPerformance = %+v, want the single active habit", report.HabitPerformance)
	}
}

func TestDashboardStatsFetchesFullHistory(t *testing.T) {
	habits, completions, categories := dashboardFixture()
	completionStore := &fakeCompletionStore{completions: completions}
	svc := NewStatsService(
		&fakeHabitStore{habits: habits},
		completionStore,
		&fakeCategoryStore{categories: categories},
	)

	stats, err := svc.DashboardStats(context.Background(), "user-1", testToday, 7)
	if err != nil {
		t.Fatalf("DashboardStats: %v", err)
	}
	// Streaks need the full history, so the dashboard must not pass a lower
	// bound even when the rate window is 7 days.
	if completionStore.lastSince != "" {
		t.Errorf("dashboard fetched since %q, want no lower bound", completionStore.lastSince)
	}
	if stats.LongestStreak != 3 {
		t.Errorf("LongestStreak = %d, want 3", stats.LongestStreak)
	}
}

func TestAnalyticsReportFetchCoversTrendWeeks(t *testing.T) {
	completionStore := &fakeCompletionStore{}
	svc := NewStatsService(
		&fakeHabitStore{},
		completionStore,
		&fakeCategoryStore{},
	)

	// The 8 trailing trend weeks reach further back than the default 30-day
	// window, so the fetch bound must follow the first week, not the window.
	if _, err := svc.AnalyticsReport(context.Background(), "user-1", testToday, 30); err != nil {
		t.Fatalf("AnalyticsReport: %v", err)
	}
	want := DayKey(WeekWindows(testToday, DefaultTrendWeeks, DefaultWeekStart)[0].Start)
	if completionStore.lastSince != want {
		t.Errorf("analytics fetched since %q, want %q", completionStore.lastSince, want)
	}

	// A window wider than the trend span wins the other way around.
	if _, err := svc.AnalyticsReport(context.Background(), "user-1", testToday, 90); err != nil {
		t.Fatalf("AnalyticsReport: %v", err)
	}
	if want := relDay(89); completionStore.lastSince != want {
		t.Errorf("analytics fetched since %q, want %q", completionStore.lastSince, want)
	}
}

func TestAnalyticsReportKeepsOldTrendCompletions(t *testing.T) {
	// A completion older than the 30-day window but inside the trend span must
	// still show up in the weekly series.
	completionStore := &fakeCompletionStore{completions: []*model.Completion{
		completion("h1", relDay(40), 1, atHour(40, 9)),
	}}
	svc := NewStatsService(
		&fakeHabitStore{},
		completionStore,
		&fakeCategoryStore{},
	)

	report, err := svc.AnalyticsReport(context.Background(), "user-1", testToday, 30)
	if err != nil {
		t.Fatalf("AnalyticsReport: %v", err)
	}

	weeklySum := 0
	for _, point := range report.WeeklyTrends {
		weeklySum += point.Completions
	}
	if weeklySum != 1 {
		t.Errorf("weekly trends sum = %d, want 1", weeklySum)
	}

	// The day-window computations stay bounded: nothing 40 days old leaks into
	// the daily series or the summary total.
	if report.Summary.TotalCompletions != 0 {
		t.Errorf("summary total = %d, want 0", report.Summary.TotalCompletions)
	}
	for _, bucket := range report.TimeOfDay {
		if bucket.Completions != 0 {
			t.Errorf("hour %d = %d completions, want 0", bucket.Hour, bucket.Completions)
		}
	}
}

func TestDashboardStatsPropagatesStoreErrors(t *testing.T) {
	storeErr := errors.New("mongo down")
	svc := NewStatsService(
		&fakeHabitStore{err: storeErr},
		&fakeCompletionStore{},
		&fakeCategoryStore{},
	)

	if _, err := svc.DashboardStats(context.Background(), "user-1", testToday, 7); !errors.Is(err, storeErr) {
		t.Errorf("got err %v, want %v", err, storeErr)
	}
}
