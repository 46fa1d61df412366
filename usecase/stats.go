package usecase

import (
	"context"
	"math"
	"time"

	"main/model"
)

// Window defaults for the stats and analytics routes, overridable per request
// via the `days` query parameter.
const (
	DefaultDashboardWindowDays = 7
	DefaultAnalyticsWindowDays = 30
	DefaultTrendWeeks          = 8
	DefaultWeekStart           = time.Sunday
)

type HabitStore interface {
	GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error)
}

type CompletionStore interface {
	// GetUserCompletionsSince returns the user's completions with
	// completed_at >= since; an empty since means no lower bound.
	GetUserCompletionsSince(ctx context.Context, userID string, since string) ([]*model.Completion, error)
}

type CategoryStore interface {
	GetCategories(ctx context.Context) ([]*model.Category, error)
}

// StatsService feeds the pure stat computations from storage snapshots. It
// holds no state of its own: every request recomputes from whatever the
// repositories return at that moment.
type StatsService struct {
	Habits      HabitStore
	Completions CompletionStore
	Categories  CategoryStore
}

func NewStatsService(habits HabitStore, completions CompletionStore, categories CategoryStore) *StatsService {
	return &StatsService{
		Habits:      habits,
		Completions: completions,
		Categories:  categories,
	}
}

// DashboardStats assembles the compact dashboard summary. Completions are
// fetched without a lower bound so streaks reflect the full history rather
// than being clipped to the rate window.
func (svc *StatsService) DashboardStats(ctx context.Context, userID string, today time.Time, days int) (*model.DashboardStats, error) {
	habits, err := svc.Habits.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	completions, err := svc.Completions.GetUserCompletionsSince(ctx, userID, "")
	if err != nil {
		return nil, err
	}
	categories, err := svc.Categories.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeDashboardStats(habits, completions, categories, today, days), nil
}

// AnalyticsReport assembles the detailed analytics report over the trailing
// window of `days` days. The fetch reaches back to whichever is older, the day
// window or the first trailing trend week: the weekly series spans
// DefaultTrendWeeks regardless of the day window, so a fetch clipped to `days`
// would zero out the older trend points. The daily, hourly, and performance
// computations window-filter the wider snapshot themselves.
func (svc *StatsService) AnalyticsReport(ctx context.Context, userID string, today time.Time, days int) (*model.AnalyticsReport, error) {
	habits, err := svc.Habits.GetUserHabits(ctx, userID)
	if err != nil {
		return nil, err
	}
	since := DayKey(DaysAgo(today, days-1))
	if trendStart := DayKey(WeekWindows(today, DefaultTrendWeeks, DefaultWeekStart)[0].Start); trendStart < since {
		since = trendStart
	}
	completions, err := svc.Completions.GetUserCompletionsSince(ctx, userID, since)
	if err != nil {
		return nil, err
	}
	categories, err := svc.Categories.GetCategories(ctx)
	if err != nil {
		return nil, err
	}
	return ComputeAnalyticsReport(habits, completions, categories, today, days), nil
}

// ComputeDashboardStats is the pure composition behind the dashboard stats
// route. The scalar streak pair is the maximum across active habits; the
// overall completion rate is the plain average of per-habit rates, zero when
// the user has no active habits.
func ComputeDashboardStats(habits []*model.Habit, completions []*model.Completion, categories []*model.Category, today time.Time, days int) *model.DashboardStats {
	index := BuildCompletionIndex(completions)
	totals := WindowTotals(completions, today, days)
	byID := categoryLookup(categories)
	todayKey := DayKey(today)

	stats := &model.DashboardStats{
		Habits:        []model.HabitStatsRow{},
		CategoryStats: []model.CategoryStat{},
	}

	rateSum := 0
	for _, habit := range habits {
		if !habit.IsActive {
			continue
		}
		stats.TotalHabits++

		dates := index[habit.HabitID]
		streak := ComputeHabitStreak(dates, today)
		completedToday := len(dates) > 0 && dates[0] == todayKey
		if completedToday {
			stats.CompletedToday++
		}

		rate := CompletionRate(totals[habit.HabitID], habit.TargetFrequency, days)
		rateSum += rate
		stats.TotalCompletions += totals[habit.HabitID]

		name, color := categoryLabel(habit.CategoryID, byID)
		stats.Habits = append(stats.Habits, model.HabitStatsRow{
			HabitID:          habit.HabitID,
			Name:             habit.Name,
			TargetFrequency:  habit.TargetFrequency,
			CategoryName:     name,
			CategoryColor:    color,
			Completions:      totals[habit.HabitID],
			CurrentStreak:    streak.Current,
			LongestStreak:    streak.Longest,
			CompletionRate:   rate,
			IsCompletedToday: completedToday,
		})

		if streak.Current > stats.CurrentStreak {
			stats.CurrentStreak = streak.Current
		}
		if streak.Longest > stats.LongestStreak {
			stats.LongestStreak = streak.Longest
		}
	}

	if stats.TotalHabits > 0 {
		stats.CompletionRate = int(math.Round(float64(rateSum) / float64(stats.TotalHabits)))
	}
	stats.CategoryStats = ComputeCategoryStats(habits, completions, categories, today, days)
	return stats
}

// ComputeAnalyticsReport is the pure composition behind the analytics route.
// The daily, weekly, and hourly series count every completion the user made
// in range; the performance rows cover active habits only.
func ComputeAnalyticsReport(habits []*model.Habit, completions []*model.Completion, categories []*model.Category, today time.Time, days int) *model.AnalyticsReport {
	daily := DailySeries(completions, today, days)
	hours := HourlySeries(completions, today, days)

	total := 0
	for _, point := range daily {
		total += point.Completions
	}
	averageDaily := 0.0
	if days > 0 {
		averageDaily = math.Round(float64(total)/float64(days)*10) / 10
	}

	return &model.AnalyticsReport{
		DailyCompletions: daily,
		WeeklyTrends:     WeeklySeries(completions, today, DefaultTrendWeeks, DefaultWeekStart),
		HabitPerformance: HabitPerformance(habits, completions, categories, today, days),
		TimeOfDay:        hours,
		Summary: model.AnalyticsSummary{
			TotalCompletions:   total,
			AverageDaily:       averageDaily,
			BestDay:            BestDay(daily),
			MostProductiveHour: PeakHour(hours),
		},
	}
}
