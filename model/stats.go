package model

// Derived statistics. Everything here is recomputed from the completion set on
// each request and never persisted.

type StreakResult struct {
	Current int `json:"current_streak"`
	Longest int `json:"longest_streak"`
}

// HabitStatsRow is the per-habit block of the dashboard stats response.
type HabitStatsRow struct {
	HabitID          string `json:"id"`
	Name             string `json:"name"`
	TargetFrequency  int    `json:"target_frequency"`
	CategoryName     string `json:"category_name"`
	CategoryColor    string `json:"category_color"`
	Completions      int    `json:"completions"`
	CurrentStreak    int    `json:"current_streak"`
	LongestStreak    int    `json:"longest_streak"`
	CompletionRate   int    `json:"completion_rate"`
	IsCompletedToday bool   `json:"is_completed_today"`
}

type CategoryStat struct {
	CategoryName string `json:"category_name"`
	Color        string `json:"color"`
	Completed    int    `json:"completed"`
	Total        int    `json:"total"` // expected completions: sum(target_frequency) * window days
	Rate         int    `json:"rate"`
}

type DashboardStats struct {
	TotalHabits      int             `json:"total_habits"`
	CompletedToday   int             `json:"completed_today"`
	CurrentStreak    int             `json:"current_streak"`
	LongestStreak    int             `json:"longest_streak"`
	CompletionRate   int             `json:"completion_rate"`
	TotalCompletions int             `json:"total_completions"`
	Habits           []HabitStatsRow `json:"habits"`
	CategoryStats    []CategoryStat  `json:"category_stats"`
}

type DailyPoint struct {
	Date        string `json:"date"`
	Day         string `json:"day"` // weekday short name, e.g. Mon
	Completions int    `json:"completions"`
}

type WeeklyPoint struct {
	Week        string  `json:"week"`
	WeekStart   string  `json:"week_start"`
	Completions int     `json:"completions"`
	Average     float64 `json:"average"` // completions / 7, one decimal
}

type HourBucket struct {
	Hour        int    `json:"hour"`
	Time        string `json:"time"` // HH:00
	Completions int    `json:"completions"`
}

type HabitPerformanceRow struct {
	Name        string `json:"name"`
	Completions int    `json:"completions"`
	Target      int    `json:"target"` // target_frequency * window days
	Rate        int    `json:"rate"`   // uncapped, >100% means over-achievement
	Category    string `json:"category"`
	Color       string `json:"color"`
}

type AnalyticsSummary struct {
	TotalCompletions   int        `json:"total_completions"`
	AverageDaily       float64    `json:"average_daily"`
	BestDay            DailyPoint `json:"best_day"`
	MostProductiveHour HourBucket `json:"most_productive_hour"`
}

type AnalyticsReport struct {
	DailyCompletions []DailyPoint          `json:"daily_completions"`
	WeeklyTrends     []WeeklyPoint         `json:"weekly_trends"`
	HabitPerformance []HabitPerformanceRow `json:"habit_performance"`
	TimeOfDay        []HourBucket          `json:"time_of_day"`
	Summary          AnalyticsSummary      `json:"summary"`
}
