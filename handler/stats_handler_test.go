package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"main/model"
	"main/usecase"

	"github.com/gin-gonic/gin"
)

type stubHabitStore struct{ habits []*model.Habit }

func (s *stubHabitStore) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return s.habits, nil
}

type stubCompletionStore struct{ completions []*model.Completion }

func (s *stubCompletionStore) GetUserCompletionsSince(ctx context.Context, userID string, since string) ([]*model.Completion, error) {
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

type stubCategoryStore struct{ categories []*model.Category }

func (s *stubCategoryStore) GetCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categories, nil
}

func statsTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	now := time.Now()
	dayKey := func(n int) string {
		return usecase.DayKey(usecase.DaysAgo(now, n))
	}

	habits := []*model.Habit{
		{HabitID: "h1", UserID: "user-1", Name: "Run", TargetFrequency: 1, IsActive: true},
		{HabitID: "h2", UserID: "user-1", Name: "Old", TargetFrequency: 1, IsActive: false},
	}
	completions := []*model.Completion{
		{CompletionID: "1", HabitID: "h1", UserID: "user-1", CompletedAt: dayKey(0), CompletedCount: 1, CreatedAt: now},
		{CompletionID: "2", HabitID: "h1", UserID: "user-1", CompletedAt: dayKey(1), CompletedCount: 1, CreatedAt: now},
		{CompletionID: "3", HabitID: "h1", UserID: "user-1", CompletedAt: dayKey(2), CompletedCount: 1, CreatedAt: now},
	}

	svc := usecase.NewStatsService(
		&stubHabitStore{habits: habits},
		&stubCompletionStore{completions: completions},
		&stubCategoryStore{},
	)
	statsHandler := NewStatsHandler(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	router.GET("/api/habits/stats", statsHandler.GetStats)
	router.GET("/api/habits/analytics", statsHandler.GetAnalytics)
	return router
}

func TestGetStats(t *testing.T) {
	router := statsTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/habits/stats", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data model.DashboardStats `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	stats := resp.Data
	if stats.TotalHabits != 1 {
		t.Errorf("TotalHabits = %d, want 1 (inactive habits excluded)", stats.TotalHabits)
	}
	if stats.CompletedToday != 1 {
		t.Errorf("CompletedToday = %d, want 1", stats.CompletedToday)
	}
	if stats.CurrentStreak != 3 || stats.LongestStreak != 3 {
		t.Errorf("streaks = %d/%d, want 3/3", stats.CurrentStreak, stats.LongestStreak)
	}
	if stats.CompletionRate != 43 {
		t.Errorf("CompletionRate = %d, want 43 over the default 7-day window", stats.CompletionRate)
	}
	if len(stats.Habits) != 1 {
		t.Errorf("got %d habit rows, want 1", len(stats.Habits))
	}
}

func TestGetStatsRejectsBadWindow(t *testing.T) {
	router := statsTestRouter(t)

	for _, days := range []string{"abc", "0", "-5", "366"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/habits/stats?days="+days, nil)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("days=%s: status = %d, want 400", days, w.Code)
		}
	}
}

func TestGetStatsWithoutUserID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	svc := usecase.NewStatsService(&stubHabitStore{}, &stubCompletionStore{}, &stubCategoryStore{})
	router := gin.New()
	router.GET("/api/habits/stats", NewStatsHandler(svc).GetStats)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/habits/stats", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", w.Code)
	}
}

func TestGetAnalytics(t *testing.T) {
	router := statsTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/habits/analytics?days=7", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data model.AnalyticsReport `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid JSON response: %v", err)
	}

	report := resp.Data
	if len(report.DailyCompletions) != 7 {
		t.Errorf("got %d daily points, want 7", len(report.DailyCompletions))
	}
	if len(report.TimeOfDay) != 24 {
		t.Errorf("got %d hour buckets, want 24", len(report.TimeOfDay))
	}
	if len(report.WeeklyTrends) != usecase.DefaultTrendWeeks {
		t.Errorf("got %d weekly points, want %d", len(report.WeeklyTrends), usecase.DefaultTrendWeeks)
	}
	if report.Summary.TotalCompletions != 3 {
		t.Errorf("TotalCompletions = %d, want 3", report.Summary.TotalCompletions)
	}
	if len(report.HabitPerformance) != 1 {
		t.Errorf("got %d performance rows, want 1", len(report.HabitPerformance))
	}
}
