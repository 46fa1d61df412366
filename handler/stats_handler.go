package handler

import (
	"log"
	"strconv"
	"time"

	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

const maxWindowDays = 365

type StatsHandler struct {
	stats *usecase.StatsService
}

func NewStatsHandler(stats *usecase.StatsService) *StatsHandler {
	return &StatsHandler{stats: stats}
}

// GetStats serves the dashboard summary over a trailing window, 7 days by
// default. Everything is recomputed from a fresh snapshot on each request.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days, ok := windowDays(c, usecase.DefaultDashboardWindowDays)
	if !ok {
		return
	}

	stats, err := h.stats.DashboardStats(c.Request.Context(), userID.(string), time.Now(), days)
	if err != nil {
		log.Printf("Error computing dashboard stats for user %s: %v", userID, err)
		utils.TrackError("stats", "dashboard_computation_failed")
		utils.InternalError(c, "Failed to compute stats")
		return
	}

	utils.TrackStatsComputation("dashboard")
	utils.Success(c, stats)
}

// GetAnalytics serves the detailed report, 30 days by default.
func (h *StatsHandler) GetAnalytics(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days, ok := windowDays(c, usecase.DefaultAnalyticsWindowDays)
	if !ok {
		return
	}

	report, err := h.stats.AnalyticsReport(c.Request.Context(), userID.(string), time.Now(), days)
	if err != nil {
		log.Printf("Error computing analytics for user %s: %v", userID, err)
		utils.TrackError("stats", "analytics_computation_failed")
		utils.InternalError(c, "Failed to compute analytics")
		return
	}

	utils.TrackStatsComputation("analytics")
	utils.Success(c, report)
}

// windowDays parses the optional ?days= override. It writes the error
// response itself and reports ok=false when the value is unusable.
func windowDays(c *gin.Context, fallback int) (int, bool) {
	raw := c.Query("days")
	if raw == "" {
		return fallback, true
	}

	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 || days > maxWindowDays {
		utils.BadRequest(c, "days must be an integer between 1 and 365")
		return 0, false
	}
	return days, true
}
