package handler

import (
	"errors"
	"strconv"

	"main/repository"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CompletionsHandler struct {
	service *usecase.CompletionsService
}

func NewCompletionsHandler(service *usecase.CompletionsService) *CompletionsHandler {
	return &CompletionsHandler{service: service}
}

// CompleteHabit marks a habit complete for a date (today when omitted).
// Completing the same day twice returns 409.
func (h *CompletionsHandler) CompleteHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")

	var req struct {
		Date  string `json:"date"`
		Count int    `json:"count"`
	}

	// Body is optional; an empty body means "today, once".
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request body: "+err.Error())
			return
		}
	}

	completion, err := h.service.CompleteHabit(c.Request.Context(), habitID, userID.(string), req.Date, req.Count)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateCompletion) {
			utils.Conflict(c, "Habit already completed for this date")
			return
		}
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, completion)
}

// UncompleteHabit removes the completion record for one day.
func (h *CompletionsHandler) UncompleteHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")
	day := c.Param("date")

	if err := h.service.UncompleteHabit(c.Request.Context(), habitID, userID.(string), day); err != nil {
		if err.Error() == "completion not found" {
			utils.NotFound(c, "Completion not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Completion removed successfully"})
}

// GetCompletions lists the user's completion history, optionally limited to
// the trailing ?days= window.
func (h *CompletionsHandler) GetCompletions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			utils.BadRequest(c, "days must be a positive integer")
			return
		}
		days = parsed
	}

	completions, err := h.service.GetUserCompletions(c.Request.Context(), userID.(string), days)
	if err != nil {
		utils.InternalError(c, "Failed to fetch completions")
		return
	}

	utils.Success(c, gin.H{
		"completions": completions,
	})
}
