package handler

import (
	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type HabitsHandler struct {
	service    *usecase.HabitsService
	categories *usecase.CategoriesService
}

func NewHabitsHandler(service *usecase.HabitsService, categories *usecase.CategoriesService) *HabitsHandler {
	return &HabitsHandler{service: service, categories: categories}
}

// GetHabits lists the user's habits joined with their category summaries.
func (h *HabitsHandler) GetHabits(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habits, err := h.service.GetUserHabits(c.Request.Context(), userID.(string))
	if err != nil {
		utils.InternalError(c, "Failed to fetch habits")
		return
	}

	categories, err := h.categories.GetCategories(c.Request.Context())
	if err != nil {
		utils.InternalError(c, "Failed to fetch categories")
		return
	}

	utils.Success(c, gin.H{
		"habits": dto.ToHabitResponses(habits, categories),
	})
}

func (h *HabitsHandler) CreateHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name            string `json:"name" binding:"required"`
		Description     string `json:"description"`
		CategoryID      string `json:"category_id"`
		TargetFrequency int    `json:"target_frequency"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	habit := &model.Habit{
		UserID:          userID.(string),
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		TargetFrequency: req.TargetFrequency,
	}

	if err := h.service.CreateHabit(c.Request.Context(), habit); err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, habit)
}

func (h *HabitsHandler) UpdateHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")

	var req struct {
		Name            string `json:"name" binding:"required"`
		Description     string `json:"description"`
		CategoryID      string `json:"category_id"`
		TargetFrequency int    `json:"target_frequency"`
		IsActive        *bool  `json:"is_active"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	updates := &model.Habit{
		Name:            req.Name,
		Description:     req.Description,
		CategoryID:      req.CategoryID,
		TargetFrequency: req.TargetFrequency,
		IsActive:        true,
	}
	if req.IsActive != nil {
		updates.IsActive = *req.IsActive
	}

	if err := h.service.UpdateHabit(c.Request.Context(), habitID, userID.(string), updates); err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Habit updated successfully"})
}

func (h *HabitsHandler) DeleteHabit(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	habitID := c.Param("id")

	if err := h.service.DeleteHabit(c.Request.Context(), habitID, userID.(string)); err != nil {
		if err.Error() == "habit not found" {
			utils.NotFound(c, "Habit not found")
			return
		}
		utils.InternalError(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Habit deleted successfully"})
}
