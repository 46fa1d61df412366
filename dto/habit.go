package dto

import (
	"time"

	"main/model"
	"main/usecase"
)

// HabitResponse is a habit joined with its category summary, the shape the
// list and detail routes return.
type HabitResponse struct {
	HabitID         string    `json:"habit_id"`
	Name            string    `json:"name"`
	Description     string    `json:"description,omitempty"`
	TargetFrequency int       `json:"target_frequency"`
	IsActive        bool      `json:"is_active"`
	CategoryID      string    `json:"category_id,omitempty"`
	CategoryName    string    `json:"category_name"`
	CategoryColor   string    `json:"category_color"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func ToHabitResponse(habit *model.Habit, category *model.Category) HabitResponse {
	resp := HabitResponse{
		HabitID:         habit.HabitID,
		Name:            habit.Name,
		Description:     habit.Description,
		TargetFrequency: habit.TargetFrequency,
		IsActive:        habit.IsActive,
		CategoryID:      habit.CategoryID,
		CategoryName:    usecase.UncategorizedName,
		CategoryColor:   usecase.UncategorizedColor,
		CreatedAt:       habit.CreatedAt,
		UpdatedAt:       habit.UpdatedAt,
	}
	if category != nil {
		resp.CategoryName = category.Name
		resp.CategoryColor = category.Color
	}
	return resp
}

// ToHabitResponses joins habits against the category list in one pass.
func ToHabitResponses(habits []*model.Habit, categories []*model.Category) []HabitResponse {
	byID := make(map[string]*model.Category, len(categories))
	for _, category := range categories {
		byID[category.CategoryID] = category
	}

	responses := make([]HabitResponse, 0, len(habits))
	for _, habit := range habits {
		responses = append(responses, ToHabitResponse(habit, byID[habit.CategoryID]))
	}
	return responses
}
