package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

const (
	MaxHabitNameLength        = 100
	MaxHabitDescriptionLength = 500
	MinTargetFrequency        = 1
	MaxTargetFrequency        = 10
)

type HabitsService struct {
	repo        *repository.HabitsRepo
	completions *repository.CompletionsRepo
}

func NewHabitsService(repo *repository.HabitsRepo, completions *repository.CompletionsRepo) *HabitsService {
	return &HabitsService{repo: repo, completions: completions}
}

// Get the user's habits, newest first
func (svc *HabitsService) GetUserHabits(ctx context.Context, userID string) ([]*model.Habit, error) {
	return svc.repo.GetUserHabits(ctx, userID)
}

func (svc *HabitsService) GetHabit(ctx context.Context, habitID, userID string) (*model.Habit, error) {
	return svc.repo.GetHabitByID(ctx, habitID, userID)
}

// Create Habit
func (svc *HabitsService) CreateHabit(ctx context.Context, habit *model.Habit) error {
	if habit.UserID == "" {
		return errors.New("user ID is required")
	}

	if err := validateHabit(habit); err != nil {
		return err
	}

	if habit.TargetFrequency == 0 {
		habit.TargetFrequency = MinTargetFrequency
	}

	now := time.Now()
	if habit.CreatedAt.IsZero() {
		habit.CreatedAt = now
	}
	if habit.UpdatedAt.IsZero() {
		habit.UpdatedAt = now
	}

	if habit.HabitID == "" {
		habit.HabitID = uuid.New().String()
	}
	habit.IsActive = true

	return svc.repo.CreateHabit(ctx, habit)
}

// Update Habit
func (svc *HabitsService) UpdateHabit(ctx context.Context, habitID, userID string, updates *model.Habit) error {
	if habitID == "" {
		return errors.New("habit ID is required")
	}

	if err := validateHabit(updates); err != nil {
		return err
	}

	existing, err := svc.repo.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return errors.New("habit not found")
	}

	return svc.repo.UpdateHabit(ctx, habitID, userID, updates)
}

// Delete Habit removes the habit along with its completion history
func (svc *HabitsService) DeleteHabit(ctx context.Context, habitID, userID string) error {
	if habitID == "" {
		return errors.New("habit ID is required")
	}

	if err := svc.repo.DeleteHabit(ctx, habitID, userID); err != nil {
		return err
	}

	return svc.completions.DeleteHabitCompletions(ctx, habitID, userID)
}

func validateHabit(habit *model.Habit) error {
	name := strings.TrimSpace(habit.Name)
	if name == "" {
		return errors.New("habit name is required")
	}
	if len(name) > MaxHabitNameLength {
		return errors.New("habit name exceeds maximum length")
	}
	habit.Name = name

	if len(habit.Description) > MaxHabitDescriptionLength {
		return errors.New("habit description exceeds maximum length")
	}

	if habit.TargetFrequency != 0 &&
		(habit.TargetFrequency < MinTargetFrequency || habit.TargetFrequency > MaxTargetFrequency) {
		return errors.New("target frequency must be between 1 and 10")
	}

	return nil
}
