package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

type CompletionsService struct {
	repo   *repository.CompletionsRepo
	habits *repository.HabitsRepo
}

func NewCompletionsService(repo *repository.CompletionsRepo, habits *repository.HabitsRepo) *CompletionsService {
	return &CompletionsService{repo: repo, habits: habits}
}

// CompleteHabit records a completion for one habit on one day. The day
// defaults to today when empty. A second completion for the same day
// surfaces repository.ErrDuplicateCompletion.
func (svc *CompletionsService) CompleteHabit(ctx context.Context, habitID, userID, day string, count int) (*model.Completion, error) {
	if habitID == "" {
		return nil, errors.New("habit ID is required")
	}

	habit, err := svc.habits.GetHabitByID(ctx, habitID, userID)
	if err != nil {
		return nil, err
	}
	if habit == nil {
		return nil, errors.New("habit not found")
	}

	now := time.Now()
	if day == "" {
		day = DayKey(now)
	} else if _, err := ParseDayKey(day); err != nil {
		return nil, errors.New("date must be in YYYY-MM-DD format")
	}

	if count < 1 {
		count = 1
	}

	completion := &model.Completion{
		CompletionID:   uuid.New().String(),
		HabitID:        habitID,
		UserID:         userID,
		CompletedAt:    day,
		CompletedCount: count,
		CreatedAt:      now,
	}

	if err := svc.repo.CreateCompletion(ctx, completion); err != nil {
		return nil, err
	}

	return completion, nil
}

// UncompleteHabit removes the completion record for one habit on one day.
func (svc *CompletionsService) UncompleteHabit(ctx context.Context, habitID, userID, day string) error {
	if habitID == "" {
		return errors.New("habit ID is required")
	}

	if day == "" {
		day = DayKey(time.Now())
	} else if _, err := ParseDayKey(day); err != nil {
		return errors.New("date must be in YYYY-MM-DD format")
	}

	return svc.repo.DeleteCompletionByDay(ctx, habitID, userID, day)
}

// GetUserCompletions returns the user's completion history, optionally
// bounded to the trailing window of `days` days ending today.
func (svc *CompletionsService) GetUserCompletions(ctx context.Context, userID string, days int) ([]*model.Completion, error) {
	since := ""
	if days > 0 {
		since = DayKey(DaysAgo(time.Now(), days-1))
	}
	return svc.repo.GetUserCompletionsSince(ctx, userID, since)
}
