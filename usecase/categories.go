package usecase

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"main/model"
	"main/repository"

	"github.com/google/uuid"
)

const MaxCategoryNameLength = 50

var hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type CategoriesService struct {
	repo   *repository.CategoriesRepo
	habits *repository.HabitsRepo
}

func NewCategoriesService(repo *repository.CategoriesRepo, habits *repository.HabitsRepo) *CategoriesService {
	return &CategoriesService{repo: repo, habits: habits}
}

func (svc *CategoriesService) GetCategories(ctx context.Context) ([]*model.Category, error) {
	return svc.repo.GetCategories(ctx)
}

func (svc *CategoriesService) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := validateCategory(category); err != nil {
		return err
	}

	if category.Color == "" {
		category.Color = UncategorizedColor
	}

	now := time.Now()
	if category.CreatedAt.IsZero() {
		category.CreatedAt = now
	}
	if category.UpdatedAt.IsZero() {
		category.UpdatedAt = now
	}

	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}

	return svc.repo.CreateCategory(ctx, category)
}

func (svc *CategoriesService) UpdateCategory(ctx context.Context, categoryID string, updates *model.Category) error {
	if categoryID == "" {
		return errors.New("category ID is required")
	}
	if err := validateCategory(updates); err != nil {
		return err
	}
	return svc.repo.UpdateCategory(ctx, categoryID, updates)
}

// DeleteCategory removes the category and detaches any habits that
// referenced it; the habits survive as uncategorized.
func (svc *CategoriesService) DeleteCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return errors.New("category ID is required")
	}

	if err := svc.repo.DeleteCategory(ctx, categoryID); err != nil {
		return err
	}

	return svc.habits.ClearCategory(ctx, categoryID)
}

func validateCategory(category *model.Category) error {
	name := strings.TrimSpace(category.Name)
	if name == "" {
		return errors.New("category name is required")
	}
	if len(name) > MaxCategoryNameLength {
		return errors.New("category name exceeds maximum length")
	}
	category.Name = name

	if category.Color != "" && !hexColorPattern.MatchString(category.Color) {
		return errors.New("category color must be a hex color like #4ade80")
	}

	return nil
}
