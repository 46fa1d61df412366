package usecase

import (
	"context"
	"errors"
	"time"

	"main/model"
	"main/repository"
	"main/services"
	"main/utils"
)

var ErrUsernameTaken = errors.New("username already exists")

type UserService struct {
	repo *repository.UserRepo
}

func NewUserService(repo *repository.UserRepo) *UserService {
	return &UserService{repo: repo}
}

// CreateUser registers a new account with an argon2-hashed password.
func (svc *UserService) CreateUser(ctx context.Context, req *model.RegistrationRequest) (*model.User, error) {
	existing, err := svc.repo.FindUserByUsername(req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameTaken
	}

	hashedPassword, err := services.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UserID:    utils.GenerateUserID(),
		Username:  req.Username,
		Email:     req.Email,
		Password:  hashedPassword,
		CreatedAt: time.Now(),
		IsActive:  true,
	}

	if _, err := svc.repo.AddUser(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
