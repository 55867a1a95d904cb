package service

import (
	"context"
	"errors"

	"trivia-board/internal/domain"
	"trivia-board/internal/dto"
	"trivia-board/internal/logger"
	"trivia-board/internal/repository"
	"trivia-board/internal/util"

	"go.uber.org/zap"
)

// UserService defines the interface for user-related operations.
type UserService interface {
	ListUsers(ctx context.Context) (*dto.UsersResponse, error)
	GetUser(ctx context.Context, username string) (*dto.UserResponse, error)
	CreateUser(ctx context.Context, username string) (*dto.UserResponse, error)
}

type userServiceImpl struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new instance of UserService.
func NewUserService(userRepo domain.UserRepository) UserService {
	return &userServiceImpl{userRepo: userRepo}
}

// ListUsers returns every registered user.
func (s *userServiceImpl) ListUsers(ctx context.Context) (*dto.UsersResponse, error) {
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, domain.NewPersistenceUnavailableError("Failed to list users.", err)
	}

	resp := &dto.UsersResponse{Users: make([]dto.UserResponse, len(users))}
	for i := range users {
		resp.Users[i] = *dto.NewUserResponse(&users[i])
	}
	return resp, nil
}

// GetUser looks a user up by exact username.
func (s *userServiceImpl) GetUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewPersistenceUnavailableError("Failed to get user.", err)
	}
	if user == nil {
		return nil, domain.NewUserNotFoundError(username)
	}
	return dto.NewUserResponse(user), nil
}

// CreateUser registers a new username. A taken username is rejected before
// the insert; the unique constraint catches a concurrent registration.
func (s *userServiceImpl) CreateUser(ctx context.Context, username string) (*dto.UserResponse, error) {
	existing, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, domain.NewPersistenceUnavailableError("Failed to check username.", err)
	}
	if existing != nil {
		return nil, domain.NewUsernameTakenError(username)
	}

	user := &domain.User{
		ID:       util.NewULID(),
		Username: username,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, domain.NewUsernameTakenError(username)
		}
		return nil, domain.NewPersistenceUnavailableError("Failed to create user.", err)
	}

	logger.Get().Info("User created", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return dto.NewUserResponse(user), nil
}
