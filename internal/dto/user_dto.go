package dto

import (
	"time"

	"trivia-board/internal/domain"
)

// CreateUserRequest represents the request body for creating a user.
// @Description Request body for creating a user
type CreateUserRequest struct {
	Username string `json:"username" example:"alice"`
}

// UserResponse defines the public view of a user.
// @Description User information
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

// UsersResponse wraps the user list.
type UsersResponse struct {
	Users []UserResponse `json:"users"`
}

func NewUserResponse(u *domain.User) *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		CreatedAt: u.CreatedAt,
	}
}
