package dto

import (
	"time"

	"github.com/paydesk/compchange/internal/core/domain"
)

// CreateUserRequest defines the data needed to register a user.
type CreateUserRequest struct {
	Username   string            `json:"username" binding:"required,min=3"`
	Name       string            `json:"name" binding:"required"`
	Password   string            `json:"password" binding:"required,min=8"`
	Department domain.Department `json:"department" binding:"required,oneof=HR ACCOUNTING AUDIT"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name *string `json:"name"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	UserID     string            `json:"userID"`
	Username   string            `json:"username"`
	Name       string            `json:"name"`
	Department domain.Department `json:"department"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID:     u.UserID,
		Username:   u.Username,
		Name:       u.Name,
		Department: u.Department,
		CreatedAt:  u.CreatedAt,
	}
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
