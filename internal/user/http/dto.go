package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/user"
)

// SignupRequest is the payload for POST /api/auth/signup.
type SignupRequest struct {
	FullName        string `json:"fullname" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required"`
	Role            string `json:"role" binding:"required,oneof=user facility_owner"`
}

// SignupResponse is the response for POST /api/auth/signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginRequest is the payload for POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse is the response for POST /api/auth/login.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// UpdateProfileRequest is the payload for PUT /api/users/me.
type UpdateProfileRequest struct {
	FullName     *string `json:"fullname"`
	AvatarFileID *string `json:"avatarFileId" binding:"omitempty,uuid"`
}

// UserResponse is the public view of a user. It never carries the password
// hash.
type UserResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullname"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Avatar    *string   `json:"avatar,omitempty"`
	IsBanned  bool      `json:"isBanned"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewUserResponse converts a domain user to its public API view.
func NewUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Role:      u.Role,
		Avatar:    u.AvatarFileID,
		IsBanned:  u.IsBanned,
		CreatedAt: u.CreatedAt,
	}
}
