package user

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

// Roles recognized by the platform. Admin accounts cannot self-register.
const (
	RoleUser          = "user"
	RoleFacilityOwner = "facility_owner"
	RoleAdmin         = "admin"
)

var (
	ErrNotFound           = apperror.NotFound("user not found")
	ErrEmailAlreadyUsed   = apperror.Conflict("email already registered")
	ErrInvalidCredentials = apperror.Unauthorized("invalid credentials")
	ErrBanned             = apperror.Forbidden("account is banned")
	ErrFullNameRequired   = apperror.Validation("full name is required")
	ErrEmailRequired      = apperror.Validation("email is required")
	ErrPasswordTooShort   = apperror.Validation("password must be at least 6 characters")
	ErrPasswordMismatch   = apperror.Validation("passwords do not match")
	ErrInvalidRole        = apperror.Validation("role must be user or facility_owner")
)

// User represents an account on the platform.
type User struct {
	ID           string // UUID
	Email        string // stored lowercase; unique
	PasswordHash string
	FullName     string
	Role         string
	AvatarFileID *string
	IsBanned     bool
	CreatedAt    time.Time
}

// Filter defines filter options for listing users (admin only).
type Filter struct {
	Role     string
	IsBanned *bool  // pointer to distinguish false from not-set
	Keyword  string // matches full name or email

	Page     int
	PageSize int
}
