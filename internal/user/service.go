package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
)

// SignupRequest carries data for a new account registration.
type SignupRequest struct {
	FullName        string
	Email           string
	Password        string
	ConfirmPassword string
	Role            string
}

// UpdateProfileRequest carries data for partial profile updates.
type UpdateProfileRequest struct {
	FullName     *string
	AvatarFileID *string
}

// Service defines business logic related to users.
type Service interface {
	Signup(ctx context.Context, req SignupRequest) (*User, error)
	Login(ctx context.Context, email, password string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error)
	List(ctx context.Context, filter Filter) ([]*User, int, error)
	SetBanned(ctx context.Context, id string, banned bool) (*User, error)
	CountByRole(ctx context.Context, role string) (int, error)
}

const minPasswordLength = 6

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
}

// NewService creates a new user Service.
func NewService(repo Repository, hasher auth.PasswordHasher) Service {
	return &service{
		repo:   repo,
		hasher: hasher,
	}
}

func (s *service) Signup(ctx context.Context, req SignupRequest) (*User, error) {
	if strings.TrimSpace(req.FullName) == "" {
		return nil, ErrFullNameRequired
	}

	cleanEmail := normalizeEmail(req.Email)
	if cleanEmail == "" {
		return nil, ErrEmailRequired
	}

	if len(req.Password) < minPasswordLength {
		return nil, ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}

	// Admin accounts cannot be self-registered.
	if req.Role != RoleUser && req.Role != RoleFacilityOwner {
		return nil, ErrInvalidRole
	}

	// Pre-insert check. A concurrent duplicate that slips past this is still
	// rejected by the unique index and mapped to the same error in Create.
	_, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err == nil {
		return nil, ErrEmailAlreadyUsed
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing email: %w", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u := &User{
		Email:        cleanEmail,
		PasswordHash: hash,
		FullName:     strings.TrimSpace(req.FullName),
		Role:         req.Role,
	}

	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}

	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	cleanEmail := normalizeEmail(email)
	if cleanEmail == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	u, err := s.repo.GetByEmail(ctx, cleanEmail)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			// Same error as a wrong password so callers cannot probe
			// which emails are registered.
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to fetch user by email: %w", err)
	}

	if err := s.hasher.Compare(u.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	if u.IsBanned {
		return nil, ErrBanned
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) UpdateProfile(ctx context.Context, id string, req UpdateProfileRequest) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FullName != nil {
		if strings.TrimSpace(*req.FullName) == "" {
			return nil, ErrFullNameRequired
		}
		u.FullName = strings.TrimSpace(*req.FullName)
	}
	if req.AvatarFileID != nil {
		u.AvatarFileID = req.AvatarFileID
	}

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*User, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) SetBanned(ctx context.Context, id string, banned bool) (*User, error) {
	if err := s.repo.SetBanned(ctx, id, banned); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *service) CountByRole(ctx context.Context, role string) (int, error) {
	return s.repo.CountByRole(ctx, role)
}

// normalizeEmail trims spaces and lowercases the email.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
