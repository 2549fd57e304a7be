package user

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/auth"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	users  map[string]*User
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{users: make(map[string]*User)}
}

func (r *fakeRepository) Create(_ context.Context, u *User) error {
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return ErrEmailAlreadyUsed
		}
	}
	r.nextID++
	u.ID = fmt.Sprintf("user-%d", r.nextID)
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByEmail(_ context.Context, email string) (*User, error) {
	for _, u := range r.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *u
	return &copied, nil
}

func (r *fakeRepository) Update(_ context.Context, u *User) error {
	if _, ok := r.users[u.ID]; !ok {
		return ErrNotFound
	}
	copied := *u
	r.users[u.ID] = &copied
	return nil
}

func (r *fakeRepository) SetBanned(_ context.Context, id string, banned bool) error {
	u, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsBanned = banned
	return nil
}

func (r *fakeRepository) List(_ context.Context, filter Filter) ([]*User, int, error) {
	var result []*User
	for _, u := range r.users {
		if filter.Role != "" && u.Role != filter.Role {
			continue
		}
		if filter.IsBanned != nil && u.IsBanned != *filter.IsBanned {
			continue
		}
		if filter.Keyword != "" && !strings.Contains(strings.ToLower(u.FullName), strings.ToLower(filter.Keyword)) {
			continue
		}
		copied := *u
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepository) CountByRole(_ context.Context, role string) (int, error) {
	count := 0
	for _, u := range r.users {
		if u.Role == role {
			count++
		}
	}
	return count, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	return NewService(repo, auth.NewBcryptPasswordHasherWithCost(4)), repo
}

func validSignup() SignupRequest {
	return SignupRequest{
		FullName:        "Alice Example",
		Email:           "alice@example.com",
		Password:        "secret12",
		ConfirmPassword: "secret12",
		Role:            RoleUser,
	}
}

func TestSignup(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _ := newTestService()

		u, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)
		assert.NotEmpty(t, u.ID)
		assert.Equal(t, "alice@example.com", u.Email)
		assert.Equal(t, RoleUser, u.Role)
		assert.NotEqual(t, "secret12", u.PasswordHash)
	})

	t.Run("email normalized to lowercase", func(t *testing.T) {
		svc, _ := newTestService()

		req := validSignup()
		req.Email = "  Alice@Example.COM "
		u, err := svc.Signup(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "alice@example.com", u.Email)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		svc, _ := newTestService()

		_, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)

		_, err = svc.Signup(ctx, validSignup())
		assert.ErrorIs(t, err, ErrEmailAlreadyUsed)
	})

	t.Run("validation failures", func(t *testing.T) {
		svc, _ := newTestService()

		cases := []struct {
			name    string
			mutate  func(*SignupRequest)
			wantErr error
		}{
			{"empty full name", func(r *SignupRequest) { r.FullName = "   " }, ErrFullNameRequired},
			{"empty email", func(r *SignupRequest) { r.Email = "" }, ErrEmailRequired},
			{"short password", func(r *SignupRequest) { r.Password = "abc"; r.ConfirmPassword = "abc" }, ErrPasswordTooShort},
			{"password mismatch", func(r *SignupRequest) { r.ConfirmPassword = "different" }, ErrPasswordMismatch},
			{"admin role rejected", func(r *SignupRequest) { r.Role = RoleAdmin }, ErrInvalidRole},
			{"unknown role rejected", func(r *SignupRequest) { r.Role = "superuser" }, ErrInvalidRole},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validSignup()
				tc.mutate(&req)
				_, err := svc.Signup(ctx, req)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)

		u, err := svc.Login(ctx, "alice@example.com", "secret12")
		require.NoError(t, err)
		assert.Equal(t, created.ID, u.ID)
	})

	t.Run("unknown email and wrong password return the same error", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)

		_, unknownErr := svc.Login(ctx, "nobody@example.com", "secret12")
		_, wrongPassErr := svc.Login(ctx, "alice@example.com", "wrongpass")

		assert.ErrorIs(t, unknownErr, ErrInvalidCredentials)
		assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	})

	t.Run("banned user rejected after password check", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Signup(ctx, validSignup())
		require.NoError(t, err)

		_, err = svc.SetBanned(ctx, created.ID, true)
		require.NoError(t, err)

		_, err = svc.Login(ctx, "alice@example.com", "secret12")
		assert.ErrorIs(t, err, ErrBanned)

		// A wrong password on a banned account must not reveal the ban.
		_, err = svc.Login(ctx, "alice@example.com", "wrongpass")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	newName := "Alice Renamed"
	avatar := "file-42"
	u, err := svc.UpdateProfile(ctx, created.ID, UpdateProfileRequest{
		FullName:     &newName,
		AvatarFileID: &avatar,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Renamed", u.FullName)
	require.NotNil(t, u.AvatarFileID)
	assert.Equal(t, "file-42", *u.AvatarFileID)

	blank := "  "
	_, err = svc.UpdateProfile(ctx, created.ID, UpdateProfileRequest{FullName: &blank})
	assert.ErrorIs(t, err, ErrFullNameRequired)

	_, err = svc.UpdateProfile(ctx, "missing-id", UpdateProfileRequest{FullName: &newName})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetBanned(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Signup(ctx, validSignup())
	require.NoError(t, err)

	u, err := svc.SetBanned(ctx, created.ID, true)
	require.NoError(t, err)
	assert.True(t, u.IsBanned)

	u, err = svc.SetBanned(ctx, created.ID, false)
	require.NoError(t, err)
	assert.False(t, u.IsBanned)

	_, err = svc.SetBanned(ctx, "missing-id", true)
	assert.ErrorIs(t, err, ErrNotFound)
}
