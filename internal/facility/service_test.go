package facility

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/cache"
)

type fakeRepository struct {
	facilities map[string]*Facility
	nextID     int
	listCalls  int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{facilities: make(map[string]*Facility)}
}

func (r *fakeRepository) Create(_ context.Context, f *Facility) error {
	r.nextID++
	f.ID = fmt.Sprintf("facility-%d", r.nextID)
	f.CreatedAt = time.Now()
	f.UpdatedAt = f.CreatedAt
	copied := *f
	r.facilities[f.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Facility, error) {
	f, ok := r.facilities[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *f
	return &copied, nil
}

func (r *fakeRepository) List(_ context.Context, filter Filter) ([]*Facility, int, error) {
	r.listCalls++
	var result []*Facility
	for _, f := range r.facilities {
		if filter.OwnerID != "" && f.OwnerID != filter.OwnerID {
			continue
		}
		if filter.Status != "" && f.Status != filter.Status {
			continue
		}
		if filter.IsActive != nil && f.IsActive != *filter.IsActive {
			continue
		}
		copied := *f
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepository) Update(_ context.Context, f *Facility) error {
	if _, ok := r.facilities[f.ID]; !ok {
		return ErrNotFound
	}
	copied := *f
	r.facilities[f.ID] = &copied
	return nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id, status string, rejectionReason *string) error {
	f, ok := r.facilities[id]
	if !ok {
		return ErrNotFound
	}
	f.Status = status
	f.RejectionReason = rejectionReason
	return nil
}

func (r *fakeRepository) CountByStatus(_ context.Context, status string) (int, error) {
	count := 0
	for _, f := range r.facilities {
		if f.Status == status {
			count++
		}
	}
	return count, nil
}

// memoryCache is a map-backed cache.Cache for asserting hit behavior.
type memoryCache struct {
	entries map[string][]byte
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, dest any) (bool, error) {
	raw, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = raw
	return nil
}

func (c *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func validCreate() CreateRequest {
	return CreateRequest{
		Name:              "Downtown Sports Hub",
		Location:          "12 Main St",
		Description:       "Indoor and outdoor courts",
		Sports:            []string{"badminton", "tennis"},
		Amenities:         []string{"parking"},
		OpeningHoursStart: "06:00",
		OpeningHoursEnd:   "22:00",
	}
}

func TestCreateFacility(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), cache.Noop{})

	t.Run("starts pending and active", func(t *testing.T) {
		f, err := svc.Create(ctx, "owner-1", validCreate())
		require.NoError(t, err)
		assert.Equal(t, StatusPending, f.Status)
		assert.True(t, f.IsActive)
		assert.Equal(t, "owner-1", f.OwnerID)
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name    string
			mutate  func(*CreateRequest)
			wantErr error
		}{
			{"empty name", func(r *CreateRequest) { r.Name = " " }, ErrNameRequired},
			{"empty location", func(r *CreateRequest) { r.Location = "" }, ErrLocationRequired},
			{"bad hour format", func(r *CreateRequest) { r.OpeningHoursStart = "6am" }, ErrInvalidOpeningHours},
			{"end before start", func(r *CreateRequest) { r.OpeningHoursStart = "22:00"; r.OpeningHoursEnd = "06:00" }, ErrInvalidOpeningHours},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				req := validCreate()
				tc.mutate(&req)
				_, err := svc.Create(ctx, "owner-1", req)
				assert.ErrorIs(t, err, tc.wantErr)
			})
		}
	})
}

func TestUpdateFacilityOwnership(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), cache.Noop{})

	f, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)

	// A non-owner gets not-found, never a permission hint.
	name := "Renamed"
	_, err = svc.Update(ctx, f.ID, "owner-2", UpdateRequest{Name: &name})
	assert.ErrorIs(t, err, ErrNotFound)

	updated, err := svc.Update(ctx, f.ID, "owner-1", UpdateRequest{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestApproveRejectFlow(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), cache.Noop{})

	f, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)

	approved, err := svc.Approve(ctx, f.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, approved.Status)

	rejected, err := svc.Reject(ctx, f.ID, "")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, rejected.Status)
	require.NotNil(t, rejected.RejectionReason)
	assert.Equal(t, "Not specified", *rejected.RejectionReason)

	_, err = svc.Approve(ctx, "missing-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListApprovedCaching(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	mem := newMemoryCache()
	svc := NewService(repo, mem)

	f, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)
	_, err = svc.Approve(ctx, f.ID)
	require.NoError(t, err)

	// First read goes to the repo, second is served from cache.
	first, total, err := svc.ListApproved(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, total)
	callsAfterFirst := repo.listCalls

	second, _, err := svc.ListApproved(ctx, 1, 20)
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, callsAfterFirst, repo.listCalls, "second read should hit the cache")

	// Moderation invalidates the cached page.
	_, err = svc.Reject(ctx, f.ID, "bad photos")
	require.NoError(t, err)

	third, total, err := svc.ListApproved(ctx, 1, 20)
	require.NoError(t, err)
	assert.Empty(t, third)
	assert.Equal(t, 0, total)
}

func TestListApprovedDeepPagesBypassCache(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository()
	mem := newMemoryCache()
	svc := NewService(repo, mem)

	_, _, err := svc.ListApproved(ctx, 3, 50)
	require.NoError(t, err)
	assert.Empty(t, mem.entries, "deep pages must not populate the cache")
}
