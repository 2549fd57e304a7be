package announcement

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	announcements map[string]*Announcement
	nextID        int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{announcements: make(map[string]*Announcement)}
}

func (r *fakeRepository) Create(_ context.Context, a *Announcement) error {
	r.nextID++
	a.ID = fmt.Sprintf("ann-%d", r.nextID)
	a.CreatedAt = time.Now()
	a.UpdatedAt = a.CreatedAt
	copied := *a
	r.announcements[a.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Announcement, error) {
	a, ok := r.announcements[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *a
	return &copied, nil
}

func (r *fakeRepository) List(_ context.Context, filter Filter) ([]*Announcement, int, error) {
	var result []*Announcement
	for _, a := range r.announcements {
		if filter.Keyword != "" {
			kw := strings.ToLower(filter.Keyword)
			if !strings.Contains(strings.ToLower(a.Title), kw) &&
				!strings.Contains(strings.ToLower(a.Content), kw) {
				continue
			}
		}
		copied := *a
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepository) Update(_ context.Context, a *Announcement) error {
	if _, ok := r.announcements[a.ID]; !ok {
		return ErrNotFound
	}
	copied := *a
	r.announcements[a.ID] = &copied
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.announcements[id]; !ok {
		return ErrNotFound
	}
	delete(r.announcements, id)
	return nil
}

func TestAnnouncementCRUD(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	a, err := svc.Create(ctx, "admin-1", CreateRequest{
		Title:   "Summer tournament",
		Content: "Registrations open next week.",
	})
	require.NoError(t, err)
	assert.Equal(t, "admin-1", a.AuthorID)

	_, err = svc.Create(ctx, "admin-1", CreateRequest{Title: "  ", Content: "x"})
	assert.ErrorIs(t, err, ErrTitleRequired)

	_, err = svc.Create(ctx, "admin-1", CreateRequest{Title: "x", Content: ""})
	assert.ErrorIs(t, err, ErrContentRequired)

	newTitle := "Summer tournament (updated)"
	updated, err := svc.Update(ctx, a.ID, UpdateRequest{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, newTitle, updated.Title)
	assert.Equal(t, a.Content, updated.Content)

	require.NoError(t, svc.Delete(ctx, a.ID))
	_, err = svc.GetByID(ctx, a.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAnnouncementListValidatesSort(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, _, err := svc.List(ctx, Filter{SortBy: "title", SortOrder: "asc"})
	assert.NoError(t, err)

	_, _, err = svc.List(ctx, Filter{SortBy: "author_id; DROP TABLE users"})
	assert.ErrorIs(t, err, ErrInvalidSort)

	_, _, err = svc.List(ctx, Filter{SortOrder: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidSort)
}

func TestAnnouncementListKeyword(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository())

	_, err := svc.Create(ctx, "admin-1", CreateRequest{Title: "Court maintenance", Content: "Hall B closed."})
	require.NoError(t, err)
	_, err = svc.Create(ctx, "admin-1", CreateRequest{Title: "New facility", Content: "Riverside opened."})
	require.NoError(t, err)

	items, total, err := svc.List(ctx, Filter{Keyword: "maintenance"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, "Court maintenance", items[0].Title)
}
