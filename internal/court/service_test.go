package court

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
)

type fakeRepository struct {
	courts map[string]*Court
	nextID int

	// facility owner lookup used to populate the joined field
	owners map[string]string
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		courts: make(map[string]*Court),
		owners: make(map[string]string),
	}
}

func (r *fakeRepository) Create(_ context.Context, c *Court) error {
	r.nextID++
	c.ID = fmt.Sprintf("court-%d", r.nextID)
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	copied := *c
	copied.FacilityOwnerID = r.owners[c.FacilityID]
	r.courts[c.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Court, error) {
	c, ok := r.courts[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeRepository) ListByFacility(_ context.Context, facilityID string) ([]*Court, error) {
	var result []*Court
	for _, c := range r.courts {
		if c.FacilityID == facilityID {
			copied := *c
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (r *fakeRepository) Update(_ context.Context, c *Court) error {
	if _, ok := r.courts[c.ID]; !ok {
		return ErrNotFound
	}
	copied := *c
	r.courts[c.ID] = &copied
	return nil
}

func (r *fakeRepository) CountActive(_ context.Context) (int, error) {
	count := 0
	for _, c := range r.courts {
		if c.IsActive && c.Status == StatusActive {
			count++
		}
	}
	return count, nil
}

// stubFacilityService provides GetByID only; other methods are never called
// by the court service.
type stubFacilityService struct {
	facility.Service
	facilities map[string]*facility.Facility
}

func (s *stubFacilityService) GetByID(_ context.Context, id string) (*facility.Facility, error) {
	f, ok := s.facilities[id]
	if !ok {
		return nil, facility.ErrNotFound
	}
	return f, nil
}

func newTestService() (Service, *fakeRepository) {
	repo := newFakeRepository()
	repo.owners["facility-1"] = "owner-1"
	stub := &stubFacilityService{facilities: map[string]*facility.Facility{
		"facility-1": {ID: "facility-1", OwnerID: "owner-1", Status: facility.StatusApproved},
	}}
	return NewService(repo, stub), repo
}

func validCreate() CreateRequest {
	return CreateRequest{
		FacilityID:        "facility-1",
		Name:              "Court A",
		Sport:             "badminton",
		PricePerHour:      25,
		OpeningHoursStart: "06:00",
		OpeningHoursEnd:   "22:00",
	}
}

func TestCreateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("success with default schedule", func(t *testing.T) {
		svc, _ := newTestService()

		c, err := svc.Create(ctx, "owner-1", validCreate())
		require.NoError(t, err)
		assert.True(t, c.IsActive)
		assert.Equal(t, StatusActive, c.Status)
		for _, day := range c.Schedule {
			assert.True(t, day.Open)
			assert.Equal(t, "06:00", day.Start)
			assert.Equal(t, "22:00", day.End)
		}
	})

	t.Run("missing facility and foreign facility read the same", func(t *testing.T) {
		svc, _ := newTestService()

		req := validCreate()
		req.FacilityID = "missing"
		_, missingErr := svc.Create(ctx, "owner-1", req)

		_, foreignErr := svc.Create(ctx, "owner-2", validCreate())

		assert.ErrorIs(t, missingErr, ErrFacilityNotFound)
		assert.ErrorIs(t, foreignErr, ErrFacilityNotFound)
	})

	t.Run("validation", func(t *testing.T) {
		svc, _ := newTestService()

		cases := []struct {
			name    string
			mutate  func(*CreateRequest)
			wantErr error
		}{
			{"empty name", func(r *CreateRequest) { r.Name = " " }, ErrNameRequired},
			{"empty sport", func(r *CreateRequest) { r.Sport = "" }, ErrSportRequired},
			{"zero price", func(r *CreateRequest) { r.PricePerHour = 0 }, ErrInvalidPrice},
			{"negative price", func(r *CreateRequest) { r.PricePerHour = -5 }, ErrInvalidPrice},
			{"inverted hours", func(r *CreateRequest) { r.OpeningHoursStart = "22:00"; r.OpeningHoursEnd = "06:00" }, ErrInvalidSchedule},
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

	t.Run("bad explicit schedule rejected", func(t *testing.T) {
		svc, _ := newTestService()

		req := validCreate()
		var schedule [7]DaySchedule
		for i := range schedule {
			schedule[i] = DaySchedule{Open: true, Start: "09:00", End: "18:00"}
		}
		schedule[3] = DaySchedule{Open: true, Start: "18:00", End: "09:00"}
		req.Schedule = &schedule

		_, err := svc.Create(ctx, "owner-1", req)
		assert.ErrorIs(t, err, ErrInvalidSchedule)
	})
}

func TestUpdateCourt(t *testing.T) {
	ctx := context.Background()

	t.Run("owner can update, stranger cannot", func(t *testing.T) {
		svc, _ := newTestService()

		c, err := svc.Create(ctx, "owner-1", validCreate())
		require.NoError(t, err)

		price := 40.0
		_, err = svc.Update(ctx, c.ID, "owner-2", UpdateRequest{PricePerHour: &price})
		assert.ErrorIs(t, err, ErrPermissionDenied)

		updated, err := svc.Update(ctx, c.ID, "owner-1", UpdateRequest{PricePerHour: &price})
		require.NoError(t, err)
		assert.Equal(t, 40.0, updated.PricePerHour)
	})

	t.Run("status transitions validated", func(t *testing.T) {
		svc, _ := newTestService()

		c, err := svc.Create(ctx, "owner-1", validCreate())
		require.NoError(t, err)

		maintenance := StatusMaintenance
		updated, err := svc.Update(ctx, c.ID, "owner-1", UpdateRequest{Status: &maintenance})
		require.NoError(t, err)
		assert.Equal(t, StatusMaintenance, updated.Status)
		assert.False(t, updated.Bookable())

		bogus := "Broken"
		_, err = svc.Update(ctx, c.ID, "owner-1", UpdateRequest{Status: &bogus})
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestBookable(t *testing.T) {
	c := Court{IsActive: true, Status: StatusActive}
	assert.True(t, c.Bookable())

	c.IsActive = false
	assert.False(t, c.Bookable())

	c.IsActive = true
	c.Status = StatusInactive
	assert.False(t, c.Bookable())
}

func TestCountActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	first, err := svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)
	_, err = svc.Create(ctx, "owner-1", validCreate())
	require.NoError(t, err)

	inactive := false
	_, err = svc.Update(ctx, first.ID, "owner-1", UpdateRequest{IsActive: &inactive})
	require.NoError(t, err)

	count, err := svc.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
