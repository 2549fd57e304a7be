package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/timeslot"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

type fakeRepository struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*Booking)}
}

func (r *fakeRepository) Create(_ context.Context, b *Booking) error {
	for _, existing := range r.bookings {
		if existing.CourtID == b.CourtID && existing.Date == b.Date &&
			existing.Status != StatusCancelled &&
			existing.StartTime == b.StartTime && existing.EndTime == b.EndTime {
			return ErrTimeConflict
		}
	}
	r.nextID++
	b.ID = fmt.Sprintf("booking-%d", r.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	copied := *b
	r.bookings[b.ID] = &copied
	return nil
}

func (r *fakeRepository) GetByIDForUser(_ context.Context, id, userID string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok || b.UserID != userID {
		return nil, ErrNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeRepository) ListByUser(_ context.Context, userID string, _, _ int) ([]*Booking, int, error) {
	var result []*Booking
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			result = append(result, &copied)
		}
	}
	return result, len(result), nil
}

func (r *fakeRepository) ListByFacilityOwner(_ context.Context, _ string, _, _ int) ([]*Booking, int, error) {
	var result []*Booking
	for _, b := range r.bookings {
		copied := *b
		result = append(result, &copied)
	}
	return result, len(result), nil
}

func (r *fakeRepository) UpdateStatus(_ context.Context, id, status, paymentStatus string) error {
	b, ok := r.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	b.PaymentStatus = paymentStatus
	return nil
}

func (r *fakeRepository) Count(_ context.Context) (int, error) {
	return len(r.bookings), nil
}

func (r *fakeRepository) HasOverlap(_ context.Context, courtID, date, startTime, endTime string) (bool, error) {
	for _, b := range r.bookings {
		if b.CourtID != courtID || b.Date != date || b.Status == StatusCancelled {
			continue
		}
		// Half-open interval overlap on lexically ordered HH:MM strings.
		if b.StartTime < endTime && startTime < b.EndTime {
			return true, nil
		}
	}
	return false, nil
}

type stubCourtService struct {
	court.Service
	courts map[string]*court.Court
}

func (s *stubCourtService) GetByID(_ context.Context, id string) (*court.Court, error) {
	c, ok := s.courts[id]
	if !ok {
		return nil, court.ErrNotFound
	}
	return c, nil
}

type stubSlotService struct {
	timeslot.Service
	blocked map[string]bool
}

func (s *stubSlotService) IsBlocked(_ context.Context, courtID, date, startTime, endTime string) (bool, error) {
	return s.blocked[courtID+"|"+date+"|"+startTime+"|"+endTime], nil
}

type stubUserService struct {
	user.Service
	users map[string]*user.User
}

func (s *stubUserService) GetByID(_ context.Context, id string) (*user.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, user.ErrNotFound
	}
	return u, nil
}

type recordingNotifier struct {
	sent []string
}

func (n *recordingNotifier) Notify(_ context.Context, recipient, subject, _ string) error {
	n.sent = append(n.sent, recipient+": "+subject)
	return nil
}

type fixture struct {
	svc      Service
	repo     *fakeRepository
	slots    *stubSlotService
	notifier *recordingNotifier
}

func newFixture() *fixture {
	repo := newFakeRepository()
	courts := &stubCourtService{courts: map[string]*court.Court{
		"court-1": {
			ID: "court-1", FacilityID: "facility-1", FacilityOwnerID: "owner-1",
			Name: "Court A", Sport: "badminton", FacilityName: "Downtown Hub",
			PricePerHour: 30, IsActive: true, Status: court.StatusActive,
		},
		"court-closed": {
			ID: "court-closed", FacilityID: "facility-1",
			PricePerHour: 30, IsActive: true, Status: court.StatusMaintenance,
		},
	}}
	slots := &stubSlotService{blocked: make(map[string]bool)}
	users := &stubUserService{users: map[string]*user.User{
		"user-1": {ID: "user-1", Email: "alice@example.com", FullName: "Alice"},
	}}
	notifier := &recordingNotifier{}

	return &fixture{
		svc:      NewService(repo, courts, slots, users, notifier),
		repo:     repo,
		slots:    slots,
		notifier: notifier,
	}
}

func futureDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func validCreate() CreateRequest {
	return CreateRequest{
		CourtID:   "court-1",
		Date:      futureDate(),
		StartTime: "10:00",
		EndTime:   "11:00",
	}
}

func TestCreateBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		fx := newFixture()

		b, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, b.Status)
		assert.Equal(t, PaymentPaid, b.PaymentStatus)
		assert.Equal(t, 30.0, b.Amount)
		assert.Equal(t, "facility-1", b.FacilityID)
		require.Len(t, fx.notifier.sent, 1)
		assert.Contains(t, fx.notifier.sent[0], "alice@example.com")
	})

	t.Run("unknown court", func(t *testing.T) {
		fx := newFixture()

		req := validCreate()
		req.CourtID = "missing"
		_, err := fx.svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, ErrCourtNotFound)
	})

	t.Run("court under maintenance", func(t *testing.T) {
		fx := newFixture()

		req := validCreate()
		req.CourtID = "court-closed"
		_, err := fx.svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, ErrCourtNotAvailable)
	})

	t.Run("invalid date and window", func(t *testing.T) {
		fx := newFixture()

		req := validCreate()
		req.Date = "not-a-date"
		_, err := fx.svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, ErrInvalidDate)

		req = validCreate()
		req.StartTime = "11:00"
		req.EndTime = "10:00"
		_, err = fx.svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("overlap conflicts", func(t *testing.T) {
		fx := newFixture()

		_, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)

		overlapping := []struct {
			name       string
			start, end string
		}{
			{"identical window", "10:00", "11:00"},
			{"starts inside", "10:30", "11:30"},
			{"ends inside", "09:30", "10:30"},
			{"fully contains", "09:00", "12:00"},
			{"fully contained", "10:15", "10:45"},
		}
		for _, tc := range overlapping {
			t.Run(tc.name, func(t *testing.T) {
				req := validCreate()
				req.StartTime = tc.start
				req.EndTime = tc.end
				_, err := fx.svc.Create(ctx, "user-1", req)
				assert.ErrorIs(t, err, ErrTimeConflict)
			})
		}
	})

	t.Run("touching boundaries do not conflict", func(t *testing.T) {
		fx := newFixture()

		_, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)

		before := validCreate()
		before.StartTime = "09:00"
		before.EndTime = "10:00"
		_, err = fx.svc.Create(ctx, "user-1", before)
		assert.NoError(t, err)

		after := validCreate()
		after.StartTime = "11:00"
		after.EndTime = "12:00"
		_, err = fx.svc.Create(ctx, "user-1", after)
		assert.NoError(t, err)
	})

	t.Run("cancelled booking frees its window", func(t *testing.T) {
		fx := newFixture()

		b, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)

		_, err = fx.svc.Cancel(ctx, b.ID, "user-1")
		require.NoError(t, err)

		_, err = fx.svc.Create(ctx, "user-1", validCreate())
		assert.NoError(t, err)
	})

	t.Run("blocked slot rejected", func(t *testing.T) {
		fx := newFixture()

		req := validCreate()
		fx.slots.blocked["court-1|"+req.Date+"|10:00|11:00"] = true

		_, err := fx.svc.Create(ctx, "user-1", req)
		assert.ErrorIs(t, err, ErrSlotBlocked)
	})

	t.Run("notification failure does not fail the booking", func(t *testing.T) {
		fx := newFixture()

		// Book as a user the notifier cannot resolve.
		b, err := fx.svc.Create(ctx, "ghost-user", validCreate())
		require.NoError(t, err)
		assert.Equal(t, StatusConfirmed, b.Status)
		assert.Empty(t, fx.notifier.sent)
	})
}

func TestCancelBooking(t *testing.T) {
	ctx := context.Background()

	t.Run("success refunds payment", func(t *testing.T) {
		fx := newFixture()

		b, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)

		cancelled, err := fx.svc.Cancel(ctx, b.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
		assert.Equal(t, PaymentRefunded, cancelled.PaymentStatus)
	})

	t.Run("someone else's booking reads as not found", func(t *testing.T) {
		fx := newFixture()

		b, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)

		_, err = fx.svc.Cancel(ctx, b.ID, "user-2")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("past booking cannot be cancelled", func(t *testing.T) {
		fx := newFixture()

		b := &Booking{
			UserID:  "user-1",
			CourtID: "court-1",
			Date:    time.Now().AddDate(0, 0, -1).Format("2006-01-02"),
			StartTime: "10:00", EndTime: "11:00",
			Status: StatusConfirmed, PaymentStatus: PaymentPaid,
		}
		require.NoError(t, fx.repo.Create(ctx, b))

		_, err := fx.svc.Cancel(ctx, b.ID, "user-1")
		assert.ErrorIs(t, err, ErrCancelPast)
	})

	t.Run("same-day booking can be cancelled", func(t *testing.T) {
		fx := newFixture()

		b := &Booking{
			UserID:  "user-1",
			CourtID: "court-1",
			Date:    time.Now().Format("2006-01-02"),
			StartTime: "10:00", EndTime: "11:00",
			Status: StatusConfirmed, PaymentStatus: PaymentPaid,
		}
		require.NoError(t, fx.repo.Create(ctx, b))

		cancelled, err := fx.svc.Cancel(ctx, b.ID, "user-1")
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, cancelled.Status)
	})

	t.Run("already cancelled is not cancellable again", func(t *testing.T) {
		fx := newFixture()

		b, err := fx.svc.Create(ctx, "user-1", validCreate())
		require.NoError(t, err)

		_, err = fx.svc.Cancel(ctx, b.ID, "user-1")
		require.NoError(t, err)

		_, err = fx.svc.Cancel(ctx, b.ID, "user-1")
		assert.ErrorIs(t, err, ErrNotCancellable)
	})
}
