package admin

import (
	"context"

	"github.com/quickcourt/quickcourt-backend/internal/booking"
	"github.com/quickcourt/quickcourt-backend/internal/court"
	"github.com/quickcourt/quickcourt-backend/internal/facility"
	"github.com/quickcourt/quickcourt-backend/internal/user"
)

// Stats is the admin dashboard summary.
type Stats struct {
	TotalUsers        int
	FacilityOwners    int
	TotalBookings     int
	PendingFacilities int
	ActiveCourts      int
}

type Service interface {
	Stats(ctx context.Context) (*Stats, error)

	ListPendingFacilities(ctx context.Context, page, pageSize int) ([]*facility.Facility, int, error)
	ApproveFacility(ctx context.Context, id string) (*facility.Facility, error)
	RejectFacility(ctx context.Context, id, reason string) (*facility.Facility, error)

	ListUsers(ctx context.Context, filter user.Filter) ([]*user.User, int, error)
	SetUserBanned(ctx context.Context, id string, banned bool) (*user.User, error)
}

type service struct {
	userService     user.Service
	facilityService facility.Service
	courtService    court.Service
	bookingService  booking.Service
}

func NewService(
	userService user.Service,
	facilityService facility.Service,
	courtService court.Service,
	bookingService booking.Service,
) Service {
	return &service{
		userService:     userService,
		facilityService: facilityService,
		courtService:    courtService,
		bookingService:  bookingService,
	}
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	totalUsers, err := s.userService.CountByRole(ctx, user.RoleUser)
	if err != nil {
		return nil, err
	}
	owners, err := s.userService.CountByRole(ctx, user.RoleFacilityOwner)
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookingService.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := s.facilityService.CountByStatus(ctx, facility.StatusPending)
	if err != nil {
		return nil, err
	}
	activeCourts, err := s.courtService.CountActive(ctx)
	if err != nil {
		return nil, err
	}

	return &Stats{
		TotalUsers:        totalUsers,
		FacilityOwners:    owners,
		TotalBookings:     bookings,
		PendingFacilities: pending,
		ActiveCourts:      activeCourts,
	}, nil
}

func (s *service) ListPendingFacilities(ctx context.Context, page, pageSize int) ([]*facility.Facility, int, error) {
	return s.facilityService.ListPending(ctx, page, pageSize)
}

func (s *service) ApproveFacility(ctx context.Context, id string) (*facility.Facility, error) {
	return s.facilityService.Approve(ctx, id)
}

func (s *service) RejectFacility(ctx context.Context, id, reason string) (*facility.Facility, error) {
	return s.facilityService.Reject(ctx, id, reason)
}

func (s *service) ListUsers(ctx context.Context, filter user.Filter) ([]*user.User, int, error) {
	return s.userService.List(ctx, filter)
}

func (s *service) SetUserBanned(ctx context.Context, id string, banned bool) (*user.User, error) {
	return s.userService.SetBanned(ctx, id, banned)
}
