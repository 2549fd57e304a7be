package timeslot

import (
	"context"
	"errors"

	"github.com/quickcourt/quickcourt-backend/internal/court"
)

// SetAvailabilityRequest marks one exact window blocked or unblocked.
type SetAvailabilityRequest struct {
	CourtID   string
	Date      string
	StartTime string
	EndTime   string
	IsBlocked bool
}

type Service interface {
	// SetAvailability upserts the override for the exact window. Only the
	// owner of the court's facility may call it.
	SetAvailability(ctx context.Context, ownerID string, req SetAvailabilityRequest) (*TimeSlot, error)
	List(ctx context.Context, filter Filter) ([]*TimeSlot, error)

	// IsBlocked reports whether an override marks this exact window blocked.
	// Deliberately an exact-tuple match, not an overlap query: blocks mirror
	// the fixed slot grid shown to owners.
	IsBlocked(ctx context.Context, courtID, date, startTime, endTime string) (bool, error)
}

type service struct {
	repo         Repository
	courtService court.Service
}

func NewService(repo Repository, courtService court.Service) Service {
	return &service{repo: repo, courtService: courtService}
}

func (s *service) SetAvailability(ctx context.Context, ownerID string, req SetAvailabilityRequest) (*TimeSlot, error) {
	if !ValidDate(req.Date) {
		return nil, ErrInvalidDate
	}
	if !ValidWindow(req.StartTime, req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	ct, err := s.courtService.GetByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, court.ErrNotFound) {
			return nil, ErrCourtNotFound
		}
		return nil, err
	}
	if ct.FacilityOwnerID != ownerID {
		return nil, ErrPermissionDenied
	}

	slot := &TimeSlot{
		CourtID:     req.CourtID,
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsBlocked:   req.IsBlocked,
		IsAvailable: !req.IsBlocked,
	}

	if err := s.repo.Upsert(ctx, slot); err != nil {
		return nil, err
	}
	return slot, nil
}

func (s *service) List(ctx context.Context, filter Filter) ([]*TimeSlot, error) {
	if filter.Date != "" && !ValidDate(filter.Date) {
		return nil, ErrInvalidDate
	}
	return s.repo.List(ctx, filter)
}

func (s *service) IsBlocked(ctx context.Context, courtID, date, startTime, endTime string) (bool, error) {
	slot, err := s.repo.GetExact(ctx, courtID, date, startTime, endTime)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return slot.IsBlocked, nil
}
