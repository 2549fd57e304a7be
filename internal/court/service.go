package court

import (
	"context"
	"strings"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
)

// CreateRequest carries data to create a court under a facility.
type CreateRequest struct {
	FacilityID        string
	Name              string
	Sport             string
	PricePerHour      float64
	Description       string
	OpeningHoursStart string
	OpeningHoursEnd   string
	Schedule          *[7]DaySchedule // nil derives all-week from default hours
}

// UpdateRequest carries data for partial court updates.
type UpdateRequest struct {
	Name              *string
	Sport             *string
	PricePerHour      *float64
	Description       *string
	OpeningHoursStart *string
	OpeningHoursEnd   *string
	Schedule          *[7]DaySchedule
	IsActive          *bool
	Status            *string
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Court, error)
	GetByID(ctx context.Context, id string) (*Court, error)
	ListByFacility(ctx context.Context, facilityID string) ([]*Court, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Court, error)
	CountActive(ctx context.Context) (int, error)
}

type service struct {
	repo       Repository
	facService facility.Service
}

func NewService(repo Repository, facService facility.Service) Service {
	return &service{repo: repo, facService: facService}
}

func validHours(start, end string) bool {
	t1, err1 := time.Parse("15:04", start)
	t2, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && t1.Before(t2)
}

func validateSchedule(schedule [7]DaySchedule) error {
	for _, day := range schedule {
		if !day.Open {
			continue
		}
		if !validHours(day.Start, day.End) {
			return ErrInvalidSchedule
		}
	}
	return nil
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Court, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Sport) == "" {
		return nil, ErrSportRequired
	}
	if req.PricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}
	if !validHours(req.OpeningHoursStart, req.OpeningHoursEnd) {
		return nil, ErrInvalidSchedule
	}

	// The facility must exist and belong to the caller. A facility owned by
	// someone else reads the same as a missing one.
	f, err := s.facService.GetByID(ctx, req.FacilityID)
	if err != nil {
		return nil, ErrFacilityNotFound
	}
	if f.OwnerID != ownerID {
		return nil, ErrFacilityNotFound
	}

	var schedule [7]DaySchedule
	if req.Schedule != nil {
		schedule = *req.Schedule
		if err := validateSchedule(schedule); err != nil {
			return nil, err
		}
	} else {
		// Default: open every weekday within the default hours.
		for i := range schedule {
			schedule[i] = DaySchedule{
				Open:  true,
				Start: req.OpeningHoursStart,
				End:   req.OpeningHoursEnd,
			}
		}
	}

	c := &Court{
		FacilityID:        req.FacilityID,
		Name:              strings.TrimSpace(req.Name),
		Sport:             strings.TrimSpace(req.Sport),
		PricePerHour:      req.PricePerHour,
		Description:       req.Description,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
		Schedule:          schedule,
		IsActive:          true,
		Status:            StatusActive,
	}

	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Court, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByFacility(ctx context.Context, facilityID string) ([]*Court, error) {
	return s.repo.ListByFacility(ctx, facilityID)
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Court, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Ownership runs through the court's facility: the caller must own the
	// facility the court belongs to.
	if c.FacilityOwnerID != ownerID {
		return nil, ErrPermissionDenied
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		c.Name = strings.TrimSpace(*req.Name)
	}
	if req.Sport != nil {
		if strings.TrimSpace(*req.Sport) == "" {
			return nil, ErrSportRequired
		}
		c.Sport = strings.TrimSpace(*req.Sport)
	}
	if req.PricePerHour != nil {
		if *req.PricePerHour <= 0 {
			return nil, ErrInvalidPrice
		}
		c.PricePerHour = *req.PricePerHour
	}
	if req.Description != nil {
		c.Description = *req.Description
	}
	if req.OpeningHoursStart != nil {
		c.OpeningHoursStart = *req.OpeningHoursStart
	}
	if req.OpeningHoursEnd != nil {
		c.OpeningHoursEnd = *req.OpeningHoursEnd
	}
	if req.OpeningHoursStart != nil || req.OpeningHoursEnd != nil {
		if !validHours(c.OpeningHoursStart, c.OpeningHoursEnd) {
			return nil, ErrInvalidSchedule
		}
	}
	if req.Schedule != nil {
		if err := validateSchedule(*req.Schedule); err != nil {
			return nil, err
		}
		c.Schedule = *req.Schedule
	}
	if req.IsActive != nil {
		c.IsActive = *req.IsActive
	}
	if req.Status != nil {
		switch *req.Status {
		case StatusActive, StatusMaintenance, StatusInactive:
			c.Status = *req.Status
		default:
			return nil, ErrInvalidStatus
		}
	}

	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) CountActive(ctx context.Context) (int, error) {
	return s.repo.CountActive(ctx)
}
