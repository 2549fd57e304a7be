package facility

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/cache"
)

// approvedCacheKey caches the first page of the public approved listing,
// which is the hot path for venue discovery.
const approvedCacheKey = "facilities:approved:first"

const approvedCacheTTL = 5 * time.Minute

// CreateRequest carries data to register a new facility. New facilities
// always start in pending status.
type CreateRequest struct {
	Name              string
	Location          string
	Description       string
	Sports            []string
	Amenities         []string
	PhotoFileIDs      []string
	OpeningHoursStart string
	OpeningHoursEnd   string
}

// UpdateRequest carries data for partial owner updates. Approval status is
// not patchable here; only admins transition it.
type UpdateRequest struct {
	Name              *string
	Location          *string
	Description       *string
	Sports            []string
	Amenities         []string
	PhotoFileIDs      []string
	OpeningHoursStart *string
	OpeningHoursEnd   *string
	IsActive          *bool
}

type Service interface {
	Create(ctx context.Context, ownerID string, req CreateRequest) (*Facility, error)
	GetByID(ctx context.Context, id string) (*Facility, error)
	ListApproved(ctx context.Context, page, pageSize int) ([]*Facility, int, error)
	ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Facility, int, error)
	Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Facility, error)

	// Admin moderation.
	ListPending(ctx context.Context, page, pageSize int) ([]*Facility, int, error)
	Approve(ctx context.Context, id string) (*Facility, error)
	Reject(ctx context.Context, id, reason string) (*Facility, error)
	CountByStatus(ctx context.Context, status string) (int, error)
}

type service struct {
	repo  Repository
	cache cache.Cache
}

func NewService(repo Repository, c cache.Cache) Service {
	return &service{repo: repo, cache: c}
}

// validateHours checks HH:MM operating hours and their ordering.
func validateHours(start, end string) error {
	t1, err1 := time.Parse("15:04", start)
	t2, err2 := time.Parse("15:04", end)
	if err1 != nil || err2 != nil {
		return ErrInvalidOpeningHours
	}
	if !t1.Before(t2) {
		return ErrInvalidOpeningHours
	}
	return nil
}

func (s *service) Create(ctx context.Context, ownerID string, req CreateRequest) (*Facility, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrNameRequired
	}
	if strings.TrimSpace(req.Location) == "" {
		return nil, ErrLocationRequired
	}
	if err := validateHours(req.OpeningHoursStart, req.OpeningHoursEnd); err != nil {
		return nil, err
	}

	f := &Facility{
		OwnerID:           ownerID,
		Name:              strings.TrimSpace(req.Name),
		Location:          strings.TrimSpace(req.Location),
		Description:       req.Description,
		Sports:            req.Sports,
		Amenities:         req.Amenities,
		PhotoFileIDs:      req.PhotoFileIDs,
		OpeningHoursStart: req.OpeningHoursStart,
		OpeningHoursEnd:   req.OpeningHoursEnd,
		Status:            StatusPending,
		IsActive:          true,
	}

	if err := s.repo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Facility, error) {
	return s.repo.GetByID(ctx, id)
}

// cachedApprovedPage is the serialized shape stored in the cache.
type cachedApprovedPage struct {
	Facilities []*Facility `json:"facilities"`
	Total      int         `json:"total"`
}

func (s *service) ListApproved(ctx context.Context, page, pageSize int) ([]*Facility, int, error) {
	active := true
	filter := Filter{
		Status:   StatusApproved,
		IsActive: &active,
		Page:     page,
		PageSize: pageSize,
	}

	cacheable := page <= 1 && (pageSize == 0 || pageSize == 20)
	if cacheable {
		var cached cachedApprovedPage
		hit, err := s.cache.GetJSON(ctx, approvedCacheKey, &cached)
		if err != nil {
			log.Printf("facility cache read failed: %v", err)
		} else if hit {
			return cached.Facilities, cached.Total, nil
		}
	}

	facilities, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	if cacheable {
		payload := cachedApprovedPage{Facilities: facilities, Total: total}
		if err := s.cache.SetJSON(ctx, approvedCacheKey, payload, approvedCacheTTL); err != nil {
			log.Printf("facility cache write failed: %v", err)
		}
	}

	return facilities, total, nil
}

func (s *service) ListByOwner(ctx context.Context, ownerID string, page, pageSize int) ([]*Facility, int, error) {
	return s.repo.List(ctx, Filter{OwnerID: ownerID, Page: page, PageSize: pageSize})
}

func (s *service) Update(ctx context.Context, id, ownerID string, req UpdateRequest) (*Facility, error) {
	f, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// An ownership mismatch reads the same as a missing facility so
	// non-owners cannot confirm a facility exists.
	if f.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrNameRequired
		}
		f.Name = strings.TrimSpace(*req.Name)
	}
	if req.Location != nil {
		if strings.TrimSpace(*req.Location) == "" {
			return nil, ErrLocationRequired
		}
		f.Location = strings.TrimSpace(*req.Location)
	}
	if req.Description != nil {
		f.Description = *req.Description
	}
	if req.Sports != nil {
		f.Sports = req.Sports
	}
	if req.Amenities != nil {
		f.Amenities = req.Amenities
	}
	if req.PhotoFileIDs != nil {
		f.PhotoFileIDs = req.PhotoFileIDs
	}
	if req.OpeningHoursStart != nil {
		f.OpeningHoursStart = *req.OpeningHoursStart
	}
	if req.OpeningHoursEnd != nil {
		f.OpeningHoursEnd = *req.OpeningHoursEnd
	}
	if req.OpeningHoursStart != nil || req.OpeningHoursEnd != nil {
		if err := validateHours(f.OpeningHoursStart, f.OpeningHoursEnd); err != nil {
			return nil, err
		}
	}
	if req.IsActive != nil {
		f.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, f); err != nil {
		return nil, err
	}

	s.invalidateApprovedCache(ctx)
	return f, nil
}

func (s *service) ListPending(ctx context.Context, page, pageSize int) ([]*Facility, int, error) {
	return s.repo.List(ctx, Filter{Status: StatusPending, Page: page, PageSize: pageSize})
}

func (s *service) Approve(ctx context.Context, id string) (*Facility, error) {
	if err := s.repo.UpdateStatus(ctx, id, StatusApproved, nil); err != nil {
		return nil, err
	}
	s.invalidateApprovedCache(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *service) Reject(ctx context.Context, id, reason string) (*Facility, error) {
	if strings.TrimSpace(reason) == "" {
		reason = "Not specified"
	}
	if err := s.repo.UpdateStatus(ctx, id, StatusRejected, &reason); err != nil {
		return nil, err
	}
	s.invalidateApprovedCache(ctx)
	return s.repo.GetByID(ctx, id)
}

func (s *service) CountByStatus(ctx context.Context, status string) (int, error) {
	return s.repo.CountByStatus(ctx, status)
}

func (s *service) invalidateApprovedCache(ctx context.Context) {
	if err := s.cache.Delete(ctx, approvedCacheKey); err != nil {
		log.Printf("facility cache invalidation failed: %v", err)
	}
}
