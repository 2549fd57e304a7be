package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/facility"
)

// CreateFacilityRequest is the payload for POST /api/facilities.
type CreateFacilityRequest struct {
	Name              string   `json:"name" binding:"required"`
	Location          string   `json:"location" binding:"required"`
	Description       string   `json:"description"`
	Sports            []string `json:"sports"`
	Amenities         []string `json:"amenities"`
	PhotoFileIDs      []string `json:"photos" binding:"omitempty,dive,uuid"`
	OpeningHoursStart string   `json:"openingHoursStart" binding:"required"`
	OpeningHoursEnd   string   `json:"openingHoursEnd" binding:"required"`
}

// UpdateFacilityRequest is the payload for PUT /api/facilities/:id.
type UpdateFacilityRequest struct {
	Name              *string  `json:"name"`
	Location          *string  `json:"location"`
	Description       *string  `json:"description"`
	Sports            []string `json:"sports"`
	Amenities         []string `json:"amenities"`
	PhotoFileIDs      []string `json:"photos" binding:"omitempty,dive,uuid"`
	OpeningHoursStart *string  `json:"openingHoursStart"`
	OpeningHoursEnd   *string  `json:"openingHoursEnd"`
	IsActive          *bool    `json:"isActive"`
}

// FacilityResponse is the API view of a facility.
type FacilityResponse struct {
	ID                string    `json:"id"`
	OwnerID           string    `json:"ownerId"`
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	Description       string    `json:"description"`
	Sports            []string  `json:"sports"`
	Amenities         []string  `json:"amenities"`
	Photos            []string  `json:"photos"`
	OpeningHoursStart string    `json:"openingHoursStart"`
	OpeningHoursEnd   string    `json:"openingHoursEnd"`
	Status            string    `json:"status"`
	RejectionReason   *string   `json:"rejectionReason,omitempty"`
	Rating            float64   `json:"rating"`
	ReviewCount       int       `json:"reviewCount"`
	IsActive          bool      `json:"isActive"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// PendingFacilityResponse adds the owner contact details joined in for the
// admin moderation queue.
type PendingFacilityResponse struct {
	FacilityResponse
	OwnerName  string `json:"ownerName"`
	OwnerEmail string `json:"ownerEmail"`
}

// FacilityTag is the minimal facility reference embedded in other responses.
type FacilityTag struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
}

func NewFacilityResponse(f *facility.Facility) FacilityResponse {
	resp := FacilityResponse{
		ID:                f.ID,
		OwnerID:           f.OwnerID,
		Name:              f.Name,
		Location:          f.Location,
		Description:       f.Description,
		Sports:            f.Sports,
		Amenities:         f.Amenities,
		Photos:            f.PhotoFileIDs,
		OpeningHoursStart: f.OpeningHoursStart,
		OpeningHoursEnd:   f.OpeningHoursEnd,
		Status:            f.Status,
		RejectionReason:   f.RejectionReason,
		Rating:            f.Rating,
		ReviewCount:       f.ReviewCount,
		IsActive:          f.IsActive,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
	// Avoid null arrays in JSON output.
	if resp.Sports == nil {
		resp.Sports = []string{}
	}
	if resp.Amenities == nil {
		resp.Amenities = []string{}
	}
	if resp.Photos == nil {
		resp.Photos = []string{}
	}
	return resp
}

func NewPendingFacilityResponse(f *facility.Facility) PendingFacilityResponse {
	return PendingFacilityResponse{
		FacilityResponse: NewFacilityResponse(f),
		OwnerName:        f.OwnerName,
		OwnerEmail:       f.OwnerEmail,
	}
}
