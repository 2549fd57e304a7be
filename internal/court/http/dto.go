package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/court"
)

// CreateCourtRequest is the payload for POST /api/courts.
type CreateCourtRequest struct {
	FacilityID        string                `json:"facilityId" binding:"required,uuid"`
	Name              string                `json:"name" binding:"required"`
	Sport             string                `json:"sport" binding:"required"`
	PricePerHour      float64               `json:"pricePerHour" binding:"required,gt=0"`
	Description       string                `json:"description"`
	OpeningHoursStart string                `json:"openingHoursStart" binding:"required"`
	OpeningHoursEnd   string                `json:"openingHoursEnd" binding:"required"`
	Schedule          *[7]court.DaySchedule `json:"schedule"`
}

// UpdateCourtRequest is the payload for PUT /api/courts/:id.
type UpdateCourtRequest struct {
	Name              *string               `json:"name"`
	Sport             *string               `json:"sport"`
	PricePerHour      *float64              `json:"pricePerHour" binding:"omitempty,gt=0"`
	Description       *string               `json:"description"`
	OpeningHoursStart *string               `json:"openingHoursStart"`
	OpeningHoursEnd   *string               `json:"openingHoursEnd"`
	Schedule          *[7]court.DaySchedule `json:"schedule"`
	IsActive          *bool                 `json:"isActive"`
	Status            *string               `json:"status" binding:"omitempty,oneof=Active Maintenance Inactive"`
}

// CourtResponse is the API view of a court.
type CourtResponse struct {
	ID                string                `json:"id"`
	FacilityID        string                `json:"facilityId"`
	FacilityName      string                `json:"facilityName"`
	Name              string                `json:"name"`
	Sport             string                `json:"sport"`
	PricePerHour      float64               `json:"pricePerHour"`
	Description       string                `json:"description"`
	OpeningHoursStart string                `json:"openingHoursStart"`
	OpeningHoursEnd   string                `json:"openingHoursEnd"`
	Schedule          [7]court.DaySchedule  `json:"schedule"`
	IsActive          bool                  `json:"isActive"`
	Status            string                `json:"status"`
	CreatedAt         time.Time             `json:"createdAt"`
	UpdatedAt         time.Time             `json:"updatedAt"`
}

func NewCourtResponse(c *court.Court) CourtResponse {
	return CourtResponse{
		ID:                c.ID,
		FacilityID:        c.FacilityID,
		FacilityName:      c.FacilityName,
		Name:              c.Name,
		Sport:             c.Sport,
		PricePerHour:      c.PricePerHour,
		Description:       c.Description,
		OpeningHoursStart: c.OpeningHoursStart,
		OpeningHoursEnd:   c.OpeningHoursEnd,
		Schedule:          c.Schedule,
		IsActive:          c.IsActive,
		Status:            c.Status,
		CreatedAt:         c.CreatedAt,
		UpdatedAt:         c.UpdatedAt,
	}
}
