package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/timeslot"
)

// SetAvailabilityRequest is the payload for POST /api/timeslots.
type SetAvailabilityRequest struct {
	CourtID   string `json:"courtId" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	IsBlocked bool   `json:"isBlocked"`
}

// ListSlotsRequest defines query parameters for GET /api/timeslots.
type ListSlotsRequest struct {
	CourtID string `form:"courtId" binding:"omitempty,uuid"`
	Date    string `form:"date"`
}

// SlotResponse is the API view of an availability override.
type SlotResponse struct {
	ID          string    `json:"id"`
	CourtID     string    `json:"courtId"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	IsBlocked   bool      `json:"isBlocked"`
	IsAvailable bool      `json:"isAvailable"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func NewSlotResponse(s *timeslot.TimeSlot) SlotResponse {
	return SlotResponse{
		ID:          s.ID,
		CourtID:     s.CourtID,
		Date:        s.Date,
		StartTime:   s.StartTime,
		EndTime:     s.EndTime,
		IsBlocked:   s.IsBlocked,
		IsAvailable: s.IsAvailable,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}
