package http

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/booking"
)

type CreateBookingRequest struct {
	CourtID   string `json:"courtId" binding:"required,uuid"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
}

type BookingResponse struct {
	ID            string    `json:"id"`
	CourtID       string    `json:"courtId"`
	CourtName     string    `json:"courtName"`
	Sport         string    `json:"sport"`
	FacilityID    string    `json:"facilityId"`
	FacilityName  string    `json:"facilityName"`
	Location      string    `json:"location"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

// OwnerBookingResponse adds who booked, for the facility owner's overview.
type OwnerBookingResponse struct {
	BookingResponse
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		CourtID:       b.CourtID,
		CourtName:     b.CourtName,
		Sport:         b.CourtSport,
		FacilityID:    b.FacilityID,
		FacilityName:  b.FacilityName,
		Location:      b.FacilityLocation,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Amount:        b.Amount,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		CreatedAt:     b.CreatedAt,
	}
}

func NewOwnerBookingResponse(b *booking.Booking) OwnerBookingResponse {
	return OwnerBookingResponse{
		BookingResponse: NewBookingResponse(b),
		UserName:        b.UserName,
		UserEmail:       b.UserEmail,
	}
}
