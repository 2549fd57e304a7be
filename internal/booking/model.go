package booking

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

// Booking status values. Cancelled and Completed are terminal. Completed is
// never set by any endpoint here; it exists for administrative transitions.
const (
	StatusConfirmed = "Confirmed"
	StatusCancelled = "Cancelled"
	StatusCompleted = "Completed"
)

// Payment status values. Payment is simulated: bookings are created Paid and
// cancellation refunds them.
const (
	PaymentPaid     = "Paid"
	PaymentPending  = "Pending"
	PaymentRefunded = "Refunded"
	PaymentFailed   = "Failed"
)

var (
	ErrNotFound          = apperror.NotFound("booking not found")
	ErrCourtNotFound     = apperror.NotFound("court not found")
	ErrCourtNotAvailable = apperror.Validation("court is not available for booking")
	ErrTimeConflict      = apperror.Conflict("time slot already booked")
	ErrSlotBlocked       = apperror.Validation("time slot is blocked")
	ErrCancelPast        = apperror.Validation("cannot cancel past bookings")
	ErrNotCancellable    = apperror.Validation("booking cannot be cancelled")
	ErrInvalidDate       = apperror.Validation("date must be in YYYY-MM-DD format")
	ErrInvalidTimeRange  = apperror.Validation("start time must be before end time")
)

// Booking is a confirmed reservation of one court for one [start, end) window
// on one date. The facility reference is denormalized from the court so owner
// overviews query without a traversal.
type Booking struct {
	ID            string
	UserID        string
	FacilityID    string
	CourtID       string
	Date          string // Format: YYYY-MM-DD
	StartTime     string // Format: HH:MM
	EndTime       string // Format: HH:MM
	Amount        float64
	Status        string
	PaymentStatus string
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Joined details for listing views.
	UserName         string
	UserEmail        string
	CourtName        string
	CourtSport       string
	FacilityName     string
	FacilityLocation string
}
