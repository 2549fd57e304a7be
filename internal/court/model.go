package court

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

// Court status values. Only Active courts (with the active flag set) accept
// bookings.
const (
	StatusActive      = "Active"
	StatusMaintenance = "Maintenance"
	StatusInactive    = "Inactive"
)

var (
	ErrNotFound         = apperror.NotFound("court not found")
	ErrFacilityNotFound = apperror.NotFound("facility not found")
	ErrPermissionDenied = apperror.Forbidden("permission denied")
	ErrNameRequired     = apperror.Validation("court name is required")
	ErrSportRequired    = apperror.Validation("court sport is required")
	ErrInvalidPrice     = apperror.Validation("price per hour must be greater than zero")
	ErrInvalidStatus    = apperror.Validation("invalid court status")
	ErrInvalidSchedule  = apperror.Validation("invalid weekly schedule")
)

// DaySchedule is one weekday's override of the court's default hours.
type DaySchedule struct {
	Open  bool   `json:"open"`
	Start string `json:"start"` // Format: HH:MM
	End   string `json:"end"`   // Format: HH:MM
}

// Court represents a bookable unit belonging to one facility. The weekly
// schedule has seven entries indexed Sunday through Saturday, matching
// time.Weekday.
type Court struct {
	ID                string
	FacilityID        string
	Name              string
	Sport             string
	PricePerHour      float64
	Description       string
	OpeningHoursStart string // Format: HH:MM
	OpeningHoursEnd   string // Format: HH:MM
	Schedule          [7]DaySchedule
	IsActive          bool
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Facility details joined in so ownership checks and booking views do
	// not need a second round-trip.
	FacilityName    string
	FacilityOwnerID string
}

// Bookable reports whether the court currently accepts bookings.
func (c *Court) Bookable() bool {
	return c.IsActive && c.Status == StatusActive
}
