package timeslot

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.NotFound("time slot not found")
	ErrCourtNotFound    = apperror.NotFound("court not found")
	ErrPermissionDenied = apperror.Forbidden("permission denied")
	ErrInvalidDate      = apperror.Validation("date must be in YYYY-MM-DD format")
	ErrInvalidTimeRange = apperror.Validation("start time must be before end time")
)

// TimeSlot is an explicit availability override for one court, date and time
// window. The (court, date, start, end) tuple is unique; writes are upserts.
type TimeSlot struct {
	ID          string
	CourtID     string
	Date        string // Format: YYYY-MM-DD
	StartTime   string // Format: HH:MM
	EndTime     string // Format: HH:MM
	IsBlocked   bool
	IsAvailable bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Filter defines parameters for querying availability overrides. Both fields
// are optional.
type Filter struct {
	CourtID string
	Date    string
}

// ValidDate reports whether s is a calendar date in YYYY-MM-DD form.
func ValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ValidWindow reports whether start and end are HH:MM clock times with
// start strictly before end. Zero-padded HH:MM strings order lexically, so
// window comparisons elsewhere can use plain string operators.
func ValidWindow(start, end string) bool {
	t1, err1 := time.Parse("15:04", start)
	t2, err2 := time.Parse("15:04", end)
	return err1 == nil && err2 == nil && t1.Before(t2)
}
