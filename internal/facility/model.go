package facility

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

// Approval status values. Only admins may transition the status.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

var (
	ErrNotFound            = apperror.NotFound("facility not found")
	ErrNameRequired        = apperror.Validation("facility name is required")
	ErrLocationRequired    = apperror.Validation("facility location is required")
	ErrInvalidOpeningHours = apperror.Validation("invalid operating hours")
)

// Facility represents a sports venue owned by a facility_owner.
type Facility struct {
	ID                string
	OwnerID           string
	Name              string
	Location          string // free-text address
	Description       string
	Sports            []string
	Amenities         []string
	PhotoFileIDs      []string
	OpeningHoursStart string // Format: HH:MM
	OpeningHoursEnd   string // Format: HH:MM
	Status            string
	RejectionReason   *string
	Rating            float64
	ReviewCount       int
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Owner details joined in for admin moderation views.
	OwnerName  string
	OwnerEmail string
}

// Filter defines parameters for listing facilities.
type Filter struct {
	OwnerID  string
	Status   string
	IsActive *bool
	Keyword  string // matches name or location

	Page     int
	PageSize int
}
