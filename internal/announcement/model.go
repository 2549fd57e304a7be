package announcement

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.NotFound("announcement not found")
	ErrTitleRequired   = apperror.Validation("title is required")
	ErrContentRequired = apperror.Validation("content is required")
	ErrInvalidSort     = apperror.Validation("invalid sort parameters")
)

// Announcement is a platform-wide notice posted by an admin, shown to all
// users on the home page.
type Announcement struct {
	ID        string
	AuthorID  string
	Title     string
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined from users for display.
	AuthorName string
}

// Filter defines parameters for listing announcements.
type Filter struct {
	Keyword   string
	SortBy    string
	SortOrder string
	Page      int
	PageSize  int
}
