package file

import (
	"time"

	"github.com/quickcourt/quickcourt-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.NotFound("file not found")
	ErrTooLarge        = apperror.Validation("file is too large")
	ErrUnsupportedType = apperror.Validation("unsupported file type")
	ErrNoThumbnail     = apperror.NotFound("thumbnail not available")
)

// File is an uploaded image record (avatars and facility photos). The
// storage paths stay internal; clients address files by ID.
type File struct {
	ID            string
	UserID        string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

// URL returns the public path for a file by its ID.
func URL(id string) string {
	return "/api/files/" + id
}

// ThumbnailURL returns the public path for a file's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/api/files/" + id + "/thumbnail"
}
