package photo

import (
	"net/http"
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "photo not found")
	ErrNotAnImage       = apperror.New(http.StatusBadRequest, "uploaded file is not an image")
	ErrTooLarge         = apperror.New(http.StatusRequestEntityTooLarge, "uploaded file exceeds the size limit")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "no permission to modify this photo")
)

// Photo represents one image in the cabin gallery.
type Photo struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      string    `json:"user_name"`
	Caption       string    `json:"caption"`
	Filename      string    `json:"filename"`
	StoragePath   string    `json:"-"`
	ThumbnailPath *string   `json:"-"`
	ContentType   string    `json:"content_type"`
	Size          int64     `json:"size"`
	CreatedAt     time.Time `json:"created_at"`
}

// URL returns the public URL for downloading a photo by its ID.
func URL(id string) string {
	return "/photos/" + id + "/file"
}

// ThumbnailURL returns the public URL for a photo's thumbnail by its ID.
func ThumbnailURL(id string) string {
	return "/photos/" + id + "/thumbnail"
}
