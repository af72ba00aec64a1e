package http

import (
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/photo"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/request"
)

// ListPhotosRequest defines query parameters for listing gallery photos.
type ListPhotosRequest struct {
	request.ListParams
}

type PhotoResponse struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	UserName     string    `json:"user_name"`
	Caption      string    `json:"caption"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewPhotoResponse(p *photo.Photo) PhotoResponse {
	resp := PhotoResponse{
		ID:          p.ID,
		UserID:      p.UserID,
		UserName:    p.UserName,
		Caption:     p.Caption,
		Filename:    p.Filename,
		ContentType: p.ContentType,
		Size:        p.Size,
		URL:         photo.URL(p.ID),
		CreatedAt:   p.CreatedAt,
	}
	if p.ThumbnailPath != nil {
		t := photo.ThumbnailURL(p.ID)
		resp.ThumbnailURL = &t
	}
	return resp
}

type UpdateCaptionRequest struct {
	Caption string `json:"caption" binding:"max=500"`
}
