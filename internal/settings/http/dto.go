package http

import (
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/settings"
)

type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

func NewSettingResponse(s *settings.Setting) SettingResponse {
	return SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}

type SetSettingRequest struct {
	Value string `json:"value" binding:"max=2000"`
}
