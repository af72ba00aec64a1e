package settings

import (
	"net/http"
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound    = apperror.New(http.StatusNotFound, "setting not found")
	ErrKeyRequired = apperror.New(http.StatusBadRequest, "key is required")
)

// Setting is a single key/value pair of system configuration, e.g. the
// cabin name shown in the UI or the maximum guest count.
type Setting struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// Well-known setting keys.
const (
	KeyCabinName     = "cabin_name"
	KeyMaxGuests     = "max_guests"
	KeyBookingNotice = "booking_notice"
)
