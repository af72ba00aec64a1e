package booking

import (
	"net/http"
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrDateConflict     = apperror.New(http.StatusConflict, "the chosen period is already reserved")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "start date must not be after end date")
	ErrInvalidStatus    = apperror.New(http.StatusBadRequest, "invalid booking status")
	ErrStartDatePast    = apperror.New(http.StatusBadRequest, "cannot create a booking in the past")
	ErrTooManyGuests    = apperror.New(http.StatusBadRequest, "guest count exceeds the configured maximum")
	ErrPermissionDenied = apperror.New(http.StatusForbidden, "permission denied")
)

// Status classifies a booking's lifecycle state.
type Status string

const (
	StatusReserved  Status = "reserved"
	StatusBooked    Status = "booked"
	StatusCancelled Status = "cancelled"
)

// IsBlocking reports whether a booking in this status counts toward
// availability conflicts. Cancelled bookings never block; a status added
// later only needs a case here, the overlap logic stays untouched.
func (s Status) IsBlocking() bool {
	switch s {
	case StatusReserved, StatusBooked:
		return true
	default:
		return false
	}
}

// DayHalf identifies one half of a calendar day.
type DayHalf string

const (
	HalfMorning   DayHalf = "morning"
	HalfAfternoon DayHalf = "afternoon"
)

// Booking is a reservation of the cabin for an inclusive date range.
// StartDate and EndDate are calendar dates (UTC midnight). By the half-day
// convention the arrival occupies only the afternoon of StartDate and the
// departure only the morning of EndDate, so same-day turnover is possible.
type Booking struct {
	ID          string
	UserID      string
	UserName    string
	Title       string
	GuestCount  int
	StartDate   time.Time
	EndDate     time.Time
	ArrivalHalf DayHalf
	Status      Status
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Nights returns the number of nights the booking spans.
func (b *Booking) Nights() int {
	start := NormalizeDate(b.StartDate)
	end := NormalizeDate(b.EndDate)
	if end.Before(start) {
		return 0
	}
	return int(end.Sub(start).Hours() / 24)
}

// Filter defines parameters for listing bookings.
type Filter struct {
	UserID    string
	Status    string
	From      *time.Time // only bookings whose range ends on or after this date
	To        *time.Time // only bookings whose range starts on or before this date
	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
