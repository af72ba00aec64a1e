package http

import (
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/booking"
	"github.com/itsjustvita/booking-calendar-sub000/internal/pkg/request"
)

const dateLayout = "2006-01-02"

// ListBookingsRequest defines query parameters for listing bookings.
type ListBookingsRequest struct {
	request.ListParams
	UserID string     `form:"user_id" binding:"omitempty,uuid"`
	Status string     `form:"status" binding:"omitempty,oneof=reserved booked cancelled"`
	From   *time.Time `form:"from" time_format:"2006-01-02"`
	To     *time.Time `form:"to" time_format:"2006-01-02"`
	SortBy string     `form:"sort_by" binding:"omitempty,oneof=start_date end_date created_at status"`
}

// Validate performs custom validation for ListBookingsRequest.
func (r *ListBookingsRequest) Validate() error {
	if r.From != nil && r.To != nil && r.From.After(*r.To) {
		return booking.ErrInvalidDateRange
	}
	return nil
}

type BookingResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Title       string    `json:"title"`
	GuestCount  int       `json:"guest_count"`
	StartDate   string    `json:"start_date"`
	EndDate     string    `json:"end_date"`
	ArrivalHalf string    `json:"arrival_half"`
	Nights      int       `json:"nights"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		UserName:    b.UserName,
		Title:       b.Title,
		GuestCount:  b.GuestCount,
		StartDate:   b.StartDate.Format(dateLayout),
		EndDate:     b.EndDate.Format(dateLayout),
		ArrivalHalf: string(b.ArrivalHalf),
		Nights:      b.Nights(),
		Status:      string(b.Status),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

type CreateBookingRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	GuestCount  int    `json:"guest_count" binding:"omitempty,min=1,max=50"`
	StartDate   string `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate     string `json:"end_date" binding:"required,datetime=2006-01-02"`
	ArrivalHalf string `json:"arrival_half" binding:"omitempty,oneof=morning afternoon"`
}

// Validate performs custom validation for CreateBookingRequest.
func (r *CreateBookingRequest) Validate() error {
	start, end, err := parseDatePair(r.StartDate, r.EndDate)
	if err != nil {
		return err
	}
	if start.After(end) {
		return booking.ErrInvalidDateRange
	}
	return nil
}

type UpdateBookingRequest struct {
	Title       *string `json:"title" binding:"omitempty,max=200"`
	GuestCount  *int    `json:"guest_count" binding:"omitempty,min=1,max=50"`
	StartDate   *string `json:"start_date" binding:"omitempty,datetime=2006-01-02"`
	EndDate     *string `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	ArrivalHalf *string `json:"arrival_half" binding:"omitempty,oneof=morning afternoon"`
	Status      *string `json:"status" binding:"omitempty,oneof=reserved booked cancelled"`
}

// Validate performs custom validation for UpdateBookingRequest.
func (r *UpdateBookingRequest) Validate() error {
	if r.StartDate != nil && r.EndDate != nil {
		start, end, err := parseDatePair(*r.StartDate, *r.EndDate)
		if err != nil {
			return err
		}
		if start.After(end) {
			return booking.ErrInvalidDateRange
		}
	}
	return nil
}

// AvailabilityRequest defines query parameters for the availability check.
type AvailabilityRequest struct {
	StartDate string `form:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate   string `form:"end_date" binding:"required,datetime=2006-01-02"`
}

type AvailabilityResponse struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Available bool   `json:"available"`
}

// DayOccupancyResponse is the per-day calendar cell rendered by clients.
type DayOccupancyResponse struct {
	Date            string `json:"date"`
	LeftHalf        string `json:"left_half"`
	RightHalf       string `json:"right_half"`
	IsArrivalDay    bool   `json:"is_arrival_day"`
	IsDepartureDay  bool   `json:"is_departure_day"`
	IsFullyOccupied bool   `json:"is_fully_occupied"`
}

func NewDayOccupancyResponse(d booking.DayOccupancy) DayOccupancyResponse {
	return DayOccupancyResponse{
		Date:            d.Date.Format(dateLayout),
		LeftHalf:        string(d.LeftHalf),
		RightHalf:       string(d.RightHalf),
		IsArrivalDay:    d.IsArrivalDay,
		IsDepartureDay:  d.IsDepartureDay,
		IsFullyOccupied: d.IsFullyOccupied,
	}
}

type MonthCalendarResponse struct {
	Year  int                    `json:"year"`
	Month int                    `json:"month"`
	Days  []DayOccupancyResponse `json:"days"`
}

type YearCalendarResponse struct {
	Year   int                            `json:"year"`
	Months map[int][]DayOccupancyResponse `json:"months"`
	Stats  CalendarStatsResponse          `json:"stats"`
}

type CalendarStatsResponse struct {
	BookingCount int `json:"booking_count"`
	NightCount   int `json:"night_count"`
	GuestTotal   int `json:"guest_total"`
	BusiestMonth int `json:"busiest_month"`
}

func parseDatePair(startStr, endStr string) (time.Time, time.Time, error) {
	start, err := time.Parse(dateLayout, startStr)
	if err != nil {
		return time.Time{}, time.Time{}, booking.ErrInvalidDateRange
	}
	end, err := time.Parse(dateLayout, endStr)
	if err != nil {
		return time.Time{}, time.Time{}, booking.ErrInvalidDateRange
	}
	return start, end, nil
}
