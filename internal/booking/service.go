package booking

import (
	"context"
	"time"

	"github.com/itsjustvita/booking-calendar-sub000/internal/settings"
)

type CreateRequest struct {
	UserID      string
	Title       string
	GuestCount  int
	StartDate   time.Time
	EndDate     time.Time
	ArrivalHalf DayHalf
}

type UpdateRequest struct {
	Title       *string
	GuestCount  *int
	StartDate   *time.Time
	EndDate     *time.Time
	ArrivalHalf *DayHalf
	Status      *string
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Booking, error)
	GetByID(ctx context.Context, id string) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
	Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Booking, error)
	Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error

	// CheckAvailability reports whether the range is free, without writing.
	CheckAvailability(ctx context.Context, r DateRange) (bool, error)
	// MonthCalendar returns per-day occupancy for one month.
	MonthCalendar(ctx context.Context, year int, month time.Month) ([]DayOccupancy, error)
	// YearCalendar returns per-day occupancy for a whole year plus stats.
	YearCalendar(ctx context.Context, year int) (map[time.Month][]DayOccupancy, CalendarStats, error)
}

// SettingsReader provides the tunable limits the booking rules consult.
type SettingsReader interface {
	GetInt(ctx context.Context, key string, fallback int) int
}

const defaultMaxGuests = 10

type service struct {
	repo     Repository
	settings SettingsReader
}

func NewService(repo Repository, settings SettingsReader) Service {
	return &service{repo: repo, settings: settings}
}

func (s *service) maxGuests(ctx context.Context) int {
	if s.settings == nil {
		return defaultMaxGuests
	}
	return s.settings.GetInt(ctx, settings.KeyMaxGuests, defaultMaxGuests)
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Booking, error) {
	start := NormalizeDate(req.StartDate)
	end := NormalizeDate(req.EndDate)

	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}
	if start.Before(NormalizeDate(time.Now().UTC())) {
		return nil, ErrStartDatePast
	}
	if req.GuestCount > s.maxGuests(ctx) {
		return nil, ErrTooManyGuests
	}

	// Advisory check against current data; the repository re-checks inside
	// its transaction, so a concurrent create cannot slip through.
	free, err := s.CheckAvailability(ctx, DateRange{Start: start, End: end})
	if err != nil {
		return nil, err
	}
	if !free {
		return nil, ErrDateConflict
	}

	arrival := req.ArrivalHalf
	if arrival == "" {
		arrival = HalfAfternoon
	}

	b := &Booking{
		UserID:      req.UserID,
		Title:       req.Title,
		GuestCount:  req.GuestCount,
		StartDate:   start,
		EndDate:     end,
		ArrivalHalf: arrival,
		Status:      StatusReserved,
	}

	if err := s.repo.CreateChecked(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest, updaterUserID string, isAdmin bool) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	isOwner := b.UserID == updaterUserID
	if !isOwner && !isAdmin {
		return nil, ErrPermissionDenied
	}

	if req.Title != nil {
		b.Title = *req.Title
	}
	if req.GuestCount != nil {
		if *req.GuestCount > s.maxGuests(ctx) {
			return nil, ErrTooManyGuests
		}
		b.GuestCount = *req.GuestCount
	}
	if req.ArrivalHalf != nil {
		b.ArrivalHalf = *req.ArrivalHalf
	}

	if req.StartDate != nil || req.EndDate != nil {
		newStart := b.StartDate
		newEnd := b.EndDate
		if req.StartDate != nil {
			newStart = NormalizeDate(*req.StartDate)
		}
		if req.EndDate != nil {
			newEnd = NormalizeDate(*req.EndDate)
		}
		if newEnd.Before(newStart) {
			return nil, ErrInvalidDateRange
		}
		if req.StartDate != nil && newStart.Before(NormalizeDate(time.Now().UTC())) {
			return nil, ErrStartDatePast
		}
		b.StartDate = newStart
		b.EndDate = newEnd
	}

	if req.Status != nil {
		st := Status(*req.Status)
		switch st {
		case StatusReserved, StatusBooked, StatusCancelled:
		default:
			return nil, ErrInvalidStatus
		}
		// Owners can only cancel; confirming is an admin action.
		if !isAdmin && st != StatusCancelled && st != b.Status {
			return nil, ErrPermissionDenied
		}
		b.Status = st
	}

	if err := s.repo.UpdateChecked(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id string, deleterUserID string, isAdmin bool) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if b.UserID != deleterUserID && !isAdmin {
		return ErrPermissionDenied
	}

	return s.repo.Delete(ctx, id)
}

func (s *service) CheckAvailability(ctx context.Context, r DateRange) (bool, error) {
	existing, err := s.repo.ListBlockingOverlapping(ctx, NormalizeDate(r.Start), NormalizeDate(r.End))
	if err != nil {
		return false, err
	}
	return !HasConflict(existing, r), nil
}

func (s *service) MonthCalendar(ctx context.Context, year int, month time.Month) ([]DayOccupancy, error) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	bookings, err := s.repo.ListBlockingOverlapping(ctx, first, last)
	if err != nil {
		return nil, err
	}
	return MonthOccupancy(year, month, bookings), nil
}

func (s *service) YearCalendar(ctx context.Context, year int) (map[time.Month][]DayOccupancy, CalendarStats, error) {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	last := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	bookings, err := s.repo.ListBlockingOverlapping(ctx, first, last)
	if err != nil {
		return nil, CalendarStats{}, err
	}
	return YearOccupancy(year, bookings), YearStats(year, bookings), nil
}
