package booking

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/itsjustvita/booking-calendar-sub000/internal/settings"
)

// fakeRepository is an in-memory Repository used for service tests. The
// checked writes replay the same conflict predicate the real repository runs
// inside its transaction.
type fakeRepository struct {
	bookings map[string]*Booking
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{bookings: make(map[string]*Booking)}
}

func (r *fakeRepository) CreateChecked(_ context.Context, b *Booking) error {
	if HasConflict(r.blocking(""), DateRange{Start: b.StartDate, End: b.EndDate}) {
		return ErrDateConflict
	}
	b.ID = uuid.New().String()
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepository) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeRepository) List(_ context.Context, _ Filter) ([]*Booking, int, error) {
	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (r *fakeRepository) UpdateChecked(_ context.Context, b *Booking) error {
	if _, ok := r.bookings[b.ID]; !ok {
		return ErrNotFound
	}
	if b.Status.IsBlocking() &&
		HasConflict(r.blocking(b.ID), DateRange{Start: b.StartDate, End: b.EndDate}) {
		return ErrDateConflict
	}
	b.UpdatedAt = time.Now().UTC()
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeRepository) Delete(_ context.Context, id string) error {
	if _, ok := r.bookings[id]; !ok {
		return ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeRepository) ListBlockingOverlapping(_ context.Context, from, to time.Time) ([]*Booking, error) {
	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.blocking("") {
		if RangesIntersect(b.StartDate, b.EndDate, from, to) {
			cp := *b
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepository) blocking(excludeID string) []*Booking {
	out := make([]*Booking, 0, len(r.bookings))
	for _, b := range r.bookings {
		if b.ID == excludeID || !b.Status.IsBlocking() {
			continue
		}
		out = append(out, b)
	}
	return out
}

func futureDate(daysAhead int) time.Time {
	return NormalizeDate(time.Now().UTC()).AddDate(0, 0, daysAhead)
}

func TestServiceCreate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	userID := uuid.New().String()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:     userID,
		Title:      "summer week",
		GuestCount: 4,
		StartDate:  futureDate(10),
		EndDate:    futureDate(17),
	})
	require.NoError(t, err)
	require.NotEmpty(t, b.ID)
	assert.Equal(t, StatusReserved, b.Status)
	assert.Equal(t, HalfAfternoon, b.ArrivalHalf, "arrival half defaults to afternoon")

	t.Run("overlapping create is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    userID,
			Title:     "clashing stay",
			StartDate: futureDate(12),
			EndDate:   futureDate(14),
		})
		assert.ErrorIs(t, err, ErrDateConflict)
	})

	t.Run("back-to-back create is accepted", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    userID,
			Title:     "follow-up stay",
			StartDate: futureDate(17),
			EndDate:   futureDate(20),
		})
		assert.NoError(t, err)
	})

	t.Run("reversed range is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    userID,
			Title:     "reversed",
			StartDate: futureDate(30),
			EndDate:   futureDate(25),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("past start is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    userID,
			Title:     "in the past",
			StartDate: futureDate(-5),
			EndDate:   futureDate(2),
		})
		assert.ErrorIs(t, err, ErrStartDatePast)
	})
}

func TestServiceUpdate(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	owner := uuid.New().String()
	stranger := uuid.New().String()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:    owner,
		Title:     "original",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	require.NoError(t, err)

	other, err := svc.Create(ctx, CreateRequest{
		UserID:    owner,
		Title:     "neighbor",
		StartDate: futureDate(20),
		EndDate:   futureDate(25),
	})
	require.NoError(t, err)

	t.Run("stranger cannot update", func(t *testing.T) {
		title := "hijacked"
		_, err := svc.Update(ctx, b.ID, UpdateRequest{Title: &title}, stranger, false)
		assert.ErrorIs(t, err, ErrPermissionDenied)
	})

	t.Run("owner can move dates when free", func(t *testing.T) {
		start := futureDate(16)
		end := futureDate(18)
		updated, err := svc.Update(ctx, b.ID, UpdateRequest{StartDate: &start, EndDate: &end}, owner, false)
		require.NoError(t, err)
		assert.Equal(t, start, updated.StartDate)
	})

	t.Run("moving onto another stay is rejected", func(t *testing.T) {
		start := futureDate(21)
		end := futureDate(23)
		_, err := svc.Update(ctx, b.ID, UpdateRequest{StartDate: &start, EndDate: &end}, owner, false)
		assert.ErrorIs(t, err, ErrDateConflict)
	})

	t.Run("owner may cancel but not confirm", func(t *testing.T) {
		confirmed := string(StatusBooked)
		_, err := svc.Update(ctx, other.ID, UpdateRequest{Status: &confirmed}, owner, false)
		assert.ErrorIs(t, err, ErrPermissionDenied)

		cancelled := string(StatusCancelled)
		updated, err := svc.Update(ctx, other.ID, UpdateRequest{Status: &cancelled}, owner, false)
		require.NoError(t, err)
		assert.Equal(t, StatusCancelled, updated.Status)
	})

	t.Run("admin can confirm", func(t *testing.T) {
		confirmed := string(StatusBooked)
		updated, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &confirmed}, stranger, true)
		require.NoError(t, err)
		assert.Equal(t, StatusBooked, updated.Status)
	})

	t.Run("cancelled range frees the dates", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateRequest{
			UserID:    owner,
			Title:     "reclaimed",
			StartDate: futureDate(20),
			EndDate:   futureDate(25),
		})
		assert.NoError(t, err)
	})

	t.Run("invalid status is rejected", func(t *testing.T) {
		bad := "tentative"
		_, err := svc.Update(ctx, b.ID, UpdateRequest{Status: &bad}, stranger, true)
		assert.ErrorIs(t, err, ErrInvalidStatus)
	})
}

func TestServiceDelete(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	owner := uuid.New().String()
	stranger := uuid.New().String()

	b, err := svc.Create(ctx, CreateRequest{
		UserID:    owner,
		Title:     "to delete",
		StartDate: futureDate(5),
		EndDate:   futureDate(8),
	})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Delete(ctx, b.ID, stranger, false), ErrPermissionDenied)
	require.NoError(t, svc.Delete(ctx, b.ID, owner, false))
	assert.ErrorIs(t, svc.Delete(ctx, b.ID, owner, false), ErrNotFound)
}

func TestServiceCheckAvailability(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{
		UserID:    uuid.New().String(),
		Title:     "existing",
		StartDate: futureDate(10),
		EndDate:   futureDate(15),
	})
	require.NoError(t, err)

	free, err := svc.CheckAvailability(ctx, DateRange{Start: futureDate(12), End: futureDate(13)})
	require.NoError(t, err)
	assert.False(t, free)

	free, err = svc.CheckAvailability(ctx, DateRange{Start: futureDate(15), End: futureDate(20)})
	require.NoError(t, err)
	assert.True(t, free)
}

func TestServiceMonthCalendar(t *testing.T) {
	repo := newFakeRepository()
	svc := NewService(repo, nil)
	ctx := context.Background()

	start := futureDate(30)
	end := futureDate(34)
	_, err := svc.Create(ctx, CreateRequest{
		UserID:    uuid.New().String(),
		Title:     "calendar stay",
		StartDate: start,
		EndDate:   end,
	})
	require.NoError(t, err)

	days, err := svc.MonthCalendar(ctx, start.Year(), start.Month())
	require.NoError(t, err)

	var arrival *DayOccupancy
	for i := range days {
		if days[i].Date.Equal(start) {
			arrival = &days[i]
		}
	}
	require.NotNil(t, arrival)
	assert.True(t, arrival.IsArrivalDay)
	assert.Equal(t, HalfFree, arrival.LeftHalf)
	assert.Equal(t, HalfOccupied, arrival.RightHalf)
}

type fixedSettings struct {
	maxGuests int
	lastKey   string
}

func (f *fixedSettings) GetInt(ctx context.Context, key string, fallback int) int {
	f.lastKey = key
	return f.maxGuests
}

func TestServiceGuestLimit(t *testing.T) {
	repo := newFakeRepository()
	limits := &fixedSettings{maxGuests: 4}
	svc := NewService(repo, limits)
	ctx := context.Background()

	userID := uuid.New().String()

	_, err := svc.Create(ctx, CreateRequest{
		UserID:     userID,
		Title:      "family reunion",
		GuestCount: 5,
		StartDate:  futureDate(10),
		EndDate:    futureDate(12),
	})
	assert.ErrorIs(t, err, ErrTooManyGuests)
	assert.Equal(t, settings.KeyMaxGuests, limits.lastKey)

	b, err := svc.Create(ctx, CreateRequest{
		UserID:     userID,
		Title:      "family reunion",
		GuestCount: 4,
		StartDate:  futureDate(10),
		EndDate:    futureDate(12),
	})
	require.NoError(t, err)

	five := 5
	_, err = svc.Update(ctx, b.ID, UpdateRequest{GuestCount: &five}, userID, false)
	assert.ErrorIs(t, err, ErrTooManyGuests)
}
