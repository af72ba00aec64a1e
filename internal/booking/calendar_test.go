package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthOccupancy(t *testing.T) {
	bookings := []*Booking{
		stay(date(2024, 6, 3), date(2024, 6, 7), StatusBooked),
		stay(date(2024, 6, 7), date(2024, 6, 9), StatusReserved),
		stay(date(2024, 5, 28), date(2024, 6, 1), StatusBooked),   // spills in from May
		stay(date(2024, 6, 15), date(2024, 6, 20), StatusCancelled), // must be ignored
	}

	days := MonthOccupancy(2024, time.June, bookings)
	require.Len(t, days, 30)

	byDay := func(d int) DayOccupancy { return days[d-1] }

	// June 1st is the departure day of the May stay.
	assert.True(t, byDay(1).IsDepartureDay)
	assert.Equal(t, HalfOccupied, byDay(1).LeftHalf)
	assert.Equal(t, HalfFree, byDay(1).RightHalf)

	// June 2nd is free.
	assert.Equal(t, HalfFree, byDay(2).LeftHalf)
	assert.Equal(t, HalfFree, byDay(2).RightHalf)

	// June 5th sits in the middle of the first stay.
	assert.True(t, byDay(5).IsFullyOccupied)

	// June 7th is the turnover day of the two stays.
	assert.True(t, byDay(7).IsArrivalDay)
	assert.True(t, byDay(7).IsDepartureDay)
	assert.Equal(t, HalfOccupied, byDay(7).LeftHalf)
	assert.Equal(t, HalfOccupied, byDay(7).RightHalf)

	// The cancelled stay leaves its days free.
	assert.Equal(t, HalfFree, byDay(16).LeftHalf)
	assert.Equal(t, HalfFree, byDay(16).RightHalf)

	// Dates are sequential and normalized.
	for i, d := range days {
		assert.Equal(t, date(2024, 6, i+1), d.Date)
	}
}

func TestMonthOccupancyLeapFebruary(t *testing.T) {
	days := MonthOccupancy(2024, time.February, nil)
	require.Len(t, days, 29)

	days = MonthOccupancy(2023, time.February, nil)
	require.Len(t, days, 28)
}

func TestYearOccupancy(t *testing.T) {
	bookings := []*Booking{
		stay(date(2024, 12, 28), date(2025, 1, 3), StatusBooked),
	}

	months := YearOccupancy(2024, bookings)
	require.Len(t, months, 12)

	dec := months[time.December]
	require.Len(t, dec, 31)
	assert.True(t, dec[27].IsArrivalDay) // Dec 28
	assert.True(t, dec[30].IsFullyOccupied)

	// The stay reaches into 2025 but its arrival stays in December.
	jan := months[time.January]
	require.Len(t, jan, 31)
	assert.Equal(t, HalfFree, jan[0].LeftHalf)
}

func TestYearStats(t *testing.T) {
	bookings := []*Booking{
		{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10), GuestCount: 4, Status: StatusBooked},
		{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 12), GuestCount: 2, Status: StatusReserved},
		{StartDate: date(2024, 8, 1), EndDate: date(2024, 8, 3), GuestCount: 6, Status: StatusBooked},
		{StartDate: date(2024, 7, 1), EndDate: date(2024, 7, 20), GuestCount: 3, Status: StatusCancelled},
	}

	stats := YearStats(2024, bookings)

	assert.Equal(t, 3, stats.BookingCount)
	assert.Equal(t, 9+2+2, stats.NightCount)
	assert.Equal(t, 12, stats.GuestTotal)
	assert.Equal(t, time.June, stats.BusiestMonth)
}

func TestYearStatsClipsToYear(t *testing.T) {
	bookings := []*Booking{
		// 6 nights total, but only the nights of Jan 1 and Jan 2 fall inside 2025.
		{StartDate: date(2024, 12, 28), EndDate: date(2025, 1, 3), GuestCount: 2, Status: StatusBooked},
	}

	stats := YearStats(2025, bookings)

	assert.Equal(t, 1, stats.BookingCount)
	assert.Equal(t, 2, stats.NightCount) // nights of Jan 1 and Jan 2
	assert.Equal(t, time.January, stats.BusiestMonth)
}

func TestYearStatsEmpty(t *testing.T) {
	stats := YearStats(2024, nil)

	assert.Zero(t, stats.BookingCount)
	assert.Zero(t, stats.NightCount)
	assert.Zero(t, stats.GuestTotal)
	assert.Equal(t, time.January, stats.BusiestMonth)
}

func TestNights(t *testing.T) {
	b := &Booking{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 10)}
	assert.Equal(t, 9, b.Nights())

	single := &Booking{StartDate: date(2024, 6, 1), EndDate: date(2024, 6, 1)}
	assert.Zero(t, single.Nights())

	malformed := &Booking{StartDate: date(2024, 6, 10), EndDate: date(2024, 6, 1)}
	assert.Zero(t, malformed.Nights())
}
