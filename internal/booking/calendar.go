package booking

import "time"

// MonthOccupancy computes the per-day occupancy of a calendar month.
// bookings may contain any bookings; only those intersecting the month and
// holding a blocking status influence the result. One DayOccupancy is
// returned per day of the month, in order.
func MonthOccupancy(year int, month time.Month, bookings []*Booking) []DayOccupancy {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	inWindow := filterIntersecting(bookings, first, last)

	days := make([]DayOccupancy, 0, last.Day())
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, ComputeDayOccupancy(d, bookingsTouching(inWindow, d)))
	}
	return days
}

// YearOccupancy computes the occupancy of every day of a year, keyed by
// month. A year view makes at most 366 per-day computations.
func YearOccupancy(year int, bookings []*Booking) map[time.Month][]DayOccupancy {
	months := make(map[time.Month][]DayOccupancy, 12)
	for m := time.January; m <= time.December; m++ {
		months[m] = MonthOccupancy(year, m, bookings)
	}
	return months
}

// CalendarStats aggregates simple booking figures for a calendar window.
type CalendarStats struct {
	BookingCount int
	NightCount   int
	GuestTotal   int
	BusiestMonth time.Month // month with the most booked nights; January when empty
}

// YearStats reduces the bookings intersecting a year to aggregate counts.
// Nights are clipped to the year so a stay spanning New Year's Eve only
// contributes the nights actually falling inside it.
func YearStats(year int, bookings []*Booking) CalendarStats {
	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)

	stats := CalendarStats{BusiestMonth: time.January}
	nightsPerMonth := make(map[time.Month]int, 12)

	for _, b := range filterIntersecting(bookings, yearStart, yearEnd) {
		stats.BookingCount++
		stats.GuestTotal += b.GuestCount

		start := NormalizeDate(b.StartDate)
		end := NormalizeDate(b.EndDate)
		if start.Before(yearStart) {
			start = yearStart
		}
		if end.After(yearEnd) {
			end = yearEnd
		}

		// each night belongs to the month of the day it starts on
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			stats.NightCount++
			nightsPerMonth[d.Month()]++
		}
	}

	best := 0
	for m := time.January; m <= time.December; m++ {
		if nightsPerMonth[m] > best {
			best = nightsPerMonth[m]
			stats.BusiestMonth = m
		}
	}
	return stats
}

// filterIntersecting keeps the blocking bookings whose range shares at least
// one day with [from, to].
func filterIntersecting(bookings []*Booking, from, to time.Time) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if !b.Status.IsBlocking() {
			continue
		}
		if RangesIntersect(b.StartDate, b.EndDate, from, to) {
			out = append(out, b)
		}
	}
	return out
}

// bookingsTouching keeps the bookings whose range contains the given day.
func bookingsTouching(bookings []*Booking, day time.Time) []*Booking {
	d := NormalizeDate(day)
	out := make([]*Booking, 0, 2)
	for _, b := range bookings {
		if RangesIntersect(b.StartDate, b.EndDate, d, d) {
			out = append(out, b)
		}
	}
	return out
}
