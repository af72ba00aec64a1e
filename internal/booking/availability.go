package booking

import "time"

// DateRange is a proposed inclusive date range for a new stay.
// ArrivalHalf defaults to the afternoon when empty, matching the half-day
// convention used for occupancy rendering.
type DateRange struct {
	Start       time.Time
	End         time.Time
	ArrivalHalf DayHalf
}

// NormalizeDate truncates a timestamp to its calendar date at UTC midnight.
// All availability logic compares dates in this form.
func NormalizeDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// HasConflict reports whether the proposed range collides with any blocking
// booking in existing. Non-blocking bookings (e.g. cancelled) are skipped.
//
// A proposed range conflicts with booking b when any of these hold:
//
//  1. b starts before the proposed end AND b ends after the proposed start
//     (strict interior overlap).
//  2. The proposed start date falls inside b's stay. Equality with b's
//     departure day is not a conflict: b leaves in the morning, the new
//     guest arrives in the afternoon.
//  3. Symmetric to (2) for the proposed end date against b's arrival day.
//
// The strict inequalities on the boundary days are what permit back-to-back
// turnover; do not relax them to <=/>=.
//
// A malformed range (end before start) can never conflict, keeping the
// predicate total. The check is O(n) over existing and has no side effects.
func HasConflict(existing []*Booking, proposed DateRange) bool {
	start := NormalizeDate(proposed.Start)
	end := NormalizeDate(proposed.End)
	if end.Before(start) {
		return false
	}

	for _, b := range existing {
		if !b.Status.IsBlocking() {
			continue
		}
		bStart := NormalizeDate(b.StartDate)
		bEnd := NormalizeDate(b.EndDate)

		// (1) strict interior overlap
		if bStart.Before(end) && bEnd.After(start) {
			return true
		}
		// (2) proposed start inside an existing stay
		if !bStart.After(start) && bEnd.After(start) {
			return true
		}
		// (3) proposed end inside an existing stay
		if bStart.Before(end) && !bEnd.Before(end) {
			return true
		}
	}
	return false
}

// RangesIntersect reports whether the inclusive ranges [aStart, aEnd] and
// [bStart, bEnd] share at least one day. Used to pre-filter bookings against
// a calendar window before per-day occupancy is computed.
func RangesIntersect(aStart, aEnd, bStart, bEnd time.Time) bool {
	return !NormalizeDate(aStart).After(NormalizeDate(bEnd)) &&
		!NormalizeDate(aEnd).Before(NormalizeDate(bStart))
}

// HalfState marks one half of a day as free or occupied.
type HalfState string

const (
	HalfFree     HalfState = "free"
	HalfOccupied HalfState = "occupied"
)

// DayOccupancy describes how a single calendar day is occupied. LeftHalf is
// the morning, RightHalf the afternoon; calendar UIs render each day as two
// diagonal halves from this.
type DayOccupancy struct {
	Date            time.Time
	LeftHalf        HalfState
	RightHalf       HalfState
	IsArrivalDay    bool
	IsDepartureDay  bool
	IsFullyOccupied bool
}

// ComputeDayOccupancy derives the occupancy of a single day from the
// bookings touching it (bookings with StartDate <= date <= EndDate).
// Non-blocking bookings are ignored.
//
// Half assignment, first match wins:
//   - arrival and departure on the same day (single-day stay): both halves
//     occupied
//   - arrival day: morning free, afternoon occupied
//   - departure day: morning occupied, afternoon free
//   - any other touched day: both halves occupied
//   - untouched day: both halves free
func ComputeDayOccupancy(date time.Time, touching []*Booking) DayOccupancy {
	day := NormalizeDate(date)
	occ := DayOccupancy{
		Date:      day,
		LeftHalf:  HalfFree,
		RightHalf: HalfFree,
	}

	touched := false
	for _, b := range touching {
		if !b.Status.IsBlocking() {
			continue
		}
		touched = true
		if NormalizeDate(b.StartDate).Equal(day) {
			occ.IsArrivalDay = true
		}
		if NormalizeDate(b.EndDate).Equal(day) {
			occ.IsDepartureDay = true
		}
	}

	occ.IsFullyOccupied = touched && !occ.IsArrivalDay && !occ.IsDepartureDay

	switch {
	case occ.IsArrivalDay && occ.IsDepartureDay:
		occ.LeftHalf, occ.RightHalf = HalfOccupied, HalfOccupied
	case occ.IsArrivalDay:
		occ.RightHalf = HalfOccupied
	case occ.IsDepartureDay:
		occ.LeftHalf = HalfOccupied
	case touched:
		occ.LeftHalf, occ.RightHalf = HalfOccupied, HalfOccupied
	}

	return occ
}
