package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func stay(start, end time.Time, status Status) *Booking {
	return &Booking{
		StartDate: start,
		EndDate:   end,
		Status:    status,
	}
}

func TestHasConflict(t *testing.T) {
	existing := []*Booking{
		stay(date(2024, 6, 1), date(2024, 6, 10), StatusBooked),
	}

	tests := []struct {
		name     string
		existing []*Booking
		proposed DateRange
		want     bool
	}{
		{
			name:     "back-to-back turnover on departure day is allowed",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 10), End: date(2024, 6, 15)},
			want:     false,
		},
		{
			name:     "back-to-back turnover on arrival day is allowed (swapped sides)",
			existing: []*Booking{stay(date(2024, 6, 10), date(2024, 6, 15), StatusBooked)},
			proposed: DateRange{Start: date(2024, 6, 1), End: date(2024, 6, 10)},
			want:     false,
		},
		{
			name:     "interior overlap is rejected",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 5), End: date(2024, 6, 7)},
			want:     true,
		},
		{
			name:     "proposed range containing an existing stay is rejected",
			existing: []*Booking{stay(date(2024, 6, 5), date(2024, 6, 7), StatusBooked)},
			proposed: DateRange{Start: date(2024, 6, 1), End: date(2024, 6, 10)},
			want:     true,
		},
		{
			name:     "disjoint ranges are allowed",
			existing: []*Booking{stay(date(2024, 6, 1), date(2024, 6, 5), StatusBooked)},
			proposed: DateRange{Start: date(2024, 6, 10), End: date(2024, 6, 15)},
			want:     false,
		},
		{
			name:     "start date inside an existing stay is rejected",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 8), End: date(2024, 6, 20)},
			want:     true,
		},
		{
			name:     "end date inside an existing stay is rejected",
			existing: existing,
			proposed: DateRange{Start: date(2024, 5, 20), End: date(2024, 6, 3)},
			want:     true,
		},
		{
			name:     "start date equals existing arrival day is rejected",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 1), End: date(2024, 6, 3)},
			want:     true,
		},
		{
			name:     "cancelled bookings never block",
			existing: []*Booking{stay(date(2024, 6, 1), date(2024, 6, 10), StatusCancelled)},
			proposed: DateRange{Start: date(2024, 6, 5), End: date(2024, 6, 7)},
			want:     false,
		},
		{
			name:     "reserved bookings block like booked ones",
			existing: []*Booking{stay(date(2024, 6, 1), date(2024, 6, 10), StatusReserved)},
			proposed: DateRange{Start: date(2024, 6, 5), End: date(2024, 6, 7)},
			want:     true,
		},
		{
			name:     "no bookings means no conflict",
			existing: nil,
			proposed: DateRange{Start: date(2024, 6, 1), End: date(2024, 6, 10)},
			want:     false,
		},
		{
			name:     "malformed range (end before start) never conflicts",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 7), End: date(2024, 6, 5)},
			want:     false,
		},
		{
			name:     "single proposed day inside a stay is rejected",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 5), End: date(2024, 6, 5)},
			want:     true,
		},
		{
			// A single-day stay claims both halves of its day, so it
			// clashes with the departure morning.
			name:     "single proposed day on the departure day is rejected",
			existing: existing,
			proposed: DateRange{Start: date(2024, 6, 10), End: date(2024, 6, 10)},
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HasConflict(tt.existing, tt.proposed)
			assert.Equal(t, tt.want, got)
		})
	}
}

// Re-checking an accepted booking against the other stored bookings must
// still come out conflict-free, so accepted data stays self-consistent.
func TestHasConflictNoSelfConflict(t *testing.T) {
	stored := []*Booking{
		stay(date(2024, 6, 1), date(2024, 6, 10), StatusBooked),
		stay(date(2024, 6, 10), date(2024, 6, 15), StatusBooked),
		stay(date(2024, 6, 20), date(2024, 6, 25), StatusReserved),
	}

	for i, b := range stored {
		others := make([]*Booking, 0, len(stored)-1)
		for j, o := range stored {
			if j != i {
				others = append(others, o)
			}
		}
		proposed := DateRange{Start: b.StartDate, End: b.EndDate}
		require.False(t, HasConflict(others, proposed),
			"stored booking %d conflicts with its peers on re-evaluation", i)
	}
}

func TestHasConflictIsDeterministic(t *testing.T) {
	existing := []*Booking{
		stay(date(2024, 6, 1), date(2024, 6, 10), StatusBooked),
		stay(date(2024, 7, 1), date(2024, 7, 3), StatusReserved),
	}
	proposed := DateRange{Start: date(2024, 6, 5), End: date(2024, 6, 12)}

	first := HasConflict(existing, proposed)
	for i := 0; i < 10; i++ {
		require.Equal(t, first, HasConflict(existing, proposed))
	}
}

func TestComputeDayOccupancy(t *testing.T) {
	tests := []struct {
		name     string
		day      time.Time
		touching []*Booking
		want     DayOccupancy
	}{
		{
			name:     "single-day booking occupies both halves but is not fully occupied",
			day:      date(2024, 7, 1),
			touching: []*Booking{stay(date(2024, 7, 1), date(2024, 7, 1), StatusBooked)},
			want: DayOccupancy{
				Date:            date(2024, 7, 1),
				LeftHalf:        HalfOccupied,
				RightHalf:       HalfOccupied,
				IsArrivalDay:    true,
				IsDepartureDay:  true,
				IsFullyOccupied: false,
			},
		},
		{
			name:     "arrival day leaves the morning free",
			day:      date(2024, 7, 1),
			touching: []*Booking{stay(date(2024, 7, 1), date(2024, 7, 5), StatusBooked)},
			want: DayOccupancy{
				Date:         date(2024, 7, 1),
				LeftHalf:     HalfFree,
				RightHalf:    HalfOccupied,
				IsArrivalDay: true,
			},
		},
		{
			name:     "departure day leaves the afternoon free",
			day:      date(2024, 7, 5),
			touching: []*Booking{stay(date(2024, 7, 1), date(2024, 7, 5), StatusBooked)},
			want: DayOccupancy{
				Date:           date(2024, 7, 5),
				LeftHalf:       HalfOccupied,
				RightHalf:      HalfFree,
				IsDepartureDay: true,
			},
		},
		{
			name:     "day in the middle of a stay is fully occupied",
			day:      date(2024, 7, 3),
			touching: []*Booking{stay(date(2024, 7, 1), date(2024, 7, 5), StatusBooked)},
			want: DayOccupancy{
				Date:            date(2024, 7, 3),
				LeftHalf:        HalfOccupied,
				RightHalf:       HalfOccupied,
				IsFullyOccupied: true,
			},
		},
		{
			name: "turnover day: one departure plus one arrival fills both halves",
			day:  date(2024, 7, 5),
			touching: []*Booking{
				stay(date(2024, 7, 1), date(2024, 7, 5), StatusBooked),
				stay(date(2024, 7, 5), date(2024, 7, 9), StatusReserved),
			},
			want: DayOccupancy{
				Date:           date(2024, 7, 5),
				LeftHalf:       HalfOccupied,
				RightHalf:      HalfOccupied,
				IsArrivalDay:   true,
				IsDepartureDay: true,
			},
		},
		{
			name:     "untouched day is fully free",
			day:      date(2024, 7, 1),
			touching: nil,
			want: DayOccupancy{
				Date:      date(2024, 7, 1),
				LeftHalf:  HalfFree,
				RightHalf: HalfFree,
			},
		},
		{
			name:     "cancelled booking leaves the day free",
			day:      date(2024, 7, 3),
			touching: []*Booking{stay(date(2024, 7, 1), date(2024, 7, 5), StatusCancelled)},
			want: DayOccupancy{
				Date:      date(2024, 7, 3),
				LeftHalf:  HalfFree,
				RightHalf: HalfFree,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDayOccupancy(tt.day, tt.touching)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRangesIntersect(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{"disjoint", date(2024, 6, 1), date(2024, 6, 5), date(2024, 6, 10), date(2024, 6, 15), false},
		{"touching on a shared day", date(2024, 6, 1), date(2024, 6, 10), date(2024, 6, 10), date(2024, 6, 15), true},
		{"nested", date(2024, 6, 1), date(2024, 6, 30), date(2024, 6, 10), date(2024, 6, 15), true},
		{"identical", date(2024, 6, 1), date(2024, 6, 5), date(2024, 6, 1), date(2024, 6, 5), true},
		{"adjacent without sharing a day", date(2024, 6, 1), date(2024, 6, 5), date(2024, 6, 6), date(2024, 6, 10), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RangesIntersect(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// intersection is symmetric
			assert.Equal(t, tt.want, RangesIntersect(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestNormalizeDate(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Vienna")
	require.NoError(t, err)

	in := time.Date(2024, 6, 10, 23, 45, 12, 0, loc)
	got := NormalizeDate(in)

	assert.Equal(t, time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC), got)
}
