//go:build unit

package booking_test

import (
	"testing"

	"rental-admin-api/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsActive(t *testing.T) {
	tests := []struct {
		status string
		active bool
	}{
		{"pending", true},
		{"confirmed", true},
		{"paid", true},
		{"", true},
		{"cancelled", false},
		{"canceled", false},
		{"Cancelled", false},
		{"CANCELED", false},
		{"cancellation-requested", true}, // only the exact sentinels are inactive
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			assert.Equal(t, tt.active, booking.IsActive(tt.status))
		})
	}
}

func TestDateRangeOverlaps(t *testing.T) {
	mustRange := func(start, end string) booking.DateRange {
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}

	tests := []struct {
		name     string
		a, b     booking.DateRange
		overlaps bool
	}{
		{
			name:     "touching endpoints are not a conflict",
			a:        mustRange("2024-06-01", "2024-06-03"),
			b:        mustRange("2024-06-03", "2024-06-05"),
			overlaps: false,
		},
		{
			name:     "partial overlap",
			a:        mustRange("2024-06-01", "2024-06-04"),
			b:        mustRange("2024-06-03", "2024-06-05"),
			overlaps: true,
		},
		{
			name:     "containment",
			a:        mustRange("2024-06-01", "2024-06-10"),
			b:        mustRange("2024-06-03", "2024-06-05"),
			overlaps: true,
		},
		{
			name:     "identical ranges",
			a:        mustRange("2024-06-01", "2024-06-03"),
			b:        mustRange("2024-06-01", "2024-06-03"),
			overlaps: true,
		},
		{
			name:     "disjoint ranges",
			a:        mustRange("2024-06-01", "2024-06-02"),
			b:        mustRange("2024-06-10", "2024-06-12"),
			overlaps: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.overlaps, tt.a.Overlaps(tt.b))
			assert.Equal(t, tt.overlaps, tt.b.Overlaps(tt.a), "overlap must be symmetric")
		})
	}
}

func TestNewDateRange(t *testing.T) {
	_, err := booking.NewDateRange("2024-06-03", "2024-06-01")
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

	_, err = booking.NewDateRange("2024-06-03", "2024-06-03")
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

	_, err = booking.NewDateRange("", "2024-06-03")
	assert.ErrorIs(t, err, booking.ErrMissingDate)
}

func TestCheckDay(t *testing.T) {
	existing := []booking.Booking{
		{BoatID: "boat1", RentalDate: "2024-07-01", Status: "pending"},
		{BoatID: "boat1", RentalDate: "2024-07-03", Status: "Cancelled"},
	}

	t.Run("same date as active booking is rejected", func(t *testing.T) {
		err := booking.CheckDay(booking.DayCandidate{ResourceID: "boat1", Date: "2024-07-01"}, existing)
		assert.ErrorIs(t, err, booking.ErrDateTaken)
	})

	t.Run("free date is admitted", func(t *testing.T) {
		err := booking.CheckDay(booking.DayCandidate{ResourceID: "boat1", Date: "2024-07-02"}, existing)
		assert.NoError(t, err)
	})

	t.Run("cancelled booking does not block its date", func(t *testing.T) {
		err := booking.CheckDay(booking.DayCandidate{ResourceID: "boat1", Date: "2024-07-03"}, existing)
		assert.NoError(t, err)
	})

	t.Run("missing fields fail validation before any scan", func(t *testing.T) {
		err := booking.CheckDay(booking.DayCandidate{Date: "2024-07-01"}, existing)
		assert.ErrorIs(t, err, booking.ErrMissingResourceID)

		err = booking.CheckDay(booking.DayCandidate{ResourceID: "boat1"}, existing)
		assert.ErrorIs(t, err, booking.ErrMissingDate)
	})
}

func TestCheckRange(t *testing.T) {
	mustRange := func(start, end string) booking.DateRange {
		r, err := booking.NewDateRange(start, end)
		require.NoError(t, err)
		return r
	}

	existing := []booking.Booking{
		{ScooterID: "sh-125", PickupDate: "2024-08-01", ReturnDate: "2024-08-05", Status: "pending"},
		{ScooterID: "sh-125", PickupDate: "2024-08-03", ReturnDate: "2024-08-06", Status: "confirmed"},
		{ScooterID: "sh-125", PickupDate: "2024-08-02", ReturnDate: "2024-08-04", Status: "canceled"},
	}

	t.Run("third overlapping booking exceeds capacity 2", func(t *testing.T) {
		c := booking.RangeCandidate{ResourceID: "sh-125", Range: mustRange("2024-08-03", "2024-08-04")}
		err := booking.CheckRange(c, 2, existing)
		assert.ErrorIs(t, err, booking.ErrNoCapacity)
	})

	t.Run("non-overlapping range is admitted", func(t *testing.T) {
		c := booking.RangeCandidate{ResourceID: "sh-125", Range: mustRange("2024-08-10", "2024-08-12")}
		assert.NoError(t, booking.CheckRange(c, 2, existing))
	})

	t.Run("range touching an existing end date is admitted", func(t *testing.T) {
		c := booking.RangeCandidate{ResourceID: "sh-125", Range: mustRange("2024-08-06", "2024-08-08")}
		assert.NoError(t, booking.CheckRange(c, 2, existing))
	})

	t.Run("cancelled bookings are excluded from the count", func(t *testing.T) {
		c := booking.RangeCandidate{ResourceID: "sh-125", Range: mustRange("2024-08-01", "2024-08-02")}
		// only one active booking overlaps [08-01, 08-02)
		assert.NoError(t, booking.CheckRange(c, 2, existing))
	})

	t.Run("zero capacity rejects every candidate", func(t *testing.T) {
		c := booking.RangeCandidate{ResourceID: "sh-125", Range: mustRange("2024-09-01", "2024-09-02")}
		err := booking.CheckRange(c, 0, nil)
		assert.ErrorIs(t, err, booking.ErrNoCapacity)
	})

	t.Run("invalid candidate range fails validation", func(t *testing.T) {
		c := booking.RangeCandidate{ResourceID: "sh-125", Range: booking.DateRange{Start: "2024-08-05", End: "2024-08-01"}}
		err := booking.CheckRange(c, 2, existing)
		assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
	})
}
