package booking

import (
	"errors"
	"strings"
)

var (
	ErrMissingResourceID = errors.New("resource id is required")
	ErrMissingDate       = errors.New("booking date is required")
	ErrInvalidDateRange  = errors.New("pickup date must be before return date")
	ErrDateTaken         = errors.New("resource is already booked for this date")
	ErrNoCapacity        = errors.New("no units available for this date range")
)

// DateRange is a half-open [Start, End) interval of ISO date strings.
type DateRange struct {
	Start string
	End   string
}

func NewDateRange(start, end string) (DateRange, error) {
	start = strings.TrimSpace(start)
	end = strings.TrimSpace(end)
	if start == "" || end == "" {
		return DateRange{}, ErrMissingDate
	}
	if start >= end {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{Start: start, End: end}, nil
}

// Overlaps reports whether two half-open ranges intersect. Touching endpoints
// do not overlap: [a, b) and [b, c) are disjoint.
func (r DateRange) Overlaps(o DateRange) bool {
	return r.Start < o.End && r.End > o.Start
}

// DayCandidate is a single-day booking request for an exclusive resource
// (one active booking per resource per day).
type DayCandidate struct {
	ResourceID string
	Date       string
}

func (c DayCandidate) Validate() error {
	if strings.TrimSpace(c.ResourceID) == "" {
		return ErrMissingResourceID
	}
	if strings.TrimSpace(c.Date) == "" {
		return ErrMissingDate
	}
	return nil
}

// RangeCandidate is a date-range booking request for a multi-unit resource
// with a fleet capacity.
type RangeCandidate struct {
	ResourceID string
	Range      DateRange
}

func (c RangeCandidate) Validate() error {
	if strings.TrimSpace(c.ResourceID) == "" {
		return ErrMissingResourceID
	}
	_, err := NewDateRange(c.Range.Start, c.Range.End)
	return err
}

// CheckDay decides admission of a day candidate against the existing bookings
// of the same resource: any active booking on the same date rejects it.
//
// The existing set is read before the new booking is written with no
// transactional isolation between the two; concurrent requests can both pass.
// Callers needing strict exclusion must guard at the store level.
func CheckDay(c DayCandidate, existing []Booking) error {
	if err := c.Validate(); err != nil {
		return err
	}
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		if b.RentalDate == c.Date {
			return ErrDateTaken
		}
	}
	return nil
}

// CheckRange decides admission of a range candidate: the candidate is rejected
// when the number of active bookings overlapping its range has already reached
// capacity. The same read-then-write caveat as CheckDay applies.
func CheckRange(c RangeCandidate, capacity int, existing []Booking) error {
	if err := c.Validate(); err != nil {
		return err
	}
	overlapping := 0
	for _, b := range existing {
		if !b.IsActive() {
			continue
		}
		r, err := NewDateRange(b.PickupDate, b.ReturnDate)
		if err != nil {
			continue // malformed legacy document, never blocks admission
		}
		if c.Range.Overlaps(r) {
			overlapping++
		}
	}
	if overlapping >= capacity {
		return ErrNoCapacity
	}
	return nil
}
