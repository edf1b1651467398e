package store

import (
	"context"

	"rental-admin-api/internal/domain/booking"
	"rental-admin-api/internal/infra/docstore"
)

const bookingsCollection = "bookings"

type BookingStore struct {
	docs *docstore.Store
}

func NewBookingStore(docs *docstore.Store) *BookingStore {
	return &BookingStore{docs: docs}
}

func (s *BookingStore) ListAll(ctx context.Context) ([]booking.Booking, error) {
	docs, err := s.docs.List(ctx, bookingsCollection)
	if err != nil {
		return nil, err
	}
	return decodeBookings(docs)
}

func (s *BookingStore) ListForBoatDate(ctx context.Context, boatID, rentalDate string) ([]booking.Booking, error) {
	docs, err := s.docs.Find(ctx, bookingsCollection, map[string]string{
		"boatId":     boatID,
		"rentalDate": rentalDate,
	})
	if err != nil {
		return nil, err
	}
	return decodeBookings(docs)
}

func (s *BookingStore) ListForScooter(ctx context.Context, scooterID string) ([]booking.Booking, error) {
	docs, err := s.docs.Find(ctx, bookingsCollection, map[string]string{
		"scooterId": scooterID,
	})
	if err != nil {
		return nil, err
	}
	return decodeBookings(docs)
}

func (s *BookingStore) Create(ctx context.Context, b booking.Booking) (string, error) {
	return s.docs.Add(ctx, bookingsCollection, b)
}

func decodeBookings(docs []docstore.Document) ([]booking.Booking, error) {
	out := make([]booking.Booking, 0, len(docs))
	for _, d := range docs {
		var b booking.Booking
		if err := d.Decode(&b); err != nil {
			return nil, err
		}
		b.ID = d.ID
		out = append(out, b)
	}
	return out, nil
}
