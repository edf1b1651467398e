package response

import (
	"rental-admin-api/internal/domain/booking"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	ID           string  `json:"id"`
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	BoatID       string  `json:"boatId,omitempty"`
	RentalDate   string  `json:"rentalDate,omitempty"`
	Duration     string  `json:"duration,omitempty"`
	LocationID   string  `json:"locationId,omitempty"`
	TotalEur     float64 `json:"totalEur"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes,omitempty"`
	CreatedAt    string  `json:"createdAt"`

	ScooterID        string `json:"scooterId,omitempty"`
	PickupDate       string `json:"pickupDate,omitempty"`
	ReturnDate       string `json:"returnDate,omitempty"`
	PickupLocationID string `json:"pickupLocationId,omitempty"`
	ReturnLocationID string `json:"returnLocationId,omitempty"`
}

func FromBooking(b booking.Booking) BookingResponse {
	var resp BookingResponse
	_ = copier.Copy(&resp, &b)
	return resp
}

func FromBookings(list []booking.Booking) []BookingResponse {
	out := make([]BookingResponse, 0, len(list))
	for _, b := range list {
		out = append(out, FromBooking(b))
	}
	return out
}
