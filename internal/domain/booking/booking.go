package booking

import "strings"

// Booking is a stored reservation document. Boat bookings carry a single
// RentalDate; scooter bookings carry a half-open [PickupDate, ReturnDate)
// range. All dates are fixed-format ISO strings (YYYY-MM-DD), so lexicographic
// comparison is chronological comparison.
type Booking struct {
	ID           string  `json:"-"`
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

	// Scooter bookings (ranged, multi-unit fleet).
	ScooterID        string `json:"scooterId,omitempty"`
	PickupDate       string `json:"pickupDate,omitempty"`
	ReturnDate       string `json:"returnDate,omitempty"`
	PickupLocationID string `json:"pickupLocationId,omitempty"`
	ReturnLocationID string `json:"returnLocationId,omitempty"`
}

// Only the cancellation sentinels are matched case-insensitively; every other
// status value, "pending" included, counts as active.
func IsActive(status string) bool {
	switch strings.ToLower(status) {
	case "cancelled", "canceled":
		return false
	default:
		return true
	}
}

func (b Booking) IsActive() bool {
	return IsActive(b.Status)
}
