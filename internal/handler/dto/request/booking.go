package request

import (
	"rental-admin-api/internal/usecase"
)

// CreateBookingRequest carries both booking shapes; which one applies is
// decided by whether boatId or scooterId is present. Field-level validation
// happens in the use case so the error taxonomy stays in one place.
type CreateBookingRequest struct {
	CustomerName string  `json:"customerName"`
	Email        string  `json:"email"`
	Phone        string  `json:"phone"`
	LocationID   string  `json:"locationId"`
	TotalEur     float64 `json:"totalEur"`
	Status       string  `json:"status"`
	Notes        string  `json:"notes"`

	BoatID     string `json:"boatId"`
	RentalDate string `json:"rentalDate"`
	Duration   string `json:"duration"`

	ScooterID        string `json:"scooterId"`
	PickupDate       string `json:"pickupDate"`
	ReturnDate       string `json:"returnDate"`
	PickupLocationID string `json:"pickupLocationId"`
	ReturnLocationID string `json:"returnLocationId"`
}

func (r CreateBookingRequest) ToParams() usecase.CreateBookingParams {
	return usecase.CreateBookingParams{
		CustomerName:     r.CustomerName,
		Email:            r.Email,
		Phone:            r.Phone,
		LocationID:       r.LocationID,
		TotalEur:         r.TotalEur,
		Status:           r.Status,
		Notes:            r.Notes,
		BoatID:           r.BoatID,
		RentalDate:       r.RentalDate,
		Duration:         r.Duration,
		ScooterID:        r.ScooterID,
		PickupDate:       r.PickupDate,
		ReturnDate:       r.ReturnDate,
		PickupLocationID: r.PickupLocationID,
		ReturnLocationID: r.ReturnLocationID,
	}
}
