package response

import (
	"rental-admin-api/internal/usecase/readmodel"

	"github.com/jinzhu/copier"
)

type BoatResponse struct {
	ID               string                     `json:"id"`
	Name             string                     `json:"name"`
	ImageURL         string                     `json:"imageUrl"`
	ImageURLs        []string                   `json:"imageUrls,omitempty"`
	Price4h          float64                    `json:"price4h"`
	Price7h          float64                    `json:"price7h"`
	SkipperPrice4h   float64                    `json:"skipperPrice4h,omitempty"`
	SkipperPrice7h   float64                    `json:"skipperPrice7h,omitempty"`
	SkipperServices  []readmodel.SkipperService `json:"skipperServices,omitempty"`
	MaxPax           int                        `json:"maxPax"`
	ModalName        string                     `json:"modalName"`
	Includes         []string                   `json:"includes"`
	LengthMeters     string                     `json:"lengthMeters"`
	FuelExcludedText string                     `json:"fuelExcludedText"`
	SortOrder        int                        `json:"sortOrder"`
	Description      string                     `json:"description,omitempty"`
}

func FromBoats(boats []readmodel.Boat) []BoatResponse {
	out := make([]BoatResponse, 0, len(boats))
	for _, b := range boats {
		var resp BoatResponse
		_ = copier.Copy(&resp, &b)
		out = append(out, resp)
	}
	return out
}

type ScooterResponse struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

func FromScooters(scooters []readmodel.Scooter) []ScooterResponse {
	out := make([]ScooterResponse, 0, len(scooters))
	for _, s := range scooters {
		out = append(out, ScooterResponse{
			ID:       s.ID,
			Label:    s.Label,
			Quantity: s.Quantity,
		})
	}
	return out
}
