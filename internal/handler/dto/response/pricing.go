package response

import (
	"rental-admin-api/internal/usecase/readmodel"
)

type PriceResponse struct {
	ID        string  `json:"id"`
	ScooterID string  `json:"scooterId"`
	Season    string  `json:"season"`
	Days      int     `json:"days"`
	PriceEur  float64 `json:"priceEur"`
}

func FromPrices(prices []readmodel.Price, docID func(readmodel.Price) string) []PriceResponse {
	out := make([]PriceResponse, 0, len(prices))
	for _, p := range prices {
		out = append(out, PriceResponse{
			ID:        docID(p),
			ScooterID: p.ScooterID,
			Season:    p.Season,
			Days:      p.Days,
			PriceEur:  p.PriceEur,
		})
	}
	return out
}

type LocationResponse struct {
	ID        string   `json:"id"`
	Slug      string   `json:"slug"`
	Label     string   `json:"label"`
	SortOrder int      `json:"sortOrder"`
	PriceEur  *float64 `json:"priceEur"`
}

func FromLocations(locations []readmodel.Location) []LocationResponse {
	out := make([]LocationResponse, 0, len(locations))
	for _, l := range locations {
		out = append(out, LocationResponse{
			ID:        l.ID,
			Slug:      l.Slug,
			Label:     l.Label,
			SortOrder: l.SortOrder,
			PriceEur:  l.PriceEur,
		})
	}
	return out
}

type ContactResponse struct {
	ID        string  `json:"id"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Country   *string `json:"country"`
	Phone     *string `json:"phone"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt"`
}

func FromContacts(contacts []readmodel.Contact) []ContactResponse {
	out := make([]ContactResponse, 0, len(contacts))
	for _, c := range contacts {
		out = append(out, ContactResponse{
			ID:        c.ID,
			Firstname: c.Firstname,
			Lastname:  c.Lastname,
			Country:   c.Country,
			Phone:     c.Phone,
			Email:     c.Email,
			Message:   c.Message,
			CreatedAt: c.CreatedAt,
		})
	}
	return out
}
