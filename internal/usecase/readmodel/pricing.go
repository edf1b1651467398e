package readmodel

import "github.com/oapi-codegen/nullable"

// Price is one cell of the scooter price matrix, keyed by the composite
// document id "<scooterId>_<season>_<days>".
type Price struct {
	ScooterID string  `json:"scooterId"`
	Season    string  `json:"season"`
	Days      int     `json:"days"`
	PriceEur  float64 `json:"priceEur"`
}

type Location struct {
	ID        string   `json:"-"`
	Slug      string   `json:"slug"`
	Label     string   `json:"label"`
	SortOrder int      `json:"sortOrder"`
	PriceEur  *float64 `json:"priceEur"`
}

// LocationPatch distinguishes "field absent" from "field explicitly null":
// a null priceEur clears the stored price, an absent one leaves it untouched.
type LocationPatch struct {
	Slug      *string                    `json:"slug,omitempty"`
	Label     *string                    `json:"label,omitempty"`
	SortOrder *int                       `json:"sortOrder,omitempty"`
	PriceEur  nullable.Nullable[float64] `json:"priceEur,omitempty"`
}

type Contact struct {
	ID        string  `json:"-"`
	Firstname string  `json:"firstname"`
	Lastname  string  `json:"lastname"`
	Country   *string `json:"country"`
	Phone     *string `json:"phone"`
	Email     string  `json:"email"`
	Message   string  `json:"message"`
	CreatedAt string  `json:"createdAt"`
}
