package readmodel

// Store document shapes for the catalog collections. JSON tags are the field
// names persisted in the document store and must stay stable; the patch types
// carry pointer fields so a marshalled patch contains only what the caller
// explicitly provided (merge-upsert contract).

type SkipperService struct {
	Name          string  `json:"name"`
	DurationHours float64 `json:"durationHours"`
	Price         float64 `json:"price"`
	Description   string  `json:"description,omitempty"`
}

type Boat struct {
	ID               string           `json:"-"`
	Name             string           `json:"name"`
	ImageURL         string           `json:"imageUrl"`
	ImageURLs        []string         `json:"imageUrls,omitempty"`
	Price4h          float64          `json:"price4h"`
	Price7h          float64          `json:"price7h"`
	SkipperPrice4h   float64          `json:"skipperPrice4h,omitempty"`
	SkipperPrice7h   float64          `json:"skipperPrice7h,omitempty"`
	SkipperServices  []SkipperService `json:"skipperServices,omitempty"`
	MaxPax           int              `json:"maxPax"`
	ModalName        string           `json:"modalName"`
	Includes         []string         `json:"includes"`
	LengthMeters     string           `json:"lengthMeters"`
	FuelExcludedText string           `json:"fuelExcludedText"`
	SortOrder        int              `json:"sortOrder"`
	Description      string           `json:"description,omitempty"`
}

type BoatPatch struct {
	Name             *string           `json:"name,omitempty"`
	ImageURL         *string           `json:"imageUrl,omitempty"`
	ImageURLs        *[]string         `json:"imageUrls,omitempty"`
	Price4h          *float64          `json:"price4h,omitempty"`
	Price7h          *float64          `json:"price7h,omitempty"`
	SkipperPrice4h   *float64          `json:"skipperPrice4h,omitempty"`
	SkipperPrice7h   *float64          `json:"skipperPrice7h,omitempty"`
	SkipperServices  *[]SkipperService `json:"skipperServices,omitempty"`
	MaxPax           *int              `json:"maxPax,omitempty"`
	ModalName        *string           `json:"modalName,omitempty"`
	Includes         *[]string         `json:"includes,omitempty"`
	LengthMeters     *string           `json:"lengthMeters,omitempty"`
	FuelExcludedText *string           `json:"fuelExcludedText,omitempty"`
	SortOrder        *int              `json:"sortOrder,omitempty"`
	Description      *string           `json:"description,omitempty"`
}

func (p BoatPatch) IsEmpty() bool {
	return p == BoatPatch{}
}

type Scooter struct {
	ID       string `json:"-"`
	Label    string `json:"label"`
	Quantity int    `json:"quantity"`
}

type ScooterPatch struct {
	Label    *string `json:"label,omitempty"`
	Quantity *int    `json:"quantity,omitempty"`
}

func (p ScooterPatch) IsEmpty() bool {
	return p == ScooterPatch{}
}
