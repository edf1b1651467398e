package request

import (
	"encoding/json"

	"rental-admin-api/internal/usecase/readmodel"
)

// PriceItem accepts both the current camelCase keys and the older dashboard
// keys scooter_id and price_eur; the older key wins when both are present.
type PriceItem struct {
	ScooterID string  `json:"scooterId"`
	Season    string  `json:"season"`
	Days      int     `json:"days"`
	PriceEur  float64 `json:"priceEur"`
}

func (p *PriceItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ScooterID       string   `json:"scooterId"`
		ScooterIDLegacy *string  `json:"scooter_id"`
		Season          string   `json:"season"`
		Days            int      `json:"days"`
		PriceEur        float64  `json:"priceEur"`
		PriceEurLegacy  *float64 `json:"price_eur"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.ScooterIDLegacy != nil {
		raw.ScooterID = *raw.ScooterIDLegacy
	}
	if raw.PriceEurLegacy != nil {
		raw.PriceEur = *raw.PriceEurLegacy
	}
	p.ScooterID = raw.ScooterID
	p.Season = raw.Season
	p.Days = raw.Days
	p.PriceEur = raw.PriceEur
	return nil
}

// UpsertPricesRequest binds either a single price object or an array of them.
type UpsertPricesRequest struct {
	Items []PriceItem
}

func (r *UpsertPricesRequest) UnmarshalJSON(data []byte) error {
	var items []PriceItem
	if err := json.Unmarshal(data, &items); err == nil {
		r.Items = items
		return nil
	}
	var single PriceItem
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	r.Items = []PriceItem{single}
	return nil
}

func (r UpsertPricesRequest) ToReadModel() []readmodel.Price {
	out := make([]readmodel.Price, 0, len(r.Items))
	for _, item := range r.Items {
		out = append(out, readmodel.Price{
			ScooterID: item.ScooterID,
			Season:    item.Season,
			Days:      item.Days,
			PriceEur:  item.PriceEur,
		})
	}
	return out
}
