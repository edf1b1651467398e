package request

import (
	"encoding/json"
	"strings"

	"rental-admin-api/internal/usecase"
	"rental-admin-api/internal/usecase/readmodel"

	"github.com/oapi-codegen/nullable"
)

// LocationItem accepts the current camelCase keys plus the older dashboard
// keys sort_order and price_eur; the older key wins when both are present.
type LocationItem struct {
	ID string `json:"id"`
	readmodel.LocationPatch
}

func (it *LocationItem) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID              string                     `json:"id"`
		Slug            *string                    `json:"slug"`
		Label           *string                    `json:"label"`
		SortOrder       *int                       `json:"sortOrder"`
		SortOrderLegacy *int                       `json:"sort_order"`
		PriceEur        nullable.Nullable[float64] `json:"priceEur"`
		PriceEurLegacy  nullable.Nullable[float64] `json:"price_eur"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.SortOrderLegacy != nil {
		raw.SortOrder = raw.SortOrderLegacy
	}
	if raw.PriceEurLegacy.IsSpecified() {
		raw.PriceEur = raw.PriceEurLegacy
	}
	it.ID = raw.ID
	it.LocationPatch = readmodel.LocationPatch{
		Slug:      raw.Slug,
		Label:     raw.Label,
		SortOrder: raw.SortOrder,
		PriceEur:  raw.PriceEur,
	}
	return nil
}

// UpsertLocationsRequest binds either a single location object or a batch
// wrapped as {"items": [...]}.
type UpsertLocationsRequest struct {
	Items []LocationItem
}

func (r *UpsertLocationsRequest) UnmarshalJSON(data []byte) error {
	var batch struct {
		Items []LocationItem `json:"items"`
	}
	if err := json.Unmarshal(data, &batch); err == nil && batch.Items != nil {
		r.Items = batch.Items
		return nil
	}
	var single LocationItem
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	r.Items = []LocationItem{single}
	return nil
}

// ToItems addresses each item by id, falling back to its slug when no id was
// sent.
func (r UpsertLocationsRequest) ToItems() []usecase.LocationUpsertItem {
	out := make([]usecase.LocationUpsertItem, 0, len(r.Items))
	for _, item := range r.Items {
		id := strings.TrimSpace(item.ID)
		if id == "" && item.Slug != nil {
			id = strings.TrimSpace(*item.Slug)
		}
		out = append(out, usecase.LocationUpsertItem{
			ID:    id,
			Patch: item.LocationPatch,
		})
	}
	return out
}

// CreateLocationRequest accepts sort_order and price_eur as aliases for the
// camelCase keys; the older key wins when both are present.
type CreateLocationRequest struct {
	Slug      string   `json:"slug" binding:"required"`
	Label     string   `json:"label"`
	SortOrder int      `json:"sortOrder"`
	PriceEur  *float64 `json:"priceEur"`
}

func (r *CreateLocationRequest) UnmarshalJSON(data []byte) error {
	var raw struct {
		Slug            string   `json:"slug"`
		Label           string   `json:"label"`
		SortOrder       int      `json:"sortOrder"`
		SortOrderLegacy *int     `json:"sort_order"`
		PriceEur        *float64 `json:"priceEur"`
		PriceEurLegacy  *float64 `json:"price_eur"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.SortOrderLegacy != nil {
		raw.SortOrder = *raw.SortOrderLegacy
	}
	if raw.PriceEurLegacy != nil {
		raw.PriceEur = raw.PriceEurLegacy
	}
	r.Slug = raw.Slug
	r.Label = raw.Label
	r.SortOrder = raw.SortOrder
	r.PriceEur = raw.PriceEur
	return nil
}

func (r CreateLocationRequest) ToParams() usecase.CreateLocationParams {
	return usecase.CreateLocationParams{
		Slug:      r.Slug,
		Label:     r.Label,
		SortOrder: r.SortOrder,
		PriceEur:  r.PriceEur,
	}
}
