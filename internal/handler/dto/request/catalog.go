package request

import (
	"rental-admin-api/internal/usecase/readmodel"
)

// UpdateBoatRequest is flat on the wire: {"id": "...", "price4h": 200, ...}.
// The embedded patch keeps pointer semantics so only provided fields reach
// the merge-upsert.
type UpdateBoatRequest struct {
	ID string `json:"id" binding:"required"`
	readmodel.BoatPatch
}

func (r UpdateBoatRequest) ToPatch() readmodel.BoatPatch {
	return r.BoatPatch
}

type UpdateScooterRequest struct {
	ID string `json:"id" binding:"required"`
	readmodel.ScooterPatch
}

func (r UpdateScooterRequest) ToPatch() readmodel.ScooterPatch {
	return r.ScooterPatch
}
