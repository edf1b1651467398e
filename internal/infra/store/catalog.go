package store

import (
	"context"

	"rental-admin-api/internal/infra/docstore"
	"rental-admin-api/internal/usecase/readmodel"
)

const (
	boatsCollection    = "boats"
	scootersCollection = "scooters"
)

type BoatStore struct {
	docs *docstore.Store
}

func NewBoatStore(docs *docstore.Store) *BoatStore {
	return &BoatStore{docs: docs}
}

func (s *BoatStore) ListAll(ctx context.Context) ([]readmodel.Boat, error) {
	docs, err := s.docs.List(ctx, boatsCollection)
	if err != nil {
		return nil, err
	}
	out := make([]readmodel.Boat, 0, len(docs))
	for _, d := range docs {
		var b readmodel.Boat
		if err := d.Decode(&b); err != nil {
			return nil, err
		}
		b.ID = d.ID
		out = append(out, b)
	}
	return out, nil
}

func (s *BoatStore) Seed(ctx context.Context, boats []readmodel.Boat) error {
	for _, b := range boats {
		if err := s.docs.Set(ctx, boatsCollection, b.ID, b, false); err != nil {
			return err
		}
	}
	return nil
}

func (s *BoatStore) Update(ctx context.Context, id string, patch readmodel.BoatPatch) error {
	return s.docs.Set(ctx, boatsCollection, id, patch, true)
}

type ScooterStore struct {
	docs *docstore.Store
}

func NewScooterStore(docs *docstore.Store) *ScooterStore {
	return &ScooterStore{docs: docs}
}

func (s *ScooterStore) ListAll(ctx context.Context) ([]readmodel.Scooter, error) {
	docs, err := s.docs.List(ctx, scootersCollection)
	if err != nil {
		return nil, err
	}
	out := make([]readmodel.Scooter, 0, len(docs))
	for _, d := range docs {
		var sc readmodel.Scooter
		if err := d.Decode(&sc); err != nil {
			return nil, err
		}
		sc.ID = d.ID
		out = append(out, sc)
	}
	return out, nil
}

func (s *ScooterStore) Get(ctx context.Context, id string) (readmodel.Scooter, error) {
	doc, err := s.docs.Get(ctx, scootersCollection, id)
	if err != nil {
		return readmodel.Scooter{}, err
	}
	var sc readmodel.Scooter
	if err := doc.Decode(&sc); err != nil {
		return readmodel.Scooter{}, err
	}
	sc.ID = doc.ID
	return sc, nil
}

func (s *ScooterStore) Update(ctx context.Context, id string, patch readmodel.ScooterPatch) error {
	return s.docs.Set(ctx, scootersCollection, id, patch, true)
}
