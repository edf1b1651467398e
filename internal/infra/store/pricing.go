package store

import (
	"context"

	"rental-admin-api/internal/infra/docstore"
	"rental-admin-api/internal/usecase/readmodel"
)

const (
	pricesCollection    = "prices"
	locationsCollection = "locations"
	contactsCollection  = "contacts"
)

type PriceStore struct {
	docs *docstore.Store
}

func NewPriceStore(docs *docstore.Store) *PriceStore {
	return &PriceStore{docs: docs}
}

func (s *PriceStore) ListAll(ctx context.Context) ([]readmodel.Price, error) {
	docs, err := s.docs.List(ctx, pricesCollection)
	if err != nil {
		return nil, err
	}
	out := make([]readmodel.Price, 0, len(docs))
	for _, d := range docs {
		var p readmodel.Price
		if err := d.Decode(&p); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func (s *PriceStore) Upsert(ctx context.Context, id string, price readmodel.Price) error {
	return s.docs.Set(ctx, pricesCollection, id, price, true)
}

type LocationStore struct {
	docs *docstore.Store
}

func NewLocationStore(docs *docstore.Store) *LocationStore {
	return &LocationStore{docs: docs}
}

func (s *LocationStore) ListAll(ctx context.Context) ([]readmodel.Location, error) {
	docs, err := s.docs.List(ctx, locationsCollection)
	if err != nil {
		return nil, err
	}
	out := make([]readmodel.Location, 0, len(docs))
	for _, d := range docs {
		var loc readmodel.Location
		if err := d.Decode(&loc); err != nil {
			return nil, err
		}
		loc.ID = d.ID
		out = append(out, loc)
	}
	return out, nil
}

func (s *LocationStore) Update(ctx context.Context, id string, patch readmodel.LocationPatch) error {
	return s.docs.Set(ctx, locationsCollection, id, patch, true)
}

func (s *LocationStore) Insert(ctx context.Context, loc readmodel.Location) error {
	return s.docs.Insert(ctx, locationsCollection, loc.ID, loc)
}

func (s *LocationStore) Delete(ctx context.Context, id string) error {
	return s.docs.Delete(ctx, locationsCollection, id)
}

type ContactStore struct {
	docs *docstore.Store
}

func NewContactStore(docs *docstore.Store) *ContactStore {
	return &ContactStore{docs: docs}
}

func (s *ContactStore) ListAll(ctx context.Context) ([]readmodel.Contact, error) {
	docs, err := s.docs.List(ctx, contactsCollection)
	if err != nil {
		return nil, err
	}
	out := make([]readmodel.Contact, 0, len(docs))
	for _, d := range docs {
		var c readmodel.Contact
		if err := d.Decode(&c); err != nil {
			return nil, err
		}
		c.ID = d.ID
		out = append(out, c)
	}
	return out, nil
}

func (s *ContactStore) Add(ctx context.Context, contact readmodel.Contact) (string, error) {
	return s.docs.Add(ctx, contactsCollection, contact)
}
