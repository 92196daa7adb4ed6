package service

import (
	"context"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
)

// PetCatalog defines the read-side use cases over the pet collection.
type PetCatalog interface {
	// ListPets returns the public views of every available pet matching the
	// filter. Result order is store-default; callers must not depend on it.
	ListPets(ctx context.Context, f repository.PetFilter) ([]model.PetView, error)
}

type petCatalog struct {
	pets repository.PetRepository
}

// NewPetCatalog constructs a new PetCatalog.
func NewPetCatalog(pets repository.PetRepository) PetCatalog {
	return &petCatalog{pets: pets}
}

func (s *petCatalog) ListPets(ctx context.Context, f repository.PetFilter) ([]model.PetView, error) {
	pets, err := s.pets.Find(ctx, f)
	if err != nil {
		return nil, err
	}

	// Non-nil so an empty result serializes as [] rather than null.
	views := make([]model.PetView, 0, len(pets))
	for i := range pets {
		views = append(views, pets[i].View())
	}
	return views, nil
}
