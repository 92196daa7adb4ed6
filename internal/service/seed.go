package service

import (
	"context"
	"fmt"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
)

// SeedResult reports the outcome of a seed attempt.
type SeedResult struct {
	AlreadySeeded bool
	Count         int
}

// SeedLoader populates the pet collection with the starter set when empty.
type SeedLoader interface {
	// SeedIfEmpty counts existing pets and inserts the fixtures only when the
	// collection is empty. Count reports either the pre-existing total or the
	// number of fixtures inserted.
	//
	// The count-then-insert sequence is not atomic: two cold-start callers can
	// both observe an empty collection and both insert, duplicating the
	// starter set. Accepted behavior; callers needing stronger guarantees
	// should invoke it once at startup.
	SeedIfEmpty(ctx context.Context) (*SeedResult, error)
}

type seedLoader struct {
	pets repository.PetRepository
}

// NewSeedLoader constructs a new SeedLoader.
func NewSeedLoader(pets repository.PetRepository) SeedLoader {
	return &seedLoader{pets: pets}
}

func (s *seedLoader) SeedIfEmpty(ctx context.Context) (*SeedResult, error) {
	n, err := s.pets.Count(ctx)
	if err != nil {
		return nil, err
	}
	if n > 0 {
		return &SeedResult{AlreadySeeded: true, Count: int(n)}, nil
	}

	inserted, err := s.pets.InsertMany(ctx, StarterPets())
	if err != nil {
		return nil, fmt.Errorf("seed pets: %w", err)
	}
	return &SeedResult{Count: inserted}, nil
}

// StarterPets returns the fixture records inserted into an empty store. A
// fresh slice is built per call so callers cannot mutate the fixture set.
func StarterPets() []model.Pet {
	return []model.Pet{
		{
			Name:        "Mocha",
			Species:     "Dog",
			AgeYears:    1.5,
			Gender:      "Female",
			Size:        "Small",
			Description: model.StrPtr("Sweet, snuggly pup who loves belly rubs."),
			PhotoURL:    model.StrPtr("https://images.unsplash.com/photo-1543466835-00a7907e9de1?w=900&q=80&auto=format&fit=crop"),
			Location:    model.StrPtr("Sunnyvale Shelter"),
		},
		{
			Name:        "Miso",
			Species:     "Cat",
			AgeYears:    3,
			Gender:      "Male",
			Size:        "Small",
			Description: model.StrPtr("Calm lap cat, purr motor included."),
			PhotoURL:    model.StrPtr("https://images.unsplash.com/photo-1518791841217-8f162f1e1131?w=900&q=80&auto=format&fit=crop"),
			Location:    model.StrPtr("Palo Alto Rescue"),
		},
		{
			Name:        "Taro",
			Species:     "Rabbit",
			AgeYears:    2,
			Gender:      "Female",
			Size:        "Small",
			Description: model.StrPtr("Gentle bun who loves leafy greens."),
			PhotoURL:    model.StrPtr("https://images.unsplash.com/photo-1548767797-d8c844163c4c?w=900&q=80&auto=format&fit=crop"),
			Location:    model.StrPtr("Mountain View Haven"),
		},
	}
}
