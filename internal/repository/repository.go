package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawshugs/internal/model"
)

// Package repository contains data access layer abstractions.
// Implementations live in subpackages (mongo for the real store) plus the
// unavailable variants in this package for the store-not-configured state.

// ErrUnavailable is returned by every operation when the document store is
// not configured or could not be reached at startup.
var ErrUnavailable = errors.New("document store unavailable")

// ErrNoDocument is returned by lookups that match nothing.
var ErrNoDocument = errors.New("no matching document")

// PetFilter holds the optional search criteria for listing pets. Zero values
// mean "no constraint"; adopted pets are excluded unconditionally by every
// implementation.
type PetFilter struct {
	Species string
	Size    string
	Query   string
}

// PetRepository defines data access for the pet collection.
// No business logic here — strictly persistence operations.
type PetRepository interface {
	// Find returns the pets matching the filter, in store-default order.
	Find(ctx context.Context, f PetFilter) ([]model.Pet, error)

	// FindByID returns a pet by its identifier, or ErrNoDocument.
	FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pet, error)

	// Count returns the total number of pet documents, adopted or not.
	Count(ctx context.Context) (int64, error)

	// InsertMany stores the given pets and returns how many were inserted.
	InsertMany(ctx context.Context, pets []model.Pet) (int, error)
}

// AdoptionRequestRepository defines data access for adoption requests.
type AdoptionRequestRepository interface {
	// Insert stores a new adoption request and returns its assigned id in hex form.
	Insert(ctx context.Context, req *model.AdoptionRequest) (string, error)
}
