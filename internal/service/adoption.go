package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
)

var (
	// ErrInvalidPetID means the submitted pet_id is not a well-formed store
	// identifier. It is raised before any store access.
	ErrInvalidPetID = errors.New("invalid pet id")

	// ErrPetNotFound means the submitted pet_id does not resolve to a pet.
	ErrPetNotFound = errors.New("pet not found")
)

// AdoptionWorkflow defines the adoption-request intake use case.
type AdoptionWorkflow interface {
	// SubmitRequest validates the request against current pet state, persists
	// it, and returns the new request id.
	SubmitRequest(ctx context.Context, req *model.AdoptionRequest) (string, error)
}

type adoptionWorkflow struct {
	pets     repository.PetRepository
	requests repository.AdoptionRequestRepository
}

// NewAdoptionWorkflow constructs a new AdoptionWorkflow.
func NewAdoptionWorkflow(pets repository.PetRepository, requests repository.AdoptionRequestRepository) AdoptionWorkflow {
	return &adoptionWorkflow{pets: pets, requests: requests}
}

// SubmitRequest checks the referenced pet exists, then inserts the request.
// The existence check deliberately ignores is_adopted: a request against an
// already-adopted pet is accepted, matching the intake behavior this service
// replaces. The check-then-insert order must be preserved; the insert is the
// only mutation, so no rollback is needed on failure.
func (s *adoptionWorkflow) SubmitRequest(ctx context.Context, req *model.AdoptionRequest) (string, error) {
	oid, err := primitive.ObjectIDFromHex(req.PetID)
	if err != nil {
		return "", ErrInvalidPetID
	}

	if _, err := s.pets.FindByID(ctx, oid); err != nil {
		if errors.Is(err, repository.ErrNoDocument) {
			return "", ErrPetNotFound
		}
		return "", err
	}

	return s.requests.Insert(ctx, req)
}
