package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawshugs/internal/model"
)

// UnavailablePets is the PetRepository wired in when no store handle exists.
// Every operation fails with ErrUnavailable, which handlers translate to the
// "Database not configured" response. This replaces nil checks scattered
// through the services with an explicit implementation of the absent state.
type UnavailablePets struct{}

var _ PetRepository = UnavailablePets{}

func (UnavailablePets) Find(ctx context.Context, f PetFilter) ([]model.Pet, error) {
	return nil, ErrUnavailable
}

func (UnavailablePets) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pet, error) {
	return nil, ErrUnavailable
}

func (UnavailablePets) Count(ctx context.Context) (int64, error) {
	return 0, ErrUnavailable
}

func (UnavailablePets) InsertMany(ctx context.Context, pets []model.Pet) (int, error) {
	return 0, ErrUnavailable
}

// UnavailableAdoptionRequests is the AdoptionRequestRepository counterpart of
// UnavailablePets.
type UnavailableAdoptionRequests struct{}

var _ AdoptionRequestRepository = UnavailableAdoptionRequests{}

func (UnavailableAdoptionRequests) Insert(ctx context.Context, req *model.AdoptionRequest) (string, error) {
	return "", ErrUnavailable
}
