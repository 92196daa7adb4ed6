package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
)

// AdoptionRequestMongo is a MongoDB implementation of
// repository.AdoptionRequestRepository.
type AdoptionRequestMongo struct {
	coll *mongo.Collection
}

// NewAdoptionRequestMongo creates a new AdoptionRequestMongo repository over
// the given collection.
func NewAdoptionRequestMongo(coll *mongo.Collection) *AdoptionRequestMongo {
	return &AdoptionRequestMongo{coll: coll}
}

var _ repository.AdoptionRequestRepository = (*AdoptionRequestMongo)(nil)

// Insert stores a new adoption request and returns the store-assigned id.
func (r *AdoptionRequestMongo) Insert(ctx context.Context, req *model.AdoptionRequest) (string, error) {
	res, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return "", fmt.Errorf("insert adoption request: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}
