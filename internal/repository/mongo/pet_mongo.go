package mongo

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
)

// PetMongo is a MongoDB implementation of repository.PetRepository.
// It builds bson filters and contains no business logic.
type PetMongo struct {
	coll *mongo.Collection
}

// NewPetMongo creates a new PetMongo repository over the given collection.
func NewPetMongo(coll *mongo.Collection) *PetMongo {
	return &PetMongo{coll: coll}
}

var _ repository.PetRepository = (*PetMongo)(nil)

// buildPetFilter translates a PetFilter into a bson document. Adopted pets are
// always excluded; species and size are exact matches; the free-text query is
// a case-insensitive substring (metacharacters quoted, so callers get literal
// matching) ORed across name, description and location.
func buildPetFilter(f repository.PetFilter) bson.D {
	filter := bson.D{{Key: "is_adopted", Value: false}}
	if f.Species != "" {
		filter = append(filter, bson.E{Key: "species", Value: f.Species})
	}
	if f.Size != "" {
		filter = append(filter, bson.E{Key: "size", Value: f.Size})
	}
	if f.Query != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(f.Query), Options: "i"}
		filter = append(filter, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "name", Value: re}},
			bson.D{{Key: "description", Value: re}},
			bson.D{{Key: "location", Value: re}},
		}})
	}
	return filter
}

// Find returns the pets matching the filter. Each decoded document is
// validated so that records missing required fields surface as errors instead
// of half-empty results.
func (r *PetMongo) Find(ctx context.Context, f repository.PetFilter) ([]model.Pet, error) {
	cur, err := r.coll.Find(ctx, buildPetFilter(f))
	if err != nil {
		return nil, fmt.Errorf("find pets: %w", err)
	}
	defer cur.Close(ctx)

	var pets []model.Pet
	if err := cur.All(ctx, &pets); err != nil {
		return nil, fmt.Errorf("decode pets: %w", err)
	}
	for i := range pets {
		if err := pets[i].Validate(); err != nil {
			return nil, fmt.Errorf("pet %s: %w", pets[i].ID.Hex(), err)
		}
	}
	return pets, nil
}

// FindByID returns a single pet by its identifier.
func (r *PetMongo) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pet, error) {
	var pet model.Pet
	err := r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&pet)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNoDocument
	}
	if err != nil {
		return nil, fmt.Errorf("find pet by id: %w", err)
	}
	return &pet, nil
}

// Count returns the total number of pet documents.
func (r *PetMongo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count pets: %w", err)
	}
	return n, nil
}

// InsertMany stores the given pets.
func (r *PetMongo) InsertMany(ctx context.Context, pets []model.Pet) (int, error) {
	docs := make([]interface{}, 0, len(pets))
	for i := range pets {
		docs = append(docs, pets[i])
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert pets: %w", err)
	}
	return len(res.InsertedIDs), nil
}
