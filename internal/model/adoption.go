package model

import "go.mongodb.org/mongo-driver/bson/primitive"

// AdoptionRequest captures a prospective adopter's interest in one pet.
// PetID is the only field with a contract of its own (it must reference an
// existing pet at submission time); the requester fields are persisted as
// provided.
type AdoptionRequest struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	PetID   string             `bson:"pet_id" json:"pet_id"`
	Name    string             `bson:"name,omitempty" json:"name,omitempty"`
	Email   string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone   string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message string             `bson:"message,omitempty" json:"message,omitempty"`
}
