package model

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet represents one adoptable animal as stored in the pet collection.
// Optional fields are pointers so that documents missing them decode to nil
// instead of a zero value that could be mistaken for real data.
type Pet struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Name        string             `bson:"name" json:"name"`
	Species     string             `bson:"species" json:"species"`
	AgeYears    float64            `bson:"age_years" json:"age_years"`
	Gender      string             `bson:"gender" json:"gender"`
	Size        string             `bson:"size" json:"size"`
	Description *string            `bson:"description,omitempty" json:"description,omitempty"`
	PhotoURL    *string            `bson:"photo_url,omitempty" json:"photo_url,omitempty"`
	Location    *string            `bson:"location,omitempty" json:"location,omitempty"`
	IsAdopted   bool               `bson:"is_adopted" json:"is_adopted"`
}

// PetView is the externally exposed representation of a Pet returned over the
// API boundary. The identifier is rendered as its hex string form.
type PetView struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Species     string  `json:"species"`
	AgeYears    float64 `json:"age_years"`
	Gender      string  `json:"gender"`
	Size        string  `json:"size"`
	Description *string `json:"description"`
	PhotoURL    *string `json:"photo_url"`
	Location    *string `json:"location"`
	IsAdopted   bool    `json:"is_adopted"`
}

var ErrIncompletePet = errors.New("pet document missing required fields")

// Validate checks the fields every pet document must carry. Optional fields
// (description, photo_url, location) are allowed to be absent.
func (p *Pet) Validate() error {
	switch {
	case p.ID.IsZero():
		return fmt.Errorf("%w: _id", ErrIncompletePet)
	case p.Name == "":
		return fmt.Errorf("%w: name", ErrIncompletePet)
	case p.Species == "":
		return fmt.Errorf("%w: species", ErrIncompletePet)
	case p.AgeYears < 0:
		return fmt.Errorf("%w: age_years must be non-negative", ErrIncompletePet)
	case p.Gender == "":
		return fmt.Errorf("%w: gender", ErrIncompletePet)
	case p.Size == "":
		return fmt.Errorf("%w: size", ErrIncompletePet)
	}
	return nil
}

// View maps the stored entity to its public representation.
func (p *Pet) View() PetView {
	return PetView{
		ID:          p.ID.Hex(),
		Name:        p.Name,
		Species:     p.Species,
		AgeYears:    p.AgeYears,
		Gender:      p.Gender,
		Size:        p.Size,
		Description: p.Description,
		PhotoURL:    p.PhotoURL,
		Location:    p.Location,
		IsAdopted:   p.IsAdopted,
	}
}

// StrPtr is a convenience helper for building pets with optional fields set.
func StrPtr(s string) *string {
	return &s
}
