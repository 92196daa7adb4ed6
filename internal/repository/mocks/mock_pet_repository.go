package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
)

type MockPetRepository struct {
	mock.Mock
}

func (m *MockPetRepository) Find(ctx context.Context, f repository.PetFilter) ([]model.Pet, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Pet), args.Error(1)
}

func (m *MockPetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Pet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Pet), args.Error(1)
}

func (m *MockPetRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPetRepository) InsertMany(ctx context.Context, pets []model.Pet) (int, error) {
	args := m.Called(ctx, pets)
	return args.Int(0), args.Error(1)
}
