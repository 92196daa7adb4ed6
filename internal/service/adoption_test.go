package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
	repoMocks "pawshugs/internal/repository/mocks"
)

func TestAdoptionWorkflow_SubmitRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("happy path", func(t *testing.T) {
		petID := primitive.NewObjectID()
		req := &model.AdoptionRequest{PetID: petID.Hex(), Name: "Alex", Email: "alex@example.com"}

		mPets := new(repoMocks.MockPetRepository)
		mPets.On("FindByID", ctx, petID).Return(&model.Pet{ID: petID, Name: "Mocha"}, nil)
		mReqs := new(repoMocks.MockAdoptionRequestRepository)
		newID := primitive.NewObjectID().Hex()
		mReqs.On("Insert", ctx, req).Return(newID, nil)

		svc := NewAdoptionWorkflow(mPets, mReqs)
		got, err := svc.SubmitRequest(ctx, req)

		require.NoError(t, err)
		assert.Equal(t, newID, got)
		assert.NotEqual(t, petID.Hex(), got)
		mPets.AssertExpectations(t)
		mReqs.AssertExpectations(t)
	})

	t.Run("malformed id never reaches the store", func(t *testing.T) {
		mPets := new(repoMocks.MockPetRepository)
		mReqs := new(repoMocks.MockAdoptionRequestRepository)

		svc := NewAdoptionWorkflow(mPets, mReqs)
		_, err := svc.SubmitRequest(ctx, &model.AdoptionRequest{PetID: "not-an-id"})

		assert.ErrorIs(t, err, ErrInvalidPetID)
		mPets.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
		mReqs.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("well-formed but unknown id", func(t *testing.T) {
		petID := primitive.NewObjectID()
		mPets := new(repoMocks.MockPetRepository)
		mPets.On("FindByID", ctx, petID).Return(nil, repository.ErrNoDocument)
		mReqs := new(repoMocks.MockAdoptionRequestRepository)

		svc := NewAdoptionWorkflow(mPets, mReqs)
		_, err := svc.SubmitRequest(ctx, &model.AdoptionRequest{PetID: petID.Hex()})

		assert.ErrorIs(t, err, ErrPetNotFound)
		mReqs.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
	})

	t.Run("already-adopted pet is still accepted", func(t *testing.T) {
		petID := primitive.NewObjectID()
		req := &model.AdoptionRequest{PetID: petID.Hex()}

		mPets := new(repoMocks.MockPetRepository)
		mPets.On("FindByID", ctx, petID).Return(&model.Pet{ID: petID, IsAdopted: true}, nil)
		mReqs := new(repoMocks.MockAdoptionRequestRepository)
		mReqs.On("Insert", ctx, req).Return(primitive.NewObjectID().Hex(), nil)

		svc := NewAdoptionWorkflow(mPets, mReqs)
		_, err := svc.SubmitRequest(ctx, req)

		assert.NoError(t, err)
		mReqs.AssertExpectations(t)
	})

	t.Run("lookup error propagates", func(t *testing.T) {
		petID := primitive.NewObjectID()
		mPets := new(repoMocks.MockPetRepository)
		mPets.On("FindByID", ctx, petID).Return(nil, errors.New("find fail"))
		mReqs := new(repoMocks.MockAdoptionRequestRepository)

		svc := NewAdoptionWorkflow(mPets, mReqs)
		_, err := svc.SubmitRequest(ctx, &model.AdoptionRequest{PetID: petID.Hex()})

		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrPetNotFound)
	})

	t.Run("unavailable store", func(t *testing.T) {
		svc := NewAdoptionWorkflow(repository.UnavailablePets{}, repository.UnavailableAdoptionRequests{})
		_, err := svc.SubmitRequest(ctx, &model.AdoptionRequest{PetID: primitive.NewObjectID().Hex()})
		assert.ErrorIs(t, err, repository.ErrUnavailable)
	})
}
