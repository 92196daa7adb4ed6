package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
	repoMocks "pawshugs/internal/repository/mocks"
)

func TestSeedLoader_SeedIfEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection gets the fixtures", func(t *testing.T) {
		mRepo := new(repoMocks.MockPetRepository)
		mRepo.On("Count", ctx).Return(int64(0), nil)
		mRepo.On("InsertMany", ctx, mock.MatchedBy(func(pets []model.Pet) bool {
			return len(pets) == 3 && pets[0].Name == "Mocha"
		})).Return(3, nil)

		svc := NewSeedLoader(mRepo)
		res, err := svc.SeedIfEmpty(ctx)

		require.NoError(t, err)
		assert.False(t, res.AlreadySeeded)
		assert.Equal(t, 3, res.Count)
		mRepo.AssertExpectations(t)
	})

	t.Run("non-empty collection is a no-op", func(t *testing.T) {
		mRepo := new(repoMocks.MockPetRepository)
		mRepo.On("Count", ctx).Return(int64(3), nil)

		svc := NewSeedLoader(mRepo)
		res, err := svc.SeedIfEmpty(ctx)

		require.NoError(t, err)
		assert.True(t, res.AlreadySeeded)
		assert.Equal(t, 3, res.Count)
		mRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
	})

	t.Run("count error propagates", func(t *testing.T) {
		mRepo := new(repoMocks.MockPetRepository)
		mRepo.On("Count", ctx).Return(int64(0), errors.New("count fail"))

		svc := NewSeedLoader(mRepo)
		_, err := svc.SeedIfEmpty(ctx)
		assert.Error(t, err)
	})

	t.Run("insert error propagates", func(t *testing.T) {
		mRepo := new(repoMocks.MockPetRepository)
		mRepo.On("Count", ctx).Return(int64(0), nil)
		mRepo.On("InsertMany", ctx, mock.Anything).Return(0, errors.New("insert fail"))

		svc := NewSeedLoader(mRepo)
		_, err := svc.SeedIfEmpty(ctx)
		assert.Error(t, err)
	})

	t.Run("unavailable store", func(t *testing.T) {
		svc := NewSeedLoader(repository.UnavailablePets{})
		_, err := svc.SeedIfEmpty(ctx)
		assert.ErrorIs(t, err, repository.ErrUnavailable)
	})
}

func TestStarterPets(t *testing.T) {
	pets := StarterPets()
	require.Len(t, pets, 3)

	names := make([]string, 0, len(pets))
	for _, p := range pets {
		names = append(names, p.Name)
		assert.False(t, p.IsAdopted)
		assert.True(t, p.ID.IsZero(), "fixture ids are store-assigned")
		require.NotNil(t, p.Description)
	}
	assert.Equal(t, []string{"Mocha", "Miso", "Taro"}, names)

	// Miso's description is the case-insensitive search fixture.
	assert.Contains(t, *pets[1].Description, "Calm")

	// Each call returns an independent slice.
	pets[0].Name = "changed"
	assert.Equal(t, "Mocha", StarterPets()[0].Name)
}
