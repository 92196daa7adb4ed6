package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pawshugs/internal/model"
	"pawshugs/internal/repository"
	"pawshugs/internal/service"
)

type MockPetCatalog struct {
	mock.Mock
}

func (m *MockPetCatalog) ListPets(ctx context.Context, f repository.PetFilter) ([]model.PetView, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.PetView), args.Error(1)
}

type MockAdoptionWorkflow struct {
	mock.Mock
}

func (m *MockAdoptionWorkflow) SubmitRequest(ctx context.Context, req *model.AdoptionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}

type MockSeedLoader struct {
	mock.Mock
}

func (m *MockSeedLoader) SeedIfEmpty(ctx context.Context) (*service.SeedResult, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}

type MockDiagnostics struct {
	mock.Mock
}

func (m *MockDiagnostics) Report(ctx context.Context) *service.StatusReport {
	args := m.Called(ctx)
	return args.Get(0).(*service.StatusReport)
}
