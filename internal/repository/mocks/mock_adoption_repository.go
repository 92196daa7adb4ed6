package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pawshugs/internal/model"
)

type MockAdoptionRequestRepository struct {
	mock.Mock
}

func (m *MockAdoptionRequestRepository) Insert(ctx context.Context, req *model.AdoptionRequest) (string, error) {
	args := m.Called(ctx, req)
	return args.String(0), args.Error(1)
}
