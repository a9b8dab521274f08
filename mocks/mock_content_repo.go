package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/domain"
)

// MockContentRepo is a mock implementation of port.ContentRepository.
type MockContentRepo struct {
	mock.Mock
}

func (m *MockContentRepo) List(ctx context.Context, collection string) ([]domain.Item, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockContentRepo) Insert(ctx context.Context, item *domain.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockContentRepo) UpdateFields(ctx context.Context, collection string, id uuid.UUID, fields map[string]interface{}) error {
	args := m.Called(ctx, collection, id, fields)
	return args.Error(0)
}

func (m *MockContentRepo) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}
