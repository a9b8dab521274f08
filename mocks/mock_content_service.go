package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"hackfest/internal/domain"
	"hackfest/internal/service"
)

// MockContentService is a mock implementation of service.ContentService.
type MockContentService struct {
	mock.Mock
}

func (m *MockContentService) PublicList(ctx context.Context, collection string) ([]domain.Item, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockContentService) AdminList(ctx context.Context, collection string) ([]domain.Item, error) {
	args := m.Called(ctx, collection)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockContentService) Insert(ctx context.Context, input service.InsertItemInput) ([]domain.Item, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockContentService) UpdateFields(ctx context.Context, collection string, id uuid.UUID, fields map[string]interface{}) ([]domain.Item, error) {
	args := m.Called(ctx, collection, id, fields)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Item), args.Error(1)
}

func (m *MockContentService) Delete(ctx context.Context, collection string, id uuid.UUID) error {
	args := m.Called(ctx, collection, id)
	return args.Error(0)
}
