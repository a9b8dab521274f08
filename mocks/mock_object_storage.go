package mocks

import (
	"context"
	"fmt"

	"github.com/stretchr/testify/mock"

	"hackfest/internal/port"
)

// MockObjectStorage is a mock implementation of port.ObjectStorage.
type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) Upload(ctx context.Context, input port.UploadInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

func (m *MockObjectStorage) Delete(ctx context.Context, bucket, key string) error {
	args := m.Called(ctx, bucket, key)
	return args.Error(0)
}

func (m *MockObjectStorage) PublicURL(bucket, key string) string {
	args := m.Called(bucket, key)
	if args.Get(0) == nil {
		return fmt.Sprintf("https://%s.example.com/%s", bucket, key)
	}
	return args.String(0)
}
